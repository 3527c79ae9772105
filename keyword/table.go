// Copyright 2025 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keyword

import "sort"

// The word tables are built once at package initialization and never
// modified, so they may be read concurrently without synchronization.

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

var (
	keywordsES6 = set(
		"if", "in", "do", "var", "for", "new", "try", "this",
		"else", "case", "void", "with", "enum", "while", "break",
		"catch", "throw", "const", "yield", "class", "super",
		"return", "typeof", "delete", "switch", "export", "import",
		"default", "finally", "extends", "function", "continue",
		"debugger", "instanceof",
	)

	// reserved only in strict mode code
	strictReservedES6 = set(
		"implements", "interface", "package", "private",
		"protected", "public", "static", "let",
	)

	literals = set("null", "true", "false")

	restricted = set("eval", "arguments")
)

func sorted(m map[string]bool) []string {
	words := make([]string, 0, len(m))
	for w := range m {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Keywords returns the ES6 keywords in sorted order.
func Keywords() []string { return sorted(keywordsES6) }

// StrictModeReservedWords returns, in sorted order, the words that are
// reserved only in strict mode code.
func StrictModeReservedWords() []string { return sorted(strictReservedES6) }

// Literals returns the literal keywords null, true and false in sorted order.
func Literals() []string { return sorted(literals) }

// RestrictedWords returns the words that may not be bound in strict mode
// code, in sorted order.
func RestrictedWords() []string { return sorted(restricted) }
