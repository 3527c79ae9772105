// Copyright 2025 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keyword classifies ECMAScript words: keywords, reserved words,
// restricted words, and identifier names under the ES5 and ES6 grammars.
//
// Every function is total: any string, including the empty string and
// strings that are not valid UTF-8, yields a result.
//
// The identifier-name scans are memoized in a bounded cache owned by a
// Validator. The package-level functions share a process-wide Validator
// whose cache holds at most DefaultCacheCapacity entries. The cache is
// never observable: results are the same whether or not it is full.
package keyword // import "github.com/estools/esutils/keyword"

// IsKeywordES5 reports whether id is a keyword under ES5 rules.
// "yield" is a keyword only in strict mode code.
func IsKeywordES5(id string, strict bool) bool {
	if !strict && id == "yield" {
		return false
	}
	return IsKeywordES6(id, strict)
}

// IsKeywordES6 reports whether id is a keyword under ES6 rules.
// In strict mode code the future reserved words such as "let" and
// "static" are keywords too.
func IsKeywordES6(id string, strict bool) bool {
	if strict && strictReservedES6[id] {
		return true
	}
	return keywordsES6[id]
}

// IsReservedWordES5 reports whether id is a literal keyword or an ES5 keyword.
func IsReservedWordES5(id string, strict bool) bool {
	return literals[id] || IsKeywordES5(id, strict)
}

// IsReservedWordES6 reports whether id is a literal keyword or an ES6 keyword.
func IsReservedWordES6(id string, strict bool) bool {
	return literals[id] || IsKeywordES6(id, strict)
}

// IsRestrictedWord reports whether id is "eval" or "arguments".
func IsRestrictedWord(id string) bool {
	return restricted[id]
}
