// Copyright 2025 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package code classifies single ECMAScript source characters.
//
// Each predicate accepts any rune, including negative values and values
// beyond unicode.MaxRune, and reports false for anything outside the
// production it tests. The ES5 identifier predicates follow the ES5
// grammar, which is defined over UTF-16 code units, so they never accept a
// code point above U+FFFF. The ES6 predicates operate on full code points
// and accept a superset of the ES5 ones.
package code // import "github.com/estools/esutils/code"

import "unicode"

// IsDecimalDigit reports whether cp is one of 0-9.
func IsDecimalDigit(cp rune) bool {
	return '0' <= cp && cp <= '9'
}

// IsHexDigit reports whether cp is one of 0-9, a-f, A-F.
func IsHexDigit(cp rune) bool {
	return '0' <= cp && cp <= '9' ||
		'a' <= cp && cp <= 'f' ||
		'A' <= cp && cp <= 'F'
}

// IsOctalDigit reports whether cp is one of 0-7.
func IsOctalDigit(cp rune) bool {
	return '0' <= cp && cp <= '7'
}

// IsWhiteSpace reports whether cp matches the WhiteSpace production:
// TAB, VT, FF, SP, NBSP, the Space_Separator characters, and the BOM.
func IsWhiteSpace(cp rune) bool {
	switch cp {
	case 0x09, 0x0B, 0x0C, 0x20, 0xA0:
		return true
	}
	if cp < nonASCIIWhiteSpace[0] {
		return false
	}
	for _, ws := range nonASCIIWhiteSpace {
		if cp == ws {
			return true
		}
		if cp < ws {
			break
		}
	}
	return false
}

// IsLineTerminator reports whether cp is LF, CR, LS (U+2028) or PS (U+2029).
func IsLineTerminator(cp rune) bool {
	return cp == 0x0A || cp == 0x0D || cp == 0x2028 || cp == 0x2029
}

// IsIdentifierStartES5 reports whether the UTF-16 code unit cp may begin
// an ES5 IdentifierName.
func IsIdentifierStartES5(cp rune) bool {
	if 0 <= cp && cp < 0x80 {
		return asciiStart[cp]
	}
	return 0x80 <= cp && cp <= 0xFFFF && unicode.Is(es5Start, cp)
}

// IsIdentifierPartES5 reports whether the UTF-16 code unit cp may appear
// after the first character of an ES5 IdentifierName.
func IsIdentifierPartES5(cp rune) bool {
	if 0 <= cp && cp < 0x80 {
		return asciiPart[cp]
	}
	if cp == zwnj || cp == zwj {
		return true
	}
	return 0x80 <= cp && cp <= 0xFFFF && unicode.Is(es5Part, cp)
}

// IsIdentifierStartES6 reports whether the code point cp may begin an ES6
// IdentifierName: '$', '_', or a character with the ID_Start property.
func IsIdentifierStartES6(cp rune) bool {
	if 0 <= cp && cp < 0x80 {
		return asciiStart[cp]
	}
	return 0x80 <= cp && cp <= unicode.MaxRune && unicode.Is(es6Start, cp)
}

// IsIdentifierPartES6 reports whether the code point cp may appear after
// the first character of an ES6 IdentifierName: '$', '_', ZWNJ, ZWJ, or a
// character with the ID_Continue property.
func IsIdentifierPartES6(cp rune) bool {
	if 0 <= cp && cp < 0x80 {
		return asciiPart[cp]
	}
	if cp == zwnj || cp == zwj {
		return true
	}
	return 0x80 <= cp && cp <= unicode.MaxRune && unicode.Is(es6Part, cp)
}
