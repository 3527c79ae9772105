// Copyright 2025 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package code

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Tables for the non-ASCII part of each identifier production.
// They are merged once at init into single sorted tables so that a
// lookup is one binary search instead of one per category.
var (
	// ES5 IdentifierStart: UnicodeLetter (Lu Ll Lt Lm Lo Nl).
	es5Start = rangetable.Merge(unicode.L, unicode.Nl)

	// ES5 IdentifierPart adds UnicodeCombiningMark (Mn Mc),
	// UnicodeDigit (Nd) and UnicodeConnectorPunctuation (Pc).
	es5Part = rangetable.Merge(unicode.L, unicode.Nl, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc)

	// ES6 ID_Start and ID_Continue. Pattern_Syntax is not subtracted, so
	// U+2E2F VERTICAL TILDE (Lm) stays an identifier character as in ES5
	// and the ES6 tables remain a superset of the ES5 ones.
	es6Start = rangetable.Merge(unicode.L, unicode.Nl, unicode.Other_ID_Start)
	es6Part  = rangetable.Merge(unicode.L, unicode.Nl, unicode.Other_ID_Start,
		unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
)

const (
	zwnj = 0x200C
	zwj  = 0x200D
)

// ASCII fast paths. The ES5 and ES6 grammars agree below 0x80.
var (
	asciiStart = func() (table [0x80]bool) {
		for c := 'a'; c <= 'z'; c++ {
			table[c] = true
		}
		for c := 'A'; c <= 'Z'; c++ {
			table[c] = true
		}
		table['$'] = true
		table['_'] = true
		return table
	}()

	asciiPart = func() (table [0x80]bool) {
		table = asciiStart
		for c := '0'; c <= '9'; c++ {
			table[c] = true
		}
		return table
	}()
)

// nonASCIIWhiteSpace lists the Zs and BOM code points accepted by the
// WhiteSpace production above U+00FF, in ascending order.
var nonASCIIWhiteSpace = [...]rune{
	0x1680,
	0x2000, 0x2001, 0x2002, 0x2003, 0x2004, 0x2005,
	0x2006, 0x2007, 0x2008, 0x2009, 0x200A,
	0x202F, 0x205F, 0x3000, 0xFEFF,
}
