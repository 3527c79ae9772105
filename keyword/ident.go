// Copyright 2025 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keyword

import (
	"unicode/utf16"

	"github.com/estools/esutils/code"
)

// A Validator checks identifiers, memoizing the character scans of
// IsIdentifierNameES5 and IsIdentifierNameES6 in its Cache.
// Reserved-word checks are set lookups and are never cached.
//
// A Validator is safe for concurrent use.
type Validator struct {
	cache *Cache
}

// NewValidator returns a Validator whose cache holds at most capacity
// entries. A capacity of zero or less disables caching.
func NewValidator(capacity int) *Validator {
	return &Validator{cache: NewCache(capacity)}
}

// Cache returns the validator's result cache.
func (v *Validator) Cache() *Cache { return v.cache }

// IsIdentifierNameES5 reports whether id is an ES5 IdentifierName.
//
// ES5 defines identifiers over UTF-16 code units, so id is checked one
// code unit at a time with no surrogate-pair decoding. A character beyond
// the BMP therefore never appears in a valid ES5 identifier name.
func (v *Validator) IsIdentifierNameES5(id string) bool {
	if id == "" {
		return false
	}
	if valid, ok := v.cache.Lookup(ES5, id); ok {
		return valid
	}
	valid := scanES5(id)
	v.cache.Store(ES5, id, valid)
	return valid
}

// IsIdentifierNameES6 reports whether id is an ES6 IdentifierName.
// Supplementary characters are classified as whole code points.
func (v *Validator) IsIdentifierNameES6(id string) bool {
	if id == "" {
		return false
	}
	if valid, ok := v.cache.Lookup(ES6, id); ok {
		return valid
	}
	valid := scanES6(id)
	v.cache.Store(ES6, id, valid)
	return valid
}

// IsIdentifierES5 reports whether id is an ES5 identifier name that is
// not a reserved word.
func (v *Validator) IsIdentifierES5(id string, strict bool) bool {
	return v.IsIdentifierNameES5(id) && !IsReservedWordES5(id, strict)
}

// IsIdentifierES6 reports whether id is an ES6 identifier name that is
// not a reserved word.
func (v *Validator) IsIdentifierES6(id string, strict bool) bool {
	return v.IsIdentifierNameES6(id) && !IsReservedWordES6(id, strict)
}

// scanES5 checks the UTF-16 encoding of id unit by unit.
// Bytes that are not valid UTF-8 decode to U+FFFD, which is rejected.
func scanES5(id string) bool {
	first := true
	check := func(unit rune) bool {
		if first {
			first = false
			return code.IsIdentifierStartES5(unit)
		}
		return code.IsIdentifierPartES5(unit)
	}
	for _, r := range id {
		if r < 0x10000 {
			if !check(r) {
				return false
			}
			continue
		}
		lead, trail := utf16.EncodeRune(r)
		if !check(lead) || !check(trail) {
			return false
		}
	}
	return true
}

// scanES6 checks id code point by code point. Ranging over a Go string
// already pairs surrogates, and a string cannot hold an unpaired one, so
// no decoding step is needed here; see IsIdentifierNameES6Units for the
// general case.
func scanES6(id string) bool {
	for i, r := range id {
		if i == 0 {
			if !code.IsIdentifierStartES6(r) {
				return false
			}
		} else if !code.IsIdentifierPartES6(r) {
			return false
		}
	}
	return true
}

// decodeSurrogates combines a lead and trail surrogate into a code point.
func decodeSurrogates(lead, trail uint16) rune {
	return (rune(lead)-0xD800)*0x400 + (rune(trail) - 0xDC00) + 0x10000
}

func isLead(u uint16) bool  { return 0xD800 <= u && u <= 0xDBFF }
func isTrail(u uint16) bool { return 0xDC00 <= u && u <= 0xDFFF }

// IsIdentifierNameES5Units reports whether the UTF-16 code units form an
// ES5 IdentifierName. Each unit, including an unpaired surrogate, is
// judged on its own. Results are not cached.
func IsIdentifierNameES5Units(units []uint16) bool {
	if len(units) == 0 {
		return false
	}
	if !code.IsIdentifierStartES5(rune(units[0])) {
		return false
	}
	for _, u := range units[1:] {
		if !code.IsIdentifierPartES5(rune(u)) {
			return false
		}
	}
	return true
}

// IsIdentifierNameES6Units reports whether the UTF-16 code units form an
// ES6 IdentifierName. A lead surrogate must be followed by a trail
// surrogate; the pair is classified as one code point. Results are not
// cached.
func IsIdentifierNameES6Units(units []uint16) bool {
	if len(units) == 0 {
		return false
	}
	check := code.IsIdentifierStartES6
	for i := 0; i < len(units); i++ {
		cp := rune(units[i])
		if isLead(units[i]) {
			i++
			if i >= len(units) || !isTrail(units[i]) {
				return false
			}
			cp = decodeSurrogates(units[i-1], units[i])
		}
		if !check(cp) {
			return false
		}
		check = code.IsIdentifierPartES6
	}
	return true
}

var std = NewValidator(DefaultCacheCapacity)

// IsIdentifierNameES5 reports whether id is an ES5 IdentifierName,
// using the process-wide cache.
func IsIdentifierNameES5(id string) bool { return std.IsIdentifierNameES5(id) }

// IsIdentifierNameES6 reports whether id is an ES6 IdentifierName,
// using the process-wide cache.
func IsIdentifierNameES6(id string) bool { return std.IsIdentifierNameES6(id) }

// IsIdentifierES5 reports whether id is an ES5 identifier name that is not
// a reserved word.
func IsIdentifierES5(id string, strict bool) bool { return std.IsIdentifierES5(id, strict) }

// IsIdentifierES6 reports whether id is an ES6 identifier name that is not
// a reserved word.
func IsIdentifierES6(id string, strict bool) bool { return std.IsIdentifierES6(id, strict) }

// Default returns the Validator used by the package-level functions.
func Default() *Validator { return std }
