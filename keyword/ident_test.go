// Copyright 2025 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keyword_test

import (
	"fmt"
	"sync"
	"testing"
	"unicode/utf16"

	"github.com/estools/esutils/keyword"
)

func utf16Encode(s string) []uint16 { return utf16.Encode([]rune(s)) }

func TestCacheBound(t *testing.T) {
	c := keyword.NewCache(2)
	if !c.Store(keyword.ES5, "a", true) {
		t.Fatalf("Store(a) into empty cache failed")
	}
	if c.Store(keyword.ES5, "a", true) {
		t.Errorf("Store(a) twice added a second entry")
	}
	if !c.Store(keyword.ES6, "a", true) {
		t.Errorf("Store under a different version was rejected")
	}
	if c.Store(keyword.ES5, "b", false) {
		t.Errorf("Store into full cache succeeded")
	}
	if got := c.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if valid, ok := c.Lookup(keyword.ES5, "a"); !ok || !valid {
		t.Errorf("Lookup(es5, a) = %t, %t; want true, true", valid, ok)
	}
	if _, ok := c.Lookup(keyword.ES5, "b"); ok {
		t.Errorf("Lookup(es5, b) found an entry rejected by a full cache")
	}
	// Lookups do not make room: the first entries stay forever.
	for i := 0; i < 10; i++ {
		c.Store(keyword.ES5, fmt.Sprint("x", i), true)
	}
	if _, ok := c.Lookup(keyword.ES6, "a"); !ok {
		t.Errorf("entry was evicted")
	}
}

func TestCacheDisabled(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		c := keyword.NewCache(capacity)
		if c.Store(keyword.ES6, "a", true) {
			t.Errorf("NewCache(%d).Store succeeded", capacity)
		}
		if _, ok := c.Lookup(keyword.ES6, "a"); ok {
			t.Errorf("NewCache(%d).Lookup found an entry", capacity)
		}
		if c.Len() != 0 || c.Cap() != 0 {
			t.Errorf("NewCache(%d): Len=%d Cap=%d, want 0, 0", capacity, c.Len(), c.Cap())
		}
	}
}

// TestCacheTransparent checks that results do not depend on whether the
// cache has room.
func TestCacheTransparent(t *testing.T) {
	words := []string{"foo", "1x", "\U00010400", "a·", "", "let", "℘", "a b", "$", "_1"}
	fresh := keyword.NewValidator(100)
	full := keyword.NewValidator(1)
	full.IsIdentifierNameES5("filler")
	none := keyword.NewValidator(0)
	for round := 0; round < 2; round++ {
		for _, w := range words {
			want5, want6 := fresh.IsIdentifierNameES5(w), fresh.IsIdentifierNameES6(w)
			for name, v := range map[string]*keyword.Validator{"full": full, "none": none} {
				if got := v.IsIdentifierNameES5(w); got != want5 {
					t.Errorf("round %d: %s.IsIdentifierNameES5(%q) = %t, want %t", round, name, w, got, want5)
				}
				if got := v.IsIdentifierNameES6(w); got != want6 {
					t.Errorf("round %d: %s.IsIdentifierNameES6(%q) = %t, want %t", round, name, w, got, want6)
				}
			}
		}
	}
	if got := full.Cache().Len(); got != 1 {
		t.Errorf("full cache grew to %d entries", got)
	}
	// The empty string is rejected before the cache is consulted.
	if got, want := fresh.Cache().Len(), 2*(len(words)-1); got != want {
		t.Errorf("fresh cache has %d entries, want %d", got, want)
	}
}

func TestValidatorConcurrent(t *testing.T) {
	const capacity = 50
	v := keyword.NewValidator(capacity)
	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				id := fmt.Sprintf("id%d", (i*7+g)%120)
				if !v.IsIdentifierNameES6(id) || !v.IsIdentifierES5(id, true) {
					select {
					case errs <- id:
					default:
					}
					return
				}
				bad := fmt.Sprintf("%d", i)
				if v.IsIdentifierNameES5(bad) {
					select {
					case errs <- bad:
					default:
					}
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	for id := range errs {
		t.Errorf("wrong result for %q under concurrent use", id)
	}
	if got := v.Cache().Len(); got != capacity {
		t.Errorf("Cache().Len() = %d, want %d", got, capacity)
	}
}

func TestVersionString(t *testing.T) {
	for v, want := range map[keyword.Version]string{keyword.ES5: "es5", keyword.ES6: "es6", 0: "es?"} {
		if got := v.String(); got != want {
			t.Errorf("Version(%d).String() = %q, want %q", v, got, want)
		}
	}
}

func ExampleIsIdentifierES6() {
	fmt.Println(keyword.IsIdentifierES6("let", false))
	fmt.Println(keyword.IsIdentifierES6("let", true))
	fmt.Println(keyword.IsIdentifierES6("\U00010400", false))
	fmt.Println(keyword.IsIdentifierES5("\U00010400", false))
	// Output:
	// true
	// false
	// true
	// false
}

var (
	benchKeywords    = []string{"if", "for", "while", "function", "return", "var", "const", "let", "class"}
	benchIdentifiers = []string{"foo", "bar", "baz", "_underscore", "$dollar", "myVariable", "anotherOne"}
	benchLiterals    = []string{"null", "true", "false"}
	benchNonKeywords = []string{"myFunc", "variable", "notAKeyword"}
)

func BenchmarkKeyword(b *testing.B) {
	b.Run("keywords", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for _, w := range benchKeywords {
				keyword.IsKeywordES6(w, false)
			}
		}
	})
	b.Run("non-keywords", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for _, w := range benchNonKeywords {
				keyword.IsKeywordES6(w, false)
			}
		}
	})
	b.Run("literals", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for _, w := range benchLiterals {
				keyword.IsReservedWordES6(w, false)
			}
		}
	})
}

func BenchmarkIdentifier(b *testing.B) {
	for _, bench := range []struct {
		name string
		fn   func(string) bool
	}{
		{"IdentifierES5", func(id string) bool { return keyword.IsIdentifierES5(id, false) }},
		{"IdentifierES6", func(id string) bool { return keyword.IsIdentifierES6(id, false) }},
		{"NameES5", keyword.IsIdentifierNameES5},
		{"NameES6", keyword.IsIdentifierNameES6},
		{"NameES6/uncached", keyword.NewValidator(0).IsIdentifierNameES6},
	} {
		b.Run(bench.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for _, id := range benchIdentifiers {
					bench.fn(id)
				}
			}
		})
	}
}
