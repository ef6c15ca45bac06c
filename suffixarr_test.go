// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package fmindex

import (
	"math/rand"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

// symbols used by random texts; '#' sorts below the sentinel codepoint.
var randSymbols = []rune{'#', 'a', 'b', 'c', 'é', 'ß', '🍌', '🍍'}

func genRandText(rnd *rand.Rand, size, sigma int) []rune {
	text := make([]rune, size)
	for i := range text {
		text[i] = randSymbols[rnd.Intn(sigma)]
	}
	return text
}

func genRandText_32(rnd *rand.Rand, size int) []rune {
	text := make([]rune, size)
	for i := range text {
		// Skip the sentinel codepoint.
		text[i] = rnd.Int31n(0x10000)
		if text[i] == Sentinel {
			text[i]++
		}
	}
	return text
}

// makeSA sorts fully materialized rotations.
func makeSA(ext []int32) []int {
	n := len(ext)
	rotations := make([][]int32, n)
	for i := range rotations {
		rotations[i] = append(slices.Clone(ext[i:]), ext[:i]...)
	}
	sa := make([]int, n)
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(i, j int) bool {
		return slices.Compare(rotations[sa[i]], rotations[sa[j]]) < 0
	})
	return sa
}

func TestSuffixArray(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	tests := map[string]struct {
		input []rune
	}{
		"empty string": {
			input: []rune{},
		},
		"single character": {
			input: []rune{100},
		},
		"same characters": {
			input: []rune("aaaaaaaaaaaaaaaaaaaaa"),
		},
		"banana": {
			input: []rune("banana"),
		},
		"mississippi": {
			input: []rune("mississippi"),
		},
		"abracadabra": {
			input: []rune("abracadabra"),
		},
		"ACGTGCCTAGCCTACCGTGCC": {
			input: []rune("ACGTGCCTAGCCTACCGTGCC"),
		},
		"below sentinel": {
			input: []rune("a#!b# "),
		},
		"zero characters": {
			input: []rune{0, 0, 0, 1, 1, 1},
		},
		"reverse sorted": {
			input: []rune{5, 4, 3, 2, 1},
		},
		"emoji": {
			input: []rune("🍌🍍🍌🍌🍍🍌"),
		},
		"long random string small alphabet": {
			input: genRandText(rnd, 500, 2),
		},
		"long random string": {
			input: genRandText(rnd, 500, len(randSymbols)),
		},
		"long random string 32": {
			input: genRandText_32(rnd, 500),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ext := extend(tc.input)
			exp := makeSA(ext)
			assert.Equal(t, exp, sortRotations(ext))
			assert.Equal(t, exp, doubleRotations(ext))
			assert.Equal(t, len(tc.input), exp[0], "sentinel rotation must rank first")
		})
	}
}

func TestLookup(t *testing.T) {
	ext := extend([]rune("banana"))
	sa := sortRotations(ext)
	tests := map[string]struct {
		prefix []int32
		l, r   int
	}{
		"empty prefix": {
			prefix: []int32{},
			l:      0,
			r:      7,
		},
		"a": {
			prefix: []int32("a"),
			l:      1,
			r:      4,
		},
		"ana": {
			prefix: []int32("ana"),
			l:      2,
			r:      4,
		},
		"na": {
			prefix: []int32("na"),
			l:      5,
			r:      7,
		},
		"banana": {
			prefix: []int32("banana"),
			l:      4,
			r:      5,
		},
		"sentinel": {
			prefix: []int32{endKey, 'b'},
			l:      0,
			r:      1,
		},
		"across sentinel": {
			prefix: []int32{'a', endKey, 'b'},
			l:      1,
			r:      2,
		},
		"not found between rows": {
			prefix: []int32("ab"),
			l:      2,
			r:      2,
		},
		"not found after last row": {
			prefix: []int32("x"),
			l:      7,
			r:      7,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			l, r := lookup(ext, sa, tc.prefix)
			assert.Equal(t, tc.l, l)
			assert.Equal(t, tc.r, r)
		})
	}
}

func BenchmarkSuffixArray(b *testing.B) {
	rnd := rand.New(rand.NewSource(1))
	tests := []struct {
		name  string
		input []rune
	}{
		{"empty", []rune{}},
		{"single", []rune{100}},
		{"all same", []rune("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")},
		{"ACGTGCCTAGCCTACCGTGCC", []rune("ACGTGCCTAGCCTACCGTGCC")},
		{"long random string", genRandText(rnd, 10000, len(randSymbols))},
		{"long random string 2", genRandText(rnd, 10000, 2)},
	}

	for _, tt := range tests {
		ext := extend(tt.input)
		b.Run("sort/"+tt.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sortRotations(ext)
			}
		})
		b.Run("doubling/"+tt.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				doubleRotations(ext)
			}
		})
	}
}
