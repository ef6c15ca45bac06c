// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package fmindex

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
)

// endKey stands for the sentinel in extended texts. Codepoints are never
// negative, so it sorts below every symbol, including those below '$'.
const endKey int32 = -1

// extend returns text followed by endKey.
func extend(text []rune) []int32 {
	ext := make([]int32, len(text)+1)
	copy(ext, text)
	ext[len(text)] = endKey
	return ext
}

// symbolAt maps an extended text value back to its symbol.
func symbolAt(ext []int32, i int) rune {
	if ext[i] == endKey {
		return Sentinel
	}
	return ext[i]
}

// ConstructSuffixArray stores and returns the suffix array of text followed
// by the sentinel: the start offsets of all rotations in sorted order.
func (ix *Index) ConstructSuffixArray(text string) ([]int, error) {
	runes, err := ix.bind(text)
	if err != nil {
		return nil, fmt.Errorf("ConstructSuffixArray: %w", err)
	}
	ext := extend(runes)
	switch ix.construction {
	case PrefixDoubling:
		ix.sa = doubleRotations(ext)
	default:
		ix.sa = sortRotations(ext)
	}
	ix.ext = ext
	ix.done |= stageSuffixArray
	return slices.Clone(ix.sa), nil
}

// sortRotations sorts rotations by comparing suffixes. The sentinel occurs
// once, at the end, so two suffixes always differ before either runs out and
// suffix order equals rotation order.
func sortRotations(ext []int32) []int {
	sa := make([]int, len(ext))
	for i := range sa {
		sa[i] = i
	}
	slices.SortFunc(sa, func(a, b int) int {
		return slices.Compare(ext[a:], ext[b:])
	})
	return sa
}

// doubleRotations ranks rotations by their first k symbols for k = 1, 2, 4...
// until all ranks differ. Rotations wrap, so the second half of a 2k-prefix
// is the k-prefix at (i+k) mod n.
func doubleRotations(ext []int32) []int {
	n := len(ext)
	sa := make([]int, n)
	rank := make([]int, n)
	tmp := make([]int, n)
	for i := range sa {
		sa[i], rank[i] = i, int(ext[i])
	}
	for k := 1; ; k <<= 1 {
		slices.SortFunc(sa, func(a, b int) int {
			if c := cmp.Compare(rank[a], rank[b]); c != 0 {
				return c
			}
			return cmp.Compare(rank[(a+k)%n], rank[(b+k)%n])
		})
		tmp[sa[0]] = 0
		for i := 1; i < n; i++ {
			prev, curr := sa[i-1], sa[i]
			tmp[curr] = tmp[prev]
			if rank[prev] != rank[curr] || rank[(prev+k)%n] != rank[(curr+k)%n] {
				tmp[curr]++
			}
		}
		rank, tmp = tmp, rank
		if rank[sa[n-1]] == n-1 {
			return sa
		}
	}
}

// comparePrefix compares the rotation of ext starting at off with prefix,
// looking at most len(prefix) symbols. The rotation wraps around, so a
// prefix longer than ext is compared against the repeated text.
func comparePrefix(ext []int32, off int, prefix []int32) int {
	n := len(ext)
	for i, p := range prefix {
		if c := cmp.Compare(ext[(off+i)%n], p); c != 0 {
			return c
		}
	}
	return 0
}

// lookup finds the rows of sa whose rotations start with prefix by binary
// search. It returns the half-open row range [l, r).
func lookup(ext []int32, sa []int, prefix []int32) (int, int) {
	l := sort.Search(len(sa), func(i int) bool {
		return comparePrefix(ext, sa[i], prefix) >= 0
	})
	r := l + sort.Search(len(sa)-l, func(i int) bool {
		return comparePrefix(ext, sa[l+i], prefix) > 0
	})
	return l, r
}
