// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package fmindex

import (
	"fmt"
	"slices"
)

// Interval is an inclusive range of Burrows–Wheeler matrix rows.
type Interval struct {
	Top, Bottom int
}

// Len returns the number of rows in the interval.
func (iv Interval) Len() int {
	return iv.Bottom - iv.Top + 1
}

// LFMapping returns the row whose rotation is the rotation of row shifted
// right by one, that is, with BWT[row] moved to the front.
func (ix *Index) LFMapping(row int) (int, error) {
	if err := ix.checkBuilt("LFMapping"); err != nil {
		return 0, err
	}
	if row < 0 || row >= len(ix.bwt) {
		return 0, fmt.Errorf("LFMapping: row %d of %d: %w", row, len(ix.bwt), ErrRowOutOfRange)
	}
	return ix.lf(row), nil
}

func (ix *Index) lf(row int) int {
	c := ix.bwt[row]
	if c == Sentinel {
		return 0
	}
	k := ix.symbols[c]
	return ix.first[k] + ix.tallies[k][row] - 1
}

// InverseBWT reconstructs the indexed text from the BWT alone.
func (ix *Index) InverseBWT() (string, error) {
	if err := ix.checkBuilt("InverseBWT"); err != nil {
		return "", err
	}
	// Row 0 is the sentinel rotation, so BWT[0] is the last text symbol.
	// Each LF step moves one symbol back until the text start.
	n := len(ix.bwt)
	text := make([]rune, n-1)
	row := 0
	for i := n - 2; i >= 0; i-- {
		text[i] = ix.bwt[row]
		row = ix.lf(row)
	}
	return string(text), nil
}

// BackwardSearch returns the rows whose rotations start with pattern. It
// reports false, with a nil error, when there are none. The empty pattern
// matches every row. The sentinel may appear in pattern and matches the end
// of the text.
func (ix *Index) BackwardSearch(pattern string) (Interval, bool, error) {
	if err := ix.checkBuilt("BackwardSearch"); err != nil {
		return Interval{}, false, err
	}
	p, err := ix.runes(pattern)
	if err != nil {
		return Interval{}, false, fmt.Errorf("BackwardSearch: %w", err)
	}
	iv, ok := ix.backwardSearch(p)
	return iv, ok, nil
}

func (ix *Index) backwardSearch(p []rune) (Interval, bool) {
	top, bottom := 0, len(ix.bwt)-1
	for i := len(p) - 1; i >= 0; i-- {
		if c := p[i]; c == Sentinel {
			top, bottom = ix.endRank(top-1), ix.endRank(bottom)-1
		} else {
			k, ok := ix.symbols[c]
			if !ok {
				return Interval{}, false
			}
			top, bottom = ix.first[k]+ix.rank(k, top-1), ix.first[k]+ix.rank(k, bottom)-1
		}
		if top > bottom {
			return Interval{}, false
		}
	}
	return Interval{top, bottom}, true
}

// CountOccurrences returns the number of occurrences of pattern in the text.
func (ix *Index) CountOccurrences(pattern string) (int, error) {
	iv, ok, err := ix.BackwardSearch(pattern)
	if err != nil || !ok {
		return 0, err
	}
	return iv.Len(), nil
}

// Locate returns the text offsets at which pattern occurs, in ascending order.
func (ix *Index) Locate(pattern string) ([]int, error) {
	iv, ok, err := ix.BackwardSearch(pattern)
	if err != nil || !ok {
		return nil, err
	}
	offsets := slices.Clone(ix.sa[iv.Top : iv.Bottom+1])
	slices.Sort(offsets)
	return offsets, nil
}

// FirstOccurrence returns the smallest text offset at which pattern occurs.
func (ix *Index) FirstOccurrence(pattern string) (int, bool, error) {
	iv, ok, err := ix.BackwardSearch(pattern)
	if err != nil || !ok {
		return 0, false, err
	}
	return ix.sa[ix.minSA.Query(iv.Top, iv.Bottom)], true, nil
}

// SearchSuffixArray finds the same rows as BackwardSearch by binary search
// over the suffix array instead of the tally table.
func (ix *Index) SearchSuffixArray(pattern string) (Interval, bool, error) {
	if err := ix.checkBuilt("SearchSuffixArray"); err != nil {
		return Interval{}, false, err
	}
	p, err := ix.runes(pattern)
	if err != nil {
		return Interval{}, false, fmt.Errorf("SearchSuffixArray: %w", err)
	}
	prefix := make([]int32, len(p))
	for i, c := range p {
		prefix[i] = c
		if c == Sentinel {
			prefix[i] = endKey
		}
	}
	l, r := lookup(ix.ext, ix.sa, prefix)
	if l == r {
		return Interval{}, false, nil
	}
	return Interval{l, r - 1}, true, nil
}
