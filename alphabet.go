// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package fmindex

import (
	"fmt"
	"slices"
)

// FindAlphabet stores and returns the distinct symbols of text in ascending
// codepoint order. The sentinel is never part of the alphabet.
func (ix *Index) FindAlphabet(text string) ([]rune, error) {
	runes, err := ix.bind(text)
	if err != nil {
		return nil, fmt.Errorf("FindAlphabet: %w", err)
	}
	seen := make(map[rune]struct{})
	alphabet := make([]rune, 0)
	for _, r := range runes {
		if _, ok := seen[r]; !ok {
			seen[r] = struct{}{}
			alphabet = append(alphabet, r)
		}
	}
	slices.Sort(alphabet)
	symbols := make(map[rune]int, len(alphabet))
	for i, r := range alphabet {
		symbols[r] = i
	}
	ix.alphabet, ix.symbols = alphabet, symbols
	ix.done |= stageAlphabet
	return slices.Clone(alphabet), nil
}

// ComputeCounts stores and returns the number of occurrences of each alphabet
// symbol in text, aligned with the alphabet.
//
// Requires FindAlphabet.
func (ix *Index) ComputeCounts(text string) ([]int, error) {
	if err := ix.require("ComputeCounts", stageAlphabet); err != nil {
		return nil, err
	}
	runes, err := ix.bind(text)
	if err != nil {
		return nil, fmt.Errorf("ComputeCounts: %w", err)
	}
	counts := make([]int, len(ix.alphabet))
	for _, r := range runes {
		counts[ix.symbols[r]]++
	}
	// Row 0 belongs to the sentinel, so the first block starts at row 1.
	first := make([]int, len(counts))
	row := 1
	for k, c := range counts {
		first[k] = row
		row += c
	}
	ix.counts, ix.first = counts, first
	ix.done |= stageCounts
	return slices.Clone(counts), nil
}
