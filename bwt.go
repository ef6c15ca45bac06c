// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package fmindex

import (
	"fmt"
	"io"
	"strings"
)

// ConstructBWT stores and returns the Burrows–Wheeler transform of text: the
// symbol preceding each suffix array rotation, read straight from the
// suffix array without building the matrix.
//
// Requires ConstructSuffixArray on the same text.
func (ix *Index) ConstructBWT(text string) (string, error) {
	if err := ix.require("ConstructBWT", stageSuffixArray); err != nil {
		return "", err
	}
	if _, err := ix.bind(text); err != nil {
		return "", fmt.Errorf("ConstructBWT: %w", err)
	}
	n := len(ix.ext)
	bwt := make([]rune, n)
	for i, off := range ix.sa {
		bwt[i] = symbolAt(ix.ext, (off+n-1)%n)
		if off == 0 {
			ix.endRow = i
		}
	}
	ix.bwt = bwt
	ix.done |= stageBWT
	return string(bwt), nil
}

// ConstructBWM returns the rows of the Burrows–Wheeler matrix, the sorted
// rotations of text and the sentinel. The matrix takes quadratic memory and
// is not stored in the index.
//
// Requires ConstructSuffixArray on the same text.
func (ix *Index) ConstructBWM(text string) ([]string, error) {
	if err := ix.require("ConstructBWM", stageSuffixArray); err != nil {
		return nil, err
	}
	if _, err := ix.bind(text); err != nil {
		return nil, fmt.Errorf("ConstructBWM: %w", err)
	}
	n := len(ix.ext)
	rows := make([]string, n)
	var sb strings.Builder
	for i, off := range ix.sa {
		sb.Reset()
		for j := 0; j < n; j++ {
			sb.WriteRune(symbolAt(ix.ext, (off+j)%n))
		}
		rows[i] = sb.String()
	}
	return rows, nil
}

// PrintBWM writes the Burrows–Wheeler matrix of text to w, one "index:\trow"
// line per row.
func (ix *Index) PrintBWM(w io.Writer, text string) error {
	rows, err := ix.ConstructBWM(text)
	if err != nil {
		return err
	}
	for i, row := range rows {
		if _, err := fmt.Fprintf(w, "%d:\t%s\n", i, row); err != nil {
			return err
		}
	}
	return nil
}

// ComputeR returns the number of maximal runs of equal symbols in the BWT.
//
// Requires ConstructBWT.
func (ix *Index) ComputeR() (int, error) {
	if err := ix.require("ComputeR", stageBWT); err != nil {
		return 0, err
	}
	runs := 0
	for i, c := range ix.bwt {
		if i == 0 || c != ix.bwt[i-1] {
			runs++
		}
	}
	return runs, nil
}
