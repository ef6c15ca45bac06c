// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package fmindex

// ConstructTallies stores and returns the tally table: for each alphabet
// symbol, the number of its occurrences in BWT[0..i] for every row i. The
// sentinel has no row.
//
// Requires FindAlphabet, ComputeCounts and ConstructBWT.
func (ix *Index) ConstructTallies() ([][]int, error) {
	if err := ix.require("ConstructTallies", stageAlphabet|stageCounts|stageBWT); err != nil {
		return nil, err
	}
	n := len(ix.bwt)
	tallies := make([][]int, len(ix.alphabet))
	for k := range tallies {
		tallies[k] = make([]int, n)
	}
	for i, c := range ix.bwt {
		if i > 0 {
			for k := range tallies {
				tallies[k][i] = tallies[k][i-1]
			}
		}
		if c != Sentinel {
			tallies[ix.symbols[c]][i]++
		}
	}
	ix.tallies = tallies
	ix.done |= stageTallies
	return cloneTallies(tallies), nil
}

func cloneTallies(tallies [][]int) [][]int {
	cp := make([][]int, len(tallies))
	for k, row := range tallies {
		cp[k] = append([]int(nil), row...)
	}
	return cp
}

// rank returns the occurrences of the k-th alphabet symbol in BWT[0..i].
// i may be -1.
func (ix *Index) rank(k, i int) int {
	if i < 0 {
		return 0
	}
	return ix.tallies[k][i]
}

// endRank is rank for the sentinel.
func (ix *Index) endRank(i int) int {
	if i >= ix.endRow {
		return 1
	}
	return 0
}
