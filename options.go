// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package fmindex

import "log/slog"

// Construction selects the suffix array construction algorithm.
type Construction int

const (
	// SortRotations sorts all rotations with a comparison sort.
	SortRotations Construction = iota
	// PrefixDoubling ranks rotations by doubling prefix lengths, O(n log² n).
	PrefixDoubling
)

func (c Construction) String() string {
	switch c {
	case SortRotations:
		return "sort-rotations"
	case PrefixDoubling:
		return "prefix-doubling"
	default:
		return "unknown"
	}
}

// Option configures an Index.
type Option func(*Index)

// WithLogger sets the logger used to report construction progress.
// Stages are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(ix *Index) {
		ix.logger = logger
	}
}

// WithConstruction selects the suffix array construction algorithm.
func WithConstruction(c Construction) Option {
	return func(ix *Index) {
		ix.construction = c
	}
}

// WithNormalization applies Unicode NFC normalization to the text and to
// every pattern. InverseBWT then returns the normalized text.
func WithNormalization() Option {
	return func(ix *Index) {
		ix.normalize = true
	}
}
