// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package fmindex

import "errors"

var (
	// ErrNotBuilt is returned by queries on an index whose Build has not completed.
	ErrNotBuilt = errors.New("fmindex: index not built")
	// ErrStageOrder is returned when a construction stage runs before its prerequisites.
	ErrStageOrder = errors.New("fmindex: construction stage called out of order")
	// ErrSentinelInText is returned when the text contains the reserved sentinel symbol.
	ErrSentinelInText = errors.New("fmindex: text contains the reserved sentinel symbol")
	// ErrInvalidUTF8 is returned for text or patterns that are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("fmindex: invalid UTF-8 encoding")
	// ErrTextMismatch is returned when a stage is given a different text than
	// the stages before it.
	ErrTextMismatch = errors.New("fmindex: text differs from the one earlier stages ran on")
	// ErrRowOutOfRange is returned for a row index outside 0..n-1.
	ErrRowOutOfRange = errors.New("fmindex: row out of range")
)
