// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package fmindex implements an FM-index: a full-text index over the
// Burrows–Wheeler transform of a Unicode text that counts and locates exact
// pattern occurrences with backward search.
//
// The text is extended with the sentinel '$', which sorts below every other
// symbol and must not occur in the text itself. Symbols are codepoints, so
// multi-byte characters are single units.
//
//	ix, err := fmindex.Build("mississippi")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	n, _ := ix.CountOccurrences("ssi") // 2
//
// Construction can also be driven stage by stage on an empty index from New:
// FindAlphabet, ComputeCounts, ConstructSuffixArray, ConstructBWT and
// ConstructTallies. Queries require a completed Build. A built index is
// immutable and safe for concurrent queries.
package fmindex

import (
	"fmt"
	"log/slog"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/viniciusth/rmq"
	"golang.org/x/text/unicode/norm"
)

// Sentinel terminates the indexed text. It is the smallest symbol of every index.
const Sentinel = '$'

// stage is a bit set of completed construction stages.
type stage uint8

const (
	stageAlphabet stage = 1 << iota
	stageCounts
	stageSuffixArray
	stageBWT
	stageTallies
)

func (s stage) String() string {
	switch s {
	case stageAlphabet:
		return "FindAlphabet"
	case stageCounts:
		return "ComputeCounts"
	case stageSuffixArray:
		return "ConstructSuffixArray"
	case stageBWT:
		return "ConstructBWT"
	case stageTallies:
		return "ConstructTallies"
	default:
		return "unknown stage"
	}
}

// Index is an FM-index over a single text.
type Index struct {
	logger       *slog.Logger
	construction Construction
	normalize    bool

	bound    bool   // text has been fixed by a stage
	text     []rune // indexed text, without the sentinel
	done     stage
	alphabet []rune
	symbols  map[rune]int // symbol -> position in alphabet
	counts   []int
	first    []int // first BWM row of each alphabet symbol
	ext      []int32 // text followed by endKey
	sa       []int
	bwt      []rune
	endRow   int // BWT row holding the sentinel
	tallies  [][]int
	minSA    *rmq.RMQHybridNaive[int]
	built    bool
}

// New returns an empty index.
func New(opts ...Option) *Index {
	ix := &Index{}
	for _, opt := range opts {
		opt(ix)
	}
	if ix.logger == nil {
		ix.logger = slog.New(slog.DiscardHandler)
	}
	return ix
}

// Build creates an index over text.
func Build(text string, opts ...Option) (*Index, error) {
	ix := New(opts...)
	if err := ix.Build(text); err != nil {
		return nil, err
	}
	return ix, nil
}

// Build runs every construction stage over text, discarding any previous
// state. On failure the index is left empty.
func (ix *Index) Build(text string) error {
	ix.reset()
	if ix.logger == nil {
		ix.logger = slog.New(slog.DiscardHandler)
	}
	stages := []struct {
		name string
		run  func() error
	}{
		{stageAlphabet.String(), func() error { _, err := ix.FindAlphabet(text); return err }},
		{stageCounts.String(), func() error { _, err := ix.ComputeCounts(text); return err }},
		{stageSuffixArray.String(), func() error { _, err := ix.ConstructSuffixArray(text); return err }},
		{stageBWT.String(), func() error { _, err := ix.ConstructBWT(text); return err }},
		{stageTallies.String(), func() error { _, err := ix.ConstructTallies(); return err }},
	}
	started := time.Now()
	for _, st := range stages {
		start := time.Now()
		if err := st.run(); err != nil {
			ix.reset()
			return err
		}
		ix.logger.Debug("fmindex stage done", "stage", st.name, "elapsed", time.Since(start))
	}
	ix.minSA = rmq.NewRMQHybridNaive(ix.sa)
	ix.built = true
	ix.logger.Debug("fmindex built",
		"rows", len(ix.bwt),
		"alphabet", len(ix.alphabet),
		"construction", ix.construction.String(),
		"elapsed", time.Since(started))
	return nil
}

func (ix *Index) reset() {
	*ix = Index{
		logger:       ix.logger,
		construction: ix.construction,
		normalize:    ix.normalize,
	}
}

// bind validates text and fixes it as the text of the index. Later stages
// must be given the same text.
func (ix *Index) bind(text string) ([]rune, error) {
	runes, err := ix.runes(text)
	if err != nil {
		return nil, err
	}
	if slices.Contains(runes, Sentinel) {
		return nil, ErrSentinelInText
	}
	if !ix.bound {
		ix.text, ix.bound = runes, true
		return runes, nil
	}
	if !slices.Equal(ix.text, runes) {
		return nil, ErrTextMismatch
	}
	return ix.text, nil
}

// runes decodes s into symbols, applying normalization if configured.
func (ix *Index) runes(s string) ([]rune, error) {
	if !utf8.ValidString(s) {
		return nil, ErrInvalidUTF8
	}
	if ix.normalize {
		s = norm.NFC.String(s)
	}
	return []rune(s), nil
}

// require reports the first stage of want that has not run yet.
func (ix *Index) require(op string, want stage) error {
	for s := stageAlphabet; s <= stageTallies; s <<= 1 {
		if want&s != 0 && ix.done&s == 0 {
			return fmt.Errorf("%s before %s: %w", op, s, ErrStageOrder)
		}
	}
	return nil
}

func (ix *Index) checkBuilt(op string) error {
	if !ix.built {
		return fmt.Errorf("%s: %w", op, ErrNotBuilt)
	}
	return nil
}

// Len returns the number of BWT rows, the text length plus one.
func (ix *Index) Len() (int, error) {
	if err := ix.checkBuilt("Len"); err != nil {
		return 0, err
	}
	return len(ix.bwt), nil
}

// Alphabet returns the sorted distinct symbols of the text.
func (ix *Index) Alphabet() ([]rune, error) {
	if err := ix.checkBuilt("Alphabet"); err != nil {
		return nil, err
	}
	return slices.Clone(ix.alphabet), nil
}

// BWT returns the Burrows–Wheeler transform of the sentinel-terminated text.
func (ix *Index) BWT() (string, error) {
	if err := ix.checkBuilt("BWT"); err != nil {
		return "", err
	}
	return string(ix.bwt), nil
}
