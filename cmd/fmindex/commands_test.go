// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/nekitakamenev/fmindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := map[string]struct {
		args []string
		exp  string
	}{
		"bwt":             {args: []string{"bwt", "banana"}, exp: "annb$aa\nruns: 5\n"},
		"bwt doubling":    {args: []string{"bwt", "--doubling", "banana"}, exp: "annb$aa\nruns: 5\n"},
		"bwm":             {args: []string{"bwm", "abc"}, exp: "0:\t$abc\n1:\tabc$\n2:\tbc$a\n3:\tc$ab\n"},
		"invert":          {args: []string{"invert", "mississippi"}, exp: "mississippi\n"},
		"search":          {args: []string{"search", "mississippi", "ssi"}, exp: "10\t11\n"},
		"search no match": {args: []string{"search", "mississippi", "sssi"}, exp: "no match\n"},
		"count":           {args: []string{"count", "mississippi", "si"}, exp: "2\n"},
		"count nfc":       {args: []string{"count", "--nfc", "cafe\u0301", "caf\u00e9"}, exp: "1\n"},
		"locate":          {args: []string{"locate", "mississippi", "issi"}, exp: "1\n4\n"},
		"locate first":    {args: []string{"locate", "--first", "mississippi", "i"}, exp: "1\n"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, out)
		})
	}
}

func TestCommandsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text.txt")
	require.NoError(t, os.WriteFile(path, []byte("mississippi"), 0o600))

	out, err := run(t, "count", "--file", path, "ss")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "count", "ba$nana", "a")
	assert.ErrorIs(t, err, fmindex.ErrSentinelInText)

	_, err = run(t, "count", "banana")
	assert.Error(t, err)

	_, err = run(t, "bwt", "--file", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
