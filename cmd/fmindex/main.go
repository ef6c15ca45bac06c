// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Command fmindex builds an FM-index over a text and runs queries against it.
//
// Usage:
//
//	fmindex bwt banana
//	fmindex bwm banana
//	fmindex count mississippi ssi
//	fmindex locate --file book.txt whale
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
