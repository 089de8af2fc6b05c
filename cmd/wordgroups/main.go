// SPDX-License-Identifier: MIT
// Package: wordgroups/cmd/wordgroups
//
// main.go - entry point.

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
