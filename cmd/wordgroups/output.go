// SPDX-License-Identifier: MIT
// Package: wordgroups/cmd/wordgroups
//
// output.go - JSON output files.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// writeJSON writes v as 2-space indented JSON without HTML escaping.
func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
