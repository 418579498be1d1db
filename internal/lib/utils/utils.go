// Package utils contains small helper functions used across the project.
//
// These are generic helpers that don't belong to a specific domain.
package utils

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// PrintJSON writes v as a single line of compact JSON to w.
//
// It is the diagnostic print used while testing the API by hand; it is not
// a replacement for structured logging.
func PrintJSON(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}

	return nil
}
