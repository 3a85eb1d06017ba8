// Package disks defines the Color and Row types for the Alternating Disks
// puzzle, plus sentinel errors and the NewRow constructor.
//
// This file declares Color, Row, sentinel errors, and NewRow;
// Row behavior (accessors, Swap, predicates, rendering) lives in row.go.
//
// Errors:
//
//	ErrEmptyRow        - light count below 1 requested from NewRow.
//	ErrIndexOutOfRange - position outside [0, TotalCount()).
package disks

import (
	"errors"
	"fmt"
)

// Sentinel errors for row construction and access.
var (
	// ErrEmptyRow indicates NewRow was asked for fewer than one light/dark pair.
	ErrEmptyRow = errors.New("disks: row requires at least one light/dark pair")

	// ErrIndexOutOfRange indicates an operation referenced a position outside the row.
	ErrIndexOutOfRange = errors.New("disks: index out of range")
)

// Color is the face of a single disk: Light or Dark.
type Color uint8

const (
	// Light is the color occupying every odd position of a canonical row.
	Light Color = iota

	// Dark is the color occupying every even position of a canonical row.
	Dark
)

// String renders the single-letter code of the color: "L" for Light, "D" otherwise.
// Complexity: O(1).
func (c Color) String() string {
	if c == Light {
		return "L"
	}

	return "D"
}

// Row is a fixed-length sequence of 2n disks.
//
// A Row is only obtainable from NewRow, and its sole mutation is the
// adjacent-pair Swap, so the multiset of colors (n light + n dark) is
// invariant for the Row's entire lifetime. The zero value is an empty
// row: it renders as "", counts zero disks, and satisfies no predicate.
type Row struct {
	// colors holds the disks left to right. Never resized after construction.
	colors []Color
}

// NewRow builds the canonical alternating row of 2·lightCount disks:
// dark on every even position, light on every odd one (D L D L …).
// Returns ErrEmptyRow when lightCount < 1.
// Complexity: O(n).
func NewRow(lightCount int) (*Row, error) {
	// Validate input: a row needs at least one light/dark pair.
	if lightCount < 1 {
		return nil, fmt.Errorf("%w: light count %d", ErrEmptyRow, lightCount)
	}
	// Allocate all positions light (the Color zero value), then darken the
	// even positions to obtain the alternating pattern.
	colors := make([]Color, 2*lightCount)
	for i := 0; i < len(colors); i += 2 {
		colors[i] = Dark
	}

	return &Row{colors: colors}, nil
}
