// Package disks: Row method implementations.
//
// This file provides the bounds-checked accessors, the adjacent-swap
// primitive, the alternating/sorted predicates, and the rendering,
// comparison and cloning helpers for the Row type defined in types.go.
// Every method is a plain, allocation-light slice walk; Rows carry no
// locks, a Row is a single-owner value.

package disks

import (
	"fmt"
	"strings"
)

// TotalCount returns the number of disks in the row (2n for a constructed row).
// Complexity: O(1).
func (r *Row) TotalCount() int {
	return len(r.colors)
}

// LightCount returns the number of light disks, always half of TotalCount.
// Complexity: O(1).
func (r *Row) LightCount() int {
	return len(r.colors) / 2
}

// DarkCount returns the number of dark disks. Construction guarantees it
// equals LightCount, so the two are deliberately defined identically.
// Complexity: O(1).
func (r *Row) DarkCount() int {
	return r.LightCount()
}

// IsValidIndex reports whether position i addresses a disk in the row.
// Complexity: O(1).
func (r *Row) IsValidIndex(i int) bool {
	return i >= 0 && i < len(r.colors)
}

// Get returns the color of the disk at position i.
// Returns ErrIndexOutOfRange (wrapped with the offending position) when i
// does not address a disk.
// Complexity: O(1).
func (r *Row) Get(i int) (Color, error) {
	if !r.IsValidIndex(i) {
		return 0, fmt.Errorf("%w: position %d of %d", ErrIndexOutOfRange, i, len(r.colors))
	}

	return r.colors[i], nil
}

// Swap exchanges the disks at positions left and left+1 — the one legal move
// of the puzzle. Returns ErrIndexOutOfRange when either side of the pair
// falls outside the row (left must lie in [0, TotalCount()-2]).
// Complexity: O(1).
func (r *Row) Swap(left int) error {
	// Both halves of the pair must be in range.
	if !r.IsValidIndex(left) || !r.IsValidIndex(left+1) {
		return fmt.Errorf("%w: swap pair (%d,%d) of %d", ErrIndexOutOfRange, left, left+1, len(r.colors))
	}
	r.colors[left], r.colors[left+1] = r.colors[left+1], r.colors[left]

	return nil
}

// String renders the row as space-separated single-letter color codes,
// e.g. "D L D L" for the canonical two-pair row. An empty row renders as "".
// Complexity: O(n).
func (r *Row) String() string {
	var sb strings.Builder
	// Two characters per disk ("D "), minus the absent final separator.
	sb.Grow(2 * len(r.colors))
	for i, c := range r.colors {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}

	return sb.String()
}

// Equal reports whether both rows hold the same colors in the same order.
// A nil row or a row of different length is never equal.
// Complexity: O(n).
func (r *Row) Equal(other *Row) bool {
	if other == nil || len(r.colors) != len(other.colors) {
		return false
	}
	for i, c := range r.colors {
		if c != other.colors[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent deep copy of the row. Mutating the clone
// never affects the original; sorting strategies rely on this to keep the
// caller's row untouched.
// Complexity: O(n).
func (r *Row) Clone() *Row {
	colors := make([]Color, len(r.colors))
	copy(colors, r.colors)

	return &Row{colors: colors}
}

// IsAlternating reports whether the row is in the canonical starting
// arrangement: dark on every even position, light on every odd one.
// The check is strict — a row holding no disks is not alternating, because
// the flag below is seeded false and only a verified disk may raise it.
// Complexity: O(n).
func (r *Row) IsAlternating() bool {
	alternating := false
	for i, c := range r.colors {
		// Even positions must be dark, odd positions light.
		want := Light
		if i%2 == 0 {
			want = Dark
		}
		if c != want {
			return false
		}
		alternating = true
	}

	return alternating
}

// IsSorted reports whether the row reached the goal state: every position in
// the left half light (which, by the color-multiset invariant, leaves every
// position in the right half dark). Like IsAlternating, the check is strict:
// a row holding no disks is not sorted.
// Complexity: O(n).
func (r *Row) IsSorted() bool {
	sorted := false
	for i := 0; i < len(r.colors)/2; i++ {
		if r.colors[i] != Light {
			return false
		}
		sorted = true
	}

	return sorted
}
