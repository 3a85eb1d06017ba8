// Package disksort defines configuration options and sentinel errors for
// sorting an alternating row of disks. It supports selecting between the
// left-to-right and lawnmower strategies via SortOptions.
package disksort

import (
	"errors"
	"fmt"

	"github.com/juliancoronado/implementing-algorithms/disks"
)

// Sentinel errors for sort execution.
var (
	// ErrNilRow indicates a nil *disks.Row was handed to a sort entry point.
	ErrNilRow = errors.New("disksort: row is nil")

	// ErrUnknownMethod indicates SortOptions.Method names no known strategy.
	ErrUnknownMethod = errors.New("disksort: unknown sorting method")
)

// MethodLeftToRight selects the left-to-right strategy (repeated forward sweeps).
const MethodLeftToRight = "left-to-right"

// MethodLawnmower selects the lawnmower strategy (forward+backward sweeps per pass).
const MethodLawnmower = "lawnmower"

// SortOptions holds the strategy selector and the observation hooks.
// Use DefaultOptions() to get a default setup (left-to-right, no-op hooks).
//
// Fields:
//
//	Method string — one of MethodLeftToRight or MethodLawnmower.
//	OnSwap func(left int) — observes every counted swap.
//	OnPass func(pass uint64, snapshot *disks.Row) — observes every completed pass.
//
// See: disksort.Sort, disksort.SortLeftToRight, disksort.SortLawnmower.
type SortOptions struct {
	// Method to use: MethodLeftToRight or MethodLawnmower.
	// Ignored by the direct entry points SortLeftToRight and SortLawnmower.
	Method string

	// OnSwap is called after each counted swap with the left position of the
	// exchanged pair. Swaps observed in call order replay to the final row.
	OnSwap func(left int)

	// OnPass is called after each completed pass with the 1-based pass number
	// and an independent snapshot of the working row. The snapshot is a clone:
	// retaining or mutating it never disturbs the sort in progress.
	OnPass func(pass uint64, snapshot *disks.Row)
}

// Option configures SortOptions. All Option functions modify the pointed SortOptions.
type Option func(*SortOptions)

// WithMethod returns an Option that sets the strategy Method.
// Allowed values: MethodLeftToRight, MethodLawnmower.
func WithMethod(m string) Option {
	return func(o *SortOptions) {
		o.Method = m
	}
}

// WithOnSwap registers a callback observing every counted swap.
// A nil fn is ignored and the no-op default stays in place.
func WithOnSwap(fn func(left int)) Option {
	return func(o *SortOptions) {
		if fn != nil {
			o.OnSwap = fn
		}
	}
}

// WithOnPass registers a callback observing every completed pass.
// A nil fn is ignored and the no-op default stays in place.
func WithOnPass(fn func(pass uint64, snapshot *disks.Row)) Option {
	return func(o *SortOptions) {
		if fn != nil {
			o.OnPass = fn
		}
	}
}

// DefaultOptions returns SortOptions initialized for left-to-right by default:
//
//	– Method = MethodLeftToRight
//	– no-op hooks (OnSwap, OnPass).
//
// Complexity: O(1) to construct.
func DefaultOptions() SortOptions {
	return SortOptions{
		Method: MethodLeftToRight,
		OnSwap: func(int) {},
		OnPass: func(uint64, *disks.Row) {},
	}
}

// SortResult holds the outcome of a sort:
//   - After: the sorted row, always an independent clone of the input.
//   - Swaps: total number of adjacent exchanges performed.
//   - Passes: number of outer passes (a lawnmower pass spans both sweeps).
//
// An input that is already sorted yields Swaps == 0, Passes == 0, and an
// After equal to the input.
type SortResult struct {
	After  *disks.Row
	Swaps  uint64
	Passes uint64
}

// Sort selects and runs the sorting strategy based on the Method option.
//
//	– If Method == MethodLeftToRight: behaves as SortLeftToRight (the default).
//	– If Method == MethodLawnmower:   behaves as SortLawnmower.
//	– Otherwise:                      returns ErrUnknownMethod.
//
// Returns:
//
//	*SortResult — sorted row, swap count, and pass count.
//	error       — non-nil if the input or the method selection is invalid.
//
// Note: this is optional scaffolding — SortLeftToRight and SortLawnmower can
// still be called directly.
func Sort(row *disks.Row, opts ...Option) (*SortResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// Dispatch by method name.
	switch o.Method {
	case MethodLeftToRight:
		return sortLeftToRight(row, &o)
	case MethodLawnmower:
		return sortLawnmower(row, &o)
	default:
		// Unknown method name.
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// validateRow rejects inputs no strategy can make progress on: nil rows and
// rows holding no disks (an empty row never satisfies IsSorted, so sweeping
// it would not terminate).
func validateRow(row *disks.Row) error {
	if row == nil {
		return ErrNilRow
	}
	if row.TotalCount() == 0 {
		return fmt.Errorf("%w: zero disks to sort", disks.ErrEmptyRow)
	}

	return nil
}
