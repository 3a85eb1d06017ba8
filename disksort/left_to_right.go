// Package disksort provides an implementation of the left-to-right strategy
// for the Alternating Disks puzzle. It repeatedly sweeps the row in one
// direction, bubbling dark disks rightward until the light half is complete.
package disksort

import (
	"github.com/juliancoronado/implementing-algorithms/disks"
)

// SortLeftToRight solves the puzzle by repeated forward sweeps.
// It operates on an independent clone; the caller's row is never mutated.
//
// Error Conditions:
//   - ErrNilRow           : if row is nil.
//   - disks.ErrEmptyRow   : if row holds no disks.
//
// Steps:
//  1. Validate the input row (non-nil, at least one disk).
//  2. Clone the row; all moves happen on the clone.
//  3. While the clone is not sorted, run one forward sweep: for every
//     position i from left to right, swap whenever a dark disk at i sits
//     immediately before a light disk at i+1. Count each swap.
//  4. After each sweep, bump the pass counter and emit the OnPass snapshot;
//     sortedness is re-checked only between sweeps, never mid-sweep.
//  5. Return the sorted clone with the swap and pass totals.
//
// The Method option is ignored here; use Sort for method dispatch.
// Complexity: O(n²) time — the canonical n-pair row takes n sweeps and
// n(n+1)/2 swaps. Memory: O(n) for the clone.
func SortLeftToRight(row *disks.Row, opts ...Option) (*SortResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return sortLeftToRight(row, &o)
}

// sortLeftToRight is the shared engine behind SortLeftToRight and the
// MethodLeftToRight branch of Sort.
func sortLeftToRight(row *disks.Row, o *SortOptions) (*SortResult, error) {
	// 1. Validate input before any work.
	if err := validateRow(row); err != nil {
		return nil, err
	}

	// 2. Work on an independent clone; the caller keeps the original.
	work := row.Clone()

	// 3. Sweep until the light half is complete. An unsorted row always
	//    contains at least one dark/light neighbour pair, so every sweep
	//    below performs at least one swap and the loop terminates.
	var swaps, passes uint64
	for !work.IsSorted() {
		n, err := forwardSweep(work, o)
		if err != nil {
			return nil, err
		}
		swaps += n

		// 4. One full sweep = one pass; snapshot for observers.
		passes++
		o.OnPass(passes, work.Clone())
	}

	// 5. Done: work is sorted, totals are final.
	return &SortResult{After: work, Swaps: swaps, Passes: passes}, nil
}

// forwardSweep walks the row once from left to right, exchanging every
// adjacent dark/light pair it meets, and returns the number of swaps made.
// A swapped dark disk is immediately re-examined at its new position, so a
// lone dark disk bubbles right across the whole sweep.
func forwardSweep(work *disks.Row, o *SortOptions) (uint64, error) {
	var swaps uint64
	for i := 0; i+1 < work.TotalCount(); i++ {
		cur, err := work.Get(i)
		if err != nil {
			return swaps, err
		}
		next, err := work.Get(i + 1)
		if err != nil {
			return swaps, err
		}
		// Only the dark-before-light arrangement is an inversion.
		if cur == disks.Dark && next == disks.Light {
			if err = work.Swap(i); err != nil {
				return swaps, err
			}
			swaps++
			o.OnSwap(i)
		}
	}

	return swaps, nil
}
