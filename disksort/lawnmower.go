// Package disksort provides an implementation of the lawnmower strategy for
// the Alternating Disks puzzle. Each outer pass mows the row in both
// directions — forward pushing dark disks right, backward pulling light
// disks left — halving the pass count of the one-directional sort.
package disksort

import (
	"github.com/juliancoronado/implementing-algorithms/disks"
)

// SortLawnmower solves the puzzle with bidirectional passes.
// It operates on an independent clone; the caller's row is never mutated.
//
// Error Conditions:
//   - ErrNilRow           : if row is nil.
//   - disks.ErrEmptyRow   : if row holds no disks.
//
// Steps:
//  1. Validate the input row (non-nil, at least one disk).
//  2. Clone the row; all moves happen on the clone.
//  3. While the clone is not sorted, run one outer pass: a forward sweep
//     (swap dark-before-light pairs scanning left to right), then a backward
//     sweep (swap light-after-dark pairs scanning right to left). Both sweeps
//     run to completion; sortedness is re-checked only between outer passes.
//  4. After each outer pass, bump the pass counter and emit the OnPass
//     snapshot.
//  5. Return the sorted clone with the swap and pass totals.
//
// The Method option is ignored here; use Sort for method dispatch.
// Complexity: O(n²) time — the canonical n-pair row takes ⌈n/2⌉ outer passes
// and the same n(n+1)/2 swaps as the left-to-right sort. Memory: O(n).
func SortLawnmower(row *disks.Row, opts ...Option) (*SortResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return sortLawnmower(row, &o)
}

// sortLawnmower is the shared engine behind SortLawnmower and the
// MethodLawnmower branch of Sort.
func sortLawnmower(row *disks.Row, o *SortOptions) (*SortResult, error) {
	// 1. Validate input before any work.
	if err := validateRow(row); err != nil {
		return nil, err
	}

	// 2. Work on an independent clone; the caller keeps the original.
	work := row.Clone()

	// 3. Mow until the light half is complete. The backward sweep runs even
	//    when the forward sweep alone reached the goal: the pair of sweeps is
	//    one indivisible pass, and a sweep over a sorted row swaps nothing.
	var swaps, passes uint64
	for !work.IsSorted() {
		fwd, err := forwardSweep(work, o)
		if err != nil {
			return nil, err
		}
		back, err := backwardSweep(work, o)
		if err != nil {
			return nil, err
		}
		swaps += fwd + back

		// 4. Forward + backward = one outer pass; snapshot for observers.
		passes++
		o.OnPass(passes, work.Clone())
	}

	// 5. Done: work is sorted, totals are final.
	return &SortResult{After: work, Swaps: swaps, Passes: passes}, nil
}

// backwardSweep walks the row once from right to left, exchanging every
// light disk that sits immediately after a dark one, and returns the number
// of swaps made. A swapped light disk is immediately re-examined at its new
// position, so a lone light disk bubbles left across the whole sweep.
func backwardSweep(work *disks.Row, o *SortOptions) (uint64, error) {
	var swaps uint64
	for j := work.TotalCount() - 1; j >= 1; j-- {
		cur, err := work.Get(j)
		if err != nil {
			return swaps, err
		}
		prev, err := work.Get(j - 1)
		if err != nil {
			return swaps, err
		}
		// Only the dark-before-light arrangement is an inversion; seen from
		// the right that is a light disk at j with a dark disk at j-1.
		if cur == disks.Light && prev == disks.Dark {
			if err = work.Swap(j - 1); err != nil {
				return swaps, err
			}
			swaps++
			o.OnSwap(j - 1)
		}
	}

	return swaps, nil
}
