// Package disksort provides two classic strategies for solving the Alternating
// Disks puzzle over a *disks.Row: the left-to-right sort and the lawnmower sort.
//
// What & Why
//
//   - What is the puzzle?
//     A row of 2n disks starts in the alternating arrangement D L D L … (dark
//     first). The goal state keeps all n light disks in the left half and all
//     n dark disks in the right half: L … L D … D. The only legal move is
//     swapping two neighbouring disks.
//
//   - Why two strategies?
//     Both reach the goal with exactly the same number of swaps — every
//     dark-before-light neighbour pair must be exchanged once and nothing else
//     ever needs exchanging — but they schedule those swaps differently, which
//     changes how many passes over the row are required. Comparing the two is
//     a compact lesson in how sweep scheduling, not move count, drives the
//     pass complexity of bubble-style procedures.
//
// Algorithms Provided
//
//   - SortLeftToRight(row *disks.Row, opts ...Option) (*SortResult, error)
//
//   - Strategy: sweep the row left to right, swapping every dark disk that sits
//     immediately before a light one; repeat whole sweeps until the row is
//     sorted. Sortedness is re-checked only between sweeps.
//
//   - Passes: the canonical n-pair row needs n sweeps.
//
//   - SortLawnmower(row *disks.Row, opts ...Option) (*SortResult, error)
//
//   - Strategy: like a lawnmower working a lawn in both directions, each outer
//     pass sweeps forward (dark disks drift right) and then backward (light
//     disks drift left). Both sweeps run to completion before sortedness is
//     re-checked.
//
//   - Passes: the canonical n-pair row needs ⌈n/2⌉ outer passes — half the
//     sweeps of left-to-right, at the price of a slightly busier inner loop.
//
//   - Complexity (both):
//
//   - Time: O(n²) — Θ(n(n+1)/2) swaps on the canonical row, each found by an
//     O(n) sweep.
//
//   - Space: O(n) for the working clone; the caller's row is never mutated.
//
// When to Choose Which Algorithm
//
//   - SortLeftToRight
//
//   - The textbook formulation: one sweep direction, easiest to reason about
//     and to trace by hand.
//
//   - Preferred when per-pass work matters less than per-pass simplicity.
//
//   - SortLawnmower
//
//   - Halves the number of outer passes, so per-pass bookkeeping (OnPass
//     snapshots, rendering, logging by the caller) runs half as often.
//
//   - Preferred when observing passes is expensive or when the bidirectional
//     schedule is the point (e.g. teaching cocktail-shaker style sweeps).
//
// Error Conditions
//
//	All entry points fail fast on inputs no strategy can make progress on:
//
//	- ErrNilRow
//	    - row == nil.
//
//	- disks.ErrEmptyRow
//	    - row holds no disks (the zero value disks.Row); such a row can never
//	      satisfy IsSorted, so sorting it would not terminate.
//
//	- ErrUnknownMethod (Sort only)
//	    - SortOptions.Method names neither MethodLeftToRight nor MethodLawnmower.
//
// GoDoc Summary
//
//   - Sort(row *disks.Row, opts ...Option) (*SortResult, error)
//     Unified dispatcher; routes on WithMethod (default MethodLeftToRight).
//
//   - SortLeftToRight / SortLawnmower
//     Direct entry points; the Method option is ignored by both.
//
//   - WithOnSwap(fn) / WithOnPass(fn)
//     Hooks observing every counted swap and every completed pass; OnPass
//     receives an independent snapshot, safe to retain or mutate.
//
//   - SortResult{After, Swaps, Passes}
//     The sorted row (always an independent clone), the total number of
//     adjacent swaps, and the number of outer passes.
//
// Both strategies are deterministic: the same input row always produces the
// same swap sequence, the same pass snapshots, and the same SortResult.
//
// For usage walkthroughs, see the example_test.go file in this package.
package disksort
