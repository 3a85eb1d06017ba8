// Package disks models a row of dark and light disks — the playing field of
// the Alternating Disks puzzle — together with the adjacent-swap primitive
// used to rearrange it.
//
// What & Why
//
//   - What is the Alternating Disks puzzle?
//     A row of 2n disks alternates dark and light (D L D L …, dark first).
//     The goal is to move all light disks to the left half and all dark disks
//     to the right half using only swaps of two neighbouring disks.
//
//   - Why a dedicated Row type?
//     The puzzle's rules are capabilities, not conventions. Row exposes exactly
//     the legal moves — bounds-checked reads and adjacent swaps — so every
//     reachable state is provably a permutation of the canonical arrangement.
//     Sorting strategies live in the sibling disksort package and operate on
//     clones, never on the caller's row.
//
// Row Anatomy
//
//   - NewRow(n) builds 2n disks for n ≥ 1 light/dark pairs: dark disks on every
//     even position, light disks on every odd position.
//   - Exactly n disks are dark and n are light; no operation can change that.
//   - Rows cannot grow, shrink, or be written at arbitrary positions. The only
//     mutation is Swap(left), which exchanges positions left and left+1.
//
// Predicates
//
//	IsAlternating reports the canonical D/L/D/L pattern; IsSorted reports the
//	goal state in which the light half precedes the dark half. Both are
//	deliberately strict: a row holding no disks satisfies neither.
//
// Error Conditions
//
//	ErrEmptyRow        - NewRow called with a light count below 1.
//	ErrIndexOutOfRange - Get or Swap addressed a position outside the row.
//
// GoDoc Summary
//
//   - NewRow(lightCount int) (*Row, error) — build the canonical 2n-disk row.
//   - (*Row).Get / (*Row).Swap — bounds-checked access and adjacent exchange.
//   - (*Row).IsAlternating / (*Row).IsSorted — state predicates.
//   - (*Row).String / (*Row).Equal / (*Row).Clone — rendering, comparison, copying.
//   - (*Row).TotalCount / (*Row).LightCount / (*Row).DarkCount — disk tallies.
//
// For the sorting strategies over a Row, see the disksort package.
package disks
