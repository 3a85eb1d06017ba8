package disksort_test

import (
	"fmt"
	"testing"

	"github.com/juliancoronado/implementing-algorithms/disks"    // Row under sort
	"github.com/juliancoronado/implementing-algorithms/disksort" // package under test
	"github.com/stretchr/testify/assert"                         // assertion library
	"github.com/stretchr/testify/require"                        // fatal assertions for fixtures
)

// mustRow builds the canonical alternating row of n light/dark pairs,
// failing the test immediately if construction is rejected.
func mustRow(t *testing.T, n int) *disks.Row {
	t.Helper()
	r, err := disks.NewRow(n)
	require.NoError(t, err)
	require.NotNil(t, r)

	return r
}

// sortedRow builds a row already in the goal state by sorting the canonical
// one; used by the no-op and idempotence tests.
func sortedRow(t *testing.T, n int) *disks.Row {
	t.Helper()
	res, err := disksort.SortLeftToRight(mustRow(t, n))
	require.NoError(t, err)
	require.True(t, res.After.IsSorted())

	return res.After
}

// TestValidation_NilRow verifies that every entry point rejects a nil row
// with ErrNilRow and returns no result.
func TestValidation_NilRow(t *testing.T) {
	res, err := disksort.Sort(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, disksort.ErrNilRow)

	res, err = disksort.SortLeftToRight(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, disksort.ErrNilRow)

	res, err = disksort.SortLawnmower(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, disksort.ErrNilRow)
}

// TestValidation_EmptyRow verifies that a row holding no disks (the zero
// value) is rejected with disks.ErrEmptyRow: it can never satisfy IsSorted,
// so no strategy could terminate on it.
func TestValidation_EmptyRow(t *testing.T) {
	var empty disks.Row

	_, errS := disksort.Sort(&empty)
	assert.ErrorIs(t, errS, disks.ErrEmptyRow)

	_, errL := disksort.SortLeftToRight(&empty)
	assert.ErrorIs(t, errL, disks.ErrEmptyRow)

	_, errM := disksort.SortLawnmower(&empty)
	assert.ErrorIs(t, errM, disks.ErrEmptyRow)
}

// TestValidation_UnknownMethod verifies that the dispatcher rejects a method
// string naming no strategy.
func TestValidation_UnknownMethod(t *testing.T) {
	r := mustRow(t, 2)

	res, err := disksort.Sort(r, disksort.WithMethod("bogus"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, disksort.ErrUnknownMethod)

	// The empty string is not a strategy either.
	_, err = disksort.Sort(r, disksort.WithMethod(""))
	assert.ErrorIs(t, err, disksort.ErrUnknownMethod)
}

// TestSortLeftToRight_SinglePair solves the smallest puzzle: one sweep, one
// swap, goal "L D".
func TestSortLeftToRight_SinglePair(t *testing.T) {
	r := mustRow(t, 1)

	res, err := disksort.SortLeftToRight(r)
	require.NoError(t, err)
	assert.Equal(t, "L D", res.After.String())
	assert.True(t, res.After.IsSorted())
	assert.Equal(t, uint64(1), res.Swaps)
	assert.Equal(t, uint64(1), res.Passes)
}

// TestSortLawnmower_SinglePair solves the smallest puzzle with the
// bidirectional strategy: the backward sweep of the single pass finds
// nothing left to do.
func TestSortLawnmower_SinglePair(t *testing.T) {
	r := mustRow(t, 1)

	res, err := disksort.SortLawnmower(r)
	require.NoError(t, err)
	assert.Equal(t, "L D", res.After.String())
	assert.Equal(t, uint64(1), res.Swaps)
	assert.Equal(t, uint64(1), res.Passes)
}

// TestSortLeftToRight_TwoPairs pins the full n=2 outcome: three swaps
// spread over two sweeps reach "L L D D".
func TestSortLeftToRight_TwoPairs(t *testing.T) {
	r := mustRow(t, 2)

	res, err := disksort.SortLeftToRight(r)
	require.NoError(t, err)
	assert.Equal(t, "L L D D", res.After.String())
	assert.Equal(t, uint64(3), res.Swaps, "three dark/light inversions, one swap each")
	assert.Equal(t, uint64(2), res.Passes)
}

// TestSortLawnmower_TwoPairs pins the full n=2 outcome for the lawnmower:
// the same three swaps, but forward+backward finish in a single pass.
func TestSortLawnmower_TwoPairs(t *testing.T) {
	r := mustRow(t, 2)

	res, err := disksort.SortLawnmower(r)
	require.NoError(t, err)
	assert.Equal(t, "L L D D", res.After.String())
	assert.Equal(t, uint64(3), res.Swaps, "same swap total as left-to-right")
	assert.Equal(t, uint64(1), res.Passes, "one bidirectional pass suffices")
}

// TestSortLeftToRight_ThreePairs checks n=3: six swaps over three sweeps.
func TestSortLeftToRight_ThreePairs(t *testing.T) {
	res, err := disksort.SortLeftToRight(mustRow(t, 3))
	require.NoError(t, err)
	assert.Equal(t, "L L L D D D", res.After.String())
	assert.Equal(t, uint64(6), res.Swaps)
	assert.Equal(t, uint64(3), res.Passes)
}

// TestSortLawnmower_ThreePairs checks n=3: six swaps over two outer passes.
func TestSortLawnmower_ThreePairs(t *testing.T) {
	res, err := disksort.SortLawnmower(mustRow(t, 3))
	require.NoError(t, err)
	assert.Equal(t, "L L L D D D", res.After.String())
	assert.Equal(t, uint64(6), res.Swaps)
	assert.Equal(t, uint64(2), res.Passes)
}

// TestSort_AlreadySortedIsNoop verifies idempotence: re-sorting a sorted row
// performs zero swaps and zero passes with either strategy and returns an
// equal row.
func TestSort_AlreadySortedIsNoop(t *testing.T) {
	sorted := sortedRow(t, 3)

	resL, errL := disksort.SortLeftToRight(sorted)
	require.NoError(t, errL)
	assert.Zero(t, resL.Swaps)
	assert.Zero(t, resL.Passes)
	assert.True(t, resL.After.Equal(sorted))

	resM, errM := disksort.SortLawnmower(sorted)
	require.NoError(t, errM)
	assert.Zero(t, resM.Swaps)
	assert.Zero(t, resM.Passes)
	assert.True(t, resM.After.Equal(sorted))
}

// TestSort_InputUntouched verifies both strategies leave the caller's row
// exactly as it was: same rendering, still alternating.
func TestSort_InputUntouched(t *testing.T) {
	r := mustRow(t, 4)
	before := r.String()

	resL, errL := disksort.SortLeftToRight(r)
	require.NoError(t, errL)
	resM, errM := disksort.SortLawnmower(r)
	require.NoError(t, errM)

	assert.Equal(t, before, r.String(), "input must survive both sorts")
	assert.True(t, r.IsAlternating())
	// Results are distinct rows, not views of the input.
	assert.False(t, resL.After.Equal(r))
	assert.False(t, resM.After.Equal(r))
}

// TestComparison_BothMethodsAgree runs both strategies across a range of
// sizes and checks the swap totals agree with each other and with the
// closed form n(n+1)/2, that the pass counts follow n and ⌈n/2⌉, and that
// both reach the identical goal row.
func TestComparison_BothMethodsAgree(t *testing.T) {
	for n := 1; n <= 8; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			resL, errL := disksort.SortLeftToRight(mustRow(t, n))
			require.NoError(t, errL)
			resM, errM := disksort.SortLawnmower(mustRow(t, n))
			require.NoError(t, errM)

			// Same moves, differently scheduled.
			want := uint64(n * (n + 1) / 2)
			assert.Equal(t, want, resL.Swaps, "left-to-right swap total")
			assert.Equal(t, want, resM.Swaps, "lawnmower swap total")
			assert.LessOrEqual(t, resL.Swaps, uint64(n*n), "swap total stays within n²")

			// Scheduling shows up only in the pass counts.
			assert.Equal(t, uint64(n), resL.Passes, "left-to-right pass total")
			assert.Equal(t, uint64((n+1)/2), resM.Passes, "lawnmower pass total")

			// Both land on the same goal row.
			assert.True(t, resL.After.IsSorted())
			assert.True(t, resM.After.IsSorted())
			assert.True(t, resL.After.Equal(resM.After))
		})
	}
}

// TestSort_DispatcherRoutes verifies that Sort with an explicit method
// matches the direct entry point, and that the default method is
// left-to-right.
func TestSort_DispatcherRoutes(t *testing.T) {
	// Explicit lawnmower through the dispatcher.
	viaSort, errS := disksort.Sort(mustRow(t, 4), disksort.WithMethod(disksort.MethodLawnmower))
	require.NoError(t, errS)
	direct, errD := disksort.SortLawnmower(mustRow(t, 4))
	require.NoError(t, errD)

	assert.Equal(t, direct.Swaps, viaSort.Swaps)
	assert.Equal(t, direct.Passes, viaSort.Passes)
	assert.True(t, viaSort.After.Equal(direct.After))

	// No options: the dispatcher defaults to left-to-right.
	byDefault, errB := disksort.Sort(mustRow(t, 4))
	require.NoError(t, errB)
	ltr, errL := disksort.SortLeftToRight(mustRow(t, 4))
	require.NoError(t, errL)

	assert.Equal(t, ltr.Swaps, byDefault.Swaps)
	assert.Equal(t, ltr.Passes, byDefault.Passes)
	assert.True(t, byDefault.After.Equal(ltr.After))
}

// TestSort_OnSwapReplay verifies the OnSwap contract: the hook fires once
// per counted swap, in execution order, and replaying the observed swaps on
// a clone of the input reproduces the final row exactly.
func TestSort_OnSwapReplay(t *testing.T) {
	input := mustRow(t, 3)

	var observed []int
	res, err := disksort.SortLawnmower(input, disksort.WithOnSwap(func(left int) {
		observed = append(observed, left)
	}))
	require.NoError(t, err)

	// One callback per counted swap.
	require.Len(t, observed, int(res.Swaps))

	// Replaying the observed moves turns a fresh clone into the result.
	replay := input.Clone()
	for _, left := range observed {
		require.NoError(t, replay.Swap(left))
	}
	assert.True(t, replay.Equal(res.After), "observed swaps must replay to the sorted row")
	assert.True(t, replay.IsSorted())
}

// TestSort_OnPassSnapshots verifies the OnPass contract: 1-based sequential
// pass numbers, snapshots matching the working row after each pass, and
// snapshot independence from the sort's own working copy.
func TestSort_OnPassSnapshots(t *testing.T) {
	var (
		passNums  []uint64
		snapshots []*disks.Row
	)
	res, err := disksort.SortLawnmower(mustRow(t, 3), disksort.WithOnPass(func(pass uint64, snapshot *disks.Row) {
		passNums = append(passNums, pass)
		snapshots = append(snapshots, snapshot)
	}))
	require.NoError(t, err)

	// One callback per outer pass, numbered from 1.
	require.Len(t, snapshots, int(res.Passes))
	assert.Equal(t, []uint64{1, 2}, passNums)

	// The n=3 lawnmower states after each outer pass.
	assert.Equal(t, "L L D L D D", snapshots[0].String())
	assert.Equal(t, "L L L D D D", snapshots[1].String())
	assert.True(t, snapshots[len(snapshots)-1].Equal(res.After))

	// Snapshots are clones: mauling one does not rewrite history.
	require.NoError(t, snapshots[1].Swap(0))
	assert.Equal(t, "L L L D D D", res.After.String())
}

// TestSort_NilHooksIgnored verifies the option contract: a nil callback
// leaves the no-op default in place instead of panicking mid-sort.
func TestSort_NilHooksIgnored(t *testing.T) {
	res, err := disksort.Sort(mustRow(t, 2),
		disksort.WithOnSwap(nil),
		disksort.WithOnPass(nil),
	)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), res.Swaps)
	assert.True(t, res.After.IsSorted())
}
