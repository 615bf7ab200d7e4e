package seq

import (
	"testing"

	"github.com/cwbudde/algo-seq/internal/testutil"
)

func TestDriftToBegin(t *testing.T) {
	got := DriftToBegin([]int{1, 2, 3, 0, 0, 0, 0}, 0, 1, 0)
	testutil.RequireSeqEqual(t, got, []int{0, 1, 2, 3, 0, 0, 0})
}

func TestDriftToBeginDropsOverflow(t *testing.T) {
	got := DriftToBegin([]int{1, 2, 3, 4}, 1, 2, 9)
	// Source [2,3,4] lands at offset 2; the 4 falls off the end.
	testutil.RequireSeqEqual(t, got, []int{9, 9, 2, 3})
}

func TestDriftToBeginMarginAtOrPastSize(t *testing.T) {
	testutil.RequireAllEqual(t, DriftToBegin([]int{1, 2, 3}, 0, 3, 7), 7)
	testutil.RequireAllEqual(t, DriftToBegin([]int{1, 2, 3}, 0, 100, 7), 7)
}

func TestDriftToBeginNegativeMarginDropsLeading(t *testing.T) {
	got := DriftToBegin([]int{1, 2, 3, 4}, 1, -2, 0)
	// Source [2,3,4] shifted two positions before the start: only 4 survives.
	testutil.RequireSeqEqual(t, got, []int{4, 0, 0, 0})
}

func TestDriftToEnd(t *testing.T) {
	got := DriftToEnd([]int{1, 2, 3, 0, 0, 0, 0}, 3, 0, 42)
	testutil.RequireSeqEqual(t, got, []int{42, 42, 42, 42, 1, 2, 3})
}

func TestDriftToEndWithMargin(t *testing.T) {
	s := Generate(7, func(i int) int { return i })
	testutil.RequireSeqEqual(t, DriftToEnd(s, 3, 2, 42), []int{42, 42, 0, 1, 2, 42, 42})

	s = Generate(5, func(i int) int { return i })
	testutil.RequireSeqEqual(t, DriftToEnd(s, 3, 0, 42), []int{42, 42, 0, 1, 2})

	s = Generate(4, func(i int) int { return i })
	testutil.RequireSeqEqual(t, DriftToEnd(s, 3, 1, 42), []int{0, 1, 2, 42})
}

func TestDriftToEndDropsLeadingWhenTooTight(t *testing.T) {
	got := DriftToEnd([]int{1, 2, 3, 4}, 3, 2, 0)
	// Destination range is [-1, 2): the leading 1 is dropped.
	testutil.RequireSeqEqual(t, got, []int{2, 3, 0, 0})
}

func TestDriftToEndAllFill(t *testing.T) {
	testutil.RequireAllEqual(t, DriftToEnd([]int{1, 2, 3}, 0, 0, 5), 5)
	testutil.RequireAllEqual(t, DriftToEnd([]int{1, 2, 3}, 2, 3, 5), 5)
	testutil.RequireAllEqual(t, DriftToEnd([]int{1, 2, 3}, 2, 100, 5), 5)
}

func TestDriftToEndNegativeMarginDropsTrailing(t *testing.T) {
	got := DriftToEnd([]int{1, 2, 3, 4}, 3, -2, 0)
	// Last element would land at index 5: 2 and 3 fall off the end.
	testutil.RequireSeqEqual(t, got, []int{0, 0, 0, 1})
}

func TestDriftEmptyInput(t *testing.T) {
	if got := DriftToBegin([]int(nil), 0, 0, 1); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
	if got := DriftToEnd([]int(nil), 0, 0, 1); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

// DriftToBegin must match superimposing the clamped slice onto a pure fill
// buffer at the margin offset; DriftToEnd has the right-aligned counterpart.
func TestDriftMatchesSliceSuperimpose(t *testing.T) {
	s := Generate(13, func(i int) int { return i })
	for _, tc := range []struct{ from, margin int }{
		{10, 2}, {10, 0}, {10, 1}, {0, 0}, {0, 5}, {12, 12}, {13, 1},
	} {
		got := DriftToBegin(s, tc.from, tc.margin, 42)
		ref := Superimpose(Repeat(len(s), 42), s[clampIndex(tc.from, len(s)):], tc.margin)
		testutil.RequireSeqEqual(t, got, ref)
	}

	for _, tc := range []struct{ till, margin int }{
		{3, 2}, {3, 0}, {3, 1}, {0, 0}, {13, 0}, {13, 5},
	} {
		got := DriftToEnd(s, tc.till, tc.margin, 42)
		at := len(s) - tc.margin - tc.till
		ref := Superimpose(Repeat(len(s), 42), s[:clampIndex(tc.till, len(s))], at)
		testutil.RequireSeqEqual(t, got, ref)
	}
}
