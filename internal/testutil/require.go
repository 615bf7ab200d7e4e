package testutil

import "testing"

// RequireSeqEqual fails t if got and want differ in length or in any element.
func RequireSeqEqual[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// RequireAllEqual fails t if any element of got differs from want.
func RequireAllEqual[T comparable](t *testing.T, got []T, want T) {
	t.Helper()
	for i, v := range got {
		if v != want {
			t.Fatalf("index %d: got %v, want %v", i, v, want)
		}
	}
}
