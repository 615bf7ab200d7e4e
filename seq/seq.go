package seq

// newFilled returns a fresh sequence of length n with every slot set to fill.
// Lengths <= 0 yield an empty sequence.
func newFilled[T any](n int, fill T) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, n)
	for i := range out {
		out[i] = fill
	}
	return out
}

// clampIndex clamps i to [0, n].
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// Repeat returns a sequence of length n with every element set to v.
func Repeat[T any](n int, v T) []T {
	return newFilled(n, v)
}
