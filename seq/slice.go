package seq

// Slice copies the source range [from, min(till, len(s))) into the front of a
// new sequence of length outLen, remaining positions set to fill.
//
// The copy never reads past the source nor writes past outLen; a source range
// that is empty, reversed or entirely out of bounds yields a sequence of pure
// fill.
func Slice[T any](s []T, from, till, outLen int, fill T) []T {
	out := newFilled(outLen, fill)
	from = clampIndex(from, len(s))
	till = clampIndex(till, len(s))
	if till > from {
		copy(out, s[from:till])
	}
	return out
}

// Resize copies the leading min(len(s), outLen) elements of s into a new
// sequence of length outLen. Growing pads the tail with fill; shrinking drops
// trailing source elements.
func Resize[T any](s []T, outLen int, fill T) []T {
	out := newFilled(outLen, fill)
	copy(out, s)
	return out
}
