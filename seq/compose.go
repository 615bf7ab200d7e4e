package seq

// Superimpose returns a copy of main with the elements of sub written
// starting at index at. Sub elements falling outside [0, len(main)) are
// dropped; main is untouched outside the overwritten range.
func Superimpose[T any](main, sub []T, at int) []T {
	out := make([]T, len(main))
	copy(out, main)

	srcStart := 0
	if at < 0 {
		srcStart = -at
		at = 0
	}
	if at < len(out) && srcStart < len(sub) {
		copy(out[at:], sub[srcStart:])
	}
	return out
}

// Join writes left at the front of a new sequence of length outLen, then
// right starting at index len(left), remaining positions set to fill.
//
// Right-hand elements beyond what fits after left are dropped; if
// len(left) >= outLen, right contributes nothing at all.
func Join[T any](left, right []T, outLen int, fill T) []T {
	out := newFilled(outLen, fill)
	copy(out, left)
	if len(left) < len(out) {
		copy(out[len(left):], right)
	}
	return out
}

// Splice splits s into two new sequences of lengths leftLen and rightLen:
// left takes s[0:], right takes s[leftLen:], both padded with fill where s
// runs short. Source elements at index >= leftLen+rightLen are dropped.
func Splice[T any](s []T, leftLen, rightLen int, fill T) ([]T, []T) {
	left := newFilled(leftLen, fill)
	right := newFilled(rightLen, fill)
	copy(left, s)
	if cut := clampIndex(leftLen, len(s)); cut < len(s) {
		copy(right, s[cut:])
	}
	return left, right
}
