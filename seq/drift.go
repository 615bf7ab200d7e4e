package seq

// DriftToBegin places the subrange s[from:] at offset margin in a fresh
// buffer of the same length, every other slot set to fill.
//
// Source elements that would land outside the buffer are dropped: past the
// end for positive margins, before the start for negative ones. If
// margin >= len(s) the result is entirely fill.
func DriftToBegin[T any](s []T, from, margin int, fill T) []T {
	size := len(s)
	out := newFilled(size, fill)
	from = clampIndex(from, size)
	if margin < -size {
		margin = -size
	}
	if margin < 0 {
		// Leading source elements would land before index 0.
		from = clampIndex(from-margin, size)
		margin = 0
	}
	margin = clampIndex(margin, size)
	copy(out[margin:], s[from:])
	return out
}

// DriftToEnd places the subrange s[:till] in a fresh fill-initialized buffer
// of the same length so that its last element lands at index len(s)-margin-1.
//
// Source elements that would land outside the buffer are dropped: before the
// start when margin+till exceeds the buffer, past the end for negative
// margins. If till == 0 or margin >= len(s) the result is entirely fill.
func DriftToEnd[T any](s []T, till, margin int, fill T) []T {
	size := len(s)
	out := newFilled(size, fill)
	till = clampIndex(till, size)
	if margin < -size {
		margin = -size
	}

	dstEnd := size - margin
	srcEnd := till
	if dstEnd > size {
		// Trailing source elements would land past the end.
		srcEnd -= dstEnd - size
		dstEnd = size
	}
	if dstEnd <= 0 || srcEnd <= 0 {
		return out
	}
	dstStart := dstEnd - srcEnd
	srcStart := 0
	if dstStart < 0 {
		srcStart = -dstStart
		dstStart = 0
	}
	copy(out[dstStart:dstEnd], s[srcStart:srcEnd])
	return out
}
