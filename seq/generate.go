package seq

// generate runs the shared stop-predicate loop over a fill-initialized buffer.
// step reports the element for index i and whether generation continues; on
// the first stop the matched index is left at fill and its position returned.
func generate[T any](n int, fill T, step func(int) (T, bool)) ([]T, int) {
	out := newFilled(n, fill)
	for i := range out {
		v, ok := step(i)
		if !ok {
			return out, i
		}
		out[i] = v
	}
	return out, len(out)
}

// Generate returns a sequence of length n whose element i is f(i).
//
// The sequence is never truncated; f is called exactly once per index in
// order. n <= 0 yields an empty sequence without calling f.
func Generate[T any](n int, f func(int) T) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, n)
	for i := range out {
		out[i] = f(i)
	}
	return out
}

// GenerateUntil returns a sequence of length n whose element i is f(i),
// stopping at the first index where f(i) == sentinel.
//
// The matched index is not written; it and every later position keep fill.
// The second result is the index at which the sentinel appeared, or n when it
// never did. Useful for terminator-delimited data streams.
func GenerateUntil[T comparable](n int, f func(int) T, sentinel, fill T) ([]T, int) {
	return generate(n, fill, func(i int) (T, bool) {
		v := f(i)
		return v, v != sentinel
	})
}

// GenerateUntilAbsent is GenerateUntil for generators that signal exhaustion
// with a comma-ok result instead of a sentinel value, so T needs no equality.
func GenerateUntilAbsent[T any](n int, f func(int) (T, bool), fill T) ([]T, int) {
	return generate(n, fill, f)
}

// GenerateUntilError is GenerateUntil for generators that signal exhaustion
// with an error. Any non-nil error stops generation; the error itself is
// discarded, only the stop index is reported.
func GenerateUntilError[T any](n int, f func(int) (T, error), fill T) ([]T, int) {
	return generate(n, fill, func(i int) (T, bool) {
		v, err := f(i)
		return v, err == nil
	})
}
