package frame

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-seq/seq"
)

// Segment splits data into frames of frameLen samples spaced hop samples
// apart, enough frames that every input sample appears in at least one frame.
// Frames reaching past the end of data are padded with fill.
//
// hop <= 0 defaults to frameLen (non-overlapping frames). frameLen <= 0 or
// empty data yields nil.
func Segment(data []float64, frameLen, hop int, fill float64) [][]float64 {
	if frameLen <= 0 || len(data) == 0 {
		return nil
	}
	if hop <= 0 {
		hop = frameLen
	}

	count := (len(data) + hop - 1) / hop
	frames := make([][]float64, count)
	for k := range frames {
		start := k * hop
		frames[k] = seq.Slice(data, start, start+frameLen, frameLen, fill)
	}
	return frames
}

// ApplyWindow multiplies each frame in place by coeffs. Coefficients are
// resized with zero fill when their length differs from a frame's, so a
// mismatch attenuates the tail rather than erroring.
func ApplyWindow(frames [][]float64, coeffs []float64) {
	for _, f := range frames {
		c := coeffs
		if len(c) != len(f) {
			c = seq.Resize(coeffs, len(f), 0)
		}
		vecmath.MulBlockInPlace(f, c)
	}
}

// Scale multiplies every frame in place by g, typically the overlap gain
// compensation hop/frameLen after windowed reassembly.
func Scale(frames [][]float64, g float64) {
	for _, f := range frames {
		vecmath.ScaleBlock(f, f, g)
	}
}

// Reassemble overlap-adds frames spaced hop samples apart into a single
// stream. With hop equal to the frame length and no window applied this is
// the inverse of [Segment] over the covered prefix.
//
// hop <= 0 defaults to the first frame's length. Frame samples that would
// land past the end of the output (frames longer than the first) are dropped.
func Reassemble(frames [][]float64, hop int) []float64 {
	if len(frames) == 0 {
		return nil
	}
	frameLen := len(frames[0])
	if hop <= 0 {
		hop = frameLen
	}

	out := make([]float64, hop*(len(frames)-1)+frameLen)
	for k, f := range frames {
		start := k * hop
		n := len(f)
		if start+n > len(out) {
			n = len(out) - start
		}
		if n > 0 {
			vecmath.AddBlockInPlace(out[start:start+n], f[:n])
		}
	}
	return out
}
