package frame

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-seq/seq"
)

// Spectral computes magnitude spectra of fixed-length frames.
//
// The FFT size is the frame length rounded up to the next power of two;
// frames are zero padded (or truncated) to that size before transforming.
// A Spectral reuses internal scratch buffers and is not safe for concurrent
// use; create one per goroutine.
type Spectral struct {
	frameLen int
	fftSize  int
	plan     *algofft.Plan[complex128]

	scratch []complex128
	re      []float64
	im      []float64
}

// NewSpectral creates a Spectral for frames of frameLen samples.
func NewSpectral(frameLen int) (*Spectral, error) {
	if frameLen <= 0 {
		return nil, ErrBadFrameLength
	}

	fftSize := nextPowerOf2(frameLen)
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("frame: failed to create FFT plan: %w", err)
	}

	return &Spectral{
		frameLen: frameLen,
		fftSize:  fftSize,
		plan:     plan,
		scratch:  make([]complex128, fftSize),
		re:       make([]float64, fftSize/2+1),
		im:       make([]float64, fftSize/2+1),
	}, nil
}

// FrameLen returns the configured frame length.
func (sp *Spectral) FrameLen() int {
	return sp.frameLen
}

// FFTSize returns the FFT size used internally.
func (sp *Spectral) FFTSize() int {
	return sp.fftSize
}

// Bins returns the number of spectrum bins produced per frame.
func (sp *Spectral) Bins() int {
	return sp.fftSize/2 + 1
}

// Magnitudes returns |X[k]| for the non-negative frequency bins of data.
// Data shorter than the FFT size is zero padded, longer data is truncated.
func (sp *Spectral) Magnitudes(data []float64) ([]float64, error) {
	padded := seq.Resize(data, sp.fftSize, 0)
	for i, v := range padded {
		sp.scratch[i] = complex(v, 0)
	}

	if err := sp.plan.Forward(sp.scratch, sp.scratch); err != nil {
		return nil, fmt.Errorf("frame: forward FFT failed: %w", err)
	}

	bins := sp.Bins()
	for i := 0; i < bins; i++ {
		sp.re[i] = real(sp.scratch[i])
		sp.im[i] = imag(sp.scratch[i])
	}

	out := make([]float64, bins)
	vecmath.Magnitude(out, sp.re[:bins], sp.im[:bins])
	return out, nil
}

// Spectrogram returns the magnitude spectrum of every frame.
func (sp *Spectral) Spectrogram(frames [][]float64) ([][]float64, error) {
	out := make([][]float64, len(frames))
	for k, f := range frames {
		mags, err := sp.Magnitudes(f)
		if err != nil {
			return nil, err
		}
		out[k] = mags
	}
	return out, nil
}

// PeakBin returns the index of the largest magnitude bin of data.
func (sp *Spectral) PeakBin(data []float64) (int, error) {
	mags, err := sp.Magnitudes(data)
	if err != nil {
		return 0, err
	}
	peak := 0
	for i, m := range mags {
		if m > mags[peak] {
			peak = i
		}
	}
	return peak, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
