// Package frame segments float64 streams into fixed-length frames and
// reassembles them, applying the same clamp-and-fill policy as package seq:
// frames that run past the end of the stream are padded with a caller
// supplied fill value instead of erroring.
//
// Windowing, gain scaling and overlap-add reassembly use SIMD-accelerated
// block operations; Spectral computes magnitude spectra of frames through an
// FFT plan sized to the next power of two.
package frame
