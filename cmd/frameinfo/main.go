// Command frameinfo prints how a sample stream segments into fixed-length
// frames, including clamp-and-fill padding of the tail frame.
//
// Usage:
//
//	frameinfo [flags]
//
// Examples:
//
//	frameinfo -len 1000 -frame 256
//	frameinfo -len 1000 -frame 256 -hop 128
//	frameinfo -len 512 -frame 64 -spectrum -cycles 8
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-seq/frame"
	"github.com/cwbudde/algo-seq/seq"
)

func main() {
	streamLen := flag.Int("len", 1000, "stream length in samples")
	frameLen := flag.Int("frame", 256, "frame length in samples")
	hop := flag.Int("hop", 0, "hop between frame starts (0 = frame length)")
	fill := flag.Float64("fill", 0, "fill value for padded positions")
	spectrum := flag.Bool("spectrum", false, "print the dominant spectral bin per frame of a test tone")
	cycles := flag.Float64("cycles", 8, "test tone cycles per frame (with -spectrum)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: frameinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints frame segmentation of a sample stream.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *frameLen <= 0 || *streamLen <= 0 {
		fmt.Fprintln(os.Stderr, "frameinfo: -len and -frame must be > 0")
		os.Exit(1)
	}

	data := makeStream(*streamLen, *frameLen, *cycles, *spectrum)
	frames := frame.Segment(data, *frameLen, *hop, *fill)

	var sp *frame.Spectral
	if *spectrum {
		var err error
		sp, err = frame.NewSpectral(*frameLen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "frameinfo: %v\n", err)
			os.Exit(1)
		}
	}

	effHop := *hop
	if effHop <= 0 {
		effHop = *frameLen
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if sp != nil {
		fmt.Fprintln(w, "frame\tstart\tend\tsource\tpadded\tpeak-bin")
	} else {
		fmt.Fprintln(w, "frame\tstart\tend\tsource\tpadded")
	}
	for k, f := range frames {
		start := k * effHop
		source := *streamLen - start
		if source > *frameLen {
			source = *frameLen
		}
		if source < 0 {
			source = 0
		}
		padded := *frameLen - source

		if sp != nil {
			peak, err := sp.PeakBin(f)
			if err != nil {
				fmt.Fprintf(os.Stderr, "frameinfo: %v\n", err)
				os.Exit(1)
			}
			fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%d\n", k, start, start+*frameLen, source, padded, peak)
		} else {
			fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\n", k, start, start+*frameLen, source, padded)
		}
	}
	w.Flush()

	covered := seq.Repeat(*streamLen, false)
	for k := range frames {
		start := k * effHop
		for i := start; i < start+*frameLen && i < *streamLen; i++ {
			covered[i] = true
		}
	}
	missed := 0
	for _, c := range covered {
		if !c {
			missed++
		}
	}
	fmt.Printf("\n%d frames, hop %d, %d samples uncovered\n", len(frames), effHop, missed)
}

// makeStream returns either a ramp or, for spectrum mode, a sine with the
// requested number of cycles per frame.
func makeStream(n, frameLen int, cycles float64, tone bool) []float64 {
	if !tone {
		return seq.Generate(n, func(i int) float64 { return float64(i) })
	}
	step := 2 * math.Pi * cycles / float64(frameLen)
	return seq.Generate(n, func(i int) float64 { return math.Sin(step * float64(i)) })
}
