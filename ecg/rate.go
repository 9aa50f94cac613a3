package ecg

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/heartlight/pipeline"
)

// Rate builds the heart-rate derivation step. It slices the QRS signal
// into window-second chunks and, per chunk, detects peaks above the chunk
// mean (prominence at least mean/6, separation at least 0.2 s) and
// aggregates 60/rr into a rate. A chunk with fewer than two peaks carries
// the previous chunk's rate forward, 0 for the first.
//
// The result is a tuple: per-chunk rates (BPM), peak indices across the
// whole signal, RR intervals in samples, and RR intervals in seconds.
// Chains select a member with the step's output index.
func Rate(window float64, rate int, avg Average) pipeline.Step {
	return pipeline.Step{
		Name: "heartRate",
		Fn: func(v pipeline.Value, _ *pipeline.Stats) (pipeline.Value, error) {
			xs, ok := v.Floats()
			if !ok {
				return pipeline.Value{}, fmt.Errorf("%w: heartRate got %s", ErrKind, v)
			}
			if avg != AverageMean && avg != AverageMedian {
				return pipeline.Value{}, fmt.Errorf("%w: %d", ErrBadAverage, avg)
			}
			chunkLen := int(window * float64(rate))
			if chunkLen < 1 {
				return pipeline.Value{}, fmt.Errorf("%w: %g s at %d Hz", ErrBadWindow, window, rate)
			}

			minDist := int(math.Ceil(0.2 * float64(rate)))
			nChunks := (len(xs) + chunkLen - 1) / chunkLen
			hr := make([]float64, nChunks)
			var allPeaks []float64

			for i := 0; i < nChunks; i++ {
				start := i * chunkLen
				end := start + chunkLen
				if end > len(xs) {
					end = len(xs)
				}
				chunk := xs[start:end]

				mean := stat.Mean(chunk, nil)
				peaks := FindPeaks(chunk, mean, mean/6, minDist)

				if len(peaks) < 2 {
					if i > 0 {
						hr[i] = hr[i-1]
					}
				} else {
					rates := make([]float64, len(peaks)-1)
					for k := range rates {
						rrSec := float64(peaks[k+1]-peaks[k]) / float64(rate)
						rates[k] = 60 / rrSec
					}
					if avg == AverageMean {
						hr[i] = stat.Mean(rates, nil)
					} else {
						hr[i] = median(rates)
					}
				}

				for _, p := range peaks {
					allPeaks = append(allPeaks, float64(p+start))
				}
			}

			rr := diff(allPeaks)
			rrSec := make([]float64, len(rr))
			for i, d := range rr {
				rrSec[i] = d / float64(rate)
			}
			return pipeline.Tuple(
				pipeline.Vector(hr),
				pipeline.Vector(allPeaks),
				pipeline.Vector(rr),
				pipeline.Vector(rrSec),
			), nil
		},
	}
}

// FindPeaks locates strict local maxima of xs that stand at least height
// high, rise at least prominence above their bases, and sit at least
// minDistance samples apart (taller peaks win the spacing contest).
// Indices come back in ascending order.
func FindPeaks(xs []float64, height, prominence float64, minDistance int) []int {
	var peaks []int
	for i := 1; i < len(xs)-1; i++ {
		if xs[i] > xs[i-1] && xs[i] > xs[i+1] && xs[i] >= height {
			peaks = append(peaks, i)
		}
	}

	if prominence > 0 {
		kept := peaks[:0]
		for _, p := range peaks {
			if peakProminence(xs, p) >= prominence {
				kept = append(kept, p)
			}
		}
		peaks = kept
	}

	if minDistance > 1 && len(peaks) > 1 {
		peaks = spaceOut(xs, peaks, minDistance)
	}
	return peaks
}

// peakProminence measures how far the peak rises above its bases: walk
// outward on each side while samples stay at or below the peak, take the
// lowest sample seen, and subtract the higher of the two valley floors.
func peakProminence(xs []float64, peak int) float64 {
	top := xs[peak]

	leftBase := top
	for i := peak - 1; i >= 0 && xs[i] <= top; i-- {
		if xs[i] < leftBase {
			leftBase = xs[i]
		}
	}
	rightBase := top
	for i := peak + 1; i < len(xs) && xs[i] <= top; i++ {
		if xs[i] < rightBase {
			rightBase = xs[i]
		}
	}
	return top - math.Max(leftBase, rightBase)
}

// spaceOut enforces the minimum peak separation: peaks are claimed from
// tallest to shortest, and a claimed peak suppresses any unclaimed peak
// closer than minDistance samples.
func spaceOut(xs []float64, peaks []int, minDistance int) []int {
	order := make([]int, len(peaks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return xs[peaks[order[a]]] > xs[peaks[order[b]]]
	})

	removed := make([]bool, len(peaks))
	for _, k := range order {
		if removed[k] {
			continue
		}
		for j := k - 1; j >= 0 && peaks[k]-peaks[j] < minDistance; j-- {
			removed[j] = true
		}
		for j := k + 1; j < len(peaks) && peaks[j]-peaks[k] < minDistance; j++ {
			removed[j] = true
		}
	}

	kept := peaks[:0]
	for i, p := range peaks {
		if !removed[i] {
			kept = append(kept, p)
		}
	}
	return kept
}

// median uses the midpoint convention: the mean of the two middle values
// for even-length input.
func median(xs []float64) float64 {
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 0 {
		return (s[mid-1] + s[mid]) / 2
	}
	return s[mid]
}
