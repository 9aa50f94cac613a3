package pipeline

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats resolves statistics over one intermediate Value. Gathering the
// finite elements is deferred until the first lookup, so steps that take
// only literal arguments pay nothing.
//
// Every statistic of an empty finite set is 0.
type Stats struct {
	source   Value
	gathered bool
	finite   []float64
}

// NewStats builds a resolver over v. Tuples are flattened: the finite
// elements of every member contribute.
func NewStats(v Value) *Stats { return &Stats{source: v} }

// Finite returns the finite elements of the source value. The slice is
// owned by the Stats and must not be mutated.
func (s *Stats) Finite() []float64 {
	if !s.gathered {
		s.finite = appendFinite(s.finite, s.source)
		s.gathered = true
	}
	return s.finite
}

// Value computes the requested statistic. Standard deviation is the
// population form; median uses the midpoint convention for even counts.
func (s *Stats) Value(which Statistic) float64 {
	xs := s.Finite()
	if len(xs) == 0 {
		return 0
	}
	switch which {
	case StatMin:
		return floats.Min(xs)
	case StatMax:
		return floats.Max(xs)
	case StatMean:
		return stat.Mean(xs, nil)
	case StatStd:
		return stat.PopStdDev(xs, nil)
	case StatMedian:
		return median(xs)
	default:
		return 0
	}
}

func appendFinite(dst []float64, v Value) []float64 {
	switch v.kind {
	case KindScalar:
		if isFinite(v.scalar) {
			dst = append(dst, v.scalar)
		}
	case KindVector:
		for _, x := range v.vector {
			if isFinite(x) {
				dst = append(dst, x)
			}
		}
	case KindTuple:
		for _, m := range v.tuple {
			dst = appendFinite(dst, m)
		}
	}
	return dst
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func median(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
