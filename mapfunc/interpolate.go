package mapfunc

import (
	"fmt"

	"github.com/katalvlaran/heartlight/pipeline"
)

// Interpolate1D spreads the input's k values across an output span of
// the given size: each value lands at its anchor index and every other
// position is linearly interpolated between neighbouring anchors. The
// edge policy decides the positions outside the anchor span: EdgeWrap
// interpolates from the last anchor back to the first across the array
// boundary; EdgeReflect continues the slope of the nearest interior
// segment outward, so a rising ramp keeps rising past its last anchor.
// A single anchor floods the whole span with its value under either
// policy.
//
// The step wants a vector of exactly len(indices) values; indices must
// lie inside [0, size) and, for EdgeReflect, be strictly increasing.
func Interpolate1D(size int, indices []int, edge Edge) pipeline.Step {
	anchors := append([]int(nil), indices...)
	return pipeline.Step{Name: "interpolate1d", Fn: func(v pipeline.Value, _ *pipeline.Stats) (pipeline.Value, error) {
		if edge != EdgeReflect && edge != EdgeWrap {
			return pipeline.Value{}, fmt.Errorf("%w: %d", ErrEdge, edge)
		}
		values, ok := v.Floats()
		if !ok {
			return pipeline.Value{}, fmt.Errorf("%w: interpolate1d wants a vector, got %s", ErrKind, v)
		}
		if err := checkAnchors(values, anchors, size, edge); err != nil {
			return pipeline.Value{}, err
		}
		if edge == EdgeWrap {
			return pipeline.Vector(interpolateWrap(values, anchors, size)), nil
		}
		return pipeline.Vector(interpolateReflect(values, anchors, size)), nil
	}}
}

func checkAnchors(values []float64, anchors []int, size int, edge Edge) error {
	k := len(values)
	if k == 0 {
		return fmt.Errorf("%w: no anchor values", ErrIndices)
	}
	if size < k {
		return fmt.Errorf("%w: %d values into %d slots", ErrSize, k, size)
	}
	if len(anchors) != k {
		return fmt.Errorf("%w: %d indices for %d values", ErrIndices, len(anchors), k)
	}
	for i, idx := range anchors {
		if idx < 0 || idx >= size {
			return fmt.Errorf("%w: index %d outside [0,%d)", ErrIndices, idx, size)
		}
		if edge == EdgeReflect && i > 0 && idx <= anchors[i-1] {
			return fmt.Errorf("%w: reflect needs strictly increasing indices", ErrIndices)
		}
	}
	return nil
}

// interpolateWrap fills the span circularly: consecutive anchor pairs
// (including last back to first) interpolate across the boundary with
// denominator (size − startIdx) + endIdx.
func interpolateWrap(values []float64, anchors []int, size int) []float64 {
	out := make([]float64, size)
	k := len(values)
	for i, v := range values {
		out[anchors[i]] = v
	}
	for i := 0; i < k; i++ {
		startIdx, endIdx := anchors[i], anchors[(i+1)%k]
		startVal, endVal := values[i], values[(i+1)%k]
		if endIdx > startIdx {
			denom := float64(endIdx - startIdx)
			for pos := startIdx + 1; pos < endIdx; pos++ {
				w := float64(pos-startIdx) / denom
				out[pos] = startVal + w*(endVal-startVal)
			}
		} else {
			denom := float64((size - startIdx) + endIdx)
			step := 1
			for pos := startIdx + 1; pos < size; pos++ {
				out[pos] = startVal + float64(step)/denom*(endVal-startVal)
				step++
			}
			for pos := 0; pos < endIdx; pos++ {
				out[pos] = startVal + float64(step)/denom*(endVal-startVal)
				step++
			}
		}
	}
	return out
}

// interpolateReflect fills interior gaps linearly and extrapolates the
// leading region with the first interior segment's slope and the
// trailing region with the last one's.
func interpolateReflect(values []float64, anchors []int, size int) []float64 {
	out := make([]float64, size)
	k := len(values)
	for i, v := range values {
		out[anchors[i]] = v
	}
	for i := 1; i < k; i++ {
		startIdx, endIdx := anchors[i-1], anchors[i]
		startVal, endVal := values[i-1], values[i]
		denom := float64(endIdx - startIdx)
		for pos := startIdx + 1; pos < endIdx; pos++ {
			w := float64(pos-startIdx) / denom
			out[pos] = startVal + w*(endVal-startVal)
		}
	}
	if anchors[0] > 0 {
		slope := 0.0
		if k >= 2 {
			slope = (values[1] - values[0]) / float64(anchors[1]-anchors[0])
		}
		for pos := 0; pos < anchors[0]; pos++ {
			out[pos] = values[0] - slope*float64(anchors[0]-pos)
		}
	}
	if last := anchors[k-1]; last < size-1 {
		slope := 0.0
		if k >= 2 {
			slope = (values[k-1] - values[k-2]) / float64(anchors[k-1]-anchors[k-2])
		}
		for pos := last + 1; pos < size; pos++ {
			out[pos] = values[k-1] + slope*float64(pos-last)
		}
	}
	return out
}

// Fill1D floods a span of the given size with the resolved argument.
// The input is not copied into the output; it only feeds statistic
// resolution, so Fill1D(n, pipeline.Stat(pipeline.StatMean)) paints the
// whole span with the input's mean.
func Fill1D(size int, value pipeline.Arg) pipeline.Step {
	return pipeline.Step{Name: "fill1d", Fn: func(_ pipeline.Value, st *pipeline.Stats) (pipeline.Value, error) {
		if size < 0 {
			return pipeline.Value{}, fmt.Errorf("%w: negative span %d", ErrSize, size)
		}
		fill := value.Resolve(st)
		out := make([]float64, size)
		for i := range out {
			out[i] = fill
		}
		return pipeline.Vector(out), nil
	}}
}
