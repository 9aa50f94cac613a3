package mapfunc

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heartlight/pipeline"
)

// elementwise lifts a float64 function over scalars and vectors.
func elementwise(name string, f func(float64) float64) pipeline.Step {
	return pipeline.Step{Name: name, Fn: func(v pipeline.Value, _ *pipeline.Stats) (pipeline.Value, error) {
		return mapValue(name, v, f)
	}}
}

func mapValue(name string, v pipeline.Value, f func(float64) float64) (pipeline.Value, error) {
	if x, ok := v.Float(); ok {
		return pipeline.Scalar(f(x)), nil
	}
	if xs, ok := v.Floats(); ok {
		out := make([]float64, len(xs))
		for i, x := range xs {
			out[i] = f(x)
		}
		return pipeline.Vector(out), nil
	}
	return pipeline.Value{}, fmt.Errorf("%w: %s wants a scalar or vector, got %s", ErrKind, name, v)
}

// Identity passes the intermediate through unchanged.
func Identity() pipeline.Step {
	return pipeline.Step{Name: "identity", Fn: func(v pipeline.Value, _ *pipeline.Stats) (pipeline.Value, error) {
		return v, nil
	}}
}

// Sine maps every element through sin(x).
func Sine() pipeline.Step { return elementwise("sine", math.Sin) }

// Cosine maps every element through cos(x).
func Cosine() pipeline.Step { return elementwise("cosine", math.Cos) }

// Minus negates every element.
func Minus() pipeline.Step {
	return elementwise("minus", func(x float64) float64 { return -x })
}

// Zeros replaces the input with a same-shape array of zeros.
func Zeros() pipeline.Step {
	return elementwise("zeros", func(float64) float64 { return 0 })
}

// Ones replaces the input with a same-shape array of ones.
func Ones() pipeline.Step {
	return elementwise("ones", func(float64) float64 { return 1 })
}

// Flip reverses a vector.
func Flip() pipeline.Step {
	return pipeline.Step{Name: "flip", Fn: func(v pipeline.Value, _ *pipeline.Stats) (pipeline.Value, error) {
		xs, ok := v.Floats()
		if !ok {
			return pipeline.Value{}, fmt.Errorf("%w: flip wants a vector, got %s", ErrKind, v)
		}
		out := make([]float64, len(xs))
		for i, x := range xs {
			out[len(xs)-1-i] = x
		}
		return pipeline.Vector(out), nil
	}}
}

// Offset adds the resolved argument to every element.
func Offset(delta pipeline.Arg) pipeline.Step {
	return pipeline.Step{Name: "offset", Fn: func(v pipeline.Value, st *pipeline.Stats) (pipeline.Value, error) {
		d := delta.Resolve(st)
		return mapValue("offset", v, func(x float64) float64 { return x + d })
	}}
}

// Scale multiplies every element by the resolved argument.
func Scale(factor pipeline.Arg) pipeline.Step {
	return pipeline.Step{Name: "scale", Fn: func(v pipeline.Value, st *pipeline.Stats) (pipeline.Value, error) {
		k := factor.Resolve(st)
		return mapValue("scale", v, func(x float64) float64 { return x * k })
	}}
}

// Clip clamps every element to [lo, hi]. With lo > hi everything
// collapses to hi, matching clamp-low-then-high order.
func Clip(lo, hi pipeline.Arg) pipeline.Step {
	return pipeline.Step{Name: "clip", Fn: func(v pipeline.Value, st *pipeline.Stats) (pipeline.Value, error) {
		l, h := lo.Resolve(st), hi.Resolve(st)
		return mapValue("clip", v, func(x float64) float64 {
			return math.Min(math.Max(x, l), h)
		})
	}}
}

// FlipRange mirrors every element around the centre of [min, max]:
// values near min land near max and vice versa.
func FlipRange(min, max pipeline.Arg) pipeline.Step {
	return pipeline.Step{Name: "flipRange", Fn: func(v pipeline.Value, st *pipeline.Stats) (pipeline.Value, error) {
		lo, hi := min.Resolve(st), max.Resolve(st)
		centre := hi - (hi-lo)/2
		return mapValue("flipRange", v, func(x float64) float64 { return 2*centre - x })
	}}
}

// RangeScaler rescales elements linearly from [oldMin, oldMax] onto
// [newMin, newMax]. Auto old bounds derive from the data being scaled
// (its finite min/max); when the old bounds coincide every element
// becomes newMin. Scalars rescale as one-element data.
func RangeScaler(newMin, newMax, oldMin, oldMax pipeline.Arg) pipeline.Step {
	return pipeline.Step{Name: "rangeScaler", Fn: func(v pipeline.Value, st *pipeline.Stats) (pipeline.Value, error) {
		nmin, nmax := newMin.Resolve(st), newMax.Resolve(st)
		omin := oldMin.Resolve(st)
		if oldMin.IsAuto() {
			omin = st.Value(pipeline.StatMin)
		}
		omax := oldMax.Resolve(st)
		if oldMax.IsAuto() {
			omax = st.Value(pipeline.StatMax)
		}
		if omax == omin {
			return mapValue("rangeScaler", v, func(float64) float64 { return nmin })
		}
		return mapValue("rangeScaler", v, func(x float64) float64 {
			return (x-omin)*(nmax-nmin)/(omax-omin) + nmin
		})
	}}
}

// Mean collapses the intermediate to the mean of its finite values.
func Mean() pipeline.Step { return reduction("mean", pipeline.StatMean) }

// Median collapses the intermediate to the median of its finite values.
func Median() pipeline.Step { return reduction("median", pipeline.StatMedian) }

func reduction(name string, which pipeline.Statistic) pipeline.Step {
	return pipeline.Step{Name: name, Fn: func(v pipeline.Value, st *pipeline.Stats) (pipeline.Value, error) {
		switch v.Kind() {
		case pipeline.KindScalar, pipeline.KindVector:
			return pipeline.Scalar(st.Value(which)), nil
		default:
			return pipeline.Value{}, fmt.Errorf("%w: %s wants a scalar or vector, got %s", ErrKind, name, v)
		}
	}}
}
