package mapfunc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heartlight/mapfunc"
	"github.com/katalvlaran/heartlight/pipeline"
)

func TestInterpolate1D_Wrap(t *testing.T) {
	in := pipeline.Vector([]float64{10, 20})
	out := apply(t, mapfunc.Interpolate1D(5, []int{0, 4}, mapfunc.EdgeWrap), in)
	assert.Equal(t, []float64{10, 12.5, 15, 17.5, 20}, vec(t, out),
		"interior positions ramp between the anchors; the wrap segment 4→0 has no interior positions")
}

func TestInterpolate1D_WrapCrossesBoundary(t *testing.T) {
	// Anchors at 1 and 3 in a span of 5: the circular segment 3→1 covers
	// positions 4 and 0 with denominator (5−3)+1 = 3.
	in := pipeline.Vector([]float64{0, 3})
	out := apply(t, mapfunc.Interpolate1D(5, []int{1, 3}, mapfunc.EdgeWrap), in)
	assert.InDeltaSlice(t, []float64{1, 0, 1.5, 3, 2}, vec(t, out), 1e-12)
}

func TestInterpolate1D_WrapSingleAnchor(t *testing.T) {
	in := pipeline.Vector([]float64{7})
	out := apply(t, mapfunc.Interpolate1D(5, []int{2}, mapfunc.EdgeWrap), in)
	assert.Equal(t, []float64{7, 7, 7, 7, 7}, vec(t, out), "one anchor floods the circle")
}

func TestInterpolate1D_ReflectContinuesSlope(t *testing.T) {
	in := pipeline.Vector([]float64{5, 15})
	out := apply(t, mapfunc.Interpolate1D(4, []int{1, 2}, mapfunc.EdgeReflect), in)
	assert.Equal(t, []float64{-5, 5, 15, 25}, vec(t, out),
		"boundary regions continue the interior slope, keeping the ramp monotonic")
}

func TestInterpolate1D_ReflectInterior(t *testing.T) {
	in := pipeline.Vector([]float64{0, 10})
	out := apply(t, mapfunc.Interpolate1D(6, []int{0, 5}, mapfunc.EdgeReflect), in)
	assert.Equal(t, []float64{0, 2, 4, 6, 8, 10}, vec(t, out))
}

func TestInterpolate1D_ReflectSingleAnchor(t *testing.T) {
	in := pipeline.Vector([]float64{7})
	out := apply(t, mapfunc.Interpolate1D(5, []int{2}, mapfunc.EdgeReflect), in)
	assert.Equal(t, []float64{7, 7, 7, 7, 7}, vec(t, out), "no interior segment means a constant fill")
}

func TestInterpolate1D_Errors(t *testing.T) {
	run := func(step pipeline.Step, xs []float64) error {
		_, err := pipeline.ApplyValue(pipeline.Vector(xs), pipeline.Chain{step})
		return err
	}

	err := run(mapfunc.Interpolate1D(2, []int{0, 1, 2}, mapfunc.EdgeWrap), []float64{1, 2, 3})
	assert.ErrorIs(t, err, mapfunc.ErrSize, "more values than slots")

	err = run(mapfunc.Interpolate1D(5, []int{0}, mapfunc.EdgeWrap), []float64{1, 2})
	assert.ErrorIs(t, err, mapfunc.ErrIndices, "index count must match value count")

	err = run(mapfunc.Interpolate1D(5, []int{0, 7}, mapfunc.EdgeWrap), []float64{1, 2})
	assert.ErrorIs(t, err, mapfunc.ErrIndices, "indices must fit the span")

	err = run(mapfunc.Interpolate1D(5, []int{3, 1}, mapfunc.EdgeReflect), []float64{1, 2})
	assert.ErrorIs(t, err, mapfunc.ErrIndices, "reflect needs increasing indices")

	err = run(mapfunc.Interpolate1D(5, nil, mapfunc.EdgeWrap), nil)
	assert.ErrorIs(t, err, mapfunc.ErrIndices, "empty anchor set")

	err = run(mapfunc.Interpolate1D(5, []int{0}, mapfunc.Edge(9)), []float64{1})
	assert.ErrorIs(t, err, mapfunc.ErrEdge)

	_, err = pipeline.ApplyValue(pipeline.Scalar(1), pipeline.Chain{
		mapfunc.Interpolate1D(5, []int{0}, mapfunc.EdgeWrap),
	})
	assert.ErrorIs(t, err, mapfunc.ErrKind)
}

func TestFill1D(t *testing.T) {
	out := apply(t, mapfunc.Fill1D(3, pipeline.Lit(5)), pipeline.Vector([]float64{1, 2}))
	assert.Equal(t, []float64{5, 5, 5}, vec(t, out))

	out = apply(t, mapfunc.Fill1D(4, pipeline.Stat(pipeline.StatMean)), pipeline.Vector([]float64{2, 4}))
	assert.Equal(t, []float64{3, 3, 3, 3}, vec(t, out), "the fill value may track the input's statistics")
}

func TestParseEdge(t *testing.T) {
	e, err := mapfunc.ParseEdge("wrap")
	require.NoError(t, err)
	assert.Equal(t, mapfunc.EdgeWrap, e)

	e, err = mapfunc.ParseEdge("reflect")
	require.NoError(t, err)
	assert.Equal(t, mapfunc.EdgeReflect, e)
	assert.Equal(t, "reflect", e.String())

	_, err = mapfunc.ParseEdge("mirror")
	assert.ErrorIs(t, err, mapfunc.ErrEdge)
}
