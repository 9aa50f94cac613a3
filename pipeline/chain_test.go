package pipeline_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heartlight/fifo"
	"github.com/katalvlaran/heartlight/gate"
	"github.com/katalvlaran/heartlight/pipeline"
)

// identity passes the intermediate through untouched.
func identity() pipeline.Step {
	return pipeline.Step{Name: "identity", Fn: func(v pipeline.Value, _ *pipeline.Stats) (pipeline.Value, error) {
		return v, nil
	}}
}

// double multiplies every vector element by two.
func double() pipeline.Step {
	return pipeline.Step{Name: "double", Fn: func(v pipeline.Value, _ *pipeline.Stats) (pipeline.Value, error) {
		xs, ok := v.Floats()
		if !ok {
			return pipeline.Value{}, errors.New("double wants a vector")
		}
		out := make([]float64, len(xs))
		for i, x := range xs {
			out[i] = 2 * x
		}
		return pipeline.Vector(out), nil
	}}
}

// offsetByMean adds the current intermediate's mean to every element,
// exercising call-time statistic resolution.
func offsetByMean() pipeline.Step {
	return pipeline.Step{Name: "offsetByMean", Fn: func(v pipeline.Value, st *pipeline.Stats) (pipeline.Value, error) {
		xs, ok := v.Floats()
		if !ok {
			return pipeline.Value{}, errors.New("offsetByMean wants a vector")
		}
		m := st.Value(pipeline.StatMean)
		out := make([]float64, len(xs))
		for i, x := range xs {
			out[i] = x + m
		}
		return pipeline.Vector(out), nil
	}}
}

func TestApply_SanitizeRoundTrip(t *testing.T) {
	src := fifo.Slice{math.NaN(), math.Inf(1), math.Inf(-1)}

	out, err := pipeline.Apply(src, pipeline.Chain{identity()})
	require.NoError(t, err)

	got, ok := out.Floats()
	require.True(t, ok)
	assert.Equal(t, []float64{0, 1, -1}, got)
}

func TestApply_StatArgsResolvePerStep(t *testing.T) {
	src := fifo.Slice{1, 2, 3}

	// After doubling the mean is 4, so the offset step must add 4, not 2.
	out, err := pipeline.Apply(src, pipeline.Chain{double(), offsetByMean()})
	require.NoError(t, err)

	got, ok := out.Floats()
	require.True(t, ok)
	assert.Equal(t, []float64{6, 8, 10}, got)
}

func TestApply_OutputIndex(t *testing.T) {
	split := pipeline.Step{
		Name: "split",
		Fn: func(v pipeline.Value, _ *pipeline.Stats) (pipeline.Value, error) {
			return pipeline.Tuple(pipeline.Scalar(42), pipeline.Vector([]float64{7, 8})), nil
		},
		OutputIndex: pipeline.OutIndex(1),
	}

	out, err := pipeline.Apply(fifo.Slice{0}, pipeline.Chain{split})
	require.NoError(t, err)
	got, ok := out.Floats()
	require.True(t, ok)
	assert.Equal(t, []float64{7, 8}, got, "index 1 selects the vector member")

	split.OutputIndex = pipeline.OutIndex(5)
	_, err = pipeline.Apply(fifo.Slice{0}, pipeline.Chain{split})
	assert.ErrorIs(t, err, pipeline.ErrOutputIndex)

	// A non-tuple result ignores the selector.
	passthrough := identity()
	passthrough.OutputIndex = pipeline.OutIndex(3)
	out, err = pipeline.Apply(fifo.Slice{1, 2}, pipeline.Chain{passthrough})
	require.NoError(t, err)
	got, ok = out.Floats()
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2}, got)
}

func TestApplyValue_Fanout(t *testing.T) {
	in := pipeline.Tuple(
		pipeline.Vector([]float64{1, 2}),
		pipeline.Vector([]float64{3, 4}),
	)

	out, err := pipeline.ApplyValue(in, pipeline.Chain{offsetByMean()}, pipeline.WithFanout())
	require.NoError(t, err)

	members, ok := out.Members()
	require.True(t, ok)
	require.Len(t, members, 2)

	first, _ := members[0].Floats()
	second, _ := members[1].Floats()
	assert.Equal(t, []float64{2.5, 3.5}, first, "member statistics are per member")
	assert.Equal(t, []float64{6.5, 7.5}, second)
}

func TestApply_NeverMutatesSource(t *testing.T) {
	buf, err := fifo.New(4)
	require.NoError(t, err)
	buf.Enqueue(1, 2, 3)
	version := buf.Version()

	_, err = pipeline.Apply(buf, pipeline.Chain{double()})
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3}, buf.Contents())
	assert.Equal(t, version, buf.Version(), "a transform is a pure read")
}

func TestApply_EmptyChain(t *testing.T) {
	out, err := pipeline.Apply(fifo.Slice{math.NaN(), 5}, nil)
	require.NoError(t, err)
	got, ok := out.Floats()
	require.True(t, ok)
	assert.Equal(t, []float64{0, 5}, got, "even an empty chain sanitizes")
}

func TestApply_Validation(t *testing.T) {
	_, err := pipeline.Apply(nil, pipeline.Chain{identity()})
	assert.ErrorIs(t, err, pipeline.ErrNilSource)

	_, err = pipeline.Apply(fifo.Slice{1}, pipeline.Chain{{Name: "hole"}})
	assert.ErrorIs(t, err, pipeline.ErrNilStep)

	_, _, err = pipeline.ApplyGated(fifo.Slice{1}, nil, nil)
	assert.ErrorIs(t, err, pipeline.ErrNilGate)
}

func TestApply_StepErrorNamesStep(t *testing.T) {
	boom := errors.New("boom")
	explode := pipeline.Step{Name: "explode", Fn: func(pipeline.Value, *pipeline.Stats) (pipeline.Value, error) {
		return pipeline.Value{}, boom
	}}

	_, err := pipeline.Apply(fifo.Slice{1}, pipeline.Chain{identity(), explode})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `step 1 ("explode")`)
}

func TestApplyGated_UpdateMode(t *testing.T) {
	buf, err := fifo.New(4)
	require.NoError(t, err)
	buf.Enqueue(1, 2)
	g, err := gate.New(gate.ModeUpdate)
	require.NoError(t, err)

	out, fired, err := pipeline.ApplyGated(buf, pipeline.Chain{double()}, g)
	require.NoError(t, err)
	require.True(t, fired, "first observation computes")
	got, _ := out.Floats()
	assert.Equal(t, []float64{2, 4}, got)

	out, fired, err = pipeline.ApplyGated(buf, pipeline.Chain{double()}, g)
	require.NoError(t, err)
	assert.False(t, fired, "no mutation means no output")
	assert.True(t, out.IsZero())

	buf.Enqueue(3)
	_, fired, err = pipeline.ApplyGated(buf, pipeline.Chain{double()}, g)
	require.NoError(t, err)
	assert.True(t, fired)
}

func TestApplyGated_UnversionedAlwaysFires(t *testing.T) {
	g, err := gate.New(gate.ModeUpdate)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, fired, err := pipeline.ApplyGated(fifo.Slice{1, 2}, pipeline.Chain{identity()}, g)
		require.NoError(t, err)
		assert.True(t, fired, "raw slices carry no version and always count as changed")
	}
}

func TestApplyGated_IntervalMode(t *testing.T) {
	base := time.Unix(1_700_000_000, 0)
	current := base
	g, err := gate.New(gate.ModeInterval,
		gate.WithInterval(time.Second),
		gate.WithClock(func() time.Time { return current }),
	)
	require.NoError(t, err)

	_, fired, err := pipeline.ApplyGated(fifo.Slice{1}, pipeline.Chain{identity()}, g)
	require.NoError(t, err)
	assert.True(t, fired)

	_, fired, err = pipeline.ApplyGated(fifo.Slice{1}, pipeline.Chain{identity()}, g)
	require.NoError(t, err)
	assert.False(t, fired, "within the interval")

	current = base.Add(time.Second)
	_, fired, err = pipeline.ApplyGated(fifo.Slice{1}, pipeline.Chain{identity()}, g)
	require.NoError(t, err)
	assert.True(t, fired)
}
