package pipeline_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/heartlight/pipeline"
)

func TestStats_Values(t *testing.T) {
	st := pipeline.NewStats(pipeline.Vector([]float64{1, 2, 3, 4}))

	assert.InDelta(t, 1, st.Value(pipeline.StatMin), 1e-12)
	assert.InDelta(t, 4, st.Value(pipeline.StatMax), 1e-12)
	assert.InDelta(t, 2.5, st.Value(pipeline.StatMean), 1e-12)
	assert.InDelta(t, math.Sqrt(1.25), st.Value(pipeline.StatStd), 1e-12,
		"standard deviation is the population form")
	assert.InDelta(t, 2.5, st.Value(pipeline.StatMedian), 1e-12,
		"median of an even count is the midpoint")
}

func TestStats_OddMedian(t *testing.T) {
	st := pipeline.NewStats(pipeline.Vector([]float64{9, 1, 5}))
	assert.InDelta(t, 5, st.Value(pipeline.StatMedian), 1e-12)
}

func TestStats_ExcludesNonFinite(t *testing.T) {
	st := pipeline.NewStats(pipeline.Vector([]float64{1, math.NaN(), 3, math.Inf(1)}))

	assert.Len(t, st.Finite(), 2)
	assert.InDelta(t, 2, st.Value(pipeline.StatMean), 1e-12)
	assert.InDelta(t, 3, st.Value(pipeline.StatMax), 1e-12)
}

func TestStats_EmptyDefaultsToZero(t *testing.T) {
	for _, v := range []pipeline.Value{
		pipeline.Vector(nil),
		pipeline.Scalar(math.NaN()),
		{},
	} {
		st := pipeline.NewStats(v)
		for _, which := range []pipeline.Statistic{
			pipeline.StatMin, pipeline.StatMax, pipeline.StatMean, pipeline.StatStd, pipeline.StatMedian,
		} {
			assert.Zero(t, st.Value(which), "statistic %v of %v", which, v)
		}
	}
}

func TestStats_FlattensTuples(t *testing.T) {
	st := pipeline.NewStats(pipeline.Tuple(
		pipeline.Vector([]float64{1, 2}),
		pipeline.Scalar(6),
	))
	assert.InDelta(t, 3, st.Value(pipeline.StatMean), 1e-12)
}

func TestParseStatistic(t *testing.T) {
	for _, name := range []string{"min", "max", "mean", "std", "median"} {
		s, err := pipeline.ParseStatistic(name)
		assert.NoError(t, err)
		assert.Equal(t, name, s.String())
	}
	_, err := pipeline.ParseStatistic("variance")
	assert.ErrorIs(t, err, pipeline.ErrBadStatistic)
}

func TestArg_Resolve(t *testing.T) {
	st := pipeline.NewStats(pipeline.Vector([]float64{2, 4}))

	assert.InDelta(t, 7.5, pipeline.Lit(7.5).Resolve(st), 1e-12)
	assert.InDelta(t, 3, pipeline.Stat(pipeline.StatMean).Resolve(st), 1e-12)
	assert.True(t, pipeline.Auto().IsAuto())
	assert.Zero(t, pipeline.Auto().Resolve(st))
	assert.False(t, pipeline.Lit(1).IsAuto())
}
