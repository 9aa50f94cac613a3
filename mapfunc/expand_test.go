package mapfunc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heartlight/mapfunc"
	"github.com/katalvlaran/heartlight/pipeline"
)

func TestExpand_RGB(t *testing.T) {
	in := pipeline.Vector([]float64{0, 1})

	out := apply(t, mapfunc.Expand(
		pipeline.Chain{mapfunc.Ones()},
		pipeline.Chain{mapfunc.Identity()},
		pipeline.Chain{mapfunc.Zeros()},
	), in)

	members, ok := out.Members()
	require.True(t, ok)
	require.Len(t, members, 3)
	assert.Equal(t, []float64{1, 1}, vec(t, members[0]), "red")
	assert.Equal(t, []float64{0, 1}, vec(t, members[1]), "green")
	assert.Equal(t, []float64{0, 0}, vec(t, members[2]), "blue")
}

func TestExpand_PerChannelStats(t *testing.T) {
	in := pipeline.Vector([]float64{2, 4})

	out := apply(t, mapfunc.Expand(
		pipeline.Chain{mapfunc.Offset(pipeline.Stat(pipeline.StatMean))},
		pipeline.Chain{mapfunc.RangeScaler(pipeline.Lit(0), pipeline.Lit(1), pipeline.Auto(), pipeline.Auto())},
	), in)

	members, ok := out.Members()
	require.True(t, ok)
	require.Len(t, members, 2)
	assert.Equal(t, []float64{5, 7}, vec(t, members[0]))
	assert.Equal(t, []float64{0, 1}, vec(t, members[1]))
}

func TestExpand_ChannelsAreIndependent(t *testing.T) {
	in := pipeline.Vector([]float64{1, 2})

	// The first chain reduces to a scalar; the second must still see the
	// original vector, not the first chain's output.
	out := apply(t, mapfunc.Expand(
		pipeline.Chain{mapfunc.Mean()},
		pipeline.Chain{mapfunc.Identity()},
	), in)

	members, ok := out.Members()
	require.True(t, ok)
	f, ok := members[0].Float()
	require.True(t, ok)
	assert.Equal(t, 1.5, f)
	assert.Equal(t, []float64{1, 2}, vec(t, members[1]))
}

func TestExpand_ChannelErrorNamesChannel(t *testing.T) {
	in := pipeline.Vector([]float64{1, 2})

	_, err := pipeline.ApplyValue(in, pipeline.Chain{
		mapfunc.Expand(
			pipeline.Chain{mapfunc.Identity()},
			pipeline.Chain{mapfunc.Interpolate1D(1, []int{0}, mapfunc.EdgeWrap)}, // two values into one slot
		),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, mapfunc.ErrSize)
	assert.Contains(t, err.Error(), "channel 1")
}
