package mapper_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/heartlight/feature"
	"github.com/katalvlaran/heartlight/fifo"
	"github.com/katalvlaran/heartlight/fixture"
	"github.com/katalvlaran/heartlight/mapfunc"
	"github.com/katalvlaran/heartlight/mapper"
	"github.com/katalvlaran/heartlight/pipeline"
)

// ContinuousSuite wires the full mapping scenario: two heart-rate
// channels normalised into a feature vector, expanded to RGB arrays, and
// painted onto a two-fixture array.
type ContinuousSuite struct {
	suite.Suite
	agg *feature.Aggregator
	fix *fixture.Array
}

func (s *ContinuousSuite) SetupTest() {
	pulse, err := fifo.New(1)
	s.Require().NoError(err)
	pulse.Enqueue(60)
	breath, err := fifo.New(1)
	s.Require().NoError(err)
	breath.Enqueue(120)

	s.agg, err = feature.New([]feature.Channel{
		{Name: "pulse", Source: pulse},
		{Name: "breath", Source: breath},
	})
	s.Require().NoError(err)

	norm := pipeline.Chain{
		mapfunc.RangeScaler(pipeline.Lit(0), pipeline.Lit(1), pipeline.Lit(60), pipeline.Lit(120)),
	}
	s.Require().NoError(s.agg.Recompute(norm))

	rgb := pipeline.Chain{mapfunc.Expand(
		pipeline.Chain{mapfunc.Ones()},
		pipeline.Chain{mapfunc.Identity()},
		pipeline.Chain{mapfunc.Zeros()},
	)}
	s.Require().NoError(s.agg.SpatialExpansion(rgb, "rgb"))

	s.fix, err = fixture.New([]int{1, 2}, []int{1})
	s.Require().NoError(err)
}

func (s *ContinuousSuite) TestRGBExpansionPaintsFixtures() {
	m, err := mapper.NewContinuous(s.agg, s.fix, nil)
	s.Require().NoError(err)
	s.Require().NoError(m.ApplyMapping(fixture.RGB, "rgb"))

	cur, err := s.fix.Current(fixture.RGB)
	s.Require().NoError(err)
	s.Equal([]float64{1, 1}, cur[0])
	s.Equal([]float64{0, 1}, cur[1])
	s.Equal([]float64{0, 0}, cur[2])
}

func (s *ContinuousSuite) TestRawVectorMapsToIntensity() {
	m, err := mapper.NewContinuous(s.agg, s.fix, nil)
	s.Require().NoError(err)
	s.Require().NoError(m.ApplyMapping(fixture.Intensity, ""))

	cur, err := s.fix.Current(fixture.Intensity)
	s.Require().NoError(err)
	s.Equal([]float64{0, 1}, cur[0])
}

func (s *ContinuousSuite) TestChainFansOutOverExpansionMembers() {
	m, err := mapper.NewContinuous(s.agg, s.fix, pipeline.Chain{
		mapfunc.Scale(pipeline.Lit(0.5)),
	})
	s.Require().NoError(err)
	s.Require().NoError(m.ApplyMapping(fixture.RGB, "rgb"))

	cur, err := s.fix.Current(fixture.RGB)
	s.Require().NoError(err)
	s.Equal([]float64{0.5, 0.5}, cur[0])
	s.Equal([]float64{0, 0.5}, cur[1])
	s.Equal([]float64{0, 0}, cur[2])
}

func (s *ContinuousSuite) TestSetFunctionsSwapsChain() {
	m, err := mapper.NewContinuous(s.agg, s.fix, nil)
	s.Require().NoError(err)

	m.SetFunctions(pipeline.Chain{mapfunc.Ones()})
	s.Require().NoError(m.ApplyMapping(fixture.White, ""))

	cur, err := s.fix.Current(fixture.White)
	s.Require().NoError(err)
	s.Equal([]float64{1, 1}, cur[0])
}

func (s *ContinuousSuite) TestSingleChannelRejectsTuple() {
	// A one-member tuple is still a tuple, not a vector.
	mono := pipeline.Chain{mapfunc.Expand(pipeline.Chain{mapfunc.Identity()})}
	s.Require().NoError(s.agg.SpatialExpansion(mono, "mono"))

	m, err := mapper.NewContinuous(s.agg, s.fix, nil)
	s.Require().NoError(err)

	err = m.ApplyMapping(fixture.Intensity, "mono")
	s.ErrorIs(err, mapper.ErrShapeMismatch)
	s.ErrorContains(err, "tuple(1 members)")
}

func (s *ContinuousSuite) TestWrongMemberCountForRGB() {
	duo := pipeline.Chain{mapfunc.Expand(
		pipeline.Chain{mapfunc.Identity()},
		pipeline.Chain{mapfunc.Identity()},
	)}
	s.Require().NoError(s.agg.SpatialExpansion(duo, "duo"))

	m, err := mapper.NewContinuous(s.agg, s.fix, nil)
	s.Require().NoError(err)

	err = m.ApplyMapping(fixture.RGB, "duo")
	s.ErrorIs(err, mapper.ErrShapeMismatch)
	s.ErrorContains(err, "wants a tuple of 3 vectors")
}

func (s *ContinuousSuite) TestUnknownExpansionPropagates() {
	m, err := mapper.NewContinuous(s.agg, s.fix, nil)
	s.Require().NoError(err)
	s.ErrorIs(m.ApplyMapping(fixture.RGB, "ghost"), feature.ErrUnknownExpansion)
}

func TestContinuousSuite(t *testing.T) {
	suite.Run(t, new(ContinuousSuite))
}

func TestNewContinuous_NilGuards(t *testing.T) {
	buf, err := fifo.New(1)
	require.NoError(t, err)
	buf.Enqueue(1)
	agg, err := feature.New([]feature.Channel{{Name: "a", Source: buf}})
	require.NoError(t, err)
	fix, err := fixture.New([]int{1}, nil)
	require.NoError(t, err)

	_, err = mapper.NewContinuous(nil, fix, nil)
	assert.ErrorIs(t, err, mapper.ErrNilAggregator)
	_, err = mapper.NewContinuous(agg, nil, nil)
	assert.ErrorIs(t, err, mapper.ErrNilFixtures)
}

func TestApplyMapping_VectorLengthMismatch(t *testing.T) {
	buf, err := fifo.New(1)
	require.NoError(t, err)
	buf.Enqueue(1)
	agg, err := feature.New([]feature.Channel{{Name: "a", Source: buf}})
	require.NoError(t, err)
	require.NoError(t, agg.Recompute(pipeline.Chain{mapfunc.Mean()}))

	// Three fixtures, but the feature vector has one slot.
	fix, err := fixture.New([]int{1, 2, 3}, nil)
	require.NoError(t, err)
	m, err := mapper.NewContinuous(agg, fix, nil)
	require.NoError(t, err)

	err = m.ApplyMapping(fixture.Intensity, "")
	assert.ErrorIs(t, err, mapper.ErrShapeMismatch)
	assert.ErrorContains(t, err, "wants one vector of 3, got vector(len=1)")
}

func TestApplyMapping_UnknownSet(t *testing.T) {
	buf, err := fifo.New(1)
	require.NoError(t, err)
	buf.Enqueue(1)
	agg, err := feature.New([]feature.Channel{{Name: "a", Source: buf}})
	require.NoError(t, err)
	fix, err := fixture.New([]int{1}, nil)
	require.NoError(t, err)
	m, err := mapper.NewContinuous(agg, fix, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, m.ApplyMapping(fixture.ChannelSet(42), ""), fixture.ErrChannelSet)
}

func TestApplyMapping_ChainErrorNamesSet(t *testing.T) {
	buf, err := fifo.New(1)
	require.NoError(t, err)
	buf.Enqueue(1)
	agg, err := feature.New([]feature.Channel{{Name: "a", Source: buf}})
	require.NoError(t, err)
	fix, err := fixture.New([]int{1}, nil)
	require.NoError(t, err)

	boom := errors.New("boom")
	fail := pipeline.Step{Name: "explode", Fn: func(pipeline.Value, *pipeline.Stats) (pipeline.Value, error) {
		return pipeline.Value{}, boom
	}}
	m, err := mapper.NewContinuous(agg, fix, pipeline.Chain{fail})
	require.NoError(t, err)

	err = m.ApplyMapping(fixture.Intensity, "")
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "intensity mapping")
}
