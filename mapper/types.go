package mapper

import (
	"context"
	"errors"

	"github.com/katalvlaran/heartlight/feature"
	"github.com/katalvlaran/heartlight/fifo"
)

var (
	// ErrNilAggregator is returned by NewContinuous for a nil aggregator.
	ErrNilAggregator = errors.New("mapper: nil aggregator")

	// ErrNilFixtures is returned by NewContinuous for a nil fixture array.
	ErrNilFixtures = errors.New("mapper: nil fixture array")

	// ErrNilReference is returned by NewTrigger for a nil reference source.
	ErrNilReference = errors.New("mapper: nil reference source")

	// ErrNilQuery is returned by NewTrigger for a nil query.
	ErrNilQuery = errors.New("mapper: nil query")

	// ErrNilAction is returned by NewTrigger for a nil action.
	ErrNilAction = errors.New("mapper: nil action")

	// ErrEmptyChain is returned when a trigger chain has no functions: an
	// empty chain can never yield the required bool.
	ErrEmptyChain = errors.New("mapper: empty trigger chain")

	// ErrNilTrigger is returned when a trigger chain contains a nil
	// function.
	ErrNilTrigger = errors.New("mapper: nil trigger function")

	// ErrShapeMismatch is returned by ApplyMapping when the chain result
	// does not fit the target channel set.
	ErrShapeMismatch = errors.New("mapper: mapping shape mismatch")

	// ErrNotBool is returned when a trigger chain's final result is not a
	// bool.
	ErrNotBool = errors.New("mapper: trigger chain result is not a bool")

	// ErrPairExpected is returned by crossing triggers fed something other
	// than the poll Pair.
	ErrPairExpected = errors.New("mapper: trigger input is not a Pair")
)

// TriggerFunc is one link of a trigger chain. The first link receives the
// poll's Pair; every later link receives the previous link's output. The
// final link must yield a bool.
type TriggerFunc func(v any) (any, error)

// Pair is the raw input handed to the first trigger function on every
// poll: the reference source and a snapshot of the query values.
type Pair struct {
	Ref   fifo.Source
	Query []float64
}

// QueryFunc produces the query values for one poll. It is called once per
// iteration, so the trigger chain always sees fresh data.
type QueryFunc func() []float64

// QuerySource adapts a sample source: each poll snapshots its contents.
func QuerySource(src fifo.Source) QueryFunc {
	return func() []float64 { return src.Contents() }
}

// QueryValues adapts named aggregator slots: each poll reads their
// current values.
func QueryValues(agg *feature.Aggregator, names ...string) QueryFunc {
	return func() []float64 { return agg.Values(names...) }
}

// Action is the work fired when a trigger chain yields true. It runs
// synchronously inside the poll loop; an error terminates the loop.
type Action func(ctx context.Context) error
