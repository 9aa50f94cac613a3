package sink

import (
	"context"
	"errors"

	"github.com/katalvlaran/heartlight/fixture"
)

var (
	// ErrNilSink is returned by Ramp and Pulse for a nil sink.
	ErrNilSink = errors.New("sink: nil sink")

	// ErrNilPublisher is returned by NewNATS for a nil publisher.
	ErrNilPublisher = errors.New("sink: nil publisher")

	// ErrEmptySubject is returned by NewNATS for an empty subject.
	ErrEmptySubject = errors.New("sink: empty subject")

	// ErrNoFixtures is returned when a frame or effect targets no
	// fixtures.
	ErrNoFixtures = errors.New("sink: no fixtures")

	// ErrShapeMismatch is returned when start or end values do not fit
	// the channel set and fixture count.
	ErrShapeMismatch = errors.New("sink: value shape mismatch")

	// ErrBadStep is returned by Ramp for a step that is not positive.
	ErrBadStep = errors.New("sink: step must be positive")
)

// Frame is one atomic write to downstream lighting: the channel-set's
// rows of values, one column per fixture id. It mirrors the shape
// fixture.Array.Apply takes, with the ids spelled out for the wire.
type Frame struct {
	Set      fixture.ChannelSet
	Fixtures []int
	Values   [][]float64
}

// Sink delivers frames somewhere: a log, a broker, a test recorder.
// Send may block; implementations should honour ctx where they can.
// The frame's slices are only valid for the duration of the call, so
// implementations that retain them must copy.
type Sink interface {
	Send(ctx context.Context, f Frame) error
}

// Func adapts a plain function to Sink.
type Func func(ctx context.Context, f Frame) error

// Send calls f.
func (f Func) Send(ctx context.Context, frame Frame) error {
	return f(ctx, frame)
}
