package show

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/heartlight/ingest"
	"github.com/katalvlaran/heartlight/pipeline"
	"github.com/katalvlaran/heartlight/sink"
)

const (
	// DefaultPollInterval is how often perpetual tasks look for new data.
	DefaultPollInterval = time.Millisecond

	// DefaultRateCapacity is the rolling window of derived BPM values per
	// channel.
	DefaultRateCapacity = 10

	// EnvURL, when set, overrides the configured transport URL.
	EnvURL = "HEARTLIGHT_NATS_URL"
)

var (
	// ErrConfig is wrapped by every configuration validation failure.
	ErrConfig = errors.New("show: invalid config")

	// ErrUnknownMode is returned when a mapping mode name has no
	// registered chain.
	ErrUnknownMode = errors.New("show: unknown mapping mode")
)

// Option tunes New.
type Option func(*options)

type options struct {
	logger *slog.Logger
	out    sink.Sink
	conn   ingest.Conn
	modes  map[string]pipeline.Chain
	poll   time.Duration
}

// WithLogger routes the show's lifecycle and task logging to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithSink delivers lighting frames to s instead of the rehearsal log
// sink.
func WithSink(s sink.Sink) Option {
	return func(o *options) { o.out = s }
}

// WithConn reuses an existing broker connection instead of dialling the
// configured URL. Tests inject fakes here.
func WithConn(c ingest.Conn) Option {
	return func(o *options) { o.conn = c }
}

// WithModes registers extra mapping modes; names colliding with the
// built-in presets override them.
func WithModes(modes map[string]pipeline.Chain) Option {
	return func(o *options) {
		if o.modes == nil {
			o.modes = make(map[string]pipeline.Chain, len(modes))
		}
		for name, chain := range modes {
			o.modes[name] = chain
		}
	}
}

// WithPollInterval overrides how often tasks poll their buffers.
func WithPollInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.poll = d
		}
	}
}
