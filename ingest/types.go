package ingest

import (
	"errors"
	"log/slog"
	"time"
)

// Connection defaults match the production acquisition bridge: dial
// quickly, reconnect forever.
const (
	DefaultName          = "heartlight"
	DefaultTimeout       = 3 * time.Second
	DefaultReconnectWait = 500 * time.Millisecond
)

var (
	// ErrNilConn is returned by New for a nil connection.
	ErrNilConn = errors.New("ingest: nil connection")

	// ErrNilBuffer is returned by Subscribe for a nil destination buffer.
	ErrNilBuffer = errors.New("ingest: nil buffer")

	// ErrEmptySubject is returned by Subscribe for an empty subject.
	ErrEmptySubject = errors.New("ingest: empty subject")
)

// Option tunes Connect and New.
type Option func(*config)

type config struct {
	name          string
	timeout       time.Duration
	reconnectWait time.Duration
	logger        *slog.Logger
}

func defaults() config {
	return config{
		name:          DefaultName,
		timeout:       DefaultTimeout,
		reconnectWait: DefaultReconnectWait,
	}
}

// WithName overrides the client name the broker sees.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithTimeout overrides the dial timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *config) { c.timeout = d }
}

// WithReconnectWait overrides the pause between reconnect attempts.
func WithReconnectWait(d time.Duration) Option {
	return func(c *config) { c.reconnectWait = d }
}

// WithLogger routes frame-drop warnings to l instead of slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}
