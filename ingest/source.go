package ingest

import (
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/katalvlaran/heartlight/fifo"
)

// Conn is the slice of *nats.Conn a Source uses. Tests satisfy it with a
// fake that hands crafted messages straight to the subscription handler.
type Conn interface {
	Subscribe(subject string, handler nats.MsgHandler) (*nats.Subscription, error)
	Drain() error
}

// Source feeds signal buffers from broker subjects. One Source serves
// any number of Subscribe calls; each subscription owns its buffer and
// is that buffer's single producer.
type Source struct {
	conn   Conn
	logger *slog.Logger
}

// Connect dials a NATS server with the production defaults (client
// name, dial timeout, reconnect wait, unlimited reconnects) and wraps
// the connection in a Source.
func Connect(url string, opts ...Option) (*Source, error) {
	cfg := defaults()
	for _, opt := range opts {
		opt(&cfg)
	}
	nc, err := nats.Connect(url,
		nats.Name(cfg.name),
		nats.Timeout(cfg.timeout),
		nats.ReconnectWait(cfg.reconnectWait),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("ingest: connect %s: %w", url, err)
	}
	return New(nc, opts...)
}

// New wraps an existing connection. Connection-tuning options are
// ignored here; WithLogger applies.
func New(conn Conn, opts ...Option) (*Source, error) {
	if conn == nil {
		return nil, ErrNilConn
	}
	cfg := defaults()
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{
		conn:   conn,
		logger: logger.With(slog.String("component", "ingest")),
	}, nil
}

// Subscribe listens on subject and enqueues every decoded sample into
// buf, oldest first. Frames that do not divide into whole samples are
// logged and dropped; sample values are enqueued as received, leaving
// sanitisation to the consuming chains.
func (s *Source) Subscribe(subject string, buf *fifo.Buffer) error {
	if subject == "" {
		return ErrEmptySubject
	}
	if buf == nil {
		return ErrNilBuffer
	}
	_, err := s.conn.Subscribe(subject, func(msg *nats.Msg) {
		samples, ok := Decode(msg.Data)
		if !ok {
			s.logger.Warn("dropping frame with a partial sample",
				slog.String("subject", msg.Subject),
				slog.Int("bytes", len(msg.Data)))
			return
		}
		if len(samples) == 0 {
			return
		}
		buf.Enqueue(samples...)
	})
	if err != nil {
		return fmt.Errorf("ingest: subscribe %s: %w", subject, err)
	}
	s.logger.Debug("subscribed", slog.String("subject", subject))
	return nil
}

// Close drains the connection: in-flight frames are delivered before
// the subscriptions drop.
func (s *Source) Close() error {
	return s.conn.Drain()
}
