package sink

import (
	"context"
	"encoding/json"
	"fmt"
)

// Publisher is the slice of *nats.Conn the NATS sink uses; tests
// satisfy it with an in-memory recorder.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATS publishes frames as JSON messages on a broker subject, one
// message per frame. The console bridge on the other side owns the
// translation to its own wire syntax.
type NATS struct {
	pub     Publisher
	subject string
}

// wireFrame is the published schema: the channel set travels by name
// so consumers never depend on enum ordering.
type wireFrame struct {
	Set      string      `json:"set"`
	Fixtures []int       `json:"fixtures"`
	Values   [][]float64 `json:"values"`
}

// NewNATS builds a broker-backed sink publishing to subject.
func NewNATS(pub Publisher, subject string) (*NATS, error) {
	if pub == nil {
		return nil, ErrNilPublisher
	}
	if subject == "" {
		return nil, ErrEmptySubject
	}
	return &NATS{pub: pub, subject: subject}, nil
}

// Send marshals the frame and publishes it. A cancelled ctx stops the
// frame before it reaches the broker.
func (n *NATS) Send(ctx context.Context, f Frame) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(wireFrame{
		Set:      f.Set.String(),
		Fixtures: f.Fixtures,
		Values:   f.Values,
	})
	if err != nil {
		return fmt.Errorf("sink: encode frame: %w", err)
	}
	if err := n.pub.Publish(n.subject, data); err != nil {
		return fmt.Errorf("sink: publish %s: %w", n.subject, err)
	}
	return nil
}
