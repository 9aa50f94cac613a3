package mapper

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/katalvlaran/heartlight/fifo"
)

// Trigger polls a reference/query pair through a chain of trigger
// functions and fires an action whenever the chain yields true. Run it as
// a supervised task; it only returns on context cancellation or error.
type Trigger struct {
	ref    fifo.Source
	query  QueryFunc
	action Action
	poll   time.Duration

	mu    sync.RWMutex
	chain []TriggerFunc
}

// TriggerOption adjusts a Trigger at construction time.
type TriggerOption func(*Trigger)

// WithPollInterval makes Run wait d between polls instead of yielding to
// the scheduler. Zero-delay polling reacts within one scheduler pass;
// a timed wait trades latency for idle CPU.
func WithPollInterval(d time.Duration) TriggerOption {
	return func(t *Trigger) { t.poll = d }
}

// NewTrigger builds a polling trigger. The chain must be non-empty with
// no nil links; the final link must yield a bool at poll time.
func NewTrigger(ref fifo.Source, query QueryFunc, chain []TriggerFunc, action Action, opts ...TriggerOption) (*Trigger, error) {
	if ref == nil {
		return nil, ErrNilReference
	}
	if query == nil {
		return nil, ErrNilQuery
	}
	if action == nil {
		return nil, ErrNilAction
	}
	if err := checkChain(chain); err != nil {
		return nil, err
	}
	t := &Trigger{
		ref:    ref,
		query:  query,
		action: action,
		chain:  append([]TriggerFunc(nil), chain...),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

func checkChain(chain []TriggerFunc) error {
	if len(chain) == 0 {
		return ErrEmptyChain
	}
	for i, fn := range chain {
		if fn == nil {
			return fmt.Errorf("%w: position %d", ErrNilTrigger, i)
		}
	}
	return nil
}

// SetFunctions replaces the trigger chain; the next poll uses it.
func (t *Trigger) SetFunctions(chain []TriggerFunc) error {
	if err := checkChain(chain); err != nil {
		return err
	}
	t.mu.Lock()
	t.chain = append([]TriggerFunc(nil), chain...)
	t.mu.Unlock()
	return nil
}

// Poll runs one evaluation: snapshot the query, thread the Pair through
// the chain, and fire the action if the final bool is true. It reports
// whether the action fired.
func (t *Trigger) Poll(ctx context.Context) (bool, error) {
	t.mu.RLock()
	chain := t.chain
	t.mu.RUnlock()

	var v any = Pair{Ref: t.ref, Query: t.query()}
	for i, fn := range chain {
		out, err := fn(v)
		if err != nil {
			return false, fmt.Errorf("mapper: trigger step %d: %w", i, err)
		}
		v = out
	}

	fired, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: got %T (%v)", ErrNotBool, v, v)
	}
	if !fired {
		return false, nil
	}
	if err := t.action(ctx); err != nil {
		return true, fmt.Errorf("mapper: trigger action: %w", err)
	}
	return true, nil
}

// Run polls until ctx is cancelled or a poll fails. Each iteration checks
// ctx, evaluates once, then yields: to the scheduler by default, or for
// the configured poll interval.
func (t *Trigger) Run(ctx context.Context) error {
	var tickC <-chan time.Time
	if t.poll > 0 {
		tick := time.NewTicker(t.poll)
		defer tick.Stop()
		tickC = tick.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if _, err := t.Poll(ctx); err != nil {
			return err
		}

		if tickC == nil {
			runtime.Gosched()
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tickC:
		}
	}
}
