package pipeline

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heartlight/fifo"
	"github.com/katalvlaran/heartlight/gate"
)

// StepFunc transforms one intermediate into the next. st resolves
// statistics over v. Implementations must not mutate v's backing storage;
// returning v unchanged is fine.
type StepFunc func(v Value, st *Stats) (Value, error)

// Step is one link of a chain. OutputIndex, when non-nil, selects that
// member of a tuple-valued result before the next step runs; results that
// are not tuples pass through unchanged. Selecting a missing member is
// ErrOutputIndex.
type Step struct {
	Name        string
	Fn          StepFunc
	OutputIndex *int
}

// OutIndex is a literal helper for Step.OutputIndex.
func OutIndex(i int) *int { return &i }

// Chain is an ordered list of steps applied left to right.
type Chain []Step

type applyConfig struct {
	fanout bool
}

// ApplyOption adjusts how a chain is applied.
type ApplyOption func(*applyConfig)

// WithFanout applies each step to every member of a tuple intermediate
// independently, with per-member statistics. Used after an expansion has
// split one vector into per-channel arrays.
func WithFanout() ApplyOption {
	return func(c *applyConfig) { c.fanout = true }
}

// Apply runs the chain over a snapshot of the source's contents. The
// source is never mutated; reads do not advance its version.
func Apply(src fifo.Source, chain Chain, opts ...ApplyOption) (Value, error) {
	if src == nil {
		return Value{}, ErrNilSource
	}
	return ApplyValue(Vector(src.Contents()), chain, opts...)
}

// ApplyValue runs the chain over a deep copy of v.
//
// Per step: statistics are resolved against the current intermediate's
// finite values, the step function runs, OutputIndex (if any) selects a
// tuple member, and array results are sanitized. The input is sanitized
// once before the first step. Sanitization replaces NaN with 0, +Inf
// with 1 and −Inf with −1, elementwise; scalars pass through untouched.
func ApplyValue(v Value, chain Chain, opts ...ApplyOption) (Value, error) {
	var cfg applyConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	cur := sanitize(v.Clone())
	for i, step := range chain {
		if step.Fn == nil {
			return Value{}, fmt.Errorf("%w: step %d (%q)", ErrNilStep, i, step.Name)
		}
		out, err := runStep(cur, step, cfg.fanout)
		if err != nil {
			return Value{}, fmt.Errorf("pipeline: step %d (%q): %w", i, step.Name, err)
		}
		cur = out
	}
	return cur, nil
}

// ApplyGated consults the gate before computing. When the gate does not
// admit, it returns the zero Value and fired == false with no error, so
// callers can tell "nothing happened" from a computed zero.
//
// Sources exposing a version feed it to update-mode gates; sources
// without one always count as changed.
func ApplyGated(src fifo.Source, chain Chain, g *gate.Gate, opts ...ApplyOption) (Value, bool, error) {
	if src == nil {
		return Value{}, false, ErrNilSource
	}
	if g == nil {
		return Value{}, false, ErrNilGate
	}
	var fired bool
	switch vs, ok := src.(fifo.Versioned); {
	case ok:
		fired = g.Admit(vs.Version())
	case g.Mode() == gate.ModeUpdate:
		fired = true
	default:
		fired = g.Admit()
	}
	if !fired {
		return Value{}, false, nil
	}
	out, err := Apply(src, chain, opts...)
	if err != nil {
		return Value{}, false, err
	}
	return out, true, nil
}

func runStep(cur Value, step Step, fanout bool) (Value, error) {
	if fanout {
		if members, ok := cur.Members(); ok {
			out := make([]Value, len(members))
			for i, m := range members {
				r, err := applyOne(m, step)
				if err != nil {
					return Value{}, fmt.Errorf("member %d: %w", i, err)
				}
				out[i] = r
			}
			return Tuple(out...), nil
		}
	}
	return applyOne(cur, step)
}

func applyOne(v Value, step Step) (Value, error) {
	res, err := step.Fn(v, NewStats(v))
	if err != nil {
		return Value{}, err
	}
	if step.OutputIndex != nil {
		if members, ok := res.Members(); ok {
			idx := *step.OutputIndex
			if idx < 0 || idx >= len(members) {
				return Value{}, fmt.Errorf("%w: member %d of %s", ErrOutputIndex, idx, res)
			}
			res = members[idx]
		}
	}
	return sanitize(res), nil
}

// sanitize rewrites non-finite array elements in place and returns v.
// Tuples are sanitized member by member.
func sanitize(v Value) Value {
	switch v.kind {
	case KindVector:
		for i, x := range v.vector {
			switch {
			case math.IsNaN(x):
				v.vector[i] = 0
			case math.IsInf(x, 1):
				v.vector[i] = 1
			case math.IsInf(x, -1):
				v.vector[i] = -1
			}
		}
	case KindTuple:
		for i, m := range v.tuple {
			v.tuple[i] = sanitize(m)
		}
	}
	return v
}
