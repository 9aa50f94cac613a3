package pipeline

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrNilSource is returned by Apply when the source is nil.
	ErrNilSource = errors.New("pipeline: nil source")
	// ErrNilStep is returned when a chain contains a step with no function.
	ErrNilStep = errors.New("pipeline: step has nil function")
	// ErrNilGate is returned by ApplyGated when no gate is supplied.
	ErrNilGate = errors.New("pipeline: nil gate")
	// ErrOutputIndex is returned when a step selects a tuple member that
	// does not exist.
	ErrOutputIndex = errors.New("pipeline: output index out of range")
	// ErrBadStatistic is returned for an unrecognised statistic name.
	ErrBadStatistic = errors.New("pipeline: unknown statistic")
)

// Kind discriminates the shapes an intermediate Value can take.
type Kind uint8

const (
	// KindEmpty is the zero Value, carrying no data.
	KindEmpty Kind = iota
	// KindScalar is a single float64.
	KindScalar
	// KindVector is a []float64.
	KindVector
	// KindTuple is an ordered group of Values, one per channel.
	KindTuple
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	case KindTuple:
		return "tuple"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is the intermediate flowing through a chain: a scalar, a vector,
// or a tuple of Values (one member per channel after an expansion).
// The zero Value is KindEmpty.
type Value struct {
	kind   Kind
	scalar float64
	vector []float64
	tuple  []Value
}

// Scalar wraps a single float64.
func Scalar(v float64) Value { return Value{kind: KindScalar, scalar: v} }

// Vector wraps a slice. The slice is not copied; Apply and ApplyValue
// clone their input before running, so callers keep ownership.
func Vector(vs []float64) Value { return Value{kind: KindVector, vector: vs} }

// Tuple groups member Values, typically one vector per colour channel.
func Tuple(members ...Value) Value { return Value{kind: KindTuple, tuple: members} }

// Kind reports the shape of the value.
func (v Value) Kind() Kind { return v.kind }

// IsZero reports whether the value is the empty zero Value.
func (v Value) IsZero() bool { return v.kind == KindEmpty }

// Float returns the scalar payload. ok is false unless Kind is KindScalar.
func (v Value) Float() (float64, bool) {
	if v.kind != KindScalar {
		return 0, false
	}
	return v.scalar, true
}

// Floats returns the vector payload. ok is false unless Kind is KindVector.
func (v Value) Floats() ([]float64, bool) {
	if v.kind != KindVector {
		return nil, false
	}
	return v.vector, true
}

// Members returns the tuple payload. ok is false unless Kind is KindTuple.
func (v Value) Members() ([]Value, bool) {
	if v.kind != KindTuple {
		return nil, false
	}
	return v.tuple, true
}

// Len is the element count: 1 for a scalar, len for a vector, the member
// count for a tuple, 0 for the empty value.
func (v Value) Len() int {
	switch v.kind {
	case KindScalar:
		return 1
	case KindVector:
		return len(v.vector)
	case KindTuple:
		return len(v.tuple)
	default:
		return 0
	}
}

// Clone returns a deep copy; mutating the copy never affects the original.
func (v Value) Clone() Value {
	switch v.kind {
	case KindVector:
		return Vector(append([]float64(nil), v.vector...))
	case KindTuple:
		members := make([]Value, len(v.tuple))
		for i, m := range v.tuple {
			members[i] = m.Clone()
		}
		return Tuple(members...)
	default:
		return v
	}
}

// String describes the value's shape for error messages.
func (v Value) String() string {
	switch v.kind {
	case KindScalar:
		return fmt.Sprintf("scalar(%g)", v.scalar)
	case KindVector:
		return fmt.Sprintf("vector(len=%d)", len(v.vector))
	case KindTuple:
		return fmt.Sprintf("tuple(%d members)", len(v.tuple))
	default:
		return "empty"
	}
}

// Statistic names a summary computed over the current intermediate's
// finite values and usable as a step argument.
type Statistic uint8

const (
	StatMin Statistic = iota
	StatMax
	StatMean
	StatStd
	StatMedian
)

// String returns the symbolic name used in configuration.
func (s Statistic) String() string {
	switch s {
	case StatMin:
		return "min"
	case StatMax:
		return "max"
	case StatMean:
		return "mean"
	case StatStd:
		return "std"
	case StatMedian:
		return "median"
	default:
		return "statistic(" + strconv.Itoa(int(s)) + ")"
	}
}

// ParseStatistic maps a symbolic name to a Statistic.
func ParseStatistic(name string) (Statistic, error) {
	switch name {
	case "min":
		return StatMin, nil
	case "max":
		return StatMax, nil
	case "mean":
		return StatMean, nil
	case "std":
		return StatStd, nil
	case "median":
		return StatMedian, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadStatistic, name)
	}
}

type argKind uint8

const (
	argLit argKind = iota
	argStat
	argAuto
)

// Arg is a step parameter: a literal, a Statistic resolved at call time
// against the data flowing through the step, or Auto, which leaves the
// choice to the step itself (range scaling derives old bounds from the
// array being scaled).
type Arg struct {
	kind argKind
	lit  float64
	stat Statistic
}

// Lit builds a literal argument.
func Lit(v float64) Arg { return Arg{kind: argLit, lit: v} }

// Stat builds an argument resolved from the current intermediate's
// statistics when the step runs.
func Stat(s Statistic) Arg { return Arg{kind: argStat, stat: s} }

// Auto builds an argument the step derives from its own input.
func Auto() Arg { return Arg{kind: argAuto} }

// IsAuto reports whether the argument is Auto. Resolve returns 0 for Auto
// arguments; steps must check IsAuto first.
func (a Arg) IsAuto() bool { return a.kind == argAuto }

// Resolve produces the argument's value for this step invocation.
func (a Arg) Resolve(st *Stats) float64 {
	switch a.kind {
	case argLit:
		return a.lit
	case argStat:
		return st.Value(a.stat)
	default:
		return 0
	}
}
