package mapfunc

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrKind is returned when a step receives a value shape it cannot
	// operate on.
	ErrKind = errors.New("mapfunc: unexpected value kind")
	// ErrSize is returned when an output span cannot hold the anchors.
	ErrSize = errors.New("mapfunc: output size too small")
	// ErrIndices is returned for anchor index sets that do not match the
	// values, fall outside the output span, or (for reflect) are not
	// strictly increasing.
	ErrIndices = errors.New("mapfunc: anchor indices invalid")
	// ErrEdge is returned for an unrecognised edge behaviour.
	ErrEdge = errors.New("mapfunc: unknown edge behaviour")
)

// Edge selects how Interpolate1D treats positions outside the anchor
// span.
type Edge uint8

const (
	// EdgeReflect extrapolates the boundary regions by continuing the
	// slope of the nearest interior segment.
	EdgeReflect Edge = iota
	// EdgeWrap treats the index sequence as circular and interpolates
	// across the array boundary.
	EdgeWrap
)

// String returns the configuration name of the edge policy.
func (e Edge) String() string {
	switch e {
	case EdgeReflect:
		return "reflect"
	case EdgeWrap:
		return "wrap"
	default:
		return "edge(" + strconv.Itoa(int(e)) + ")"
	}
}

// ParseEdge maps a configuration string to an Edge.
func ParseEdge(s string) (Edge, error) {
	switch s {
	case "reflect":
		return EdgeReflect, nil
	case "wrap":
		return EdgeWrap, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrEdge, s)
	}
}
