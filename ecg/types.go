package ecg

import (
	"errors"
	"fmt"
)

var (
	// ErrKind is returned when a step receives something other than a
	// sample vector.
	ErrKind = errors.New("ecg: step wants a vector")

	// ErrBadBand is returned for band-pass corners that are not
	// 0 < low < high < rate/2.
	ErrBadBand = errors.New("ecg: invalid filter band")

	// ErrBadWindow is returned when the analysis window is shorter than
	// one sample.
	ErrBadWindow = errors.New("ecg: window shorter than one sample")

	// ErrBadAverage is returned for an Average value outside the defined
	// set or an unrecognised average name.
	ErrBadAverage = errors.New("ecg: unknown average")
)

// Average selects how per-window heart rates are aggregated.
type Average uint8

const (
	AverageMean Average = iota
	AverageMedian
)

// String returns the configuration name of the average.
func (a Average) String() string {
	switch a {
	case AverageMean:
		return "mean"
	case AverageMedian:
		return "median"
	default:
		return fmt.Sprintf("average(%d)", uint8(a))
	}
}

// ParseAverage maps a configuration string to an Average.
func ParseAverage(s string) (Average, error) {
	switch s {
	case "mean":
		return AverageMean, nil
	case "median":
		return AverageMedian, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadAverage, s)
	}
}
