package fixture

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFixtures is returned by New when the fixture id list is empty.
	ErrNoFixtures = errors.New("fixture: at least one fixture id required")

	// ErrChannelSet is returned for a ChannelSet value outside the defined
	// set or an unrecognised channel-set name.
	ErrChannelSet = errors.New("fixture: unknown channel set")

	// ErrShapeMismatch is returned by Apply when the channel arrays do not
	// match the set's channel count or the array's fixture count.
	ErrShapeMismatch = errors.New("fixture: shape mismatch")
)

// Indices of the base channels inside an Array's state.
const (
	chanIntensity = iota
	chanRed
	chanGreen
	chanBlue
	chanWhite
	numChannels
)

// ChannelSet names a group of base channels written together by one
// mapping. The single-channel sets address one base channel; RGB and RGBW
// address the colour channels as a block.
type ChannelSet uint8

const (
	Intensity ChannelSet = iota
	Red
	Green
	Blue
	White
	RGB
	RGBW
)

// Count reports how many channel arrays the set expects, 0 for an
// undefined set.
func (s ChannelSet) Count() int {
	switch s {
	case Intensity, Red, Green, Blue, White:
		return 1
	case RGB:
		return 3
	case RGBW:
		return 4
	default:
		return 0
	}
}

// channels lists the base-channel indices the set writes, in wire order.
func (s ChannelSet) channels() []int {
	switch s {
	case Intensity:
		return []int{chanIntensity}
	case Red:
		return []int{chanRed}
	case Green:
		return []int{chanGreen}
	case Blue:
		return []int{chanBlue}
	case White:
		return []int{chanWhite}
	case RGB:
		return []int{chanRed, chanGreen, chanBlue}
	case RGBW:
		return []int{chanRed, chanGreen, chanBlue, chanWhite}
	default:
		return nil
	}
}

// String returns the configuration name of the set.
func (s ChannelSet) String() string {
	switch s {
	case Intensity:
		return "intensity"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case White:
		return "white"
	case RGB:
		return "rgb"
	case RGBW:
		return "rgbw"
	default:
		return fmt.Sprintf("channelset(%d)", uint8(s))
	}
}

// ParseChannelSet maps a configuration string to a ChannelSet.
func ParseChannelSet(s string) (ChannelSet, error) {
	switch s {
	case "intensity":
		return Intensity, nil
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	case "blue":
		return Blue, nil
	case "white":
		return White, nil
	case "rgb":
		return RGB, nil
	case "rgbw":
		return RGBW, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrChannelSet, s)
	}
}
