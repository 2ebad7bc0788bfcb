package imageio

import (
	"fmt"
	"math"
)

// Quantizer selects how a [0,1] channel value becomes an 8-bit byte
type Quantizer int

const (
	// Truncate drops the fractional part of value*255, matching the classic PPM writers
	Truncate Quantizer = iota
	// Round rounds value*255 to the nearest integer
	Round
)

// ParseQuantizer converts a config name into a Quantizer
func ParseQuantizer(name string) (Quantizer, error) {
	switch name {
	case "", "truncate":
		return Truncate, nil
	case "round":
		return Round, nil
	default:
		return Truncate, fmt.Errorf("unknown quantizer %q (want truncate or round)", name)
	}
}

func (q Quantizer) String() string {
	if q == Round {
		return "round"
	}
	return "truncate"
}

// ChannelToByte clamps a color channel to [0, 1] and scales it to [0, 255].
// NaN maps to 0.
func ChannelToByte(value float64, q Quantizer) uint8 {
	if math.IsNaN(value) {
		return 0
	}
	scaled := max(0, min(1, value)) * 255
	if q == Round {
		return uint8(math.Round(scaled))
	}
	return uint8(scaled)
}
