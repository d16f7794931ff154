package core

import "math"

// channelScale maps [0, 1] onto [0, 255] with floor rounding
const channelScale = 255.999

// ToRGB8 converts a color to 8-bit channels via floor(channel * 255.999).
// Out-of-range channels saturate to 0 or 255 and NaN becomes 0.
func ToRGB8(c Color) (r, g, b uint8) {
	return channelToByte(c.X), channelToByte(c.Y), channelToByte(c.Z)
}

func channelToByte(v float64) uint8 {
	scaled := math.Floor(v * channelScale)
	switch {
	case math.IsNaN(scaled) || scaled <= 0:
		return 0
	case scaled >= 255:
		return 255
	}
	return uint8(scaled)
}
