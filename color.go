package softge

import "image/color"

// clamp255 saturates an integer color channel into the 8-bit range.
// Assembled channels live in [0, 255], but lighting can push them out,
// and the hardware saturates on write-out.
func clamp255(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Color converts the primary color to an 8-bit RGBA color, saturating
// each channel.
func (v Vec4i) Color() color.RGBA {
	return color.RGBA{R: clamp255(v.X), G: clamp255(v.Y), B: clamp255(v.Z), A: clamp255(v.W)}
}

// Color converts the secondary color to an opaque 8-bit RGBA color,
// saturating each channel.
func (v Vec3i) Color() color.RGBA {
	return color.RGBA{R: clamp255(v.X), G: clamp255(v.Y), B: clamp255(v.Z), A: 255}
}
