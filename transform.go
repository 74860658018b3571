package softge

// The five stages of the fixed-function transform chain. Every function is
// pure: the result depends only on the register snapshot and the input
// coordinates, so stages can be called from any goroutine against a shared
// read-only State.

// ModelToWorld transforms model-space coordinates into world space: the
// 3x3 linear part of the world matrix followed by its translation.
func ModelToWorld(s *State, c ModelCoords) WorldCoords {
	return WorldCoords(s.WorldLinear().MulVec(Vec3(c)).Add(s.WorldTranslation()))
}

// WorldToView transforms world-space coordinates into view space: the 3x3
// linear part of the view matrix followed by its translation.
func WorldToView(s *State, c WorldCoords) ViewCoords {
	return ViewCoords(s.ViewLinear().MulVec(Vec3(c)).Add(s.ViewTranslation()))
}

// ViewToClip applies the 4x4 projection matrix to (x, y, z, 1), producing
// homogeneous clip coordinates.
func ViewToClip(s *State, c ViewCoords) ClipCoords {
	return ClipCoords(s.Projection().MulVec(Vec4{X: c.X, Y: c.Y, Z: c.Z, W: 1}))
}

// ClipToScreen performs the perspective divide and the viewport mapping.
// Every axis maps as (value*scale/w + center) * 16, where scale and center
// come from the 24-bit float viewport registers and the final multiply
// moves the result into 4-bit fixed point screen space.
//
// Degenerate viewports (scale of zero, inverted ranges) and w == 0 are
// passed through unguarded; the hardware does not validate them either,
// and emulated titles rely on the raw arithmetic.
func ClipToScreen(s *State, c ClipCoords) ScreenCoords {
	vpx1 := Float24(s.ViewportX1)
	vpx2 := Float24(s.ViewportX2)
	vpy1 := Float24(s.ViewportY1)
	vpy2 := Float24(s.ViewportY2)
	vpz1 := Float24(s.ViewportZ1)
	vpz2 := Float24(s.ViewportZ2)
	return ScreenCoords{
		X: (c.X*vpx1/c.W + vpx2) * 16,
		Y: (c.Y*vpy1/c.W + vpy2) * 16,
		Z: (c.Z*vpz1/c.W + vpz2) * 16,
	}
}

// ScreenToDrawing converts fixed-point screen coordinates into drawing
// coordinates: subtract the drawing offset registers, drop the 4 fractional
// bits, and wrap into the 10-bit range the hardware addresses.
//
// The subtraction is unsigned 32-bit on purpose: an offset larger than the
// coordinate wraps around instead of clamping, exactly like the register
// arithmetic in the device.
func ScreenToDrawing(s *State, c ScreenCoords) DrawingCoords {
	x := ((uint32(c.X) - (s.OffsetX & 0xffff)) / 16) & 0x3ff
	y := ((uint32(c.Y) - (s.OffsetY & 0xffff)) / 16) & 0x3ff
	return DrawingCoords{X: float32(x), Y: float32(y)}
}
