package softge

import "math"

// State is a snapshot of the geometry-related hardware registers for one
// draw call. The producer (emulated register writes) fills it before
// submission; the pipeline and the transform functions treat it as
// read-only for the duration of the draw. Fields mirror the register file,
// including its encodings, so emulator frontends can copy command payloads
// in directly; the Set* helpers cover the common encodings for tests and
// tools.
type State struct {
	// WorldMatrix and ViewMatrix are 4x3 matrices in register order:
	// elements 0-8 hold the 3x3 linear part (see Mat3), elements 9-11
	// the translation.
	WorldMatrix [12]float32
	ViewMatrix  [12]float32

	// ProjMatrix is the 4x4 projection matrix (see Mat4).
	ProjMatrix [16]float32

	// Viewport registers, 24-bit float encoded (see Float24): X1/Y1/Z1
	// hold the per-axis scale, X2/Y2/Z2 the center.
	ViewportX1, ViewportY1, ViewportZ1 uint32
	ViewportX2, ViewportY2, ViewportZ2 uint32

	// OffsetX and OffsetY hold the drawing-region offset in their low
	// 16 bits, in screen fixed point (sixteenths of a pixel).
	OffsetX, OffsetY uint32

	// MaterialDiffuse packs the fallback vertex color as 0x00BBGGRR.
	// MaterialAlpha holds the fallback alpha in its low byte.
	MaterialDiffuse uint32
	MaterialAlpha   uint32

	// ThroughMode marks pretransformed 2D draws that bypass the
	// transform chain entirely.
	ThroughMode bool

	// ClearMode marks framebuffer-clear draws, which skip texture
	// coordinate reads.
	ClearMode bool

	// TextureMapEnable gates texture coordinate reads.
	TextureMapEnable bool
}

// NewState returns a state with identity matrices and every other register
// zero.
func NewState() *State {
	s := &State{}
	s.SetWorldMatrix(Mat3Identity(), Vec3{})
	s.SetViewMatrix(Mat3Identity(), Vec3{})
	s.SetProjMatrix(Mat4Identity())
	return s
}

// WorldLinear returns the 3x3 linear part of the world matrix.
func (s *State) WorldLinear() Mat3 { return Mat3(s.WorldMatrix[0:9]) }

// WorldTranslation returns the translation part of the world matrix.
func (s *State) WorldTranslation() Vec3 {
	return Vec3{X: s.WorldMatrix[9], Y: s.WorldMatrix[10], Z: s.WorldMatrix[11]}
}

// ViewLinear returns the 3x3 linear part of the view matrix.
func (s *State) ViewLinear() Mat3 { return Mat3(s.ViewMatrix[0:9]) }

// ViewTranslation returns the translation part of the view matrix.
func (s *State) ViewTranslation() Vec3 {
	return Vec3{X: s.ViewMatrix[9], Y: s.ViewMatrix[10], Z: s.ViewMatrix[11]}
}

// Projection returns the projection matrix.
func (s *State) Projection() Mat4 { return Mat4(s.ProjMatrix[:]) }

// MaterialColor returns the fallback vertex color assembled from the
// material registers: diffuse RGB bytes plus the material alpha byte.
func (s *State) MaterialColor() Vec4i {
	return Vec4i{
		X: int32(s.MaterialDiffuse & 0xff),
		Y: int32((s.MaterialDiffuse >> 8) & 0xff),
		Z: int32((s.MaterialDiffuse >> 16) & 0xff),
		W: int32(s.MaterialAlpha & 0xff),
	}
}

// SetWorldMatrix writes the world matrix registers.
func (s *State) SetWorldMatrix(linear Mat3, translation Vec3) {
	copy(s.WorldMatrix[0:9], linear[:])
	s.WorldMatrix[9], s.WorldMatrix[10], s.WorldMatrix[11] = translation.X, translation.Y, translation.Z
}

// SetViewMatrix writes the view matrix registers.
func (s *State) SetViewMatrix(linear Mat3, translation Vec3) {
	copy(s.ViewMatrix[0:9], linear[:])
	s.ViewMatrix[9], s.ViewMatrix[10], s.ViewMatrix[11] = translation.X, translation.Y, translation.Z
}

// SetProjMatrix writes the projection matrix registers.
func (s *State) SetProjMatrix(m Mat4) {
	copy(s.ProjMatrix[:], m[:])
}

// SetViewport writes the six viewport registers, truncating each value to
// the 24-bit register float.
func (s *State) SetViewport(scale, center Vec3) {
	s.ViewportX1 = Float24Bits(scale.X)
	s.ViewportY1 = Float24Bits(scale.Y)
	s.ViewportZ1 = Float24Bits(scale.Z)
	s.ViewportX2 = Float24Bits(center.X)
	s.ViewportY2 = Float24Bits(center.Y)
	s.ViewportZ2 = Float24Bits(center.Z)
}

// SetDrawingOffset writes the drawing-region offset registers from whole
// pixels. The registers store sixteenths of a pixel.
func (s *State) SetDrawingOffset(x, y uint16) {
	s.OffsetX = uint32(x) << 4
	s.OffsetY = uint32(y) << 4
}

// SetMaterial writes the material diffuse and alpha registers from 8-bit
// channels.
func (s *State) SetMaterial(r, g, b, a uint8) {
	s.MaterialDiffuse = uint32(r) | uint32(g)<<8 | uint32(b)<<16
	s.MaterialAlpha = uint32(a)
}

// Float24 decodes a 24-bit register float. The hardware stores the top 24
// bits of an IEEE 754 single in a command payload; reconstruction shifts
// them back up, leaving the low 8 mantissa bits zero.
func Float24(bits uint32) float32 {
	return math.Float32frombits(bits << 8)
}

// Float24Bits encodes a float32 into 24-bit register form by truncating
// the low 8 mantissa bits.
func Float24Bits(f float32) uint32 {
	return math.Float32bits(f) >> 8
}
