package softge

// PrimitiveType identifies the primitive kind of a draw call, numbered the
// way the hardware command encodes it.
type PrimitiveType uint32

const (
	// PrimPoints draws isolated points, one vertex each.
	PrimPoints PrimitiveType = 0

	// PrimLines draws isolated line segments, two vertices each.
	PrimLines PrimitiveType = 1

	// PrimLineStrip is recognized but not yet assembled.
	PrimLineStrip PrimitiveType = 2

	// PrimTriangles draws isolated triangles, three vertices each.
	PrimTriangles PrimitiveType = 3

	// PrimTriangleStrip is recognized but not yet assembled.
	PrimTriangleStrip PrimitiveType = 4

	// PrimTriangleFan is recognized but not yet assembled.
	PrimTriangleFan PrimitiveType = 5

	// PrimRectangles draws axis-aligned sprites from two corner vertices.
	PrimRectangles PrimitiveType = 6
)

// VerticesPerPrimitive returns how many vertices form one primitive of the
// given type, or 0 for types the pipeline does not assemble (strips, fans,
// unknown values). Draw calls with such types are skipped and counted in
// Stats.UnsupportedDraws.
func (p PrimitiveType) VerticesPerPrimitive() int {
	switch p {
	case PrimPoints:
		return 1
	case PrimLines:
		return 2
	case PrimTriangles:
		return 3
	case PrimRectangles:
		return 2
	default:
		return 0
	}
}

// String returns the primitive type name.
func (p PrimitiveType) String() string {
	switch p {
	case PrimPoints:
		return "Points"
	case PrimLines:
		return "Lines"
	case PrimLineStrip:
		return "LineStrip"
	case PrimTriangles:
		return "Triangles"
	case PrimTriangleStrip:
		return "TriangleStrip"
	case PrimTriangleFan:
		return "TriangleFan"
	case PrimRectangles:
		return "Rectangles"
	default:
		return "Unknown"
	}
}
