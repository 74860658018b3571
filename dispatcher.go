package softge

// PrimitiveSink consumes assembled primitives. The downstream stage
// (typically the clipper in front of a rasterizer) implements it.
type PrimitiveSink interface {
	// ProcessTriangle consumes one triangle.
	ProcessTriangle(tri [3]VertexData)

	// ProcessQuad consumes one axis-aligned sprite, given by its two
	// corner vertices.
	ProcessQuad(quad [2]VertexData)
}

// Lighting computes per-vertex lighting. ApplyLighting runs once per
// vertex after the transform chain, with world position and world normal
// already filled in, and may rewrite the vertex colors in place.
type Lighting interface {
	ApplyLighting(v *VertexData)
}

// dispatch routes one completed vertex group downstream. Triangles and
// rectangles have consumers; point and line groups are assembled for
// their side effects (lighting, counters) but have nowhere to go yet, so
// they are dropped and counted.
func (p *Pipeline) dispatch(prim PrimitiveType, group *[3]VertexData) {
	if p.sink == nil {
		p.droppedGroups.Add(1)
		return
	}
	switch prim {
	case PrimTriangles:
		p.triangles.Add(1)
		p.sink.ProcessTriangle(*group)
	case PrimRectangles:
		p.quads.Add(1)
		p.sink.ProcessQuad([2]VertexData{group[0], group[1]})
	default:
		p.droppedGroups.Add(1)
	}
}
