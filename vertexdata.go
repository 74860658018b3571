package softge

// VertexData is one fully assembled vertex: attributes read from the
// decoded vertex buffer plus the derived values of every transform stage.
// Absent attributes keep their zero values; the per-stage position fields
// are filled only when the draw is not in through mode.
type VertexData struct {
	// WorldPos, ViewPos and ClipPos hold the intermediate positions of
	// the transform chain. Downstream clipping works on ClipPos.
	WorldPos WorldCoords
	ViewPos  ViewCoords
	ClipPos  ClipCoords

	// DrawPos is the final drawing-space position. In through mode it
	// is the raw vertex position, copied unchanged.
	DrawPos DrawingCoords

	// TexCoords carries the texture coordinates when the format has
	// them and texturing applies to this draw.
	TexCoords Vec2

	// Normal is the model-space normal; WorldNormal its world-space
	// image, renormalized after the linear transform.
	Normal      Vec3
	WorldNormal Vec3

	// Color0 is the primary color (RGBA channels in [0, 255]); Color1
	// the secondary (specular) color (RGB).
	Color0 Vec4i
	Color1 Vec3i
}
