// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package plot rasterizes assembled primitives as wireframes for debug
// output. It is deliberately minimal: integer line plotting with no
// anti-aliasing, just enough to see what the geometry stage produced.
package plot

import (
	"image/color"

	"github.com/gogpu/softge"
	"github.com/gogpu/softge/display"
)

// maxCoord bounds accepted drawing coordinates. Transformed vertices are
// already masked to 10 bits, but through mode passes raw floats from the
// vertex buffer; endpoints outside this range (or NaN) drop the edge.
const maxCoord = 4096

// Wireframe draws primitive outlines into a framebuffer. It implements
// softge.PrimitiveSink.
type Wireframe struct {
	fb *display.Framebuffer
}

var _ softge.PrimitiveSink = (*Wireframe)(nil)

// NewWireframe creates a wireframe sink targeting fb.
func NewWireframe(fb *display.Framebuffer) *Wireframe {
	return &Wireframe{fb: fb}
}

// ProcessTriangle outlines a triangle. Flat color from the last vertex,
// matching the hardware's flat-shading provoking vertex.
func (w *Wireframe) ProcessTriangle(v [3]softge.VertexData) {
	c := v[2].Color0.Color()
	w.line(v[0].DrawPos, v[1].DrawPos, c)
	w.line(v[1].DrawPos, v[2].DrawPos, c)
	w.line(v[2].DrawPos, v[0].DrawPos, c)
}

// ProcessQuad outlines the axis-aligned rectangle spanned by two opposite
// corners. Flat color from the second vertex, as the hardware defines for
// rectangle primitives.
func (w *Wireframe) ProcessQuad(v [2]softge.VertexData) {
	c := v[1].Color0.Color()
	a, b := v[0].DrawPos, v[1].DrawPos
	ba := softge.DrawingCoords{X: b.X, Y: a.Y}
	ab := softge.DrawingCoords{X: a.X, Y: b.Y}
	w.line(a, ba, c)
	w.line(ba, b, c)
	w.line(b, ab, c)
	w.line(ab, a, c)
}

// line plots an integer Bresenham segment. Out-of-bounds pixels are
// silently dropped by the image bounds check.
func (w *Wireframe) line(a, b softge.DrawingCoords, c color.RGBA) {
	if !inRange(a.X) || !inRange(a.Y) || !inRange(b.X) || !inRange(b.Y) {
		return
	}
	img := w.fb.Image()
	x0, y0 := int(a.X), int(a.Y)
	x1, y1 := int(b.X), int(b.Y)

	dx := max(x1-x0, x0-x1)
	dy := -max(y1-y0, y0-y1)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		img.SetRGBA(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// inRange rejects coordinates outside the accepted range. NaN fails both
// comparisons and is rejected too.
func inRange(f float32) bool {
	return f >= -maxCoord && f <= maxCoord
}
