// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package display provides the render target the software pipeline draws
// into: an RGBA framebuffer at the device's native resolution, with
// parallel clears, scaled presentation into arbitrary images, and PNG
// export for offline tools.
package display

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/softge/parallel"
)

// Native framebuffer dimensions of the emulated device.
const (
	DefaultWidth  = 480
	DefaultHeight = 272
)

// Filter selects the interpolation Present uses when scaling.
type Filter int

const (
	// FilterNearest is nearest-neighbor: fastest, keeps hard pixel edges.
	FilterNearest Filter = iota

	// FilterBilinear is approximate bilinear interpolation.
	FilterBilinear

	// FilterCatmullRom is Catmull-Rom interpolation: slowest, sharpest.
	FilterCatmullRom
)

// interpolator returns the scaling interpolator for the filter.
func (f Filter) interpolator() draw.Interpolator {
	switch f {
	case FilterBilinear:
		return draw.ApproxBiLinear
	case FilterCatmullRom:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}

// Framebuffer is a CPU render target backed by an *image.RGBA.
//
// Thread safety: writes to disjoint pixels may run concurrently (the
// backing store is a plain byte slice), but Clear and Present must not
// overlap writes to the same region.
type Framebuffer struct {
	width  int
	height int
	img    *image.RGBA
	pool   *parallel.Pool
}

// Option configures a Framebuffer.
type Option func(*Framebuffer)

// WithPool attaches a worker pool that fans Clear out across scanlines.
// Without a pool, clears run on the calling goroutine.
func WithPool(p *parallel.Pool) Option {
	return func(f *Framebuffer) {
		f.pool = p
	}
}

// New creates a framebuffer. Non-positive dimensions fall back to the
// device's native 480x272.
func New(width, height int, opts ...Option) *Framebuffer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	f := &Framebuffer{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Width returns the framebuffer width in pixels.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the framebuffer height in pixels.
func (f *Framebuffer) Height() int { return f.height }

// Bounds returns the framebuffer rectangle.
func (f *Framebuffer) Bounds() image.Rectangle { return f.img.Bounds() }

// Image returns the underlying image.
// This is a direct reference, not a copy.
func (f *Framebuffer) Image() *image.RGBA { return f.img }

// Clear fills the framebuffer with a color. With a pool attached, the
// fill fans out one chunk of scanlines per worker.
func (f *Framebuffer) Clear(c color.Color) {
	r, g, b, a := c.RGBA()
	px := [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}

	// Fill the first row, then stamp it over the remaining rows. The
	// template row is complete before any worker reads it.
	rowLen := f.width * 4
	row0 := f.img.Pix[:rowLen]
	for x := 0; x < rowLen; x += 4 {
		copy(row0[x:x+4], px[:])
	}
	stride := f.img.Stride
	fill := func(start, end int) {
		for y := start; y < end; y++ {
			copy(f.img.Pix[y*stride:y*stride+rowLen], row0)
		}
	}
	if f.pool != nil {
		f.pool.ParallelFor(fill, 1, f.height)
		return
	}
	fill(1, f.height)
}

// Present scales the framebuffer into dst with the given filter,
// stretching it to cover dst's bounds.
func (f *Framebuffer) Present(dst draw.Image, filter Filter) {
	filter.interpolator().Scale(dst, dst.Bounds(), f.img, f.img.Bounds(), draw.Src, nil)
}

// SavePNG saves the framebuffer to a PNG file.
func (f *Framebuffer) SavePNG(path string) error {
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()
	return png.Encode(file, f.img)
}
