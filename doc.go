// Package softge implements the geometry stage of a software renderer for a
// PSP-class fixed-function GPU.
//
// # Overview
//
// softge transforms vertices the way the hardware does: model space through
// world, view, clip and screen space down to drawing coordinates, preserving
// the fixed-point and register-encoding quirks of the original device
// (24-bit float viewport registers, 4 fractional bits in screen space,
// 10-bit wrapped drawing coordinates). On top of the transform chain it
// provides vertex assembly from decoded vertex buffers, primitive grouping,
// and dispatch to a downstream rasterization stage.
//
// # Quick Start
//
//	import "github.com/gogpu/softge"
//
//	// Describe the register state for a draw (normally produced by
//	// emulated register writes).
//	st := softge.NewState()
//	st.SetViewport(softge.V3(240, -136, 0), softge.V3(240, 136, 0))
//
//	// Feed draw calls to a pipeline; completed primitives arrive at
//	// the sink.
//	pipe := softge.NewPipeline(sink)
//	err := pipe.Submit(st, softge.DrawCall{
//	    Vertices:    buf,
//	    Prim:        softge.PrimTriangles,
//	    VertexCount: 36,
//	    VertexType:  vtype,
//	})
//
// # Architecture
//
// The module is organized into:
//   - Root package: coordinate spaces, register state, the five transform
//     stages, vertex assembly and primitive dispatch
//   - vertex: decoded-vertex formats, cursor reader, decoder interfaces,
//     scratch arena
//   - parallel: the worker pool used to fan out per-scanline and per-range
//     work
//   - cache: sharded lookup cache for vertex decoders
//   - display: framebuffer target with scaling presentation and PNG export
//
// # Coordinate Pipeline
//
// Vertices move through five spaces, each with its own Go type so stages
// cannot be skipped accidentally:
//
//	ModelCoords -> WorldCoords -> ViewCoords -> ClipCoords
//	            -> ScreenCoords -> DrawingCoords
//
// Through mode (2D draws with pretransformed vertices) bypasses the chain
// entirely and copies positions straight to drawing coordinates.
//
// # Concurrency
//
// A Pipeline owns a reusable scratch buffer and is not safe for concurrent
// use; create one Pipeline per goroutine when splitting geometry work.
// The parallel package provides the pool used to distribute index ranges
// across workers with exact join semantics.
package softge

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
