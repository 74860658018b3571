package softge

// The geometry pipeline moves a vertex through five coordinate spaces.
// Each space gets its own named type so that a later stage cannot be fed
// coordinates from the wrong earlier stage; converting between them
// requires going through the transform function for that boundary.

// ModelCoords is a position in model (object-local) space, as stored in
// the vertex buffer.
type ModelCoords Vec3

// WorldCoords is a position in world space, after the world matrix.
type WorldCoords Vec3

// ViewCoords is a position in view (camera) space, after the view matrix.
type ViewCoords Vec3

// ClipCoords is a position in homogeneous clip space. W carries the
// perspective divisor and must survive until ClipToScreen.
type ClipCoords Vec4

// ScreenCoords is a position in screen space after the perspective divide
// and viewport mapping. Values are fixed point with 4 fractional bits
// (multiplied by 16), the subpixel precision the hardware rasterizes at.
type ScreenCoords Vec3

// DrawingCoords is a 2D position in drawing (render target) space: screen
// coordinates with the drawing offset subtracted, reduced to whole pixels
// and wrapped to the 10-bit range the hardware addresses. Stored as floats
// because through-mode draws copy raw vertex positions here unmodified.
type DrawingCoords Vec2
