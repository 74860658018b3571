package softge

import "errors"

// Sentinel errors returned by the geometry pipeline. Call sites wrap them
// with fmt.Errorf and %w, so test with errors.Is.
var (
	// ErrNilState is returned by Pipeline.Submit when the draw call has no
	// register state snapshot.
	ErrNilState = errors.New("softge: nil register state")

	// ErrConflictingIndices is returned when a draw call carries both an
	// 8-bit and a 16-bit index buffer.
	ErrConflictingIndices = errors.New("softge: draw call has both 8-bit and 16-bit indices")

	// ErrShortIndexBuffer is returned when the index buffer holds fewer
	// entries than the draw call's vertex count.
	ErrShortIndexBuffer = errors.New("softge: index buffer shorter than vertex count")
)
