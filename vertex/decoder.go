package vertex

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for decoding. Wrapped at call sites; test with errors.Is.
var (
	// ErrShortBuffer is returned when a buffer cannot hold the requested
	// decode window.
	ErrShortBuffer = errors.New("vertex: buffer too short for decode window")

	// ErrUnknownType is returned by a Source for vertex-type words it
	// cannot resolve.
	ErrUnknownType = errors.New("vertex: unknown vertex type word")
)

// Decoder expands raw vertex data into canonical records.
//
// Implementations handle one hardware vertex format each; the pipeline
// obtains them from a Source keyed by the draw call's vertex-type word and
// caches them, since decoding state is immutable once built.
type Decoder interface {
	// Format reports the canonical layout the decoder produces.
	Format() Format

	// Decode expands vertices [lowerBound, upperBound] of src into dst.
	// dst must hold (upperBound-lowerBound+1)*Format().Stride() bytes.
	Decode(dst, src []byte, lowerBound, upperBound int) error
}

// Source resolves hardware vertex-type words to decoders.
type Source interface {
	// DecoderFor returns the decoder for a vertex-type word.
	DecoderFor(vertexType uint32) (Decoder, error)
}

// CanonicalDecoder reads buffers that are already in canonical layout, so
// decoding is a bounds-checked window copy. It serves in-process producers
// (Builder output) and tests; emulator frontends plug in real hardware
// decoders through the Decoder interface instead.
type CanonicalDecoder struct {
	fmt Format
}

// NewCanonicalDecoder creates a pass-through decoder for records carrying
// the given attributes.
func NewCanonicalDecoder(attrs Attributes) CanonicalDecoder {
	return CanonicalDecoder{fmt: NewFormat(attrs)}
}

// Format reports the canonical layout the decoder produces.
func (d CanonicalDecoder) Format() Format { return d.fmt }

// Decode copies vertices [lowerBound, upperBound] of src into dst.
func (d CanonicalDecoder) Decode(dst, src []byte, lowerBound, upperBound int) error {
	stride := d.fmt.stride
	lo := lowerBound * stride
	hi := (upperBound + 1) * stride
	if lowerBound < 0 || upperBound < lowerBound || hi > len(src) {
		return fmt.Errorf("%w: vertices [%d, %d] of a %d-byte buffer", ErrShortBuffer, lowerBound, upperBound, len(src))
	}
	if len(dst) < hi-lo {
		return fmt.Errorf("%w: %d-byte window into a %d-byte destination", ErrShortBuffer, hi-lo, len(dst))
	}
	copy(dst, src[lo:hi])
	return nil
}

// CanonicalSource resolves vertex-type words whose value is the attribute
// mask itself. It is the Source used when no hardware decoder set is
// plugged in.
type CanonicalSource struct{}

// DecoderFor returns the canonical decoder for an attribute-mask word.
func (CanonicalSource) DecoderFor(vertexType uint32) (Decoder, error) {
	if vertexType&^uint32(attrAll) != 0 {
		return nil, fmt.Errorf("%w: %#x", ErrUnknownType, vertexType)
	}
	return NewCanonicalDecoder(Attributes(vertexType)), nil
}

// IndexBounds scans the first n entries of an index buffer and returns the
// lowest and highest vertex index they reference. Decoders expand exactly
// this window, which bounds scratch usage for indexed draws that address a
// small span of a large vertex buffer.
//
// n must be at least 1; it is clamped to len(indices).
func IndexBounds[T constraints.Unsigned](indices []T, n int) (lowerBound, upperBound int) {
	if n > len(indices) {
		n = len(indices)
	}
	if n < 1 {
		return 0, 0
	}
	lowerBound = int(indices[0])
	upperBound = lowerBound
	for _, idx := range indices[1:n] {
		if int(idx) < lowerBound {
			lowerBound = int(idx)
		}
		if int(idx) > upperBound {
			upperBound = int(idx)
		}
	}
	return lowerBound, upperBound
}
