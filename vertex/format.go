// Package vertex describes decoded vertex buffers: the canonical record
// layout the geometry pipeline consumes, a cursor reader over decoded
// records, decoder interfaces for expanding raw hardware vertex formats,
// and the scratch arena decoders target.
//
// The hardware reads vertices in dozens of packed formats (8/16-bit
// coordinates, packed colors, morph weights). Decoding normalizes all of
// them into one canonical record per vertex - position always first,
// optional attributes behind it, every field a float32 - so the transform
// stage reads exactly one layout.
package vertex

// Attributes is a bitmask of the optional per-vertex attributes a format
// carries. Position is always present and has no bit.
type Attributes uint32

const (
	// AttrUV marks 2-component texture coordinates.
	AttrUV Attributes = 1 << iota

	// AttrNormal marks a 3-component normal.
	AttrNormal

	// AttrColor0 marks the 4-component primary color.
	AttrColor0

	// AttrColor1 marks the 3-component secondary (specular) color.
	AttrColor1
)

// attrAll is the mask of every defined attribute bit.
const attrAll = AttrUV | AttrNormal | AttrColor0 | AttrColor1

// Field sizes in the canonical record, in bytes. Everything is float32,
// which keeps every offset 4-byte aligned.
const (
	posSize    = 3 * 4
	uvSize     = 2 * 4
	normalSize = 3 * 4
	color0Size = 4 * 4
	color1Size = 3 * 4
)

// MaxStride is the stride of a canonical record carrying every attribute.
const MaxStride = posSize + uvSize + normalSize + color0Size + color1Size

// Format describes the canonical layout of one decoded vertex record:
// position first, then UV, normal, color0 and color1 for the attributes
// present, in that order, with no padding.
type Format struct {
	attrs                           Attributes
	uvOff, nrmOff, col0Off, col1Off int
	stride                          int
}

// NewFormat builds the canonical record layout for a set of attributes.
func NewFormat(attrs Attributes) Format {
	f := Format{
		attrs:   attrs,
		uvOff:   -1,
		nrmOff:  -1,
		col0Off: -1,
		col1Off: -1,
	}
	off := posSize
	if attrs&AttrUV != 0 {
		f.uvOff = off
		off += uvSize
	}
	if attrs&AttrNormal != 0 {
		f.nrmOff = off
		off += normalSize
	}
	if attrs&AttrColor0 != 0 {
		f.col0Off = off
		off += color0Size
	}
	if attrs&AttrColor1 != 0 {
		f.col1Off = off
		off += color1Size
	}
	f.stride = off
	return f
}

// Attributes returns the attribute mask of the format.
func (f Format) Attributes() Attributes { return f.attrs }

// Stride returns the size of one record in bytes.
func (f Format) Stride() int { return f.stride }

// HasUV reports whether records carry texture coordinates.
func (f Format) HasUV() bool { return f.attrs&AttrUV != 0 }

// HasNormal reports whether records carry a normal.
func (f Format) HasNormal() bool { return f.attrs&AttrNormal != 0 }

// HasColor0 reports whether records carry a primary color.
func (f Format) HasColor0() bool { return f.attrs&AttrColor0 != 0 }

// HasColor1 reports whether records carry a secondary color.
func (f Format) HasColor1() bool { return f.attrs&AttrColor1 != 0 }

// UVOffset returns the byte offset of the texture coordinates, or -1 when
// the format lacks them.
func (f Format) UVOffset() int { return f.uvOff }

// NormalOffset returns the byte offset of the normal, or -1 when the
// format lacks one.
func (f Format) NormalOffset() int { return f.nrmOff }

// Color0Offset returns the byte offset of the primary color, or -1 when
// the format lacks one.
func (f Format) Color0Offset() int { return f.col0Off }

// Color1Offset returns the byte offset of the secondary color, or -1 when
// the format lacks one.
func (f Format) Color1Offset() int { return f.col1Off }
