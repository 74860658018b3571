package vertex

import "honnef.co/go/safeish"

// V is one vertex in builder form. Fill only the fields the target format
// carries; the rest are ignored.
type V struct {
	Pos    [3]float32
	UV     [2]float32
	Normal [3]float32
	Color0 [4]float32
	Color1 [3]float32
}

// Builder appends canonical vertex records to a buffer. It is the
// in-process producer counterpart of Reader, used by tests, tools and
// sources that already hold unpacked attributes.
type Builder struct {
	fmt Format
	buf []byte
}

// NewBuilder creates a builder emitting records with the given format.
func NewBuilder(f Format) *Builder {
	return &Builder{fmt: f}
}

// Format returns the record format the builder emits.
func (b *Builder) Format() Format { return b.fmt }

// Add appends one vertex record.
func (b *Builder) Add(v V) {
	start := len(b.buf)
	b.buf = append(b.buf, make([]byte, b.fmt.stride)...)
	rec := func(off, n int) []float32 {
		return safeish.SliceCast[[]float32](b.buf[start+off : start+off+n*4])
	}
	copy(rec(0, 3), v.Pos[:])
	if b.fmt.HasUV() {
		copy(rec(b.fmt.uvOff, 2), v.UV[:])
	}
	if b.fmt.HasNormal() {
		copy(rec(b.fmt.nrmOff, 3), v.Normal[:])
	}
	if b.fmt.HasColor0() {
		copy(rec(b.fmt.col0Off, 4), v.Color0[:])
	}
	if b.fmt.HasColor1() {
		copy(rec(b.fmt.col1Off, 3), v.Color1[:])
	}
}

// Count returns the number of records added.
func (b *Builder) Count() int {
	if b.fmt.stride == 0 {
		return 0
	}
	return len(b.buf) / b.fmt.stride
}

// Bytes returns the built buffer. The slice aliases the builder's storage
// and stays valid until the next Add or Reset.
func (b *Builder) Bytes() []byte { return b.buf }

// Reset discards all records, keeping the allocated storage.
func (b *Builder) Reset() { b.buf = b.buf[:0] }
