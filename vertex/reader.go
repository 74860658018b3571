package vertex

import "honnef.co/go/safeish"

// Reader is a cursor over canonical vertex records. Goto positions the
// cursor on a vertex by its absolute index; the typed Read methods then
// return the current vertex's attributes. Reads of attributes the format
// lacks, and reads past the end of the buffer, return zeros.
//
// A reader created with a non-zero lower bound rebases indices: when the
// decoded buffer holds the window [lo, hi] of a larger vertex buffer,
// Goto(lo) addresses its first record. Indexed draws keep addressing
// vertices by their original indices that way.
//
// The canonical layout keeps every field 4-byte aligned, which is what
// makes the byte-to-float reinterpretation below safe.
type Reader struct {
	buf   []byte
	fmt   Format
	lower int
	cur   []byte
}

// NewReader creates a reader over a decoded buffer with the given format.
// lowerBound is the absolute index of the buffer's first record.
func NewReader(buf []byte, f Format, lowerBound int) Reader {
	return Reader{buf: buf, fmt: f, lower: lowerBound}
}

// Format returns the record format the reader walks.
func (r *Reader) Format() Format { return r.fmt }

// Goto positions the cursor on the vertex with absolute index i.
// Out-of-window indices leave the cursor invalid, making every subsequent
// read return zeros.
func (r *Reader) Goto(i int) {
	start := (i - r.lower) * r.fmt.stride
	if start < 0 || start+r.fmt.stride > len(r.buf) {
		r.cur = nil
		return
	}
	r.cur = r.buf[start : start+r.fmt.stride]
}

// floats reinterprets n float32 values at a byte offset of the current
// record.
func (r *Reader) floats(off, n int) []float32 {
	return safeish.SliceCast[[]float32](r.cur[off : off+n*4])
}

// ReadPos returns the position of the current vertex.
func (r *Reader) ReadPos() (x, y, z float32) {
	if r.cur == nil {
		return 0, 0, 0
	}
	p := r.floats(0, 3)
	return p[0], p[1], p[2]
}

// ReadUV returns the texture coordinates of the current vertex, or zeros
// when the format lacks them.
func (r *Reader) ReadUV() (u, v float32) {
	if r.cur == nil || !r.fmt.HasUV() {
		return 0, 0
	}
	p := r.floats(r.fmt.uvOff, 2)
	return p[0], p[1]
}

// ReadNormal returns the normal of the current vertex, or zeros when the
// format lacks one.
func (r *Reader) ReadNormal() (x, y, z float32) {
	if r.cur == nil || !r.fmt.HasNormal() {
		return 0, 0, 0
	}
	p := r.floats(r.fmt.nrmOff, 3)
	return p[0], p[1], p[2]
}

// ReadColor0 returns the primary color of the current vertex, or zeros
// when the format lacks one. Channels are in [0, 1].
func (r *Reader) ReadColor0() (cr, cg, cb, ca float32) {
	if r.cur == nil || !r.fmt.HasColor0() {
		return 0, 0, 0, 0
	}
	p := r.floats(r.fmt.col0Off, 4)
	return p[0], p[1], p[2], p[3]
}

// ReadColor1 returns the secondary color of the current vertex, or zeros
// when the format lacks one. Channels are in [0, 1].
func (r *Reader) ReadColor1() (cr, cg, cb float32) {
	if r.cur == nil || !r.fmt.HasColor1() {
		return 0, 0, 0
	}
	p := r.floats(r.fmt.col1Off, 3)
	return p[0], p[1], p[2]
}
