package softge

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/softge/cache"
	"github.com/gogpu/softge/vertex"
)

// DrawCall is one submitted batch of primitives, mirroring the hardware
// draw command: a raw vertex buffer, optional indices, the primitive type
// and the vertex-type word naming the buffer's format.
type DrawCall struct {
	// Vertices is the raw vertex data, in the format named by VertexType.
	Vertices []byte

	// Indices8 and Indices16 hold vertex indices when the draw is
	// indexed. At most one of them may be set.
	Indices8  []uint8
	Indices16 []uint16

	// Prim selects how vertices group into primitives.
	Prim PrimitiveType

	// VertexCount is the number of vertices the draw consumes (index
	// entries, when indexed).
	VertexCount int

	// VertexType is the hardware vertex-type word, resolved to a
	// decoder through the pipeline's decoder source.
	VertexType uint32
}

// Stats is a snapshot of pipeline counters.
type Stats struct {
	DrawCalls         uint64 // draw calls assembled
	Vertices          uint64 // vertices assembled
	Triangles         uint64 // triangles dispatched to the sink
	Quads             uint64 // quads dispatched to the sink
	DroppedGroups     uint64 // completed groups with no consumer
	UnsupportedDraws  uint64 // draw calls skipped for their primitive type
	DegenerateNormals uint64 // zero-length world normals clamped
}

// Pipeline is the geometry stage: it decodes draw-call vertices, assembles
// them through the transform chain, groups them into primitives and hands
// completed primitives to the sink.
//
// A Pipeline owns a reusable decode arena, so it is not safe for
// concurrent use; create one Pipeline per goroutine when geometry work is
// split across workers. Stats may be read from any goroutine.
type Pipeline struct {
	sink     PrimitiveSink
	lighting Lighting
	source   vertex.Source
	arena    *vertex.Arena
	decoders *cache.Sharded[uint32, vertex.Decoder]

	// Counters are atomic so Stats can be read while a draw is running.
	drawCalls         atomic.Uint64
	vertices          atomic.Uint64
	triangles         atomic.Uint64
	quads             atomic.Uint64
	droppedGroups     atomic.Uint64
	unsupportedDraws  atomic.Uint64
	degenerateNormals atomic.Uint64
}

// NewPipeline creates a geometry pipeline feeding the given sink.
// A nil sink is allowed; every completed primitive is then dropped and
// counted, which is occasionally useful for profiling the stage alone.
func NewPipeline(sink PrimitiveSink, opts ...Option) *Pipeline {
	o := defaultPipelineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if sink == nil {
		Logger().Warn("softge: pipeline created without a sink, primitives will be dropped")
	}
	return &Pipeline{
		sink:     sink,
		lighting: o.lighting,
		source:   o.source,
		arena:    vertex.NewArena(o.scratchCapacity),
		decoders: cache.NewSharded[uint32, vertex.Decoder](o.cacheCapacity, cache.Uint32Hasher),
	}
}

// Submit runs one draw call through the geometry stage.
//
// Empty draws (VertexCount <= 0) and draws with an unsupported primitive
// type are no-ops; the latter increment Stats.UnsupportedDraws. Trailing
// vertices that cannot complete a primitive group are dropped.
func (p *Pipeline) Submit(state *State, call DrawCall) error {
	if state == nil {
		return ErrNilState
	}
	if call.VertexCount <= 0 {
		return nil
	}
	if call.Indices8 != nil && call.Indices16 != nil {
		return ErrConflictingIndices
	}

	perPrim := call.Prim.VerticesPerPrimitive()
	if perPrim == 0 {
		p.unsupportedDraws.Add(1)
		Logger().Warn("softge: unsupported primitive type, draw skipped",
			"prim", call.Prim.String(), "vertices", call.VertexCount)
		return nil
	}

	dec, err := p.decoders.GetOrCreate(call.VertexType, func() (vertex.Decoder, error) {
		return p.source.DecoderFor(call.VertexType)
	})
	if err != nil {
		return fmt.Errorf("softge: resolving vertex type %#x: %w", call.VertexType, err)
	}
	format := dec.Format()

	// Indexed draws decode only the window of vertices the indices
	// actually reference.
	lower, upper := 0, call.VertexCount-1
	switch {
	case call.Indices8 != nil:
		if len(call.Indices8) < call.VertexCount {
			return fmt.Errorf("%w: %d entries for %d vertices", ErrShortIndexBuffer, len(call.Indices8), call.VertexCount)
		}
		lower, upper = vertex.IndexBounds(call.Indices8, call.VertexCount)
	case call.Indices16 != nil:
		if len(call.Indices16) < call.VertexCount {
			return fmt.Errorf("%w: %d entries for %d vertices", ErrShortIndexBuffer, len(call.Indices16), call.VertexCount)
		}
		lower, upper = vertex.IndexBounds(call.Indices16, call.VertexCount)
	}

	window := upper - lower + 1
	buf, err := p.arena.Alloc(window * format.Stride())
	if err != nil {
		return fmt.Errorf("softge: decoding %d vertices: %w", window, err)
	}
	if err := dec.Decode(buf, call.Vertices, lower, upper); err != nil {
		return fmt.Errorf("softge: decoding vertices [%d, %d]: %w", lower, upper, err)
	}
	reader := vertex.NewReader(buf, format, lower)

	p.drawCalls.Add(1)
	Logger().Debug("softge: draw",
		"prim", call.Prim.String(), "vertices", call.VertexCount,
		"window", window, "stride", format.Stride())

	readUV := !state.ClearMode && state.TextureMapEnable && format.HasUV()

	var group [3]VertexData
	for vtx := 0; vtx+perPrim <= call.VertexCount; vtx += perPrim {
		for i := range perPrim {
			p.assembleVertex(state, &reader, &call, vtx+i, readUV, &group[i])
		}
		p.dispatch(call.Prim, &group)
	}
	return nil
}

// assembleVertex reads one vertex's attributes and runs it through the
// transform chain, writing the result to out.
func (p *Pipeline) assembleVertex(state *State, r *vertex.Reader, call *DrawCall, slot int, readUV bool, out *VertexData) {
	idx := slot
	switch {
	case call.Indices8 != nil:
		idx = int(call.Indices8[slot])
	case call.Indices16 != nil:
		idx = int(call.Indices16[slot])
	}
	r.Goto(idx)

	*out = VertexData{}
	px, py, pz := r.ReadPos()

	if readUV {
		u, v := r.ReadUV()
		out.TexCoords = Vec2{X: u, Y: v}
	}

	hasNormal := r.Format().HasNormal()
	if hasNormal {
		nx, ny, nz := r.ReadNormal()
		out.Normal = Vec3{X: nx, Y: ny, Z: nz}
	}

	if r.Format().HasColor0() {
		cr, cg, cb, ca := r.ReadColor0()
		out.Color0 = Vec4i{X: int32(cr * 255), Y: int32(cg * 255), Z: int32(cb * 255), W: int32(ca * 255)}
	} else {
		out.Color0 = state.MaterialColor()
	}

	if r.Format().HasColor1() {
		cr, cg, cb := r.ReadColor1()
		out.Color1 = Vec3i{X: int32(cr * 255), Y: int32(cg * 255), Z: int32(cb * 255)}
	}

	p.vertices.Add(1)

	if state.ThroughMode {
		// Pretransformed draw: raw x/y are already drawing coordinates.
		out.DrawPos = DrawingCoords{X: px, Y: py}
		return
	}

	out.WorldPos = ModelToWorld(state, ModelCoords{X: px, Y: py, Z: pz})
	out.ViewPos = WorldToView(state, out.WorldPos)
	out.ClipPos = ViewToClip(state, out.ViewPos)
	out.DrawPos = ScreenToDrawing(state, ClipToScreen(state, out.ClipPos))

	if hasNormal {
		// The normal rotates by the linear part only; translation does
		// not apply to directions.
		wn := state.WorldLinear().MulVec(out.Normal)
		if length := wn.Length(); length == 0 {
			p.degenerateNormals.Add(1)
		} else {
			out.WorldNormal = wn.Div(length)
		}
	}

	if p.lighting != nil {
		p.lighting.ApplyLighting(out)
	}
}

// Stats returns a snapshot of the pipeline counters.
func (p *Pipeline) Stats() Stats {
	return Stats{
		DrawCalls:         p.drawCalls.Load(),
		Vertices:          p.vertices.Load(),
		Triangles:         p.triangles.Load(),
		Quads:             p.quads.Load(),
		DroppedGroups:     p.droppedGroups.Load(),
		UnsupportedDraws:  p.unsupportedDraws.Load(),
		DegenerateNormals: p.degenerateNormals.Load(),
	}
}

// ResetStats resets all pipeline counters to zero.
func (p *Pipeline) ResetStats() {
	p.drawCalls.Store(0)
	p.vertices.Store(0)
	p.triangles.Store(0)
	p.quads.Store(0)
	p.droppedGroups.Store(0)
	p.unsupportedDraws.Store(0)
	p.degenerateNormals.Store(0)
}

// DecoderCacheStats returns statistics of the vertex-decoder cache.
func (p *Pipeline) DecoderCacheStats() cache.Stats {
	return p.decoders.Stats()
}
