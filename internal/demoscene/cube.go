package demoscene

import (
	"math"

	"github.com/gogpu/softge"
	"github.com/gogpu/softge/vertex"
)

// Mesh is a ready-to-submit vertex payload.
type Mesh struct {
	Format     vertex.Format
	Data       []byte
	VertexType uint32
	Count      int
	Prim       softge.PrimitiveType
}

// Call wraps the mesh as a draw call.
func (m Mesh) Call() softge.DrawCall {
	return softge.DrawCall{
		Vertices:    m.Data,
		Prim:        m.Prim,
		VertexCount: m.Count,
		VertexType:  m.VertexType,
	}
}

// cubeFaces lists each face's four corners counter-clockwise, as
// selectors into the unit corner cube.
var cubeFaces = [6][4][3]float32{
	{{-1, -1, +1}, {+1, -1, +1}, {+1, +1, +1}, {-1, +1, +1}}, // front  (+z)
	{{+1, -1, -1}, {-1, -1, -1}, {-1, +1, -1}, {+1, +1, -1}}, // back   (-z)
	{{-1, -1, -1}, {-1, -1, +1}, {-1, +1, +1}, {-1, +1, -1}}, // left   (-x)
	{{+1, -1, +1}, {+1, -1, -1}, {+1, +1, -1}, {+1, +1, +1}}, // right  (+x)
	{{-1, +1, +1}, {+1, +1, +1}, {+1, +1, -1}, {-1, +1, -1}}, // top    (+y)
	{{-1, -1, -1}, {+1, -1, -1}, {+1, -1, +1}, {-1, -1, +1}}, // bottom (-y)
}

// Cube builds the demo cube: twelve flat-colored triangles in the
// canonical position+color layout.
func (s Scene) Cube() Mesh {
	b := vertex.NewBuilder(vertex.NewFormat(vertex.AttrColor0))
	h := s.CubeSize / 2
	for face, corners := range cubeFaces {
		c := s.FaceColor(face)
		col := [4]float32{
			float32(c.R) / 255,
			float32(c.G) / 255,
			float32(c.B) / 255,
			float32(c.A) / 255,
		}
		for _, idx := range [6]int{0, 1, 2, 0, 2, 3} {
			p := corners[idx]
			b.Add(vertex.V{
				Pos:    [3]float32{p[0] * h, p[1] * h, p[2] * h},
				Color0: col,
			})
		}
	}
	return Mesh{
		Format:     b.Format(),
		Data:       b.Bytes(),
		VertexType: uint32(vertex.AttrColor0),
		Count:      b.Count(),
		Prim:       softge.PrimTriangles,
	}
}

// Overlay builds a through-mode rectangle framing the viewport. It rides
// the pretransformed path with a position-only layout, so the border
// color comes from the material registers.
func (s Scene) Overlay() (Mesh, *softge.State) {
	b := vertex.NewBuilder(vertex.NewFormat(0))
	const inset = 8
	b.Add(vertex.V{Pos: [3]float32{inset, inset, 0}})
	b.Add(vertex.V{Pos: [3]float32{float32(s.Width) - inset, float32(s.Height) - inset, 0}})
	m := Mesh{
		Format:     b.Format(),
		Data:       b.Bytes(),
		VertexType: 0,
		Count:      b.Count(),
		Prim:       softge.PrimRectangles,
	}
	st := softge.NewState()
	st.ThroughMode = true
	st.SetMaterial(0xF0, 0xF0, 0xF0, 0xFF)
	return m, st
}

// FrameState returns the register state for one frame: the cube spun
// about two axes, viewed from the scene camera, projected and mapped to
// the full framebuffer.
func (s Scene) FrameState(frame int) *softge.State {
	a := s.SpinSpeed * float32(frame)
	w := float32(s.Width)
	h := float32(s.Height)

	st := softge.NewState()
	st.SetWorldMatrix(rotY(a).Mul(rotX(a*0.7)), softge.Vec3{})
	st.SetViewMatrix(softge.Mat3Identity(), softge.V3(0, 0, -s.CameraZ))
	st.SetProjMatrix(perspective(1.0, w/h, 1, 100))
	st.SetViewport(softge.V3(w/2, -h/2, 0.5), softge.V3(w/2, h/2, 0.5))
	st.SetDrawingOffset(0, 0)
	st.SetMaterial(0xFF, 0xFF, 0xFF, 0xFF)
	return st
}

// perspective builds a right-handed projection in register layout:
// w' = -z, so points in front of the camera land at positive w.
func perspective(fovY, aspect, near, far float32) softge.Mat4 {
	f := float32(1 / math.Tan(float64(fovY)/2))
	var m softge.Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = -1
	m[14] = 2 * far * near / (near - far)
	return m
}

func rotY(a float32) softge.Mat3 {
	sin64, cos64 := math.Sincos(float64(a))
	sin, cos := float32(sin64), float32(cos64)
	return softge.Mat3{cos, 0, -sin, 0, 1, 0, sin, 0, cos}
}

func rotX(a float32) softge.Mat3 {
	sin64, cos64 := math.Sincos(float64(a))
	sin, cos := float32(sin64), float32(cos64)
	return softge.Mat3{1, 0, 0, 0, cos, sin, 0, -sin, cos}
}
