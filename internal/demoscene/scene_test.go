package demoscene

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/colornames"

	"github.com/gogpu/softge"
	"github.com/gogpu/softge/vertex"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.Width != 480 || s.Height != 272 {
		t.Errorf("Default() size = %dx%d, want 480x272", s.Width, s.Height)
	}
	if s.Frames != 120 {
		t.Errorf("Frames = %d, want 120", s.Frames)
	}
	if s.CubeSize != 2 || s.CameraZ != 5 {
		t.Errorf("CubeSize = %v, CameraZ = %v, want 2 and 5", s.CubeSize, s.CameraZ)
	}
	if s.Background != "midnightblue" {
		t.Errorf("Background = %q, want midnightblue", s.Background)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	doc := `width: 320
height: 240
frames: 10
background: "#102030"
face_colors: [red, "#00ff00"]
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if s.Width != 320 || s.Height != 240 || s.Frames != 10 {
		t.Errorf("loaded %dx%d, %d frames, want 320x240, 10 frames", s.Width, s.Height, s.Frames)
	}
	// Fields absent from the file keep their defaults.
	if s.CubeSize != 2 || s.CameraZ != 5 {
		t.Errorf("CubeSize = %v, CameraZ = %v, want defaults 2 and 5", s.CubeSize, s.CameraZ)
	}
	if got, want := s.BackgroundColor(), (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}); got != want {
		t.Errorf("BackgroundColor() = %v, want %v", got, want)
	}
	if got := s.FaceColor(0); got != colornames.Red {
		t.Errorf("FaceColor(0) = %v, want red", got)
	}
	if got, want := s.FaceColor(1), (color.RGBA{G: 0xFF, A: 0xFF}); got != want {
		t.Errorf("FaceColor(1) = %v, want %v", got, want)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load(missing file) = nil, want error")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte("width: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load(bad yaml) = nil, want error")
	}
}

func TestLoad_NormalizesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	doc := "width: -3\nframes: 0\ncube_size: -1\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	def := Default()
	if s.Width != def.Width || s.Frames != def.Frames || s.CubeSize != def.CubeSize {
		t.Errorf("normalized scene = %+v, want defaults for invalid fields", s)
	}
}

func TestBackgroundColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want color.RGBA
	}{
		{"named", "midnightblue", colornames.Midnightblue},
		{"case insensitive", "MidnightBlue", colornames.Midnightblue},
		{"hex", "#ff8000", color.RGBA{R: 0xFF, G: 0x80, A: 0xFF}},
		{"hex without hash", "ff8000", color.RGBA{R: 0xFF, G: 0x80, A: 0xFF}},
		{"unknown falls back to black", "notacolor", color.RGBA{A: 0xFF}},
		{"empty falls back to black", "", color.RGBA{A: 0xFF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Scene{Background: tt.in}
			if got := s.BackgroundColor(); got != tt.want {
				t.Errorf("BackgroundColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFaceColor_PaletteFallback(t *testing.T) {
	s := Scene{FaceColors: []string{"red", "bogus"}}

	if got := s.FaceColor(0); got != colornames.Red {
		t.Errorf("FaceColor(0) = %v, want red", got)
	}
	// Unparseable names fall back to the palette slot.
	if got := s.FaceColor(1); got != defaultPalette[1] {
		t.Errorf("FaceColor(1) = %v, want palette fallback %v", got, defaultPalette[1])
	}
	// Faces beyond the configured list use the palette.
	if got := s.FaceColor(3); got != defaultPalette[3] {
		t.Errorf("FaceColor(3) = %v, want %v", got, defaultPalette[3])
	}
	// The palette wraps for out-of-range faces.
	if got := s.FaceColor(7); got != defaultPalette[1] {
		t.Errorf("FaceColor(7) = %v, want %v", got, defaultPalette[1])
	}
}

func TestCube(t *testing.T) {
	s := Default()
	m := s.Cube()

	if m.Count != 36 {
		t.Fatalf("Count = %d, want 36 (6 faces x 2 triangles)", m.Count)
	}
	if m.Prim != softge.PrimTriangles {
		t.Errorf("Prim = %v, want triangles", m.Prim)
	}
	if m.VertexType != uint32(vertex.AttrColor0) {
		t.Errorf("VertexType = %#x, want %#x", m.VertexType, uint32(vertex.AttrColor0))
	}
	if want := 36 * m.Format.Stride(); len(m.Data) != want {
		t.Errorf("len(Data) = %d, want %d", len(m.Data), want)
	}

	// Every corner sits on the half-size cube surface.
	h := s.CubeSize / 2
	r := vertex.NewReader(m.Data, m.Format, 0)
	for i := 0; i < m.Count; i++ {
		r.Goto(i)
		x, y, z := r.ReadPos()
		for _, c := range []float32{x, y, z} {
			if c != h && c != -h {
				t.Fatalf("vertex %d: coordinate %v, want +-%v", i, c, h)
			}
		}
	}

	// The first face carries the first face color.
	r.Goto(0)
	cr, cg, cb, ca := r.ReadColor0()
	c := s.FaceColor(0)
	want := [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
	if got := [4]float32{cr, cg, cb, ca}; got != want {
		t.Errorf("face 0 color = %v, want %v", got, want)
	}
}

func TestOverlay(t *testing.T) {
	s := Default()
	m, st := s.Overlay()

	if m.Count != 2 || m.Prim != softge.PrimRectangles {
		t.Errorf("overlay mesh = %d vertices of %v, want 2 rectangle corners", m.Count, m.Prim)
	}
	if m.VertexType != 0 {
		t.Errorf("VertexType = %#x, want 0 (position only)", m.VertexType)
	}
	if !st.ThroughMode {
		t.Error("overlay state is not in through mode")
	}
	if got, want := st.MaterialColor(), (softge.Vec4i{X: 0xF0, Y: 0xF0, Z: 0xF0, W: 0xFF}); got != want {
		t.Errorf("MaterialColor() = %v, want %v", got, want)
	}

	r := vertex.NewReader(m.Data, m.Format, 0)
	r.Goto(0)
	x0, y0, _ := r.ReadPos()
	r.Goto(1)
	x1, y1, _ := r.ReadPos()
	if x0 != 8 || y0 != 8 {
		t.Errorf("first corner = (%v, %v), want (8, 8)", x0, y0)
	}
	if x1 != float32(s.Width)-8 || y1 != float32(s.Height)-8 {
		t.Errorf("second corner = (%v, %v), want (%v, %v)", x1, y1, float32(s.Width)-8, float32(s.Height)-8)
	}
}

func TestFrameState(t *testing.T) {
	s := Default()
	st := s.FrameState(0)

	// Frame zero: no spin yet.
	if got := st.WorldLinear(); got != softge.Mat3Identity() {
		t.Errorf("frame 0 world linear = %v, want identity", got)
	}
	if got := st.ViewTranslation(); got != softge.V3(0, 0, -s.CameraZ) {
		t.Errorf("ViewTranslation() = %v, want (0, 0, %v)", got, -s.CameraZ)
	}
	if got, want := st.MaterialColor(), (softge.Vec4i{X: 0xFF, Y: 0xFF, Z: 0xFF, W: 0xFF}); got != want {
		t.Errorf("MaterialColor() = %v, want white", got)
	}

	// The viewport centers clip-space origin on the framebuffer: both
	// offsets are half the 480x272 target, exact in the register format.
	screen := softge.ClipToScreen(st, softge.ClipCoords{W: 1})
	if screen.X != 240*16 || screen.Y != 136*16 {
		t.Errorf("screen center = (%v, %v), want (%v, %v)", screen.X, screen.Y, 240*16, 136*16)
	}

	// A point on the camera axis projects to positive w.
	clip := softge.ViewToClip(st, softge.ViewCoords{Z: -s.CameraZ})
	if clip.W != s.CameraZ {
		t.Errorf("clip w = %v, want %v", clip.W, s.CameraZ)
	}

	// Later frames actually spin.
	if got := s.FrameState(30).WorldLinear(); got == softge.Mat3Identity() {
		t.Error("frame 30 world linear is still identity")
	}
}
