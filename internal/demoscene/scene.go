// Package demoscene builds the self-contained spinning-cube demo used by
// the example commands: a YAML-configurable scene description, a cube
// mesh in the canonical vertex layout, and per-frame register state.
package demoscene

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/softge/display"
)

// Scene describes the demo scene. Zero or missing fields fall back to
// the defaults from Default.
type Scene struct {
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	Frames     int      `yaml:"frames"`
	CubeSize   float32  `yaml:"cube_size"`
	SpinSpeed  float32  `yaml:"spin_speed"`
	CameraZ    float32  `yaml:"camera_z"`
	Background string   `yaml:"background"`
	FaceColors []string `yaml:"face_colors"`
}

// defaultPalette colors the six cube faces when the scene names fewer.
var defaultPalette = [6]color.RGBA{
	{R: 0xE5, G: 0x39, B: 0x35, A: 0xFF},
	{R: 0x43, G: 0xA0, B: 0x47, A: 0xFF},
	{R: 0x1E, G: 0x88, B: 0xE5, A: 0xFF},
	{R: 0xFD, G: 0xD8, B: 0x35, A: 0xFF},
	{R: 0x8E, G: 0x24, B: 0xAA, A: 0xFF},
	{R: 0xFB, G: 0x8C, B: 0x00, A: 0xFF},
}

// Default returns the stock scene: native resolution, a two-unit cube
// spinning at one degree per frame against a dark background.
func Default() Scene {
	return Scene{
		Width:      display.DefaultWidth,
		Height:     display.DefaultHeight,
		Frames:     120,
		CubeSize:   2,
		SpinSpeed:  0.0174533, // one degree in radians
		CameraZ:    5,
		Background: "midnightblue",
	}
}

// Load reads a scene description from a YAML file. Fields absent from
// the file keep their defaults; invalid values are normalized.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, err
	}
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("demoscene: parsing %s: %w", path, err)
	}
	s.normalize()
	return s, nil
}

// normalize replaces out-of-range values with usable ones.
func (s *Scene) normalize() {
	def := Default()
	if s.Width <= 0 {
		s.Width = def.Width
	}
	if s.Height <= 0 {
		s.Height = def.Height
	}
	if s.Frames <= 0 {
		s.Frames = def.Frames
	}
	if s.CubeSize <= 0 {
		s.CubeSize = def.CubeSize
	}
	if s.CameraZ <= 0 {
		s.CameraZ = def.CameraZ
	}
}

// BackgroundColor resolves the scene background. It accepts SVG 1.1
// color names and #rrggbb hex; anything else comes back black.
func (s Scene) BackgroundColor() color.RGBA {
	return parseColor(s.Background, color.RGBA{A: 0xFF})
}

// FaceColor resolves the color of cube face i, falling back to the
// built-in palette when the scene names fewer than six.
func (s Scene) FaceColor(i int) color.RGBA {
	fallback := defaultPalette[i%len(defaultPalette)]
	if i >= len(s.FaceColors) {
		return fallback
	}
	return parseColor(s.FaceColors[i], fallback)
}

func parseColor(name string, fallback color.RGBA) color.RGBA {
	if c, ok := colornames.Map[strings.ToLower(name)]; ok {
		return c
	}
	if c, ok := parseHex(name); ok {
		return c
	}
	return fallback
}

// parseHex parses #rrggbb (leading # optional).
func parseHex(s string) (color.RGBA, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, true
}
