package vertex

import "testing"

func TestNewFormat_Layout(t *testing.T) {
	tests := []struct {
		name   string
		attrs  Attributes
		uv     int
		normal int
		color0 int
		color1 int
		stride int
	}{
		{"position only", 0, -1, -1, -1, -1, 12},
		{"uv", AttrUV, 12, -1, -1, -1, 20},
		{"normal", AttrNormal, -1, 12, -1, -1, 24},
		{"color0", AttrColor0, -1, -1, 12, -1, 28},
		{"color1", AttrColor1, -1, -1, -1, 12, 24},
		{"uv+normal", AttrUV | AttrNormal, 12, 20, -1, -1, 32},
		{"uv+color0", AttrUV | AttrColor0, 12, -1, 20, -1, 36},
		{"normal+color0", AttrNormal | AttrColor0, -1, 12, 24, -1, 40},
		{"all", AttrUV | AttrNormal | AttrColor0 | AttrColor1, 12, 20, 32, 48, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormat(tt.attrs)
			if got := f.UVOffset(); got != tt.uv {
				t.Errorf("UVOffset() = %d, want %d", got, tt.uv)
			}
			if got := f.NormalOffset(); got != tt.normal {
				t.Errorf("NormalOffset() = %d, want %d", got, tt.normal)
			}
			if got := f.Color0Offset(); got != tt.color0 {
				t.Errorf("Color0Offset() = %d, want %d", got, tt.color0)
			}
			if got := f.Color1Offset(); got != tt.color1 {
				t.Errorf("Color1Offset() = %d, want %d", got, tt.color1)
			}
			if got := f.Stride(); got != tt.stride {
				t.Errorf("Stride() = %d, want %d", got, tt.stride)
			}
			if got := f.Attributes(); got != tt.attrs {
				t.Errorf("Attributes() = %v, want %v", got, tt.attrs)
			}
		})
	}
}

func TestFormat_HasFlags(t *testing.T) {
	f := NewFormat(AttrUV | AttrColor1)
	if !f.HasUV() {
		t.Error("HasUV() = false, want true")
	}
	if f.HasNormal() {
		t.Error("HasNormal() = true, want false")
	}
	if f.HasColor0() {
		t.Error("HasColor0() = true, want false")
	}
	if !f.HasColor1() {
		t.Error("HasColor1() = false, want true")
	}
}

func TestMaxStride(t *testing.T) {
	f := NewFormat(attrAll)
	if f.Stride() != MaxStride {
		t.Errorf("full format stride = %d, want MaxStride = %d", f.Stride(), MaxStride)
	}
}
