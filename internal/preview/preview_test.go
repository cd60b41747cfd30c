package preview

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/handiism/spoolid/internal/catalog"
	"github.com/handiism/spoolid/internal/display"
)

func TestFit(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"PLA Basic", "PLA Basic"},
		{"Iridium Gold Metallic", "Iridium Gold Meta~"},
		{"123456789012345678", "123456789012345678"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := fit(tt.input); got != tt.want {
				t.Errorf("fit(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderer_Render(t *testing.T) {
	res := display.Resolve(catalog.Default(), display.CodeQuery("10101"), "")
	img := NewRenderer(1).Render(res)

	if b := img.Bounds(); b.Dx() != Width || b.Dy() != Height {
		t.Fatalf("bounds = %v, want %dx%d", b, Width, Height)
	}

	lit := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < Width; x++ {
			if img.GrayAt(x, y).Y > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("first line drew no pixels")
	}
	if img.GrayAt(0, 44).Y != 0xff {
		t.Error("separator missing")
	}
}

func TestRenderer_PNG(t *testing.T) {
	res := display.Resolve(catalog.Default(), display.CodeQuery("99999"), "")

	data, err := NewRenderer(4).PNG(res)
	if err != nil {
		t.Fatalf("PNG failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != Width*4 || b.Dy() != Height*4 {
		t.Errorf("scaled bounds = %v", b)
	}
}
