// Package preview draws host-side PNG previews of what the reader's
// 128x64 monochrome screen shows for a lookup.
package preview

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/handiism/spoolid/internal/display"
	ioutils "github.com/handiism/spoolid/internal/io"
)

// Screen geometry of the reader's display.
const (
	Width  = 128
	Height = 64
)

// glyphWidth is the advance of basicfont.Face7x13.
const glyphWidth = 7

// maxChars is how many glyphs fit on one line.
const maxChars = Width / glyphWidth

// Renderer draws display results onto a monochrome canvas.
type Renderer struct {
	images *ioutils.ImageService
	scale  int
}

// NewRenderer returns a Renderer whose PNG output is enlarged by scale.
func NewRenderer(scale int) *Renderer {
	return &Renderer{images: ioutils.NewImageService(), scale: scale}
}

// Render draws res at native resolution: name, color, and a footer with
// the code and variant (or "no match").
func (r *Renderer) Render(res display.Result) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	footer := "no match"
	if res.Found {
		footer = res.Record.FilamentCode
		if res.Record.VariantID != "" {
			footer += " " + res.Record.VariantID
		}
	}

	drawLine(img, 2, 14, res.Line1)
	drawLine(img, 2, 32, res.Line2)
	drawLine(img, 2, 58, footer)

	// Separator above the footer.
	for x := 0; x < Width; x++ {
		img.SetGray(x, 44, color.Gray{Y: 0xff})
	}

	return img
}

// PNG renders res and encodes it, scaled by the renderer's factor.
func (r *Renderer) PNG(res display.Result) ([]byte, error) {
	return r.images.EncodePNG(r.images.Scale(r.Render(res), r.scale))
}

func drawLine(dst draw.Image, x, baseline int, text string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(fit(text))
}

// fit truncates text to one screen line, marking the cut with "~".
func fit(text string) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars-1]) + "~"
}
