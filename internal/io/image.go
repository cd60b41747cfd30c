package ioutils

import (
	"bytes"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

// ImageService scales and encodes small raster images such as label
// previews.
//
// Example usage:
//
//	svc := NewImageService()
//
//	big := svc.Scale(label, 4) // 128x64 -> 512x256
//	data, err := svc.EncodePNG(big)
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// Scale enlarges img by an integer factor using nearest-neighbour sampling,
// so single pixels stay crisp squares. A factor below 2 returns img as-is.
func (s *ImageService) Scale(img image.Image, factor int) image.Image {
	if factor < 2 {
		return img
	}

	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)

	return dst
}

// EncodePNG encodes img as PNG.
func (s *ImageService) EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
