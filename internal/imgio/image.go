// Package imgio decodes image files into raw pixel data ready for atlas
// placement: tightly packed rows, known channel count, explicit control
// over vertical orientation.
package imgio

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Image is decoded pixel data. Rows run top to bottom as decoded; callers
// placing into bottom-up texture layers flip first (FlipVertical).
type Image struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int // 3 (RGB) or 4 (RGBA)
}

// Load reads and decodes the image at path into tightly packed RGBA pixels.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imgio: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imgio: decode %s: %w", path, err)
	}
	return img, nil
}

// Decode decodes PNG or JPEG data into tightly packed RGBA pixels.
func Decode(r io.Reader) (*Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
	return &Image{Pix: dst.Pix, Width: b.Dx(), Height: b.Dy(), Channels: 4}, nil
}

// FlipVertical reverses the row order in place, converting between top-down
// and bottom-up orientation.
func (m *Image) FlipVertical() {
	stride := m.Width * m.Channels
	tmp := make([]byte, stride)
	for top, bot := 0, m.Height-1; top < bot; top, bot = top+1, bot-1 {
		a := m.Pix[top*stride : (top+1)*stride]
		b := m.Pix[bot*stride : (bot+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

// DropAlpha returns a 3-channel RGB copy. Non-RGBA images are returned
// unchanged.
func (m *Image) DropAlpha() *Image {
	if m.Channels != 4 {
		return m
	}
	pix := make([]byte, m.Width*m.Height*3)
	for i, j := 0, 0; i < len(m.Pix); i, j = i+4, j+3 {
		pix[j], pix[j+1], pix[j+2] = m.Pix[i], m.Pix[i+1], m.Pix[i+2]
	}
	return &Image{Pix: pix, Width: m.Width, Height: m.Height, Channels: 3}
}

// Scale resamples to width x height with nearest-neighbor filtering,
// keeping pixel-art edges crisp.
func (m *Image) Scale(width, height int) (*Image, error) {
	if m.Channels != 4 {
		return nil, fmt.Errorf("imgio: scale requires RGBA data, have %d channels", m.Channels)
	}
	src := &image.RGBA{
		Pix:    m.Pix,
		Stride: m.Width * 4,
		Rect:   image.Rect(0, 0, m.Width, m.Height),
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return &Image{Pix: dst.Pix, Width: width, Height: height, Channels: 4}, nil
}
