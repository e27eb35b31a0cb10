// Demo: packs two images onto the layers of one 512x512x2 texture array and
// draws a sprite from each layer every frame. Pass a PNG/JPEG path to put
// your own image on layer 0; otherwise a checkerboard is generated.
package main

import (
	"log/slog"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"blit/internal/app"
	"blit/internal/gfx"
	"blit/internal/imgio"
)

const tileSize = 128

func main() {
	gfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	a, err := app.New(app.Config{Title: "blit demo", VSync: true})
	if err != nil {
		panic(err)
	}
	defer a.Close()

	arr, err := gfx.NewTextureArray(a.Backend(), a.Units(), 512, 512, 2)
	if err != nil {
		panic(err)
	}
	defer arr.Destroy()

	layer0, err := arr.Layer(0)
	if err != nil {
		panic(err)
	}
	layer1, err := arr.Layer(1)
	if err != nil {
		panic(err)
	}

	// Layer 0: an image from disk when given, else a procedural checkerboard.
	img := checkerboard(tileSize)
	if len(os.Args) > 1 {
		img, err = imgio.Load(os.Args[1])
		if err != nil {
			panic(err)
		}
		if img.Width > tileSize || img.Height > tileSize {
			if img, err = img.Scale(tileSize, tileSize); err != nil {
				panic(err)
			}
		}
		// Decoded rows are top-down; layer placement is bottom-up.
		img.FlipVertical()
	}
	if err := layer0.Place(0, 0, img.Width, img.Height, 0, 0, img.Pix, img.Width, img.Height, img.Channels); err != nil {
		panic(err)
	}

	// Layer 1: an RGB gradient, exercising the 3-channel upload path.
	grad := gradient(tileSize).DropAlpha()
	if err := layer1.Place(0, 0, grad.Width, grad.Height, 0, 0, grad.Pix, grad.Width, grad.Height, grad.Channels); err != nil {
		panic(err)
	}

	batch := gfx.NewGeometryBatch(a.Backend())
	defer batch.Destroy()

	// A unit quad; UVs address the placed 128x128 corner of the 512x512
	// layer (u,v in 0..0.25).
	quad := []float32{0, 0, 1, 0, 1, 1, 0, 1}
	uv := []float32{
		0, tileSize / 512.0,
		tileSize / 512.0, tileSize / 512.0,
		tileSize / 512.0, 0,
		0, 0,
	}

	desc0, err := batch.AddTexturedRects(quad, uv)
	if err != nil {
		panic(err)
	}
	desc1, err := batch.AddTexturedRects(quad, uv)
	if err != nil {
		panic(err)
	}
	batch.Build()
	batch.Bind()

	sprite0 := gfx.NewSprite(desc0, layer0)
	sprite1 := gfx.NewSprite(desc1, layer1)

	t := 0.0
	a.Run(func() {
		t += 1.0 / 60.0
		bob := float32(20 * math.Sin(t*2))
		a.Renderer().DrawSprite(sprite0, mgl32.Vec2{96, 172}, mgl32.Vec2{256, 256})
		a.Renderer().DrawSprite(sprite1, mgl32.Vec2{448, 172 + bob}, mgl32.Vec2{256, 256})
	})
}

// checkerboard generates an RGBA test pattern.
func checkerboard(size int) *imgio.Image {
	pix := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := (y*size + x) * 4
			if (x/16+y/16)%2 == 0 {
				pix[i], pix[i+1], pix[i+2] = 235, 235, 235
			} else {
				pix[i], pix[i+1], pix[i+2] = 40, 44, 52
			}
			pix[i+3] = 255
		}
	}
	return &imgio.Image{Pix: pix, Width: size, Height: size, Channels: 4}
}

// gradient generates an RGBA gradient (red along x, green along y).
func gradient(size int) *imgio.Image {
	pix := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			i := (y*size + x) * 4
			pix[i] = byte(255 * x / (size - 1))
			pix[i+1] = byte(255 * y / (size - 1))
			pix[i+2] = 96
			pix[i+3] = 255
		}
	}
	return &imgio.Image{Pix: pix, Width: size, Height: size, Channels: 4}
}
