package gfx

import "fmt"

// AtlasLayer addresses one depth slice of a TextureArray and places
// sub-images into it at explicit pixel offsets. Obtained via
// TextureArray.Layer, which guarantees one handle per slice. A layer must
// not outlive its array.
type AtlasLayer struct {
	array *TextureArray
	z     int
}

// Array returns the owning texture array.
func (l *AtlasLayer) Array() *TextureArray { return l.array }

// ZOffset returns the depth slice this layer addresses.
func (l *AtlasLayer) ZOffset() int { return l.z }

// Place writes the destW x destH crop of a source image, taken at
// (srcX, srcY), into this layer at (destX, destY). pix holds the full source
// image, srcW x srcH pixels at the given channel count (3 = RGB, 4 = RGBA).
//
// Vertical addressing is bottom-up: the row skip into the source is
// srcH - srcY - destH, matching the default texture-coordinate origin at
// the bottom-left. Callers holding top-down image data flip it first (see
// imgio.Image.FlipVertical).
func (l *AtlasLayer) Place(destX, destY, destW, destH, srcX, srcY int, pix []byte, srcW, srcH, channels int) error {
	var format PixelFormat
	switch channels {
	case 3:
		format = FormatRGB
	case 4:
		format = FormatRGBA
	default:
		return fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, channels)
	}
	if destW <= 0 || destH <= 0 || destX < 0 || destY < 0 ||
		destX+destW > l.array.width || destY+destH > l.array.height {
		return fmt.Errorf("%w: dest %dx%d at (%d,%d) in %dx%d layer",
			ErrOutOfBounds, destW, destH, destX, destY, l.array.width, l.array.height)
	}
	if srcX < 0 || srcY < 0 || srcX+destW > srcW || srcY+destH > srcH {
		return fmt.Errorf("%w: src crop %dx%d at (%d,%d) in %dx%d image",
			ErrOutOfBounds, destW, destH, srcX, srcY, srcW, srcH)
	}
	if want := srcW * srcH * channels; len(pix) < want {
		return fmt.Errorf("gfx: pixel data too short: have %d bytes, need %d", len(pix), want)
	}

	l.array.Bind()
	l.array.backend.UploadSubImage(destX, destY, l.z, destW, destH, format, SubImage{
		Pix:        pix,
		RowLength:  srcW,
		SkipPixels: srcX,
		SkipRows:   srcH - srcY - destH,
	})
	return nil
}
