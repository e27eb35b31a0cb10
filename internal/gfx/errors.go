package gfx

import "errors"

// Sentinel errors. Resource exhaustion and format problems are recoverable:
// callers may substitute a placeholder texture or abort cleanly instead of
// terminating the process.
var (
	ErrTextureUnitsExhausted = errors.New("gfx: all texture units are in use")
	ErrTextureTooLarge       = errors.New("gfx: texture size exceeds driver limit")
	ErrTooManyLayers         = errors.New("gfx: layer count exceeds driver limit")
	ErrLayerOutOfRange       = errors.New("gfx: layer index outside array depth")
	ErrLayerTaken            = errors.New("gfx: layer already handed out")
	ErrUnsupportedFormat     = errors.New("gfx: unsupported pixel format")
	ErrOutOfBounds           = errors.New("gfx: sub-image exceeds bounds")
	ErrInvalidRectData       = errors.New("gfx: rect data must be 8 floats per rectangle")
	ErrBatchFinalized        = errors.New("gfx: batch already uploaded")
)
