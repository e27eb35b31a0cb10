package gfx

import "fmt"

// TextureArray owns one GPU 2D array texture with fixed width, height and
// depth, and holds its assigned texture unit for its whole lifetime. Layer
// contents are the only mutable GPU-side state; everything else is fixed at
// construction.
type TextureArray struct {
	backend Backend
	units   *UnitAllocator

	id     uint32
	width  int
	height int
	depth  int
	unit   int

	claimed   []bool
	destroyed bool
}

// NewTextureArray validates the requested size against driver limits,
// acquires a texture unit, and allocates depth empty RGBA8 slices.
func NewTextureArray(backend Backend, units *UnitAllocator, width, height, depth int) (*TextureArray, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, fmt.Errorf("gfx: texture array %dx%dx%d: dimensions must be positive", width, height, depth)
	}
	lim := backend.Limits()
	if width > lim.MaxTextureSize || height > lim.MaxTextureSize {
		return nil, fmt.Errorf("%w: %dx%d, driver max %d", ErrTextureTooLarge, width, height, lim.MaxTextureSize)
	}
	if depth > lim.MaxArrayLayers {
		return nil, fmt.Errorf("%w: %d, driver max %d", ErrTooManyLayers, depth, lim.MaxArrayLayers)
	}

	unit, err := units.Acquire()
	if err != nil {
		return nil, err
	}
	backend.ActiveTexture(unit)
	id := backend.CreateTextureArray(width, height, depth)

	logger().Debug("texture array created",
		"id", id, "unit", unit, "width", width, "height", height, "depth", depth)

	return &TextureArray{
		backend: backend,
		units:   units,
		id:      id,
		width:   width,
		height:  height,
		depth:   depth,
		unit:    unit,
		claimed: make([]bool, depth),
	}, nil
}

// Bind makes the array current on its assigned unit.
func (t *TextureArray) Bind() {
	t.backend.ActiveTexture(t.unit)
	t.backend.BindTextureArray(t.id)
}

// Destroy releases the GPU storage and returns the texture unit to the
// allocator. Safe to call more than once.
func (t *TextureArray) Destroy() {
	if t.destroyed {
		return
	}
	t.backend.DeleteTexture(t.id)
	t.units.Release(t.unit)
	t.destroyed = true
	logger().Debug("texture array destroyed", "id", t.id, "unit", t.unit)
}

// Layer claims depth slice z and returns an AtlasLayer addressing it. Each
// slice is handed out at most once per array.
func (t *TextureArray) Layer(z int) (*AtlasLayer, error) {
	if z < 0 || z >= t.depth {
		return nil, fmt.Errorf("%w: %d of %d", ErrLayerOutOfRange, z, t.depth)
	}
	if t.claimed[z] {
		return nil, fmt.Errorf("%w: z-offset %d", ErrLayerTaken, z)
	}
	t.claimed[z] = true
	return &AtlasLayer{array: t, z: z}, nil
}

func (t *TextureArray) ID() uint32  { return t.id }
func (t *TextureArray) Width() int  { return t.width }
func (t *TextureArray) Height() int { return t.height }
func (t *TextureArray) Depth() int  { return t.depth }
func (t *TextureArray) Unit() int   { return t.unit }
