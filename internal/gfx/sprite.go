package gfx

// Sprite is the unit of renderable work: previously uploaded quad geometry
// paired with the atlas layer that textures it. It owns neither; a sprite
// must not outlive its batch or its layer.
type Sprite struct {
	Desc  DrawDescriptor
	Layer *AtlasLayer
}

func NewSprite(desc DrawDescriptor, layer *AtlasLayer) Sprite {
	return Sprite{Desc: desc, Layer: layer}
}
