package gfx

import "github.com/go-gl/mathgl/mgl32"

// BatchRenderer consumes (sprite, position, size) draw requests and issues
// indexed draw calls while skipping redundant GPU state changes. The cached
// triple (texture array id, texture unit, layer z-offset) is compared per
// draw; binds and uniform uploads dominate the cost of the comparison. The
// cache is valid within a single context and only across draws issued
// through this renderer.
type BatchRenderer struct {
	backend Backend
	shader  *Shader

	lastTextureID uint32
	lastUnit      int
	lastZOffset   int
	lastValid     bool
}

// NewBatchRenderer derives an orthographic projection for the scene size
// (origin top-left, depth range [-0.1, 0.1]) and uploads it once.
func NewBatchRenderer(backend Backend, shader *Shader, sceneWidth, sceneHeight int) *BatchRenderer {
	shader.Use()
	proj := mgl32.Ortho(0, float32(sceneWidth), float32(sceneHeight), 0, -0.1, 0.1)
	shader.SetMat4(UniformProjection, proj)
	return &BatchRenderer{backend: backend, shader: shader}
}

// DrawSprite draws one sprite at pos with the given size. The texture bind,
// unit uniform, and z-offset uniform are reissued only when they differ from
// the previous draw; the first draw after construction or InvalidateCache
// issues all three. Position and size are uploaded every call.
func (r *BatchRenderer) DrawSprite(sprite Sprite, pos, size mgl32.Vec2) {
	array := sprite.Layer.Array()
	z := sprite.Layer.ZOffset()

	if !r.lastValid || array.ID() != r.lastTextureID {
		array.Bind()
		r.lastTextureID = array.ID()
	}
	if !r.lastValid || array.Unit() != r.lastUnit {
		r.shader.SetInt(UniformTextureUnit, int32(array.Unit()))
		r.lastUnit = array.Unit()
	}
	if !r.lastValid || z != r.lastZOffset {
		r.shader.SetInt(UniformLayerZOffset, int32(z))
		r.lastZOffset = z
	}
	r.lastValid = true

	r.shader.SetVec2(UniformModelPos, pos)
	r.shader.SetVec2(UniformModelSize, size)
	r.backend.DrawElements(sprite.Desc.Mode, sprite.Desc.Count, sprite.Desc.Offset)
}

// InvalidateCache forces the next draw to reissue the texture bind and both
// cached uniforms. Call it after changing texture or program bindings
// outside the renderer.
func (r *BatchRenderer) InvalidateCache() { r.lastValid = false }
