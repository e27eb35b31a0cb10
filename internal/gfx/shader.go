package gfx

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniform names shared between the renderer and the sprite shader sources.
// They are a wire contract: any shader used with BatchRenderer must declare
// exactly these names.
const (
	UniformTextureUnit  = "uf_txd_unit"
	UniformLayerZOffset = "uf_txd_array_z_offset"
	UniformModelPos     = "uf_model_pos"
	UniformModelSize    = "uf_model_size"
	UniformProjection   = "uf_projection"
)

// Shader wraps a linked GPU program with name-based uniform access. Uniform
// locations are resolved on first use and kept in an ordinary mutable map.
type Shader struct {
	backend Backend
	id      uint32
	locs    map[string]int32
}

func NewShader(backend Backend, vertexSrc, fragmentSrc string) (*Shader, error) {
	id, err := backend.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("shader: %w", err)
	}
	return &Shader{backend: backend, id: id, locs: make(map[string]int32)}, nil
}

func (s *Shader) ID() uint32 { return s.id }

// Use makes the program current.
func (s *Shader) Use() { s.backend.UseProgram(s.id) }

func (s *Shader) location(name string) int32 {
	if loc, ok := s.locs[name]; ok {
		return loc
	}
	loc := s.backend.UniformLocation(s.id, name)
	if loc < 0 {
		logger().Warn("uniform not found", "name", name, "program", s.id)
	}
	s.locs[name] = loc
	return loc
}

func (s *Shader) SetInt(name string, v int32) {
	s.backend.Uniform1i(s.location(name), v)
}

func (s *Shader) SetVec2(name string, v mgl32.Vec2) {
	s.backend.Uniform2f(s.location(name), v.X(), v.Y())
}

func (s *Shader) SetMat4(name string, m mgl32.Mat4) {
	s.backend.UniformMatrix4(s.location(name), [16]float32(m))
}

// Destroy deletes the program.
func (s *Shader) Destroy() { s.backend.DeleteProgram(s.id) }
