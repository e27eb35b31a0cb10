package gfx

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderCompileErrorPropagates(t *testing.T) {
	b := newFakeBackend()
	b.compileErr = errors.New("syntax error at line 3")

	_, err := NewShader(b, "bad", "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syntax error")
}

func TestShaderResolvesLocationsLazily(t *testing.T) {
	b := newFakeBackend()
	sh, err := NewShader(b, "vertex", "fragment")
	require.NoError(t, err)
	assert.Zero(t, b.calls["UniformLocation"], "no lookups before first set")

	sh.SetInt(UniformTextureUnit, 3)
	sh.SetInt(UniformTextureUnit, 4)
	sh.SetInt(UniformLayerZOffset, 0)

	assert.Equal(t, 2, b.calls["UniformLocation"], "one lookup per distinct name")
	assert.Equal(t, []int32{3, 4}, b.intUniforms[UniformTextureUnit])
}

func TestShaderSetVec2AndMat4(t *testing.T) {
	b := newFakeBackend()
	sh, err := NewShader(b, "vertex", "fragment")
	require.NoError(t, err)

	sh.SetVec2(UniformModelPos, mgl32.Vec2{3, 7})
	require.Len(t, b.vec2Uniforms[UniformModelPos], 1)
	assert.Equal(t, [2]float32{3, 7}, b.vec2Uniforms[UniformModelPos][0])

	m := mgl32.Ident4()
	sh.SetMat4(UniformProjection, m)
	require.Len(t, b.mat4Uniforms[UniformProjection], 1)
	assert.Equal(t, [16]float32(m), b.mat4Uniforms[UniformProjection][0])
}

func TestShaderUseAndDestroy(t *testing.T) {
	b := newFakeBackend()
	sh, err := NewShader(b, "vertex", "fragment")
	require.NoError(t, err)

	sh.Use()
	assert.Equal(t, 1, b.calls["UseProgram"])
	sh.Destroy()
	assert.Equal(t, 1, b.calls["DeleteProgram"])
}
