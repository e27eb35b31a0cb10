package gfx

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for GL buffer offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

func floatPtr(s []float32) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return gl.Ptr(s)
}

func uint32Ptr(s []uint32) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return gl.Ptr(s)
}

// GLBackend issues calls against the current OpenGL 4.1 core context. The
// context must be current on the calling thread. Driver limits are fetched
// once and cached.
type GLBackend struct {
	limits  Limits
	queried bool
}

func NewGLBackend() *GLBackend { return &GLBackend{} }

func (b *GLBackend) Limits() Limits {
	if !b.queried {
		var v int32
		gl.GetIntegerv(gl.MAX_TEXTURE_IMAGE_UNITS, &v)
		b.limits.MaxTextureUnits = int(v)
		gl.GetIntegerv(gl.MAX_3D_TEXTURE_SIZE, &v)
		b.limits.MaxTextureSize = int(v)
		gl.GetIntegerv(gl.MAX_ARRAY_TEXTURE_LAYERS, &v)
		b.limits.MaxArrayLayers = int(v)
		b.queried = true
	}
	return b.limits
}

func (b *GLBackend) CreateTextureArray(width, height, depth int) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, id)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	// depth empty RGBA8 slices; layer contents arrive via UploadSubImage.
	gl.TexImage3D(gl.TEXTURE_2D_ARRAY, 0, gl.RGBA8,
		int32(width), int32(height), int32(depth), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, 0)
	return id
}

func (b *GLBackend) DeleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}

func (b *GLBackend) ActiveTexture(unit int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
}

func (b *GLBackend) BindTextureArray(id uint32) {
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, id)
}

func (b *GLBackend) UploadSubImage(x, y, layer, width, height int, format PixelFormat, src SubImage) {
	glFormat := uint32(gl.RGBA)
	if format == FormatRGB {
		glFormat = gl.RGB
	}
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(src.RowLength))
	gl.PixelStorei(gl.UNPACK_SKIP_PIXELS, int32(src.SkipPixels))
	gl.PixelStorei(gl.UNPACK_SKIP_ROWS, int32(src.SkipRows))
	gl.TexSubImage3D(gl.TEXTURE_2D_ARRAY, 0,
		int32(x), int32(y), int32(layer),
		int32(width), int32(height), 1,
		glFormat, gl.UNSIGNED_BYTE, gl.Ptr(src.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.PixelStorei(gl.UNPACK_SKIP_PIXELS, 0)
	gl.PixelStorei(gl.UNPACK_SKIP_ROWS, 0)
}

func (b *GLBackend) CreateQuadBuffers() QuadBuffers {
	var buf QuadBuffers
	gl.GenVertexArrays(1, &buf.VAO)
	gl.GenBuffers(1, &buf.PosVBO)
	gl.GenBuffers(1, &buf.UVVBO)
	gl.GenBuffers(1, &buf.IndexVBO)
	return buf
}

func (b *GLBackend) DeleteQuadBuffers(buf QuadBuffers) {
	for _, id := range []uint32{buf.PosVBO, buf.UVVBO, buf.IndexVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	if buf.VAO != 0 {
		gl.DeleteVertexArrays(1, &buf.VAO)
	}
}

func (b *GLBackend) UploadQuadBuffers(buf QuadBuffers, positions, uvs []float32, indices []uint32) {
	var prevVAO int32
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &prevVAO)

	gl.BindVertexArray(buf.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, buf.PosVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, floatPtr(positions), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	gl.BindBuffer(gl.ARRAY_BUFFER, buf.UVVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(uvs)*4, floatPtr(uvs), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 2*4, glOffset(0))

	// The index buffer stays attached to the VAO; do not unbind it here.
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.IndexVBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, uint32Ptr(indices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(uint32(prevVAO))
}

func (b *GLBackend) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (b *GLBackend) DrawElements(mode DrawMode, count, byteOffset int) {
	// Triangles is the only DrawMode the batcher emits today.
	gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, glOffset(byteOffset))
}

func (b *GLBackend) CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}

func (b *GLBackend) DeleteProgram(id uint32) {
	gl.DeleteProgram(id)
}

func (b *GLBackend) UseProgram(id uint32) {
	gl.UseProgram(id)
}

func (b *GLBackend) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (b *GLBackend) Uniform1i(loc, v int32) {
	gl.Uniform1i(loc, v)
}

func (b *GLBackend) Uniform2f(loc int32, x, y float32) {
	gl.Uniform2f(loc, x, y)
}

func (b *GLBackend) UniformMatrix4(loc int32, m [16]float32) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}
