// Package gfx is a minimal 2D rendering substrate: texture-array atlases,
// batched quad geometry, and a sprite renderer that elides redundant GPU
// state changes. All GPU access goes through the Backend interface; the
// production implementation is GLBackend.
//
// The package is single-threaded by design: every call must happen on the
// thread that owns the graphics context.
package gfx

// Limits holds the driver-reported capabilities the substrate validates
// against before allocating GPU resources.
type Limits struct {
	MaxTextureUnits int // texture image units usable from the fragment shader
	MaxTextureSize  int // max width/height of a 3D or array texture
	MaxArrayLayers  int // max depth of an array texture
}

// PixelFormat selects the client-side pixel layout of a sub-image upload.
type PixelFormat int

const (
	FormatRGB  PixelFormat = 3
	FormatRGBA PixelFormat = 4
)

// DrawMode is the primitive topology of an indexed draw call.
type DrawMode int

// Triangles is the only mode the quad batcher emits.
const Triangles DrawMode = iota

// SubImage describes a client pixel rectangle handed to UploadSubImage. The
// unpack fields select a crop out of a larger source image; SkipRows counts
// from the bottom row of the source (see AtlasLayer.Place).
type SubImage struct {
	Pix        []byte
	RowLength  int // full width of the source image, in pixels
	SkipPixels int // columns skipped from the left edge
	SkipRows   int // rows skipped, bottom-up
}

// QuadBuffers names the GPU objects backing one geometry batch: a vertex
// array plus position, texture-coordinate, and index buffers.
type QuadBuffers struct {
	VAO      uint32
	PosVBO   uint32
	UVVBO    uint32
	IndexVBO uint32
}

// Backend is the seam between the substrate and the GPU driver. Tests
// substitute a recording fake; production code uses GLBackend.
type Backend interface {
	Limits() Limits

	// Texture arrays.
	CreateTextureArray(width, height, depth int) uint32
	DeleteTexture(id uint32)
	ActiveTexture(unit int)
	BindTextureArray(id uint32)
	UploadSubImage(x, y, layer, width, height int, format PixelFormat, src SubImage)

	// Quad geometry.
	CreateQuadBuffers() QuadBuffers
	DeleteQuadBuffers(buf QuadBuffers)
	UploadQuadBuffers(buf QuadBuffers, positions, uvs []float32, indices []uint32)
	BindVertexArray(vao uint32)
	DrawElements(mode DrawMode, count, byteOffset int)

	// Shader programs.
	CompileProgram(vertexSrc, fragmentSrc string) (uint32, error)
	DeleteProgram(id uint32)
	UseProgram(id uint32)
	UniformLocation(program uint32, name string) int32
	Uniform1i(loc, v int32)
	Uniform2f(loc int32, x, y float32)
	UniformMatrix4(loc int32, m [16]float32)
}
