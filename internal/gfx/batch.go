package gfx

import "fmt"

// 4 corners of 2 floats each describe one rectangle.
const floatsPerRect = 8

// quadIndexPattern connects the 4 corners of a rectangle into two triangles.
var quadIndexPattern = [6]uint32{0, 1, 3, 1, 2, 3}

// DrawDescriptor identifies a contiguous index range previously uploaded by
// a GeometryBatch: everything an indexed draw call needs. It is purely
// descriptive; its lifetime is bounded by the owning batch's GPU buffers.
type DrawDescriptor struct {
	Mode   DrawMode
	Count  int // number of indices to draw
	Offset int // byte offset into the batch's index buffer
}

// GeometryBatch accumulates textured quads on the CPU and uploads them to
// shared GPU buffers in one shot. The API is two-phase: AddTexturedRects
// until Build, then only Bind. Adding after Build is an error; the buffers
// are a one-shot batch, not incrementally growable.
type GeometryBatch struct {
	backend Backend
	buffers QuadBuffers

	positions []float32
	uvs       []float32
	indices   []uint32

	nextVertexBase uint32
	finalized      bool
	destroyed      bool
}

func NewGeometryBatch(backend Backend) *GeometryBatch {
	return &GeometryBatch{backend: backend, buffers: backend.CreateQuadBuffers()}
}

// AddTexturedRects appends one or more rectangles: positions and uvs are
// flat 2D point sequences, 8 floats per rectangle, equal in length. The
// returned descriptor identifies exactly the indices appended by this call.
func (g *GeometryBatch) AddTexturedRects(positions, uvs []float32) (DrawDescriptor, error) {
	if g.finalized {
		return DrawDescriptor{}, ErrBatchFinalized
	}
	if len(positions) == 0 || len(positions)%floatsPerRect != 0 || len(uvs) != len(positions) {
		return DrawDescriptor{}, fmt.Errorf("%w: %d position floats, %d uv floats",
			ErrInvalidRectData, len(positions), len(uvs))
	}

	rects := len(positions) / floatsPerRect
	offset := len(g.indices) * 4 // uint32 indices

	g.positions = append(g.positions, positions...)
	g.uvs = append(g.uvs, uvs...)
	for i := 0; i < rects; i++ {
		for _, k := range quadIndexPattern {
			g.indices = append(g.indices, g.nextVertexBase+k)
		}
		g.nextVertexBase += 4
	}

	return DrawDescriptor{Mode: Triangles, Count: rects * len(quadIndexPattern), Offset: offset}, nil
}

// Build uploads the accumulated vertex, UV, and index data to the GPU and
// clears the CPU-side storage. The GPU buffers persist independently
// afterward; descriptors returned by earlier AddTexturedRects calls remain
// valid. A second Build uploads empty buffers and is harmless.
func (g *GeometryBatch) Build() {
	g.backend.UploadQuadBuffers(g.buffers, g.positions, g.uvs, g.indices)
	logger().Debug("geometry batch uploaded",
		"vertices", len(g.positions)/2, "indices", len(g.indices))
	g.positions = nil
	g.uvs = nil
	g.indices = nil
	g.finalized = true
}

// Bind makes the batch's vertex array current.
func (g *GeometryBatch) Bind() {
	g.backend.BindVertexArray(g.buffers.VAO)
}

// Destroy frees the GPU buffers. Descriptors referencing this batch become
// dangling. Safe to call more than once.
func (g *GeometryBatch) Destroy() {
	if g.destroyed {
		return
	}
	g.backend.DeleteQuadBuffers(g.buffers)
	g.destroyed = true
}
