package gfx

// fakeBackend records every GPU call so tests can assert on call counts and
// payloads without a live context. Texture and program ids start at 1; 0 is
// never a valid object id, as in GL.
type fakeBackend struct {
	limits Limits
	calls  map[string]int

	nextTextureID uint32
	nextBufferID  uint32
	nextProgramID uint32
	nextLocation  int32

	activeUnit   int
	boundTexture uint32
	boundVAO     uint32

	locations map[string]int32 // uniform name -> location
	locNames  map[int32]string

	subUploads    []fakeSubUpload
	bufferUploads []fakeBufferUpload
	draws         []fakeDraw
	intUniforms   map[string][]int32
	vec2Uniforms  map[string][][2]float32
	mat4Uniforms  map[string][][16]float32

	compileErr error
}

type fakeSubUpload struct {
	x, y, layer, w, h int
	format            PixelFormat
	src               SubImage
}

type fakeBufferUpload struct {
	buf       QuadBuffers
	positions []float32
	uvs       []float32
	indices   []uint32
}

type fakeDraw struct {
	mode   DrawMode
	count  int
	offset int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		limits:       Limits{MaxTextureUnits: 16, MaxTextureSize: 4096, MaxArrayLayers: 256},
		calls:        make(map[string]int),
		locations:    make(map[string]int32),
		locNames:     make(map[int32]string),
		intUniforms:  make(map[string][]int32),
		vec2Uniforms: make(map[string][][2]float32),
		mat4Uniforms: make(map[string][][16]float32),
	}
}

func (f *fakeBackend) Limits() Limits {
	f.calls["Limits"]++
	return f.limits
}

func (f *fakeBackend) CreateTextureArray(width, height, depth int) uint32 {
	f.calls["CreateTextureArray"]++
	f.nextTextureID++
	return f.nextTextureID
}

func (f *fakeBackend) DeleteTexture(id uint32) { f.calls["DeleteTexture"]++ }

func (f *fakeBackend) ActiveTexture(unit int) {
	f.calls["ActiveTexture"]++
	f.activeUnit = unit
}

func (f *fakeBackend) BindTextureArray(id uint32) {
	f.calls["BindTextureArray"]++
	f.boundTexture = id
}

func (f *fakeBackend) UploadSubImage(x, y, layer, width, height int, format PixelFormat, src SubImage) {
	f.calls["UploadSubImage"]++
	f.subUploads = append(f.subUploads, fakeSubUpload{x, y, layer, width, height, format, src})
}

func (f *fakeBackend) CreateQuadBuffers() QuadBuffers {
	f.calls["CreateQuadBuffers"]++
	f.nextBufferID += 4
	return QuadBuffers{
		VAO:      f.nextBufferID - 3,
		PosVBO:   f.nextBufferID - 2,
		UVVBO:    f.nextBufferID - 1,
		IndexVBO: f.nextBufferID,
	}
}

func (f *fakeBackend) DeleteQuadBuffers(buf QuadBuffers) { f.calls["DeleteQuadBuffers"]++ }

func (f *fakeBackend) UploadQuadBuffers(buf QuadBuffers, positions, uvs []float32, indices []uint32) {
	f.calls["UploadQuadBuffers"]++
	up := fakeBufferUpload{
		buf:       buf,
		positions: append([]float32(nil), positions...),
		uvs:       append([]float32(nil), uvs...),
		indices:   append([]uint32(nil), indices...),
	}
	f.bufferUploads = append(f.bufferUploads, up)
}

func (f *fakeBackend) BindVertexArray(vao uint32) {
	f.calls["BindVertexArray"]++
	f.boundVAO = vao
}

func (f *fakeBackend) DrawElements(mode DrawMode, count, byteOffset int) {
	f.calls["DrawElements"]++
	f.draws = append(f.draws, fakeDraw{mode, count, byteOffset})
}

func (f *fakeBackend) CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	f.calls["CompileProgram"]++
	if f.compileErr != nil {
		return 0, f.compileErr
	}
	f.nextProgramID++
	return f.nextProgramID, nil
}

func (f *fakeBackend) DeleteProgram(id uint32) { f.calls["DeleteProgram"]++ }

func (f *fakeBackend) UseProgram(id uint32) { f.calls["UseProgram"]++ }

func (f *fakeBackend) UniformLocation(program uint32, name string) int32 {
	f.calls["UniformLocation"]++
	if loc, ok := f.locations[name]; ok {
		return loc
	}
	loc := f.nextLocation
	f.nextLocation++
	f.locations[name] = loc
	f.locNames[loc] = name
	return loc
}

func (f *fakeBackend) Uniform1i(loc, v int32) {
	f.calls["Uniform1i"]++
	name := f.locNames[loc]
	f.intUniforms[name] = append(f.intUniforms[name], v)
}

func (f *fakeBackend) Uniform2f(loc int32, x, y float32) {
	f.calls["Uniform2f"]++
	name := f.locNames[loc]
	f.vec2Uniforms[name] = append(f.vec2Uniforms[name], [2]float32{x, y})
}

func (f *fakeBackend) UniformMatrix4(loc int32, m [16]float32) {
	f.calls["UniformMatrix4"]++
	name := f.locNames[loc]
	f.mat4Uniforms[name] = append(f.mat4Uniforms[name], m)
}

// lastInt returns the most recent value uploaded for a named int uniform.
func (f *fakeBackend) lastInt(name string) (int32, bool) {
	vs := f.intUniforms[name]
	if len(vs) == 0 {
		return 0, false
	}
	return vs[len(vs)-1], true
}
