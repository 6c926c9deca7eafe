package render_test

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/triforces-demo/render"
)

// mockDevice implements render.Device without a GPU context. Stage and
// program handles are issued sequentially; failure modes are configured
// per test.
type mockDevice struct {
	nextStage   uint32
	nextProgram uint32
	nextBuffer  uint32
	nextVAO     uint32
	nextTexture uint32

	// Failure configuration.
	failCompile map[render.StageKind]string // stage kind -> driver log
	linkLog     string                      // non-empty -> link fails with this log
	validateBad bool                        // validation reports failure

	// Uniform locations by name; missing names resolve to -1.
	uniforms map[string]int32

	// Observed calls.
	sources         map[render.StageHandle]string
	stageKinds      map[render.StageHandle]render.StageKind
	compiledStages  []render.StageHandle
	deletedStages   []render.StageHandle
	attached        map[render.ProgramHandle][]render.StageHandle
	linkedPrograms  []render.ProgramHandle
	deletedPrograms []render.ProgramHandle
	validated       []render.ProgramHandle
	locationQueries int
	usedPrograms    []render.ProgramHandle

	buffers        map[uint32][]float32
	attachments    map[uint32][]bufferAttachment
	deletedBuffers []uint32
	deletedVAOs    []uint32

	textures        []textureUpload
	boundTextures   []render.TextureHandle
	deletedTextures []render.TextureHandle

	mat4Writes  []uniformWrite
	vec3Writes  []uniformWrite
	floatWrites []uniformWrite
	boundVAOs   []uint32
	drawCalls   []drawCall
}

type bufferAttachment struct {
	vbo        uint32
	slot       uint32
	components int32
}

type textureUpload struct {
	img  *render.Image
	wrap render.TextureWrap
}

type uniformWrite struct {
	loc render.UniformHandle
	m   mgl32.Mat4
	v   mgl32.Vec3
	f   float32
}

type drawCall struct {
	first, count int32
}

func newMockDevice() *mockDevice {
	return &mockDevice{
		failCompile: make(map[render.StageKind]string),
		uniforms: map[string]int32{
			render.UniformModel: 0,
			render.UniformView:  1,
			render.UniformProj:  2,
		},
		sources:     make(map[render.StageHandle]string),
		stageKinds:  make(map[render.StageHandle]render.StageKind),
		attached:    make(map[render.ProgramHandle][]render.StageHandle),
		buffers:     make(map[uint32][]float32),
		attachments: make(map[uint32][]bufferAttachment),
	}
}

func (d *mockDevice) CreateStage(kind render.StageKind) render.StageHandle {
	d.nextStage++
	h := render.StageHandle(d.nextStage)
	d.stageKinds[h] = kind
	return h
}

func (d *mockDevice) StageSource(stage render.StageHandle, src string) {
	d.sources[stage] = src
}

func (d *mockDevice) CompileStage(stage render.StageHandle) bool {
	d.compiledStages = append(d.compiledStages, stage)
	_, fails := d.failCompile[d.stageKinds[stage]]
	return !fails
}

func (d *mockDevice) StageInfoLog(stage render.StageHandle) string {
	return d.failCompile[d.stageKinds[stage]]
}

func (d *mockDevice) DeleteStage(stage render.StageHandle) {
	d.deletedStages = append(d.deletedStages, stage)
}

func (d *mockDevice) CreateProgram() render.ProgramHandle {
	d.nextProgram++
	return render.ProgramHandle(d.nextProgram)
}

func (d *mockDevice) AttachStage(program render.ProgramHandle, stage render.StageHandle) {
	d.attached[program] = append(d.attached[program], stage)
}

func (d *mockDevice) LinkProgram(program render.ProgramHandle) bool {
	d.linkedPrograms = append(d.linkedPrograms, program)
	return d.linkLog == ""
}

func (d *mockDevice) ValidateProgram(program render.ProgramHandle) bool {
	d.validated = append(d.validated, program)
	return !d.validateBad
}

func (d *mockDevice) ProgramInfoLog(program render.ProgramHandle) string {
	return d.linkLog
}

func (d *mockDevice) UniformLocation(program render.ProgramHandle, name string) render.UniformHandle {
	d.locationQueries++
	loc, ok := d.uniforms[name]
	if !ok {
		return render.UniformHandle(-1)
	}
	return render.UniformHandle(loc)
}

func (d *mockDevice) UseProgram(program render.ProgramHandle) {
	d.usedPrograms = append(d.usedPrograms, program)
}

func (d *mockDevice) DeleteProgram(program render.ProgramHandle) {
	d.deletedPrograms = append(d.deletedPrograms, program)
}

func (d *mockDevice) CreateVertexArray() uint32 {
	d.nextVAO++
	return d.nextVAO
}

func (d *mockDevice) CreateBuffer(data []float32) uint32 {
	d.nextBuffer++
	d.buffers[d.nextBuffer] = data
	return d.nextBuffer
}

func (d *mockDevice) AttachBuffer(vao, vbo, slot uint32, components int32) {
	d.attachments[vao] = append(d.attachments[vao], bufferAttachment{vbo: vbo, slot: slot, components: components})
}

func (d *mockDevice) BindVertexArray(vao uint32) {
	d.boundVAOs = append(d.boundVAOs, vao)
}

func (d *mockDevice) DeleteBuffer(vbo uint32) {
	d.deletedBuffers = append(d.deletedBuffers, vbo)
}

func (d *mockDevice) DeleteVertexArray(vao uint32) {
	d.deletedVAOs = append(d.deletedVAOs, vao)
}

func (d *mockDevice) CreateTexture(img *render.Image, wrap render.TextureWrap) render.TextureHandle {
	d.nextTexture++
	d.textures = append(d.textures, textureUpload{img: img, wrap: wrap})
	return render.TextureHandle(d.nextTexture)
}

func (d *mockDevice) BindTexture(tex render.TextureHandle) {
	d.boundTextures = append(d.boundTextures, tex)
}

func (d *mockDevice) DeleteTexture(tex render.TextureHandle) {
	d.deletedTextures = append(d.deletedTextures, tex)
}

func (d *mockDevice) SetUniformMat4(u render.UniformHandle, m mgl32.Mat4) {
	d.mat4Writes = append(d.mat4Writes, uniformWrite{loc: u, m: m})
}

func (d *mockDevice) SetUniformVec3(u render.UniformHandle, v mgl32.Vec3) {
	d.vec3Writes = append(d.vec3Writes, uniformWrite{loc: u, v: v})
}

func (d *mockDevice) SetUniformFloat(u render.UniformHandle, f float32) {
	d.floatWrites = append(d.floatWrites, uniformWrite{loc: u, f: f})
}

func (d *mockDevice) DrawTriangles(first, count int32) {
	d.drawCalls = append(d.drawCalls, drawCall{first: first, count: count})
}

func (d *mockDevice) Clear(r, g, b, a float32) {}

func (d *mockDevice) Viewport(width, height int) {}

// Shared test shader sources. The mock never parses them, so the
// content only needs to look plausible.
const (
	testVertSrc = "#version 330\nvoid main(){gl_Position = vec4(0.0);}"
	testFragSrc = "#version 330\nvoid main(){}"
)
