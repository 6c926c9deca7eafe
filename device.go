package render

import "github.com/go-gl/mathgl/mgl32"

// TextureWrap selects the sampling behavior outside [0,1] texture
// coordinates.
type TextureWrap int

const (
	WrapRepeat TextureWrap = iota
	WrapClampToEdge
)

// Image is a decoded RGBA texture image as delivered by the asset layer:
// 4 bytes per pixel, rows already vertically flipped to match the GL
// texture coordinate convention.
type Image struct {
	Width  int
	Height int
	Pixels []uint8
}

// PowerOfTwo reports whether both dimensions are powers of two. Textures
// with other dimensions still upload, but mipmapping quality suffers on
// some drivers, so the registry warns about them.
func (im *Image) PowerOfTwo() bool {
	w, h := im.Width, im.Height
	return w > 0 && h > 0 && w&(w-1) == 0 && h&(h-1) == 0
}

// MeshAttribute is one decoded, flat vertex attribute array (positions,
// texture coordinates, normals) as delivered by the asset layer.
type MeshAttribute struct {
	// Slot is the shader attribute location the data binds to.
	Slot uint32
	// Components is the number of floats per vertex: 3 for positions and
	// normals, 2 for texture coordinates.
	Components int32
	Data       []float32
}

// VertexCount returns the number of vertices the attribute describes.
func (a MeshAttribute) VertexCount() int {
	if a.Components <= 0 {
		return 0
	}
	return len(a.Data) / int(a.Components)
}

// Device is the GPU command sink. The core never reads pixel data back
// and never sees raw driver identifiers except through the typed handles
// it issued itself; everything below the interface is driver territory.
//
// backend/opengl provides the real implementation. Tests substitute a
// mock, so none of the pipeline, registry, or scene logic needs a GL
// context.
type Device interface {
	// Shader stages.
	CreateStage(kind StageKind) StageHandle
	StageSource(stage StageHandle, src string)
	CompileStage(stage StageHandle) bool
	StageInfoLog(stage StageHandle) string
	DeleteStage(stage StageHandle)

	// Programs.
	CreateProgram() ProgramHandle
	AttachStage(program ProgramHandle, stage StageHandle)
	LinkProgram(program ProgramHandle) bool
	ValidateProgram(program ProgramHandle) bool
	ProgramInfoLog(program ProgramHandle) string
	UniformLocation(program ProgramHandle, name string) UniformHandle
	UseProgram(program ProgramHandle)
	DeleteProgram(program ProgramHandle)

	// Geometry upload.
	CreateVertexArray() uint32
	CreateBuffer(data []float32) uint32
	AttachBuffer(vao, vbo, slot uint32, components int32)
	BindVertexArray(vao uint32)
	DeleteBuffer(vbo uint32)
	DeleteVertexArray(vao uint32)

	// Textures.
	CreateTexture(img *Image, wrap TextureWrap) TextureHandle
	BindTexture(tex TextureHandle)
	DeleteTexture(tex TextureHandle)

	// Per-frame commands. Draw calls are not individually error checked;
	// construction-time validation has already proven the resources
	// coherent.
	SetUniformMat4(u UniformHandle, m mgl32.Mat4)
	SetUniformVec3(u UniformHandle, v mgl32.Vec3)
	SetUniformFloat(u UniformHandle, f float32)
	DrawTriangles(first, count int32)
	Clear(r, g, b, a float32)
	Viewport(width, height int)
}
