// Package opengl provides the OpenGL 4.1 backend for the render package:
// the Device implementation that issues real driver calls, and the GLFW
// window wrapper the frame loop runs against.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/triforces-demo/render"
)

// Anisotropic filtering extension constants, not exposed by the core 4.1
// bindings.
const (
	glTextureMaxAnisotropyExt    = 0x84FE
	glMaxTextureMaxAnisotropyExt = 0x84FF
)

// Device implements render.Device over OpenGL 4.1 core. All methods must
// run on the thread that owns the GL context.
type Device struct {
	log *zap.Logger
}

// NewDevice creates an OpenGL device. A nil logger disables diagnostics.
func NewDevice(log *zap.Logger) *Device {
	if log == nil {
		log = zap.NewNop()
	}
	return &Device{log: log}
}

// Init loads the OpenGL function pointers, logs the renderer and context
// capabilities, and sets the fixed render state the demo uses: depth
// testing, back-face culling, counter-clockwise winding. Call once after
// the context is current.
func (d *Device) Init(width, height int) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer := gl.GoStr(gl.GetString(gl.RENDERER))
	version := gl.GoStr(gl.GetString(gl.VERSION))
	d.log.Info("OpenGL context ready",
		zap.String("renderer", renderer),
		zap.String("version", version))
	d.logContextParams()

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Viewport(0, 0, int32(width), int32(height))
	return nil
}

// logContextParams records the GL capability limits of the local machine.
// Handy when debugging OpenGL problems on other people's hardware.
func (d *Device) logContextParams() {
	intParams := []struct {
		name string
		pn   uint32
	}{
		{"GL_MAX_COMBINED_TEXTURE_IMAGE_UNITS", gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS},
		{"GL_MAX_CUBE_MAP_TEXTURE_SIZE", gl.MAX_CUBE_MAP_TEXTURE_SIZE},
		{"GL_MAX_DRAW_BUFFERS", gl.MAX_DRAW_BUFFERS},
		{"GL_MAX_FRAGMENT_UNIFORM_COMPONENTS", gl.MAX_FRAGMENT_UNIFORM_COMPONENTS},
		{"GL_MAX_TEXTURE_IMAGE_UNITS", gl.MAX_TEXTURE_IMAGE_UNITS},
		{"GL_MAX_TEXTURE_SIZE", gl.MAX_TEXTURE_SIZE},
		{"GL_MAX_VERTEX_ATTRIBS", gl.MAX_VERTEX_ATTRIBS},
		{"GL_MAX_VERTEX_TEXTURE_IMAGE_UNITS", gl.MAX_VERTEX_TEXTURE_IMAGE_UNITS},
		{"GL_MAX_VERTEX_UNIFORM_COMPONENTS", gl.MAX_VERTEX_UNIFORM_COMPONENTS},
	}
	fields := make([]zap.Field, 0, len(intParams)+2)
	for _, p := range intParams {
		var v int32
		gl.GetIntegerv(p.pn, &v)
		fields = append(fields, zap.Int32(p.name, v))
	}

	var dims [2]int32
	gl.GetIntegerv(gl.MAX_VIEWPORT_DIMS, &dims[0])
	fields = append(fields, zap.Int32s("GL_MAX_VIEWPORT_DIMS", dims[:]))

	var stereo bool
	gl.GetBooleanv(gl.STEREO, &stereo)
	fields = append(fields, zap.Bool("GL_STEREO", stereo))

	d.log.Debug("GL context params", fields...)
}

func stageEnum(kind render.StageKind) uint32 {
	switch kind {
	case render.VertexStage:
		return gl.VERTEX_SHADER
	case render.FragmentStage:
		return gl.FRAGMENT_SHADER
	}
	panic(fmt.Sprintf("opengl: unknown stage kind %d", kind))
}

// CreateStage allocates a driver-side shader stage object.
func (d *Device) CreateStage(kind render.StageKind) render.StageHandle {
	return render.StageHandle(gl.CreateShader(stageEnum(kind)))
}

// StageSource uploads source text for a stage.
func (d *Device) StageSource(stage render.StageHandle, src string) {
	csource, free := gl.Strs(src + "\x00")
	gl.ShaderSource(uint32(stage), 1, csource, nil)
	free()
}

// CompileStage compiles a stage and reports the driver's compile status.
func (d *Device) CompileStage(stage render.StageHandle) bool {
	gl.CompileShader(uint32(stage))
	var status int32
	gl.GetShaderiv(uint32(stage), gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

// StageInfoLog returns the driver's info log for a stage, verbatim.
func (d *Device) StageInfoLog(stage render.StageHandle) string {
	var logLength int32
	gl.GetShaderiv(uint32(stage), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	buf := make([]byte, logLength+1)
	gl.GetShaderInfoLog(uint32(stage), logLength, nil, &buf[0])
	return string(buf[:logLength])
}

// DeleteStage frees a stage object.
func (d *Device) DeleteStage(stage render.StageHandle) {
	gl.DeleteShader(uint32(stage))
}

// CreateProgram allocates a driver-side program object.
func (d *Device) CreateProgram() render.ProgramHandle {
	return render.ProgramHandle(gl.CreateProgram())
}

// AttachStage attaches a compiled stage to a program.
func (d *Device) AttachStage(program render.ProgramHandle, stage render.StageHandle) {
	gl.AttachShader(uint32(program), uint32(stage))
}

// LinkProgram links a program and reports the driver's link status.
func (d *Device) LinkProgram(program render.ProgramHandle) bool {
	gl.LinkProgram(uint32(program))
	var status int32
	gl.GetProgramiv(uint32(program), gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

// ValidateProgram validates a linked program and reports the driver's
// validate status.
func (d *Device) ValidateProgram(program render.ProgramHandle) bool {
	gl.ValidateProgram(uint32(program))
	var status int32
	gl.GetProgramiv(uint32(program), gl.VALIDATE_STATUS, &status)
	return status == gl.TRUE
}

// ProgramInfoLog returns the driver's info log for a program, verbatim.
func (d *Device) ProgramInfoLog(program render.ProgramHandle) string {
	var logLength int32
	gl.GetProgramiv(uint32(program), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	buf := make([]byte, logLength+1)
	gl.GetProgramInfoLog(uint32(program), logLength, nil, &buf[0])
	return string(buf[:logLength])
}

// UniformLocation queries a uniform location by name. Negative means the
// driver does not know the name for this program.
func (d *Device) UniformLocation(program render.ProgramHandle, name string) render.UniformHandle {
	return render.UniformHandle(gl.GetUniformLocation(uint32(program), gl.Str(name+"\x00")))
}

// UseProgram makes a program current.
func (d *Device) UseProgram(program render.ProgramHandle) {
	gl.UseProgram(uint32(program))
}

// DeleteProgram frees a program object.
func (d *Device) DeleteProgram(program render.ProgramHandle) {
	gl.DeleteProgram(uint32(program))
}

// CreateVertexArray allocates a vertex array object.
func (d *Device) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

// CreateBuffer uploads a flat float array into a new static vertex
// buffer.
func (d *Device) CreateBuffer(data []float32) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(data), gl.Ptr(data), gl.STATIC_DRAW)
	return vbo
}

// AttachBuffer registers a buffer as a tightly packed float attribute at
// the given slot of a vertex array.
func (d *Device) AttachBuffer(vao, vbo, slot uint32, components int32) {
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.VertexAttribPointerWithOffset(slot, components, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(slot)
}

// BindVertexArray makes a vertex array current.
func (d *Device) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

// DeleteBuffer frees a vertex buffer object.
func (d *Device) DeleteBuffer(vbo uint32) {
	gl.DeleteBuffers(1, &vbo)
}

// DeleteVertexArray frees a vertex array object.
func (d *Device) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func wrapEnum(wrap render.TextureWrap) int32 {
	switch wrap {
	case render.WrapClampToEdge:
		return gl.CLAMP_TO_EDGE
	default:
		return gl.REPEAT
	}
}

// CreateTexture uploads a decoded RGBA image, generates mipmaps, and
// enables the maximum anisotropic filtering the driver offers.
func (d *Device) CreateTexture(img *render.Image, wrap render.TextureWrap) render.TextureHandle {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Width), int32(img.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrapEnum(wrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrapEnum(wrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)

	var maxAniso float32
	gl.GetFloatv(glMaxTextureMaxAnisotropyExt, &maxAniso)
	gl.TexParameterf(gl.TEXTURE_2D, glTextureMaxAnisotropyExt, maxAniso)

	return render.TextureHandle(tex)
}

// BindTexture makes a texture current on unit zero.
func (d *Device) BindTexture(tex render.TextureHandle) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
}

// DeleteTexture frees a texture object.
func (d *Device) DeleteTexture(tex render.TextureHandle) {
	id := uint32(tex)
	gl.DeleteTextures(1, &id)
}

// SetUniformMat4 writes a 4x4 matrix through a resolved uniform handle.
func (d *Device) SetUniformMat4(u render.UniformHandle, m mgl32.Mat4) {
	gl.UniformMatrix4fv(int32(u), 1, false, &m[0])
}

// SetUniformVec3 writes a vec3 through a resolved uniform handle.
func (d *Device) SetUniformVec3(u render.UniformHandle, v mgl32.Vec3) {
	gl.Uniform3f(int32(u), v.X(), v.Y(), v.Z())
}

// SetUniformFloat writes a float through a resolved uniform handle.
func (d *Device) SetUniformFloat(u render.UniformHandle, f float32) {
	gl.Uniform1f(int32(u), f)
}

// DrawTriangles issues a non-indexed triangle draw from the current
// vertex array.
func (d *Device) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

// Clear clears the color and depth buffers.
func (d *Device) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Viewport resets the viewport to the given framebuffer size.
func (d *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}
