package render

import "fmt"

// StageKind identifies the type of a shader stage.
type StageKind int

const (
	VertexStage StageKind = iota
	FragmentStage
)

// String returns the stage name as it appears in diagnostics.
func (k StageKind) String() string {
	switch k {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return fmt.Sprintf("StageKind(%d)", int(k))
}

// StageHandle identifies a compiled, unlinked shader stage. It is created
// by Pipeline.CompileStage and consumed (freed) by Pipeline.LinkProgram
// after a successful link. A stage that failed to compile keeps its handle
// so diagnostics can reference the driver index.
type StageHandle uint32

// ProgramHandle identifies a linked, validated shader program. Programs
// live for the lifetime of the process; there is no hot reload.
type ProgramHandle uint32

// UniformHandle identifies a uniform location within one program. The
// driver reports missing uniforms as negative locations; a negative handle
// is a hard construction failure, never a silent no-op.
type UniformHandle int32

// Valid reports whether the handle refers to a real uniform location.
func (u UniformHandle) Valid() bool {
	return u >= 0
}

// BufferHandle pairs a vertex buffer object with the vertex array object
// it is attached to. Each mesh attribute owns one VBO; all attributes of
// an entity share a single VAO.
type BufferHandle struct {
	VBO uint32
	VAO uint32
}

// TextureHandle identifies an uploaded 2D texture image.
type TextureHandle uint32

// EntityID is the caller-assigned key for a drawable entity. It is the
// sole join key across the per-entity maps in Scene.
type EntityID uint32

// ShaderProgram couples a linked program with its resolved uniform
// locations. Every uniform an entity sets before its first draw must be
// resolved at construction time; see Registry.RegisterProgram.
type ShaderProgram struct {
	Handle   ProgramHandle
	uniforms map[string]UniformHandle
}

// Uniform returns the resolved handle for a uniform name. Querying a name
// that was not requested at registration is a contract violation and
// panics rather than returning an invalid handle.
func (sp *ShaderProgram) Uniform(name string) UniformHandle {
	u, ok := sp.uniforms[name]
	if !ok {
		panic(fmt.Sprintf("render: uniform %q was not resolved for program %d", name, sp.Handle))
	}
	return u
}

// HasUniform reports whether the program resolved the named uniform.
func (sp *ShaderProgram) HasUniform(name string) bool {
	_, ok := sp.uniforms[name]
	return ok
}

// UniformNames returns the names resolved for this program.
func (sp *ShaderProgram) UniformNames() []string {
	names := make([]string, 0, len(sp.uniforms))
	for name := range sp.uniforms {
		names = append(names, name)
	}
	return names
}

// Canonical names for the matrix uniforms the frame loop writes each
// frame. Programs drawn by DrawFrame must expose all three.
const (
	UniformModel = "model_mat"
	UniformView  = "view_mat"
	UniformProj  = "proj_mat"
)
