package render

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Scene is the entity-resource binding table: parallel maps keyed by
// EntityID joining each entity to its shader program, texture, geometry
// buffers, and model transform. Binding is idempotent; the last write
// wins. An entity participates in the frame loop only once all four
// bindings are present.
//
// The scene holds handle values, not ownership: it must never outlive the
// Registry that issued them.
type Scene struct {
	programs   map[EntityID]*ShaderProgram
	textures   map[EntityID]TextureHandle
	meshes     map[EntityID]meshBinding
	transforms map[EntityID]mgl32.Mat4
}

type meshBinding struct {
	handles     []BufferHandle
	vertexCount int32
}

// RenderItem is one ready entity's complete view for a single frame.
type RenderItem struct {
	ID          EntityID
	Program     *ShaderProgram
	Texture     TextureHandle
	Buffers     []BufferHandle
	VertexCount int32
	Transform   mgl32.Mat4
}

// NewScene creates an empty binding table.
func NewScene() *Scene {
	return &Scene{
		programs:   make(map[EntityID]*ShaderProgram),
		textures:   make(map[EntityID]TextureHandle),
		meshes:     make(map[EntityID]meshBinding),
		transforms: make(map[EntityID]mgl32.Mat4),
	}
}

// BindProgram associates a registered shader program with an entity.
func (s *Scene) BindProgram(id EntityID, sp *ShaderProgram) {
	s.programs[id] = sp
}

// BindBuffers associates an entity's ordered geometry buffers and vertex
// count with it. The first handle's VAO is the one bound at draw time.
func (s *Scene) BindBuffers(id EntityID, handles []BufferHandle, vertexCount int32) {
	s.meshes[id] = meshBinding{handles: handles, vertexCount: vertexCount}
}

// BindTexture associates a texture with an entity.
func (s *Scene) BindTexture(id EntityID, tex TextureHandle) {
	s.textures[id] = tex
}

// SetTransform sets an entity's model transform. Called once during
// construction and again whenever the entity moves.
func (s *Scene) SetTransform(id EntityID, m mgl32.Mat4) {
	s.transforms[id] = m
}

// Transform returns an entity's current model transform.
func (s *Scene) Transform(id EntityID) (mgl32.Mat4, bool) {
	m, ok := s.transforms[id]
	return m, ok
}

// Ready reports whether all four bindings are present for an entity.
func (s *Scene) Ready(id EntityID) bool {
	if _, ok := s.programs[id]; !ok {
		return false
	}
	if _, ok := s.textures[id]; !ok {
		return false
	}
	if _, ok := s.meshes[id]; !ok {
		return false
	}
	_, ok := s.transforms[id]
	return ok
}

// ReadyCount returns the number of entities eligible for drawing.
func (s *Scene) ReadyCount() int {
	n := 0
	for id := range s.programs {
		if s.Ready(id) {
			n++
		}
	}
	return n
}

// ForEachReady visits every fully bound entity in ascending EntityID
// order, which keeps the draw order stable across frames. Partially
// bound entities are skipped; completing their bindings makes them
// visible on the next call.
func (s *Scene) ForEachReady(fn func(item RenderItem)) {
	ids := make([]EntityID, 0, len(s.programs))
	for id := range s.programs {
		if s.Ready(id) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	for _, id := range ids {
		mesh := s.meshes[id]
		fn(RenderItem{
			ID:          id,
			Program:     s.programs[id],
			Texture:     s.textures[id],
			Buffers:     mesh.handles,
			VertexCount: mesh.vertexCount,
			Transform:   s.transforms[id],
		})
	}
}

// Remove drops every binding for an entity.
func (s *Scene) Remove(id EntityID) {
	delete(s.programs, id)
	delete(s.textures, id)
	delete(s.meshes, id)
	delete(s.transforms, id)
}
