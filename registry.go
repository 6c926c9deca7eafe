package render

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Registry issues and owns every GPU resource handle: programs, uniform
// locations, vertex buffers and arrays, and textures. Raw driver
// identifiers never leave it except wrapped in the typed handles it
// returns. Resources live until Close; there is no eviction or reuse.
//
// The registry is not safe for concurrent use. It belongs to the
// frame-loop thread, like everything else in this package.
type Registry struct {
	dev      Device
	log      *zap.Logger
	pipeline *Pipeline

	programs     []ProgramHandle
	buffers      []BufferHandle
	vertexArrays []uint32
	textures     []TextureHandle
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for resource diagnostics.
func WithLogger(log *zap.Logger) RegistryOption {
	return func(r *Registry) { r.log = log }
}

// NewRegistry creates a resource registry over the given device.
func NewRegistry(dev Device, opts ...RegistryOption) *Registry {
	r := &Registry{
		dev: dev,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.pipeline = NewPipeline(dev, r.log)
	return r
}

// Pipeline returns the shader pipeline backing this registry.
func (r *Registry) Pipeline() *Pipeline {
	return r.pipeline
}

// RegisterProgram compiles and links a program from the two shader
// sources, then resolves every requested uniform name. Any name the
// driver cannot locate fails the whole registration with a
// UniformNotFoundError before anything is stored: a program with missing
// uniforms must never reach the binding table.
func (r *Registry) RegisterProgram(vertSrc, fragSrc string, uniforms []string) (*ShaderProgram, error) {
	prog, err := r.pipeline.CreateProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, err
	}

	resolved := make(map[string]UniformHandle, len(uniforms))
	for _, name := range uniforms {
		loc := r.dev.UniformLocation(prog, name)
		if !loc.Valid() {
			r.log.Error("uniform not found",
				zap.Uint32("program", uint32(prog)),
				zap.String("uniform", name))
			return nil, &UniformNotFoundError{Program: prog, Name: name}
		}
		resolved[name] = loc
	}

	r.programs = append(r.programs, prog)
	r.log.Info("registered shader program",
		zap.Uint32("program", uint32(prog)),
		zap.Int("uniforms", len(resolved)))
	return &ShaderProgram{Handle: prog, uniforms: resolved}, nil
}

// CreateMeshBuffers uploads each attribute array into its own vertex
// buffer and binds them all into a single vertex array shared by the
// entity. The returned handles are ordered like the input attributes and
// all carry the shared VAO.
func (r *Registry) CreateMeshBuffers(attrs []MeshAttribute) ([]BufferHandle, error) {
	if len(attrs) == 0 {
		return nil, errors.New("render: mesh has no attributes")
	}
	count := attrs[0].VertexCount()
	for _, attr := range attrs[1:] {
		if attr.VertexCount() != count {
			return nil, fmt.Errorf("render: attribute at slot %d has %d vertices, want %d",
				attr.Slot, attr.VertexCount(), count)
		}
	}

	vao := r.dev.CreateVertexArray()
	r.vertexArrays = append(r.vertexArrays, vao)

	handles := make([]BufferHandle, 0, len(attrs))
	for _, attr := range attrs {
		vbo := r.dev.CreateBuffer(attr.Data)
		r.dev.AttachBuffer(vao, vbo, attr.Slot, attr.Components)
		h := BufferHandle{VBO: vbo, VAO: vao}
		handles = append(handles, h)
		r.buffers = append(r.buffers, h)
	}

	r.log.Info("uploaded mesh buffers",
		zap.Uint32("vao", vao),
		zap.Int("attributes", len(attrs)),
		zap.Int("vertices", count))
	return handles, nil
}

// CreateTexture uploads a decoded RGBA image to the GPU. Non-power-of-two
// dimensions are allowed but logged as a warning, matching the asset
// layer's contract.
func (r *Registry) CreateTexture(img *Image, wrap TextureWrap) (TextureHandle, error) {
	if img == nil || len(img.Pixels) == 0 {
		return 0, errors.New("render: texture image is empty")
	}
	if len(img.Pixels) != img.Width*img.Height*4 {
		return 0, fmt.Errorf("render: texture pixel data is %d bytes, want %d for %dx%d RGBA",
			len(img.Pixels), img.Width*img.Height*4, img.Width, img.Height)
	}
	if !img.PowerOfTwo() {
		r.log.Warn("texture is not power-of-2 dimensions",
			zap.Int("width", img.Width),
			zap.Int("height", img.Height))
	}

	tex := r.dev.CreateTexture(img, wrap)
	r.textures = append(r.textures, tex)
	r.log.Info("uploaded texture",
		zap.Uint32("texture", uint32(tex)),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height))
	return tex, nil
}

// Close frees every resource the registry issued. Call once at process
// teardown; handles are invalid afterwards.
func (r *Registry) Close() {
	for _, tex := range r.textures {
		r.dev.DeleteTexture(tex)
	}
	for _, h := range r.buffers {
		r.dev.DeleteBuffer(h.VBO)
	}
	for _, vao := range r.vertexArrays {
		r.dev.DeleteVertexArray(vao)
	}
	for _, prog := range r.programs {
		r.dev.DeleteProgram(prog)
	}
	r.textures = nil
	r.buffers = nil
	r.vertexArrays = nil
	r.programs = nil
}
