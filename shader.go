package render

import "go.uber.org/zap"

// MaxShaderLength is the largest shader source the pipeline will hand to
// the driver, in bytes (256 KiB). Longer sources are truncated with a
// logged warning and compilation proceeds with the truncated text.
const MaxShaderLength = 262144

// Pipeline turns shader source text into linked, validated programs. It
// is the only component that creates or frees shader stages.
type Pipeline struct {
	dev Device
	log *zap.Logger
}

// NewPipeline creates a shader pipeline over the given device. A nil
// logger disables diagnostics.
func NewPipeline(dev Device, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{dev: dev, log: log}
}

// CompileStage compiles a single shader stage from source text. On
// failure it returns a CompileError carrying the driver's info log; no
// usable handle escapes.
func (p *Pipeline) CompileStage(src string, kind StageKind) (StageHandle, error) {
	if len(src) > MaxShaderLength {
		p.log.Warn("shader source truncated",
			zap.Stringer("stage", kind),
			zap.Int("length", len(src)),
			zap.Int("max", MaxShaderLength))
		src = src[:MaxShaderLength]
	}

	stage := p.dev.CreateStage(kind)
	p.dev.StageSource(stage, src)
	if !p.dev.CompileStage(stage) {
		infoLog := p.dev.StageInfoLog(stage)
		p.log.Error("shader stage did not compile",
			zap.Stringer("stage", kind),
			zap.Uint32("index", uint32(stage)),
			zap.String("log", infoLog))
		return 0, &CompileError{Kind: kind, Handle: stage, Log: infoLog}
	}

	p.log.Info("compiled shader stage",
		zap.Stringer("stage", kind),
		zap.Uint32("index", uint32(stage)))
	return stage, nil
}

// LinkProgram attaches both stages to a new program object, links it, and
// validates the result. Link failure is fatal and returns a LinkError
// with the driver's info log. Validation failure only logs a warning:
// some drivers report false negatives, so the program handle stays
// usable. Both stages are freed once the link succeeds, regardless of the
// validation outcome.
func (p *Pipeline) LinkProgram(vert, frag StageHandle) (ProgramHandle, error) {
	prog := p.dev.CreateProgram()
	p.log.Info("created program, attaching stages",
		zap.Uint32("program", uint32(prog)),
		zap.Uint32("vertex", uint32(vert)),
		zap.Uint32("fragment", uint32(frag)))

	p.dev.AttachStage(prog, vert)
	p.dev.AttachStage(prog, frag)
	if !p.dev.LinkProgram(prog) {
		infoLog := p.dev.ProgramInfoLog(prog)
		p.log.Error("could not link shader program",
			zap.Uint32("program", uint32(prog)),
			zap.String("log", infoLog))
		return 0, &LinkError{Handle: prog, Log: infoLog}
	}

	p.Validate(prog)

	p.dev.DeleteStage(vert)
	p.dev.DeleteStage(frag)
	return prog, nil
}

// Validate asks the driver to validate a linked program and reports the
// result. A failed validation logs the program info log at warning level
// and does not invalidate the handle.
func (p *Pipeline) Validate(prog ProgramHandle) bool {
	if !p.dev.ValidateProgram(prog) {
		p.log.Warn("program failed validation",
			zap.Uint32("program", uint32(prog)),
			zap.String("log", p.dev.ProgramInfoLog(prog)))
		return false
	}
	return true
}

// CreateProgram compiles both stages from source and links them,
// short-circuiting on the first failure. The returned error identifies
// which stage failed.
func (p *Pipeline) CreateProgram(vertSrc, fragSrc string) (ProgramHandle, error) {
	vert, err := p.CompileStage(vertSrc, VertexStage)
	if err != nil {
		return 0, err
	}
	frag, err := p.CompileStage(fragSrc, FragmentStage)
	if err != nil {
		return 0, err
	}
	return p.LinkProgram(vert, frag)
}
