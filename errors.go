package render

import "fmt"

// CompileError reports a shader stage that failed to compile. Log carries
// the driver's info log verbatim.
type CompileError struct {
	Kind   StageKind
	Handle StageHandle
	Log    string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader %d did not compile: %s", e.Kind, e.Handle, e.Log)
}

// LinkError reports a program that failed to link. Link failure is fatal
// for that program; Log carries the driver's info log verbatim.
type LinkError struct {
	Handle ProgramHandle
	Log    string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("could not link shader program %d: %s", e.Handle, e.Log)
}

// UniformNotFoundError reports a uniform name that could not be resolved
// against a linked program. It is raised at registration time and prevents
// the ShaderProgram from being registered at all.
type UniformNotFoundError struct {
	Program ProgramHandle
	Name    string
}

func (e *UniformNotFoundError) Error() string {
	return fmt.Sprintf("uniform %q not found in program %d", e.Name, e.Program)
}
