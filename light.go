package render

import "github.com/go-gl/mathgl/mgl32"

// Uniform names for programs that accept a point light. Programs that
// want lighting request these at registration alongside the matrix
// uniforms.
const (
	UniformLightPos         = "light_position_world"
	UniformLightAmbient     = "La"
	UniformLightDiffuse     = "Ld"
	UniformLightSpecular    = "Ls"
	UniformSpecularExponent = "specular_exponent"
)

// PointLight is a single positional light with Phong coefficients.
type PointLight struct {
	Ambient          mgl32.Vec3
	Diffuse          mgl32.Vec3
	Specular         mgl32.Vec3
	SpecularExponent float32
	Position         mgl32.Vec3
}

// Apply writes the light parameters through the program's resolved
// uniform handles. The program must have requested all five light
// uniforms at registration; a missing one is a contract violation.
// Lights are static in this demo, so this runs once at construction,
// not per frame.
func (l *PointLight) Apply(dev Device, sp *ShaderProgram) {
	dev.UseProgram(sp.Handle)
	dev.SetUniformVec3(sp.Uniform(UniformLightAmbient), l.Ambient)
	dev.SetUniformVec3(sp.Uniform(UniformLightDiffuse), l.Diffuse)
	dev.SetUniformVec3(sp.Uniform(UniformLightSpecular), l.Specular)
	dev.SetUniformFloat(sp.Uniform(UniformSpecularExponent), l.SpecularExponent)
	dev.SetUniformVec3(sp.Uniform(UniformLightPos), l.Position)
}
