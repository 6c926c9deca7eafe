package render_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/triforces-demo/render"
)

func TestPointLightApplyWritesAllUniforms(t *testing.T) {
	dev := newMockDevice()
	dev.uniforms[render.UniformLightPos] = 3
	dev.uniforms[render.UniformLightAmbient] = 4
	dev.uniforms[render.UniformLightDiffuse] = 5
	dev.uniforms[render.UniformLightSpecular] = 6
	dev.uniforms[render.UniformSpecularExponent] = 7

	reg := render.NewRegistry(dev)
	sp, err := reg.RegisterProgram(testVertSrc, testFragSrc, []string{
		render.UniformModel, render.UniformView, render.UniformProj,
		render.UniformLightPos, render.UniformLightAmbient,
		render.UniformLightDiffuse, render.UniformLightSpecular,
		render.UniformSpecularExponent,
	})
	if err != nil {
		t.Fatalf("RegisterProgram returned error: %v", err)
	}

	light := render.PointLight{
		Ambient:          mgl32.Vec3{0.2, 0.2, 0.2},
		Diffuse:          mgl32.Vec3{0.7, 0.6, 0.5},
		Specular:         mgl32.Vec3{1, 1, 1},
		SpecularExponent: 100,
		Position:         mgl32.Vec3{10, 10, 10},
	}
	light.Apply(dev, sp)

	if len(dev.usedPrograms) != 1 || dev.usedPrograms[0] != sp.Handle {
		t.Error("Apply must bind the program before writing uniforms")
	}
	if len(dev.vec3Writes) != 4 {
		t.Fatalf("expected 4 vec3 writes, got %d", len(dev.vec3Writes))
	}
	if len(dev.floatWrites) != 1 {
		t.Fatalf("expected 1 float write, got %d", len(dev.floatWrites))
	}
	if dev.floatWrites[0].f != 100 {
		t.Errorf("specular exponent = %v, want 100", dev.floatWrites[0].f)
	}
	if dev.vec3Writes[3].v != light.Position {
		t.Errorf("light position = %v, want %v", dev.vec3Writes[3].v, light.Position)
	}
}
