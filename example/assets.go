package main

import "github.com/triforces-demo/render"

// Entity keys. Assigned here by the caller; the render package never
// generates them.
const (
	groundPlaneID render.EntityID = 0
	cubeID        render.EntityID = 1
)

// Shader sources for the ground plane: position plus texture coordinate,
// no lighting.
const groundVertSrc = `
#version 410 core

layout (location = 0) in vec3 vp;
layout (location = 1) in vec2 vt;

uniform mat4 model_mat;
uniform mat4 view_mat;
uniform mat4 proj_mat;

out vec2 st;

void main() {
	st = vt;
	gl_Position = proj_mat * view_mat * model_mat * vec4(vp, 1.0);
}
`

const groundFragSrc = `
#version 410 core

in vec2 st;

uniform sampler2D tex_sampler;

out vec4 frag_color;

void main() {
	frag_color = texture(tex_sampler, st);
}
`

// Shader sources for the cube: textured Blinn-Phong with a single point
// light, lit in eye space.
const cubeVertSrc = `
#version 410 core

layout (location = 0) in vec3 vp;
layout (location = 1) in vec2 vt;
layout (location = 2) in vec3 vn;

uniform mat4 model_mat;
uniform mat4 view_mat;
uniform mat4 proj_mat;

out vec3 position_eye;
out vec3 normal_eye;
out vec2 st;

void main() {
	position_eye = vec3(view_mat * model_mat * vec4(vp, 1.0));
	normal_eye = vec3(view_mat * model_mat * vec4(vn, 0.0));
	st = vt;
	gl_Position = proj_mat * vec4(position_eye, 1.0);
}
`

const cubeFragSrc = `
#version 410 core

in vec3 position_eye;
in vec3 normal_eye;
in vec2 st;

uniform mat4 view_mat;
uniform sampler2D tex_sampler;
uniform vec3 light_position_world;
uniform vec3 La;
uniform vec3 Ld;
uniform vec3 Ls;
uniform float specular_exponent;

out vec4 frag_color;

void main() {
	vec3 light_position_eye = vec3(view_mat * vec4(light_position_world, 1.0));
	vec3 n = normalize(normal_eye);
	vec3 to_light = normalize(light_position_eye - position_eye);
	vec3 to_eye = normalize(-position_eye);
	vec3 half_way = normalize(to_light + to_eye);

	vec3 texel = texture(tex_sampler, st).rgb;
	vec3 ambient = La * texel;
	vec3 diffuse = Ld * texel * max(dot(n, to_light), 0.0);
	vec3 specular = Ls * pow(max(dot(n, half_way), 0.0), specular_exponent);

	frag_color = vec4(ambient + diffuse + specular, 1.0);
}
`

// Ground plane geometry: a 20x20 quad at y = 0, two triangles.
var groundPositions = []float32{
	-10, 0, -10,
	-10, 0, 10,
	10, 0, 10,

	-10, 0, -10,
	10, 0, 10,
	10, 0, -10,
}

var groundTexCoords = []float32{
	0, 1,
	0, 0,
	1, 0,

	0, 1,
	1, 0,
	1, 1,
}

// Unit cube geometry, 12 triangles, counter-clockwise winding.
var cubePositions = []float32{
	// front (+z)
	-1, -1, 1, 1, -1, 1, 1, 1, 1,
	-1, -1, 1, 1, 1, 1, -1, 1, 1,
	// back (-z)
	1, -1, -1, -1, -1, -1, -1, 1, -1,
	1, -1, -1, -1, 1, -1, 1, 1, -1,
	// left (-x)
	-1, -1, -1, -1, -1, 1, -1, 1, 1,
	-1, -1, -1, -1, 1, 1, -1, 1, -1,
	// right (+x)
	1, -1, 1, 1, -1, -1, 1, 1, -1,
	1, -1, 1, 1, 1, -1, 1, 1, 1,
	// top (+y)
	-1, 1, 1, 1, 1, 1, 1, 1, -1,
	-1, 1, 1, 1, 1, -1, -1, 1, -1,
	// bottom (-y)
	-1, -1, -1, 1, -1, -1, 1, -1, 1,
	-1, -1, -1, 1, -1, 1, -1, -1, 1,
}

var cubeTexCoords = func() []float32 {
	face := []float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	st := make([]float32, 0, 6*len(face))
	for i := 0; i < 6; i++ {
		st = append(st, face...)
	}
	return st
}()

var cubeNormals = func() []float32 {
	faces := [][3]float32{
		{0, 0, 1}, {0, 0, -1}, {-1, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, -1, 0},
	}
	n := make([]float32, 0, 6*6*3)
	for _, f := range faces {
		for i := 0; i < 6; i++ {
			n = append(n, f[0], f[1], f[2])
		}
	}
	return n
}()
