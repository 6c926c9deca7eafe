/*
Package render implements the core of a minimal real-time rendering demo:
the shader compilation and linking pipeline, the GPU resource handle
registry, and the entity-resource binding table that the per-frame loop
iterates.

The package never talks to OpenGL directly. All driver traffic goes
through the Device interface, implemented for real hardware by
backend/opengl and by lightweight mocks in the tests. That keeps the
parts with actual state-machine structure (compile, link, validate,
uniform resolution, entity readiness) testable without a GL context.

# Overview

Construction runs once, before the frame loop:

	dev := opengl.NewDevice(log)
	reg := render.NewRegistry(dev, render.WithLogger(log))
	scene := render.NewScene()

	sp, err := reg.RegisterProgram(vertSrc, fragSrc,
	    []string{render.UniformModel, render.UniformView, render.UniformProj})
	buffers, err := reg.CreateMeshBuffers(attrs)
	tex, err := reg.CreateTexture(img, render.WrapClampToEdge)

	scene.BindProgram(id, sp)
	scene.BindBuffers(id, buffers, vertexCount)
	scene.BindTexture(id, tex)
	scene.SetTransform(id, mgl32.Ident4())

Any construction error is fatal for that entity: nothing half-initialized
ever reaches the scene. The frame loop then only pushes transforms and
draws:

	for !window.ShouldClose() {
	    elapsed := clock.Tick()
	    // ... apply input to the camera ...
	    dev.Clear(0.2, 0.2, 0.2, 1.0)
	    render.DrawFrame(dev, scene, camera.View, camera.Proj)
	    window.SwapBuffers()
	}

# Handles

Every resource kind gets its own handle type: StageHandle, ProgramHandle,
UniformHandle, BufferHandle, TextureHandle. The registry owns the
handle-to-driver-object associations; the scene holds handle values only
and must not outlive the registry. Raw driver identifiers never cross an
API boundary untyped.

# Threading

Everything here is single-threaded by design. The registry, scene, and
device belong to the frame-loop thread, which must be locked to the main
OS thread for GLFW's sake.
*/
package render
