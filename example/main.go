// Example is the rendering demo: a textured ground plane and a lit cube
// drawn with a fly camera.
//
// Controls:
//
//	W/A/S/D      move forward/left/back/right
//	Q/E          move up/down
//	Arrow keys   yaw and pitch
//	Z/C          roll
//	Backspace    reset the camera
//	Escape       quit
//
// Settings are read from demo.toml next to the binary; missing file
// means defaults. Diagnostics go to stderr and to the log file from the
// config (gl.log by default).
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/triforces-demo/render"
	"github.com/triforces-demo/render/backend/opengl"
)

const configFile = "demo.toml"

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := render.LoadConfig(configFile)
	if err != nil {
		return err
	}

	log, closeLog, err := render.NewLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	window, err := opengl.NewWindow(cfg.Width, cfg.Height, cfg.Title, log)
	if err != nil {
		return err
	}
	defer window.Close()

	dev := opengl.NewDevice(log)
	width, height := window.FramebufferSize()
	if err := dev.Init(width, height); err != nil {
		return err
	}

	reg := render.NewRegistry(dev, render.WithLogger(log))
	defer reg.Close()
	scene := render.NewScene()

	camera := render.NewCamera(cfg.Camera, float32(width)/float32(height))

	if err := buildGroundPlane(reg, scene, groundPlaneID); err != nil {
		return fmt.Errorf("ground plane: %w", err)
	}
	if err := buildCube(dev, reg, scene, cubeID); err != nil {
		return fmt.Errorf("cube: %w", err)
	}
	log.Info("scene constructed", zap.Int("entities", scene.ReadyCount()))

	clock := render.NewClock(window.Time)
	for !window.ShouldClose() {
		window.Poll()
		elapsed := float32(clock.Tick())

		applyCameraInput(window, camera, cfg, elapsed)

		if w, h := window.FramebufferSize(); w != width || h != height {
			width, height = w, h
			camera.Resize(width, height)
			dev.Viewport(width, height)
		}

		dev.Clear(0.2, 0.2, 0.2, 1.0)
		render.DrawFrame(dev, scene, camera.View, camera.Proj)

		if fps, ok := clock.CountFrame(); ok {
			window.SetTitle(fmt.Sprintf("%s @ %.2f FPS", cfg.Title, fps))
		}

		window.SwapBuffers()
	}

	return nil
}

// applyCameraInput translates held keys into camera movement for this
// frame. Translation scales with Speed, rotation with YawSpeed.
func applyCameraInput(window *opengl.Window, camera *render.Camera, cfg render.Config, elapsed float32) {
	move := camera.Speed * elapsed
	turn := camera.YawSpeed * elapsed

	var right, up, forward float32
	if window.Pressed(glfw.KeyA) {
		right -= move
	}
	if window.Pressed(glfw.KeyD) {
		right += move
	}
	if window.Pressed(glfw.KeyQ) {
		up += move
	}
	if window.Pressed(glfw.KeyE) {
		up -= move
	}
	if window.Pressed(glfw.KeyW) {
		forward += move
	}
	if window.Pressed(glfw.KeyS) {
		forward -= move
	}
	if right != 0 || up != 0 || forward != 0 {
		camera.Translate(right, up, forward)
	}

	if window.Pressed(glfw.KeyLeft) {
		camera.Yaw(turn)
	}
	if window.Pressed(glfw.KeyRight) {
		camera.Yaw(-turn)
	}
	if window.Pressed(glfw.KeyUp) {
		camera.Pitch(turn)
	}
	if window.Pressed(glfw.KeyDown) {
		camera.Pitch(-turn)
	}
	if window.Pressed(glfw.KeyZ) {
		camera.Roll(-turn)
	}
	if window.Pressed(glfw.KeyC) {
		camera.Roll(turn)
	}

	if window.Pressed(glfw.KeyBackspace) {
		w, h := window.FramebufferSize()
		*camera = *render.NewCamera(cfg.Camera, float32(w)/float32(h))
	}
	if window.Pressed(glfw.KeyEscape) {
		window.RequestClose()
	}
}

// buildGroundPlane constructs the textured ground plane entity: geometry,
// shader program, checkerboard texture, identity transform. Any failure
// aborts construction; nothing partial reaches the scene.
func buildGroundPlane(reg *render.Registry, scene *render.Scene, id render.EntityID) error {
	sp, err := reg.RegisterProgram(groundVertSrc, groundFragSrc, []string{
		render.UniformModel, render.UniformView, render.UniformProj,
	})
	if err != nil {
		return err
	}

	attrs := []render.MeshAttribute{
		{Slot: 0, Components: 3, Data: groundPositions},
		{Slot: 1, Components: 2, Data: groundTexCoords},
	}
	buffers, err := reg.CreateMeshBuffers(attrs)
	if err != nil {
		return err
	}

	tex, err := reg.CreateTexture(checkerboard(256, 32), render.WrapClampToEdge)
	if err != nil {
		return err
	}

	scene.BindProgram(id, sp)
	scene.BindBuffers(id, buffers, int32(attrs[0].VertexCount()))
	scene.BindTexture(id, tex)
	scene.SetTransform(id, mgl32.Ident4())
	return nil
}

// buildCube constructs the lit cube entity and pushes the static light
// parameters through its program once.
func buildCube(dev render.Device, reg *render.Registry, scene *render.Scene, id render.EntityID) error {
	sp, err := reg.RegisterProgram(cubeVertSrc, cubeFragSrc, []string{
		render.UniformModel, render.UniformView, render.UniformProj,
		render.UniformLightPos, render.UniformLightAmbient,
		render.UniformLightDiffuse, render.UniformLightSpecular,
		render.UniformSpecularExponent,
	})
	if err != nil {
		return err
	}

	attrs := []render.MeshAttribute{
		{Slot: 0, Components: 3, Data: cubePositions},
		{Slot: 1, Components: 2, Data: cubeTexCoords},
		{Slot: 2, Components: 3, Data: cubeNormals},
	}
	buffers, err := reg.CreateMeshBuffers(attrs)
	if err != nil {
		return err
	}

	tex, err := reg.CreateTexture(checkerboard(128, 16), render.WrapRepeat)
	if err != nil {
		return err
	}

	light := render.PointLight{
		Ambient:          mgl32.Vec3{0.2, 0.2, 0.2},
		Diffuse:          mgl32.Vec3{0.7, 0.7, 0.7},
		Specular:         mgl32.Vec3{1.0, 1.0, 1.0},
		SpecularExponent: 100.0,
		Position:         mgl32.Vec3{10, 10, 10},
	}
	light.Apply(dev, sp)

	scene.BindProgram(id, sp)
	scene.BindBuffers(id, buffers, int32(attrs[0].VertexCount()))
	scene.BindTexture(id, tex)
	scene.SetTransform(id, mgl32.Translate3D(0, 2, 0))
	return nil
}

// checkerboard generates a size x size RGBA checkerboard with the given
// cell size, standing in for the decoded PNG the asset layer would
// normally supply.
func checkerboard(size, cell int) *render.Image {
	pixels := make([]uint8, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := uint8(40)
			if (x/cell+y/cell)%2 == 0 {
				c = 220
			}
			i := (y*size + x) * 4
			pixels[i] = c
			pixels[i+1] = c
			pixels[i+2] = c
			pixels[i+3] = 255
		}
	}
	return &render.Image{Width: size, Height: size, Pixels: pixels}
}
