package opengl

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Window wraps the GLFW window and input polling the frame loop runs
// against. It must be created and used on the main OS thread
// (runtime.LockOSThread in the demo's init).
type Window struct {
	win *glfw.Window
	log *zap.Logger
}

// NewWindow initializes GLFW, opens a 4.1 core-profile window with 4x
// multisampling, and makes its context current with vsync enabled.
func NewWindow(width, height int, title string, log *zap.Logger) (*Window, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	log.Info("started GLFW", zap.String("version", glfw.GetVersionString()))

	glfw.WindowHint(glfw.Samples, 4)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	win.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	return &Window{win: win, log: log}, nil
}

// Close destroys the window and shuts GLFW down.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// RequestClose marks the window for closing at the end of the frame.
func (w *Window) RequestClose() {
	w.win.SetShouldClose(true)
}

// Poll pumps the GLFW event queue. Call once per frame.
func (w *Window) Poll() {
	glfw.PollEvents()
}

// SwapBuffers presents the frame. This is the blocking frame boundary.
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// FramebufferSize returns the current framebuffer size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// SetTitle updates the window title, used for the FPS readout.
func (w *Window) SetTitle(title string) {
	w.win.SetTitle(title)
}

// Pressed reports whether a key is currently held down.
func (w *Window) Pressed(key glfw.Key) bool {
	action := w.win.GetKey(key)
	return action == glfw.Press || action == glfw.Repeat
}

// Time returns seconds since GLFW initialization. The frame clock uses
// this as its time source.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}
