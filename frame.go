package render

import "github.com/go-gl/mathgl/mgl32"

// fpsWindowSeconds is the averaging window for the frame-rate readout.
const fpsWindowSeconds = 0.5

// Clock tracks frame timing. The time source is injected so the clock is
// testable without a window; the real loop passes glfw.GetTime.
type Clock struct {
	now            func() float64
	runningSeconds float64
	fpsWindowStart float64
	frameCount     int
}

// NewClock creates a clock over the given monotonic time source, which
// must return seconds.
func NewClock(now func() float64) *Clock {
	t := now()
	return &Clock{
		now:            now,
		runningSeconds: t,
		fpsWindowStart: t,
	}
}

// Tick returns the seconds elapsed since the previous Tick, or since
// construction on the first call.
func (c *Clock) Tick() float64 {
	t := c.now()
	elapsed := t - c.runningSeconds
	c.runningSeconds = t
	return elapsed
}

// CountFrame records one rendered frame. Each time the averaging window
// closes it returns the frames-per-second over that window and true;
// otherwise it returns false and the caller leaves the readout alone.
func (c *Clock) CountFrame() (fps float64, ok bool) {
	t := c.now()
	elapsed := t - c.fpsWindowStart
	if elapsed > fpsWindowSeconds {
		fps = float64(c.frameCount) / elapsed
		c.fpsWindowStart = t
		c.frameCount = 0
		ok = true
	}
	c.frameCount++
	return fps, ok
}

// DrawFrame iterates the ready entities once and issues their draw
// calls: bind the entity's program, push the model, view, and projection
// matrices through the uniform handles resolved at registration time,
// bind its texture and vertex array, draw. Uniform locations are never
// re-queried here.
//
// Every program reaching this loop must expose UniformModel, UniformView,
// and UniformProj; RegisterProgram enforces that at construction.
func DrawFrame(dev Device, scene *Scene, view, proj mgl32.Mat4) {
	scene.ForEachReady(func(item RenderItem) {
		dev.UseProgram(item.Program.Handle)
		dev.SetUniformMat4(item.Program.Uniform(UniformModel), item.Transform)
		dev.SetUniformMat4(item.Program.Uniform(UniformView), view)
		dev.SetUniformMat4(item.Program.Uniform(UniformProj), proj)
		dev.BindTexture(item.Texture)
		dev.BindVertexArray(item.Buffers[0].VAO)
		dev.DrawTriangles(0, item.VertexCount)
	})
}
