package render

import "github.com/go-gl/mathgl/mgl32"

// CameraConfig holds the tunable camera parameters.
type CameraConfig struct {
	Near     float32    `toml:"near"`
	Far      float32    `toml:"far"`
	FOV      float32    `toml:"fov"` // vertical field of view, degrees
	Speed    float32    `toml:"speed"`
	YawSpeed float32    `toml:"yaw_speed"` // degrees per second
	Position [3]float32 `toml:"position"`
}

// Camera is a quaternion-orientation fly camera. Translation happens
// along the camera's local axes; yaw, pitch, and roll rotate about the
// local up, right, and forward axes. The view matrix is the inverse of
// the camera's world transform: the inverted rotation composed with the
// negated translation.
type Camera struct {
	Near   float32
	Far    float32
	FOV    float32
	Aspect float32

	Speed    float32
	YawSpeed float32

	Pos mgl32.Vec3
	Fwd mgl32.Vec3
	Rgt mgl32.Vec3
	Up  mgl32.Vec3

	orientation mgl32.Quat

	Proj mgl32.Mat4
	View mgl32.Mat4
}

// NewCamera creates a camera at the configured position looking down the
// negative z axis, with the projection matrix built for the given aspect
// ratio.
func NewCamera(cfg CameraConfig, aspect float32) *Camera {
	c := &Camera{
		Near:        cfg.Near,
		Far:         cfg.Far,
		FOV:         cfg.FOV,
		Aspect:      aspect,
		Speed:       cfg.Speed,
		YawSpeed:    cfg.YawSpeed,
		Pos:         mgl32.Vec3{cfg.Position[0], cfg.Position[1], cfg.Position[2]},
		orientation: mgl32.QuatIdent(),
	}
	c.Proj = mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
	c.rebuildView()
	return c
}

// Translate moves the camera along its local right, up, and forward axes.
func (c *Camera) Translate(right, up, forward float32) {
	c.Pos = c.Pos.Add(c.Rgt.Mul(right)).Add(c.Up.Mul(up)).Add(c.Fwd.Mul(forward))
	c.rebuildView()
}

// Yaw rotates the camera about its local up axis by degrees.
func (c *Camera) Yaw(deg float32) {
	c.rotate(deg, c.Up)
}

// Pitch rotates the camera about its local right axis by degrees.
func (c *Camera) Pitch(deg float32) {
	c.rotate(deg, c.Rgt)
}

// Roll rotates the camera about its local forward axis by degrees.
func (c *Camera) Roll(deg float32) {
	c.rotate(deg, c.Fwd)
}

func (c *Camera) rotate(deg float32, axis mgl32.Vec3) {
	q := mgl32.QuatRotate(mgl32.DegToRad(deg), axis)
	c.orientation = q.Mul(c.orientation).Normalize()
	c.rebuildView()
}

// Resize recomputes the aspect ratio and projection matrix for a new
// framebuffer size. Pure function of (width, height, fov, near, far).
func (c *Camera) Resize(width, height int) {
	if height == 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
	c.Proj = mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// rebuildView recomputes the local axes from the orientation quaternion
// and rebuilds the view matrix. The axes are recomputed so movement goes
// in the direction the camera currently points.
func (c *Camera) rebuildView() {
	rot := c.orientation.Mat4()
	c.Fwd = rot.Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3()
	c.Rgt = rot.Mul4x1(mgl32.Vec4{1, 0, 0, 0}).Vec3()
	c.Up = rot.Mul4x1(mgl32.Vec4{0, 1, 0, 0}).Vec3()

	trans := mgl32.Translate3D(-c.Pos.X(), -c.Pos.Y(), -c.Pos.Z())
	c.View = rot.Inv().Mul4(trans)
}
