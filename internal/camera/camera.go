package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Orbit is a camera that circles a target point. Left drag rotates, right
// drag pans the target, and the wheel zooms.
type Orbit struct {
	Target   rl.Vector3
	Distance float32
	Yaw      float32 // degrees about Y, 0 looks down -Z from +Z
	Pitch    float32 // degrees above the horizon

	Projection rl.CameraProjection
	HalfHeight float32 // orthographic view-volume half-height
	FovY       float32 // perspective vertical field of view in degrees
	Zoom       float32
	Near       float32
	Far        float32

	RotateSpeed float32 // degrees per pixel
	PanSpeed    float32 // world units per pixel at zoom 1
	ZoomSpeed   float32
	MinZoom     float32
	MaxZoom     float32

	width, height int32
}

const maxPitch = 89

// NewOrbit creates an orthographic orbit camera placed at position and
// looking at target.
func NewOrbit(position, target rl.Vector3, halfHeight float32) *Orbit {
	c := &Orbit{
		Target:      target,
		Projection:  rl.CameraOrthographic,
		HalfHeight:  halfHeight,
		FovY:        45,
		Zoom:        1,
		Near:        0.1,
		Far:         1000,
		RotateSpeed: 0.3,
		PanSpeed:    0.01,
		ZoomSpeed:   0.1,
		MinZoom:     0.2,
		MaxZoom:     5,
		width:       1,
		height:      1,
	}
	c.SetPosition(position)
	return c
}

// SetPosition moves the eye, keeping the target.
func (c *Orbit) SetPosition(position rl.Vector3) {
	offset := rl.Vector3Subtract(position, c.Target)
	c.Distance = rl.Vector3Length(offset)
	if c.Distance == 0 {
		c.Distance = 1
		offset = rl.Vector3{Z: 1}
	}
	c.Yaw = math32.Atan2(offset.X, offset.Z) * rl.Rad2deg
	c.Pitch = clamp(math32.Asin(offset.Y/c.Distance)*rl.Rad2deg, -maxPitch, maxPitch)
}

// Position returns the eye position derived from yaw, pitch and distance.
func (c *Orbit) Position() rl.Vector3 {
	yaw := c.Yaw * rl.Deg2rad
	pitch := c.Pitch * rl.Deg2rad
	offset := rl.Vector3{
		X: math32.Cos(pitch) * math32.Sin(yaw),
		Y: math32.Sin(pitch),
		Z: math32.Cos(pitch) * math32.Cos(yaw),
	}
	return rl.Vector3Add(c.Target, rl.Vector3Scale(offset, c.Distance))
}

// Basis returns the normalized view axes.
func (c *Orbit) Basis() (forward, right, up rl.Vector3) {
	forward = rl.Vector3Normalize(rl.Vector3Subtract(c.Target, c.Position()))
	right = rl.Vector3Normalize(rl.Vector3CrossProduct(forward, rl.Vector3{Y: 1}))
	up = rl.Vector3CrossProduct(right, forward)
	return
}

// Resize records new viewport dimensions. The orthographic half-height stays
// fixed and the half-width follows the aspect ratio.
func (c *Orbit) Resize(width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width, c.height = width, height
}

func (c *Orbit) Aspect() float32 {
	return float32(c.width) / float32(c.height)
}

// HalfExtents returns the orthographic half-width and half-height after zoom.
func (c *Orbit) HalfExtents() (halfWidth, halfHeight float32) {
	halfHeight = c.HalfHeight / c.Zoom
	return halfHeight * c.Aspect(), halfHeight
}

// RayFromNDC builds the picking ray through normalized device coordinates.
func (c *Orbit) RayFromNDC(x, y float32) rl.Ray {
	forward, right, up := c.Basis()
	eye := c.Position()

	if c.Projection == rl.CameraPerspective {
		tanHalf := math32.Tan(c.FovY * rl.Deg2rad / 2)
		dir := rl.Vector3Add(forward, rl.Vector3Add(
			rl.Vector3Scale(right, x*tanHalf*c.Aspect()),
			rl.Vector3Scale(up, y*tanHalf),
		))
		return rl.Ray{Position: eye, Direction: rl.Vector3Normalize(dir)}
	}

	halfW, halfH := c.HalfExtents()
	origin := rl.Vector3Add(eye, rl.Vector3Add(
		rl.Vector3Scale(right, x*halfW),
		rl.Vector3Scale(up, y*halfH),
	))
	return rl.Ray{Position: origin, Direction: forward}
}

// Camera3D converts to the raylib camera. For orthographic projection raylib
// reads Fovy as the full view height.
func (c *Orbit) Camera3D() rl.Camera3D {
	fovy := c.FovY
	if c.Projection == rl.CameraOrthographic {
		fovy = 2 * c.HalfHeight / c.Zoom
	}
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{Y: 1},
		Fovy:       fovy,
		Projection: c.Projection,
	}
}

// Rotate orbits by a pointer delta in pixels.
func (c *Orbit) Rotate(dx, dy float32) {
	c.Yaw -= dx * c.RotateSpeed
	c.Pitch = clamp(c.Pitch+dy*c.RotateSpeed, -maxPitch, maxPitch)
}

// Pan slides the target in the view plane by a pointer delta in pixels.
func (c *Orbit) Pan(dx, dy float32) {
	_, right, up := c.Basis()
	scale := c.PanSpeed / c.Zoom
	move := rl.Vector3Add(rl.Vector3Scale(right, -dx*scale), rl.Vector3Scale(up, dy*scale))
	c.Target = rl.Vector3Add(c.Target, move)
}

// ZoomBy applies wheel steps; positive zooms in.
func (c *Orbit) ZoomBy(steps float32) {
	c.Zoom = clamp(c.Zoom*(1+steps*c.ZoomSpeed), c.MinZoom, c.MaxZoom)
}

// Update polls mouse input. It is skipped while blocked is true so that
// UI overlays do not drag the scene.
func (c *Orbit) Update(blocked bool) {
	if blocked {
		return
	}
	delta := rl.GetMouseDelta()
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		c.Rotate(delta.X, delta.Y)
	}
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		c.Pan(delta.X, delta.Y)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		c.ZoomBy(wheel)
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
