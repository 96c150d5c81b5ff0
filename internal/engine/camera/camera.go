// Package camera provides cameras that feed view-projection matrices to the
// frustum culler.
package camera

import (
	gomath "math"

	"github.com/Faultbox/instancer/pkg/math"
)

// Projection holds perspective projection parameters.
type Projection struct {
	FOVY   float32 // Vertical field of view, radians
	Aspect float32 // Width / height
	Near   float32
	Far    float32
}

// NewProjection creates a projection from a field of view in degrees.
func NewProjection(fovDegrees, aspect, near, far float32) Projection {
	return Projection{
		FOVY:   fovDegrees * gomath.Pi / 180,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
}

// Matrix returns the projection matrix.
func (p Projection) Matrix() math.Mat4 {
	return math.Perspective(p.FOVY, p.Aspect, p.Near, p.Far)
}

// LookAtCamera is a fixed camera at Eye looking at Target.
type LookAtCamera struct {
	Eye, Target math.Vec3
	Projection  Projection
}

// ViewMatrix returns the view matrix for this camera.
func (c *LookAtCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye, c.Target, math.Vec3{Y: 1})
}

// ViewProjection returns projection * view.
func (c *LookAtCamera) ViewProjection() math.Mat4 {
	return c.Projection.Matrix().Mul(c.ViewMatrix())
}

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	Projection Projection
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera(proj Projection) *OrbitCamera {
	return &OrbitCamera{
		Distance:        20.0,
		RotationX:       0.5,
		RotationY:       0.0,
		MinDistance:     1.0,
		MaxDistance:     1000.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		Projection:      proj,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))

	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// ViewProjection returns projection * view.
func (c *OrbitCamera) ViewProjection() math.Mat4 {
	return c.Projection.Matrix().Mul(c.ViewMatrix())
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity
	c.RotationX = clamp(c.RotationX, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// FitToBounds centers the camera on b and backs off until the box fits the
// vertical field of view.
func (c *OrbitCamera) FitToBounds(b math.AABB) {
	c.Center = b.Center()

	radius := b.Extents().Length()
	half := c.Projection.FOVY / 2
	if half <= 0 {
		half = gomath.Pi / 6
	}
	// 10% margin keeps the bounding sphere off the side planes.
	c.Distance = clamp(1.1*radius/float32(gomath.Sin(float64(half))), c.MinDistance, c.MaxDistance)
	if c.Projection.Far < c.Distance+2*radius {
		c.Projection.Far = c.Distance + 2*radius
	}
}

// SetAspect updates the projection aspect ratio, e.g. after a resize.
func (c *OrbitCamera) SetAspect(width, height int) {
	if height > 0 {
		c.Projection.Aspect = float32(width) / float32(height)
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
