package camera

import (
	"testing"

	"github.com/Faultbox/instancer/pkg/math"
)

func TestLookAtCameraFrustum(t *testing.T) {
	cam := &LookAtCamera{
		Eye:        math.Vec3{Z: 10},
		Projection: NewProjection(60, 1, 0.1, 50),
	}

	f := math.FrustumFromMatrix(cam.ViewProjection())
	if !f.ContainsPoint(math.Vec3{}) {
		t.Error("target should be inside the frustum")
	}
	if f.ContainsPoint(math.Vec3{X: 100, Y: 100, Z: 100}) {
		t.Error("distant point should be outside the frustum")
	}
}

func TestOrbitCameraPosition(t *testing.T) {
	cam := NewOrbitCamera(NewProjection(60, 1, 0.1, 100))
	cam.RotationX = 0
	cam.RotationY = 0
	cam.Distance = 10
	cam.Center = math.Vec3{X: 1}

	if got := cam.Position(); got != (math.Vec3{X: 1, Z: 10}) {
		t.Errorf("Position = %v, want (1, 0, 10)", got)
	}
}

func TestOrbitCameraClamps(t *testing.T) {
	cam := NewOrbitCamera(NewProjection(60, 1, 0.1, 100))

	cam.HandleDrag(0, 1e6)
	if cam.RotationX != cam.MaxPitch {
		t.Errorf("pitch = %v, want clamp to %v", cam.RotationX, cam.MaxPitch)
	}
	cam.HandleZoom(-1e6)
	if cam.Distance != cam.MaxDistance {
		t.Errorf("distance = %v, want clamp to %v", cam.Distance, cam.MaxDistance)
	}
}

func TestOrbitCameraFitToBounds(t *testing.T) {
	cam := NewOrbitCamera(NewProjection(60, 1, 0.1, 10))
	box := math.AABB{Min: math.Vec3{X: -10, Y: -10, Z: -10}, Max: math.Vec3{X: 30, Y: 10, Z: 10}}

	cam.FitToBounds(box)
	if cam.Center != (math.Vec3{X: 10}) {
		t.Errorf("center = %v, want (10, 0, 0)", cam.Center)
	}

	f := math.FrustumFromMatrix(cam.ViewProjection())
	for _, c := range box.Corners() {
		if !f.ContainsPoint(c) {
			t.Errorf("corner %v outside fitted frustum", c)
		}
	}
}

func TestOrbitCameraSetAspect(t *testing.T) {
	cam := NewOrbitCamera(NewProjection(60, 1, 0.1, 100))
	cam.SetAspect(1920, 1080)
	if cam.Projection.Aspect < 1.77 || cam.Projection.Aspect > 1.78 {
		t.Errorf("aspect = %v, want ~1.777", cam.Projection.Aspect)
	}
	cam.SetAspect(10, 0)
	if cam.Projection.Aspect < 1.77 {
		t.Error("zero height should leave aspect unchanged")
	}
}
