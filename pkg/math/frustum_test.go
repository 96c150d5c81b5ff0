package math

import (
	"math"
	"testing"
)

// testFrustum looks down -Z from (0, 0, 10) with a 45 degree field of view.
func testFrustum() Frustum {
	proj := Perspective(float32(math.Pi/4), 1, 0.1, 100)
	view := LookAt(Vec3{0, 0, 10}, Vec3{}, Vec3{0, 1, 0})
	return FrustumFromMatrix(proj.Mul(view))
}

func TestFrustumPlanesNormalized(t *testing.T) {
	f := testFrustum()
	for i, p := range f.Planes {
		if l := p.Normal.Length(); abs(l-1) > 0.0001 {
			t.Errorf("plane %d normal length = %v, want 1", i, l)
		}
	}
}

func TestFrustumPlanesFaceInward(t *testing.T) {
	f := testFrustum()
	center := Vec3{0, 0, 0}
	for i, p := range f.Planes {
		if d := p.SignedDistance(center); d <= 0 {
			t.Errorf("plane %d: signed distance of interior point = %v, want > 0", i, d)
		}
	}
}

func TestFrustumContainsPoint(t *testing.T) {
	f := testFrustum()

	tests := []struct {
		name string
		p    Vec3
		want bool
	}{
		{"origin", Vec3{}, true},
		{"far corner", Vec3{100, 100, 100}, false},
		{"behind camera", Vec3{0, 0, 20}, false},
		{"beyond far plane", Vec3{0, 0, -200}, false},
		{"off to the left", Vec3{-50, 0, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.ContainsPoint(tt.p); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestFrustumIntersectsAABB(t *testing.T) {
	f := testFrustum()

	tests := []struct {
		name string
		box  AABB
		want bool
	}{
		{"inside", NewAABBFromCenterSize(Vec3{}, Vec3{1, 1, 1}), true},
		{"far away", NewAABBFromCenterSize(Vec3{100, 100, 100}, Vec3{1, 1, 1}), false},
		// Straddles the left plane: center outside, one face inside.
		{"straddling", AABB{Min: Vec3{-60, -1, -1}, Max: Vec3{0, 1, 1}}, true},
		// Encloses the whole frustum.
		{"enclosing", NewAABBFromCenterSize(Vec3{}, Vec3{1000, 1000, 1000}), true},
		{"behind camera", NewAABBFromCenterSize(Vec3{0, 0, 30}, Vec3{1, 1, 1}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.IntersectsAABB(tt.box); got != tt.want {
				t.Errorf("IntersectsAABB(%+v) = %v, want %v", tt.box, got, tt.want)
			}
		})
	}
}
