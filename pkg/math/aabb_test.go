package math

import (
	"math"
	"testing"
)

func TestAABBEncapsulate(t *testing.T) {
	unit := NewAABBFromCenterSize(Vec3{}, Vec3{1, 1, 1})
	shifted := NewAABBFromCenterSize(Vec3{5, 0, 0}, Vec3{1, 1, 1})
	point := AABBFromPoint(Vec3{0, 10, 0})

	tests := []struct {
		name string
		a, b AABB
		want AABB
	}{
		{"self", unit, unit, unit},
		{"disjoint", unit, shifted, AABB{Min: Vec3{-0.5, -0.5, -0.5}, Max: Vec3{5.5, 0.5, 0.5}}},
		{"point", unit, point, AABB{Min: Vec3{-0.5, -0.5, -0.5}, Max: Vec3{0.5, 10, 0.5}}},
		{"point receiver", point, unit, AABB{Min: Vec3{-0.5, -0.5, -0.5}, Max: Vec3{0.5, 10, 0.5}}},
		{"contained", unit, AABBFromPoint(Vec3{0.1, 0.2, 0.3}), unit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Encapsulate(tt.b)
			if got != tt.want {
				t.Errorf("Encapsulate: got %+v, want %+v", got, tt.want)
			}
			if rev := tt.b.Encapsulate(tt.a); rev != got {
				t.Errorf("Encapsulate not commutative: %+v vs %+v", got, rev)
			}
			if !got.Contains(tt.a) || !got.Contains(tt.b) {
				t.Errorf("result %+v does not contain both operands", got)
			}
		})
	}
}

func TestAABBCenterSize(t *testing.T) {
	b := NewAABBFromCenterSize(Vec3{1, 2, 3}, Vec3{2, 4, 6})
	if b.Center() != (Vec3{1, 2, 3}) {
		t.Errorf("Center = %v, want (1, 2, 3)", b.Center())
	}
	if b.Size() != (Vec3{2, 4, 6}) {
		t.Errorf("Size = %v, want (2, 4, 6)", b.Size())
	}
	if b.Extents() != (Vec3{1, 2, 3}) {
		t.Errorf("Extents = %v, want (1, 2, 3)", b.Extents())
	}
}

func TestAABBTransform(t *testing.T) {
	unit := NewAABBFromCenterSize(Vec3{}, Vec3{1, 1, 1})

	moved := unit.Transform(Translate(5, 0, 0))
	if want := (AABB{Min: Vec3{4.5, -0.5, -0.5}, Max: Vec3{5.5, 0.5, 0.5}}); moved != want {
		t.Errorf("translated box = %+v, want %+v", moved, want)
	}

	// Stretch along X, then yaw 90 degrees: the long axis ends up on Z.
	rot := QuatFromAxisAngle(Vec3{Y: 1}, float32(math.Pi/2))
	got := unit.Transform(TRS(Vec3{}, rot, Vec3{2, 1, 1}))
	want := AABB{Min: Vec3{-0.5, -0.5, -1}, Max: Vec3{0.5, 0.5, 1}}
	if !vecNear(got.Min, want.Min, 0.0001) || !vecNear(got.Max, want.Max, 0.0001) {
		t.Errorf("rotated box = %+v, want %+v", got, want)
	}
}

func TestAABBCorners(t *testing.T) {
	b := AABB{Min: Vec3{-1, -2, -3}, Max: Vec3{1, 2, 3}}
	rebuilt := AABBFromPoint(b.Corners()[0])
	for _, c := range b.Corners() {
		rebuilt = rebuilt.EncapsulatePoint(c)
	}
	if rebuilt != b {
		t.Errorf("corners rebuild %+v, want %+v", rebuilt, b)
	}
}
