package main

import (
	"testing"

	"github.com/Faultbox/instancer/internal/engine/renderer"
	"github.com/Faultbox/instancer/internal/engine/scene"
	"github.com/Faultbox/instancer/pkg/math"
)

func testObjects() []*scene.Renderable {
	mesh := &scene.Mesh{ID: "box", LocalBounds: math.NewAABBFromCenterSize(math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1})}
	mat := &scene.Material{ID: "stone", Instancing: true}
	return []*scene.Renderable{
		{Name: "a", Mesh: mesh, Materials: []*scene.Material{mat}, Transform: scene.NewTransform(math.Vec3{X: 1}), Visible: true},
		{Name: "b", Mesh: mesh, Materials: []*scene.Material{mat}, Transform: scene.NewTransform(math.Vec3{X: 2}), Visible: false},
		{Name: "c", Mesh: mesh, Transform: scene.NewTransform(math.Vec3{}), Visible: true},
		nil,
	}
}

func TestDrawIndividual(t *testing.T) {
	sub := &renderer.LogSubmitter{}
	if got := drawIndividual(testObjects(), sub); got != 1 {
		t.Fatalf("drawIndividual = %d, want 1", got)
	}
	if sub.Instances != 1 || sub.Draws[0].Material != "stone" {
		t.Errorf("unexpected draws: %+v", sub.Draws)
	}
}

func TestSpin(t *testing.T) {
	objects := testObjects()
	child := scene.NewTransform(math.Vec3{Z: 1})
	child.Parent = objects[0].Transform
	objects = append(objects, &scene.Renderable{Name: "child", Transform: child})

	spin(objects, 90)

	p := objects[0].Transform.LocalToWorld().TransformPoint(math.Vec3{X: 1})
	if abs(p.X-1) > 1e-4 || abs(p.Z+1) > 1e-4 {
		t.Errorf("rotated point = %v, want (1, 0, -1)", p)
	}
	if child.Rotation != math.QuatIdentity() {
		t.Errorf("child transform rotated: %v", child.Rotation)
	}

	before := objects[0].Transform.Rotation
	spin(objects, 0)
	if objects[0].Transform.Rotation != before {
		t.Error("zero spin changed rotation")
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
