package main

import (
	gomath "math"

	"github.com/Faultbox/instancer/internal/engine/instancing"
	"github.com/Faultbox/instancer/internal/engine/scene"
	"github.com/Faultbox/instancer/pkg/math"
)

// drawIndividual submits every still-visible object on its own, as a
// single-instance draw of its first material. It returns the draw count.
func drawIndividual(objects []*scene.Renderable, sub instancing.Submitter) int {
	var draws int
	for _, obj := range objects {
		if obj == nil || !obj.Visible || obj.Mesh == nil || obj.Transform == nil {
			continue
		}
		if len(obj.Materials) == 0 || obj.Materials[0] == nil {
			continue
		}
		sub.SubmitInstanced(obj.Mesh.ID, obj.Materials[0].ID, []math.Mat4{obj.Transform.LocalToWorld()})
		draws++
	}
	return draws
}

// spin rotates every root object around the world Y axis.
func spin(objects []*scene.Renderable, degrees float32) {
	if degrees == 0 {
		return
	}
	q := math.QuatFromAxisAngle(math.Vec3{Y: 1}, degrees*gomath.Pi/180)
	for _, obj := range objects {
		if obj == nil || obj.Transform == nil || obj.Transform.Parent != nil {
			continue
		}
		obj.Transform.Rotate(q)
	}
}
