// Package debug provides debug visualization of instancing groups.
package debug

import (
	"github.com/Faultbox/instancer/pkg/math"
)

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// bboxEdges lists corner index pairs, in math.AABB.Corners order.
var bboxEdges = [12][2]int{
	// Bottom face
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	// Top face
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	// Vertical edges
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// BBoxWireframeVertices creates line vertices for a wireframe box, format
// [x, y, z] per vertex, two vertices per edge. padding grows the box on
// every side.
func BBoxWireframeVertices(b math.AABB, padding float32) []float32 {
	pad := math.Vec3{X: padding, Y: padding, Z: padding}
	corners := math.AABB{Min: b.Min.Sub(pad), Max: b.Max.Add(pad)}.Corners()

	out := make([]float32, 0, BBoxWireframeVertexCount*3)
	for _, e := range bboxEdges {
		a, c := corners[e[0]], corners[e[1]]
		out = append(out, a.X, a.Y, a.Z, c.X, c.Y, c.Z)
	}
	return out
}
