package debug

import (
	"github.com/Faultbox/instancer/internal/engine/instancing"
	"github.com/Faultbox/instancer/pkg/math"
)

// OutOfViewLabel marks a group whose bounds miss the frustum.
const OutOfViewLabel = "(out of camera view)"

// Gizmo is the debug outline of one instancing group.
type Gizmo struct {
	Key       instancing.GroupKey
	Bounds    math.AABB
	Members   int
	Vertices  []float32
	OutOfView bool
	Label     string
}

// GroupGizmos outlines every group. With a frustum, groups that would be
// culled are flagged and labelled.
func GroupGizmos(groups []*instancing.SourceGroup, frustum *math.Frustum) []Gizmo {
	out := make([]Gizmo, 0, len(groups))
	for _, g := range groups {
		gz := Gizmo{
			Key:      g.Key,
			Bounds:   g.Bounds,
			Members:  len(g.Members),
			Vertices: BBoxWireframeVertices(g.Bounds, 0),
		}
		if frustum != nil && !frustum.IntersectsAABB(g.Bounds) {
			gz.OutOfView = true
			gz.Label = OutOfViewLabel
		}
		out = append(out, gz)
	}
	return out
}

// LineVertices concatenates the wireframes of all gizmos.
func LineVertices(gizmos []Gizmo) []float32 {
	var n int
	for _, g := range gizmos {
		n += len(g.Vertices)
	}
	out := make([]float32, 0, n)
	for _, g := range gizmos {
		out = append(out, g.Vertices...)
	}
	return out
}
