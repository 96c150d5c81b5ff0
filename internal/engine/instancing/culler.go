package instancing

import (
	"github.com/Faultbox/instancer/internal/engine/scene"
	"github.com/Faultbox/instancer/pkg/math"
)

// Camera provides the combined projection * view matrix the frustum is
// extracted from.
type Camera interface {
	ViewProjection() math.Mat4
}

// Submitter receives one instanced draw per visible batch. The matrices
// slice is only valid for the duration of the call.
type Submitter interface {
	SubmitInstanced(mesh scene.MeshID, material scene.MaterialID, matrices []math.Mat4)
}

// SubmitFunc adapts a function to Submitter.
type SubmitFunc func(mesh scene.MeshID, material scene.MaterialID, matrices []math.Mat4)

// SubmitInstanced calls f.
func (f SubmitFunc) SubmitInstanced(mesh scene.MeshID, material scene.MaterialID, matrices []math.Mat4) {
	f(mesh, material, matrices)
}

// CullStats summarizes one RenderVisible pass.
type CullStats struct {
	Batches   int // Batches tested
	Visible   int // Batches submitted
	Instances int // Matrices submitted
}

// Culled returns the number of batches rejected.
func (s CullStats) Culled() int {
	return s.Batches - s.Visible
}

// ComputeFrustum extracts the six frustum planes of cam.
func ComputeFrustum(cam Camera) math.Frustum {
	return math.FrustumFromMatrix(cam.ViewProjection())
}

// RenderVisible tests each batch's bounds against the frustum in order and
// submits every batch that is not entirely outside a plane. The whole
// matrix array goes with it, including members outside the view.
func RenderVisible(batches []Batch, frustum math.Frustum, sub Submitter) CullStats {
	stats := CullStats{Batches: len(batches)}
	for i := range batches {
		b := &batches[i]
		if !frustum.IntersectsAABB(b.Bounds) {
			continue
		}
		sub.SubmitInstanced(b.Key.Mesh, b.Key.Material, b.Matrices)
		stats.Visible++
		stats.Instances += len(b.Matrices)
	}
	return stats
}
