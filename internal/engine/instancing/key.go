// Package instancing groups renderables sharing a mesh and material into
// GPU-instanced batches, culls the batches against the view frustum and
// recycles the per-batch matrix arrays between frames.
//
// A frame runs as: optional Builder.RefreshMatrices, then one frustum
// extraction, then RenderVisible over the batch set. Nothing in this package
// locks; System wraps the sequence in a single mutex.
package instancing

import (
	"fmt"

	"github.com/Faultbox/instancer/internal/engine/scene"
)

// GroupKey is the (mesh, material) pair that decides which objects share a
// batch. It is comparable and used directly as a map key.
type GroupKey struct {
	Mesh     scene.MeshID
	Material scene.MaterialID
}

// String implements fmt.Stringer.
func (k GroupKey) String() string {
	return fmt.Sprintf("%s/%s", k.Mesh, k.Material)
}
