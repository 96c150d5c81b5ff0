// Package scene describes the renderable objects fed to the instancing
// pipeline: meshes, materials, transforms and the objects that tie them.
package scene

import (
	"github.com/Faultbox/instancer/pkg/math"
)

// MeshID identifies a mesh. Two renderables share a mesh iff their IDs match.
type MeshID string

// MaterialID identifies a material.
type MaterialID string

// Mesh is a shared piece of geometry. Only its local bounds matter to
// batching; the backend resolves the geometry itself by ID.
type Mesh struct {
	ID          MeshID
	Name        string
	LocalBounds math.AABB
}

// Material is a shared surface description.
type Material struct {
	ID   MaterialID
	Name string

	// Instancing marks the material as able to draw many transforms in one
	// call. Objects using a material without it are not batched.
	Instancing bool

	Color [4]float32
}

// Transform is a node in the transform hierarchy.
type Transform struct {
	Position math.Vec3
	Rotation math.Quat
	Scale    math.Vec3
	Parent   *Transform
}

// NewTransform creates an identity-rotation, unit-scale transform at pos.
func NewTransform(pos math.Vec3) *Transform {
	return &Transform{
		Position: pos,
		Rotation: math.QuatIdentity(),
		Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// LocalToWorld returns the matrix mapping local coordinates to world space,
// including every parent.
func (t *Transform) LocalToWorld() math.Mat4 {
	m := math.TRS(t.Position, t.Rotation, t.Scale)
	if t.Parent != nil {
		return t.Parent.LocalToWorld().Mul(m)
	}
	return m
}

// Rotate applies an additional rotation on top of the current one.
func (t *Transform) Rotate(q math.Quat) {
	t.Rotation = q.Mul(t.Rotation).Normalize()
}

// Renderable is one placed object. The transform is owned by the scene; the
// instancing pipeline only keeps a reference to it.
type Renderable struct {
	Name      string
	Mesh      *Mesh
	Materials []*Material
	Transform *Transform

	// Visible controls the object's own, non-batched draw path.
	Visible bool
}

// WorldBounds returns the mesh bounds moved into world space by the
// current transform.
func (r *Renderable) WorldBounds() math.AABB {
	return r.Mesh.LocalBounds.Transform(r.Transform.LocalToWorld())
}

// Scene is a resolved scene description.
type Scene struct {
	Meshes    map[MeshID]*Mesh
	Materials map[MaterialID]*Material
	Objects   []*Renderable
}

// Bounds returns the union of all object bounds that have a mesh and a
// transform. ok is false when there are none.
func (s *Scene) Bounds() (b math.AABB, ok bool) {
	for _, obj := range s.Objects {
		if obj.Mesh == nil || obj.Transform == nil {
			continue
		}
		wb := obj.WorldBounds()
		if !ok {
			b, ok = wb, true
			continue
		}
		b = b.Encapsulate(wb)
	}
	return b, ok
}
