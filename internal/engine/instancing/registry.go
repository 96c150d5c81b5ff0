package instancing

import (
	"go.uber.org/zap"

	"github.com/Faultbox/instancer/internal/engine/scene"
	"github.com/Faultbox/instancer/internal/logger"
	"github.com/Faultbox/instancer/pkg/math"
)

// SourceGroup collects the transforms of every object sharing one key.
// Members keep first-seen order so matrix slot i always maps to the same
// transform. Groups are never empty.
type SourceGroup struct {
	Key     GroupKey
	Members []*scene.Transform
	Bounds  math.AABB
}

func (g *SourceGroup) add(t *scene.Transform, bounds math.AABB) {
	g.Members = append(g.Members, t)
	g.Bounds = g.Bounds.Encapsulate(bounds)
}

// Registry groups renderables by (mesh, material).
type Registry struct {
	// HideGrouped clears Renderable.Visible on objects that joined a group so
	// they are not drawn twice.
	HideGrouped bool

	groups map[GroupKey]*SourceGroup
	order  []*SourceGroup

	// Instancing capability per material, checked once.
	capable map[scene.MaterialID]bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		groups:  make(map[GroupKey]*SourceGroup),
		capable: make(map[scene.MaterialID]bool),
	}
}

// Rebuild discards all groups and regroups objects in a single pass.
// Objects missing a mesh or transform, and nil materials, are skipped
// silently as not ready yet. Materials without instancing support are
// skipped with a warning. Bounds are sampled from the transforms now and
// are not tracked afterwards.
func (r *Registry) Rebuild(objects []*scene.Renderable) {
	clear(r.groups)
	r.order = nil

	for _, obj := range objects {
		if obj == nil || obj.Mesh == nil || obj.Transform == nil {
			continue
		}

		var (
			bounds  math.AABB
			grouped bool
		)
		for _, mat := range obj.Materials {
			if mat == nil || !r.instancingCapable(mat, obj) {
				continue
			}
			if !grouped {
				bounds = obj.WorldBounds()
				grouped = true
			}

			key := GroupKey{Mesh: obj.Mesh.ID, Material: mat.ID}
			g, ok := r.groups[key]
			if !ok {
				g = &SourceGroup{Key: key, Bounds: bounds}
				r.groups[key] = g
				r.order = append(r.order, g)
			}
			g.add(obj.Transform, bounds)
		}

		if grouped && r.HideGrouped {
			obj.Visible = false
		}
	}

	logger.Debug("instancing groups rebuilt",
		zap.Int("objects", len(objects)),
		zap.Int("groups", len(r.order)),
	)
}

func (r *Registry) instancingCapable(mat *scene.Material, obj *scene.Renderable) bool {
	ok, seen := r.capable[mat.ID]
	if seen {
		return ok
	}
	ok = mat.Instancing
	r.capable[mat.ID] = ok
	if !ok {
		logger.Warn("material won't be rendered: GPU instancing is not enabled",
			zap.String("material", mat.Name),
			zap.String("object", obj.Name),
		)
	}
	return ok
}

// ForgetCapabilities drops the cached instancing flags so the next Rebuild
// re-reads them from the materials.
func (r *Registry) ForgetCapabilities() {
	clear(r.capable)
}

// Groups returns the groups in first-seen key order.
func (r *Registry) Groups() []*SourceGroup {
	return r.order
}

// Group looks up the group for key.
func (r *Registry) Group(key GroupKey) (*SourceGroup, bool) {
	g, ok := r.groups[key]
	return g, ok
}

// Len returns the number of groups.
func (r *Registry) Len() int {
	return len(r.order)
}
