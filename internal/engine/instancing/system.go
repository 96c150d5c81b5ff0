package instancing

import (
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/instancer/internal/engine/scene"
	"github.com/Faultbox/instancer/internal/logger"
	"github.com/Faultbox/instancer/pkg/math"
)

// Options configures a System.
type Options struct {
	// Static skips the per-frame matrix refresh. Batches built at Start or
	// Rebuild stay valid until the next Rebuild.
	Static bool

	// HideGrouped hides batched objects from their individual draw path.
	HideGrouped bool
}

// System is the per-frame entry point: it owns the registry, the builder
// and the frustum of the last frame.
type System struct {
	mu sync.Mutex

	opts     Options
	pool     *MatrixPool
	registry *Registry
	builder  *Builder

	camera  Camera
	enabled bool

	frustum    math.Frustum
	hasFrustum bool
	lastStats  CullStats
}

// NewSystem creates a system. A nil pool gets a private one; pass a shared
// pool to recycle arrays across several systems driven from one thread.
func NewSystem(opts Options, pool *MatrixPool) *System {
	if pool == nil {
		pool = NewMatrixPool()
	}
	reg := NewRegistry()
	reg.HideGrouped = opts.HideGrouped
	return &System{
		opts:     opts,
		pool:     pool,
		registry: reg,
		builder:  NewBuilder(pool),
	}
}

// Start groups objects, builds the first batches and attaches the camera.
// Without a camera the system logs an error and stays disabled.
func (s *System) Start(objects []*scene.Renderable, cam Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rebuild(objects)
	s.setCamera(cam)
}

// SetCamera replaces the camera. A nil camera disables the system.
func (s *System) SetCamera(cam Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setCamera(cam)
}

func (s *System) setCamera(cam Camera) {
	s.camera = cam
	s.enabled = cam != nil
	if !s.enabled {
		logger.Error("no camera, instanced rendering disabled")
	}
}

// Rebuild regroups objects after a structural scene change and rebuilds
// the batches.
func (s *System) Rebuild(objects []*scene.Renderable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rebuild(objects)
}

func (s *System) rebuild(objects []*scene.Renderable) {
	s.registry.Rebuild(objects)
	s.builder.RefreshMatrices(s.registry)
	logger.Debug("instancing batches built",
		zap.Int("batches", len(s.builder.Batches())),
		zap.Int("pool_allocations", s.pool.Stats().Allocations),
	)
}

// Update runs one frame: refresh matrices unless static, extract the
// frustum once, then cull and submit. It does nothing while disabled.
// sub must not call back into the System.
func (s *System) Update(sub Submitter) CullStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		return CullStats{}
	}
	if !s.opts.Static {
		s.builder.RefreshMatrices(s.registry)
	}

	s.frustum = ComputeFrustum(s.camera)
	s.hasFrustum = true
	s.lastStats = RenderVisible(s.builder.Batches(), s.frustum, sub)
	return s.lastStats
}

// SetStatic switches the per-frame matrix refresh off (true) or on.
func (s *System) SetStatic(static bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.Static = static
}

// Static reports whether the per-frame refresh is skipped.
func (s *System) Static() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.Static
}

// Close returns every matrix array to the pool.
func (s *System) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.builder.Release()
}

// Enabled reports whether Update will render.
func (s *System) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Groups returns the current source groups.
func (s *System) Groups() []*SourceGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Groups()
}

// Batches returns the current batch set.
func (s *System) Batches() []Batch {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.builder.Batches()
}

// Frustum returns the frustum used by the last Update.
func (s *System) Frustum() (math.Frustum, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frustum, s.hasFrustum
}

// LastStats returns the result of the last Update.
func (s *System) LastStats() CullStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastStats
}

// Pool returns the matrix pool backing the system.
func (s *System) Pool() *MatrixPool {
	return s.pool
}
