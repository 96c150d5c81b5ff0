package instancing

import (
	"testing"

	"github.com/Faultbox/instancer/pkg/math"
)

func TestSystemWithoutCameraDisables(t *testing.T) {
	logs := observeLogs(t)

	sys := NewSystem(Options{Static: true}, nil)
	sys.Start(buildTestScene(), nil)

	if sys.Enabled() {
		t.Fatal("system without camera should be disabled")
	}
	if logs.FilterMessageSnippet("no camera").Len() != 1 {
		t.Error("expected a no camera error")
	}

	rec := &recorder{}
	if stats := sys.Update(rec); stats != (CullStats{}) || len(rec.calls) != 0 {
		t.Errorf("disabled Update should do nothing, got %+v and %d calls", stats, len(rec.calls))
	}
	if _, ok := sys.Frustum(); ok {
		t.Error("disabled system should not have a frustum")
	}

	// Batches were still built and can be drawn once a camera arrives.
	if len(sys.Batches()) != 2 {
		t.Errorf("batches = %d, want 2", len(sys.Batches()))
	}
	sys.SetCamera(lookCamera(math.Vec3{Z: 10}, math.Vec3{}, 60, 50))
	if !sys.Enabled() {
		t.Error("SetCamera should enable the system")
	}
	if stats := sys.Update(rec); stats.Visible != 1 {
		t.Errorf("visible = %d, want 1", stats.Visible)
	}
}

func TestSystemStaticKeepsMatrices(t *testing.T) {
	objects := buildTestScene()
	sys := NewSystem(Options{Static: true}, nil)
	sys.Start(objects, lookCamera(math.Vec3{Z: 10}, math.Vec3{}, 60, 50))

	initial := make([][]math.Mat4, 0)
	for _, b := range sys.Batches() {
		initial = append(initial, append([]math.Mat4(nil), b.Matrices...))
	}

	// Moving objects must not leak into a static system.
	objects[0].Transform.Position = math.Vec3{X: -20}
	for frame := 0; frame < 5; frame++ {
		sys.Update(&recorder{})
	}

	for bi, b := range sys.Batches() {
		for i := range b.Matrices {
			if b.Matrices[i] != initial[bi][i] {
				t.Errorf("batch %d slot %d changed in static mode", bi, i)
			}
		}
	}
	if got := sys.Pool().Stats().Allocations; got != 2 {
		t.Errorf("allocations = %d, want 2", got)
	}
}

func TestSystemDynamicRefreshes(t *testing.T) {
	objects := buildTestScene()
	sys := NewSystem(Options{Static: false}, nil)
	sys.Start(objects, lookCamera(math.Vec3{Z: 10}, math.Vec3{}, 60, 50))

	objects[0].Transform.Position = math.Vec3{Y: 2}
	rec := &recorder{}
	stats := sys.Update(rec)

	if len(rec.calls) != 1 {
		t.Fatalf("submissions = %d, want 1", len(rec.calls))
	}
	if got := rec.calls[0].matrices[0].Translation(); got != (math.Vec3{Y: 2}) {
		t.Errorf("refreshed translation = %v, want (0, 2, 0)", got)
	}
	if stats != sys.LastStats() {
		t.Errorf("LastStats = %+v, want %+v", sys.LastStats(), stats)
	}
	if _, ok := sys.Frustum(); !ok {
		t.Error("expected a frustum after Update")
	}

	// Steady state: arrays come back from the pool.
	allocs := sys.Pool().Stats().Allocations
	for frame := 0; frame < 5; frame++ {
		sys.Update(&recorder{})
	}
	if got := sys.Pool().Stats().Allocations; got != allocs {
		t.Errorf("per-frame refresh allocated: %d -> %d", allocs, got)
	}
}

func TestSystemRebuildAndClose(t *testing.T) {
	objects := buildTestScene()
	pool := NewMatrixPool()
	sys := NewSystem(Options{Static: true, HideGrouped: true}, pool)
	sys.Start(objects, lookCamera(math.Vec3{Z: 10}, math.Vec3{}, 60, 50))

	for _, obj := range objects {
		if obj.Visible {
			t.Errorf("%s should be hidden once batched", obj.Name)
		}
	}

	// Keep only the first two objects: one group of two members.
	sys.Rebuild(objects[:2])
	if len(sys.Groups()) != 1 {
		t.Fatalf("groups = %d, want 1", len(sys.Groups()))
	}
	if got := len(sys.Batches()[0].Matrices); got != 2 {
		t.Errorf("matrices = %d, want 2", got)
	}

	sys.Close()
	if len(sys.Batches()) != 0 {
		t.Error("Close should release all batches")
	}
	if pool.Free(2) != 1 {
		t.Errorf("free length-2 arrays = %d, want 1", pool.Free(2))
	}
}

func TestSystemSetStatic(t *testing.T) {
	objects := buildTestScene()
	sys := NewSystem(Options{Static: true}, nil)
	sys.Start(objects, lookCamera(math.Vec3{Z: 10}, math.Vec3{}, 60, 50))

	objects[0].Transform.Position = math.Vec3{Y: 1}
	sys.SetStatic(false)
	if sys.Static() {
		t.Fatal("Static should report false")
	}

	rec := &recorder{}
	sys.Update(rec)
	if got := rec.calls[0].matrices[0].Translation(); got != (math.Vec3{Y: 1}) {
		t.Errorf("translation after SetStatic(false) = %v, want (0, 1, 0)", got)
	}
}
