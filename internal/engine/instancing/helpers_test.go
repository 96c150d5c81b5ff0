package instancing

import (
	gomath "math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/instancer/internal/engine/scene"
	"github.com/Faultbox/instancer/internal/logger"
	"github.com/Faultbox/instancer/pkg/math"
)

// fixedCamera is a camera with a precomputed view-projection matrix.
type fixedCamera struct {
	vp math.Mat4
}

func (c fixedCamera) ViewProjection() math.Mat4 { return c.vp }

// lookCamera builds a perspective camera at eye looking at target.
func lookCamera(eye, target math.Vec3, fovDeg, far float32) fixedCamera {
	proj := math.Perspective(fovDeg*gomath.Pi/180, 1, 0.1, far)
	view := math.LookAt(eye, target, math.Vec3{Y: 1})
	return fixedCamera{vp: proj.Mul(view)}
}

// submission records one SubmitInstanced call.
type submission struct {
	key      GroupKey
	matrices []math.Mat4
}

type recorder struct {
	calls []submission
}

func (r *recorder) SubmitInstanced(mesh scene.MeshID, material scene.MaterialID, matrices []math.Mat4) {
	r.calls = append(r.calls, submission{
		key:      GroupKey{Mesh: mesh, Material: material},
		matrices: append([]math.Mat4(nil), matrices...),
	})
}

func unitMesh(id scene.MeshID) *scene.Mesh {
	return &scene.Mesh{
		ID:          id,
		Name:        string(id),
		LocalBounds: math.NewAABBFromCenterSize(math.Vec3{}, math.Vec3{X: 1, Y: 1, Z: 1}),
	}
}

func material(id scene.MaterialID, instancing bool) *scene.Material {
	return &scene.Material{ID: id, Name: string(id), Instancing: instancing}
}

func object(name string, mesh *scene.Mesh, pos math.Vec3, mats ...*scene.Material) *scene.Renderable {
	return &scene.Renderable{
		Name:      name,
		Mesh:      mesh,
		Materials: mats,
		Transform: scene.NewTransform(pos),
		Visible:   true,
	}
}

// observeLogs routes the global logger into an in-memory observer for the
// duration of the test.
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	logger.SetLogger(zap.New(core))
	t.Cleanup(func() { logger.SetLogger(nil) })
	return logs
}
