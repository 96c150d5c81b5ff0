package renderer

import (
	"testing"

	"github.com/Faultbox/instancer/internal/engine/instancing"
	"github.com/Faultbox/instancer/pkg/math"
)

func TestBoxGeometry(t *testing.T) {
	box := math.AABB{Min: math.Vec3{X: -1, Y: 0, Z: -2}, Max: math.Vec3{X: 1, Y: 3, Z: 2}}
	vertices, indices := BoxGeometry(box)

	if len(vertices) != 24 {
		t.Errorf("vertices = %d, want 24", len(vertices))
	}
	if len(indices) != 36 {
		t.Errorf("indices = %d, want 36", len(indices))
	}

	for i, idx := range indices {
		if int(idx) >= len(vertices) {
			t.Fatalf("index %d out of range: %d", i, idx)
		}
	}

	// Each vertex lies on the face its normal points out of.
	for i, v := range vertices {
		p, n := v.Position, v.Normal
		var onFace bool
		switch {
		case n[0] < 0:
			onFace = p[0] == box.Min.X
		case n[0] > 0:
			onFace = p[0] == box.Max.X
		case n[1] < 0:
			onFace = p[1] == box.Min.Y
		case n[1] > 0:
			onFace = p[1] == box.Max.Y
		case n[2] < 0:
			onFace = p[2] == box.Min.Z
		case n[2] > 0:
			onFace = p[2] == box.Max.Z
		}
		if !onFace {
			t.Errorf("vertex %d at %v is not on the face with normal %v", i, p, n)
		}
	}
}

func TestLogSubmitter(t *testing.T) {
	var _ instancing.Submitter = (*LogSubmitter)(nil)

	s := &LogSubmitter{}
	s.SubmitInstanced("cube", "stone", make([]math.Mat4, 3))
	s.SubmitInstanced("rock", "moss", make([]math.Mat4, 2))

	if s.Calls != 2 || s.Instances != 5 {
		t.Errorf("calls=%d instances=%d, want 2 and 5", s.Calls, s.Instances)
	}
	want := []DrawRecord{{"cube", "stone", 3}, {"rock", "moss", 2}}
	for i, d := range s.Draws {
		if d != want[i] {
			t.Errorf("draw %d = %+v, want %+v", i, d, want[i])
		}
	}

	s.Reset()
	if s.Calls != 0 || s.Instances != 0 || len(s.Draws) != 0 {
		t.Errorf("Reset left state: %+v", s)
	}
}
