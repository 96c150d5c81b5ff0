package renderer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/instancer/internal/engine/scene"
	"github.com/Faultbox/instancer/internal/logger"
	"github.com/Faultbox/instancer/pkg/math"
)

// LogSubmitter is a headless backend: it logs every instanced draw at
// debug level and keeps per-frame counters.
type LogSubmitter struct {
	Calls     int
	Instances int

	// Draws lists the keys submitted this frame, in order.
	Draws []DrawRecord
}

// DrawRecord is one logged instanced draw.
type DrawRecord struct {
	Mesh      scene.MeshID
	Material  scene.MaterialID
	Instances int
}

// SubmitInstanced implements instancing.Submitter.
func (s *LogSubmitter) SubmitInstanced(mesh scene.MeshID, material scene.MaterialID, matrices []math.Mat4) {
	s.Calls++
	s.Instances += len(matrices)
	s.Draws = append(s.Draws, DrawRecord{Mesh: mesh, Material: material, Instances: len(matrices)})

	logger.Debug("draw instanced",
		zap.String("mesh", string(mesh)),
		zap.String("material", string(material)),
		zap.Int("instances", len(matrices)),
	)
}

// Reset clears the counters for a new frame.
func (s *LogSubmitter) Reset() {
	s.Calls = 0
	s.Instances = 0
	s.Draws = s.Draws[:0]
}
