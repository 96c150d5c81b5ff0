package main

import (
	"go.uber.org/zap"

	"github.com/Faultbox/instancer/internal/config"
	"github.com/Faultbox/instancer/internal/engine/debug"
	"github.com/Faultbox/instancer/internal/engine/instancing"
	"github.com/Faultbox/instancer/internal/engine/renderer"
	"github.com/Faultbox/instancer/internal/engine/scene"
	"github.com/Faultbox/instancer/internal/logger"
	"github.com/Faultbox/instancer/pkg/math"
)

// runHeadless drives the pipeline for cfg.Window.Frames frames against the
// logging backend.
func runHeadless(cfg *config.Config, sc *scene.Scene, sys *instancing.System) {
	sub := &renderer.LogSubmitter{}

	for frame := 0; frame < cfg.Window.Frames; frame++ {
		if !sys.Static() {
			spin(sc.Objects, cfg.Culling.Spin)
		}

		sub.Reset()
		stats := sys.Update(sub)
		individual := drawIndividual(sc.Objects, sub)

		logger.Info("frame",
			zap.Int("frame", frame),
			zap.Int("batches", stats.Batches),
			zap.Int("visible", stats.Visible),
			zap.Int("culled", stats.Culled()),
			zap.Int("instances", stats.Instances),
			zap.Int("individual", individual),
			zap.Int("draw_calls", sub.Calls),
		)
	}

	var frustum *math.Frustum
	if f, ok := sys.Frustum(); ok {
		frustum = &f
	}
	for _, g := range debug.GroupGizmos(sys.Groups(), frustum) {
		if g.OutOfView {
			logger.Info("group "+g.Label,
				zap.Stringer("group", g.Key),
				zap.Int("members", g.Members),
			)
		}
	}

	ps := sys.Pool().Stats()
	logger.Info("matrix pool",
		zap.Int("allocations", ps.Allocations),
		zap.Int("reuses", ps.Reuses),
		zap.Int("retained", ps.Retained),
	)
}
