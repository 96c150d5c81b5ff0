// Package main runs the instanced batching pipeline over a scene
// description, either headless for a fixed frame count or in a window.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/instancer/internal/config"
	"github.com/Faultbox/instancer/internal/engine/camera"
	"github.com/Faultbox/instancer/internal/engine/instancing"
	"github.com/Faultbox/instancer/internal/engine/scene"
	"github.com/Faultbox/instancer/internal/logger"
	"github.com/Faultbox/instancer/pkg/math"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Instancer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	sc, err := scene.LoadFile(cfg.Scene.Path)
	if err != nil {
		logger.Error("failed to load scene", zap.String("path", cfg.Scene.Path), zap.Error(err))
		os.Exit(1)
	}
	logger.Info("scene loaded",
		zap.String("path", cfg.Scene.Path),
		zap.Int("meshes", len(sc.Meshes)),
		zap.Int("materials", len(sc.Materials)),
		zap.Int("objects", len(sc.Objects)),
	)

	cam := newCamera(cfg, sc)

	sys := instancing.NewSystem(instancing.Options{
		Static:      cfg.Culling.StaticMeshes,
		HideGrouped: cfg.Culling.HideGrouped,
	}, nil)
	defer sys.Close()
	sys.Start(sc.Objects, cam)

	if cfg.Window.Headless {
		runHeadless(cfg, sc, sys)
	} else if err := runViewer(cfg, sc, sys, cam); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("instancer closed normally")
}

// newCamera builds the orbit camera from config. A non-positive distance
// frames the whole scene instead.
func newCamera(cfg *config.Config, sc *scene.Scene) *camera.OrbitCamera {
	aspect := float32(cfg.Window.Width) / float32(cfg.Window.Height)
	cam := camera.NewOrbitCamera(camera.NewProjection(cfg.Camera.FOVDegrees, aspect, cfg.Camera.Near, cfg.Camera.Far))
	cam.Center = math.Vec3{X: cfg.Camera.Center[0], Y: cfg.Camera.Center[1], Z: cfg.Camera.Center[2]}
	cam.Distance = cfg.Camera.Distance

	if cfg.Camera.Distance <= 0 {
		if b, ok := sc.Bounds(); ok {
			cam.FitToBounds(b)
		} else {
			cam.Distance = 20
		}
	}
	return cam
}
