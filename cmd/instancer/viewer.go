package main

import (
	"fmt"

	"github.com/Faultbox/instancer/internal/config"
	"github.com/Faultbox/instancer/internal/engine/camera"
	"github.com/Faultbox/instancer/internal/engine/debug"
	"github.com/Faultbox/instancer/internal/engine/instancing"
	"github.com/Faultbox/instancer/internal/engine/renderer"
	"github.com/Faultbox/instancer/internal/engine/scene"
	"github.com/Faultbox/instancer/internal/engine/window"
	"github.com/Faultbox/instancer/internal/logger"
	"github.com/Faultbox/instancer/pkg/math"
)

var (
	gizmoColor     = [4]float32{0.2, 1.0, 0.2, 1.0}
	outOfViewColor = [4]float32{1.0, 0.3, 0.2, 1.0}
)

// runViewer opens a window and renders until it is closed. Drag orbits,
// the wheel zooms, G toggles group gizmos and Space toggles dynamics.
func runViewer(cfg *config.Config, sc *scene.Scene, sys *instancing.System, cam *camera.OrbitCamera) error {
	win, err := window.New(window.Config{
		Title:      "Instancer",
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	r, err := renderer.New(renderer.Config{Width: cfg.Window.Width, Height: cfg.Window.Height})
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	defer r.Close()
	r.RegisterScene(sc)

	showGizmos := false
	for frame := 0; ; frame++ {
		in := win.PollEvents()
		if in.Quit {
			return nil
		}
		if in.DragX != 0 || in.DragY != 0 {
			cam.HandleDrag(in.DragX, in.DragY)
		}
		if in.Wheel != 0 {
			cam.HandleZoom(in.Wheel)
		}
		if in.Resized {
			r.Resize(in.Width, in.Height)
			cam.SetAspect(in.Width, in.Height)
		}
		if in.ToggleGizmos {
			showGizmos = !showGizmos
		}
		if in.ToggleDynamics {
			sys.SetStatic(!sys.Static())
			logger.Sugar.Infof("static meshes: %v", sys.Static())
		}
		if !sys.Static() {
			spin(sc.Objects, cfg.Culling.Spin)
		}

		viewProj := cam.ViewProjection()
		r.Begin(viewProj)
		stats := sys.Update(r)
		drawIndividual(sc.Objects, r)

		if showGizmos {
			drawGizmos(r, sys, viewProj)
		}

		win.SwapBuffers()

		if frame%30 == 0 {
			win.SetTitle(fmt.Sprintf("Instancer - batches %d/%d, instances %d, draw calls %d",
				stats.Visible, stats.Batches, stats.Instances, r.DrawCalls))
		}
	}
}

func drawGizmos(r *renderer.Renderer, sys *instancing.System, viewProj math.Mat4) {
	var frustum *math.Frustum
	if f, ok := sys.Frustum(); ok {
		frustum = &f
	}

	var inView, outOfView []debug.Gizmo
	for _, g := range debug.GroupGizmos(sys.Groups(), frustum) {
		if g.OutOfView {
			outOfView = append(outOfView, g)
		} else {
			inView = append(inView, g)
		}
	}
	if v := debug.LineVertices(inView); len(v) > 0 {
		r.DrawLines(viewProj, v, gizmoColor)
	}
	if v := debug.LineVertices(outOfView); len(v) > 0 {
		r.DrawLines(viewProj, v, outOfViewColor)
	}
}
