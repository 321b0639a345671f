package main

import (
	"math"

	"github.com/npillmayer/epicycles"
	"github.com/npillmayer/epicycles/animation"
	"github.com/npillmayer/epicycles/cmd/epicycles/internal/config"
)

// viewport maps world coordinates of a chain anchored at the origin onto
// a canvas.
type viewport struct {
	m epicycles.AT
}

// newViewport fits the circle the chain can reach into a w × h canvas,
// leaving a small margin.
func newViewport(ani *animation.Animation, w, h float64) viewport {
	reach := 0.0
	for _, p := range ani.ArmState(0, 0) {
		reach += p.R
	}
	reach = math.Max(reach, 1) * 1.05
	m := epicycles.Fit(epicycles.P(-reach, -reach), epicycles.P(reach, reach),
		epicycles.P(0, 0), epicycles.P(w, h))
	return viewport{m: m}
}

func (vp viewport) apply(x, y float64) (float64, float64) {
	return vp.m.Transform(epicycles.P(x, y)).F()
}

// periodSeconds is the duration of one period at speed 1.
const periodSeconds = 10

// frameStep returns the time step per frame at the scene's frame rate.
func frameStep(scene *config.Scene) float64 {
	return 2 * math.Pi * scene.Speed / float64(scene.FPS*periodSeconds)
}
