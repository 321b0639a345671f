// Package animation drives an epicycle drawing frame by frame.
/*
An Animation owns a phasor array and the trail of its tip. A host creates
one from a path, then calls Update once per frame and reads ArmState and
TrailState to draw the chain and the traced curve:

	ani, err := animation.Rectangle(8, 200, 200, nil)
	...
	for frame := range frames {
		ani.Update(frame.dt)
		draw(ani.ArmState(cx, cy), ani.TrailState(cx, cy))
	}

An Animation must not be used concurrently.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package animation

import (
	"math"
	"math/rand"

	"github.com/npillmayer/epicycles"
	"github.com/npillmayer/epicycles/fourier"
	"github.com/npillmayer/epicycles/path"
	"github.com/npillmayer/epicycles/phasor"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'animation'
func tracer() tracing.Trace {
	return tracing.Select("animation")
}

// MaxRadius is the radius of the constant phasor of the demo animations.
const MaxRadius = 100.0

// Config holds the parameters for building an animation.
type Config struct {
	// Quadrature sample count per path element
	Samples int

	// Use closed-form coefficients for straight lines
	Analytic bool

	// Maximum number of tip positions remembered
	TrailCapacity int
}

// DefaultConfig returns the configuration used for a nil *Config.
func DefaultConfig() *Config {
	return &Config{
		Samples:       fourier.DefaultSamples,
		Analytic:      false,
		TrailCapacity: phasor.DefaultTrailCapacity,
	}
}

func (conf *Config) estimator() path.Estimator {
	return path.Estimator{Samples: conf.Samples, Analytic: conf.Analytic}
}

// Animation is an epicycle chain together with the trail of its tip.
type Animation struct {
	phasors *phasor.Array
	trail   *phasor.Trail
}

// New wraps an existing phasor array.
func New(phasors *phasor.Array, conf *Config) (*Animation, error) {
	if conf == nil {
		conf = DefaultConfig()
	}
	trail, err := phasor.NewTrail(conf.TrailCapacity)
	if err != nil {
		return nil, err
	}
	return &Animation{phasors: phasors, trail: trail}, nil
}

// FromPath creates an animation tracing p with count harmonics, i.e.
// 2·count−1 phasors.
func FromPath(count int, p *path.Path, conf *Config) (*Animation, error) {
	if conf == nil {
		conf = DefaultConfig()
	}
	phasors, err := p.Spectrum(count, conf.estimator())
	if err != nil {
		return nil, err
	}
	tracer().Infof("animation of %d phasors for path of %d elements", phasors.Len(), p.N())
	return New(phasors, conf)
}

// FromSVG creates an animation tracing the SVG path data d.
func FromSVG(count int, d string, conf *Config) (*Animation, error) {
	p, err := path.ParseSVG(d)
	if err != nil {
		return nil, err
	}
	return FromPath(count, p, conf)
}

// Line creates an animation tracing the segment from (x0,y0) to (x1,y1).
// The segment is traversed in one direction only, so the chain jumps back
// at the end of every period.
func Line(count int, x0, y0, x1, y1 float64, conf *Config) (*Animation, error) {
	p := path.New().MoveTo(x0, y0).LineTo(x1, y1)
	return FromPath(count, p, conf)
}

// Rectangle creates an animation tracing a width × height rectangle centered
// at the origin. The path starts at corner (−width/2, −height/2).
func Rectangle(count int, width, height float64, conf *Config) (*Animation, error) {
	w, h := width/2, height/2
	p := path.New().MoveTo(-w, -h).LineTo(w, -h).LineTo(w, h).LineTo(-w, h).Close()
	return FromPath(count, p, conf)
}

// Simple creates a demo animation of phasors with radius MaxRadius/n, all
// starting upright.
func Simple(count int) (*Animation, error) {
	return demo(count, func(int) float64 { return math.Pi / 2 })
}

// Randomized creates a demo animation of phasors with radius MaxRadius/n
// and random phases drawn from rng.
func Randomized(count int, rng *rand.Rand) (*Animation, error) {
	return demo(count, func(int) float64 { return 2 * math.Pi * rng.Float64() })
}

func demo(count int, phase func(n int) float64) (*Animation, error) {
	phasors, err := phasor.New(count, func(n int) complex128 {
		r := MaxRadius
		if n != 0 {
			r /= float64(n)
		}
		return epicycles.Polar(phase(n), r)
	})
	if err != nil {
		return nil, err
	}
	return New(phasors, nil)
}

// Update advances time by dt, then records the new tip in the trail.
func (ani *Animation) Update(dt float64) {
	ani.phasors.Update(dt)
	ani.trail.Push(epicycles.Pair(ani.phasors.Sum()))
}

// ArmState returns the epicycle chain anchored at (x,y).
func (ani *Animation) ArmState(x, y float64) []phasor.ArmPoint {
	return phasor.ArmState(ani.phasors, epicycles.P(x, y))
}

// LastPoint returns the tip of the chain anchored at (x,y).
func (ani *Animation) LastPoint(x, y float64) phasor.ArmPoint {
	return phasor.LastPoint(ani.phasors, epicycles.P(x, y))
}

// TrailState returns the recent tip positions, oldest first, for a chain
// anchored at (x,y).
func (ani *Animation) TrailState(x, y float64) []phasor.TrailPoint {
	return ani.trail.Points(epicycles.P(x, y))
}

// Phasors gives read access to the phasor array. Callers must not call
// Update on it, as this would bypass the trail.
func (ani *Animation) Phasors() *phasor.Array {
	return ani.phasors
}

// Trail returns the trail of the tip.
func (ani *Animation) Trail() *phasor.Trail {
	return ani.trail
}
