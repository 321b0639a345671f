package config

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/npillmayer/epicycles"
	"github.com/npillmayer/epicycles/animation"
	"github.com/npillmayer/epicycles/fourier"
	"github.com/npillmayer/epicycles/path"
	"github.com/npillmayer/epicycles/phasor"
	"gopkg.in/yaml.v3"
)

// Extent is the half-size of the box path shapes are fitted into before
// their spectrum is computed.
const Extent = 100.0

// Scene represents the optional scene YAML file of the demo.
type Scene struct {
	Phasors  int     `yaml:"phasors"`
	Samples  int     `yaml:"samples"`
	Analytic bool    `yaml:"analytic,omitempty"`
	Trail    int     `yaml:"trail"`
	FPS      int     `yaml:"fps"`
	Speed    float64 `yaml:"speed"`
	Seed     int64   `yaml:"seed,omitempty"`
	Shape    Shape   `yaml:"shape"`
}

// Shape selects what the epicycles draw.
//
// Kind is one of rectangle, line, svg, simple or random.
type Shape struct {
	Kind   string  `yaml:"kind"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	X0     float64 `yaml:"x0,omitempty"`
	Y0     float64 `yaml:"y0,omitempty"`
	X1     float64 `yaml:"x1,omitempty"`
	Y1     float64 `yaml:"y1,omitempty"`
	D      string  `yaml:"d,omitempty"`
}

// Default returns the scene used when no file is given.
func Default() *Scene {
	return &Scene{
		Phasors: 24,
		Samples: fourier.DefaultSamples,
		Trail:   phasor.DefaultTrailCapacity,
		FPS:     30,
		Speed:   1,
		Shape:   Shape{Kind: "rectangle", Width: 2, Height: 1},
	}
}

// LoadOptional reads a scene file if present. Values missing from the file
// keep their defaults.
func LoadOptional(file string) (*Scene, error) {
	scene := Default()
	if file == "" {
		return scene, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return scene, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	if err := yaml.Unmarshal(data, scene); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", file, err)
	}
	if err := scene.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return scene, nil
}

// Validate checks the parameters the engine does not check itself.
func (s *Scene) Validate() error {
	if s.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", s.FPS)
	}
	switch strings.ToLower(s.Shape.Kind) {
	case "rectangle", "line", "svg", "simple", "random":
	default:
		return fmt.Errorf("unknown shape kind %q", s.Shape.Kind)
	}
	if strings.EqualFold(s.Shape.Kind, "svg") && strings.TrimSpace(s.Shape.D) == "" {
		return errors.New("svg shape needs path data")
	}
	return nil
}

// AnimationConfig returns the engine parameters of the scene.
func (s *Scene) AnimationConfig() *animation.Config {
	return &animation.Config{
		Samples:       s.Samples,
		Analytic:      s.Analytic,
		TrailCapacity: s.Trail,
	}
}

// Path returns the shape as a path fitted into the box ±Extent, or nil for
// the demo kinds without a path.
func (s *Scene) Path() (*path.Path, error) {
	var p *path.Path
	switch strings.ToLower(s.Shape.Kind) {
	case "rectangle":
		w, h := s.Shape.Width/2, s.Shape.Height/2
		p = path.New().MoveTo(-w, -h).LineTo(w, -h).LineTo(w, h).LineTo(-w, h).Close()
	case "line":
		p = path.New().MoveTo(s.Shape.X0, s.Shape.Y0).LineTo(s.Shape.X1, s.Shape.Y1)
	case "svg":
		var err error
		if p, err = path.ParseSVG(s.Shape.D); err != nil {
			return nil, err
		}
	default:
		return nil, nil
	}
	return p.FitInto(epicycles.P(-Extent, -Extent), epicycles.P(Extent, Extent)), nil
}

// Build creates the animation of the scene.
func (s *Scene) Build() (*animation.Animation, error) {
	switch strings.ToLower(s.Shape.Kind) {
	case "simple":
		return animation.Simple(s.Phasors)
	case "random":
		return animation.Randomized(s.Phasors, rand.New(rand.NewSource(s.Seed)))
	}
	p, err := s.Path()
	if err != nil {
		return nil, err
	}
	return animation.FromPath(s.Phasors, p, s.AnimationConfig())
}
