// Command epicycles draws a path with a chain of rotating circles, either
// live in the terminal or as a PNG snapshot.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/epicycles/cmd/epicycles/internal/config"
	"github.com/npillmayer/schuko/tracing"
)

func main() {
	var (
		sceneFile string
		svgData   string
		pngFile   string
		steps     int
		size      int
	)

	flag.StringVar(&sceneFile, "config", "", "Scene YAML file")
	flag.StringVar(&svgData, "svg", "", "SVG path data to draw, overrides the scene's shape")
	flag.StringVar(&pngFile, "png", "", "Write a snapshot to this PNG file instead of animating")
	flag.IntVar(&steps, "steps", 0, "Frames to simulate before the snapshot (default: one period)")
	flag.IntVar(&size, "size", 512, "Snapshot size in pixels")
	flag.Parse()

	scene, err := config.LoadOptional(sceneFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if svgData != "" {
		scene.Shape = config.Shape{Kind: "svg", D: svgData}
	}

	ani, err := scene.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building animation: %v\n", err)
		os.Exit(1)
	}
	tracing.Select("animation").Infof("scene %s with %d phasors", scene.Shape.Kind, ani.Phasors().Len())

	if pngFile != "" {
		if steps <= 0 {
			steps = scene.FPS * periodSeconds
		}
		if err := writeSnapshot(pngFile, ani, scene, steps, size); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTerminal(ani, scene); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
