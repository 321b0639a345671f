package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/npillmayer/epicycles/animation"
	"github.com/npillmayer/epicycles/cmd/epicycles/internal/config"
	"golang.org/x/image/vector"
)

var (
	background  = color.RGBA{0x10, 0x10, 0x10, 0xff}
	circleColor = color.RGBA{0x33, 0x33, 0x33, 0xff}
	armColor    = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}
	trailColor  = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// writeSnapshot simulates steps frames and writes the last one to file.
func writeSnapshot(file string, ani *animation.Animation, scene *config.Scene, steps, size int) error {
	dt := frameStep(scene)
	for i := 0; i < steps; i++ {
		ani.Update(dt)
	}
	img := renderFrame(ani, size)
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", file, err)
	}
	return f.Close()
}

// renderFrame draws the current frame: circles first, then the arm chain
// and the trail on top.
func renderFrame(ani *animation.Animation, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	vp := newViewport(ani, float64(size), float64(size))
	arm := ani.ArmState(0, 0)

	scale := vp.m[0]
	for _, p := range arm {
		if r := p.R * scale; r >= 1 {
			cx, cy := vp.apply(p.X, p.Y)
			stroke(img, circle(cx, cy, r), 1, circleColor)
		}
	}
	pts := make([][2]float64, len(arm))
	for i, p := range arm {
		pts[i][0], pts[i][1] = vp.apply(p.X, p.Y)
	}
	stroke(img, pts, 1, armColor)
	trail := ani.TrailState(0, 0)
	pts = make([][2]float64, len(trail))
	for i, p := range trail {
		pts[i][0], pts[i][1] = vp.apply(p.X, p.Y)
	}
	stroke(img, pts, 2, trailColor)
	return img
}

func circle(cx, cy, r float64) [][2]float64 {
	const n = 64
	pts := make([][2]float64, n+1)
	for i := range pts {
		s, c := math.Sincos(2 * math.Pi * float64(i) / n)
		pts[i] = [2]float64{cx + r*c, cy + r*s}
	}
	return pts
}

// stroke draws a polyline of the given width, one quad per segment.
func stroke(dst *image.RGBA, pts [][2]float64, width float64, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	for i := 1; i < len(pts); i++ {
		x0, y0 := pts[i-1][0], pts[i-1][1]
		x1, y1 := pts[i][0], pts[i][1]
		l := math.Hypot(x1-x0, y1-y0)
		if l == 0 {
			continue
		}
		nx, ny := -(y1-y0)/l*width/2, (x1-x0)/l*width/2
		z.MoveTo(float32(x0+nx), float32(y0+ny))
		z.LineTo(float32(x1+nx), float32(y1+ny))
		z.LineTo(float32(x1-nx), float32(y1-ny))
		z.LineTo(float32(x0-nx), float32(y0-ny))
		z.ClosePath()
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}
