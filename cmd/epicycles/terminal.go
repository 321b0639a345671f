package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/npillmayer/epicycles/animation"
	"github.com/npillmayer/epicycles/cmd/epicycles/internal/config"
)

var (
	armStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	jointStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	trailStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	tipStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	infoStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

type terminal struct {
	screen tcell.Screen
	ani    *animation.Animation
	scene  *config.Scene
	vp     viewport
	width  int
	height int
}

func runTerminal(ani *animation.Animation, scene *config.Scene) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	term := &terminal{screen: screen, ani: ani, scene: scene}
	term.resize()
	term.run()
	return nil
}

// resize fits the chain into the screen. Terminal cells are about twice as
// high as wide, so the canvas has two rows per cell.
func (term *terminal) resize() {
	term.width, term.height = term.screen.Size()
	term.vp = newViewport(term.ani, float64(term.width), float64(2*term.height))
	term.screen.Sync()
}

func (term *terminal) run() {
	ticker := time.NewTicker(time.Second / time.Duration(term.scene.FPS))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := term.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	dt := frameStep(term.scene)
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return
				}
			case *tcell.EventResize:
				term.resize()
			}
		case <-ticker.C:
			term.ani.Update(dt)
			term.draw()
		}
	}
}

func (term *terminal) draw() {
	term.screen.Clear()
	arm := term.ani.ArmState(0, 0)
	for i := 1; i < len(arm); i++ {
		x0, y0 := term.cell(arm[i-1].X, arm[i-1].Y)
		x1, y1 := term.cell(arm[i].X, arm[i].Y)
		term.line(x0, y0, x1, y1, '·', armStyle)
	}
	for _, p := range arm[:len(arm)-1] {
		x, y := term.cell(p.X, p.Y)
		term.put(x, y, 'o', jointStyle)
	}
	for _, p := range term.ani.TrailState(0, 0) {
		x, y := term.cell(p.X, p.Y)
		term.put(x, y, '█', trailStyle)
	}
	tip := arm[len(arm)-1]
	x, y := term.cell(tip.X, tip.Y)
	term.put(x, y, '@', tipStyle)
	for i, r := range "epicycles: " + term.scene.Shape.Kind + " (q to quit)" {
		term.put(i, 0, r, infoStyle)
	}
	term.screen.Show()
}

func (term *terminal) cell(x, y float64) (int, int) {
	cx, cy := term.vp.apply(x, y)
	return int(cx), int(cy / 2)
}

func (term *terminal) put(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= term.width || y >= term.height {
		return
	}
	term.screen.SetContent(x, y, r, nil, style)
}

// line draws a line of cells with Bresenham's algorithm.
func (term *terminal) line(x0, y0, x1, y1 int, r rune, style tcell.Style) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		term.put(x0, y0, r, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func sign(a int) int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	}
	return 0
}
