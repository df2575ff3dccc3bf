// Command polyscope animates a rotating polygon sequencer in the terminal:
// layered shape copies drawn with tcell, axis crossings flashed and played
// through the beep synth.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jbeda/geom"

	"github.com/lixenwraith/polyrhythm/audio"
	"github.com/lixenwraith/polyrhythm/engine"
	"github.com/lixenwraith/polyrhythm/geometry"
	"github.com/lixenwraith/polyrhythm/music"
	"github.com/lixenwraith/polyrhythm/parameter"
	"github.com/lixenwraith/polyrhythm/trigger"
)

const flashDuration = 150 * time.Millisecond

type flash struct {
	pos   geom.Coord
	until time.Time
}

// App owns the screen, the sequencer, and the visual trigger state
type App struct {
	screen tcell.Screen
	seq    *engine.Sequencer
	player *audio.Player

	flashes  []flash
	lastNote string
	fired    uint64
	paused   bool
}

// Fired implements trigger.Observer for the on-screen flash layer
func (a *App) Fired(f trigger.Firing) {
	a.flashes = append(a.flashes, flash{pos: f.Event.Position, until: time.Now().Add(flashDuration)})
	a.lastNote = f.Note.Name
	a.fired = f.Event.Sequence + 1
}

func (a *App) Suppressed(trigger.Event) {}

func (a *App) Failed(layer int, err error) {
	log.Printf("layer %d: %v", layer, err)
}

func main() {
	radius := flag.Float64("radius", 100, "shape circumradius")
	segments := flag.Int("segments", 6, "vertex count")
	family := flag.String("family", "regular", "shape family: regular|star|euclidean|fractal")
	skip := flag.Int("skip", 2, "star polygon vertex step")
	pulses := flag.Int("pulses", 3, "euclidean rhythm onset count")
	divisions := flag.Int("divisions", 2, "fractal subdivisions per edge")
	copies := flag.Int("copies", 3, "concentric copy count")
	stepScale := flag.Float64("step-scale", 0.75, "per-copy scale factor")
	angle := flag.Float64("angle", 15, "per-copy rotation offset, degrees")
	startAngle := flag.Float64("start-angle", 0, "first copy rotation, degrees")
	cuts := flag.Bool("cuts", false, "compute and trigger intersections")
	speed := flag.Float64("speed", parameter.DefaultRotationSpeed, "rotation speed, degrees/sec")
	bpm := flag.Float64("bpm", parameter.DefaultBPM, "quantization tempo")
	gridName := flag.String("grid", "eighth", "quantization grid: quarter|eighth|triplet|sixteenth")
	quantize := flag.Bool("quantize", false, "align triggers to the musical grid")
	mute := flag.Bool("mute", false, "disable audio output")
	volume := flag.Float64("volume", 0.7, "master volume 0..1")
	flag.Parse()

	spec := geometry.ShapeSpec{
		Radius:           *radius,
		Segments:         *segments,
		Family:           parseFamily(*family),
		StarSkip:         *skip,
		EuclidPulses:     *pulses,
		FractalDivisions: *divisions,
		UseCuts:          *cuts,
		Copies:           *copies,
		StepScale:        *stepScale,
		AngleDeg:         *angle,
		StartAngleDeg:    *startAngle,
	}

	app, err := newApp(spec, *speed, *bpm, parseGrid(*gridName), *quantize, *mute, *volume)
	if err != nil {
		fmt.Fprintf(os.Stderr, "polyscope: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	app.run()
}

func parseFamily(name string) geometry.Family {
	switch name {
	case "star":
		return geometry.FamilyStar
	case "euclidean":
		return geometry.FamilyEuclidean
	case "fractal":
		return geometry.FamilyFractal
	default:
		return geometry.FamilyRegular
	}
}

func parseGrid(name string) music.Grid {
	switch name {
	case "quarter":
		return music.GridQuarter
	case "triplet":
		return music.GridEighthTriplet
	case "sixteenth":
		return music.GridSixteenth
	default:
		return music.GridEighth
	}
}

func newApp(spec geometry.ShapeSpec, speed, bpm float64, grid music.Grid, quantize, mute bool, volume float64) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	app := &App{screen: screen}

	var dispatcher trigger.Dispatcher
	if !mute {
		player := audio.NewPlayer(volume)
		if err := player.Initialize(); err != nil {
			// Non-fatal, the visualizer can run silent
			log.Printf("audio initialization failed: %v", err)
		} else {
			app.player = player
			dispatcher = player
		}
	}

	app.seq = engine.NewSequencer(engine.Config{
		BPM:        bpm,
		Grid:       grid,
		Quantize:   quantize,
		Resolver:   trigger.NewScaleResolver(57, nil), // A3 minor pentatonic
		Dispatcher: dispatcher,
		Observer:   app,
	})
	layer := app.seq.AddLayer(spec)
	layer.SpeedDegPerSec = speed

	return app, nil
}

func (a *App) cleanup() {
	a.screen.Fini()
	if a.player != nil {
		a.player.Close()
	}
}

func (a *App) run() {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- a.screen.PollEvent()
		}
	}()

	tickInterval := time.Second / parameter.DefaultTickRate
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			if !a.paused {
				a.seq.Tick(tickInterval.Seconds())
			}
			a.draw()
		}
	}
}

// handleEvent returns false when the app should quit
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
			return false
		case ev.Rune() == ' ':
			a.paused = !a.paused
		case ev.Rune() == 'r':
			a.seq.Reset()
		case ev.Rune() == '+', ev.Rune() == '=':
			for _, l := range a.seq.Layers() {
				l.SpeedDegPerSec *= 1.25
			}
		case ev.Rune() == '-':
			for _, l := range a.seq.Layers() {
				l.SpeedDegPerSec /= 1.25
			}
		}
	}
	return true
}

func (a *App) draw() {
	a.screen.Clear()
	w, h := a.screen.Size()

	// World-to-cell mapping: fit the largest copy, terminal cells are about
	// twice as tall as wide
	worldR := a.worldRadius() * 1.1
	if worldR <= 0 {
		worldR = 1
	}
	sy := float64(h-2) / 2 / worldR
	sx := sy * 2
	if limit := float64(w-2) / 2 / worldR; sx > limit {
		sx = limit
		sy = sx / 2
	}
	cx, cy := w/2, (h-1)/2

	toCell := func(p geom.Coord) (int, int) {
		return cx + int(math.Round(p.X*sx)), cy - int(math.Round(p.Y*sy))
	}

	axisStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for y := 0; y < cy; y++ {
		a.screen.SetContent(cx, y, '·', nil, axisStyle)
	}

	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorTeal)
	vertexStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	interStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	for _, l := range a.seq.Layers() {
		buf := l.Buffer()
		if buf == nil {
			continue
		}
		rot := l.RotationDeg * math.Pi / 180

		for _, tr := range l.Transforms() {
			for _, s := range buf.Segments {
				if s.A >= buf.BaseVertexCount || s.B >= buf.BaseVertexCount {
					continue
				}
				p1 := geometry.Rotate(tr.Apply(buf.Points[s.A]), rot)
				p2 := geometry.Rotate(tr.Apply(buf.Points[s.B]), rot)
				x1, y1 := toCell(p1)
				x2, y2 := toCell(p2)
				drawLine(a.screen, x1, y1, x2, y2, lineStyle)
			}
			for vi := 0; vi < buf.BaseVertexCount; vi++ {
				p := geometry.Rotate(tr.Apply(buf.Points[vi]), rot)
				x, y := toCell(p)
				a.screen.SetContent(x, y, '•', nil, vertexStyle)
			}
		}

		for ii := buf.BaseVertexCount; ii < len(buf.Points); ii++ {
			p := geometry.Rotate(buf.Points[ii], rot)
			x, y := toCell(p)
			a.screen.SetContent(x, y, 'x', nil, interStyle)
		}
	}

	now := time.Now()
	flashStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	kept := a.flashes[:0]
	for _, f := range a.flashes {
		if now.After(f.until) {
			continue
		}
		kept = append(kept, f)
		x, y := toCell(f.pos)
		a.screen.SetContent(x, y, '*', nil, flashStyle)
	}
	a.flashes = kept

	status := fmt.Sprintf(" triggers:%d last:%s  [space]pause [r]reset [+/-]speed [q]quit ", a.fired, a.lastNote)
	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTeal)
	for i, r := range status {
		if i >= w {
			break
		}
		a.screen.SetContent(i, h-1, r, nil, statusStyle)
	}

	a.screen.Show()
}

// worldRadius returns the radius of the largest materialized copy
func (a *App) worldRadius() float64 {
	max := 0.0
	for _, l := range a.seq.Layers() {
		spec := l.Spec()
		for _, tr := range l.Transforms() {
			if r := spec.Radius * math.Abs(tr.Scale); r > max {
				max = r
			}
		}
	}
	return max
}

// drawLine rasterizes a cell line with Bresenham's algorithm
func drawLine(screen tcell.Screen, x1, y1, x2, y2 int, style tcell.Style) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	for {
		screen.SetContent(x1, y1, '─', nil, style)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
