package view

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"cubelife/src/topology"
	"cubelife/src/universe"
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

type ConsoleUI struct {
	u        universe.Universe
	g        *gocui.Gui
	k        []keyBindings
	screens  *ScreenSet
	selected int
	shaking  map[topology.TileID]bool

	deadFiller     string
	selectedFiller string
}

var (
	runningStateDescr = map[universe.RunningState]string{
		universe.RunningStateManual:   aurora.Colorize("waiting", aurora.BlueFg).String(),
		universe.RunningStateStep:     "do the step",
		universe.RunningStateRun:      aurora.Colorize("running", aurora.CyanFg).String(),
		universe.RunningStateFinished: aurora.Colorize("finished", aurora.RedFg).String(),
	}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func NewViewTerminal(screens *ScreenSet) *ConsoleUI {

	var err error
	t := ConsoleUI{
		screens:        screens,
		shaking:        map[topology.TileID]bool{},
		deadFiller:     "░░",
		selectedFiller: aurora.Yellow("░░").String(),
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'n', "N", "Next step", t.cmdNextRound, ""},
		{'r', "R", "Run", t.cmdRun, ""},
		{'s', "S", "Stop", t.cmdStop, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'w', "W", "Reseed", t.cmdReseed, ""},
		{gocui.KeyTab, "TAB", "Next cube", t.cmdSelectNext, ""},
		{'b', "B", "Button (glider)", t.cmdButton, ""},
		{'f', "F", "Flip face down", t.cmdFlip, ""},
		{'k', "K", "Shake on/off", t.cmdShake, ""},
		{'o', "O", "Turn cube", t.cmdTurn, ""},
		{gocui.KeyArrowUp, "↑", "Move cube", t.cmdMove(0, -1), ""},
		{gocui.KeyArrowDown, "↓", "", t.cmdMove(0, 1), ""},
		{gocui.KeyArrowLeft, "←", "", t.cmdMove(-1, 0), ""},
		{gocui.KeyArrowRight, "→", "", t.cmdMove(1, 0), ""},
		{gocui.MouseLeft, "MOUSE", "Select the cube", t.cmdMouseClick, "cubes"},
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

func (t *ConsoleUI) Register(u universe.Universe) {
	t.u = u
}

func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

func (t *ConsoleUI) Refresh() {
	t.renderCubes()
	t.renderConfiguration()
	t.renderStatus()
}

func (t *ConsoleUI) selectedTile() (*universe.Tile, bool) {
	tiles := t.u.Tiles()
	if len(tiles) == 0 {
		return nil, false
	}
	return tiles[t.selected%len(tiles)], true
}

//cellFiller renders one cell as two terminal chars in the grey level of its screen block
func (t *ConsoleUI) cellFiller(c color.RGBA, selected bool) string {
	if c == white {
		if selected {
			return t.selectedFiller
		}
		return t.deadFiller
	}
	return aurora.Gray(uint8(int(c.R)*23/255), "██").String()
}

func (t *ConsoleUI) renderCubes() {

	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("cubes")
		if e != nil {
			return e
		}
		v.Clear()
		_, _ = fmt.Fprint(v, t.drawArrangement())
		return nil
	})
}

//drawArrangement draws every placed cube at its lattice position, turned by its orientation
func (t *ConsoleUI) drawArrangement() string {
	arr := t.u.Arrangement()
	n := t.screens.Cells()
	lo, hi := arr.Bounds()
	sel, _ := t.selectedTile()

	var b bytes.Buffer
	for ty := lo.Y; ty <= hi.Y; ty++ {
		for row := 0; row < n; row++ {
			for tx := lo.X; tx <= hi.X; tx++ {
				id, ok := arr.At(topology.Point{X: tx, Y: ty})
				if !ok {
					b.WriteString(strings.Repeat(" ", 2*n+1))
					continue
				}
				p, _ := arr.Placement(id)
				fb := t.screens.Get(id)
				for col := 0; col < n; col++ {
					x, y := toLocal(n, p.Orientation, col, row)
					b.WriteString(t.cellFiller(fb.CellColor(x, y), sel != nil && sel.ID() == id))
				}
				b.WriteByte(' ')
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (t *ConsoleUI) renderStatus() {
	s := t.u.Status()
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := t.g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Step", "%v", s.IterationNum))
			_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
			_, _ = fmt.Fprintln(v, t.renderProp("Changed Cells", "%v", s.ChangedCells))
			_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", s.IterationTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningStateDescr[s.RunningMode]))
			if tile, ok := t.selectedTile(); ok {
				p, _ := t.u.Arrangement().Placement(tile.ID())
				_, _ = fmt.Fprintln(v, t.renderProp("Cube", "%v", tile.ID()))
				_, _ = fmt.Fprintln(v, t.renderProp("Position", "%v,%v %v", p.Pos.X, p.Pos.Y, p.Orientation))
				_, _ = fmt.Fprintln(v, t.renderProp("Shaking", "%v", t.shaking[tile.ID()]))
			}
		}
		return nil
	})
}

func (t *ConsoleUI) renderConfiguration() {
	//it needs to call Update when calls from goroutine
	t.g.Update(func(g *gocui.Gui) error {
		c := t.u.Options()
		if v, e := g.View("configuration"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Cubes", "%v", len(t.u.Tiles())))
			_, _ = fmt.Fprintln(v, t.renderProp("Cells", "%v x %v", c.Cells, c.Cells))
			_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", c.Interval))
			_, _ = fmt.Fprintln(v, t.renderProp("Iterations", "%v steps", c.MaxSteps))
			_, _ = fmt.Fprintln(v, t.renderProp("Engine", "%v", c.Advanced["engine"]))
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("cubes")
		return nil

	} else {
		if _, err := t.headerLayout(g, 3, "Cubes of \"The Life\""); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("cubes", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Cubes"
		v.Frame = true
	}
	t.renderCubes()

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		v.Wrap = true
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		first := true
		for _, k := range t.k {
			if k.descr == "" {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		if maxX < len(text) {
			panic(fmt.Sprintf("Terminal width is too small: %v", maxX))
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	}
	return
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdNextRound(_ *gocui.View) error {
	t.u.Step()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.u.Run()
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.u.Stop()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.u.Clear()
	return nil
}

func (t *ConsoleUI) cmdReseed(_ *gocui.View) error {
	t.u.Reseed()
	return nil
}

func (t *ConsoleUI) cmdSelectNext(_ *gocui.View) error {
	t.selected++
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdButton(_ *gocui.View) error {
	if tile, ok := t.selectedTile(); ok {
		t.u.Post(universe.Event{Kind: universe.EventButton, Tile: tile.ID(), Pressed: true})
	}
	return nil
}

func (t *ConsoleUI) cmdFlip(_ *gocui.View) error {
	if tile, ok := t.selectedTile(); ok {
		t.u.Post(universe.Event{Kind: universe.EventFlip, Tile: tile.ID(), FaceUp: false})
	}
	return nil
}

func (t *ConsoleUI) cmdShake(_ *gocui.View) error {
	tile, ok := t.selectedTile()
	if !ok {
		return nil
	}
	kind := universe.EventShakeStarted
	if t.shaking[tile.ID()] {
		kind = universe.EventShakeStopped
	}
	t.shaking[tile.ID()] = !t.shaking[tile.ID()]
	t.u.Post(universe.Event{Kind: kind, Tile: tile.ID()})
	t.renderStatus()
	return nil
}

func (t *ConsoleUI) cmdTurn(_ *gocui.View) error {
	if tile, ok := t.selectedTile(); ok {
		_ = t.u.Arrangement().Turn(tile.ID(), topology.Quarter)
		t.Refresh()
	}
	return nil
}

func (t *ConsoleUI) cmdMove(dx, dy int) func(*gocui.View) error {
	return func(_ *gocui.View) error {
		if tile, ok := t.selectedTile(); ok {
			//an occupied target keeps the cube where it is
			_ = t.u.Arrangement().Move(tile.ID(), dx, dy)
			t.Refresh()
		}
		return nil
	}
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	n := t.screens.Cells()
	lo, _ := t.u.Arrangement().Bounds()
	id, ok := t.u.Arrangement().At(topology.Point{X: lo.X + cx/(2*n+1), Y: lo.Y + cy/(n+1)})
	if !ok {
		return nil
	}
	for i, tile := range t.u.Tiles() {
		if tile.ID() == id {
			t.selected = i
		}
	}
	t.Refresh()
	return nil
}
