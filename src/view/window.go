//go:build ebiten

package view

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"cubelife/src/topology"
	"cubelife/src/universe"
)

//gap between two cubes in screen pixels
const cubeGap = 4

//Window draws the cube screens as they lie on the table
type Window struct {
	u        universe.Universe
	screens  *ScreenSet
	scale    int
	selected int
	shaking  map[topology.TileID]bool
	images   map[topology.TileID]*ebiten.Image
	buf      []byte
}

//NewWindow creates the ebiten view, every screen pixel is drawn scale times larger
func NewWindow(screens *ScreenSet, scale int) (universe.Viewer, error) {
	if scale < 1 {
		scale = 1
	}
	px := screens.Cells() * universe.PixelWidth
	return &Window{
		screens: screens,
		scale:   scale,
		shaking: map[topology.TileID]bool{},
		images:  map[topology.TileID]*ebiten.Image{},
		buf:     make([]byte, 4*px*px),
	}, nil
}

func (w *Window) Register(u universe.Universe) {
	w.u = u
}

//Refresh does nothing, every frame reads the screens
func (w *Window) Refresh() {}

func (w *Window) Start() {
	px := w.screens.Cells() * universe.PixelWidth
	lo, hi := w.u.Arrangement().Bounds()
	cols, rows := hi.X-lo.X+1, hi.Y-lo.Y+1
	ebiten.SetWindowTitle(fmt.Sprintf("cubelife - %d cubes", len(w.u.Tiles())))
	ebiten.SetWindowSize((cols*(px+cubeGap)+cubeGap)*w.scale, (rows*(px+cubeGap)+cubeGap)*w.scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Panicln(err)
	}
}

func (w *Window) selectedTile() (*universe.Tile, bool) {
	tiles := w.u.Tiles()
	if len(tiles) == 0 {
		return nil, false
	}
	return tiles[w.selected%len(tiles)], true
}

func (w *Window) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		w.u.Step()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		w.u.Run()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		w.u.Stop()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		w.u.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		w.u.Reseed()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		w.selected++
	}

	tile, ok := w.selectedTile()
	if !ok {
		return nil
	}
	id := tile.ID()
	arr := w.u.Arrangement()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		w.u.Post(universe.Event{Kind: universe.EventButton, Tile: id, Pressed: true})
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		w.u.Post(universe.Event{Kind: universe.EventFlip, Tile: id, FaceUp: false})
	case inpututil.IsKeyJustPressed(ebiten.KeyK):
		kind := universe.EventShakeStarted
		if w.shaking[id] {
			kind = universe.EventShakeStopped
		}
		w.shaking[id] = !w.shaking[id]
		w.u.Post(universe.Event{Kind: kind, Tile: id})
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		_ = arr.Turn(id, topology.Quarter)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		_ = arr.Move(id, 0, -1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		_ = arr.Move(id, 0, 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		_ = arr.Move(id, -1, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		_ = arr.Move(id, 1, 0)
	}
	return nil
}

func (w *Window) image(id topology.TileID) *ebiten.Image {
	img, ok := w.images[id]
	if !ok {
		px := w.screens.Cells() * universe.PixelWidth
		img = ebiten.NewImage(px, px)
		w.images[id] = img
	}
	return img
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.Gray{Y: 0x30})
	arr := w.u.Arrangement()
	px := float64(w.screens.Cells() * universe.PixelWidth)
	lo, _ := arr.Bounds()
	sel, _ := w.selectedTile()

	for _, id := range arr.IDs() {
		p, _ := arr.Placement(id)
		img := w.image(id)
		w.screens.Get(id).Pixels(w.buf)
		img.WritePixels(w.buf)

		x := float64(cubeGap + (p.Pos.X-lo.X)*(int(px)+cubeGap))
		y := float64(cubeGap + (p.Pos.Y-lo.Y)*(int(px)+cubeGap))
		if sel != nil && sel.ID() == id {
			vector.DrawFilledRect(screen, float32(x-2), float32(y-2), float32(px+4), float32(px+4), color.RGBA{R: 0xff, G: 0xc0, A: 0xff}, false)
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-px/2, -px/2)
		op.GeoM.Rotate(float64(p.Orientation.Degrees()) * math.Pi / 180)
		op.GeoM.Translate(x+px/2, y+px/2)
		screen.DrawImage(img, op)
	}

	st := w.u.Status()
	msg := fmt.Sprintf("step %d  live %d", st.IterationNum, st.LiveCells)
	if sel != nil {
		msg += "  " + string(sel.ID())
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth / w.scale, outsideHeight / w.scale
}
