package view

import (
	"image"
	"image/color"
	"sync"

	"cubelife/src/topology"
	"cubelife/src/universe"
)

//FrameBuffer is the pixel memory of one tile screen
//the universe paints it from its own goroutines, views read it through Image and CellColor
type FrameBuffer struct {
	mu  sync.RWMutex
	img *image.RGBA
}

//NewFrameBuffer allocates a screen of w*h pixels filled with the background
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{img: image.NewRGBA(image.Rect(0, 0, w, h))}
	fb.FillScreen(universe.Background)
	return fb
}

//FillRect paints the rectangle, the parts outside the screen are dropped
func (fb *FrameBuffer) FillRect(c color.Color, x, y, w, h int) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	fb.mu.Lock()
	defer fb.mu.Unlock()
	r := image.Rect(x, y, x+w, y+h).Intersect(fb.img.Rect)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			fb.img.SetRGBA(px, py, rgba)
		}
	}
}

//FillScreen paints the whole screen
func (fb *FrameBuffer) FillScreen(c color.Color) {
	b := fb.img.Bounds()
	fb.FillRect(c, b.Min.X, b.Min.Y, b.Dx(), b.Dy())
}

//Size returns the screen dimensions in pixels
func (fb *FrameBuffer) Size() (int, int) {
	b := fb.img.Bounds()
	return b.Dx(), b.Dy()
}

//At returns the pixel colour
func (fb *FrameBuffer) At(x, y int) color.RGBA {
	fb.mu.RLock()
	defer fb.mu.RUnlock()
	return fb.img.RGBAAt(x, y)
}

//CellColor samples the centre of the block of interior cell x, y (0 based)
func (fb *FrameBuffer) CellColor(x, y int) color.RGBA {
	return fb.At(x*universe.PixelWidth+universe.PixelWidth/2, y*universe.PixelWidth+universe.PixelWidth/2)
}

//Pixels copies the RGBA bytes of the screen into buf, buf must hold 4*w*h bytes
func (fb *FrameBuffer) Pixels(buf []byte) {
	fb.mu.RLock()
	defer fb.mu.RUnlock()
	copy(buf, fb.img.Pix)
}

//ScreenSet hands out one FrameBuffer per tile
type ScreenSet struct {
	mu      sync.Mutex
	cells   int
	screens map[topology.TileID]*FrameBuffer
}

//NewScreenSet creates screens for tiles with the number of cells per edge
func NewScreenSet(cells int) *ScreenSet {
	return &ScreenSet{cells: cells, screens: map[topology.TileID]*FrameBuffer{}}
}

//Screen returns the screen of the tile, creating it on first use
//it matches universe.Options.Screens
func (s *ScreenSet) Screen(id topology.TileID) universe.Screen {
	return s.Get(id)
}

//Get returns the frame buffer of the tile, creating it on first use
func (s *ScreenSet) Get(id topology.TileID) *FrameBuffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	fb, ok := s.screens[id]
	if !ok {
		px := s.cells * universe.PixelWidth
		fb = NewFrameBuffer(px, px)
		s.screens[id] = fb
	}
	return fb
}

//Cells returns the number of cells per tile edge
func (s *ScreenSet) Cells() int { return s.cells }

//toLocal maps cell sx, sy of a tile drawn turned by r back to the tile's own cell (0 based)
func toLocal(n int, r topology.Rotation, sx, sy int) (int, int) {
	for i := 0; i < r.Degrees()/90; i++ {
		sx, sy = sy, n-1-sx
	}
	return sx, sy
}
