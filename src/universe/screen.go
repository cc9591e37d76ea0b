package universe

import "image/color"

//PixelWidth is the edge of the square block painted for one cell
const PixelWidth = 8

//Background is painted for dead cells and on reset
var Background color.Color = color.White

//Screen is the paint surface of one tile, coordinates are pixels
type Screen interface {
	FillRect(c color.Color, x, y, w, h int)
	FillScreen(c color.Color)
}

//CellColor maps a cell to its screen colour: dead cells show the background,
//live intensities a grey level
func CellColor(c Cell) color.Color {
	if !c.Alive() {
		return Background
	}
	return color.Gray{Y: uint8(c)}
}

type nullScreen struct{}

func (nullScreen) FillRect(color.Color, int, int, int, int) {}
func (nullScreen) FillScreen(color.Color)                   {}
