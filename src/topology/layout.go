package topology

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//Layout is the initial physical arrangement of the tiles, loaded from a yaml file
type Layout struct {
	Tiles []TileSpec `yaml:"tiles"`
}

//TileSpec places one tile, Orientation is in degrees (0, 90, 180 or 270) clockwise
type TileSpec struct {
	ID          TileID `yaml:"id"`
	X           int    `yaml:"x"`
	Y           int    `yaml:"y"`
	Orientation int    `yaml:"orientation"`
}

//DefaultLayout is a 2x2 square of tiles, all turned the same way
func DefaultLayout() Layout {
	return GridLayout(2, 2)
}

//GridLayout places w*h tiles in rows, ids are cube-1, cube-2...
func GridLayout(w, h int) Layout {
	l := Layout{}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			l.Tiles = append(l.Tiles, TileSpec{
				ID: TileID(fmt.Sprintf("cube-%d", y*w+x+1)),
				X:  x,
				Y:  y,
			})
		}
	}
	return l
}

//LoadLayout reads the layout file, an empty path returns DefaultLayout
func LoadLayout(path string) (Layout, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultLayout(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, err
	}
	return ParseLayout(b)
}

//ParseLayout decodes and validates yaml layout data
func ParseLayout(b []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(b, &l); err != nil {
		return Layout{}, fmt.Errorf("layout.yaml: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, fmt.Errorf("layout.yaml: %w", err)
	}
	return l, nil
}

//Validate checks the ids and positions are unique and the orientations legal
func (l Layout) Validate() error {
	if len(l.Tiles) == 0 {
		return fmt.Errorf("no tiles")
	}
	ids := map[TileID]bool{}
	positions := map[Point]TileID{}
	for i, t := range l.Tiles {
		if strings.TrimSpace(string(t.ID)) == "" {
			return fmt.Errorf("tiles[%d]: missing id", i)
		}
		if ids[t.ID] {
			return fmt.Errorf("tiles[%d]: duplicate id %s", i, t.ID)
		}
		ids[t.ID] = true
		pos := Point{t.X, t.Y}
		if other, ok := positions[pos]; ok {
			return fmt.Errorf("tiles[%d]: %s shares position %d,%d with %s", i, t.ID, t.X, t.Y, other)
		}
		positions[pos] = t.ID
		if _, err := RotationFromDegrees(t.Orientation); err != nil {
			return fmt.Errorf("tiles[%d]: %w", i, err)
		}
	}
	return nil
}

//Arrange builds the arrangement described by the layout
func (l Layout) Arrange() (*Arrangement, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	a := NewArrangement()
	for _, t := range l.Tiles {
		r, _ := RotationFromDegrees(t.Orientation)
		if err := a.Place(t.ID, Placement{Pos: Point{t.X, t.Y}, Orientation: r}); err != nil {
			return nil, err
		}
	}
	return a, nil
}
