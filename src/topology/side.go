package topology

import "fmt"

//Side is one of the four edges of a tile in the tile's own frame
//the values are ordered clockwise, so adding a quarter turn moves to the next side
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

const sidesCount = 4

//Sides lists all sides in clockwise order starting from Top
var Sides = [sidesCount]Side{Top, Right, Bottom, Left}

var sideNames = [sidesCount]string{"TOP", "RIGHT", "BOTTOM", "LEFT"}

func (s Side) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Side(%d)", int(s))
	}
	return sideNames[s]
}

//Valid reports whether s is one of the four sides
func (s Side) Valid() bool {
	return s >= Top && s <= Left
}

//Rotate re-expresses s after r clockwise quarter turns
func (s Side) Rotate(r Rotation) Side {
	return Side(mod4(int(s) + int(r)))
}

//Invert returns the opposite side
func (s Side) Invert() Side {
	return s.Rotate(Half)
}

//Distance returns the clockwise rotation taking s to to
func (s Side) Distance(to Side) Rotation {
	return Rotation(mod4(int(to) - int(s)))
}

//Ascending reports whether the interior index along the edge grows while the edge is walked clockwise
//Top is walked left to right (x grows) and Right top to bottom (y grows),
//Bottom and Left are walked against their index
func (s Side) Ascending() bool {
	return s == Top || s == Right
}

//Aligned reports whether index i on edge a faces index i on edge b when the two edges touch
//abutting edges are walked in opposite clockwise directions,
//so the indexes line up only when exactly one of the sides is ascending
func Aligned(a, b Side) bool {
	return a.Ascending() != b.Ascending()
}

//Delta returns the lattice step for the side in a frame where y grows downwards
func (s Side) Delta() (dx, dy int) {
	switch s {
	case Top:
		return 0, -1
	case Right:
		return 1, 0
	case Bottom:
		return 0, 1
	case Left:
		return -1, 0
	}
	panic(fmt.Sprintf("topology: invalid side %d", int(s)))
}

//Rotation is a relative orientation in clockwise quarter turns
type Rotation int

const (
	None    Rotation = 0
	Quarter Rotation = 1
	Half    Rotation = 2
	Three   Rotation = 3
)

//RotationFromDegrees converts 0, 90, 180 or 270 degrees to a Rotation
func RotationFromDegrees(deg int) (Rotation, error) {
	if deg%90 != 0 {
		return None, fmt.Errorf("orientation %d is not a multiple of 90 degrees", deg)
	}
	return Rotation(mod4(deg / 90)), nil
}

//Degrees returns the rotation in degrees, 0..270
func (r Rotation) Degrees() int {
	return int(r.normalize()) * 90
}

//Add composes two rotations
func (r Rotation) Add(o Rotation) Rotation {
	return Rotation(mod4(int(r) + int(o)))
}

//Neg returns the inverse rotation
func (r Rotation) Neg() Rotation {
	return Rotation(mod4(-int(r)))
}

func (r Rotation) normalize() Rotation {
	return Rotation(mod4(int(r)))
}

func (r Rotation) String() string {
	return fmt.Sprintf("%d°", r.Degrees())
}

func mod4(v int) int {
	return ((v % sidesCount) + sidesCount) % sidesCount
}
