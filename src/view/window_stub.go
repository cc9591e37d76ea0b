//go:build !ebiten

package view

import (
	"errors"

	"cubelife/src/universe"
)

//NewWindow is only available in the GUI build
func NewWindow(_ *ScreenSet, _ int) (universe.Viewer, error) {
	return nil, errors.New("the window view requires the ebiten build tag, build with `-tags ebiten`")
}
