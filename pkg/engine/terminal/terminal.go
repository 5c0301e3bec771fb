package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Rows kept free below the map for the status line and message log
const ReservedRows = 7

// Smallest map the builders are asked to fill
const (
	MinMapWidth  = 20
	MinMapHeight = 10
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// MapSize returns the map dimensions that fit the current terminal
func MapSize() (width, height int) {
	return FitMap(GetSize())
}

// FitMap converts a terminal size into map dimensions, leaving room for
// ReservedRows and never going below the minimum map size.
func FitMap(termWidth, termHeight int) (width, height int) {
	width = max(termWidth, MinMapWidth)
	height = max(termHeight-ReservedRows, MinMapHeight)
	return width, height
}
