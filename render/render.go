package render

import (
	"errors"
	"image/color"
)

// Sentinel errors for renderer inputs.
var (
	// ErrNoData indicates an empty trace or bucket list.
	ErrNoData = errors.New("render: nothing to draw")
	// ErrLengthMismatch indicates needles and crossing flags of
	// different lengths.
	ErrLengthMismatch = errors.New("render: needles and crossing flags must have equal length")
)

// Figure palette, shared by all PNG renderers.
var (
	colorCrossing    = color.RGBA{B: 200, A: 255} // blue: crosses a line
	colorNonCrossing = color.RGBA{R: 200, A: 255} // red: misses
	colorGridLine    = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	colorPiReference = color.RGBA{R: 200, A: 255}
)
