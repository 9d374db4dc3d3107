package raster

// The image-container side of calibration: bands of raw DNs to read line
// by line, and sinks to write calibrated lines into.

import(
	"errors"
)

var(
	ErrClosed      = errors.New("raster is closed")
	ErrLineRange   = errors.New("line is outside of raster")
	ErrLineLength  = errors.New("line length does not match raster width")
	ErrUnsupported = errors.New("unsupported raster layout")
)

// A Band is a single-channel image of raw DNs, read a line at a time.
// The slice ReadLine returns may be reused by the next call.
type Band interface {
	Samples() int
	Lines() int
	ReadLine(line int) ([]uint16, error)
	Close() error
}

// A Sink receives calibrated lines, in any order, one line per call.
type Sink interface {
	Samples() int
	Lines() int
	WriteLine(line int, values []float64) error
	Close() error
}
