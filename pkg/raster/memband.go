package raster

import(
	"fmt"
)

// A MemBand is a Band held in memory, mostly for tests and for bands that
// were decoded in one go.
type MemBand struct {
	samples int
	lines   int
	pix     []uint16

	Reads  int // number of ReadLine calls
	Closes int // number of Close calls
}

func NewMemBand(samples, lines int) *MemBand {
	return &MemBand{samples: samples, lines: lines, pix: make([]uint16, samples*lines)}
}

// NewMemBandFromRows builds a band from equal-length rows.
func NewMemBandFromRows(rows ...[]uint16) (*MemBand, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrUnsupported)
	}
	mb := NewMemBand(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != mb.samples {
			return nil, fmt.Errorf("%w: row %d has %d samples, want %d", ErrLineLength, y, len(row), mb.samples)
		}
		copy(mb.pix[y*mb.samples:], row)
	}
	return mb, nil
}

func (mb *MemBand)Samples() int            { return mb.samples }
func (mb *MemBand)Lines() int              { return mb.lines }
func (mb *MemBand)Set(x, y int, dn uint16) { mb.pix[y*mb.samples + x] = dn }
func (mb *MemBand)Closed() bool            { return mb.Closes > 0 }

func (mb *MemBand)ReadLine(line int) ([]uint16, error) {
	if mb.Closed() {
		return nil, ErrClosed
	}
	if line < 0 || line >= mb.lines {
		return nil, fmt.Errorf("%w: line %d of %d", ErrLineRange, line, mb.lines)
	}
	mb.Reads++
	return mb.pix[line*mb.samples : (line+1)*mb.samples], nil
}

func (mb *MemBand)Close() error {
	mb.Closes++
	return nil
}

func (mb MemBand)String() string {
	return fmt.Sprintf("MemBand[%dx%d]", mb.samples, mb.lines)
}
