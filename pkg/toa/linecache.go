package toa

import(
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/abworrall/toacal/pkg/calib"
	"github.com/abworrall/toacal/pkg/raster"
)

// lineTag says which image line a buffer holds. It starts out Unset, and
// once set only ever moves to another line.
type lineTag struct {
	held bool
	line int
}

func (t lineTag)Holds(line int) bool { return t.held && t.line == line }
func (t *lineTag)Set(line int)       { t.held, t.line = true, line }
func (t *lineTag)Reset()             { t.held, t.line = false, 0 }

func (t lineTag)String() string {
	if !t.held { return "Unset" }
	return fmt.Sprintf("Holds(%d)", t.line)
}

// A lineBuffer memoizes exactly one line of one product for one band.
type lineBuffer struct {
	values []float64
	tag    lineTag
}

func newLineBuffer(samples int) lineBuffer {
	return lineBuffer{values: make([]float64, samples)}
}

// Stats count the work the cache layer actually did.
type Stats struct {
	LinesRead        int // DN rows fetched from images
	RadianceLines    int // lines run through a radiance transform
	ReflectanceLines int // lines run through a reflectance transform
	TablesBuilt      int
}

func (s Stats)String() string {
	return fmt.Sprintf("read=%d, radiance=%d, reflectance=%d, tables=%d", s.LinesRead, s.RadianceLines, s.ReflectanceLines, s.TablesBuilt)
}

// bandState is a bound, calibration-complete band: its transform, its two
// line buffers, and its lookup tables once they are built.
type bandState struct {
	band        int
	image       raster.Band
	transform   calib.Transform

	radiance    lineBuffer
	reflectance lineBuffer

	radTable    calib.LookupTable
	refTable    calib.LookupTable
}

func newBandState(band int, img raster.Band, xf calib.Transform) *bandState {
	return &bandState{
		band:        band,
		image:       img,
		transform:   xf,
		radiance:    newLineBuffer(img.Samples()),
		reflectance: newLineBuffer(img.Samples()),
	}
}

func (m *Manager)readLine(bs *bandState, line int) ([]uint16, error) {
	row, err := bs.image.ReadLine(line)
	if err != nil {
		return nil, fmt.Errorf("read %s line %d: %w", m.Family.BandName(bs.band), line, err)
	} else if len(row) != len(bs.radiance.values) {
		return nil, fmt.Errorf("read %s line %d: %w: got %d samples, want %d", m.Family.BandName(bs.band), line, raster.ErrLineLength, len(row), len(bs.radiance.values))
	}
	m.stats.LinesRead++
	return row, nil
}

// ensureRadiance leaves the band's radiance buffer holding the given
// line. It does nothing if the buffer already holds it.
func (m *Manager)ensureRadiance(bs *bandState, line int) error {
	if bs.radiance.tag.Holds(line) {
		return nil
	}

	row, err := m.readLine(bs, line)
	if err != nil {
		return err
	}

	if bs.radTable != nil {
		bs.radTable.ApplyLine(bs.radiance.values, row)
	} else {
		bs.transform.ApplyLine(bs.radiance.values, row)
	}

	bs.radiance.tag.Set(line)
	m.stats.RadianceLines++
	return nil
}

// ensureReflectance leaves the band's reflectance buffer holding the
// given line. With a composed table the DNs map straight to reflectance;
// otherwise the radiance line is ensured first and reflectance derived from it.
func (m *Manager)ensureReflectance(bs *bandState, line int) error {
	if bs.reflectance.tag.Holds(line) {
		return nil
	}

	if bs.refTable != nil {
		row, err := m.readLine(bs, line)
		if err != nil {
			return err
		}
		bs.refTable.ApplyLine(bs.reflectance.values, row)

	} else {
		if err := m.ensureRadiance(bs, line); err != nil {
			return err
		}
		bs.transform.ReflectLine(bs.reflectance.values, bs.radiance.values)
	}

	bs.reflectance.tag.Set(line)
	m.stats.ReflectanceLines++
	return nil
}

func (m *Manager)warmRadiance(bs *bandState) {
	if bs.radTable != nil { return }
	bs.radTable = calib.NewRadianceTable(bs.transform)
	m.stats.TablesBuilt++
	log.Debugf("built radiance table for %s", m.Family.BandName(bs.band))
}

func (m *Manager)warmReflectance(bs *bandState) {
	if bs.refTable != nil { return }
	bs.refTable = calib.NewReflectanceTable(bs.transform)
	m.stats.TablesBuilt++
	log.Debugf("built reflectance table for %s", m.Family.BandName(bs.band))
}

func (bs *bandState)release() {
	bs.radiance.values, bs.reflectance.values = nil, nil
	bs.radiance.tag.Reset()
	bs.reflectance.tag.Reset()
	bs.radTable = nil
	bs.refTable = nil
}
