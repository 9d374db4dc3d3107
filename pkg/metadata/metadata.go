package metadata

import(
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/abworrall/toacal/pkg/calib"
	"github.com/abworrall/toacal/pkg/solar"
)

var(
	ErrMissingMetadata = errors.New("metadata file could not be opened")
	ErrCorruptMetadata = errors.New("metadata is corrupt")
)

// Slot picks which acquisition pass the global fields of a file describe.
type Slot int

const(
	Multispectral Slot = iota
	Panchromatic
)

func (s Slot)String() string {
	if s == Panchromatic { return "panchromatic" }
	return "multispectral"
}

// Acquisition holds the global per-pass fields a metadata file provides.
type Acquisition struct {
	Time         solar.AcquisitionTime
	SunElevation float64 // degrees, at scene center

	HasDate      bool
	HasTime      bool
	HasElevation bool
}

// Complete is true once both the date and the sun elevation were seen;
// a missing time of day means midnight.
func (a Acquisition)Complete() bool {
	return a.HasDate && a.HasElevation
}

// A Record accumulates everything parsed from one or two metadata files.
// Band fields are shared between the files; the per-pass fields go into
// the slot named at parse time.
type Record struct {
	Bands [calib.NumBands]calib.BandCoefficients
	Slots [2]Acquisition
}

// Slot returns the acquisition fields for a pass.
func (r *Record)Slot(s Slot) *Acquisition { return &r.Slots[s] }

// Geometry resolves the solar geometry of one slot.
func (r *Record)Geometry(model solar.DistanceModel, s Slot) (solar.Geometry, error) {
	acq := r.Slots[s]
	if !acq.Complete() {
		return solar.Geometry{}, fmt.Errorf("%w: %s pass has no acquisition date or sun elevation", ErrCorruptMetadata, s)
	}
	return solar.Resolve(model, acq.Time, acq.SunElevation)
}

// A Grammar knows the keys one vendor format uses. ScanLine is called for
// every line of the file, in order, and updates the scanner state.
type Grammar interface {
	Name() string
	Terminator() string
	ScanLine(s *Scanner, line string)
}

// Parse reads one named metadata file into the record.
func Parse(path string, g Grammar, slot Slot, rec *Record) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMissingMetadata, path, err)
	}
	defer f.Close()

	if err := ParseReader(f, g, slot, rec); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// ParseReader scans a metadata stream. The stream must reach the grammar's
// terminator, and the slot must end up with a date and a sun elevation.
func ParseReader(r io.Reader, g Grammar, slot Slot, rec *Record) error {
	s := NewScanner(rec, slot)

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimRight(line, "\r\n")
			g.ScanLine(s, line)
			if strings.Contains(line, g.Terminator()) {
				s.Terminated = true
			}
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return fmt.Errorf("%w: read %s metadata: %v", ErrCorruptMetadata, g.Name(), err)
		}
	}

	if !s.Terminated {
		return fmt.Errorf("%w: %s metadata ended before %q", ErrCorruptMetadata, g.Name(), g.Terminator())
	}

	acq := rec.Slot(slot)
	if !acq.HasDate {
		return fmt.Errorf("%w: %s metadata has no acquisition date", ErrCorruptMetadata, g.Name())
	}
	if !acq.HasElevation {
		return fmt.Errorf("%w: %s metadata has no sun elevation", ErrCorruptMetadata, g.Name())
	}

	log.Debugf("parsed %s metadata into %s slot: %s, elevation %g", g.Name(), slot, acq.Time, acq.SunElevation)
	for i, b := range rec.Bands {
		log.Debugf("  band %d: primary=%g secondary=%g (%s)", i+1, b.Primary, b.Secondary, b.Flags)
	}

	return nil
}
