package toa

import(
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/abworrall/toacal/pkg/calib"
	"github.com/abworrall/toacal/pkg/metadata"
	"github.com/abworrall/toacal/pkg/raster"
	"github.com/abworrall/toacal/pkg/solar"
)

var(
	ErrUnboundBand    = errors.New("band has no image bound to it")
	ErrLineOutOfRange = errors.New("line is outside of the band's image")
	ErrTargetMismatch = errors.New("target image does not match the band's dimensions")
	ErrClosed         = errors.New("calibration manager is closed")
)

// A Manager calibrates the bands of one scene, for one sensor family. It
// owns the images bound to it, and closes them.
type Manager struct {
	Family    Family
	Store     calib.Store
	Record    metadata.Record
	MultiMeta string
	PanMeta   string

	images    [calib.NumBands]raster.Band
	bands     [calib.NumBands]*bandState // nil unless the band is bound and complete
	useTables bool
	distance  solar.DistanceModel
	stats     Stats
	closed    bool
}

type Option func(*Manager)

// WithLookupTables overrides the family's default for building lookup tables.
func WithLookupTables(on bool) Option {
	return func(m *Manager) { m.useTables = on }
}

// WithDistanceModel replaces the family's Sun-Earth distance model.
func WithDistanceModel(dm solar.DistanceModel) Option {
	return func(m *Manager) { m.distance = dm }
}

// New parses the metadata, resolves the solar geometry, and allocates line
// buffers for every bound band that has complete calibration. Any nil entry
// in images is an unbound band. On error, the images have been closed.
func New(family Family, images [calib.NumBands]raster.Band, multiMeta, panMeta string, opts ...Option) (*Manager, error) {
	m := &Manager{
		Family:    family,
		MultiMeta: multiMeta,
		PanMeta:   panMeta,
		images:    images,
		useTables: family.LookupTable,
		distance:  family.Distance,
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.init(); err != nil {
		m.Close()
		return nil, fmt.Errorf("new %s manager: %w", family.Name, err)
	}

	return m, nil
}

func (m *Manager)init() error {
	f := m.Family

	if m.MultiMeta == "" && m.PanMeta == "" {
		return fmt.Errorf("%w: no metadata file given", metadata.ErrMissingMetadata)
	} else if !f.SeparatePanMetadata && m.PanMeta != "" {
		return fmt.Errorf("%s has a single metadata file, but was given a pan one ('%s')", f.Name, m.PanMeta)
	} else if !f.SeparatePanMetadata && m.MultiMeta == "" {
		return fmt.Errorf("%w: %s needs a metadata file", metadata.ErrMissingMetadata, f.Name)
	}

	m.Store = calib.Store{Kind: f.Kind, ESUN: f.ESUN, PanBand: f.PanBand}

	if m.MultiMeta != "" {
		if err := metadata.Parse(m.MultiMeta, f.Grammar, metadata.Multispectral, &m.Record); err != nil {
			return err
		}
		g, err := m.Record.Geometry(m.distance, metadata.Multispectral)
		if err != nil {
			return err
		}
		m.Store.Multi = &g
	}

	if m.PanMeta != "" {
		if err := metadata.Parse(m.PanMeta, f.Grammar, metadata.Panchromatic, &m.Record); err != nil {
			return err
		}
		g, err := m.Record.Geometry(m.distance, metadata.Panchromatic)
		if err != nil {
			return err
		}
		m.Store.Pan = &g
	}

	m.Store.Bands = m.Record.Bands

	for b, img := range m.images {
		if img == nil {
			continue
		} else if !m.Store.Complete(b) {
			log.Warnf("%s is bound, but its calibration is %s (%s needs %s); it cannot be calibrated",
				f.BandName(b), m.Store.Bands[b].Flags, f.Kind, f.Kind.Required())
			continue
		}

		xf, err := m.Store.Transform(b)
		if err != nil {
			return err
		}
		m.bands[b] = newBandState(b, img, xf)
		log.Debugf("%s: %dx%d, %s, esun=%g, %s", f.BandName(b), img.Samples(), img.Lines(), xf.Formula, xf.ESUN, xf.Geometry)
	}

	return nil
}

// Ready reports whether the band can be calibrated, and if not, why not.
func (m *Manager)Ready(band int) error {
	_, err := m.ready(band)
	return err
}

func (m *Manager)ready(band int) (*bandState, error) {
	if m.closed {
		return nil, ErrClosed
	} else if err := calib.CheckBand(band); err != nil {
		return nil, err
	} else if m.images[band] == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnboundBand, m.Family.BandName(band))
	} else if bs := m.bands[band]; bs != nil {
		return bs, nil
	}

	// Bound but never given buffers; the store says what is missing
	if _, err := m.Store.Transform(band); err != nil {
		return nil, fmt.Errorf("%s: %w", m.Family.BandName(band), err)
	}
	return nil, fmt.Errorf("%w: %s", calib.ErrIncompleteCalibration, m.Family.BandName(band))
}

func (m *Manager)checkLine(bs *bandState, line int) error {
	if line < 0 || line >= bs.image.Lines() {
		return fmt.Errorf("%w: %s has lines [0,%d), asked for %d", ErrLineOutOfRange, m.Family.BandName(bs.band), bs.image.Lines(), line)
	}
	return nil
}

// ComputeRadianceLine returns the radiance of one line of a band. The slice
// is the band's line buffer, so is only valid until the next call for the band.
func (m *Manager)ComputeRadianceLine(band, line int) ([]float64, error) {
	bs, err := m.ready(band)
	if err != nil {
		return nil, err
	} else if err := m.checkLine(bs, line); err != nil {
		return nil, err
	} else if err := m.ensureRadiance(bs, line); err != nil {
		return nil, err
	}
	return bs.radiance.values, nil
}

// ComputeReflectanceLine returns the TOA reflectance of one line of a band,
// under the same buffer rules as ComputeRadianceLine.
func (m *Manager)ComputeReflectanceLine(band, line int) ([]float64, error) {
	bs, err := m.ready(band)
	if err != nil {
		return nil, err
	} else if err := m.checkLine(bs, line); err != nil {
		return nil, err
	} else if err := m.ensureReflectance(bs, line); err != nil {
		return nil, err
	}
	return bs.reflectance.values, nil
}

// EnsureRadianceLine fills the band's radiance buffer for a line without
// handing it back; a second call for the same line does no work.
func (m *Manager)EnsureRadianceLine(band, line int) error {
	bs, err := m.ready(band)
	if err != nil {
		return err
	} else if err := m.checkLine(bs, line); err != nil {
		return err
	}
	return m.ensureRadiance(bs, line)
}

func (m *Manager)EnsureReflectanceLine(band, line int) error {
	bs, err := m.ready(band)
	if err != nil {
		return err
	} else if err := m.checkLine(bs, line); err != nil {
		return err
	}
	return m.ensureReflectance(bs, line)
}

// WarmLookupTables builds both lookup tables for a band now, rather than
// at the start of the next whole-image pass. It works even when the
// manager would not build tables by itself.
func (m *Manager)WarmLookupTables(band int) error {
	bs, err := m.ready(band)
	if err != nil {
		return err
	}
	m.warmRadiance(bs)
	m.warmReflectance(bs)
	return nil
}

func (m *Manager)Stats() Stats     { return m.stats }
func (m *Manager)UsesTables() bool { return m.useTables }

// Image is the image bound to a band, or nil.
func (m *Manager)Image(band int) raster.Band {
	if calib.CheckBand(band) != nil { return nil }
	return m.images[band]
}

// Close releases the buffers and tables, and closes every bound image. Only
// the first call does anything.
func (m *Manager)Close() error {
	if m.closed {
		return nil
	}
	m.closed = true

	var first error
	for b := range m.images {
		if bs := m.bands[b]; bs != nil {
			bs.release()
			m.bands[b] = nil
		}
		if img := m.images[b]; img != nil {
			if err := img.Close(); err != nil && first == nil {
				first = fmt.Errorf("close %s: %w", m.Family.BandName(b), err)
			}
			m.images[b] = nil
		}
	}

	log.Debugf("closed %s manager (%s)", m.Family.Name, m.stats)
	return first
}

func NewQuickBird(images [calib.NumBands]raster.Band, multiMeta, panMeta string, opts ...Option) (*Manager, error) {
	return New(QuickBird, images, multiMeta, panMeta, opts...)
}

func NewGeoEye1(images [calib.NumBands]raster.Band, meta string, opts ...Option) (*Manager, error) {
	return New(GeoEye1, images, meta, "", opts...)
}

func NewSPOT(images [calib.NumBands]raster.Band, multiMeta, panMeta string, opts ...Option) (*Manager, error) {
	return New(SPOT, images, multiMeta, panMeta, opts...)
}

func NewPleiades(images [calib.NumBands]raster.Band, multiMeta, panMeta string, opts ...Option) (*Manager, error) {
	return New(Pleiades, images, multiMeta, panMeta, opts...)
}

func NewRapidEye(images [calib.NumBands]raster.Band, meta string, opts ...Option) (*Manager, error) {
	return New(RapidEye, images, meta, "", opts...)
}
