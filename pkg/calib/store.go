package calib

import(
	"errors"
	"fmt"
	"math"

	"github.com/abworrall/toacal/pkg/solar"
)

// Every sensor family has four multispectral bands and a fifth (usually pan) band.
const NumBands = 5

var(
	ErrInvalidBand           = errors.New("band number is outside of range")
	ErrIncompleteCalibration = errors.New("calibration metadata unavailable")
	ErrDegenerateCalibration = errors.New("calibration metadata is degenerate")
)

// Completeness records which calibration fields the metadata supplied
// for a band. Bits are OR'd in as fields are seen, never cleared.
type Completeness uint8

const(
	MetaNotSet    Completeness = 0
	MetaGainSet   Completeness = 1
	MetaOffsetSet Completeness = 2
	MetaAllSet    Completeness = MetaGainSet | MetaOffsetSet
)

func (c Completeness)String() string {
	switch c {
	case MetaNotSet:    return "none"
	case MetaGainSet:   return "gain"
	case MetaOffsetSet: return "offset"
	case MetaAllSet:    return "all"
	}
	return fmt.Sprintf("flags(%d)", uint8(c))
}

// BandCoefficients are the raw per-band scalars. Primary is the gain-like
// value (gain, absCalFactor, radiometricScaleFactor), Secondary the
// offset-like one (offset, bias, effectiveBandwidth).
type BandCoefficients struct {
	Primary   float64
	Secondary float64
	Flags     Completeness
}

// A Store holds the validated calibration state for one scene.
type Store struct {
	Kind    Kind
	Bands   [NumBands]BandCoefficients
	ESUN    [NumBands]float64

	Multi   *solar.Geometry
	Pan     *solar.Geometry // nil when the pan band shares the multispectral pass
	PanBand int             // -1 if the family has no pan band
}

func CheckBand(band int) error {
	if band < 0 || band >= NumBands {
		return fmt.Errorf("%w: band %d", ErrInvalidBand, band+1)
	}
	return nil
}

// Complete is true if the band has every field its formula kind needs.
func (s *Store)Complete(band int) bool {
	return CheckBand(band) == nil && s.Bands[band].Flags == s.Kind.Required()
}

// Geometry picks the solar geometry slot that applies to the band.
func (s *Store)Geometry(band int) *solar.Geometry {
	if band == s.PanBand && s.Pan != nil {
		return s.Pan
	}
	return s.Multi
}

// Formula validates the band and builds its radiance formula.
func (s *Store)Formula(band int) (Formula, error) {
	if err := CheckBand(band); err != nil {
		return nil, err
	}

	bc := s.Bands[band]
	if bc.Flags != s.Kind.Required() {
		return nil, fmt.Errorf("%w: band %d has %s, %s needs %s", ErrIncompleteCalibration, band+1, bc.Flags, s.Kind, s.Kind.Required())
	}

	f, err := s.Kind.Build(bc.Primary, bc.Secondary)
	if err != nil {
		return nil, fmt.Errorf("band %d: %w", band+1, err)
	}
	return f, nil
}

// Transform bundles everything needed to calibrate one band.
func (s *Store)Transform(band int) (Transform, error) {
	f, err := s.Formula(band)
	if err != nil {
		return Transform{}, err
	}

	g := s.Geometry(band)
	if g == nil {
		return Transform{}, fmt.Errorf("%w: band %d has no solar geometry", ErrIncompleteCalibration, band+1)
	}

	return Transform{Formula: f, ESUN: s.ESUN[band], Geometry: *g}, nil
}

// A Transform is a pure function of a single band's validated state.
type Transform struct {
	Formula
	ESUN     float64
	Geometry solar.Geometry
}

func (t Transform)Reflectance(radiance float64) float64 {
	return Reflectance(radiance, t.ESUN, t.Geometry)
}

func (t Transform)ReflectanceOfDN(dn float64) float64 {
	return t.Reflectance(t.Radiance(dn))
}

// Reflectance is the TOA reflectance for a radiance, identical for every formula variant.
func Reflectance(radiance, esun float64, g solar.Geometry) float64 {
	return (radiance * math.Pow(g.Distance, 2.0) * math.Pi) / (esun * math.Cos(g.ZenithRadians))
}
