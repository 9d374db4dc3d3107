package metadata

import(
	"strings"
)

// DigitalGlobe .IMD files are "key = value;" lines, with per-band groups.

type quickBirdGrammar struct{}
type geoEye1Grammar struct{}

var(
	QuickBirdIMD Grammar = quickBirdGrammar{}
	GeoEye1IMD   Grammar = geoEye1Grammar{}
)

// QuickBird names its band groups by letter; the multispectral file has
// B, G, R, N and the pan file has P.
var quickBirdGroups = []string{"BAND_B", "BAND_G", "BAND_R", "BAND_N", "BAND_P"}

func (quickBirdGrammar)Name() string       { return "QuickBird IMD" }
func (quickBirdGrammar)Terminator() string { return "END;" }

func (quickBirdGrammar)ScanLine(s *Scanner, line string) {
	if v, ok := after(line, "BEGIN_GROUP = "); ok {
		for i, name := range quickBirdGroups {
			if strings.HasPrefix(v, name) {
				s.OpenBand(i)
				return
			}
		}
		return
	}

	if strings.Contains(line, "END_GROUP = BAND_") {
		s.CloseBand()
		return
	}

	if v, ok := after(line, "absCalFactor = "); ok {
		s.SetPrimary(v)
	} else if v, ok := after(line, "effectiveBandwidth = "); ok {
		s.SetSecondary(v)
	} else if v, ok := after(line, "firstLineTime = "); ok {
		s.SetDate(v)
	} else if v, ok := after(line, "meanSunEl = "); ok {
		s.SetElevation(v)
	}
}

func (geoEye1Grammar)Name() string       { return "GeoEye-1 IMD" }
func (geoEye1Grammar)Terminator() string { return "END;" }

func (geoEye1Grammar)ScanLine(s *Scanner, line string) {
	if v, ok := after(line, "bandNumber = "); ok {
		if n, ok := parseNumber(v); ok && n >= 1 && n <= 5 && n == float64(int(n)) {
			s.OpenBand(int(n) - 1)
		}
		return
	}

	if strings.Contains(line, "END_GROUP = bandSpecificInformation;") {
		s.CloseBand()
		return
	}

	if v, ok := after(line, "firstLineAcquisitionDateTime = "); ok {
		s.SetDate(v)
	} else if v, ok := after(line, "firstLineElevationAngle = "); ok {
		s.SetElevation(v)
	} else if v, ok := after(line, "gain = "); ok {
		s.SetPrimary(v)
	} else if v, ok := after(line, "offset = "); ok {
		s.SetSecondary(v)
	}
}
