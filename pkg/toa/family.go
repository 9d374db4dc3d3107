package toa

import(
	"fmt"
	"sort"
	"strings"

	"github.com/abworrall/toacal/pkg/calib"
	"github.com/abworrall/toacal/pkg/metadata"
	"github.com/abworrall/toacal/pkg/solar"
)

// A Family is everything that differs between the supported sensors. The
// calibration engine is otherwise identical for all of them.
type Family struct {
	Name                string
	Grammar             metadata.Grammar
	Kind                calib.Kind
	Distance            solar.DistanceModel
	SeparatePanMetadata bool // pan band comes with its own metadata file, and its own pass
	PanBand             int  // -1 if the family has no pan band
	LookupTable         bool // build lookup tables before a whole-image pass

	ESUN                [calib.NumBands]float64 // W/m^2/um
	BandNames           [calib.NumBands]string
	PrimaryName         string // what the metadata calls the two per-band scalars
	SecondaryName       string
}

func (f Family)String() string {
	return fmt.Sprintf("%s[%s, %s, dist=%s]", f.Name, f.Grammar.Name(), f.Kind, f.Distance)
}

// Exoatmospheric solar irradiance per band.
var(
	esunQuickBird = [calib.NumBands]float64{1924.59, 1843.08, 1574.77, 1113.71, 1381.79}
	esunGeoEye1   = [calib.NumBands]float64{196.0, 185.3, 150.5, 103.9, 161.7}
	esunSPOT      = [calib.NumBands]float64{1982.671954, 1826.087443, 1540.494123, 1094.747446, 1706.514896}
	esunPleiades  = [calib.NumBands]float64{1915.0, 1830.0, 1594.0, 1060.0, 1549.0}
	esunRapidEye  = [calib.NumBands]float64{1997.8, 1836.5, 1560.4, 1395.0, 1124.4}
)

var(
	QuickBird = Family{
		Name:                "quickbird",
		Grammar:             metadata.QuickBirdIMD,
		Kind:                calib.KindAbsCalBandwidth,
		Distance:            solar.JulianDistance,
		SeparatePanMetadata: true,
		PanBand:             4,
		ESUN:                esunQuickBird,
		BandNames:           [calib.NumBands]string{"blue", "green", "red", "nir", "pan"},
		PrimaryName:         "absCalFactor",
		SecondaryName:       "effectiveBandwidth",
	}

	GeoEye1 = Family{
		Name:                "geoeye1",
		Grammar:             metadata.GeoEye1IMD,
		Kind:                calib.KindLinear,
		Distance:            solar.JulianDistance,
		PanBand:             4,
		ESUN:                esunGeoEye1,
		BandNames:           [calib.NumBands]string{"blue", "green", "red", "nir", "pan"},
		PrimaryName:         "gain",
		SecondaryName:       "offset",
	}

	SPOT = Family{
		Name:                "spot",
		Grammar:             metadata.SpotDIMAP,
		Kind:                calib.KindInverseBias,
		Distance:            solar.JulianDistance,
		SeparatePanMetadata: true,
		PanBand:             4,
		LookupTable:         true,
		ESUN:                esunSPOT,
		BandNames:           [calib.NumBands]string{"B0", "B1", "B2", "B3", "P"},
		PrimaryName:         "gain",
		SecondaryName:       "bias",
	}

	Pleiades = Family{
		Name:                "pleiades",
		Grammar:             metadata.PleiadesDIMAP,
		Kind:                calib.KindInverseBias,
		Distance:            solar.JulianDistance,
		SeparatePanMetadata: true,
		PanBand:             4,
		LookupTable:         true,
		ESUN:                esunPleiades,
		BandNames:           [calib.NumBands]string{"B0", "B1", "B2", "B3", "P"},
		PrimaryName:         "gain",
		SecondaryName:       "bias",
	}

	RapidEye = Family{
		Name:                "rapideye",
		Grammar:             metadata.RapidEyeXML,
		Kind:                calib.KindScaledZeroFloor,
		Distance:            solar.DayOfYearDistance,
		PanBand:             -1,
		ESUN:                esunRapidEye,
		BandNames:           [calib.NumBands]string{"blue", "green", "red", "rededge", "nir"},
		PrimaryName:         "radiometricScaleFactor",
	}
)

var families = map[string]Family{}

func init() {
	for _, f := range []Family{QuickBird, GeoEye1, SPOT, Pleiades, RapidEye} {
		families[f.Name] = f
	}
	families["ge1"] = GeoEye1
	families["qb"] = QuickBird
	families["plds"] = Pleiades
	families["re"] = RapidEye
}

// LookupFamily resolves a sensor name, as used on the command line and in job files.
func LookupFamily(name string) (Family, error) {
	if f, exists := families[strings.ToLower(name)]; exists {
		return f, nil
	}
	return Family{}, fmt.Errorf("no sensor family named '%s' (have: %s)", name, ListFamilies())
}

func ListFamilies() string {
	names := []string{}
	for _, f := range []Family{QuickBird, GeoEye1, SPOT, Pleiades, RapidEye} {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

// BandName is a band's name in the family, with its 1-based number.
func (f Family)BandName(band int) string {
	if band < 0 || band >= calib.NumBands {
		return fmt.Sprintf("band %d", band+1)
	}
	return fmt.Sprintf("band %d (%s)", band+1, f.BandNames[band])
}
