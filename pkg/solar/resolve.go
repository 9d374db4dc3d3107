package solar

import(
	"fmt"
)

// A DistanceModel turns an acquisition time into a Sun-Earth distance in AU.
type DistanceModel interface {
	Distance(t AcquisitionTime) (float64, error)
	String() string
}

type julianModel struct{}
type dayOfYearModel struct{}

var(
	// JulianDistance is the full Julian-date formula, with the [0.983, 1.017] AU check.
	JulianDistance DistanceModel = julianModel{}

	// DayOfYearDistance is the eccentricity formula; it ignores the time of day.
	DayOfYearDistance DistanceModel = dayOfYearModel{}
)

func (julianModel)Distance(t AcquisitionTime) (float64, error) { return EarthSunDistanceJulian(t) }
func (julianModel)String() string                               { return "julian" }

func (dayOfYearModel)Distance(t AcquisitionTime) (float64, error) {
	return EarthSunDistanceDayOfYear(DayOfYear(t.Year, t.Month, t.Day)), nil
}
func (dayOfYearModel)String() string { return "dayofyear" }

// Geometry is everything the reflectance calculation needs to know about the sun.
type Geometry struct {
	Acquired      AcquisitionTime
	Elevation     float64 // degrees above the horizon, at scene center
	Zenith        float64 // degrees
	ZenithRadians float64
	Distance      float64 // AU
}

func (g Geometry)String() string {
	return fmt.Sprintf("%s, elevation %.6f, zenith %.6f, dist %.9f AU", g.Acquired, g.Elevation, g.Zenith, g.Distance)
}

// Resolve computes the solar geometry for one acquisition pass.
func Resolve(model DistanceModel, t AcquisitionTime, elevation float64) (Geometry, error) {
	g := Geometry{Acquired: t, Elevation: elevation}

	if err := t.Validate(); err != nil {
		return g, fmt.Errorf("resolve %s: %w", model, err)
	}

	dist, err := model.Distance(t)
	if err != nil {
		return g, fmt.Errorf("resolve %s for %s: %w", model, t, err)
	}

	g.Distance = dist
	g.Zenith, g.ZenithRadians = Zenith(elevation)

	return g, nil
}
