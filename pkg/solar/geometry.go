package solar

import(
	"errors"
	"fmt"
	"math"
)

var(
	// The Julian-date distance model has failed if it lands outside this window; the
	// metadata it was fed is wrong.
	ErrDistanceOutOfRange = errors.New("earth sun distance is outside of range")
	ErrInvalidDate        = errors.New("invalid acquisition date")
)

const(
	MinDistanceAU = 0.983
	MaxDistanceAU = 1.017

	// Orbital eccentricity used by the day-of-year model
	Eccentricity = 0.016710219
)

// An AcquisitionTime is the UTC time the sensor took the first line of the scene.
type AcquisitionTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second float64
}

func (t AcquisitionTime)String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%09.6fZ", t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second)
}

func (t AcquisitionTime)Validate() error {
	switch {
	case t.Month < 1 || t.Month > 12:    return fmt.Errorf("%w: month %d", ErrInvalidDate, t.Month)
	case t.Day < 1 || t.Day > 31:        return fmt.Errorf("%w: day %d", ErrInvalidDate, t.Day)
	case t.Hour < 0 || t.Hour > 23:      return fmt.Errorf("%w: hour %d", ErrInvalidDate, t.Hour)
	case t.Minute < 0 || t.Minute > 59:  return fmt.Errorf("%w: minute %d", ErrInvalidDate, t.Minute)
	case t.Second < 0 || t.Second >= 61: return fmt.Errorf("%w: second %f", ErrInvalidDate, t.Second)
	}
	return nil
}

// UT is the time of day in decimal hours.
func (t AcquisitionTime)UT() float64 {
	return float64(t.Hour) + float64(t.Minute)/60.0 + t.Second/3600.0
}

// JulianDate converts a civil date to a Julian Date. January and
// February count as months 13 and 14 of the previous year.
func JulianDate(t AcquisitionTime) float64 {
	year  := float64(t.Year)
	month := float64(t.Month)
	if t.Month == 1 || t.Month == 2 {
		year  -= 1
		month += 12
	}

	a := math.Trunc(year / 100)
	b := 2 - a + math.Trunc(a/4)

	return math.Trunc(365.25*(year+4716)) + math.Trunc(30.6001*(month+1)) + float64(t.Day) + t.UT()/24.0 + b - 1524.5
}

// EarthSunDistanceJulian evaluates the mean-anomaly approximation of
// the Sun-Earth distance, in AU. It is only trusted inside
// [MinDistanceAU, MaxDistanceAU].
func EarthSunDistanceJulian(t AcquisitionTime) (float64, error) {
	d := JulianDate(t) - 2451545.0
	g := (357.529 + 0.98560028*d) * (math.Pi / 180.0)
	dist := 1.00014 - 0.01671*math.Cos(g) - 0.00014*math.Cos(2*g)

	return dist, CheckDistance(dist)
}

func CheckDistance(dist float64) error {
	if !(dist >= MinDistanceAU && dist <= MaxDistanceAU) {
		return fmt.Errorf("%w: %.9f AU not in [%.3f, %.3f]", ErrDistanceOutOfRange, dist, MinDistanceAU, MaxDistanceAU)
	}
	return nil
}

var(
	leapYearDays = [12]int{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335}
	regYearDays  = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
)

func IsLeapYear(year int) bool {
	switch {
	case year%400 == 0: return true
	case year%100 == 0: return false
	default:            return year%4 == 0
	}
}

// DayOfYear is 1-based; month must be in 1..12.
func DayOfYear(year, month, day int) int {
	if IsLeapYear(year) {
		return leapYearDays[month-1] + day
	}
	return regYearDays[month-1] + day
}

// EarthSunDistanceDayOfYear is the simpler eccentricity model. No range check.
func EarthSunDistanceDayOfYear(doy int) float64 {
	e := Eccentricity
	return 1 / ((1 + e*math.Cos(float64(doy-4)*2*math.Pi/365.25)) / (1 - e*e))
}

// Zenith returns the solar zenith angle, in degrees and radians, for a
// solar elevation in degrees.
func Zenith(elevation float64) (float64, float64) {
	zenith := 90.0 - elevation
	return zenith, zenith * (math.Pi / 180.0)
}
