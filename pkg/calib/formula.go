package calib

import(
	"fmt"
	"math"
)

// ZeroFloor is the magnitude below which a scaled DN is treated as exactly zero.
const ZeroFloor = 10e-10

// A Formula maps a raw DN to TOA radiance. The set of formulas is closed;
// each sensor family uses exactly one of them.
type Formula interface {
	Radiance(dn float64) float64
	Kind() Kind
	String() string

	isFormula()
}

// Linear is radiance = gain*dn + offset.
type Linear struct {
	Gain   float64
	Offset float64
}

// InverseBias is radiance = dn/gain + bias.
type InverseBias struct {
	Gain float64
	Bias float64
}

// AbsCalBandwidth is radiance = (absCalFactor*dn) / effectiveBandwidth.
type AbsCalBandwidth struct {
	Factor    float64
	Bandwidth float64
}

// ScaledZeroFloor is radiance = gain*dn, with near-zero DNs mapped to exactly 0.0.
type ScaledZeroFloor struct {
	Gain float64
}

func (f Linear)Radiance(dn float64) float64          { return f.Gain*dn + f.Offset }
func (f InverseBias)Radiance(dn float64) float64     { return dn/f.Gain + f.Bias }
func (f AbsCalBandwidth)Radiance(dn float64) float64 { return (f.Factor * dn) / f.Bandwidth }

func (f ScaledZeroFloor)Radiance(dn float64) float64 {
	if math.Abs(dn) < ZeroFloor {
		return 0.0
	}
	return f.Gain * dn
}

func (Linear)Kind() Kind          { return KindLinear }
func (InverseBias)Kind() Kind     { return KindInverseBias }
func (AbsCalBandwidth)Kind() Kind { return KindAbsCalBandwidth }
func (ScaledZeroFloor)Kind() Kind { return KindScaledZeroFloor }

func (f Linear)String() string          { return fmt.Sprintf("Linear[gain=%g, offset=%g]", f.Gain, f.Offset) }
func (f InverseBias)String() string     { return fmt.Sprintf("InverseBias[gain=%g, bias=%g]", f.Gain, f.Bias) }
func (f AbsCalBandwidth)String() string { return fmt.Sprintf("AbsCal[factor=%g, bandwidth=%g]", f.Factor, f.Bandwidth) }
func (f ScaledZeroFloor)String() string { return fmt.Sprintf("Scaled[gain=%g]", f.Gain) }

func (Linear)isFormula()          {}
func (InverseBias)isFormula()     {}
func (AbsCalBandwidth)isFormula() {}
func (ScaledZeroFloor)isFormula() {}

// Kind names one of the formula variants.
type Kind int

const(
	KindLinear Kind = iota
	KindInverseBias
	KindAbsCalBandwidth
	KindScaledZeroFloor
)

func (k Kind)String() string {
	switch k {
	case KindLinear:          return "linear"
	case KindInverseBias:     return "inversebias"
	case KindAbsCalBandwidth: return "abscal"
	case KindScaledZeroFloor: return "scaledzerofloor"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Required is the completeness a band needs before this kind of formula
// can be built for it.
func (k Kind)Required() Completeness {
	if k == KindScaledZeroFloor {
		return MetaGainSet
	}
	return MetaAllSet
}

// Build makes the formula from the two scalars a metadata file provides
// per band. The secondary is ignored by single-scalar formulas.
func (k Kind)Build(primary, secondary float64) (Formula, error) {
	switch k {
	case KindLinear:
		return Linear{Gain: primary, Offset: secondary}, nil

	case KindInverseBias:
		if primary == 0 {
			return nil, fmt.Errorf("%w: gain is zero", ErrDegenerateCalibration)
		}
		return InverseBias{Gain: primary, Bias: secondary}, nil

	case KindAbsCalBandwidth:
		if secondary == 0 {
			return nil, fmt.Errorf("%w: effective bandwidth is zero", ErrDegenerateCalibration)
		}
		return AbsCalBandwidth{Factor: primary, Bandwidth: secondary}, nil

	case KindScaledZeroFloor:
		return ScaledZeroFloor{Gain: primary}, nil
	}

	return nil, fmt.Errorf("no formula kind %d", int(k))
}
