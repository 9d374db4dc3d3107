package metadata

type rapidEyeGrammar struct{}

// RapidEyeXML is the RapidEye product metadata. Only the first date and
// elevation count; the k-th radiometricScaleFactor is band k.
var RapidEyeXML Grammar = rapidEyeGrammar{}

const(
	reDateTag      = "<hma:acquisitionDate>"
	reElevationTag = `<ohr:illuminationElevationAngle uom="deg">`
	reScaleTag     = "<re:radiometricScaleFactor>"
)

func (rapidEyeGrammar)Name() string       { return "RapidEye XML" }
func (rapidEyeGrammar)Terminator() string { return "</re:EarthObservation>" }

func (rapidEyeGrammar)ScanLine(s *Scanner, line string) {
	if v, ok := after(line, reDateTag); ok && !s.acq.HasDate {
		s.SetDate(v)
	}
	if v, ok := after(line, reElevationTag); ok && !s.acq.HasElevation {
		s.SetElevation(v)
	}

	// Several scale factors can share a line when the XML is not pretty-printed.
	for rest := line; ; {
		v, ok := after(rest, reScaleTag)
		if !ok { break }
		rest = v
		if s.Occurrence >= len(s.rec.Bands) { continue }

		s.OpenBand(s.Occurrence)
		s.SetPrimary(v)
		s.CloseBand()
		s.Occurrence++
	}
}
