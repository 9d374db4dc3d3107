package metadata

import(
	"strings"
)

// DIMAP is Airbus' XML product format, read here one line at a time since
// each field of interest sits on its own line.

type dimapGrammar struct {
	name          string
	bandsInGroup  bool   // BAND_ID only counts inside <Band_Radiance>
	elevationTag  string
	centerClosing string // the LOCATION_TYPE that follows Center
}

var(
	SpotDIMAP = Grammar(dimapGrammar{
		name:          "SPOT DIMAP",
		bandsInGroup:  true,
		elevationTag:  "<SUN_ELEVATION>",
		centerClosing: "<LOCATION_TYPE>CenterRight</LOCATION_TYPE>",
	})

	PleiadesDIMAP = Grammar(dimapGrammar{
		name:          "Pleiades DIMAP",
		bandsInGroup:  false,
		elevationTag:  `<SUN_ELEVATION unit="deg">`,
		centerClosing: "<LOCATION_TYPE>Bottom Center</LOCATION_TYPE>",
	})
)

var dimapBandIDs = []string{"B0", "B1", "B2", "B3", "P"}

func (g dimapGrammar)Name() string       { return g.name }
func (g dimapGrammar)Terminator() string { return "</Dimap_Document>" }

func (g dimapGrammar)ScanLine(s *Scanner, line string) {
	if v, ok := after(line, "<BAND_ID>"); ok {
		if g.bandsInGroup && !s.InGroup { return }
		for i, id := range dimapBandIDs {
			if strings.HasPrefix(v, id+"</BAND_ID>") {
				s.OpenBand(i)
				return
			}
		}
		return
	}

	if strings.Contains(line, "<Band_Radiance>") {
		s.InGroup = true
		return
	}
	if strings.Contains(line, "</Band_Radiance>") {
		s.InGroup = false
		s.CloseBand()
		return
	}

	if v, ok := after(line, "<GAIN>"); ok {
		if !g.bandsInGroup || s.InGroup { s.SetPrimary(v) }
		return
	}
	if v, ok := after(line, "<BIAS>"); ok {
		if !g.bandsInGroup || s.InGroup { s.SetSecondary(v) }
		return
	}

	if v, ok := after(line, "<IMAGING_DATE>"); ok {
		s.SetDate(v)
		return
	}
	if v, ok := after(line, "<IMAGING_TIME>"); ok {
		s.SetTime(v)
		return
	}

	if strings.Contains(line, "<LOCATION_TYPE>Center</LOCATION_TYPE>") {
		s.AtCenter = true
		return
	}
	if strings.Contains(line, g.centerClosing) {
		s.AtCenter = false
		return
	}

	if v, ok := after(line, g.elevationTag); ok && s.AtCenter {
		s.SetElevation(v)
	}
}
