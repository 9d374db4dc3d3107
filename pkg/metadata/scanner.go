package metadata

import(
	"regexp"
	"strconv"
	"strings"

	"github.com/abworrall/toacal/pkg/calib"
)

// A Scanner is the state carried from one line of a metadata file to the next.
type Scanner struct {
	Band       int  // band whose scope we are in, -1 outside any band
	InGroup    bool // inside a grammar-specific group, e.g. <Band_Radiance>
	AtCenter   bool // the scene-center location window is open
	Terminated bool // the grammar's end sentinel was seen
	Occurrence int  // count of order-implied band fields seen so far

	rec *Record
	acq *Acquisition
}

func NewScanner(rec *Record, slot Slot) *Scanner {
	return &Scanner{Band: -1, rec: rec, acq: rec.Slot(slot)}
}

var(
	numberRe = regexp.MustCompile(`^\s*[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`)
	dateRe   = regexp.MustCompile(`^\s*(\d{4})-(\d{1,2})-(\d{1,2})(?:T(\d{1,2}):(\d{1,2}):(\d+(?:\.\d*)?))?`)
	timeRe   = regexp.MustCompile(`^\s*(\d{1,2}):(\d{1,2}):(\d+(?:\.\d*)?)`)
)

// parseNumber reads the longest leading decimal number, ignoring whatever
// trails it (a ';', a closing tag).
func parseNumber(s string) (float64, bool) {
	m := numberRe.FindString(s)
	if m == "" { return 0, false }
	v, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
	if err != nil { return 0, false }
	return v, true
}

// after returns the text following key in line, and whether key was present.
func after(line, key string) (string, bool) {
	i := strings.Index(line, key)
	if i < 0 { return "", false }
	return line[i+len(key):], true
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func (s *Scanner)inBand() bool { return s.Band >= 0 && s.Band < calib.NumBands }

// OpenBand starts the scope of a band.
func (s *Scanner)OpenBand(band int) { s.Band = band }

// CloseBand leaves band scope.
func (s *Scanner)CloseBand() { s.Band = -1 }

// SetPrimary records the gain-like scalar of the current band.
func (s *Scanner)SetPrimary(text string) {
	if !s.inBand() { return }
	if v, ok := parseNumber(text); ok {
		s.rec.Bands[s.Band].Primary = v
		s.rec.Bands[s.Band].Flags |= calib.MetaGainSet
	}
}

// SetSecondary records the offset-like scalar of the current band.
func (s *Scanner)SetSecondary(text string) {
	if !s.inBand() { return }
	if v, ok := parseNumber(text); ok {
		s.rec.Bands[s.Band].Secondary = v
		s.rec.Bands[s.Band].Flags |= calib.MetaOffsetSet
	}
}

// SetDate parses YYYY-MM-DD, optionally followed by Thh:mm:ss[.sss].
func (s *Scanner)SetDate(text string) {
	m := dateRe.FindStringSubmatch(text)
	if m == nil { return }

	s.acq.Time.Year, s.acq.Time.Month, s.acq.Time.Day = atoi(m[1]), atoi(m[2]), atoi(m[3])
	s.acq.HasDate = true

	if m[4] != "" {
		s.setClock(m[4], m[5], m[6])
	}
}

// SetTime parses a bare hh:mm:ss[.sss].
func (s *Scanner)SetTime(text string) {
	if m := timeRe.FindStringSubmatch(text); m != nil {
		s.setClock(m[1], m[2], m[3])
	}
}

func (s *Scanner)setClock(hh, mm, ss string) {
	sec, err := strconv.ParseFloat(ss, 64)
	if err != nil { return }
	s.acq.Time.Hour, s.acq.Time.Minute, s.acq.Time.Second = atoi(hh), atoi(mm), sec
	s.acq.HasTime = true
}

// SetElevation records the sun elevation, in degrees.
func (s *Scanner)SetElevation(text string) {
	if v, ok := parseNumber(text); ok {
		s.acq.SunElevation = v
		s.acq.HasElevation = true
	}
}
