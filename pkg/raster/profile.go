package raster

import(
	"fmt"

	"github.com/codahale/hdrhistogram"
)

// A Profile summarises the DNs of a band, so a run log shows whether the
// input looks like what the metadata describes (bit depth, fill value).
type Profile struct {
	Samples, Lines int
	Count          int64
	Zeros          int64 // fill pixels
	Min, Max       int64
	Mean           float64
	P1, P50, P99   int64
}

func (p Profile)String() string {
	return fmt.Sprintf("%dx%d, %d zero, DN[min=%d p1=%d p50=%d mean=%.1f p99=%d max=%d]",
		p.Samples, p.Lines, p.Zeros, p.Min, p.P1, p.P50, p.Mean, p.P99, p.Max)
}

// ProfileBand reads every stride'th line of a band into a histogram. Zero
// DNs are counted separately and left out of the distribution.
func ProfileBand(b Band, stride int) (Profile, error) {
	if stride < 1 { stride = 1 }

	p := Profile{Samples: b.Samples(), Lines: b.Lines()}
	h := hdrhistogram.New(1, 65535, 3)

	for y := 0; y < b.Lines(); y += stride {
		row, err := b.ReadLine(y)
		if err != nil {
			return p, fmt.Errorf("profile line %d: %w", y, err)
		}
		for _, dn := range row {
			if dn == 0 {
				p.Zeros++
				continue
			}
			if err := h.RecordValue(int64(dn)); err != nil {
				return p, fmt.Errorf("profile line %d: %v", y, err)
			}
		}
	}

	p.Count = h.TotalCount()
	if p.Count > 0 {
		p.Min, p.Max, p.Mean = h.Min(), h.Max(), h.Mean()
		p.P1 = h.ValueAtQuantile(1)
		p.P50 = h.ValueAtQuantile(50)
		p.P99 = h.ValueAtQuantile(99)
	}

	return p, nil
}
