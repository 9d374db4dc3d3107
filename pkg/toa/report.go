package toa

import(
	"fmt"

	"github.com/skypies/util/histogram"

	"github.com/abworrall/toacal/pkg/emath"
)

const reportBuckets = 20

// A Report summarises one produced output, for the run log.
type Report struct {
	Output    Output
	Stats     emath.Stats
	Lo, Hi    float64 // the 2nd and 98th percentile of the non-zero values
	Histogram histogram.Histogram // non-zero values, bucketed across [Lo,Hi]
}

func Summarize(o Output, fg *emath.FloatGrid) Report {
	r := Report{
		Output:    o,
		Stats:     fg.Stats(),
		Histogram: histogram.Histogram{NumBuckets:reportBuckets, ValMin:0, ValMax:reportBuckets},
	}
	r.Lo, r.Hi = fg.FindMinMaxAtPercentile(0.02, 0.98)

	for y:=0; y<fg.Dy(); y++ {
		for _, v := range fg.Row(y) {
			if v == 0.0 { continue }
			bucket := int(emath.Clamp01(emath.Unlerp(v, r.Lo, r.Hi)) * reportBuckets)
			if bucket >= reportBuckets { bucket = reportBuckets-1 }
			r.Histogram.Add(histogram.ScalarVal(bucket))
		}
	}

	return r
}

func (r Report)String() string {
	return fmt.Sprintf("%s: %s, p2..p98=[%g,%g]\n%v", r.Output, r.Stats, r.Lo, r.Hi, &r.Histogram)
}
