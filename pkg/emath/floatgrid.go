package emath

import(
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/fogleman/gg" // Move to https://pkg.go.dev/golang.org/x/image/font#Drawer sometime
	"github.com/mdouchement/hdr/hdrcolor"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// A FloatGrid is a grid of floats, one calibrated band held in memory.
// It accepts lines as a calibration sink, and implements hdr.Image
// (as gray) so it can be written out as Radiance HDR.
type FloatGrid struct {
	stride int
	values []float64
}

func NewFloatGrid(w, h int) FloatGrid {
	return FloatGrid{
		stride: w,
		values: make([]float64, w*h),
	}
}

func (fg *FloatGrid)Set(x, y int, v float64) { fg.values[fg.stride*y + x] = v }
func (fg *FloatGrid)Get(x, y int) float64    { return fg.values[fg.stride*y + x] }
func (fg *FloatGrid)Dx() int                 { return fg.stride }
func (fg *FloatGrid)Dy() int {
	if fg.stride == 0 { return 0 }
	return len(fg.values) / fg.stride
}

// Row is line y, aliasing the grid's storage.
func (fg *FloatGrid)Row(y int) []float64 { return fg.values[fg.stride*y : fg.stride*(y+1)] }

// Implement raster.Sink
func (fg *FloatGrid)Samples() int { return fg.Dx() }
func (fg *FloatGrid)Lines() int   { return fg.Dy() }
func (fg *FloatGrid)Close() error { return nil }

func (fg *FloatGrid)WriteLine(y int, values []float64) error {
	if y < 0 || y >= fg.Dy() {
		return fmt.Errorf("FloatGrid.WriteLine: line %d outside of %dx%d", y, fg.Dx(), fg.Dy())
	} else if len(values) != fg.stride {
		return fmt.Errorf("FloatGrid.WriteLine: %d values for a line of %d", len(values), fg.stride)
	}
	copy(fg.Row(y), values)
	return nil
}

// Implement image.Image
func (fg FloatGrid)ColorModel() color.Model { return hdrcolor.RGBModel }
func (fg FloatGrid)Bounds() image.Rectangle { return image.Rect(0, 0, fg.Dx(), fg.Dy()) }
func (fg FloatGrid)At(x, y int) color.Color { return fg.HDRAt(x,y) }

// Implement hdr.Image
func (fg FloatGrid)HDRAt(x, y int) hdrcolor.Color {
	v := fg.Get(x,y)
	return hdrcolor.RGB{R:v, G:v, B:v}
}
func (fg FloatGrid)Size() int { return len(fg.values) }

// Stats are the summary numbers for a calibrated band.
type Stats struct {
	Count    int
	Min, Max float64
	Mean     float64
	StdDev   float64
}

func (s Stats)String() string {
	return fmt.Sprintf("n=%d, vals{%f,%f}, mean=%f, sd=%f", s.Count, s.Min, s.Max, s.Mean, s.StdDev)
}

func (fg *FloatGrid)Stats() Stats {
	if len(fg.values) == 0 {
		return Stats{}
	}
	s := Stats{
		Count: len(fg.values),
		Min:   floats.Min(fg.values),
		Max:   floats.Max(fg.values),
	}
	s.Mean, s.StdDev = stat.MeanStdDev(fg.values, nil)
	return s
}

func (fg *FloatGrid)String() string {
	return fmt.Sprintf("fg[%dx%d, %s]", fg.Dx(), fg.Dy(), fg.Stats())
}

// FindMinMaxAtPercentile ignores zeros (fill pixels), and returns the values
// at the two percentiles of what is left.
func (fg *FloatGrid)FindMinMaxAtPercentile(minPrct, maxPrct float64) (float64, float64) {
	vals := []float64{}
	for _, val := range fg.values {
		if val != 0.0 && !math.IsNaN(val) {
			vals = append(vals, val)
		}
	}
	if len(vals) == 0 {
		return 0, 0
	}

	sort.Float64s(vals)

	iMin := int(minPrct * float64(len(vals)))
	iMax := int(maxPrct * float64(len(vals)))
	if iMin < 0          { iMin = 0 }
	if iMax >= len(vals) { iMax = len(vals)-1 }

	return vals[iMin], vals[iMax]
}

// ToGray16 linearly maps [lo,hi] onto the full 16 bit range, clamping.
func (fg *FloatGrid)ToGray16(lo, hi float64) *image.Gray16 {
	img := image.NewGray16(fg.Bounds())
	for y:=0; y<fg.Dy(); y++ {
		for x:=0; x<fg.Dx(); x++ {
			img.SetGray16(x, y, color.Gray16{uint16(Clamp01(Unlerp(fg.Get(x,y), lo, hi)) * 65535.0)})
		}
	}
	return img
}

// ToImg saves a quicklook PNG, stretched between the 2nd and 98th
// percentiles. Gray is gamma scaled to look normal for human vision;
// otherwise values are shown on a blue-to-red ramp.
func (fg *FloatGrid)ToImg(title, filename string, gray bool) error {
	min, max := fg.FindMinMaxAtPercentile(0.02, 0.98)

	img := image.NewRGBA64(fg.Bounds())
	for x:=0; x<fg.Dx(); x++ {
		for y:=0; y<fg.Dy(); y++ {
			f := Clamp01(Unlerp(fg.Get(x,y), min, max))
			if gray {
				g := uint16(GammaExpand_F64(f) * 65535.0)
				img.Set(x, y, color.RGBA64{g, g, g, 0xFFFF})
			} else {
				img.Set(x, y, Ramp(f))
			}
		}
	}

	dc := gg.NewContextForImage(img)
	dc.SetRGB(1,1,1)
	dc.DrawString(title, 10, 20)
	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("quicklook '%s': %v", filename, err)
	}
	return nil
}
