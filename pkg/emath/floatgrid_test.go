package emath

import(
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abworrall/toacal/pkg/raster"
)

func TestFloatGrid_WriteLine(t *testing.T) {
	fg := NewFloatGrid(4, 2)
	require.NoError(t, fg.WriteLine(1, []float64{1, 21, 41, 61}))
	assert.Equal(t, []float64{1, 21, 41, 61}, fg.Row(1))
	assert.Equal(t, 41.0, fg.Get(2, 1))
	assert.Equal(t, []float64{0, 0, 0, 0}, fg.Row(0))

	assert.Error(t, fg.WriteLine(2, []float64{1, 2, 3, 4}))
	assert.Error(t, fg.WriteLine(0, []float64{1, 2, 3}))

	var sink raster.Sink = &fg
	assert.Equal(t, 4, sink.Samples())
	assert.Equal(t, 2, sink.Lines())

	empty := FloatGrid{}
	assert.Equal(t, 0, empty.Dy())
	assert.Error(t, empty.WriteLine(0, nil))
}

func TestFloatGrid_Stats(t *testing.T) {
	fg := NewFloatGrid(4, 1)
	require.NoError(t, fg.WriteLine(0, []float64{2, 4, 4, 6}))

	s := fg.Stats()
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 6.0, s.Max)
	assert.InDelta(t, 4.0, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(8.0/3.0), s.StdDev, 1e-12) // unbiased
}

func TestFloatGrid_Percentiles(t *testing.T) {
	fg := NewFloatGrid(10, 1)
	require.NoError(t, fg.WriteLine(0, []float64{0, 0, 1, 2, 3, 4, 5, 6, 7, 8}))

	lo, hi := fg.FindMinMaxAtPercentile(0.0, 1.0)
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 8.0, hi)

	empty := NewFloatGrid(2, 2)
	lo, hi = empty.FindMinMaxAtPercentile(0.02, 0.98)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 0.0, hi)
}

func TestFloatGrid_ToGray16(t *testing.T) {
	fg := NewFloatGrid(3, 1)
	require.NoError(t, fg.WriteLine(0, []float64{-1, 0.5, 2}))

	img := fg.ToGray16(0, 1)
	assert.Equal(t, uint16(0), img.Gray16At(0, 0).Y)
	assert.Equal(t, uint16(32767), img.Gray16At(1, 0).Y)
	assert.Equal(t, uint16(65535), img.Gray16At(2, 0).Y)
}

func TestFloatGrid_Outputs(t *testing.T) {
	fg := NewFloatGrid(16, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			fg.Set(x, y, float64(x*y)/100.0)
		}
	}

	dir := t.TempDir()
	for _, gray := range []bool{true, false} {
		filename := filepath.Join(dir, "quicklook.png")
		require.NoError(t, fg.ToImg("band 1", filename, gray))
		info, err := os.Stat(filename)
		require.NoError(t, err)
		assert.True(t, info.Size() > 0)
	}

	hdrFile := filepath.Join(dir, "band.hdr")
	require.NoError(t, raster.WriteHDR(&fg, hdrFile))
	info, err := os.Stat(hdrFile)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)
}

func TestMisc(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-3))
	assert.Equal(t, 0.0, Clamp01(math.NaN()))
	assert.Equal(t, 1.0, Clamp01(3))
	assert.Equal(t, 0.25, Unlerp(2, 1, 5))
	assert.Equal(t, 0.0, Unlerp(2, 1, 1))
	assert.InDelta(t, 1.0, GammaExpand_F64(1.0), 1e-12)

	r, _, b := Ramp(0).RGB255()
	assert.Equal(t, uint8(0), r)
	assert.Equal(t, uint8(255), b)
	r, _, b = Ramp(1).RGB255()
	assert.Equal(t, uint8(255), r)
	assert.Equal(t, uint8(0), b)
}
