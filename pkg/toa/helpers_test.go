package toa

import(
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abworrall/toacal/pkg/calib"
	"github.com/abworrall/toacal/pkg/raster"
	"github.com/abworrall/toacal/pkg/solar"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

// geoEye1Meta builds an IMD with one group per "gain/offset" pair given;
// an empty pair skips the band, a "-" leaves out that field.
func geoEye1Meta(pairs ...string) string {
	var sb strings.Builder
	for i, pair := range pairs {
		if pair == "" { continue }
		parts := strings.Split(pair, "/")
		fmt.Fprintf(&sb, "BEGIN_GROUP = bandSpecificInformation\n\tbandNumber = %d;\n", i+1)
		if parts[0] != "-" { fmt.Fprintf(&sb, "\tgain = %s;\n", parts[0]) }
		if parts[1] != "-" { fmt.Fprintf(&sb, "\toffset = %s;\n", parts[1]) }
		sb.WriteString("END_GROUP = bandSpecificInformation;\n")
	}
	sb.WriteString("BEGIN_GROUP = acquisition\n")
	sb.WriteString("\tfirstLineAcquisitionDateTime = 2009-03-15T10:30:00.000000Z;\n")
	sb.WriteString("\tfirstLineElevationAngle = 45.2;\n")
	sb.WriteString("END_GROUP = acquisition\nEND;\n")
	return sb.String()
}

// spotMeta builds a DIMAP document binding the given gain/bias pairs to
// the bands named.
func spotMeta(date, elevation string, bands map[string]string) string {
	var sb strings.Builder
	sb.WriteString("<Dimap_Document>\n")
	fmt.Fprintf(&sb, "<IMAGING_DATE>%s</IMAGING_DATE>\n<IMAGING_TIME>10:41:09</IMAGING_TIME>\n", date)
	for _, id := range []string{"B0", "B1", "B2", "B3", "P"} {
		pair, exists := bands[id]
		if !exists { continue }
		parts := strings.Split(pair, "/")
		fmt.Fprintf(&sb, "<Band_Radiance>\n<BAND_ID>%s</BAND_ID>\n<GAIN>%s</GAIN>\n<BIAS>%s</BIAS>\n</Band_Radiance>\n", id, parts[0], parts[1])
	}
	fmt.Fprintf(&sb, "<LOCATION_TYPE>Center</LOCATION_TYPE>\n<SUN_ELEVATION>%s</SUN_ELEVATION>\n", elevation)
	sb.WriteString("<LOCATION_TYPE>CenterRight</LOCATION_TYPE>\n</Dimap_Document>\n")
	return sb.String()
}

// pleiadesMeta is like spotMeta, with BAND_ID ahead of each group.
func pleiadesMeta(elevation string, bands map[string]string) string {
	var sb strings.Builder
	sb.WriteString("<Dimap_Document>\n<IMAGING_DATE>2012-04-11</IMAGING_DATE>\n<IMAGING_TIME>10:52:31.4Z</IMAGING_TIME>\n")
	for _, id := range []string{"B0", "B1", "B2", "B3", "P"} {
		pair, exists := bands[id]
		if !exists { continue }
		parts := strings.Split(pair, "/")
		fmt.Fprintf(&sb, "<BAND_ID>%s</BAND_ID>\n<Band_Radiance>\n<GAIN>%s</GAIN>\n<BIAS>%s</BIAS>\n</Band_Radiance>\n", id, parts[0], parts[1])
	}
	fmt.Fprintf(&sb, "<LOCATION_TYPE>Center</LOCATION_TYPE>\n<SUN_ELEVATION unit=\"deg\">%s</SUN_ELEVATION>\n", elevation)
	sb.WriteString("<LOCATION_TYPE>Bottom Center</LOCATION_TYPE>\n</Dimap_Document>\n")
	return sb.String()
}

func quickBirdMeta(group, factor, bandwidth, when, elevation string) string {
	return fmt.Sprintf(`BEGIN_GROUP = %s
	absCalFactor = %s;
	effectiveBandwidth = %s;
END_GROUP = %s
BEGIN_GROUP = IMAGE_1
	firstLineTime = %s;
	meanSunEl = %s;
END_GROUP = IMAGE_1
END;
`, group, factor, bandwidth, group, when, elevation)
}

const rapidEyeMeta = `<re:EarthObservation>
<hma:acquisitionDate>2011-07-13T10:36:45.234Z</hma:acquisitionDate>
<ohr:illuminationElevationAngle uom="deg">58.41</ohr:illuminationElevationAngle>
<re:radiometricScaleFactor>0.01</re:radiometricScaleFactor>
<re:radiometricScaleFactor>0.01</re:radiometricScaleFactor>
<re:radiometricScaleFactor>0.01</re:radiometricScaleFactor>
<re:radiometricScaleFactor>0.01</re:radiometricScaleFactor>
<re:radiometricScaleFactor>0.01</re:radiometricScaleFactor>
</re:EarthObservation>
`

func memBand(t *testing.T, rows ...[]uint16) *raster.MemBand {
	t.Helper()
	mb, err := raster.NewMemBandFromRows(rows...)
	require.NoError(t, err)
	return mb
}

// rampBand is a band whose DNs cover a wide range, lines differing.
func rampBand(t *testing.T, samples, lines int) *raster.MemBand {
	mb := raster.NewMemBand(samples, lines)
	for y := 0; y < lines; y++ {
		for x := 0; x < samples; x++ {
			mb.Set(x, y, uint16((x*977 + y*4093) % 65536))
		}
	}
	return mb
}

func bind(bands map[int]raster.Band) [calib.NumBands]raster.Band {
	images := [calib.NumBands]raster.Band{}
	for b, img := range bands {
		images[b] = img
	}
	return images
}

// fixedDistance is a distance model that ignores the date, and range
// checks the way the Julian model does.
type fixedDistance float64

func (d fixedDistance)Distance(solar.AcquisitionTime) (float64, error) {
	return float64(d), solar.CheckDistance(float64(d))
}
func (d fixedDistance)String() string { return fmt.Sprintf("fixed(%g)", float64(d)) }
