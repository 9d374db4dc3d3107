package toa

import(
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/abworrall/toacal/pkg/calib"
	"github.com/abworrall/toacal/pkg/emath"
	"github.com/abworrall/toacal/pkg/raster"
)

// OpenImages opens the TIFF for each band; an empty name or "-" leaves the
// band unbound. If any fails, those already opened are closed again.
func OpenImages(filenames []string) ([calib.NumBands]raster.Band, error) {
	images := [calib.NumBands]raster.Band{}
	for b, filename := range filenames {
		if b >= calib.NumBands {
			break
		} else if filename == "" || filename == "-" {
			continue
		}

		tb, err := raster.OpenTIFF(filename)
		if err != nil {
			closeImages(images)
			return [calib.NumBands]raster.Band{}, fmt.Errorf("band %d: %w", b+1, err)
		}
		images[b] = tb
		log.Debugf("band %d: %s", b+1, tb)
	}
	return images, nil
}

func closeImages(images [calib.NumBands]raster.Band) {
	for _, img := range images {
		if img != nil {
			img.Close()
		}
	}
}

// Run does a whole job: open the images, build the manager, then produce
// and write every output. The YAML dump goes to w, if the job asks for it.
func Run(ctx context.Context, c Config, w io.Writer) ([]Report, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	family, _ := c.GetFamily()
	opts, _ := c.GetOptions()

	images, err := OpenImages(c.Images)
	if err != nil {
		return nil, err
	}

	if c.ProfileStride > 0 {
		for b, img := range images {
			if img == nil { continue }
			if p, err := raster.ProfileBand(img, c.ProfileStride); err != nil {
				closeImages(images)
				return nil, fmt.Errorf("%s: %w", family.BandName(b), err)
			} else {
				log.Infof("%s: %s", family.BandName(b), p)
			}
		}
	}

	m, err := New(family, images, c.MultiMetadata, c.PanMetadata, opts...)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	if c.Dump && w != nil {
		if err := m.Dump(w); err != nil {
			return nil, err
		}
	}

	reports := []Report{}
	for _, o := range c.Outputs {
		r, err := m.writeOutput(ctx, o, c.TIFFScale)
		if err != nil {
			return reports, fmt.Errorf("output %s: %w", o, err)
		}
		log.Infof("%s", r)
		reports = append(reports, r)
	}

	log.Infof("%s done, %s", family.Name, m.Stats())
	return reports, nil
}

func (m *Manager)writeOutput(ctx context.Context, o Output, tiffScale float64) (Report, error) {
	band := o.Band - 1
	p, err := ParseProduct(o.Product)
	if err != nil {
		return Report{}, err
	} else if err := m.Ready(band); err != nil {
		return Report{}, err
	}

	img := m.Image(band)
	fg := emath.NewFloatGrid(img.Samples(), img.Lines())
	if err := m.Produce(ctx, p, band, &fg); err != nil {
		return Report{}, err
	}
	r := Summarize(o, &fg)

	switch strings.ToLower(filepath.Ext(o.Filename)) {
	case ".flt":
		err = raster.WriteFLT(&fg, o.Filename)
	case ".hdr":
		err = raster.WriteHDR(&fg, o.Filename)
	default:
		hi := tiffScale
		if hi <= 0 { hi = r.Stats.Max }
		err = raster.WriteTIFF(fg.ToGray16(0, hi), o.Filename)
	}
	if err != nil {
		return r, err
	}

	if o.Quicklook != "" {
		title := fmt.Sprintf("%s %s %s", m.Family.Name, m.Family.BandName(band), p)
		if err := fg.ToImg(title, o.Quicklook, o.Gray); err != nil {
			return r, err
		}
	}

	return r, nil
}
