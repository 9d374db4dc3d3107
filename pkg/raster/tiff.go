package raster

import(
	"fmt"
	"image"
	"image/color"
	"os"

	exiftiff "github.com/rwcarlsen/goexif/tiff"
	"golang.org/x/image/tiff"
)

// TIFF tag ids we look at before committing to a full decode.
const(
	tagImageWidth      = 256
	tagImageLength     = 257
	tagBitsPerSample   = 258
	tagSamplesPerPixel = 277
)

// A Header is what the first IFD of a TIFF says about its pixels.
type Header struct {
	Width           int
	Height          int
	BitsPerSample   int
	SamplesPerPixel int
}

func (h Header)String() string {
	return fmt.Sprintf("%dx%d, %d sample(s) of %d bits", h.Width, h.Height, h.SamplesPerPixel, h.BitsPerSample)
}

// ProbeTIFF reads the header tags of a TIFF without decoding the pixels.
func ProbeTIFF(filename string) (Header, error) {
	h := Header{SamplesPerPixel: 1, BitsPerSample: 1}

	reader, err := os.Open(filename)
	if err != nil {
		return h, fmt.Errorf("open+r tiff '%s': %v", filename, err)
	}
	defer reader.Close()

	t, err := exiftiff.Decode(reader)
	if err != nil {
		return h, fmt.Errorf("tiff header '%s': %v", filename, err)
	} else if len(t.Dirs) == 0 {
		return h, fmt.Errorf("tiff header '%s': no image directories", filename)
	}

	for _, tag := range t.Dirs[0].Tags {
		var dst *int
		switch tag.Id {
		case tagImageWidth:      dst = &h.Width
		case tagImageLength:     dst = &h.Height
		case tagBitsPerSample:   dst = &h.BitsPerSample
		case tagSamplesPerPixel: dst = &h.SamplesPerPixel
		default:                 continue
		}

		// BitsPerSample has one value per sample; they agree for the images we can read
		if val, err := tag.Int64(0); err != nil {
			return h, fmt.Errorf("tiff tag %d '%s': %v", tag.Id, filename, err)
		} else {
			*dst = int(val)
		}
	}

	return h, nil
}

// A TIFFBand is a single-channel 8 or 16 bit TIFF, decoded into memory on open.
type TIFFBand struct {
	Filename string
	Header

	img    image.Image
	row    []uint16
	closed bool
}

// OpenTIFF checks the header is a layout we can calibrate, then decodes the image.
func OpenTIFF(filename string) (*TIFFBand, error) {
	h, err := ProbeTIFF(filename)
	if err != nil {
		return nil, err
	}

	if h.SamplesPerPixel != 1 || (h.BitsPerSample != 8 && h.BitsPerSample != 16) {
		return nil, fmt.Errorf("%w: '%s' is %s, want one sample of 8 or 16 bits", ErrUnsupported, filename, h)
	}

	reader, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open+r img '%s': %v", filename, err)
	}
	defer reader.Close()

	img, err := tiff.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("tiff loading '%s': %v", filename, err)
	}

	b := img.Bounds()
	if b.Dx() != h.Width || b.Dy() != h.Height {
		return nil, fmt.Errorf("tiff '%s' decoded to %dx%d, header said %s", filename, b.Dx(), b.Dy(), h)
	}

	return &TIFFBand{
		Filename: filename,
		Header:   h,
		img:      img,
		row:      make([]uint16, h.Width),
	}, nil
}

func (tb *TIFFBand)Samples() int { return tb.Width }
func (tb *TIFFBand)Lines() int   { return tb.Height }

func (tb *TIFFBand)ReadLine(line int) ([]uint16, error) {
	if tb.closed {
		return nil, ErrClosed
	}
	if line < 0 || line >= tb.Height {
		return nil, fmt.Errorf("%w: line %d of %d in '%s'", ErrLineRange, line, tb.Height, tb.Filename)
	}

	b := tb.img.Bounds()
	y := b.Min.Y + line

	switch img := tb.img.(type) {
	case *image.Gray16:
		for x := range tb.row {
			tb.row[x] = img.Gray16At(b.Min.X + x, y).Y
		}
	case *image.Gray:
		for x := range tb.row {
			tb.row[x] = uint16(img.GrayAt(b.Min.X + x, y).Y)
		}
	default:
		for x := range tb.row {
			tb.row[x] = color.Gray16Model.Convert(img.At(b.Min.X + x, y)).(color.Gray16).Y
		}
	}

	return tb.row, nil
}

// Close drops the decoded pixels; later reads fail.
func (tb *TIFFBand)Close() error {
	tb.closed = true
	tb.img = nil
	tb.row = nil
	return nil
}

func (tb TIFFBand)String() string {
	return fmt.Sprintf("TIFFBand[%s, %s]", tb.Filename, tb.Header)
}
