package raster

import(
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

var ErrFloatHeader = errors.New("not a float64 ENVI header")

// A FloatImage is a grid of calibrated values, one slice per line.
type FloatImage interface {
	Dx() int
	Dy() int
	Row(y int) []float64
}

// FLTHeader is the ENVI header written alongside a .flt file.
func FLTHeader(filename string) string { return filename + ".hdr" }

// WriteFLT writes every value as a little-endian float64, line after line,
// plus an ENVI header so GIS tools can read it. Nothing is clamped or
// rounded; negative radiance survives.
func WriteFLT(img FloatImage, filename string) error {
	writer, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("WriteFLT, open+w '%s': %v", filename, err)
	}
	defer writer.Close()

	bw := bufio.NewWriter(writer)
	for y := 0; y < img.Dy(); y++ {
		if err := binary.Write(bw, binary.LittleEndian, img.Row(y)); err != nil {
			return fmt.Errorf("WriteFLT, line %d of '%s': %v", y, filename, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteFLT, '%s': %v", filename, err)
	}

	header := fmt.Sprintf("ENVI\ndescription = {toacal calibrated band}\nsamples = %d\nlines = %d\nbands = 1\n"+
		"header offset = 0\nfile type = ENVI Standard\ndata type = 5\ninterleave = bsq\nbyte order = 0\n",
		img.Dx(), img.Dy())
	if err := os.WriteFile(FLTHeader(filename), []byte(header), 0644); err != nil {
		return fmt.Errorf("WriteFLT, header for '%s': %v", filename, err)
	}

	log.Debugf("wrote %s (%dx%d float64)", filename, img.Dx(), img.Dy())
	return nil
}

func readFLTHeader(filename string) (samples, lines int, err error) {
	f, err := os.Open(FLTHeader(filename))
	if err != nil {
		return 0, 0, fmt.Errorf("ReadFLT, header: %v", err)
	}
	defer f.Close()

	fields := map[string]string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if k, v, ok := strings.Cut(scanner.Text(), "="); ok {
			fields[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, fmt.Errorf("ReadFLT, header: %v", err)
	}

	if fields["data type"] != "5" || fields["byte order"] != "0" || fields["bands"] != "1" {
		return 0, 0, fmt.Errorf("%w: data type=%q byte order=%q bands=%q", ErrFloatHeader,
			fields["data type"], fields["byte order"], fields["bands"])
	}
	if samples, err = strconv.Atoi(fields["samples"]); err != nil {
		return 0, 0, fmt.Errorf("%w: samples: %v", ErrFloatHeader, err)
	}
	if lines, err = strconv.Atoi(fields["lines"]); err != nil {
		return 0, 0, fmt.Errorf("%w: lines: %v", ErrFloatHeader, err)
	}
	return samples, lines, nil
}

// ReadFLT reads back what WriteFLT wrote; values are in line order.
func ReadFLT(filename string) (samples, lines int, values []float64, err error) {
	if samples, lines, err = readFLTHeader(filename); err != nil {
		return 0, 0, nil, err
	}

	contents, err := os.ReadFile(filename)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("ReadFLT, read '%s': %v", filename, err)
	} else if len(contents) != samples*lines*8 {
		return 0, 0, nil, fmt.Errorf("ReadFLT, '%s' has %d bytes, want %dx%dx8: %w", filename, len(contents), samples, lines, ErrLineLength)
	}

	values = make([]float64, samples*lines)
	if err := binary.Read(bytes.NewReader(contents), binary.LittleEndian, values); err != nil {
		return 0, 0, nil, fmt.Errorf("ReadFLT, '%s': %v", filename, err)
	}
	return samples, lines, values, nil
}
