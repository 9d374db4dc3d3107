package raster

import(
	"fmt"
	"image"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/codec/rgbe"
	"golang.org/x/image/tiff"
)

// CountNegative is how many samples of the image are below zero. RGBE has
// no sign, so WriteHDR would store them as zero.
func CountNegative(img hdr.Image) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if r, g, bl, _ := img.HDRAt(x, y).HDRRGBA(); r < 0 || g < 0 || bl < 0 {
				n++
			}
		}
	}
	return n
}

// WriteHDR outputs a float image as Radiance RGBE. This is lossy: values
// keep about 8 bits of mantissa, and negative values become zero (with a
// warning). Use WriteFLT where the exact calibrated values matter.
func WriteHDR(img hdr.Image, filename string) error {
	if n := CountNegative(img); n > 0 {
		log.Warnf("WriteHDR '%s': %d negative values will be written as 0; use .flt to keep them", filename, n)
	}

	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("WriteHDR, open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		if err := rgbe.Encode(writer, img); err != nil {
			return fmt.Errorf("WriteHDR, encoding RGBE file '%s': %v", filename, err)
		}
	}
	log.Debugf("wrote %s", filename)
	return nil
}

// WriteTIFF outputs a deflate-compressed TIFF.
func WriteTIFF(img image.Image, filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("WriteTIFF, open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		if err := tiff.Encode(writer, img, &tiff.Options{Compression: tiff.Deflate}); err != nil {
			return fmt.Errorf("WriteTIFF, encoding '%s': %v", filename, err)
		}
	}
	log.Debugf("wrote %s", filename)
	return nil
}
