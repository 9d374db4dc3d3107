package toa

import(
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/abworrall/toacal/pkg/raster"
)

// Product is one of the two things a band can be calibrated into.
type Product int

const(
	Radiance Product = iota
	Reflectance
)

func (p Product)String() string {
	if p == Reflectance { return "reflectance" }
	return "radiance"
}

func ParseProduct(s string) (Product, error) {
	switch strings.ToLower(s) {
	case "radiance", "rad":     return Radiance, nil
	case "reflectance", "refl": return Reflectance, nil
	}
	return Radiance, fmt.Errorf("no product named '%s' (have: radiance,reflectance)", s)
}

// ProduceRadianceImage writes the radiance of every line of a band into the sink.
func (m *Manager)ProduceRadianceImage(ctx context.Context, band int, sink raster.Sink) error {
	return m.Produce(ctx, Radiance, band, sink)
}

// ProduceReflectanceImage writes the TOA reflectance of every line of a band into the sink.
func (m *Manager)ProduceReflectanceImage(ctx context.Context, band int, sink raster.Sink) error {
	return m.Produce(ctx, Reflectance, band, sink)
}

// Produce makes one forward pass over the band's lines. The context is
// only looked at between lines.
func (m *Manager)Produce(ctx context.Context, p Product, band int, sink raster.Sink) error {
	bs, err := m.ready(band)
	if err != nil {
		return fmt.Errorf("produce %s: %w", p, err)
	}

	if w, h := sink.Samples(), sink.Lines(); w != bs.image.Samples() || h != bs.image.Lines() {
		return fmt.Errorf("produce %s: %w: %s is %dx%d, target is %dx%d", p, ErrTargetMismatch,
			m.Family.BandName(band), bs.image.Samples(), bs.image.Lines(), w, h)
	}

	ensure, buf := m.ensureRadiance, &bs.radiance
	if p == Reflectance {
		ensure, buf = m.ensureReflectance, &bs.reflectance
	}

	if m.useTables {
		if p == Reflectance {
			m.warmReflectance(bs)
		} else {
			m.warmRadiance(bs)
		}
	}

	log.Infof("producing %s for %s, %d lines (tables=%v)", p, m.Family.BandName(band), bs.image.Lines(), m.useTables)

	for line := 0; line < bs.image.Lines(); line++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("produce %s for %s, stopped at line %d: %w", p, m.Family.BandName(band), line, err)
		}
		if err := ensure(bs, line); err != nil {
			return fmt.Errorf("produce %s: %w", p, err)
		}
		if err := sink.WriteLine(line, buf.values); err != nil {
			return fmt.Errorf("produce %s: write line %d: %w", p, line, err)
		}
	}

	return nil
}
