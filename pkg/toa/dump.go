package toa

import(
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/abworrall/toacal/pkg/calib"
	"github.com/abworrall/toacal/pkg/metadata"
	"github.com/abworrall/toacal/pkg/solar"
)

func geometryYaml(g *solar.Geometry) yaml.MapSlice {
	if g == nil {
		return nil
	}
	return yaml.MapSlice{
		{Key: "acquired", Value: g.Acquired.String()},
		{Key: "sun_elevation", Value: g.Elevation},
		{Key: "zenith", Value: g.Zenith},
		{Key: "zenith_radians", Value: g.ZenithRadians},
		{Key: "distance_au", Value: g.Distance},
	}
}

func (m *Manager)bandYaml(b int) yaml.MapSlice {
	f := m.Family
	bc := m.Store.Bands[b]

	out := yaml.MapSlice{
		{Key: "band", Value: b + 1},
		{Key: "name", Value: f.BandNames[b]},
		{Key: "esun", Value: f.ESUN[b]},
		{Key: "completeness", Value: bc.Flags.String()},
		{Key: f.PrimaryName, Value: bc.Primary},
	}
	if f.SecondaryName != "" {
		out = append(out, yaml.MapItem{Key: f.SecondaryName, Value: bc.Secondary})
	}

	if img := m.images[b]; img != nil {
		out = append(out, yaml.MapItem{Key: "image", Value: fmt.Sprintf("%dx%d", img.Samples(), img.Lines())})
	} else {
		out = append(out, yaml.MapItem{Key: "image", Value: "unbound"})
	}

	if bs := m.bands[b]; bs != nil {
		out = append(out,
			yaml.MapItem{Key: "formula", Value: bs.transform.Formula.String()},
			yaml.MapItem{Key: "radiance_line", Value: bs.radiance.tag.String()},
			yaml.MapItem{Key: "reflectance_line", Value: bs.reflectance.tag.String()},
			yaml.MapItem{Key: "tables", Value: bs.radTable != nil || bs.refTable != nil},
		)
	} else if _, err := m.Store.Formula(b); err != nil {
		out = append(out, yaml.MapItem{Key: "unusable", Value: err.Error()})
	}

	return out
}

// Dump writes everything the manager resolved from its metadata, as YAML.
func (m *Manager)Dump(w io.Writer) error {
	bands := []yaml.MapSlice{}
	for b := 0; b < calib.NumBands; b++ {
		bands = append(bands, m.bandYaml(b))
	}

	doc := yaml.MapSlice{
		{Key: "sensor", Value: m.Family.Name},
		{Key: "formula", Value: m.Family.Kind.String()},
		{Key: "distance_model", Value: m.distance.String()},
		{Key: "lookup_tables", Value: m.useTables},
		{Key: "metadata", Value: yaml.MapSlice{
			{Key: metadata.Multispectral.String(), Value: m.MultiMeta},
			{Key: metadata.Panchromatic.String(), Value: m.PanMeta},
		}},
		{Key: "geometry", Value: yaml.MapSlice{
			{Key: metadata.Multispectral.String(), Value: geometryYaml(m.Store.Multi)},
			{Key: metadata.Panchromatic.String(), Value: geometryYaml(m.Store.Pan)},
		}},
		{Key: "bands", Value: bands},
		{Key: "stats", Value: m.stats.String()},
	}

	b, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("dump yaml: %v", err)
	}
	_, err = w.Write(b)
	return err
}
