package toa

import(
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v2"

	"github.com/abworrall/toacal/pkg/calib"
)

// An Output is one file to produce from one band.
type Output struct {
	Band      int    `yaml:"band"`                // 1-based, as the vendors number them
	Product   string `yaml:"product"`             // radiance, reflectance
	Filename  string `yaml:"filename"`            // .flt keeps exact float64s; .hdr is RGBE (lossy, no negatives); .tif is scaled to 16 bits
	Quicklook string `yaml:"quicklook,omitempty"` // optional .png preview
	Gray      bool   `yaml:"gray,omitempty"`      // grayscale quicklook, rather than a color ramp
}

func (o Output)String() string {
	return fmt.Sprintf("band %d %s -> %s", o.Band, o.Product, o.Filename)
}

// Config is a whole calibration job. It can be loaded from YAML, and then
// have its fields overridden by flags.
type Config struct {
	Verbosity     int      `yaml:"verbosity"`
	Sensor        string   `yaml:"sensor"`
	MultiMetadata string   `yaml:"multi_metadata"`
	PanMetadata   string   `yaml:"pan_metadata,omitempty"`
	Images        []string `yaml:"images"` // one per band, in band order; "" or "-" leaves a band unbound

	LookupTables  string   `yaml:"lookup_tables"` // auto (family default), on, off
	ProfileStride int      `yaml:"profile_stride"` // profile every n'th input line; 0 to skip profiling
	TIFFScale     float64  `yaml:"tiff_scale"`     // value that maps to 65535 in .tif output; 0 means the output's max
	Dump          bool     `yaml:"dump"`

	Outputs       []Output `yaml:"outputs"`
}

func NewConfig() Config {
	return Config{
		LookupTables:  "auto",
		ProfileStride: 16,
		Outputs:       []Output{},
	}
}

func newConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	err := yaml.Unmarshal(b, &c)
	return c, err
}

func LoadConfig(filename string) (Config, error) {
	contents, err := ioutil.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config read %s: %v", filename, err)
	}

	c, err := newConfigFromYaml(contents)
	if err != nil {
		return c, fmt.Errorf("config parse %s: %v", filename, err)
	}

	// Relative paths in a job file are relative to the job file
	dir := filepath.Dir(filename)
	rel := func(p string) string {
		if p == "" || p == "-" || filepath.IsAbs(p) { return p }
		return filepath.Join(dir, p)
	}
	c.MultiMetadata = rel(c.MultiMetadata)
	c.PanMetadata = rel(c.PanMetadata)
	for i := range c.Images {
		c.Images[i] = rel(c.Images[i])
	}
	for i := range c.Outputs {
		c.Outputs[i].Filename = rel(c.Outputs[i].Filename)
		c.Outputs[i].Quicklook = rel(c.Outputs[i].Quicklook)
	}

	return c, nil
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Fatalf("Can't marshal config yaml: %v\n", err)
	}
	return string(b)
}

func (c Config)GetFamily() (Family, error) {
	return LookupFamily(c.Sensor)
}

// GetOptions turns the config into manager options.
func (c Config)GetOptions() ([]Option, error) {
	switch strings.ToLower(c.LookupTables) {
	case "", "auto": return nil, nil
	case "on":       return []Option{WithLookupTables(true)}, nil
	case "off":      return []Option{WithLookupTables(false)}, nil
	}
	return nil, fmt.Errorf("lookup_tables must be auto, on or off, not '%s'", c.LookupTables)
}

// Validate catches job file mistakes before any file is opened.
func (c Config)Validate() error {
	if _, err := c.GetFamily(); err != nil {
		return err
	} else if _, err := c.GetOptions(); err != nil {
		return err
	}

	if len(c.Images) > calib.NumBands {
		return fmt.Errorf("%d images given, sensors have at most %d bands", len(c.Images), calib.NumBands)
	}

	for _, o := range c.Outputs {
		if o.Band < 1 || o.Band > calib.NumBands {
			return fmt.Errorf("output %s: %w", o, calib.ErrInvalidBand)
		} else if _, err := ParseProduct(o.Product); err != nil {
			return fmt.Errorf("output %s: %v", o, err)
		} else if o.Filename == "" {
			return fmt.Errorf("output %s: no filename", o)
		}

		if !isOutputFile(o.Filename) {
			return fmt.Errorf("output %s: can only write .flt, .hdr or .tif", o)
		}
	}

	return nil
}

func isOutputFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".flt", ".hdr", ".tif", ".tiff": return true
	}
	return false
}

// ParseOutput reads the command line form of an output,
// band:product:filename[:quicklook]. The filename ends at the first colon
// that follows an output extension, so paths may hold colons (C:\out.flt).
func ParseOutput(s string) (Output, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) < 3 || parts[2] == "" {
		return Output{}, fmt.Errorf("output '%s' is not band:product:filename[:quicklook]", s)
	}

	o := Output{Product: parts[1], Filename: parts[2]}
	if _, err := fmt.Sscanf(parts[0], "%d", &o.Band); err != nil {
		return o, fmt.Errorf("output '%s': bad band number: %v", s, err)
	}

	rest := parts[2]
	for i := 0; i < len(rest); i++ {
		if rest[i] == ':' && isOutputFile(rest[:i]) {
			o.Filename, o.Quicklook = rest[:i], rest[i+1:]
			break
		}
	}
	return o, nil
}
