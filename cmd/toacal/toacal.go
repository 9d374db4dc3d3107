package main

import(
	"context"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/maruel/interrupt"

	"github.com/abworrall/toacal/pkg/toa"
)

var cli struct {
	Job           string   `arg:"" optional:"" type:"existingfile" help:"YAML job file; flags override its fields"`
	Verbose       int      `short:"v" type:"counter" help:"How verbose to get"`
	Sensor        string   `help:"Sensor family (${families})"`
	MultiMetadata string   `name:"meta" help:"Multispectral (or only) metadata file"`
	PanMetadata   string   `name:"panmeta" help:"Panchromatic metadata file (quickbird, spot, pleiades)"`
	Images        []string `name:"images" sep:"," help:"Band images in band order, '-' to leave a band unbound"`
	Outputs       []string `name:"out" help:"Output as band:product:filename[:quicklook]; repeatable"`
	LookupTables  string   `name:"lut" help:"Use 64K-entry lookup tables (auto,on,off)"`
	TIFFScale     float64  `name:"tiffscale" help:"Value that maps to 65535 in .tif outputs"`
	Dump          bool     `help:"Dump the parsed calibration as YAML to stdout"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("toacal"),
		kong.Description("Top-of-atmosphere radiance and reflectance for satellite band images."),
		kong.Vars{"families": toa.ListFamilies()},
	)

	c, err := loadConfig()
	kctx.FatalIfErrorf(err)

	if c.Verbosity > 0 {
		log.SetLevel(log.DebugLevel)
		log.Debugf("Final configuration:-\n\n%s\n", c.AsYaml())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	interrupt.HandleCtrlC()
	go func() {
		<-interrupt.Channel
		log.Warnf("interrupted, stopping after the current line")
		cancel()
	}()

	if _, err := toa.Run(ctx, c, os.Stdout); err != nil {
		log.Fatalf("toacal: %v", err)
	}
}

// loadConfig reads the job file, if any, and lets the flags override it.
func loadConfig() (toa.Config, error) {
	c := toa.NewConfig()
	if cli.Job != "" {
		var err error
		if c, err = toa.LoadConfig(cli.Job); err != nil {
			return c, err
		}
	}

	if cli.Verbose > 0           { c.Verbosity = cli.Verbose }
	if cli.Sensor != ""          { c.Sensor = cli.Sensor }
	if cli.MultiMetadata != ""   { c.MultiMetadata = cli.MultiMetadata }
	if cli.PanMetadata != ""     { c.PanMetadata = cli.PanMetadata }
	if len(cli.Images) > 0       { c.Images = cli.Images }
	if cli.LookupTables != ""    { c.LookupTables = cli.LookupTables }
	if cli.TIFFScale > 0         { c.TIFFScale = cli.TIFFScale }
	if cli.Dump                  { c.Dump = true }

	for _, s := range cli.Outputs {
		o, err := toa.ParseOutput(s)
		if err != nil {
			return c, err
		}
		c.Outputs = append(c.Outputs, o)
	}

	return c, c.Validate()
}
