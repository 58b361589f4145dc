package app

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"golife/internal/session"
)

// Config represents the command-line parameters for the application. Values
// may also come from a JSON file named by -config; flags given on the command
// line win over the file.
type Config struct {
	Scale        int     `json:"scale"`
	TPS          int     `json:"tps"`
	Seed         int64   `json:"seed"`
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	IntervalMS   int     `json:"interval_ms"`
	Density      float64 `json:"density"`
	MaxDimension int     `json:"max_dimension"`

	ConfigPath string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scale:        12,
		TPS:          60,
		Seed:         42,
		IntervalMS:   200,
		Density:      0.25,
		MaxDimension: session.DefaultMaxDimension,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional JSON config file")
	fs.IntVar(&c.Scale, "scale", c.Scale, "preferred pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for board randomization")
	fs.IntVar(&c.Width, "width", c.Width, "pre-filled board width")
	fs.IntVar(&c.Height, "height", c.Height, "pre-filled board height")
	fs.IntVar(&c.IntervalMS, "interval", c.IntervalMS, "initial milliseconds between generations")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for randomize")
	fs.IntVar(&c.MaxDimension, "max-dim", c.MaxDimension, "largest board side accepted by the menu")
}

// Parse parses args into c, layering an optional config file under the
// explicit flags.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.ConfigPath != "" {
		if err := c.LoadFile(c.ConfigPath); err != nil {
			return err
		}
		// Re-apply flags so the command line overrides the file.
		if err := fs.Parse(args); err != nil {
			return err
		}
	}
	c.Validate()
	return nil
}

// LoadFile overlays values from a JSON file onto c.
func (c *Config) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read config: %s", filename)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal config: %s", filename)
	}
	return nil
}

// Validate clamps out-of-range values to usable ones.
func (c *Config) Validate() {
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.IntervalMS <= 0 {
		c.IntervalMS = 200
	}
	if c.Density < 0 {
		c.Density = 0
	}
	if c.Density > 1 {
		c.Density = 1
	}
	if c.MaxDimension <= 0 {
		c.MaxDimension = session.DefaultMaxDimension
	}
}

// SessionOptions derives the session options for this configuration.
func (c *Config) SessionOptions() session.Options {
	opts := session.DefaultOptions()
	opts.MaxDimension = c.MaxDimension
	opts.Width = c.Width
	opts.Height = c.Height
	opts.Seed = c.Seed
	opts.Density = c.Density
	opts.Playback.Interval = time.Duration(c.IntervalMS) * time.Millisecond
	return opts
}
