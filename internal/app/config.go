package app

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"

	"sparse-life/internal/textdump"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Pattern        string `json:"pattern"`
	Seed           int64  `json:"seed"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	CellSize       int    `json:"cell_size"`
	DumpSize       int    `json:"dump_size"`
	TPS            int    `json:"tps"`
	MaxGenerations int    `json:"max_generations"`
	Dump           bool   `json:"dump"`
	Headless       bool   `json:"headless"`

	ConfigFile string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Seed:     42,
		Width:    1900,
		Height:   1000,
		CellSize: 10,
		DumpSize: textdump.DefaultSize,
		TPS:      60,
		Dump:     true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern to start from (empty reads (x, y) lines from stdin)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the soup pattern")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell side length in pixels")
	fs.IntVar(&c.DumpSize, "dump-size", c.DumpSize, "side length of the printed text window")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second (<= 0 runs headless mode unpaced)")
	fs.IntVar(&c.MaxGenerations, "max-gens", c.MaxGenerations, "stop after this generation (0 runs until a key is pressed)")
	fs.BoolVar(&c.Dump, "dump", c.Dump, "print a text snapshot every generation")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "run without a window")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "JSON file with default settings")
}

// Validate reports settings the runners cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("[Validate] invalid surface %dx%d", c.Width, c.Height)
	case c.CellSize <= 0:
		return errors.Errorf("[Validate] invalid cell size %d", c.CellSize)
	case c.DumpSize <= 0:
		return errors.Errorf("[Validate] invalid dump size %d", c.DumpSize)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Validate] invalid generation limit %d", c.MaxGenerations)
	}
	return nil
}

// LoadConfig overlays the JSON file at filename onto c.
func (c *Config) LoadConfig(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}
	return nil
}

// Parse binds a fresh Config to fs and parses args. When -config names a
// file, the file is loaded and args are parsed again so explicit flags win.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.ConfigFile != "" {
		if err := c.LoadConfig(c.ConfigFile); err != nil {
			return nil, err
		}
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
