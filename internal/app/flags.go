package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Side    int
	Columns int
	Rows    int
	Steps   int
	Seed    int64
	Width   int
	Height  int
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Side:    8,
		Columns: 25,
		Rows:    25,
		Steps:   2,
		Seed:    42,
		Width:   800,
		Height:  600,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Side, "side", c.Side, "cell edge length in logical pixels (minimum 3)")
	fs.IntVar(&c.Columns, "columns", c.Columns, "requested column count")
	fs.IntVar(&c.Rows, "rows", c.Rows, "requested row count")
	fs.IntVar(&c.Steps, "steps", c.Steps, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the jitter RNG")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "enable debug logging")
}
