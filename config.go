package tabulate

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the file form of [Options]. Pointer fields distinguish a key
// that is absent from one set to its zero value.
type Config struct {
	Width     *int    `yaml:"width"`
	Pad       *int    `yaml:"pad"`
	Condense  *int    `yaml:"condense"`
	Delimiter *string `yaml:"delimiter"`
	Output    string  `yaml:"output"`
	Cells     bool    `yaml:"cells"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig decodes YAML config from r. Unknown keys are rejected and an
// empty document yields the zero Config.
func DecodeConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidOption, err)
	}
	return cfg, nil
}

// Apply overlays the keys set in c onto opts and validates the result.
func (c Config) Apply(opts Options) (Options, error) {
	if c.Width != nil {
		opts.MinWidth = *c.Width
	}
	if c.Pad != nil {
		opts.Pad = *c.Pad
	}
	if c.Condense != nil {
		opts.Condense = *c.Condense
	}
	if c.Delimiter != nil {
		d, err := ParseDelimiter(*c.Delimiter)
		if err != nil {
			return opts, err
		}
		opts.Delimiter = d
	}
	if c.Cells {
		opts.Width = WidthCells
	}
	return opts, opts.Validate()
}
