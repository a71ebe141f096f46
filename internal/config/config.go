package config

import (
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/peplxx/probability-explorer/pkg/readmatrix"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

// Plot holds the size and format of saved and served figures.
type Plot struct {
	WidthCm  float64 `yaml:"width_cm"`
	HeightCm float64 `yaml:"height_cm"`
	Format   string  `yaml:"format"`
}

// Width returns the figure width as a vg length.
func (p Plot) Width() vg.Length { return vg.Length(p.WidthCm) * vg.Centimeter }

// Height returns the figure height as a vg length.
func (p Plot) Height() vg.Length { return vg.Length(p.HeightCm) * vg.Centimeter }

type Config struct {
	Addr      string `yaml:"addr"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	// Seed fixes the experiment random stream; 0 seeds from the clock.
	Seed       uint64 `yaml:"seed"`
	AutoUpdate bool   `yaml:"auto_update"`
	Plot       Plot   `yaml:"plot"`
	OutputDir  string `yaml:"output_dir"`
	// MarkovMatrix is a path to a whitespace separated transition matrix.
	MarkovMatrix string `yaml:"markov_matrix"`
}

var plotFormats = []string{"svg", "png", "pdf"}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Addr:       ":8501",
		LogLevel:   "info",
		LogFormat:  "text",
		AutoUpdate: true,
		Plot: Plot{
			WidthCm:  16,
			HeightCm: 12,
			Format:   "svg",
		},
		OutputDir: "./",
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// BindFlags registers command line overrides for every field.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	// define flags
	fs.StringVar(&c.Addr, "addr", c.Addr, "HTTP listen address")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format (text, json)")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed for experiments, 0 seeds from the clock")
	fs.BoolVar(&c.AutoUpdate, "auto-update", c.AutoUpdate, "redraw plots on every control change")
	fs.Float64Var(&c.Plot.WidthCm, "plot-width", c.Plot.WidthCm, "plot width in centimetres")
	fs.Float64Var(&c.Plot.HeightCm, "plot-height", c.Plot.HeightCm, "plot height in centimetres")
	fs.StringVar(&c.Plot.Format, "plot-format", c.Plot.Format, "saved plot format (svg, png, pdf)")
	fs.StringVar(&c.OutputDir, "output-dir", c.OutputDir, "output directory")
	fs.StringVar(&c.MarkovMatrix, "markov-matrix", c.MarkovMatrix, "transition matrix file for the Markov chain experiment")
}

// Apply loads path over the defaults, then re-applies the flags the user set in fs.
// Precedence is defaults, file, command line.
func Apply(path string, fs *pflag.FlagSet) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if fs == nil {
		return cfg, nil
	}

	bound := pflag.NewFlagSet("config", pflag.ContinueOnError)
	cfg.BindFlags(bound)
	var result *multierror.Error
	fs.Visit(func(f *pflag.Flag) {
		if bound.Lookup(f.Name) == nil {
			return
		}
		if err := bound.Set(f.Name, f.Value.String()); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "--%s", f.Name))
		}
	})
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	if c.Addr == "" {
		result = multierror.Append(result, errors.New("addr must not be empty"))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "log_level"))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		result = multierror.Append(result, errors.Errorf("log_format %q must be text or json", c.LogFormat))
	}
	if c.Plot.WidthCm <= 0 || c.Plot.HeightCm <= 0 {
		result = multierror.Append(result, errors.Errorf("plot size %gx%g cm must be positive", c.Plot.WidthCm, c.Plot.HeightCm))
	}
	if !contains(plotFormats, strings.ToLower(c.Plot.Format)) {
		result = multierror.Append(result, errors.Errorf("plot format %q must be one of %s", c.Plot.Format, strings.Join(plotFormats, ", ")))
	}
	return result.ErrorOrNil()
}

// TransitionMatrix loads and checks the Markov matrix. It returns nil when none is configured.
func (c *Config) TransitionMatrix() (*mat.Dense, error) {
	if c.MarkovMatrix == "" {
		return nil, nil
	}
	m, err := readmatrix.ReadMatrix(c.MarkovMatrix)
	if err != nil {
		return nil, err
	}
	if err := readmatrix.ValidateStochastic(m); err != nil {
		return nil, errors.Wrap(err, c.MarkovMatrix)
	}
	return m, nil
}

// Logger builds a logrus logger from the log settings.
func (c *Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "log_level")
	}
	log := logrus.New()
	log.SetLevel(level)
	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05"})
	}
	return log, nil
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
