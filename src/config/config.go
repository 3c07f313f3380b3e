// Package config loads the output settings of the chart tools. Values come from flag
// defaults, then HEATPLOT_* environment variables, then explicitly set flags.
// The curve parameters are deliberately absent: they are fixed in package heat.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iafilius/HydrogenSpecificHeat/src/render"
)

// EnvPrefix is prepended to every environment override, e.g. HEATPLOT_WIDTH.
const EnvPrefix = "HEATPLOT"

const DefaultOutput = "hydrogen_specific_heat.png"

var ErrInvalidConfig = errors.New("invalid config")

// Config holds all settings of a render run.
type Config struct {
	Output       string
	Format       render.Format
	Width        int
	Height       int
	Title        string
	Caption      bool
	Experimental bool
	Reference    bool
	LogLevel     string
}

// RegisterFlags declares the shared flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	def := render.DefaultOptions()
	fs.String("out", DefaultOutput, "Output file path")
	fs.String("format", "", "Output format (png|svg); inferred from --out when empty")
	fs.Int("width", def.Width, "Chart width in pixels")
	fs.Int("height", def.Height, "Chart height in pixels")
	fs.String("title", def.Title, "Chart title")
	fs.Bool("caption", false, "Draw a residual summary caption on PNG output")
	fs.Bool("experimental", def.ShowExperimental, "Plot the experimental reference points")
	fs.Bool("reference", def.ShowReference, "Overlay the tabulated spline reference curve")
	fs.String("log-level", "info", "Log level (debug|info|warn|error)")
}

// Load resolves the configuration from fs (may be nil) and the environment.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	def := render.DefaultOptions()
	v.SetDefault("out", DefaultOutput)
	v.SetDefault("format", "")
	v.SetDefault("width", def.Width)
	v.SetDefault("height", def.Height)
	v.SetDefault("title", def.Title)
	v.SetDefault("caption", false)
	v.SetDefault("experimental", def.ShowExperimental)
	v.SetDefault("reference", def.ShowReference)
	v.SetDefault("log-level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	cfg := &Config{
		Output:       v.GetString("out"),
		Width:        v.GetInt("width"),
		Height:       v.GetInt("height"),
		Title:        v.GetString("title"),
		Caption:      v.GetBool("caption"),
		Experimental: v.GetBool("experimental"),
		Reference:    v.GetBool("reference"),
		LogLevel:     v.GetString("log-level"),
	}
	if raw := v.GetString("format"); raw != "" {
		f, err := render.ParseFormat(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		cfg.Format = f
	} else {
		cfg.Format = render.FormatFromPath(cfg.Output)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings that cannot produce a chart.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("%w: empty output path", ErrInvalidConfig)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if !render.ValidLogLevel(c.LogLevel) {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Options converts the config into render options.
func (c *Config) Options() render.Options {
	opts := render.Options{
		Width:            c.Width,
		Height:           c.Height,
		Title:            c.Title,
		ShowExperimental: c.Experimental,
		ShowReference:    c.Reference,
	}
	if c.Caption {
		opts.Caption = render.ResidualCaption()
	}
	return opts
}
