// Package config loads geosvg settings from a TOML file and turns them
// into a default document style.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"geosvg/svg"
)

// Style mirrors svg.Style with every field optional so that a file only
// overrides what it names.
type Style struct {
	Radius        *float64 `toml:"radius"`
	Opacity       *float64 `toml:"opacity"`
	Fill          string   `toml:"fill"`
	FillOpacity   *float64 `toml:"fill_opacity"`
	Stroke        string   `toml:"stroke"`
	StrokeWidth   *float64 `toml:"stroke_width"`
	StrokeOpacity *float64 `toml:"stroke_opacity"`
}

type Config struct {
	LogLevel string   `toml:"log_level"`
	Margin   *float64 `toml:"margin"`
	Style    Style    `toml:"style"`
}

// Default is the configuration used when no file is given.
func Default() Config {
	return Config{LogLevel: "info"}
}

// Load reads path, rejecting keys it does not know.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML on top of Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, errors.New("unknown keys:\n" + strict.String())
		}
		return Config{}, err
	}
	if _, err := cfg.Style.Apply(svg.DefaultStyle()); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Apply overlays the set fields on base.
func (s Style) Apply(base svg.Style) (svg.Style, error) {
	if s.Radius != nil {
		base = base.WithRadius(*s.Radius)
	}
	if s.Opacity != nil {
		base = base.WithOpacity(*s.Opacity)
	}
	if s.Fill != "" {
		c, err := ParseColor(s.Fill)
		if err != nil {
			return base, fmt.Errorf("fill: %w", err)
		}
		base = base.WithFill(c)
	}
	if s.FillOpacity != nil {
		base = base.WithFillOpacity(*s.FillOpacity)
	}
	if s.Stroke != "" {
		c, err := ParseColor(s.Stroke)
		if err != nil {
			return base, fmt.Errorf("stroke: %w", err)
		}
		base = base.WithStroke(c)
	}
	if s.StrokeWidth != nil {
		base = base.WithStrokeWidth(*s.StrokeWidth)
	}
	if s.StrokeOpacity != nil {
		base = base.WithStrokeOpacity(*s.StrokeOpacity)
	}
	return base, nil
}

// Document applies the configured style and margin to a tree.
func (c Config) Document(doc svg.Svg) (svg.Svg, error) {
	style, err := c.Style.Apply(doc.Style())
	if err != nil {
		return doc, err
	}
	doc = doc.WithStyle(style)
	if c.Margin != nil {
		doc = doc.WithMargin(*c.Margin)
	}
	return doc, nil
}
