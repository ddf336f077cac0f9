package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/phanxgames/truenetwork"
	"github.com/spf13/viper"
)

// options is the resolved command configuration. Values come from flags,
// TRUENETWORK_* environment variables and an optional config file, in that
// order of precedence.
type options struct {
	Title         string  `mapstructure:"title"`
	Width         int     `mapstructure:"width"`
	Height        int     `mapstructure:"height"`
	Resizable     bool    `mapstructure:"resizable"`
	FPS           bool    `mapstructure:"fps"`
	Debug         bool    `mapstructure:"debug"`
	Script        string  `mapstructure:"script"`
	ScreenshotDir string  `mapstructure:"screenshot-dir"`
	Density       float64 `mapstructure:"density"`
	MaxDistance   float64 `mapstructure:"max-distance"`
	SpatialIndex  string  `mapstructure:"spatial-index"`
	NoCanvas      bool    `mapstructure:"no-canvas"`
}

func loadOptions(v *viper.Viper) (options, error) {
	var o options
	if err := v.Unmarshal(&o); err != nil {
		return o, fmt.Errorf("decode config: %w", err)
	}
	return o, o.validate()
}

func (o options) validate() error {
	var errs []error
	if o.Width <= 0 || o.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", o.Width, o.Height))
	}
	if o.Density <= 0 {
		errs = append(errs, fmt.Errorf("density %v must be positive", o.Density))
	}
	if o.MaxDistance <= 0 {
		errs = append(errs, fmt.Errorf("max-distance %v must be positive", o.MaxDistance))
	}
	if _, err := parseIndex(o.SpatialIndex); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func parseIndex(s string) (truenetwork.EdgeIndex, error) {
	switch strings.ToLower(s) {
	case "", "brute", "bruteforce":
		return truenetwork.IndexBruteForce, nil
	case "grid":
		return truenetwork.IndexGrid, nil
	}
	return 0, fmt.Errorf("unknown spatial index %q (want brute or grid)", s)
}

// landingOptions converts the command options into page options.
func (o options) landingOptions() truenetwork.LandingOptions {
	lo := truenetwork.DefaultLandingOptions()
	lo.Width, lo.Height = o.Width, o.Height
	lo.Network.Density = o.Density
	lo.Network.MaxDistance = o.MaxDistance
	lo.Network.Index, _ = parseIndex(o.SpatialIndex)
	lo.NoCanvas = o.NoCanvas
	return lo
}

func (o options) runConfig() truenetwork.RunConfig {
	return truenetwork.RunConfig{
		Title:     o.Title,
		Width:     o.Width,
		Height:    o.Height,
		ShowFPS:   o.FPS,
		Debug:     o.Debug,
		Resizable: o.Resizable,
	}
}
