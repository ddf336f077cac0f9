package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/phanxgames/truenetwork"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// runPage opens the window. Tests replace it.
var runPage = truenetwork.Run

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "truenetwork",
		Short: "Open the TrueNetwork landing page",
		Long: `Opens the TrueNetwork landing page with its animated particle network.

Every flag can also be set with a TRUENETWORK_<FLAG> environment variable
(dashes become underscores) or in a YAML/TOML/JSON config file.

Keys:
  Arrows, PageUp/PageDown, Space, Home/End   scroll
  Escape                                     quit`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := loadOptions(v)
			if err != nil {
				return err
			}
			return run(o)
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default .truenetwork.yaml, or TRUENETWORK_CONFIG_FILE)")
	addFlags(cmd.Flags())
	_ = v.BindPFlags(cmd.Flags())
	return cmd
}

func addFlags(fs *pflag.FlagSet) {
	def := truenetwork.DefaultNetworkConfig()
	fs.String("title", "TrueNetwork", "window title")
	fs.IntP("width", "W", 1280, "window width")
	fs.IntP("height", "H", 800, "window height")
	fs.Bool("resizable", true, "allow resizing the window")
	fs.Bool("fps", false, "show the FPS overlay")
	fs.BoolP("debug", "d", false, "log frame and network stats to stderr")
	fs.String("script", "", "JSON test script to run against the page")
	fs.String("screenshot-dir", "screenshots", "directory for screenshot PNGs")
	fs.Float64("density", def.Density, "surface area per network point")
	fs.Float64("max-distance", def.MaxDistance, "distance under which points are joined")
	fs.String("spatial-index", "brute", "edge search: brute or grid")
	fs.Bool("no-canvas", false, "build the page without the hero animation")
}

// initConfig reads the config file, if any, and binds the environment.
// A missing default file is not an error; a missing explicit one is.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix("TRUENETWORK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		cfgFile = os.Getenv("TRUENETWORK_CONFIG_FILE")
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
		return nil
	}
	v.AddConfigPath(".")
	v.SetConfigName(".truenetwork")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func run(o options) error {
	l := truenetwork.NewLanding(o.landingOptions())
	l.Page.ScreenshotDir = o.ScreenshotDir
	if o.Script != "" {
		data, err := os.ReadFile(o.Script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := truenetwork.LoadTestScript(data)
		if err != nil {
			return err
		}
		l.Page.SetTestRunner(runner)
	}
	if o.Debug {
		fmt.Fprintf(os.Stderr, "[truenetwork] %dx%d, %d points, index %s\n",
			o.Width, o.Height, len(networkPoints(l)), o.SpatialIndex)
	}
	return runPage(l.Page, o.runConfig())
}

func networkPoints(l *truenetwork.Landing) []truenetwork.Point {
	if l.Network == nil {
		return nil
	}
	return l.Network.Points()
}
