/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/rotblauer/gpxstat/gpx"
	"github.com/rotblauer/gpxstat/params"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var optConfigFile string
var optLogLevel string
var optDatadir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gpxstat",
	Short: "Validate GPX tracks and compute trip statistics",
	Long: `gpxstat reads GPX track recordings and reports distance, duration,
ascent, descent and speeds, telling moving time from pauses.

Configuration is read, in increasing precedence, from the defaults,
a config file (--config, or config.yaml in the data directory),
GPXSTAT_* environment variables (eg. GPXSTAT_MAX_SPEED=40),
and flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, describeError(err))
		os.Exit(1)
	}
}

func init() {
	pfs := rootCmd.PersistentFlags()
	pfs.StringVar(&optConfigFile, "config", "", "Config file (default is <datadir>/config.yaml)")
	pfs.StringVar(&optLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pfs.StringVar(&optDatadir, "datadir", params.DatadirRoot, "Data directory for config and cache")

	addTrackFlags(pfs)
	if err := viper.BindPFlags(pfs); err != nil {
		panic(err)
	}
}

// addTrackFlags defines a flag for every field of params.TrackConfig,
// named after its mapstructure key.
func addTrackFlags(fs *pflag.FlagSet) {
	d := params.DefaultTrackConfig()
	fs.Duration("pause-interval", d.PauseInterval, "Gap between waypoints at or above which an interval is a pause")
	fs.Float64("stationary-distance", d.StationaryDistance, "Displacement in meters at or below which an interval is standing still")
	fs.Float64("earth-radius", d.EarthRadius, "Earth radius in meters for distances")
	fs.Float64("max-speed", d.MaxSpeed, "Highest plausible speed in m/s; faster intervals are zeroed")
	fs.String("time-layout", d.TimeLayout, "Go time layout of waypoint times")
	fs.Bool("skip-inactive", d.SkipInactive, "Exclude inactive intervals from distance, duration and average speed")
}

func initConfig() error {
	viper.SetEnvPrefix("GPXSTAT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if optConfigFile != "" {
		path, err := homedir.Expand(optConfigFile)
		if err != nil {
			return err
		}
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	datadir, err := homedir.Expand(viper.GetString("datadir"))
	if err != nil {
		return err
	}
	viper.AddConfigPath(datadir)
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}

// trackConfig returns the effective processing configuration.
func trackConfig() (*params.TrackConfig, error) {
	config := params.DefaultTrackConfig()
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return config, nil
}

func datadir() string {
	dir, err := homedir.Expand(viper.GetString("datadir"))
	if err != nil {
		return params.DatadirRoot
	}
	return filepath.Clean(dir)
}

func setDefaultSlog(cmd *cobra.Command, args []string) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(optLogLevel)); err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	slog.Debug("Command", "name", cmd.Name(), "args", args)
}

// describeError renders err as one line for people.
func describeError(err error) string {
	var verr *gpx.ValidationError
	var perr *gpx.ParseError
	switch {
	case errors.Is(err, gpx.ErrFileNotFound):
		return err.Error()
	case errors.As(err, &verr) && len(verr.Diagnostics) > 0:
		return fmt.Sprintf("%s is not a valid GPX track (%d problems, first on line %d: %s); use --force to process it anyway",
			verr.Name, len(verr.Diagnostics), verr.Diagnostics[0].Line, verr.Diagnostics[0].Message)
	case errors.As(err, &verr), errors.As(err, &perr):
		return err.Error()
	}
	return "Error: " + err.Error()
}
