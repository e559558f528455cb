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
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/rotblauer/gpxstat/common"
	"github.com/rotblauer/gpxstat/geo/act"
	"github.com/rotblauer/gpxstat/params"
	"github.com/rotblauer/gpxstat/summary"
	"github.com/rotblauer/gpxstat/track"
	"github.com/spf13/cobra"
)

var optForce bool
var optJSON bool
var optGeoJSON bool
var optName string
var optTags string
var optSimplifyThreshold float64

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process FILE",
	Short: "Print the statistics of one GPX track",
	Long: `Validates, extracts and summarizes one GPX track (optionally gzipped).

Invalid documents are rejected unless --force is given, in which case every
schema violation is reported as a warning and processing continues.

Output is human readable by default, or the record handed to a persistence
layer with --json (name, date, tags and statistics), or a GeoJSON feature
with --geojson.

Examples:

  gpxstat process ride.gpx
  gpxstat process --json --name "Morning ride" --tags "bike, commute" ride.gpx.gz
  GPXSTAT_SKIP_INACTIVE=false gpxstat process ride.gpx
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setDefaultSlog(cmd, args)

		config, err := trackConfig()
		if err != nil {
			return err
		}
		p := track.NewProcessor(config, slog.Default())
		res, err := p.Process(args[0], optForce)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch {
		case optGeoJSON:
			return writeJSON(out, track.Feature(res, &params.SimplificationConfig{
				DouglasPeuckerThreshold: optSimplifyThreshold,
			}))
		case optJSON:
			return writeJSON(out, track.NewRecord(res, optName, track.SplitTags(optTags)))
		}
		printResult(out, res, config.SkipInactive)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().BoolVar(&optForce, "force", false, "Process documents that fail validation")
	processCmd.Flags().BoolVar(&optJSON, "json", false, "Print the track record as JSON")
	processCmd.Flags().BoolVar(&optGeoJSON, "geojson", false, "Print the track as a GeoJSON feature")
	processCmd.Flags().StringVar(&optName, "name", "", "Display name (default is derived from the start date)")
	processCmd.Flags().StringVar(&optTags, "tags", "", "Comma separated tags for --json")
	processCmd.Flags().Float64Var(&optSimplifyThreshold, "simplify", params.DefaultSimplificationConfig.DouglasPeuckerThreshold,
		"Douglas-Peucker threshold in degrees for --geojson (0 keeps every point)")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printResult(w io.Writer, res *track.Result, skipInactive bool) {
	s := res.Summary
	fmt.Fprintf(w, "%s\n", res.Name)
	fmt.Fprintf(w, "  name:           %s\n", track.DefaultName(s))
	fmt.Fprintf(w, "  valid:          %v\n", res.Valid)
	fmt.Fprintf(w, "  waypoints:      %s (%d without elevation skipped)\n", humanize.Comma(int64(len(res.Waypoints))), res.Skipped)
	fmt.Fprintf(w, "  distance:       %s\n", common.FormatDistance(s.TotalDistanceM))
	fmt.Fprintf(w, "  duration:       %s\n", common.FormatDuration(s.DurationS))
	fmt.Fprintf(w, "  total duration: %s\n", common.FormatDuration(s.TotalDurationS))
	fmt.Fprintf(w, "  ascent:         %s m\n", humanize.FtoaWithDigits(s.TotalAscentM, 1))
	fmt.Fprintf(w, "  descent:        %s m\n", humanize.FtoaWithDigits(s.TotalDescentM, 1))
	fmt.Fprintf(w, "  avg speed:      %s km/h\n", humanize.FtoaWithDigits(s.AvgSpeedKMH, 1))
	fmt.Fprintf(w, "  max speed:      %s km/h\n", humanize.FtoaWithDigits(s.MaxSpeedKMH, 1))
	if res.Series != nil {
		speeds := summary.Speeds(res.Series, skipInactive)
		fmt.Fprintf(w, "  median speed:   %s km/h (p95 %s)\n",
			humanize.FtoaWithDigits(speeds.MedianKMH, 1), humanize.FtoaWithDigits(speeds.P95KMH, 1))
		fmt.Fprintf(w, "  active:         %.0f%%\n", 100*act.Ratio(res.Series.Active))
	}
	fmt.Fprintf(w, "  start:          %s\n", s.StartDate)
	if len(res.Waypoints) > 0 {
		b := track.Bound(res)
		fmt.Fprintf(w, "  bounds:         %.5f,%.5f %.5f,%.5f\n", b.Min.Lat(), b.Min.Lon(), b.Max.Lat(), b.Max.Lon())
	}
	for _, warning := range res.Warnings {
		fmt.Fprintf(w, "  warning:        %s\n", warning)
	}
}
