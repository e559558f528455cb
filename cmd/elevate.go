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
	"fmt"
	"log/slog"

	"github.com/mitchellh/go-homedir"
	"github.com/rotblauer/gpxstat/common"
	"github.com/rotblauer/gpxstat/geo/smooth"
	"github.com/rotblauer/gpxstat/params"
	"github.com/rotblauer/gpxstat/track"
	"github.com/spf13/cobra"
)

var optElevateOutput string
var optSmoothWindow int

// elevateCmd represents the elevate command
var elevateCmd = &cobra.Command{
	Use:   "elevate FILE -o OUT",
	Short: "Smooth the elevation profile of a track and write it back",
	Long: `Filters the elevations of a track with a centered median window,
writes a copy of the document with the new ele values to OUT (gzipped if OUT
ends in .gz), and prints the statistics before and after.

Only ele values are rewritten; unchanged values keep their original text.
Trackpoints without elevation are left alone.

Examples:

  gpxstat elevate ride.gpx -o ride.smooth.gpx
  gpxstat elevate ride.gpx -o ride.smooth.gpx.gz --smooth-window 11
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setDefaultSlog(cmd, args)

		if optElevateOutput == "" {
			return fmt.Errorf("missing output path (-o)")
		}
		output, err := homedir.Expand(optElevateOutput)
		if err != nil {
			return err
		}
		config, err := trackConfig()
		if err != nil {
			return err
		}
		p := track.NewProcessor(config, slog.Default())

		before, err := p.Process(args[0], optForce)
		if err != nil {
			return err
		}
		smoothed := smooth.MedianElevations(before.Waypoints.Elevations(), optSmoothWindow)
		doc, err := before.Document.WithElevations(smoothed)
		if err != nil {
			return err
		}
		doc.Name = output
		if err := doc.WriteFile(output); err != nil {
			return err
		}
		slog.Info("Wrote track", "file", output, "window", optSmoothWindow)

		after, err := p.ProcessDocument(doc, optForce)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-10s %12s %12s\n", "", "before", "after")
		fmt.Fprintf(out, "%-10s %12s %12s\n", "ascent",
			common.FormatDistance(before.Summary.TotalAscentM), common.FormatDistance(after.Summary.TotalAscentM))
		fmt.Fprintf(out, "%-10s %12s %12s\n", "descent",
			common.FormatDistance(before.Summary.TotalDescentM), common.FormatDistance(after.Summary.TotalDescentM))
		fmt.Fprintf(out, "%-10s %12s %12s\n", "distance",
			common.FormatDistance(before.Summary.TotalDistanceM), common.FormatDistance(after.Summary.TotalDistanceM))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(elevateCmd)

	elevateCmd.Flags().StringVarP(&optElevateOutput, "output", "o", "", "Output path")
	elevateCmd.Flags().IntVar(&optSmoothWindow, "smooth-window", params.DefaultSmoothConfig.Window, "Median window size in trackpoints (below 2 disables smoothing)")
	elevateCmd.Flags().BoolVar(&optForce, "force", false, "Process documents that fail validation")
}
