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
	"github.com/rotblauer/gpxstat/gpx"
	"github.com/spf13/cobra"
)

// errInvalid is returned by validate after it has printed the diagnostics.
var errInvalid = fmt.Errorf("invalid")

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Check GPX tracks against the track schema",
	Long: `Checks each file against the embedded GPX schema and prints one line
per violation, as file:line:column: message. Exits 1 if any file is invalid.

The schema requires exactly one track with at least one segment, at least
three trackpoints per segment, and lat, lon and time on every trackpoint.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setDefaultSlog(cmd, args)

		out := cmd.OutOrStdout()
		invalid := 0
		for _, arg := range args {
			path, err := homedir.Expand(arg)
			if err != nil {
				return err
			}
			doc, err := gpx.Open(path)
			if err != nil {
				return err
			}
			// Diagnostics are printed, not logged.
			res := gpx.Validate(doc, nil)
			if res.Valid {
				slog.Info("Valid track", "file", path)
				fmt.Fprintf(out, "%s: ok\n", path)
				continue
			}
			invalid++
			for _, d := range res.Diagnostics {
				fmt.Fprintf(out, "%s:%d:%d: %s\n", path, d.Line, d.Column, d.Message)
			}
		}
		if invalid > 0 {
			return fmt.Errorf("%w: %d of %d files", errInvalid, invalid, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
