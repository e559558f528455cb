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
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mitchellh/go-homedir"
	"github.com/rotblauer/gpxstat/common"
	"github.com/rotblauer/gpxstat/events"
	"github.com/rotblauer/gpxstat/metrics"
	"github.com/rotblauer/gpxstat/params"
	"github.com/rotblauer/gpxstat/state"
	"github.com/rotblauer/gpxstat/stream"
	"github.com/rotblauer/gpxstat/summary"
	"github.com/rotblauer/gpxstat/track"
	"github.com/spf13/cobra"
)

var optWorkersN int
var optUseCache bool

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch PATH...",
	Short: "Summarize many GPX tracks concurrently",
	Long: `Processes every *.gpx and *.gpx.gz file named, or found below the named
directories, with a pool of workers. One JSON line is printed per file, in
completion order, followed by a line with the overall statistics.

Files with the same content are only processed once. With --cache, summaries
are stored in the data directory and reused while file content and
configuration are unchanged.

Failures are logged and counted; the exit status is 1 if any file failed.

Flags:

  --workers   Number of files processed in parallel.
  --cache     Reuse and store summaries in <datadir>/summaries.db.
  --force     Process documents that fail validation.

Examples:

  gpxstat batch ~/tracks --workers 8 --cache > summaries.ndjson
`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setDefaultSlog(cmd, args)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			select {
			case sig := <-common.Interrupted():
				slog.Warn("Received signal, stopping after current files", "signal", sig)
				cancel()
			case <-ctx.Done():
			}
		}()

		paths, err := collectPaths(args)
		if err != nil {
			return err
		}
		slog.Info("Batch", "files", len(paths), "workers", optWorkersN, "cache", optUseCache)

		config, err := trackConfig()
		if err != nil {
			return err
		}
		batchConfig := track.BatchConfig{Workers: optWorkersN, Force: optForce}
		if optUseCache {
			store, err := state.Open(datadir(), false)
			if err != nil {
				return err
			}
			defer store.Close()
			batchConfig.Cache = store
		}

		progress := stream.NewProgressMeter(params.DefaultProgressInterval, slog.Default())
		processed := make(chan events.Processed, optWorkersN)
		sub := events.ProcessedFeed.Subscribe(processed)
		go func() {
			for e := range processed {
				progress.Mark(e.Name, e.Waypoints)
			}
		}()

		enc := json.NewEncoder(cmd.OutOrStdout())
		var summaries []summary.Summary
		failed := 0
		p := track.NewProcessor(config, slog.Default())
		for r := range p.Batch(ctx, paths, batchConfig) {
			switch {
			case r.Err != nil:
				failed++
				slog.Error("Failed to process track", "file", r.Path, "error", describeError(r.Err))
				continue
			case r.DuplicateOf != "":
				continue
			}
			summaries = append(summaries, r.Entry.Summary)
			if err := enc.Encode(r.Entry); err != nil {
				return err
			}
		}
		sub.Unsubscribe()
		close(processed)
		progress.Stop()

		if err := enc.Encode(summary.Combine(summaries)); err != nil {
			return err
		}
		metrics.Log(slog.Default())
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if failed > 0 {
			return errBatchFailed{failed: failed, total: len(paths)}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&optWorkersN, "workers", params.DefaultBatchWorkers, "Number of files processed in parallel")
	batchCmd.Flags().BoolVar(&optUseCache, "cache", false, "Reuse and store summaries in the data directory")
	batchCmd.Flags().BoolVar(&optForce, "force", false, "Process documents that fail validation")
}

type errBatchFailed struct {
	failed, total int
}

func (e errBatchFailed) Error() string {
	return fmt.Sprintf("batch: %s of %s files failed", humanize.Comma(int64(e.failed)), humanize.Comma(int64(e.total)))
}

// isTrackFile reports whether name looks like a GPX track, gzipped or not.
func isTrackFile(name string) bool {
	name = strings.ToLower(name)
	return strings.HasSuffix(name, ".gpx") || strings.HasSuffix(name, ".gpx.gz")
}

// collectPaths expands args into track files. Directories are walked
// recursively; files named explicitly are kept whatever their extension.
func collectPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		arg, err := homedir.Expand(arg)
		if err != nil {
			return nil, err
		}
		fi, err := os.Stat(arg)
		if err != nil || !fi.IsDir() {
			// Missing files are reported by the processor.
			paths = append(paths, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isTrackFile(d.Name()) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}
