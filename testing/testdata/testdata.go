// Package testdata holds GPX fixtures shared by package tests.
package testdata

import (
	"os"
	"path/filepath"

	"github.com/rotblauer/gpxstat/catz"
)

// WriteTrack writes contents to dir/name and returns the path.
// Names ending in .gz are gzipped.
func WriteTrack(dir, name, contents string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	w, err := catz.CreateWriter(path)
	if err != nil {
		return "", err
	}
	if _, err := w.Write([]byte(contents)); err != nil {
		w.Close()
		return "", err
	}
	return path, w.Close()
}
