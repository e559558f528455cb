package catz

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestIsGZ(t *testing.T) {
	cases := map[string]bool{
		"track.gpx":       false,
		"track.gpx.gz":    true,
		"TRACK.GPX.GZ":    true,
		"/tmp/a.gz/b.gpx": false,
		"gzip":            false,
	}
	for path, want := range cases {
		if got := IsGZ(path); got != want {
			t.Errorf("IsGZ(%q): expected %v, got %v", path, want, got)
		}
	}
}

func TestWriterReaderRoundTrip(t *testing.T) {
	dir := t.TempDir()
	payload := []byte(`<?xml version="1.0"?><gpx></gpx>`)

	for _, name := range []string{"plain.gpx", "nested/compressed.gpx.gz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			w, err := CreateWriter(path)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := w.Write(payload); err != nil {
				t.Fatal(err)
			}
			if err := w.Close(); err != nil {
				t.Fatal(err)
			}

			r, err := OpenReader(path)
			if err != nil {
				t.Fatal(err)
			}
			defer r.Close()
			got, err := io.ReadAll(r)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != string(payload) {
				t.Errorf("expected %q, got %q", payload, got)
			}

			if IsGZ(path) {
				raw, err := os.ReadFile(path)
				if err != nil {
					t.Fatal(err)
				}
				if len(raw) < 2 || raw[0] != 0x1f || raw[1] != 0x8b {
					t.Errorf("expected gzip magic header, got % x", raw[:2])
				}
			}
		})
	}
}

func TestCreateWriter_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gpx")
	for _, s := range []string{"a long first version", "short"} {
		w, err := CreateWriter(path)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := io.WriteString(w, s); err != nil {
			t.Fatal(err)
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "short" {
		t.Errorf("expected %q, got %q", "short", got)
	}
}

func TestOpenReader_Missing(t *testing.T) {
	for _, name := range []string{"missing.gpx", "missing.gpx.gz"} {
		_, err := OpenReader(filepath.Join(t.TempDir(), name))
		if !os.IsNotExist(err) {
			t.Errorf("%s: expected not-exist error, got %v", name, err)
		}
	}
}
