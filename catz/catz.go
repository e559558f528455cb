// Package catz opens track files for reading and writing,
// transparently (de)compressing gzip when the name ends in .gz.
package catz

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rotblauer/gpxstat/params"
)

// IsGZ reports whether path names a gzip file.
func IsGZ(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".gz")
}

// OpenReader opens path for reading, decompressing .gz files.
func OpenReader(path string) (io.ReadCloser, error) {
	if IsGZ(path) {
		return NewGZFileReader(path)
	}
	return os.Open(path)
}

// CreateWriter creates (or truncates) path for writing, compressing .gz files.
// The file is exclusively locked until closed.
func CreateWriter(path string) (io.WriteCloser, error) {
	config := DefaultGZFileWriterConfig()
	if IsGZ(path) {
		return NewGZFileWriter(path, config)
	}
	if err := os.MkdirAll(filepath.Dir(path), config.DirPerm); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, config.Flag, config.FilePerm)
	if err != nil {
		return nil, err
	}
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

type GZFileWriter struct {
	f      *os.File
	gzw    *gzip.Writer
	closed bool

	GZFileWriterConfig
}

type GZFileWriterConfig struct {
	CompressionLevel int
	Flag             int
	FilePerm         os.FileMode
	DirPerm          os.FileMode
}

// DefaultGZFileWriterConfig truncates existing files;
// a rewritten track document replaces its predecessor.
func DefaultGZFileWriterConfig() *GZFileWriterConfig {
	return &GZFileWriterConfig{
		CompressionLevel: params.DefaultGZipCompressionLevel,
		Flag:             os.O_WRONLY | os.O_TRUNC | os.O_CREATE,
		FilePerm:         0660,
		DirPerm:          0770,
	}
}

// NewGZFileWriter opens a gzip writer at path.
// An exclusive lock is held on the file until it is closed.
func NewGZFileWriter(path string, config *GZFileWriterConfig) (*GZFileWriter, error) {
	if config == nil {
		config = DefaultGZFileWriterConfig()
	}
	if err := os.MkdirAll(filepath.Dir(path), config.DirPerm); err != nil {
		return nil, err
	}
	fi, err := os.OpenFile(path, config.Flag, config.FilePerm)
	if err != nil {
		return nil, err
	}
	if err := syscall.Flock(int(fi.Fd()), syscall.LOCK_EX); err != nil {
		_ = fi.Close()
		return nil, err
	}
	gzw, err := gzip.NewWriterLevel(fi, config.CompressionLevel)
	if err != nil {
		_ = fi.Close()
		return nil, err
	}
	return &GZFileWriter{
		f:                  fi,
		gzw:                gzw,
		GZFileWriterConfig: *config,
	}, nil
}

func (g *GZFileWriter) Write(p []byte) (int, error) {
	return g.gzw.Write(p)
}

func (g *GZFileWriter) Path() string {
	return g.f.Name()
}

// Close flushes the gzip stream and closes the file, releasing the lock.
func (g *GZFileWriter) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	if err := g.gzw.Close(); err != nil {
		_ = g.f.Close()
		return err
	}
	if err := g.f.Sync(); err != nil {
		_ = g.f.Close()
		return err
	}
	return g.f.Close()
}

type GZFileReader struct {
	f      *os.File
	gzr    *gzip.Reader
	closed bool
}

func NewGZFileReader(path string) (*GZFileReader, error) {
	fi, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	gzr, err := gzip.NewReader(fi)
	if err != nil {
		_ = fi.Close()
		return nil, err
	}
	return &GZFileReader{f: fi, gzr: gzr}, nil
}

func (g *GZFileReader) Path() string {
	return g.f.Name()
}

// Read satisfies the io.Reader interface.
func (g *GZFileReader) Read(p []byte) (int, error) {
	return g.gzr.Read(p)
}

// Close closes the gzip reader and the file.
func (g *GZFileReader) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	if err := g.gzr.Close(); err != nil {
		_ = g.f.Close()
		return err
	}
	return g.f.Close()
}
