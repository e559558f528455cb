package gpx

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/rotblauer/gpxstat/catz"
	"github.com/rotblauer/gpxstat/params"
	"golang.org/x/net/html/charset"
)

// Document is a GPX document as read: its raw bytes, kept for validation
// diagnostics with line numbers, and its element tree, used for extraction
// and regeneration.
// A Document is not modified once read; WithElevations returns a new one.
type Document struct {
	Name string

	raw      []byte
	tree     *etree.Document
	parseErr error // non-nil if raw is not well-formed XML
}

// Open reads the track file at path. Files named *.gz are decompressed.
// A path that does not resolve to a readable regular file yields ErrFileNotFound.
// Malformed XML is not an error here: it is reported by Validate and Extract.
func Open(path string) (*Document, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s: not a regular file", ErrFileNotFound, path)
	}
	r, err := catz.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}
	defer r.Close()
	return ReadDocument(path, r)
}

// ReadDocument reads a document from r. Name is used in messages only.
func ReadDocument(name string, r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return NewDocument(name, raw), nil
}

// NewDocument wraps raw bytes as a Document.
func NewDocument(name string, raw []byte) *Document {
	d := &Document{Name: name, raw: raw}
	tree := etree.NewDocument()
	tree.ReadSettings.CharsetReader = charset.NewReaderLabel
	if err := tree.ReadFromBytes(raw); err != nil {
		d.parseErr = err
		return d
	}
	if tree.Root() == nil {
		d.parseErr = fmt.Errorf("no root element")
		return d
	}
	d.tree = tree
	return d
}

// Bytes returns the document as read (or as regenerated).
func (d *Document) Bytes() []byte {
	return d.raw
}

// WriteTo writes the document bytes to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.raw)
	return int64(n), err
}

// WriteFile writes the document to path; *.gz paths are compressed.
func (d *Document) WriteFile(path string) error {
	w, err := catz.CreateWriter(path)
	if err != nil {
		return err
	}
	if _, err := d.WriteTo(w); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// TrackpointCount returns the number of trkpt elements,
// including those that extraction skips.
func (d *Document) TrackpointCount() int {
	if d.tree == nil {
		return 0
	}
	return len(trackpoints(d.tree.Root()))
}

// WithElevations returns a copy of the document with the ele values of the
// retained trackpoints (those having an elevation) replaced, in order.
// Values equal to the parsed original keep their original text,
// so an unmodified sequence regenerates identical ele fields.
func (d *Document) WithElevations(elevations []float64) (*Document, error) {
	if d.parseErr != nil {
		return nil, &ParseError{Name: d.Name, Index: -1, Err: d.parseErr}
	}
	tree := d.tree.Copy()
	var retained []*etree.Element
	for _, el := range trackpoints(tree.Root()) {
		if ele := childElement(el, "ele"); ele != nil && strings.TrimSpace(ele.Text()) != "" {
			retained = append(retained, ele)
		}
	}
	if len(retained) != len(elevations) {
		return nil, fmt.Errorf("document %s has %d trackpoints with elevation, got %d elevations",
			d.Name, len(retained), len(elevations))
	}
	for i, ele := range retained {
		if v, err := strconv.ParseFloat(strings.TrimSpace(ele.Text()), 64); err == nil && v == elevations[i] {
			continue
		}
		ele.SetText(strconv.FormatFloat(elevations[i], 'f', -1, 64))
	}
	declareUTF8(tree)
	var buf bytes.Buffer
	if _, err := tree.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("regenerate %s: %w", d.Name, err)
	}
	return &Document{Name: d.Name, raw: buf.Bytes(), tree: tree}, nil
}

var encodingDecl = regexp.MustCompile(`encoding\s*=\s*["']([^"']*)["']`)

// declareUTF8 rewrites a non-UTF-8 encoding declaration.
// Text read through a charset reader is written back as UTF-8.
func declareUTF8(tree *etree.Document) {
	for _, tok := range tree.Child {
		p, ok := tok.(*etree.ProcInst)
		if !ok || p.Target != "xml" {
			continue
		}
		p.Inst = encodingDecl.ReplaceAllStringFunc(p.Inst, func(m string) string {
			if label := encodingDecl.FindStringSubmatch(m)[1]; strings.EqualFold(label, "utf-8") {
				return m
			}
			return `encoding="UTF-8"`
		})
	}
}

// trackpoints returns every trkpt element below root, depth-first in document order.
func trackpoints(root *etree.Element) []*etree.Element {
	var out []*etree.Element
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, c := range el.ChildElements() {
			if c.Tag == "trkpt" && inGPXNamespace(c) {
				out = append(out, c)
				continue
			}
			walk(c)
		}
	}
	if root != nil {
		walk(root)
	}
	return out
}

// childElement returns the first direct child of el with the GPX tag, or nil.
func childElement(el *etree.Element, tag string) *etree.Element {
	for _, c := range el.ChildElements() {
		if c.Tag == tag && inGPXNamespace(c) {
			return c
		}
	}
	return nil
}

// inGPXNamespace accepts the GPX 1.1 namespace and documents that declare none.
func inGPXNamespace(el *etree.Element) bool {
	ns := el.NamespaceURI()
	return ns == params.GPXNamespace || ns == ""
}
