package gpx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rotblauer/gpxstat/common"
	"golang.org/x/net/html/charset"
)

// Diagnostic is one schema violation.
type Diagnostic struct {
	Line    int // 1-based
	Column  int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}

// Result is the outcome of validating a document. It is never an error by itself;
// the caller decides whether an invalid document is fatal.
type Result struct {
	Valid       bool
	Diagnostics []Diagnostic
}

// Validate checks doc against the embedded GPX schema.
// Each diagnostic is logged as a warning to logger; a nil logger logs nothing.
func Validate(doc *Document, logger *slog.Logger) Result {
	s, err := DefaultSchema()
	if err != nil {
		panic(err)
	}
	return s.Validate(doc, logger)
}

// Validate checks doc against s.
func (s *Schema) Validate(doc *Document, logger *slog.Logger) Result {
	logger = common.LoggerOrDiscard(logger)
	diags := s.diagnose(doc.raw)
	for _, d := range diags {
		logger.Warn("Invalid element in GPX file", "file", doc.Name, "line", d.Line, "message", d.Message)
	}
	if len(diags) == 0 {
		logger.Debug("GPX file validation OK", "file", doc.Name)
	}
	return Result{Valid: len(diags) == 0, Diagnostics: diags}
}

// frame is an open element during validation.
// Elements without a rule, and everything below them, are not checked.
type frame struct {
	name      string
	rule      *ElementRule
	line, col int
	counts    map[string]int
	text      strings.Builder
}

func (s *Schema) diagnose(raw []byte) []Diagnostic {
	var diags []Diagnostic
	add := func(line, col int, format string, args ...any) {
		diags = append(diags, Diagnostic{Line: line, Column: col, Message: fmt.Sprintf(format, args...)})
	}

	dec := xml.NewDecoder(bytes.NewReader(raw))
	dec.CharsetReader = charset.NewReaderLabel
	var stack []*frame
	sawRoot := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			line, col := dec.InputPos()
			var syntaxErr *xml.SyntaxError
			if errors.As(err, &syntaxErr) {
				line, col = syntaxErr.Line, 0
			}
			add(line, col, "%v", err)
			return diags
		}
		line, col := dec.InputPos()

		switch t := tok.(type) {
		case xml.StartElement:
			f := &frame{name: qualifiedName(t.Name), line: line, col: col}
			if len(stack) == 0 {
				sawRoot = true
				if t.Name.Local != s.Root || t.Name.Space != s.Namespace {
					add(line, col, "Element '%s': No matching global declaration available for the validation root.", f.name)
				} else {
					f.rule = s.Elements[s.Root]
				}
			} else if parent := stack[len(stack)-1]; parent.rule != nil && t.Name.Space == s.Namespace {
				if cr, ok := parent.rule.child(t.Name.Local); ok {
					parent.counts[cr.Name]++
					if cr.Max > 0 && parent.counts[cr.Name] > cr.Max {
						add(line, col, "Element '%s': This element is not expected. At most %d allowed in '%s'.",
							f.name, cr.Max, parent.name)
					}
					f.rule = s.Elements[cr.Name]
				}
			}
			if f.rule != nil {
				f.counts = make(map[string]int)
				s.checkAttributes(f, t.Attr, add)
			}
			stack = append(stack, f)

		case xml.CharData:
			if len(stack) > 0 {
				if top := stack[len(stack)-1]; top.rule != nil && top.rule.Text != "" {
					top.text.Write(t)
				}
			}

		case xml.EndElement:
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if f.rule == nil {
				continue
			}
			for _, cr := range f.rule.Children {
				if n := f.counts[cr.Name]; n < cr.Min {
					add(f.line, f.col, "Element '%s': Missing child element(s). Expected at least %d '%s', found %d.",
						f.name, cr.Min, cr.Name, n)
				}
			}
			if f.rule.Text != "" {
				if err := s.check(f.rule.Text, f.text.String()); err != nil {
					add(f.line, f.col, "Element '%s': %v.", f.name, err)
				}
			}
		}
	}

	if !sawRoot {
		add(1, 0, "Document is empty.")
	}
	return diags
}

func (s *Schema) checkAttributes(f *frame, attrs []xml.Attr, add func(int, int, string, ...any)) {
	for _, ar := range f.rule.Attributes {
		value, ok := "", false
		for _, a := range attrs {
			if a.Name.Space == "" && a.Name.Local == ar.Name {
				value, ok = a.Value, true
				break
			}
		}
		if !ok {
			if ar.Required {
				add(f.line, f.col, "Element '%s': The attribute '%s' is required but missing.", f.name, ar.Name)
			}
			continue
		}
		if ar.Type == "" {
			continue
		}
		if err := s.check(ar.Type, value); err != nil {
			add(f.line, f.col, "Element '%s', attribute '%s': %v.", f.name, ar.Name, err)
		}
	}
}

func (r *ElementRule) child(name string) (ChildRule, bool) {
	for _, c := range r.Children {
		if c.Name == name {
			return c, true
		}
	}
	return ChildRule{}, false
}

func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return "{" + n.Space + "}" + n.Local
}
