package gpx

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/gjson"
)

// schemaJSON is the structural schema track documents are validated against.
//
//go:embed schema/gpx_lib.schema.json
var schemaJSON []byte

// Schema is a structural schema: which elements must occur how often below
// which parents, which attributes are required, and how text and attribute
// values are typed.
type Schema struct {
	Namespace string
	Root      string
	Elements  map[string]*ElementRule
	Types     map[string]*TypeRule
}

type ElementRule struct {
	Name       string
	Children   []ChildRule
	Attributes []AttributeRule
	Text       string // type name of the text content, if checked
}

type ChildRule struct {
	Name string
	Min  int
	Max  int // 0 is unbounded
}

type AttributeRule struct {
	Name     string
	Required bool
	Type     string
}

type TypeRule struct {
	Name string
	Base string

	MinInclusive, MaxInclusive, MaxExclusive *float64
}

// DefaultSchema returns the embedded GPX schema.
var DefaultSchema = sync.OnceValues(func() (*Schema, error) {
	return ParseSchema(schemaJSON)
})

// ParseSchema reads a schema from its JSON form.
func ParseSchema(data []byte) (*Schema, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("schema: invalid JSON")
	}
	doc := gjson.ParseBytes(data)
	s := &Schema{
		Namespace: doc.Get("namespace").String(),
		Root:      doc.Get("root").String(),
		Elements:  make(map[string]*ElementRule),
		Types:     make(map[string]*TypeRule),
	}
	if s.Root == "" {
		return nil, errors.New("schema: missing root")
	}

	doc.Get("types").ForEach(func(key, value gjson.Result) bool {
		t := &TypeRule{Name: key.String(), Base: value.Get("base").String()}
		t.MinInclusive = optFloat(value.Get("minInclusive"))
		t.MaxInclusive = optFloat(value.Get("maxInclusive"))
		t.MaxExclusive = optFloat(value.Get("maxExclusive"))
		s.Types[t.Name] = t
		return true
	})

	var err error
	doc.Get("elements").ForEach(func(key, value gjson.Result) bool {
		el := &ElementRule{Name: key.String(), Text: value.Get("text").String()}
		for _, c := range value.Get("children").Array() {
			cr := ChildRule{
				Name: c.Get("name").String(),
				Min:  int(c.Get("min").Int()),
				Max:  int(c.Get("max").Int()),
			}
			if cr.Name == "" || cr.Min < 0 || cr.Max < 0 || (cr.Max > 0 && cr.Min > cr.Max) {
				err = fmt.Errorf("schema: element %s: bad child rule %s", el.Name, c.Raw)
				return false
			}
			el.Children = append(el.Children, cr)
		}
		for _, a := range value.Get("attributes").Array() {
			el.Attributes = append(el.Attributes, AttributeRule{
				Name:     a.Get("name").String(),
				Required: a.Get("required").Bool(),
				Type:     a.Get("type").String(),
			})
		}
		s.Elements[el.Name] = el
		return true
	})
	if err != nil {
		return nil, err
	}
	if _, ok := s.Elements[s.Root]; !ok {
		return nil, fmt.Errorf("schema: root %q is not declared", s.Root)
	}
	// Every referenced type must be declared.
	for _, el := range s.Elements {
		refs := []string{el.Text}
		for _, a := range el.Attributes {
			refs = append(refs, a.Type)
		}
		for _, ref := range refs {
			if ref == "" {
				continue
			}
			if _, ok := s.Types[ref]; !ok {
				return nil, fmt.Errorf("schema: element %s: undeclared type %q", el.Name, ref)
			}
		}
	}
	return s, nil
}

func optFloat(r gjson.Result) *float64 {
	if !r.Exists() {
		return nil
	}
	f := r.Float()
	return &f
}

// check returns nil if value is a valid lexical value of the named type.
func (s *Schema) check(typeName, value string) error {
	t, ok := s.Types[typeName]
	if !ok {
		return fmt.Errorf("unknown type %q", typeName)
	}
	value = strings.TrimSpace(value)
	base := t.Base
	if base == "" {
		base = t.Name
	}
	switch base {
	case "dateTime":
		return checkDateTime(value)
	case "decimal":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("'%s' is not a valid value of the atomic type 'xs:decimal'", value)
		}
		if t.MinInclusive != nil && f < *t.MinInclusive {
			return fmt.Errorf("the value '%s' is less than the minimum value allowed ('%v')", value, *t.MinInclusive)
		}
		if t.MaxInclusive != nil && f > *t.MaxInclusive {
			return fmt.Errorf("the value '%s' is greater than the maximum value allowed ('%v')", value, *t.MaxInclusive)
		}
		if t.MaxExclusive != nil && f >= *t.MaxExclusive {
			return fmt.Errorf("the value '%s' must be less than '%v'", value, *t.MaxExclusive)
		}
		return nil
	}
	return nil
}

// xsd:dateTime, with or without a zone designator.
var dateTimeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05"}

func checkDateTime(value string) error {
	for _, layout := range dateTimeLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return nil
		}
	}
	return fmt.Errorf("'%s' is not a valid value of the atomic type 'xs:dateTime'", value)
}
