package gpx

import (
	"strings"
	"testing"

	"github.com/rotblauer/gpxstat/testing/testdata"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name     string
		src      string
		valid    bool
		diags    int
		line     int // line of the first diagnostic, if any
		contains string
	}{
		{"three waypoints", testdata.GPX_ThreeWaypoints, true, 0, 0, ""},
		{"two segments with extensions", testdata.GPX_TwoSegments, true, 0, 0, ""},
		{"no elevation", testdata.GPX_NoElevation, true, 0, 0, ""},
		{"latin1 encoding", testdata.GPX_Latin1, true, 0, 0, ""},
		{"no namespace", testdata.GPX_NoNamespace, false, 1, 2, "validation root"},
		{"too few points", testdata.GPX_TooFewPoints, false, 1, 4, "Expected at least 3 'trkpt', found 2"},
		{"bad values", testdata.GPX_BadValues, false, 3, 5, "attribute 'lat'"},
		{"two tracks", testdata.GPX_TwoTracks, false, 1, 10, "not expected"},
		{"malformed", testdata.GPX_Malformed, false, 1, 6, "closed by"},
		{"empty", "", false, 1, 1, "empty"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := Validate(NewDocument(c.name, []byte(c.src)), nil)
			if res.Valid != c.valid {
				t.Errorf("expected valid=%v, got %v (%v)", c.valid, res.Valid, res.Diagnostics)
			}
			if len(res.Diagnostics) != c.diags {
				t.Fatalf("expected %d diagnostics, got %d: %v", c.diags, len(res.Diagnostics), res.Diagnostics)
			}
			if c.diags == 0 {
				return
			}
			first := res.Diagnostics[0]
			if first.Line != c.line {
				t.Errorf("expected first diagnostic on line %d, got %d (%s)", c.line, first.Line, first.Message)
			}
			if !strings.Contains(first.Message, c.contains) {
				t.Errorf("expected diagnostic to contain %q, got %q", c.contains, first.Message)
			}
		})
	}
}

func TestValidateBadValues(t *testing.T) {
	res := Validate(NewDocument("bad", []byte(testdata.GPX_BadValues)), nil)
	want := []struct {
		line     int
		contains string
	}{
		{5, "greater than the maximum value allowed ('90')"},
		{6, "Expected at least 1 'time', found 0"},
		{7, "'yesterday' is not a valid value of the atomic type 'xs:dateTime'"},
	}
	if len(res.Diagnostics) != len(want) {
		t.Fatalf("expected %d diagnostics, got %v", len(want), res.Diagnostics)
	}
	for i, w := range want {
		d := res.Diagnostics[i]
		if d.Line != w.line || !strings.Contains(d.Message, w.contains) {
			t.Errorf("expected line %d containing %q, got %v", w.line, w.contains, d)
		}
	}
}

func TestValidateLongitudeUpperBound(t *testing.T) {
	s, err := DefaultSchema()
	if err != nil {
		t.Fatal(err)
	}
	if err := s.check("longitude", "180"); err == nil {
		t.Error("expected 180 to be out of range")
	}
	if err := s.check("longitude", "-180"); err != nil {
		t.Errorf("expected -180 to be valid, got %v", err)
	}
	if err := s.check("latitude", " 90 "); err != nil {
		t.Errorf("expected 90 to be valid, got %v", err)
	}
	if err := s.check("dateTime", "2024-06-01T08:00:00.5+02:00"); err != nil {
		t.Errorf("expected zoned fractional time to be valid, got %v", err)
	}
}

func TestParseSchema(t *testing.T) {
	cases := map[string]string{
		"not json":        `{"root": `,
		"no root":         `{"elements": {"gpx": {}}}`,
		"undeclared root": `{"root": "gpx", "elements": {"trk": {}}}`,
		"bad child":       `{"root": "gpx", "elements": {"gpx": {"children": [{"name": "trk", "min": 2, "max": 1}]}}}`,
		"undeclared type": `{"root": "gpx", "elements": {"gpx": {"text": "decimal"}}}`,
	}
	for name, src := range cases {
		if _, err := ParseSchema([]byte(src)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}

	s, err := ParseSchema(schemaJSON)
	if err != nil {
		t.Fatal(err)
	}
	if s.Root != "gpx" {
		t.Errorf("expected root gpx, got %s", s.Root)
	}
	if r := s.Elements["trkseg"].Children[0]; r.Name != "trkpt" || r.Min != 3 || r.Max != 0 {
		t.Errorf("unexpected trkseg rule: %+v", r)
	}
}
