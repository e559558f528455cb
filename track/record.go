package track

import (
	"slices"
	"strings"

	"github.com/rotblauer/gpxstat/summary"
)

// Record is what a persistence layer receives for a processed track:
// the statistics, a display name and free text tags.
type Record struct {
	Name       string          `json:"name"`
	Date       string          `json:"date"`
	Tags       []string        `json:"tags"`
	Valid      bool            `json:"valid"`
	Statistics summary.Summary `json:"statistics"`
}

// NewRecord builds the record of res. An empty name falls back to DefaultName.
// Tags are stripped of whitespace, deduplicated and sorted, and always include
// the year of the track, if known.
func NewRecord(res *Result, name string, tags []string) Record {
	if strings.TrimSpace(name) == "" {
		name = DefaultName(res.Summary)
	}
	var clean []string
	for _, tag := range tags {
		if tag = strings.Join(strings.Fields(tag), ""); tag != "" {
			clean = append(clean, tag)
		}
	}
	if year := YearTag(res.Summary); year != "" {
		clean = append(clean, year)
	}
	slices.Sort(clean)
	return Record{
		Name:       name,
		Date:       res.Summary.StartDate,
		Tags:       slices.Compact(clean),
		Valid:      res.Valid,
		Statistics: res.Summary,
	}
}

// SplitTags splits a comma separated tag list.
func SplitTags(s string) []string {
	return strings.Split(strings.ReplaceAll(s, " ", ""), ",")
}

// DefaultName names a track by its start date.
func DefaultName(s summary.Summary) string {
	if s.StartDate == "" {
		return "Unnamed activity"
	}
	return "Unnamed activity on " + s.StartDate
}

// YearTag returns the year of the start date, or "".
func YearTag(s summary.Summary) string {
	if len(s.StartDate) < 4 {
		return ""
	}
	return s.StartDate[:4]
}
