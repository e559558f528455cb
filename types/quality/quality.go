// Package quality describes non-fatal data quality signals.
// Warnings never stop processing; they travel next to results, not as errors.
package quality

import (
	"fmt"
	"log/slog"
)

type Kind int

const (
	// SchemaViolation is a structural problem tolerated because processing was forced.
	SchemaViolation Kind = iota
	// SpeedClamped is an implausible calculated speed (a GPS jump) that was zeroed.
	SpeedClamped
)

func (k Kind) String() string {
	switch k {
	case SchemaViolation:
		return "SchemaViolation"
	case SpeedClamped:
		return "SpeedClamped"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Warning is a DataQualityWarning.
type Warning struct {
	Kind Kind

	// Line is the document line a schema violation was reported on, or 0.
	Line int

	// Index is the series index of the interval concerned, or -1.
	Index int

	Message string
}

func (w Warning) String() string {
	switch {
	case w.Line > 0:
		return fmt.Sprintf("%s: line %d: %s", w.Kind, w.Line, w.Message)
	case w.Index >= 0:
		return fmt.Sprintf("%s: interval %d: %s", w.Kind, w.Index, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}

// LogValue implements slog.LogValuer.
func (w Warning) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("kind", w.Kind.String())}
	if w.Line > 0 {
		attrs = append(attrs, slog.Int("line", w.Line))
	}
	if w.Index >= 0 {
		attrs = append(attrs, slog.Int("index", w.Index))
	}
	attrs = append(attrs, slog.String("message", w.Message))
	return slog.GroupValue(attrs...)
}

type Warnings []Warning

// Count returns the number of warnings of kind k.
func (ws Warnings) Count(k Kind) int {
	n := 0
	for _, w := range ws {
		if w.Kind == k {
			n++
		}
	}
	return n
}
