package pitch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// All is the wildcard value accepted by every filter field.
const All = "All"

// Detail filter values. They test the raw description text, independent of
// the record's category.
const (
	DetailCalled = "Called"
	DetailSwing  = "Swing"
	DetailFoul   = "Foul"
)

// Field names one of the four FilterSpec fields.
type Field string

const (
	FieldOutcome   Field = "outcome"
	FieldDetail    Field = "detail"
	FieldPitchType Field = "pitch_type"
	FieldInning    Field = "inning"
)

var (
	ErrUnknownField = errors.New("unknown filter field")
	ErrInvalidValue = errors.New("invalid filter value")
)

// FilterSpec decides which pitches a view displays. Each field is either All
// or an exact value; the fields do not depend on each other.
type FilterSpec struct {
	OutcomeType string `json:"outcome"`
	Detail      string `json:"detail"`
	PitchType   string `json:"pitch_type"`
	Inning      string `json:"inning"`
}

// NewFilterSpec returns a spec with every field set to All.
func NewFilterSpec() FilterSpec {
	return FilterSpec{OutcomeType: All, Detail: All, PitchType: All, Inning: All}
}

// With returns a copy of f with one field replaced. The receiver is never
// modified.
func (f FilterSpec) With(field Field, value string) (FilterSpec, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		value = All
	}
	switch field {
	case FieldOutcome:
		if value != All && !Category(value).Valid() {
			return f, fmt.Errorf("%w: outcome %q", ErrInvalidValue, value)
		}
		f.OutcomeType = value
	case FieldDetail:
		switch value {
		case All, DetailCalled, DetailSwing, DetailFoul:
		default:
			return f, fmt.Errorf("%w: detail %q", ErrInvalidValue, value)
		}
		f.Detail = value
	case FieldPitchType:
		f.PitchType = value
	case FieldInning:
		if value != All {
			if n, err := strconv.Atoi(value); err != nil || n < 1 {
				return f, fmt.Errorf("%w: inning %q", ErrInvalidValue, value)
			}
		}
		f.Inning = value
	default:
		return f, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return f, nil
}

// Matches reports whether r passes all four predicates of f.
func Matches(r Record, f FilterSpec) bool {
	return MatchOutcome(r, f.OutcomeType) &&
		MatchDetail(r, f.Detail) &&
		MatchPitchType(r, f.PitchType) &&
		MatchInning(r, f.Inning)
}

// MatchOutcome compares against the precomputed category.
func MatchOutcome(r Record, outcome string) bool {
	return outcome == All || string(r.Category) == outcome
}

// MatchDetail tests the raw description text.
func MatchDetail(r Record, detail string) bool {
	if detail == All {
		return true
	}
	desc := strings.ToLower(r.Description)
	switch detail {
	case DetailCalled:
		return strings.Contains(desc, "called_strike")
	case DetailSwing:
		return strings.Contains(desc, "swinging_strike")
	case DetailFoul:
		return strings.Contains(desc, "foul")
	}
	return false
}

// MatchPitchType is wildcard or exact code equality.
func MatchPitchType(r Record, pitchType string) bool {
	return pitchType == All || r.PitchType == pitchType
}

// MatchInning compares as text so "3" and 3.0 upstream both match "3". Only
// exact match is supported, never ranges.
func MatchInning(r Record, inning string) bool {
	if inning == All {
		return true
	}
	return r.InningText() != "" && r.InningText() == strings.TrimSpace(inning)
}

// Apply returns the records that match f, in input order. It always scans the
// whole input.
func Apply(records []Record, f FilterSpec) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if Matches(r, f) {
			out = append(out, r)
		}
	}
	return out
}

// InningOptions are the inning choices offered to a view.
func InningOptions() []string {
	opts := make([]string, 0, 10)
	opts = append(opts, All)
	for i := 1; i <= 9; i++ {
		opts = append(opts, strconv.Itoa(i))
	}
	return opts
}
