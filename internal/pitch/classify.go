package pitch

import "strings"

// Category is the single outcome bucket a pitch is filtered and coloured by.
type Category string

const (
	Strikeout Category = "Strikeout"
	Hit       Category = "Hit"
	Out       Category = "Out"
	Ball      Category = "Ball"
	Strike    Category = "Strike"
	Other     Category = "Other"
)

// Categories lists every category in classification precedence order.
var Categories = []Category{Strikeout, Hit, Out, Ball, Strike, Other}

var hitEvents = map[string]struct{}{
	"single":   {},
	"double":   {},
	"triple":   {},
	"home_run": {},
}

var categoryColors = map[Category]string{
	Strikeout: "darkred",
	Hit:       "green",
	Out:       "gray",
	Ball:      "blue",
	Strike:    "red",
	Other:     "black",
}

// Color is the marker colour used for the category.
func (c Category) Color() string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return "black"
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryColors[c]
	return ok
}

// Classify maps a record to its outcome category. The plate-appearance result
// in events outranks the single-pitch call in description. Missing fields
// are treated as empty text.
func Classify(r Record) Category {
	evt := strings.ToLower(r.Events)
	desc := strings.ToLower(r.Description)

	if evt == "strikeout" {
		return Strikeout
	}
	if _, ok := hitEvents[evt]; ok {
		return Hit
	}
	if strings.Contains(evt, "out") {
		return Out
	}
	if strings.Contains(desc, "ball") {
		return Ball
	}
	if strings.Contains(desc, "called_strike") ||
		strings.Contains(desc, "swinging_strike") ||
		strings.Contains(desc, "foul") {
		return Strike
	}
	return Other
}
