package provider

import (
	"strconv"
	"strings"
)

// ExtractValue types a raw table cell the way a dynamic-typing CSV parser
// does: empty cells become nil, numeric text becomes float64, everything else
// stays a trimmed string.
func ExtractValue(raw string) interface{} {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	switch strings.ToLower(s) {
	case "nan", "null", "na", "none":
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
