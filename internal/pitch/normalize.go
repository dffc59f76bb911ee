package pitch

import (
	"math"
	"strconv"
	"strings"
)

// Normalize converts parsed rows into records, preserving input order. Rows
// without numeric plate_x and plate_z are dropped without error; tracking
// data is routinely missing them (intentional walks, tracking gaps). Each
// surviving record is classified exactly once here.
func Normalize(rows []Row) []Record {
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec, ok := NormalizeRow(row)
		if !ok {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// NormalizeRow converts a single row. ok is false when the row lacks usable
// plate coordinates.
func NormalizeRow(row Row) (Record, bool) {
	x, okX := Numeric(row[ColPlateX])
	z, okZ := Numeric(row[ColPlateZ])
	if !okX || !okZ {
		return Record{}, false
	}

	rec := Record{
		PlateX:      x,
		PlateZ:      z,
		Description: Text(row[ColDescription]),
		Events:      Text(row[ColEvents]),
		PitchType:   Text(row[ColPitchType]),
		GameDate:    Text(row[ColGameDate]),
		BatterID:    Text(row[ColBatter]),
		PitchName:   Text(row[ColPitchName]),
	}
	if inning, ok := Numeric(row[ColInning]); ok && inning >= 1 {
		rec.Inning = int(inning)
	}
	if speed, ok := Numeric(row[ColReleaseSpeed]); ok {
		rec.ReleaseSpeed = &speed
	}
	rec.Category = Classify(rec)
	return rec, true
}

// Numeric extracts a finite float from the loosely typed cell value.
func Numeric(val interface{}) (float64, bool) {
	var f float64
	switch v := val.(type) {
	case nil:
		return 0, false
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Text renders a cell as trimmed text. Whole numbers print without a decimal
// point so an integer batter id parsed as float64 stays "663728".
func Text(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
