package provider

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/albapepper/pitchzone/internal/pitch"
)

// ReadTable decodes a CSV table with a header row into typed rows. Blank
// lines are skipped; short rows leave the missing columns absent.
func ReadTable(r io.Reader) ([]pitch.Row, error) {
	header, records, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	rows := make([]pitch.Row, 0, len(records))
	for _, rec := range records {
		row := make(pitch.Row, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = ExtractValue(rec[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadStatLine decodes a stats table and returns its first data row. The
// header must carry W, L, ERA, IP and WAR; extra columns are ignored.
func ReadStatLine(r io.Reader) (*StatLine, error) {
	header, records, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("stats table: %w", ErrNotFound)
	}
	first := records[0]
	get := func(col string) string {
		for i, h := range header {
			if h == col && i < len(first) {
				return strings.TrimSpace(first[i])
			}
		}
		return ""
	}
	return &StatLine{
		W:   get("W"),
		L:   get("L"),
		ERA: get("ERA"),
		IP:  get("IP"),
		WAR: get("WAR"),
	}, nil
}

func readCSV(r io.Reader) ([]string, [][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	var records [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read row: %w", err)
		}
		if blank(rec) {
			continue
		}
		records = append(records, rec)
	}
	return header, records, nil
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
