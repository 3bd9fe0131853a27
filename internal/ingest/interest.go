package ingest

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/thesixthai/brandpulse/internal/interest"
)

// ReadInterestJSON decodes search-interest rows from a JSON array.
// Rows with missing or malformed dates are dropped.
func ReadInterestJSON(r io.Reader) ([]interest.Point, int, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, 0, fmt.Errorf("decoding interest array: %w", err)
	}

	type row struct {
		Date    string  `json:"date"`
		Country string  `json:"country"`
		Theme   string  `json:"theme"`
		Keyword string  `json:"keyword"`
		Value   float64 `json:"value"`
	}

	points := make([]interest.Point, 0, len(raw))
	skipped := 0
	for _, msg := range raw {
		var rec row
		if err := json.Unmarshal(msg, &rec); err != nil {
			skipped++
			continue
		}
		p, ok := interest.NewPoint(rec.Date, rec.Country, rec.Theme, rec.Keyword, rec.Value)
		if !ok {
			skipped++
			continue
		}
		points = append(points, p)
	}
	return points, skipped, nil
}

// ReadInterestCSV decodes search-interest rows from a CSV export with
// a header row naming date, country, theme, keyword and value columns.
func ReadInterestCSV(r io.Reader) ([]interest.Point, int, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("parsing interest CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, 0, nil
	}

	col := map[string]int{}
	for i, h := range records[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"date", "theme", "keyword", "value"} {
		if _, ok := col[required]; !ok {
			return nil, 0, fmt.Errorf("interest CSV missing %q column", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var points []interest.Point
	skipped := 0
	for _, row := range records[1:] {
		value, err := strconv.ParseFloat(field(row, "value"), 64)
		if err != nil {
			skipped++
			continue
		}
		p, ok := interest.NewPoint(field(row, "date"), field(row, "country"), field(row, "theme"), field(row, "keyword"), value)
		if !ok {
			skipped++
			continue
		}
		points = append(points, p)
	}
	return points, skipped, nil
}

// LoadInterest reads search-interest rows from a .json or .csv file,
// degrading to an empty series on failure.
func LoadInterest(path string) ([]interest.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return []interest.Point{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var points []interest.Point
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		points, _, err = ReadInterestCSV(f)
	default:
		points, _, err = ReadInterestJSON(f)
	}
	if err != nil {
		return []interest.Point{}, fmt.Errorf("loading %s: %w", path, err)
	}
	return points, nil
}
