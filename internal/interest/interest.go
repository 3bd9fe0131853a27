// Package interest analyzes search-interest time series: per-theme and
// per-keyword interest values over time, as exported from a search
// trends source. It mirrors the post-side analytics at a coarser
// grain — averages, top-N rankings, trends over time, and
// fastest-growing subjects.
package interest

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// DateLayout is the accepted date format for interest rows.
const DateLayout = "2006-01-02"

// Point is one search-interest observation.
type Point struct {
	Date    time.Time `json:"date"`
	Country string    `json:"country"`
	Theme   string    `json:"theme"`
	Keyword string    `json:"keyword"`
	Value   float64   `json:"value"`
}

// NewPoint validates and builds a Point. ok is false when the date is
// missing or malformed; such rows are dropped at ingestion.
func NewPoint(date, country, theme, keyword string, value float64) (Point, bool) {
	if date == "" {
		return Point{}, false
	}
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return Point{}, false
	}
	return Point{Date: t, Country: country, Theme: theme, Keyword: keyword, Value: value}, true
}

// Filter narrows the series by theme and country. Empty selectors mean
// no constraint on that dimension.
func Filter(points []Point, theme, country string) []Point {
	if theme == "" && country == "" {
		return points
	}
	var out []Point
	for _, p := range points {
		if theme != "" && p.Theme != theme {
			continue
		}
		if country != "" && p.Country != country {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Themes returns the distinct themes in the series, sorted.
func Themes(points []Point) []string {
	return distinct(points, func(p Point) string { return p.Theme })
}

// Countries returns the distinct countries in the series, sorted.
func Countries(points []Point) []string {
	return distinct(points, func(p Point) string { return p.Country })
}

func distinct(points []Point, key func(Point) string) []string {
	set := map[string]bool{}
	for _, p := range points {
		if k := key(p); k != "" {
			set[k] = true
		}
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Average is one subject's mean interest value.
type Average struct {
	Subject string  `json:"subject"`
	Value   float64 `json:"value"`
}

// ThemeAverages returns mean interest per theme, subjects sorted
// alphabetically.
func ThemeAverages(points []Point) []Average {
	return averages(points, func(p Point) string { return p.Theme })
}

// KeywordAverages returns mean interest per keyword, subjects sorted
// alphabetically.
func KeywordAverages(points []Point) []Average {
	return averages(points, func(p Point) string { return p.Keyword })
}

func averages(points []Point, key func(Point) string) []Average {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, p := range points {
		k := key(p)
		if k == "" {
			continue
		}
		sums[k] += p.Value
		counts[k]++
	}

	out := make([]Average, 0, len(sums))
	for k, sum := range sums {
		out = append(out, Average{Subject: k, Value: sum / float64(counts[k])})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Subject < out[j].Subject })
	return out
}

// TopByAverage returns the n highest averages, descending, ties broken
// alphabetically.
func TopByAverage(averages []Average, n int) []Average {
	out := append([]Average(nil), averages...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// TrendPoint is one subject's mean interest on one date.
type TrendPoint struct {
	Subject string    `json:"subject"`
	Date    time.Time `json:"date"`
	Value   float64   `json:"value"`
}

// ThemeTrend returns the per-date mean interest series for the given
// themes, date-ordered.
func ThemeTrend(points []Point, themes []string) []TrendPoint {
	return trendOver(points, themes, func(p Point) string { return p.Theme })
}

// KeywordTrend returns the per-date mean interest series for the given
// keywords, date-ordered.
func KeywordTrend(points []Point, keywords []string) []TrendPoint {
	return trendOver(points, keywords, func(p Point) string { return p.Keyword })
}

func trendOver(points []Point, subjects []string, key func(Point) string) []TrendPoint {
	selected := map[string]bool{}
	for _, s := range subjects {
		selected[s] = true
	}

	type cell struct {
		sum   float64
		count int
	}
	cells := map[string]map[time.Time]*cell{}
	for _, p := range points {
		k := key(p)
		if !selected[k] {
			continue
		}
		if cells[k] == nil {
			cells[k] = map[time.Time]*cell{}
		}
		c := cells[k][p.Date]
		if c == nil {
			c = &cell{}
			cells[k][p.Date] = c
		}
		c.sum += p.Value
		c.count++
	}

	var out []TrendPoint
	for _, subject := range subjects {
		for date, c := range cells[subject] {
			out = append(out, TrendPoint{Subject: subject, Date: date, Value: c.sum / float64(c.count)})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Subject < out[j].Subject
	})
	return out
}

// GrowthEntry is one subject's interest growth measure.
type GrowthEntry struct {
	Subject string  `json:"subject"`
	Growth  float64 `json:"growth"`
}

// FastestGrowingThemes ranks themes by interest delta: last mean value
// minus first, over the theme's date-ordered series. Top n descending.
func FastestGrowingThemes(points []Point, n int) []GrowthEntry {
	var entries []GrowthEntry
	for _, theme := range Themes(points) {
		series := ThemeTrend(points, []string{theme})
		if len(series) == 0 {
			continue
		}
		entries = append(entries, GrowthEntry{
			Subject: theme,
			Growth:  series[len(series)-1].Value - series[0].Value,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Growth > entries[j].Growth })
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// FastestGrowingKeywords ranks keywords by the OLS slope of mean
// interest against the date axis (in days). Keywords with fewer than
// two observed dates are skipped. Top n descending.
func FastestGrowingKeywords(points []Point, n int) []GrowthEntry {
	keywords := distinct(points, func(p Point) string { return p.Keyword })

	var entries []GrowthEntry
	for _, kw := range keywords {
		series := KeywordTrend(points, []string{kw})
		if len(series) < 2 {
			continue
		}
		xs := make([]float64, len(series))
		ys := make([]float64, len(series))
		for i, tp := range series {
			xs[i] = float64(tp.Date.Unix()) / 86400 // days
			ys[i] = tp.Value
		}
		_, slope := stat.LinearRegression(xs, ys, nil, false)
		entries = append(entries, GrowthEntry{Subject: kw, Growth: slope})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Growth > entries[j].Growth })
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
