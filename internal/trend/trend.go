// Package trend fits linear growth trends to monthly count tables and
// ranks themes or keywords by growth rate.
//
// The regression x-axis is the subject's own observed months, indexed
// 0,1,2,… in chronological order. Months where the subject was
// inactive are absent index positions, not zero-filled gaps.
package trend

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/thesixthai/brandpulse/internal/timeseries"
)

// Growing thresholds: a subject qualifies as growing when its fitted
// slope is positive and it has at least MinTotalPosts observations.
const MinTotalPosts = 3

// Record is one subject's fitted growth trend.
type Record struct {
	Subject    string  `json:"subject"`
	GrowthRate float64 `json:"growth_rate"`
	RSquared   float64 `json:"r_squared"`
	TotalPosts int     `json:"total_posts"`
}

// Fit fits an ordinary least-squares line to a subject's monthly
// counts. ok is false for subjects with fewer than two distinct months
// or no posts at all — they cannot carry a trend.
func Fit(monthly map[string]int, months []string) (Record, bool) {
	if len(months) < 2 {
		return Record{}, false
	}

	xs := make([]float64, len(months))
	ys := make([]float64, len(months))
	total := 0
	for i, m := range months {
		xs[i] = float64(i)
		ys[i] = float64(monthly[m])
		total += monthly[m]
	}
	if total <= 0 {
		return Record{}, false
	}

	_, slope := stat.LinearRegression(xs, ys, nil, false)

	// Pearson r is undefined for a constant series; report R² = 0
	// there, matching the convention of the stats routine this mirrors.
	r := stat.Correlation(xs, ys, nil)
	r2 := r * r
	if math.IsNaN(r2) || math.IsInf(r2, 0) {
		r2 = 0
	}
	if math.IsNaN(slope) {
		slope = 0
	}

	return Record{GrowthRate: slope, RSquared: r2, TotalPosts: total}, true
}

// fitAll fits every subject in the table that has enough history,
// preserving the table's subject order.
func fitAll(table *timeseries.SubjectMonthly) []Record {
	var records []Record
	for _, subject := range table.Subjects() {
		rec, ok := Fit(table.Counts(subject), table.ActiveMonths(subject))
		if !ok {
			continue
		}
		rec.Subject = subject
		records = append(records, rec)
	}
	return records
}

// TopGrowing returns the top n growing subjects: slope > 0 and at
// least MinTotalPosts observations, sorted by slope descending with
// ties kept in table order. Subjects active in a single month are
// silently excluded — they cannot carry a trend, though they still
// count in plain volume rankings.
func TopGrowing(table *timeseries.SubjectMonthly, n int) []Record {
	var growing []Record
	for _, rec := range fitAll(table) {
		if rec.GrowthRate > 0 && rec.TotalPosts >= MinTotalPosts {
			growing = append(growing, rec)
		}
	}
	sortBySlope(growing)
	if n > 0 && len(growing) > n {
		growing = growing[:n]
	}
	return growing
}

// TrendRows returns the monthly rows for the given growth winners,
// month-ordered, for the trend-over-time chart.
func TrendRows(table *timeseries.SubjectMonthly, records []Record) []timeseries.Row {
	if len(records) == 0 {
		return nil
	}
	subjects := make([]string, len(records))
	for i, rec := range records {
		subjects[i] = rec.Subject
	}
	return table.Rows(subjects)
}

// Rates returns display-ready growth rates for the top n growing
// subjects: rate rounded to 2 decimals, R² to 3, filtered on the
// rounded rate (so a vanishing positive slope rounds to 0 and drops
// out of the display table).
func Rates(table *timeseries.SubjectMonthly, n int) []Record {
	var growing []Record
	for _, rec := range fitAll(table) {
		rec.GrowthRate = round(rec.GrowthRate, 2)
		rec.RSquared = round(rec.RSquared, 3)
		if rec.GrowthRate > 0 && rec.TotalPosts >= MinTotalPosts {
			growing = append(growing, rec)
		}
	}
	sortBySlope(growing)
	if n > 0 && len(growing) > n {
		growing = growing[:n]
	}
	return growing
}

// Classify maps a growth rate to its display label.
func Classify(rate float64) string {
	switch {
	case rate >= 0.15:
		return "Strong Growth"
	case rate >= 0.05:
		return "Steady Growth"
	default:
		return "Slow Growth"
	}
}

func sortBySlope(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].GrowthRate > records[j].GrowthRate
	})
}

func round(x float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(x*pow) / pow
}
