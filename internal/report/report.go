// Package report shapes engine results into the tabular form the
// presentation layer consumes: ordered rows under named columns. The
// column names and row ordering here are part of the external
// contract, not cosmetics.
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/thesixthai/brandpulse/internal/classify"
	"github.com/thesixthai/brandpulse/internal/interest"
	"github.com/thesixthai/brandpulse/internal/metrics"
	"github.com/thesixthai/brandpulse/internal/model"
	"github.com/thesixthai/brandpulse/internal/timeseries"
	"github.com/thesixthai/brandpulse/internal/trend"
)

// ProfileURLPrefix builds the computed profile link for an account row.
const ProfileURLPrefix = "https://www.instagram.com/"

// Table is an ordered set of rows under named columns.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// MarshalJSON keeps empty tables as empty arrays, never null — "no
// data" displays depend on the columns being present.
func (t Table) MarshalJSON() ([]byte, error) {
	type alias Table
	a := alias(t)
	if a.Columns == nil {
		a.Columns = []string{}
	}
	if a.Rows == nil {
		a.Rows = [][]string{}
	}
	return json.Marshal(a)
}

// Render writes the table as aligned text.
func (t Table) Render() string {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = len(c)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(cell)
			if pad := widths[i] - len(cell); pad > 0 && i < len(cells)-1 {
				sb.WriteString(strings.Repeat(" ", pad))
			}
		}
		sb.WriteByte('\n')
	}

	writeRow(t.Columns)
	sep := make([]string, len(t.Columns))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}
	writeRow(sep)
	for _, row := range t.Rows {
		writeRow(row)
	}
	return sb.String()
}

// Accounts returns the accounts table: one row per post, joined with
// the parent account's metadata and a computed profile URL.
func Accounts(accounts []model.Account) Table {
	t := Table{Columns: []string{
		"User Name", "Full Name", "Followers", "Following", "Countries",
		"Post URL", "Profile URL", "External URL",
	}}
	for _, a := range accounts {
		profile := ProfileURLPrefix + a.Username
		for _, p := range a.Posts {
			t.Rows = append(t.Rows, []string{
				a.Username, a.FullName,
				strconv.Itoa(a.Followers), strconv.Itoa(a.Following),
				a.Country, p.URL, profile, a.ExternalURL,
			})
		}
	}
	return t
}

// TopAccountsByPostCount ranks accounts by raw post volume, descending
// with input order preserved on ties.
func TopAccountsByPostCount(accounts []model.Account, n int) Table {
	type entry struct {
		username string
		posts    int
	}
	entries := make([]entry, 0, len(accounts))
	for _, a := range accounts {
		entries = append(entries, entry{a.Username, len(a.Posts)})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].posts > entries[j].posts })
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}

	t := Table{Columns: []string{"Account", "Post Count"}}
	for _, e := range entries {
		t.Rows = append(t.Rows, []string{e.username, strconv.Itoa(e.posts)})
	}
	return t
}

// Counts renders classifier counts under a subject column ("Theme" or
// "Keyword") and "Post Count".
func Counts(subjectCol string, counts []classify.Count) Table {
	t := Table{Columns: []string{subjectCol, "Post Count"}}
	for _, c := range counts {
		t.Rows = append(t.Rows, []string{c.Subject, strconv.Itoa(c.Posts)})
	}
	return t
}

// MonthlyTrend renders a flattened month × subject table.
func MonthlyTrend(subjectCol string, rows []timeseries.Row) Table {
	t := Table{Columns: []string{subjectCol, "Month", "Post Count"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.Subject, r.Key, strconv.Itoa(r.Count)})
	}
	return t
}

// Series renders a scalar monthly series under the given value column.
func Series(valueCol string, points []timeseries.MonthPoint) Table {
	t := Table{Columns: []string{"Month", valueCol}}
	for _, p := range points {
		t.Rows = append(t.Rows, []string{p.Key, strconv.Itoa(p.Value)})
	}
	return t
}

// GrowthRates renders growth records with the human-readable summary
// column the dashboard bar chart labels rows with.
func GrowthRates(subjectCol string, records []trend.Record) Table {
	t := Table{Columns: []string{subjectCol, "Growth Rate", "Total Posts", "R-Squared", "Growth Summary"}}
	for _, r := range records {
		t.Rows = append(t.Rows, []string{
			r.Subject,
			strconv.FormatFloat(r.GrowthRate, 'f', 2, 64),
			strconv.Itoa(r.TotalPosts),
			strconv.FormatFloat(r.RSquared, 'f', 3, 64),
			trend.Classify(r.GrowthRate),
		})
	}
	return t
}

// Overview renders the six headline metrics with display formatting.
func Overview(accounts []model.Account) Table {
	t := Table{Columns: []string{"Metric", "Value"}}
	t.Rows = [][]string{
		{"Total Brands", strconv.Itoa(metrics.TotalAccounts(accounts))},
		{"Total Countries", strconv.Itoa(metrics.TotalCountries(accounts))},
		{"Total Volume", metrics.FormatNumber(metrics.TotalPosts(accounts))},
		{"Total Engagements", metrics.FormatNumber(metrics.TotalEngagements(accounts))},
		{"Avg Post Engagement", metrics.FormatNumber(metrics.AvgPostEngagement(accounts))},
		{"Estimated Reach", metrics.FormatNumber(metrics.EstimatedReach(accounts))},
	}
	return t
}

// InterestAverages renders mean search interest per subject.
func InterestAverages(subjectCol string, averages []interest.Average) Table {
	t := Table{Columns: []string{subjectCol, "Average Interest"}}
	for _, a := range averages {
		t.Rows = append(t.Rows, []string{a.Subject, formatFloat(a.Value)})
	}
	return t
}

// InterestGrowth renders search-interest growth entries.
func InterestGrowth(subjectCol string, entries []interest.GrowthEntry) Table {
	t := Table{Columns: []string{subjectCol, "Growth"}}
	for _, e := range entries {
		t.Rows = append(t.Rows, []string{e.Subject, formatFloat(e.Growth)})
	}
	return t
}

// InterestTrend renders a per-date interest series.
func InterestTrend(subjectCol string, points []interest.TrendPoint) Table {
	t := Table{Columns: []string{subjectCol, "Date", "Interest"}}
	for _, p := range points {
		t.Rows = append(t.Rows, []string{p.Subject, p.Date.Format(interest.DateLayout), formatFloat(p.Value)})
	}
	return t
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
