// Package timeseries buckets posts and derived counts by calendar
// month. Posts without a parseable upload date are excluded from every
// series here; an input with no dated posts yields an empty,
// correctly-shaped result rather than an error.
package timeseries

import (
	"sort"
	"time"

	"github.com/thesixthai/brandpulse/internal/model"
)

// MonthPoint is one month bucket of a scalar series. Month is the
// first-of-month timestamp, Key its "YYYY-MM" form.
type MonthPoint struct {
	Month time.Time `json:"month"`
	Key   string    `json:"key"`
	Value int       `json:"value"`
}

// PostTrend returns the post-count-per-month series in chronological
// order.
func PostTrend(accounts []model.Account) []MonthPoint {
	counts := map[string]int{}
	for _, a := range accounts {
		for _, p := range a.Posts {
			if key, ok := p.MonthKey(); ok {
				counts[key]++
			}
		}
	}
	return toSeries(counts)
}

// EngagementTrend returns the engagement-sum-per-month series in
// chronological order.
func EngagementTrend(accounts []model.Account) []MonthPoint {
	sums := map[string]int{}
	for _, a := range accounts {
		for _, p := range a.Posts {
			if key, ok := p.MonthKey(); ok {
				sums[key] += p.Engagement()
			}
		}
	}
	return toSeries(sums)
}

func toSeries(byMonth map[string]int) []MonthPoint {
	series := make([]MonthPoint, 0, len(byMonth))
	for key, v := range byMonth {
		month, ok := model.MonthStart(key)
		if !ok {
			continue
		}
		series = append(series, MonthPoint{Month: month, Key: key, Value: v})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Month.Before(series[j].Month) })
	return series
}

// SubjectMonthly is a month × subject count table. Subjects keep their
// first-increment order, which downstream rankings use for stable
// tie-breaks.
type SubjectMonthly struct {
	subjects []string
	counts   map[string]map[string]int
	months   map[string][]string // per-subject month keys, first-seen order
}

// NewSubjectMonthly returns an empty table.
func NewSubjectMonthly() *SubjectMonthly {
	return &SubjectMonthly{counts: map[string]map[string]int{}, months: map[string][]string{}}
}

// Add increments the count for a subject in a month bucket.
func (t *SubjectMonthly) Add(subject, monthKey string) {
	m, ok := t.counts[subject]
	if !ok {
		m = map[string]int{}
		t.counts[subject] = m
		t.subjects = append(t.subjects, subject)
	}
	if _, seen := m[monthKey]; !seen {
		t.months[subject] = append(t.months[subject], monthKey)
	}
	m[monthKey]++
}

// Subjects returns subjects in first-increment order.
func (t *SubjectMonthly) Subjects() []string {
	return append([]string(nil), t.subjects...)
}

// Counts returns the per-month counts for one subject (nil when the
// subject never appeared).
func (t *SubjectMonthly) Counts(subject string) map[string]int {
	m, ok := t.counts[subject]
	if !ok {
		return nil
	}
	cp := make(map[string]int, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}

// ActiveMonths returns the subject's observed month keys in
// chronological order. Gaps between them are simply absent.
func (t *SubjectMonthly) ActiveMonths(subject string) []string {
	keys := append([]string(nil), t.months[subject]...)
	sort.Strings(keys)
	return keys
}

// Row is one (subject, month, count) cell of a flattened table.
type Row struct {
	Subject string    `json:"subject"`
	Month   time.Time `json:"month"`
	Key     string    `json:"month_key"`
	Count   int       `json:"count"`
}

// Rows flattens the table for the given subjects (all subjects when
// nil), sorted by month with the incoming subject order preserved
// within a month.
func (t *SubjectMonthly) Rows(subjects []string) []Row {
	if subjects == nil {
		subjects = t.subjects
	}
	var rows []Row
	for _, subject := range subjects {
		for _, key := range t.months[subject] {
			month, ok := model.MonthStart(key)
			if !ok {
				continue
			}
			rows = append(rows, Row{Subject: subject, Month: month, Key: key, Count: t.counts[subject][key]})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Month.Before(rows[j].Month) })
	return rows
}
