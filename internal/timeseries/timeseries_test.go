package timeseries

import (
	"testing"

	"github.com/thesixthai/brandpulse/internal/model"
)

func TestPostTrend(t *testing.T) {
	accounts := []model.Account{
		{Username: "a", Posts: []model.Post{
			{UploadDate: "2024-03-10"},
			{UploadDate: "2024-01-05"},
			{UploadDate: "2024-01-20"},
			{UploadDate: ""},          // undated, excluded
			{UploadDate: "03/10/24"},  // malformed, excluded
		}},
		{Username: "b", Posts: []model.Post{
			{UploadDate: "2024-03-02"},
		}},
	}

	series := PostTrend(accounts)
	if len(series) != 2 {
		t.Fatalf("series = %+v, want 2 months", series)
	}
	if series[0].Key != "2024-01" || series[0].Value != 2 {
		t.Fatalf("series[0] = %+v, want 2024-01/2", series[0])
	}
	if series[1].Key != "2024-03" || series[1].Value != 2 {
		t.Fatalf("series[1] = %+v, want 2024-03/2", series[1])
	}
	if !series[0].Month.Before(series[1].Month) {
		t.Fatal("series not chronological")
	}
}

func TestPostTrendEmpty(t *testing.T) {
	if got := PostTrend(nil); len(got) != 0 {
		t.Fatalf("PostTrend(nil) = %+v, want empty", got)
	}
	undated := []model.Account{{Username: "a", Posts: []model.Post{{Caption: "x"}}}}
	if got := PostTrend(undated); len(got) != 0 {
		t.Fatalf("PostTrend(undated only) = %+v, want empty", got)
	}
}

func TestEngagementTrend(t *testing.T) {
	accounts := []model.Account{
		{Username: "a", Posts: []model.Post{
			{UploadDate: "2024-01-05", Likes: 10, Comments: 2},
			{UploadDate: "2024-01-20", VideoViews: 30},
			{UploadDate: "2024-02-01", Likes: 1},
		}},
	}
	series := EngagementTrend(accounts)
	if len(series) != 2 {
		t.Fatalf("series = %+v", series)
	}
	if series[0].Value != 42 {
		t.Fatalf("2024-01 engagement = %d, want 42", series[0].Value)
	}
	if series[1].Value != 1 {
		t.Fatalf("2024-02 engagement = %d, want 1", series[1].Value)
	}
}

func TestSubjectMonthly(t *testing.T) {
	table := NewSubjectMonthly()
	table.Add("Views", "2024-02")
	table.Add("Sustainability", "2024-01")
	table.Add("Views", "2024-02")
	table.Add("Views", "2024-01")

	subjects := table.Subjects()
	if len(subjects) != 2 || subjects[0] != "Views" || subjects[1] != "Sustainability" {
		t.Fatalf("Subjects() = %v, want first-increment order", subjects)
	}

	counts := table.Counts("Views")
	if counts["2024-02"] != 2 || counts["2024-01"] != 1 {
		t.Fatalf("Counts(Views) = %v", counts)
	}

	months := table.ActiveMonths("Views")
	if len(months) != 2 || months[0] != "2024-01" || months[1] != "2024-02" {
		t.Fatalf("ActiveMonths(Views) = %v, want chronological", months)
	}

	if table.Counts("missing") != nil {
		t.Fatal("Counts(missing) != nil")
	}
	if months := table.ActiveMonths("missing"); len(months) != 0 {
		t.Fatalf("ActiveMonths(missing) = %v", months)
	}
}

func TestSubjectMonthlyCountsCopy(t *testing.T) {
	table := NewSubjectMonthly()
	table.Add("Views", "2024-01")
	counts := table.Counts("Views")
	counts["2024-01"] = 99
	if table.Counts("Views")["2024-01"] != 1 {
		t.Fatal("Counts() must return a copy")
	}
}

func TestRows(t *testing.T) {
	table := NewSubjectMonthly()
	table.Add("Views", "2024-02")
	table.Add("Sustainability", "2024-01")
	table.Add("Sustainability", "2024-02")

	rows := table.Rows(nil)
	if len(rows) != 3 {
		t.Fatalf("rows = %+v", rows)
	}
	if rows[0].Subject != "Sustainability" || rows[0].Key != "2024-01" {
		t.Fatalf("rows[0] = %+v, want Sustainability 2024-01", rows[0])
	}
	// Within 2024-02, Views comes first because it entered the table
	// first and the month sort is stable.
	if rows[1].Subject != "Views" || rows[2].Subject != "Sustainability" {
		t.Fatalf("2024-02 rows out of order: %+v", rows[1:])
	}

	only := table.Rows([]string{"Views"})
	if len(only) != 1 || only[0].Subject != "Views" {
		t.Fatalf("Rows([Views]) = %+v", only)
	}
}
