package model

import (
	"encoding/json"
	"testing"
)

func TestPostEngagement(t *testing.T) {
	p := Post{Likes: 10, Comments: 3, VideoViews: 100}
	if got := p.Engagement(); got != 113 {
		t.Fatalf("Engagement() = %d, want 113", got)
	}

	var zero Post
	if got := zero.Engagement(); got != 0 {
		t.Fatalf("zero post Engagement() = %d, want 0", got)
	}
}

func TestPostTextBlob(t *testing.T) {
	p := Post{
		Caption:  "New SOLAR Panels installed",
		Hashtags: []string{"GreenLiving", "EcoFriendly"},
	}
	got := p.TextBlob()
	want := "new solar panels installed greenliving ecofriendly"
	if got != want {
		t.Fatalf("TextBlob() = %q, want %q", got, want)
	}
}

func TestPostTextBlobEmpty(t *testing.T) {
	var p Post
	if got := p.TextBlob(); got != "" {
		t.Fatalf("empty TextBlob() = %q, want empty", got)
	}
}

func TestParseUploadDate(t *testing.T) {
	tests := []struct {
		date string
		ok   bool
	}{
		{"2024-03-15", true},
		{"2024-3-15", false},
		{"15-03-2024", false},
		{"not-a-date", false},
		{"", false},
	}
	for _, tt := range tests {
		p := Post{UploadDate: tt.date}
		ts, ok := p.ParseUploadDate()
		if ok != tt.ok {
			t.Errorf("ParseUploadDate(%q) ok = %v, want %v", tt.date, ok, tt.ok)
		}
		if ok && ts.Format("2006-01-02") != tt.date {
			t.Errorf("ParseUploadDate(%q) round-trip = %s", tt.date, ts.Format("2006-01-02"))
		}
	}
}

func TestMonthKey(t *testing.T) {
	p := Post{UploadDate: "2024-03-15"}
	key, ok := p.MonthKey()
	if !ok || key != "2024-03" {
		t.Fatalf("MonthKey() = %q, %v; want 2024-03, true", key, ok)
	}

	bad := Post{UploadDate: "garbage"}
	if _, ok := bad.MonthKey(); ok {
		t.Fatal("MonthKey() ok for malformed date, want false")
	}
}

func TestMonthStart(t *testing.T) {
	ts, ok := MonthStart("2024-03")
	if !ok {
		t.Fatal("MonthStart(2024-03) not ok")
	}
	if ts.Year() != 2024 || ts.Month() != 3 || ts.Day() != 1 {
		t.Fatalf("MonthStart(2024-03) = %v", ts)
	}
	if _, ok := MonthStart("2024-13"); ok {
		t.Fatal("MonthStart(2024-13) ok, want false")
	}
}

func TestAccountJSONShape(t *testing.T) {
	raw := `{
		"username": "brandA",
		"full_name": "Brand A",
		"followers": 1000,
		"following": 50,
		"country": "UAE",
		"external_url": "https://brand-a.example",
		"posts": [{
			"caption": "Solar panels on every roof",
			"hashtags": ["green"],
			"upload_date": "2024-01-10",
			"number_of_likes": 5,
			"number_of_comments": 1,
			"video_view_count": 20,
			"url": "https://example.com/p/1"
		}]
	}`
	var a Account
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a.Username != "brandA" || a.Followers != 1000 || a.Country != "UAE" {
		t.Fatalf("account fields wrong: %+v", a)
	}
	if len(a.Posts) != 1 {
		t.Fatalf("posts = %d, want 1", len(a.Posts))
	}
	p := a.Posts[0]
	if p.Likes != 5 || p.Comments != 1 || p.VideoViews != 20 {
		t.Fatalf("post numeric fields wrong: %+v", p)
	}
	if p.UploadDate != "2024-01-10" {
		t.Fatalf("upload date = %q", p.UploadDate)
	}
}
