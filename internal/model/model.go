// Package model defines the snapshot data types the analytics engine
// operates on: brand accounts and their posts, as ingested from an
// external JSON source or the sqlite snapshot store.
//
// A snapshot is treated as immutable for the duration of a dashboard
// session. Every engine computation is a pure function over a snapshot
// (usually a filtered view of one), so all types here are plain values
// with no behavior that mutates shared state.
package model

import (
	"strings"
	"time"
)

// UploadDateLayout is the only accepted upload date format. Anything
// else counts as malformed and is excluded from date-bucketed results.
const UploadDateLayout = "2006-01-02"

// Account is one brand account with its scraped posts.
type Account struct {
	Username    string `json:"username"`
	FullName    string `json:"full_name"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	Country     string `json:"country"`
	ExternalURL string `json:"external_url"`
	Posts       []Post `json:"posts"`
}

// Post is a single social-media post. Numeric fields default to zero
// when absent or null in the source; UploadDate may be empty or
// malformed and is validated lazily via ParseUploadDate.
type Post struct {
	Caption    string   `json:"caption"`
	Hashtags   []string `json:"hashtags"`
	UploadDate string   `json:"upload_date"`
	Likes      int      `json:"number_of_likes"`
	Comments   int      `json:"number_of_comments"`
	VideoViews int      `json:"video_view_count"`
	URL        string   `json:"url"`
}

// Engagement is the post's total engagement: likes + comments + views.
func (p Post) Engagement() int {
	return p.Likes + p.Comments + p.VideoViews
}

// TextBlob is the lowercase concatenation of caption and space-joined
// hashtags, the unit of text searched for keyword matches.
func (p Post) TextBlob() string {
	var sb strings.Builder
	sb.WriteString(strings.ToLower(p.Caption))
	for _, h := range p.Hashtags {
		sb.WriteByte(' ')
		sb.WriteString(strings.ToLower(h))
	}
	return sb.String()
}

// ParseUploadDate parses the post's upload date. ok is false for
// missing or malformed dates; such posts still count toward totals
// that do not require a date.
func (p Post) ParseUploadDate() (time.Time, bool) {
	if p.UploadDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(UploadDateLayout, p.UploadDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// MonthKey returns the post's calendar-month bucket ("YYYY-MM").
// ok is false when the upload date is missing or malformed.
func (p Post) MonthKey() (string, bool) {
	t, ok := p.ParseUploadDate()
	if !ok {
		return "", false
	}
	return t.Format("2006-01"), true
}

// MonthStart converts a "YYYY-MM" bucket key back to the
// first-of-month timestamp. ok is false for malformed keys.
func MonthStart(key string) (time.Time, bool) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
