// Package filter applies a multi-dimensional filter specification to a
// snapshot of brand accounts, producing the filtered view every other
// engine computation consumes.
//
// Account-level dimensions (accounts, countries) drop whole accounts;
// post-level dimensions (date range, themes, keywords) drop individual
// posts, and an account survives only if at least one of its posts
// passes. Theme matching here is plain case-insensitive substring
// containment — the fuzzy variant lives in the classify package and is
// used for reporting only.
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/thesixthai/brandpulse/internal/model"
	"github.com/thesixthai/brandpulse/internal/taxonomy"
)

// Range is an inclusive date range.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range (inclusive).
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ParseRange builds a Range from "2006-01-02" strings. An empty from
// or to leaves that bound open (clamped to the zero time or far
// future respectively).
func ParseRange(from, to string) (Range, error) {
	var r Range
	if from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return Range{}, fmt.Errorf("parsing start date %q: %w", from, err)
		}
		r.Start = t
	}
	if to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return Range{}, fmt.Errorf("parsing end date %q: %w", to, err)
		}
		r.End = t
	} else {
		r.End = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	}
	if r.End.Before(r.Start) {
		return Range{}, fmt.Errorf("end date %s before start date %s", to, from)
	}
	return r, nil
}

// Spec is a filter specification. Empty fields mean "no constraint on
// this dimension"; a nil DateRange means no date constraint.
type Spec struct {
	Themes    []string
	Keywords  []string
	Accounts  []string
	Countries []string
	DateRange *Range
}

// IsEmpty reports whether the spec constrains nothing.
func (s Spec) IsEmpty() bool {
	return len(s.Themes) == 0 && len(s.Keywords) == 0 && len(s.Accounts) == 0 &&
		len(s.Countries) == 0 && s.DateRange == nil
}

// Apply filters the snapshot by spec. An entirely empty spec returns
// the input unchanged. The input is never mutated; retained accounts
// are copies carrying only their passing posts.
func Apply(accounts []model.Account, spec Spec, tax *taxonomy.Taxonomy) []model.Account {
	if spec.IsEmpty() {
		return accounts
	}

	selectedAccounts := toSet(spec.Accounts)
	selectedCountries := toSet(spec.Countries)
	selectedThemes := toSet(spec.Themes)

	var out []model.Account
	for _, a := range accounts {
		if len(selectedAccounts) > 0 && !selectedAccounts[a.Username] {
			continue
		}
		if len(selectedCountries) > 0 && !selectedCountries[a.Country] {
			continue
		}

		var kept []model.Post
		for _, p := range a.Posts {
			if !dateMatch(p, spec.DateRange) {
				continue
			}
			blob := p.TextBlob()
			if !themeMatch(blob, selectedThemes, tax) {
				continue
			}
			if !keywordMatch(blob, spec.Keywords) {
				continue
			}
			kept = append(kept, p)
		}

		if len(kept) > 0 {
			filtered := a
			filtered.Posts = kept
			out = append(out, filtered)
		}
	}
	return out
}

// dateMatch applies the date-range predicate. With an active range, a
// post with a missing or malformed upload date fails; with no range,
// everything passes.
func dateMatch(p model.Post, r *Range) bool {
	if r == nil {
		return true
	}
	t, ok := p.ParseUploadDate()
	if !ok {
		return false
	}
	return r.Contains(t)
}

// themeMatch applies the theme predicate. A post matching no theme at
// all passes; ungrouped content is deliberately not excluded. This
// asymmetry with the keyword predicate is preserved behavior, not an
// oversight to fix here.
func themeMatch(blob string, selected map[string]bool, tax *taxonomy.Taxonomy) bool {
	if len(selected) == 0 {
		return true
	}

	matched := false
	pass := false
	tax.Walk(func(name string, keywords []string) {
		if pass {
			return
		}
		for _, kw := range keywords {
			if strings.Contains(blob, strings.ToLower(kw)) {
				matched = true
				if selected[name] {
					pass = true
				}
				break
			}
		}
	})

	if !matched {
		return true
	}
	return pass
}

// keywordMatch passes when any selected keyword is a case-insensitive
// substring of the text blob. No selection means pass.
func keywordMatch(blob string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	for _, kw := range keywords {
		if strings.Contains(blob, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// DateSpan returns the earliest and latest valid upload dates in the
// snapshot. ok is false when no post has a parseable date; callers use
// the span to compute the default "full range" filter.
func DateSpan(accounts []model.Account) (min, max time.Time, ok bool) {
	for _, a := range accounts {
		for _, p := range a.Posts {
			t, valid := p.ParseUploadDate()
			if !valid {
				continue
			}
			if !ok || t.Before(min) {
				min = t
			}
			if !ok || t.After(max) {
				max = t
			}
			ok = true
		}
	}
	return min, max, ok
}

func toSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}
