// Package classify tags posts with taxonomy themes and keywords using
// fuzzy text matching, and builds the frequency and monthly count
// tables the dashboard's ranking and trend views consume.
//
// A keyword counts as present when it occurs as a case-insensitive
// substring of the post's text blob AND its partial-ratio score
// against the blob clears the threshold. The substring check almost
// always implies a passing score; both checks are kept for behavioral
// parity with the scoring the thresholds were tuned against.
package classify

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/thesixthai/brandpulse/internal/model"
	"github.com/thesixthai/brandpulse/internal/taxonomy"
	"github.com/thesixthai/brandpulse/internal/timeseries"
)

// DefaultThreshold is the default partial-ratio cutoff (0–100 scale).
const DefaultThreshold = 60

// Classifier matches post text against a taxonomy.
type Classifier struct {
	tax       *taxonomy.Taxonomy
	threshold int
}

// New returns a classifier for the taxonomy. A non-positive threshold
// falls back to DefaultThreshold.
func New(tax *taxonomy.Taxonomy, threshold int) *Classifier {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Classifier{tax: tax, threshold: threshold}
}

// Threshold returns the active partial-ratio cutoff.
func (c *Classifier) Threshold() int { return c.threshold }

// Taxonomy returns the taxonomy the classifier matches against.
func (c *Classifier) Taxonomy() *taxonomy.Taxonomy { return c.tax }

// keywordHit reports whether one keyword is present in the blob under
// the substring + partial-ratio rule.
func (c *Classifier) keywordHit(keyword, blob string) bool {
	kw := strings.ToLower(keyword)
	if !strings.Contains(blob, kw) {
		return false
	}
	return fuzzy.PartialRatio(kw, blob) >= c.threshold
}

// ThemesFor returns the themes a post maps to, in taxonomy order. A
// post may map to several themes, or none.
func (c *Classifier) ThemesFor(p model.Post) []string {
	blob := p.TextBlob()
	var themes []string
	c.tax.Walk(func(name string, keywords []string) {
		for _, kw := range keywords {
			if c.keywordHit(kw, blob) {
				themes = append(themes, name)
				return
			}
		}
	})
	return themes
}

// KeywordsFor returns every taxonomy keyword present in the post, in
// taxonomy order.
func (c *Classifier) KeywordsFor(p model.Post) []string {
	blob := p.TextBlob()
	var hits []string
	for _, kw := range c.tax.AllKeywords() {
		if c.keywordHit(kw, blob) {
			hits = append(hits, kw)
		}
	}
	return hits
}

// Count is one subject's post count.
type Count struct {
	Subject string `json:"subject"`
	Posts   int    `json:"posts"`
}

// counter accumulates counts preserving first-increment order.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (ctr *counter) add(subject string) {
	if _, ok := ctr.counts[subject]; !ok {
		ctr.order = append(ctr.order, subject)
	}
	ctr.counts[subject]++
}

// items returns counts in first-increment order.
func (ctr *counter) items() []Count {
	out := make([]Count, 0, len(ctr.order))
	for _, s := range ctr.order {
		out = append(out, Count{Subject: s, Posts: ctr.counts[s]})
	}
	return out
}

// mostCommon returns the top n counts, descending, ties broken by
// first-increment order (stable). n <= 0 means all.
func (ctr *counter) mostCommon(n int) []Count {
	out := ctr.items()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Posts > out[j].Posts })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// ThemeCounts counts posts per theme over the snapshot, in
// first-increment order (the distribution-table ordering).
func (c *Classifier) ThemeCounts(accounts []model.Account) []Count {
	ctr := newCounter()
	c.eachPost(accounts, func(p model.Post, blob string) {
		c.tax.Walk(func(name string, keywords []string) {
			for _, kw := range keywords {
				if c.keywordHit(kw, blob) {
					ctr.add(name)
					return
				}
			}
		})
	})
	return ctr.items()
}

// TopThemes returns the n most frequent themes.
func (c *Classifier) TopThemes(accounts []model.Account, n int) []Count {
	ctr := newCounter()
	c.eachPost(accounts, func(p model.Post, blob string) {
		c.tax.Walk(func(name string, keywords []string) {
			for _, kw := range keywords {
				if c.keywordHit(kw, blob) {
					ctr.add(name)
					return
				}
			}
		})
	})
	return ctr.mostCommon(n)
}

// KeywordCounts counts posts per keyword, in first-increment order.
func (c *Classifier) KeywordCounts(accounts []model.Account) []Count {
	ctr := newCounter()
	all := c.tax.AllKeywords()
	c.eachPost(accounts, func(p model.Post, blob string) {
		for _, kw := range all {
			if c.keywordHit(kw, blob) {
				ctr.add(kw)
			}
		}
	})
	return ctr.items()
}

// TopKeywords returns the n most frequent keywords.
func (c *Classifier) TopKeywords(accounts []model.Account, n int) []Count {
	ctr := newCounter()
	all := c.tax.AllKeywords()
	c.eachPost(accounts, func(p model.Post, blob string) {
		for _, kw := range all {
			if c.keywordHit(kw, blob) {
				ctr.add(kw)
			}
		}
	})
	return ctr.mostCommon(n)
}

// ThemeMonthly builds the month × theme count table. When subjects is
// non-nil only those themes are counted (the trend-over-time view for
// a chosen top set); posts without parseable dates are skipped.
func (c *Classifier) ThemeMonthly(accounts []model.Account, subjects []string) *timeseries.SubjectMonthly {
	selected := subjectSet(subjects)
	table := timeseries.NewSubjectMonthly()
	c.eachPost(accounts, func(p model.Post, blob string) {
		key, ok := p.MonthKey()
		if !ok {
			return
		}
		c.tax.Walk(func(name string, keywords []string) {
			if selected != nil && !selected[name] {
				return
			}
			for _, kw := range keywords {
				if c.keywordHit(kw, blob) {
					table.Add(name, key)
					return
				}
			}
		})
	})
	return table
}

// KeywordMonthly builds the month × keyword count table, optionally
// restricted to the given keywords.
func (c *Classifier) KeywordMonthly(accounts []model.Account, subjects []string) *timeseries.SubjectMonthly {
	selected := subjectSet(subjects)
	table := timeseries.NewSubjectMonthly()
	all := c.tax.AllKeywords()
	c.eachPost(accounts, func(p model.Post, blob string) {
		key, ok := p.MonthKey()
		if !ok {
			return
		}
		for _, kw := range all {
			if selected != nil && !selected[kw] {
				continue
			}
			if c.keywordHit(kw, blob) {
				table.Add(kw, key)
			}
		}
	})
	return table
}

func (c *Classifier) eachPost(accounts []model.Account, fn func(p model.Post, blob string)) {
	for _, a := range accounts {
		for _, p := range a.Posts {
			fn(p, p.TextBlob())
		}
	}
}

func subjectSet(subjects []string) map[string]bool {
	if subjects == nil {
		return nil
	}
	set := make(map[string]bool, len(subjects))
	for _, s := range subjects {
		set[s] = true
	}
	return set
}
