package classify

import (
	"testing"

	"github.com/thesixthai/brandpulse/internal/model"
	"github.com/thesixthai/brandpulse/internal/taxonomy"
)

func testClassifier(t *testing.T) *Classifier {
	t.Helper()
	tax, err := taxonomy.New([]taxonomy.Theme{
		{Name: "Sustainability", Keywords: []string{"Solar panels", "Green Building"}},
		{Name: "Views", Keywords: []string{"Lake view", "City skyline"}},
		{Name: "Safety", Keywords: []string{"Gated community"}},
	})
	if err != nil {
		t.Fatalf("taxonomy: %v", err)
	}
	return New(tax, 0)
}

func post(caption, date string) model.Post {
	return model.Post{Caption: caption, UploadDate: date}
}

func account(name string, posts ...model.Post) model.Account {
	return model.Account{Username: name, Posts: posts}
}

func TestThemesFor(t *testing.T) {
	c := testClassifier(t)

	p := post("New SOLAR PANELS and a lake view from the balcony", "2024-01-10")
	themes := c.ThemesFor(p)
	if len(themes) != 2 || themes[0] != "Sustainability" || themes[1] != "Views" {
		t.Fatalf("ThemesFor = %v, want [Sustainability Views] in taxonomy order", themes)
	}

	if themes := c.ThemesFor(post("nothing relevant here", "")); themes != nil {
		t.Fatalf("ThemesFor(unmatched) = %v, want nil", themes)
	}
}

func TestThemesForCaseInsensitive(t *testing.T) {
	c := testClassifier(t)
	themes := c.ThemesFor(model.Post{Caption: "gated COMMUNITY living", Hashtags: []string{"Dubai"}})
	if len(themes) != 1 || themes[0] != "Safety" {
		t.Fatalf("ThemesFor = %v, want [Safety]", themes)
	}
}

func TestThemesForHashtagOnlyMatch(t *testing.T) {
	c := testClassifier(t)
	p := model.Post{Caption: "grand opening", Hashtags: []string{"solar panels"}}
	themes := c.ThemesFor(p)
	if len(themes) != 1 || themes[0] != "Sustainability" {
		t.Fatalf("ThemesFor = %v, want hashtag text to count", themes)
	}
}

func TestKeywordsFor(t *testing.T) {
	c := testClassifier(t)
	p := post("Solar panels beside the lake view suites", "")
	kws := c.KeywordsFor(p)
	if len(kws) != 2 || kws[0] != "Solar panels" || kws[1] != "Lake view" {
		t.Fatalf("KeywordsFor = %v", kws)
	}
}

func TestNoSubstringNoMatch(t *testing.T) {
	// "solar energy" is close to "Solar panels" for a fuzzy scorer, but
	// without substring containment it must not count.
	c := testClassifier(t)
	if themes := c.ThemesFor(post("solar energy everywhere", "")); themes != nil {
		t.Fatalf("ThemesFor = %v, want nil without substring containment", themes)
	}
}

func TestThemeCountsOrder(t *testing.T) {
	c := testClassifier(t)
	accounts := []model.Account{
		account("a",
			post("lake view", "2024-01-01"),
			post("solar panels", "2024-01-02"),
			post("lake view again", "2024-01-03"),
		),
	}
	counts := c.ThemeCounts(accounts)
	if len(counts) != 2 {
		t.Fatalf("ThemeCounts = %+v, want 2 themes", counts)
	}
	// First-increment order: Views was seen first.
	if counts[0].Subject != "Views" || counts[0].Posts != 2 {
		t.Fatalf("counts[0] = %+v, want Views/2", counts[0])
	}
	if counts[1].Subject != "Sustainability" || counts[1].Posts != 1 {
		t.Fatalf("counts[1] = %+v, want Sustainability/1", counts[1])
	}
}

func TestTopThemes(t *testing.T) {
	c := testClassifier(t)
	accounts := []model.Account{
		account("a",
			post("lake view", ""),
			post("solar panels", ""),
			post("solar panels again", ""),
			post("gated community", ""),
		),
	}

	top := c.TopThemes(accounts, 2)
	if len(top) != 2 {
		t.Fatalf("TopThemes = %+v, want 2", top)
	}
	if top[0].Subject != "Sustainability" || top[0].Posts != 2 {
		t.Fatalf("top[0] = %+v", top[0])
	}
	// Views and Safety tie at 1; Views incremented first and must win.
	if top[1].Subject != "Views" {
		t.Fatalf("top[1] = %+v, want Views on stable tie-break", top[1])
	}
}

func TestTopKeywords(t *testing.T) {
	c := testClassifier(t)
	accounts := []model.Account{
		account("a",
			post("solar panels and lake view", ""),
			post("lake view", ""),
		),
	}
	top := c.TopKeywords(accounts, 0)
	if len(top) != 2 {
		t.Fatalf("TopKeywords = %+v", top)
	}
	if top[0].Subject != "Lake view" || top[0].Posts != 2 {
		t.Fatalf("top[0] = %+v, want Lake view/2", top[0])
	}
}

func TestThemeMonthly(t *testing.T) {
	c := testClassifier(t)
	accounts := []model.Account{
		account("a",
			post("solar panels", "2024-01-05"),
			post("solar panels", "2024-03-09"),
			post("solar panels undated", ""),
			post("lake view", "2024-01-20"),
		),
	}

	table := c.ThemeMonthly(accounts, nil)
	subjects := table.Subjects()
	if len(subjects) != 2 {
		t.Fatalf("subjects = %v", subjects)
	}

	months := table.ActiveMonths("Sustainability")
	if len(months) != 2 || months[0] != "2024-01" || months[1] != "2024-03" {
		t.Fatalf("Sustainability months = %v", months)
	}
	if got := table.Counts("Sustainability")["2024-01"]; got != 1 {
		t.Fatalf("2024-01 count = %d, want 1 (undated post must not count)", got)
	}
}

func TestThemeMonthlySubjectRestriction(t *testing.T) {
	c := testClassifier(t)
	accounts := []model.Account{
		account("a",
			post("solar panels", "2024-01-05"),
			post("lake view", "2024-01-20"),
		),
	}
	table := c.ThemeMonthly(accounts, []string{"Views"})
	subjects := table.Subjects()
	if len(subjects) != 1 || subjects[0] != "Views" {
		t.Fatalf("restricted subjects = %v, want [Views]", subjects)
	}
}

func TestThresholdDefaulting(t *testing.T) {
	tax, err := taxonomy.New([]taxonomy.Theme{{Name: "X", Keywords: []string{"y"}}})
	if err != nil {
		t.Fatalf("taxonomy: %v", err)
	}
	if got := New(tax, 0).Threshold(); got != DefaultThreshold {
		t.Fatalf("Threshold() = %d, want %d", got, DefaultThreshold)
	}
	if got := New(tax, 80).Threshold(); got != 80 {
		t.Fatalf("Threshold() = %d, want 80", got)
	}
}
