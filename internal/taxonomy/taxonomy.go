// Package taxonomy holds the theme → keyword-phrase mapping that drives
// both the filter engine and the text classifier.
//
// The taxonomy is an explicit, immutable value constructed once at
// process start (built-in default or YAML file) and passed into every
// classifier and filter call. Iteration order matters: derived tables
// break ties by first-seen order, so themes and keywords keep their
// declaration order.
package taxonomy

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme is one named content category and its ordered keyword phrases.
type Theme struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Taxonomy is an ordered set of themes. Keyword matching against it is
// always case-insensitive; a keyword is assumed to belong to exactly
// one theme (not enforced).
type Taxonomy struct {
	themes []Theme
}

// New builds a taxonomy from an ordered theme list. Themes with empty
// names or no keywords are rejected.
func New(themes []Theme) (*Taxonomy, error) {
	if len(themes) == 0 {
		return nil, fmt.Errorf("taxonomy has no themes")
	}
	seen := make(map[string]bool, len(themes))
	for _, th := range themes {
		name := strings.TrimSpace(th.Name)
		if name == "" {
			return nil, fmt.Errorf("taxonomy theme with empty name")
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate theme %q", name)
		}
		seen[name] = true
		if len(th.Keywords) == 0 {
			return nil, fmt.Errorf("theme %q has no keywords", name)
		}
	}
	cp := make([]Theme, len(themes))
	for i, th := range themes {
		cp[i] = Theme{Name: th.Name, Keywords: append([]string(nil), th.Keywords...)}
	}
	return &Taxonomy{themes: cp}, nil
}

// LoadFile reads a taxonomy from a YAML file of the form:
//
//	themes:
//	  - name: Sustainability
//	    keywords: [Solar panels, Green Building]
func LoadFile(path string) (*Taxonomy, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var doc struct {
		Themes []Theme `yaml:"themes"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	t, err := New(doc.Themes)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return t, nil
}

// Themes returns theme names in declaration order.
func (t *Taxonomy) Themes() []string {
	names := make([]string, len(t.themes))
	for i, th := range t.themes {
		names[i] = th.Name
	}
	return names
}

// Keywords returns the keyword phrases for one theme, or nil if the
// theme is unknown.
func (t *Taxonomy) Keywords(theme string) []string {
	for _, th := range t.themes {
		if th.Name == theme {
			return append([]string(nil), th.Keywords...)
		}
	}
	return nil
}

// AllKeywords returns every keyword phrase, flattened in theme order.
func (t *Taxonomy) AllKeywords() []string {
	var all []string
	for _, th := range t.themes {
		all = append(all, th.Keywords...)
	}
	return all
}

// Walk calls fn for each theme in declaration order.
func (t *Taxonomy) Walk(fn func(name string, keywords []string)) {
	for _, th := range t.themes {
		fn(th.Name, th.Keywords)
	}
}

// Len returns the number of themes.
func (t *Taxonomy) Len() int { return len(t.themes) }
