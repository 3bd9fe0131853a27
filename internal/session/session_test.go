package session

import (
	"testing"

	"github.com/thesixthai/brandpulse/internal/filter"
)

func defaults() filter.Spec {
	r, _ := filter.ParseRange("2024-01-01", "2024-12-31")
	return filter.Spec{DateRange: &r}
}

func TestCreateAndGet(t *testing.T) {
	m := NewManager()
	s := m.Create(defaults())
	if s.ID == "" {
		t.Fatal("session ID empty")
	}
	if s.Draft.DateRange == nil || s.Applied.DateRange == nil {
		t.Fatal("defaults not applied to both stages")
	}

	got, err := m.Get(s.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != s.ID {
		t.Fatalf("Get returned %s, want %s", got.ID, s.ID)
	}

	if _, err := m.Get("nope"); err == nil {
		t.Fatal("Get(unknown) error = nil")
	}
}

func TestDraftDoesNotTouchApplied(t *testing.T) {
	m := NewManager()
	s := m.Create(defaults())

	draft := s.Draft
	draft.Countries = []string{"UAE"}
	s2, err := m.UpdateDraft(s.ID, draft)
	if err != nil {
		t.Fatalf("UpdateDraft: %v", err)
	}

	if len(s2.Draft.Countries) != 1 {
		t.Fatal("draft update lost")
	}
	if len(s2.Applied.Countries) != 0 {
		t.Fatal("draft update leaked into applied spec before Apply")
	}
}

func TestApplyCommitsDraft(t *testing.T) {
	m := NewManager()
	s := m.Create(defaults())

	draft := s.Draft
	draft.Themes = []string{"Sustainability"}
	if _, err := m.UpdateDraft(s.ID, draft); err != nil {
		t.Fatalf("UpdateDraft: %v", err)
	}

	s2, err := m.Apply(s.ID)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(s2.Applied.Themes) != 1 || s2.Applied.Themes[0] != "Sustainability" {
		t.Fatalf("applied spec = %+v, want committed draft", s2.Applied)
	}
}

func TestClearResetsBothStages(t *testing.T) {
	m := NewManager()
	s := m.Create(defaults())

	draft := s.Draft
	draft.Keywords = []string{"solar panels"}
	m.UpdateDraft(s.ID, draft)
	m.Apply(s.ID)

	s2, err := m.Clear(s.ID, defaults())
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if len(s2.Draft.Keywords) != 0 || len(s2.Applied.Keywords) != 0 {
		t.Fatalf("Clear left filters behind: %+v", s2)
	}
}

func TestDrop(t *testing.T) {
	m := NewManager()
	s := m.Create(defaults())
	m.Drop(s.ID)
	if _, err := m.Get(s.ID); err == nil {
		t.Fatal("dropped session still present")
	}
	m.Drop("never-existed") // no-op
}

func TestSessionsIndependent(t *testing.T) {
	m := NewManager()
	a := m.Create(defaults())
	b := m.Create(defaults())
	if a.ID == b.ID {
		t.Fatal("duplicate session IDs")
	}

	draft := a.Draft
	draft.Accounts = []string{"brandA"}
	m.UpdateDraft(a.ID, draft)
	m.Apply(a.ID)

	got, _ := m.Get(b.ID)
	if len(got.Applied.Accounts) != 0 {
		t.Fatal("session state leaked across sessions")
	}
}
