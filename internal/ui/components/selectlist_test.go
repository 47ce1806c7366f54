package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func typeString(t *testing.T, s SelectList, text string) SelectList {
	t.Helper()
	for _, r := range text {
		s, _ = s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return s
}

func TestSelectList_InitFocusesFilter(t *testing.T) {
	s := NewSelectList("University", []string{"University of Lagos (UNILAG)"})
	s.Init()

	s, _ = s.Update(tea.KeyPressMsg{Code: 'l', Text: "l"})

	if got := s.filter.Value(); got != "l" {
		t.Fatalf("typed text dropped: filter value = %q, want %q", got, "l")
	}
}

func TestSelectList_FiltersBySubstring(t *testing.T) {
	s := NewSelectList("University", []string{
		"University of Lagos (UNILAG)",
		"University of Ibadan (UI)",
		"Covenant University",
	})
	s.Init()

	s = typeString(t, s, "lag")

	if len(s.filtered) != 1 {
		t.Fatalf("expected 1 match for 'lag', got %d", len(s.filtered))
	}
	if s.filtered[0] != "University of Lagos (UNILAG)" {
		t.Fatalf("wrong match: %q", s.filtered[0])
	}
}

func TestSelectList_EnterPicksHighlighted(t *testing.T) {
	s := NewSelectList("Course", []string{"Law", "Computer Science", "Medicine & Surgery"})
	s.Init()

	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if s.Value() != "Computer Science" {
		t.Fatalf("expected Computer Science, got %q", s.Value())
	}
}

func TestSelectList_SelectionClampedAfterFilter(t *testing.T) {
	s := NewSelectList("Course", []string{"Law", "Computer Science", "Medicine & Surgery"})
	s.Init()

	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s = typeString(t, s, "law")

	if s.Selected != 0 {
		t.Fatalf("selection should clamp to the filtered list, got %d", s.Selected)
	}
	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.Value() != "Law" {
		t.Fatalf("expected Law, got %q", s.Value())
	}
}

func TestSelectList_Reset(t *testing.T) {
	s := NewSelectList("Course", []string{"Law", "Computer Science"})
	s.Init()
	s = typeString(t, s, "comp")
	s, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	s.Reset()

	if s.Value() != "" {
		t.Fatalf("reset should clear the choice, got %q", s.Value())
	}
	if len(s.filtered) != 2 {
		t.Fatalf("reset should restore all options, got %d", len(s.filtered))
	}
}
