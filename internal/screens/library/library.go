// Package library shows the digital library with kind filter chips.
package library

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chidera/unipal/internal/catalog"
	"github.com/chidera/unipal/internal/screen"
	"github.com/chidera/unipal/internal/ui/layout"
	"github.com/chidera/unipal/internal/ui/theme"
)

// LibraryScreen lists library resources filtered by kind.
type LibraryScreen struct {
	kindIdx int
}

var _ screen.Screen = (*LibraryScreen)(nil)
var _ screen.KeyHintProvider = (*LibraryScreen)(nil)

// New creates the library screen with the "All" filter active.
func New() *LibraryScreen {
	return &LibraryScreen{}
}

func (s *LibraryScreen) Title() string {
	return "Digital Library"
}

func (s *LibraryScreen) Init() tea.Cmd {
	return nil
}

func (s *LibraryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←/→", Description: "Filter"},
		{Key: "Tab", Description: "Next tab"},
	}
}

func (s *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.kindIdx = (s.kindIdx + len(catalog.ItemKinds) - 1) % len(catalog.ItemKinds)
	case "right", "l":
		s.kindIdx = (s.kindIdx + 1) % len(catalog.ItemKinds)
	}
	return s, nil
}

// Kind returns the active filter.
func (s *LibraryScreen) Kind() catalog.ItemKind {
	return catalog.ItemKinds[s.kindIdx]
}

func (s *LibraryScreen) View(width, height int) string {
	var b strings.Builder

	// Filter chips.
	chips := make([]string, 0, len(catalog.ItemKinds))
	for i, kind := range catalog.ItemKinds {
		if i == s.kindIdx {
			chips = append(chips, theme.TabActive.Render(string(kind)))
		} else {
			chips = append(chips, theme.TabInactive.Render(string(kind)))
		}
	}
	b.WriteString(strings.Join(chips, " ") + "\n\n")

	items := catalog.LibraryItems(s.Kind())
	if len(items) == 0 {
		b.WriteString(theme.Hint.Render("No resources found in the library for this filter.") + "\n")
	}

	kindStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	for _, item := range items {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			kindStyle.Render(strings.ToUpper(string(item.Kind))),
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(item.Title)))
		meta := "By " + item.Author
		if item.Course != "" && item.Course != "Other" {
			meta += " • " + item.Course
		}
		b.WriteString("  " + theme.Hint.Render(meta) + "\n\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
