// Package subjects lists the student's course subjects with search.
package subjects

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chidera/unipal/internal/catalog"
	"github.com/chidera/unipal/internal/profile"
	"github.com/chidera/unipal/internal/screen"
	"github.com/chidera/unipal/internal/ui/layout"
	"github.com/chidera/unipal/internal/ui/theme"
)

// SubjectsScreen shows the subjects for the signed-in student's course.
type SubjectsScreen struct {
	profiles *profile.Store
	search   textinput.Model
	subjects []catalog.Subject
}

var _ screen.Screen = (*SubjectsScreen)(nil)
var _ screen.KeyHintProvider = (*SubjectsScreen)(nil)

// New creates the subjects screen.
func New(profiles *profile.Store) *SubjectsScreen {
	search := textinput.New()
	search.Placeholder = "Search subjects..."
	return &SubjectsScreen{profiles: profiles, search: search}
}

func (s *SubjectsScreen) Title() string {
	return "My Subjects"
}

// Init reloads the subject list so a course change in settings shows up
// next time the tab is opened.
func (s *SubjectsScreen) Init() tea.Cmd {
	s.subjects = nil
	if p := s.profiles.Current(); p != nil && p.Course != "" {
		s.subjects = catalog.SubjectsForCourse(p.Course)
	}
	return s.search.Focus()
}

func (s *SubjectsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Type", Description: "Search"},
		{Key: "Tab", Description: "Next tab"},
	}
}

func (s *SubjectsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	return s, cmd
}

// filtered returns subjects whose title or code matches the query.
func (s *SubjectsScreen) filtered() []catalog.Subject {
	query := strings.ToLower(strings.TrimSpace(s.search.Value()))
	if query == "" {
		return s.subjects
	}
	var out []catalog.Subject
	for _, sub := range s.subjects {
		if strings.Contains(strings.ToLower(sub.Title), query) ||
			strings.Contains(strings.ToLower(sub.Code), query) {
			out = append(out, sub)
		}
	}
	return out
}

func (s *SubjectsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(s.search.View() + "\n\n")

	matches := s.filtered()
	if len(matches) == 0 {
		b.WriteString(theme.Hint.Render("No subjects found.") + "\n")
	}

	codeStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	for _, sub := range matches {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			codeStyle.Render(sub.Code),
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(sub.Title)))
		b.WriteString("  " + theme.Hint.Render(sub.Description) + "\n\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
