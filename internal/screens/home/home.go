// Package home renders the dashboard: welcome card, quick actions, and
// upcoming items.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chidera/unipal/internal/profile"
	"github.com/chidera/unipal/internal/router"
	"github.com/chidera/unipal/internal/screen"
	"github.com/chidera/unipal/internal/ui/components"
	"github.com/chidera/unipal/internal/ui/layout"
	"github.com/chidera/unipal/internal/ui/theme"
)

// upcomingItem is a static calendar entry shown on the dashboard.
type upcomingItem struct {
	Title string
	When  string
}

var upcoming = []upcomingItem{
	{Title: "Mid-Semester Test", When: "Tomorrow at 10:00 AM"},
	{Title: "Study Group Meeting", When: "Friday at 4:00 PM • Main Library"},
}

// HomeScreen is the dashboard tab.
type HomeScreen struct {
	profiles *profile.Store
	actions  components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the dashboard screen.
func New(profiles *profile.Store) *HomeScreen {
	selectTab := func(t router.Tab) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg {
				return router.SelectTabMsg{Tab: t}
			}
		}
	}

	return &HomeScreen{
		profiles: profiles,
		actions: components.NewMenu([]components.MenuItem{
			{Label: "My Subjects", Action: selectTab(router.TabSubjects)},
			{Label: "Library", Action: selectTab(router.TabLibrary)},
			{Label: "AI Guru", Action: selectTab(router.TabGuru)},
			{Label: "Quiz Zone", Action: selectTab(router.TabQuiz)},
		}),
	}
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Tab", Description: "Next tab"},
	}
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.actions, cmd = s.actions.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	var b strings.Builder

	p := s.profiles.Current()
	if p != nil {
		welcome := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render(fmt.Sprintf("Welcome back, %s! 👋", p.FirstName()))
		detail := theme.Hint.Render(fmt.Sprintf("%s\n%s • %s", p.University, p.Course, p.Level))
		b.WriteString(theme.Card.Width(min(width-4, 64)).Render(welcome+"\n"+detail) + "\n\n")
	}

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Quick actions") + "\n")
	b.WriteString(s.actions.View() + "\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Upcoming") + "\n")
	for _, item := range upcoming {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Text).Render(item.Title) + "\n")
		b.WriteString("  " + theme.Hint.Render(item.When) + "\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
