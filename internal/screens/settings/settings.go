// Package settings shows the profile and account actions.
package settings

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chidera/unipal/internal/catalog"
	"github.com/chidera/unipal/internal/profile"
	"github.com/chidera/unipal/internal/screen"
	"github.com/chidera/unipal/internal/ui/components"
	"github.com/chidera/unipal/internal/ui/layout"
	"github.com/chidera/unipal/internal/ui/theme"
)

type mode int

const (
	modeMenu mode = iota
	modeEditUniversity
	modeConfirmLogout
)

// SettingsScreen shows the stored profile and lets the student change
// university or sign out.
type SettingsScreen struct {
	profiles *profile.Store
	mode     mode

	university components.SelectList
	selected   int
	reminders  bool
	errMsg     string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates the settings screen.
func New(profiles *profile.Store) *SettingsScreen {
	return &SettingsScreen{profiles: profiles, reminders: true}
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) Init() tea.Cmd {
	s.mode = modeMenu
	s.errMsg = ""
	return nil
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeEditUniversity:
		return []layout.KeyHint{
			{Key: "Type", Description: "Search"},
			{Key: "Enter", Description: "Pick"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeConfirmLogout:
		return []layout.KeyHint{
			{Key: "Y", Description: "Log out"},
			{Key: "N", Description: "Stay"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch s.mode {
	case modeEditUniversity:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
			s.mode = modeMenu
			return s, nil
		}
		var cmd tea.Cmd
		s.university, cmd = s.university.Update(msg)
		if uni := s.university.Value(); uni != "" {
			s.applyUniversity(uni)
			s.mode = modeMenu
		}
		return s, cmd

	case modeConfirmLogout:
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "y", "Y":
				if err := s.profiles.Logout(context.Background()); err != nil {
					s.errMsg = "Could not log out: " + err.Error()
				}
				s.mode = modeMenu
			case "n", "N", "esc":
				s.mode = modeMenu
			}
		}
		return s, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.menuItems())-1 {
				s.selected++
			}
		case "enter":
			switch s.selected {
			case 0:
				s.university = components.NewSelectList("University", catalog.Universities)
				s.mode = modeEditUniversity
				return s, s.university.Init()
			case 1:
				s.reminders = !s.reminders
			case 2:
				s.mode = modeConfirmLogout
			}
		}
	}
	return s, nil
}

// menuItems rebuilds the action list so the reminders row reflects the
// current toggle state.
func (s *SettingsScreen) menuItems() []string {
	reminders := "Exam Reminders: Off"
	if s.reminders {
		reminders = "Exam Reminders: On"
	}
	return []string{"Change University", reminders, "Log Out"}
}

func (s *SettingsScreen) applyUniversity(uni string) {
	_, err := s.profiles.UpdateProfile(context.Background(), profile.Changes{University: &uni})
	if err != nil {
		s.errMsg = "Could not update university: " + err.Error()
		return
	}
	s.errMsg = ""
}

func (s *SettingsScreen) View(width, height int) string {
	var b strings.Builder

	p := s.profiles.Current()
	if p == nil {
		return theme.Hint.Render("No profile.")
	}

	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	b.WriteString(label.Render("Full Name") + "\n" + value.Render(p.Name) + "\n\n")
	b.WriteString(label.Render("Email") + "\n" + value.Render(p.Email) + "\n\n")
	b.WriteString(label.Render("University") + "\n" + value.Render(p.University) + "\n\n")
	b.WriteString(label.Render("Course") + "\n" + value.Render(p.Course+" • "+string(p.Level)) + "\n\n")

	switch s.mode {
	case modeEditUniversity:
		b.WriteString(s.university.View())
	case modeConfirmLogout:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
			Render("Log out and clear your saved profile? (y/n)") + "\n")
	default:
		for i, item := range s.menuItems() {
			if i == s.selected {
				b.WriteString(theme.Selected.Render("  ▸ "+item) + "\n")
			} else {
				b.WriteString(theme.Unselected.Render("    "+item) + "\n")
			}
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg) + "\n")
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
