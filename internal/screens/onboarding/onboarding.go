// Package onboarding walks a new student through picking their
// university, course, and level.
package onboarding

import (
	"context"
	"fmt"
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

type step int

const (
	stepUniversity step = iota
	stepCourse
	stepLevel
)

// OnboardingScreen collects the profile fields needed to finish setup.
type OnboardingScreen struct {
	profiles *profile.Store
	step     step

	university components.SelectList
	course     components.SelectList
	levelIdx   int

	errMsg string
}

var _ screen.Screen = (*OnboardingScreen)(nil)
var _ screen.KeyHintProvider = (*OnboardingScreen)(nil)

// New creates an OnboardingScreen backed by the given profile store.
func New(profiles *profile.Store) *OnboardingScreen {
	return &OnboardingScreen{
		profiles:   profiles,
		university: components.NewSelectList("Select University", catalog.Universities),
		course:     components.NewSelectList("Course of Study", catalog.Courses),
	}
}

func (s *OnboardingScreen) Title() string {
	return "Profile Setup"
}

func (s *OnboardingScreen) Init() tea.Cmd {
	return s.university.Init()
}

func (s *OnboardingScreen) KeyHints() []layout.KeyHint {
	if s.step == stepLevel {
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Choose level"},
			{Key: "Enter", Description: "Get started"},
		}
	}
	return []layout.KeyHint{
		{Key: "Type", Description: "Search"},
		{Key: "Enter", Description: "Pick"},
	}
}

func (s *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch s.step {
	case stepUniversity:
		var cmd tea.Cmd
		s.university, cmd = s.university.Update(msg)
		if s.university.Value() != "" {
			s.step = stepCourse
			return s, tea.Batch(cmd, s.course.Init())
		}
		return s, cmd

	case stepCourse:
		var cmd tea.Cmd
		s.course, cmd = s.course.Update(msg)
		if s.course.Value() != "" {
			s.step = stepLevel
		}
		return s, cmd

	case stepLevel:
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "up", "k":
				if s.levelIdx > 0 {
					s.levelIdx--
				}
			case "down", "j":
				if s.levelIdx < len(profile.Levels)-1 {
					s.levelIdx++
				}
			case "enter":
				s.finish()
			}
		}
		return s, nil
	}

	return s, nil
}

// finish writes all three fields in one update so setup either
// completes or leaves the profile untouched.
func (s *OnboardingScreen) finish() {
	uni := s.university.Value()
	course := s.course.Value()
	level := profile.Levels[s.levelIdx]

	_, err := s.profiles.UpdateProfile(context.Background(), profile.Changes{
		University: &uni,
		Course:     &course,
		Level:      &level,
	})
	if err != nil {
		s.errMsg = "Could not save your profile: " + err.Error()
		return
	}
	s.errMsg = ""
}

func (s *OnboardingScreen) View(width, height int) string {
	var b strings.Builder

	name := ""
	if p := s.profiles.Current(); p != nil {
		name = p.Name
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Welcome, %s!", name)) + "\n")
	b.WriteString(theme.Subtitle.Render("Let's set up your profile to personalize your experience.") + "\n\n")

	switch s.step {
	case stepUniversity:
		b.WriteString(s.university.View())
	case stepCourse:
		b.WriteString(s.course.View())
	case stepLevel:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Level") + "\n")
		for i, lvl := range profile.Levels {
			if i == s.levelIdx {
				b.WriteString(theme.Selected.Render("  ▸ "+string(lvl)) + "\n")
			} else {
				b.WriteString(theme.Unselected.Render("    "+string(lvl)) + "\n")
			}
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg) + "\n")
	}

	card := theme.Card.Width(min(width-4, 64)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
