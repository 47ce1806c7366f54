// Package login renders the sign-in form shown before a profile exists.
package login

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chidera/unipal/internal/profile"
	"github.com/chidera/unipal/internal/screen"
	"github.com/chidera/unipal/internal/ui/components"
	"github.com/chidera/unipal/internal/ui/layout"
	"github.com/chidera/unipal/internal/ui/theme"
)

const fieldCount = 3

// LoginScreen collects name, email, and password and creates the profile.
// Sign-in and sign-up are the same local flow; the toggle only changes
// the labels, as in the web app.
type LoginScreen struct {
	profiles *profile.Store
	fields   [fieldCount]components.TextInput
	focus    int
	signUp   bool
	errMsg   string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a LoginScreen backed by the given profile store.
func New(profiles *profile.Store) *LoginScreen {
	s := &LoginScreen{profiles: profiles}
	s.fields[0] = components.NewTextInput("Full Name", "Emeka Okafor", 60)
	s.fields[1] = components.NewTextInput("Email Address", "student@uni.edu.ng", 80)
	s.fields[2] = components.NewPasswordInput("Password", "")
	return s
}

func (s *LoginScreen) Title() string {
	if s.signUp {
		return "Create Account"
	}
	return "Sign In"
}

func (s *LoginScreen) Init() tea.Cmd {
	s.fields[1].Blur()
	s.fields[2].Blur()
	return s.fields[0].Focus()
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	submit := "Sign in"
	toggle := "Sign up instead"
	if s.signUp {
		submit = "Create account"
		toggle = "Sign in instead"
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: submit},
		{Key: "Ctrl+T", Description: toggle},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch kmsg.String() {
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return s, s.setFocus((s.focus + fieldCount - 1) % fieldCount)
		case "enter":
			if s.focus < fieldCount-1 {
				return s, s.setFocus(s.focus + 1)
			}
			return s, s.submit()
		case "ctrl+t":
			s.signUp = !s.signUp
			s.errMsg = ""
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
	return s, cmd
}

func (s *LoginScreen) setFocus(i int) tea.Cmd {
	s.fields[s.focus].Blur()
	s.focus = i
	return s.fields[i].Focus()
}

func (s *LoginScreen) submit() tea.Cmd {
	name := s.fields[0].Value()
	email := s.fields[1].Value()
	password := s.fields[2].Value()

	// Match the web flow: an empty name signs in as "Student".
	if strings.TrimSpace(name) == "" {
		name = "Student"
	}

	_, err := s.profiles.Login(context.Background(), name, email, password)
	if err != nil {
		if errors.Is(err, profile.ErrValidation) {
			s.errMsg = "Email and password are required."
		} else {
			s.errMsg = "Could not sign in: " + err.Error()
		}
		return nil
	}

	s.errMsg = ""
	return nil
}

func (s *LoginScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("UniPal") + "\n")
	b.WriteString(theme.Subtitle.Render("Your Ultimate Campus Companion") + "\n\n")

	for i := range s.fields {
		b.WriteString(s.fields[i].View() + "\n\n")
	}

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg) + "\n")
	}

	switch {
	case s.signUp:
		b.WriteString(theme.Hint.Render("Already have an account? Ctrl+T to sign in."))
	default:
		b.WriteString(theme.Hint.Render("New here? Ctrl+T to create an account."))
	}

	card := theme.Card.Width(min(width-4, 60)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
