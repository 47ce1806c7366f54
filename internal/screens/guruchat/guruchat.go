// Package guruchat renders The Guru conversation tab.
package guruchat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chidera/unipal/internal/guru"
	"github.com/chidera/unipal/internal/llm"
	"github.com/chidera/unipal/internal/profile"
	"github.com/chidera/unipal/internal/screen"
	"github.com/chidera/unipal/internal/ui/layout"
	"github.com/chidera/unipal/internal/ui/theme"
)

const spinnerInterval = 250 * time.Millisecond

var spinnerFrames = []string{"●∙∙", "∙●∙", "∙∙●"}

// GuruScreen is the chat tab. It owns the input box and renders the
// adapter's transcript; the adapter owns the conversation itself.
type GuruScreen struct {
	adapter  *guru.Adapter
	profiles *profile.Store
	input    textinput.Model

	spinnerFrame int
	errNotice    string
}

var _ screen.Screen = (*GuruScreen)(nil)
var _ screen.KeyHintProvider = (*GuruScreen)(nil)

// New creates the chat screen over the given adapter.
func New(adapter *guru.Adapter, profiles *profile.Store) *GuruScreen {
	input := textinput.New()
	input.Placeholder = "Ask anything..."
	return &GuruScreen{adapter: adapter, profiles: profiles, input: input}
}

func (s *GuruScreen) Title() string {
	return "The Guru"
}

// Init starts a session on first entry. Re-entering the tab keeps the
// running conversation.
func (s *GuruScreen) Init() tea.Cmd {
	if !s.adapter.Started() {
		if p := s.profiles.Current(); p != nil {
			s.adapter.Start(p.Name, p.Course)
		}
	}
	return s.input.Focus()
}

func (s *GuruScreen) KeyHints() []layout.KeyHint {
	if s.adapter.Busy() {
		return []layout.KeyHint{
			{Key: "…", Description: "The Guru is typing"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
	}
	if len(s.adapter.Transcript()) < 3 {
		hints = append(hints, layout.KeyHint{Key: "1-4", Description: "Suggestions"})
	}
	return hints
}

func (s *GuruScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		if msg.Err != nil && !errors.Is(msg.Err, guru.ErrBusy) {
			s.errNotice = guru.FallbackReply
		}
		return s, nil

	case spinnerTickMsg:
		if !s.adapter.Busy() {
			return s, nil
		}
		s.spinnerFrame++
		return s, s.tickSpinner()

	case tea.KeyMsg:
		if s.adapter.Busy() {
			// Input is disabled while a reply is pending.
			return s, nil
		}
		switch msg.String() {
		case "enter":
			return s, s.send()
		case "1", "2", "3", "4":
			if len(s.adapter.Transcript()) < 3 && s.input.Value() == "" {
				idx := int(msg.String()[0] - '1')
				if idx < len(guru.Suggestions) {
					s.input.SetValue(guru.Suggestions[idx])
				}
				return s, nil
			}
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// send issues one adapter call as a background command.
func (s *GuruScreen) send() tea.Cmd {
	text := strings.TrimSpace(s.input.Value())
	if text == "" {
		return nil
	}
	s.input.SetValue("")
	s.errNotice = ""

	adapter := s.adapter
	sendCmd := func() tea.Msg {
		_, err := adapter.Send(context.Background(), text)
		return replyMsg{Err: err}
	}
	return tea.Batch(sendCmd, s.tickSpinner())
}

func (s *GuruScreen) tickSpinner() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *GuruScreen) View(width, height int) string {
	var b strings.Builder

	header := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("The Guru") +
		"  " + lipgloss.NewStyle().Foreground(theme.Success).Render("● Online")
	b.WriteString(header + "\n\n")

	maxBubble := width - 12
	if maxBubble < 20 {
		maxBubble = 20
	}

	for _, m := range s.adapter.Transcript() {
		text := lipgloss.NewStyle().Width(min(maxBubble, lipgloss.Width(m.Text)+2)).Render(m.Text)
		if m.Role == llm.RoleUser {
			bubble := theme.ChatUser.Render(text)
			b.WriteString(lipgloss.PlaceHorizontal(width-4, lipgloss.Right, bubble) + "\n")
		} else {
			b.WriteString(theme.ChatGuru.Render(text) + "\n")
		}
	}

	if s.adapter.Busy() {
		frame := spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
		b.WriteString(theme.Hint.Render(frame) + "\n")
	}

	if s.errNotice != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errNotice) + "\n")
	}

	b.WriteString("\n")

	if len(s.adapter.Transcript()) < 3 {
		for i, sg := range guru.Suggestions {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("[%d] %s  ", i+1, sg)))
		}
		b.WriteString("\n")
	}

	b.WriteString(s.input.View() + "\n")

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
