package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chidera/unipal/internal/ui/theme"
)

// maxVisibleOptions caps how many filtered options render at once.
const maxVisibleOptions = 8

// SelectList is a searchable single-select list. Typing narrows the
// options by case-insensitive substring match; enter picks the
// highlighted option.
type SelectList struct {
	Label    string
	options  []string
	filter   textinput.Model
	filtered []string
	Selected int
	chosen   string
}

// NewSelectList creates a select list over the given options.
func NewSelectList(label string, options []string) SelectList {
	ti := textinput.New()
	ti.Placeholder = "Type to search..."
	return SelectList{
		Label:    label,
		options:  options,
		filter:   ti,
		filtered: options,
	}
}

// Init focuses the filter input. Pointer receiver: focusing a copy
// would leave the caller's input blurred and dropping key presses.
func (s *SelectList) Init() tea.Cmd {
	return s.filter.Focus()
}

// Update handles filtering and selection.
func (s SelectList) Update(msg tea.Msg) (SelectList, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch kmsg.String() {
		case "up", "ctrl+p":
			if s.Selected > 0 {
				s.Selected--
			}
			return s, nil
		case "down", "ctrl+n":
			if s.Selected < len(s.filtered)-1 {
				s.Selected++
			}
			return s, nil
		case "enter":
			if s.Selected >= 0 && s.Selected < len(s.filtered) {
				s.chosen = s.filtered[s.Selected]
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.filter, cmd = s.filter.Update(msg)
	s.refilter()
	return s, cmd
}

// refilter rebuilds the filtered option list from the current query.
func (s *SelectList) refilter() {
	query := strings.ToLower(strings.TrimSpace(s.filter.Value()))
	if query == "" {
		s.filtered = s.options
	} else {
		filtered := make([]string, 0, len(s.options))
		for _, opt := range s.options {
			if strings.Contains(strings.ToLower(opt), query) {
				filtered = append(filtered, opt)
			}
		}
		s.filtered = filtered
	}

	if s.Selected >= len(s.filtered) {
		s.Selected = len(s.filtered) - 1
	}
	if s.Selected < 0 {
		s.Selected = 0
	}
}

// View renders the filter box and the visible slice of options.
func (s SelectList) View() string {
	var b strings.Builder

	if s.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.Label) + "\n")
	}
	b.WriteString(s.filter.View() + "\n")

	if len(s.filtered) == 0 {
		b.WriteString(theme.Hint.Render("  No matches") + "\n")
		return b.String()
	}

	start := 0
	if s.Selected >= maxVisibleOptions {
		start = s.Selected - maxVisibleOptions + 1
	}
	end := start + maxVisibleOptions
	if end > len(s.filtered) {
		end = len(s.filtered)
	}

	for i := start; i < end; i++ {
		opt := s.filtered[i]
		if i == s.Selected {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ "+opt) + "\n")
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    "+opt) + "\n")
		}
	}

	if len(s.filtered) > maxVisibleOptions {
		b.WriteString(theme.Hint.Render("  …") + "\n")
	}

	return b.String()
}

// Value returns the chosen option, or "" if nothing has been picked yet.
func (s SelectList) Value() string {
	return s.chosen
}

// SetValue pre-selects an option, as when editing an existing choice.
func (s *SelectList) SetValue(value string) {
	s.chosen = value
	for i, opt := range s.filtered {
		if opt == value {
			s.Selected = i
			break
		}
	}
}

// Reset clears the choice and the filter query.
func (s *SelectList) Reset() {
	s.chosen = ""
	s.filter.SetValue("")
	s.refilter()
	s.Selected = 0
}
