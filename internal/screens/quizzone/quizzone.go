// Package quizzone renders the quiz tab: built-in general knowledge
// bank by default, with an AI-generated set for the student's course on
// demand.
package quizzone

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chidera/unipal/internal/catalog"
	"github.com/chidera/unipal/internal/profile"
	"github.com/chidera/unipal/internal/quiz"
	"github.com/chidera/unipal/internal/quizgen"
	"github.com/chidera/unipal/internal/screen"
	"github.com/chidera/unipal/internal/store"
	"github.com/chidera/unipal/internal/ui/components"
	"github.com/chidera/unipal/internal/ui/layout"
	"github.com/chidera/unipal/internal/ui/theme"
)

const feedbackDelay = 900 * time.Millisecond

// QuizScreen drives one quiz run at a time.
type QuizScreen struct {
	profiles  *profile.Store
	generator *quizgen.Generator
	events    store.EventRepo

	progress *quiz.Progress
	choice   components.MultiChoice
	category string

	generating bool
	genErr     string
	saved      bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen. generator may be nil when no LLM
// provider is configured; the built-in bank still works.
func New(profiles *profile.Store, generator *quizgen.Generator, events store.EventRepo) *QuizScreen {
	s := &QuizScreen{
		profiles:  profiles,
		generator: generator,
		events:    events,
	}
	s.load(catalog.Questions(), "General Knowledge")
	return s
}

// load starts a fresh run over the given question set.
func (s *QuizScreen) load(questions []catalog.QuizQuestion, category string) {
	s.progress = quiz.New(questions)
	s.category = category
	s.saved = false
	s.syncChoice()
}

// syncChoice rebuilds the multichoice component for the current question.
func (s *QuizScreen) syncChoice() {
	if q := s.progress.Current(); q != nil {
		s.choice = components.NewMultiChoice(q.Question, q.Options, q.CorrectAnswer)
	}
}

func (s *QuizScreen) Title() string {
	return "Quiz Zone"
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.progress.Completed() {
		hints := []layout.KeyHint{
			{Key: "R", Description: "Try again"},
		}
		if s.generator != nil {
			hints = append(hints, layout.KeyHint{Key: "G", Description: "AI quiz for my course"})
		}
		return hints
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		s.generating = false
		if msg.Err != nil {
			s.genErr = "Could not generate a quiz. Try again later!"
			return s, nil
		}
		s.genErr = ""
		s.load(msg.Questions, "Course Practice")
		return s, nil

	case feedbackDoneMsg:
		s.syncChoice()
		if s.progress.Completed() && !s.saved {
			return s, s.saveResult()
		}
		return s, nil

	case resultSavedMsg:
		// Recording is best-effort; a failed write never blocks the UI.
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.generating {
		return s, nil
	}

	if s.progress.Completed() {
		switch msg.String() {
		case "r", "R":
			s.progress.Reset()
			s.saved = false
			s.syncChoice()
		case "g", "G":
			return s, s.generate()
		}
		return s, nil
	}

	if s.choice.Submitted {
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if s.choice.Submitted {
		s.progress.Answer(s.choice.ChosenIndex)
		return s, tea.Batch(cmd, tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
			return feedbackDoneMsg{}
		}))
	}
	return s, cmd
}

// generate requests an AI question set for the student's course.
func (s *QuizScreen) generate() tea.Cmd {
	if s.generator == nil {
		return nil
	}
	p := s.profiles.Current()
	if p == nil {
		return nil
	}

	s.generating = true
	s.genErr = ""

	generator := s.generator
	input := quizgen.GenerateInput{
		Course: p.Course,
		Level:  string(p.Level),
		Count:  5,
	}
	return func() tea.Msg {
		questions, err := generator.Generate(context.Background(), input)
		return quizReadyMsg{Questions: questions, Err: err}
	}
}

// saveResult appends the completed run to the event log.
func (s *QuizScreen) saveResult() tea.Cmd {
	s.saved = true
	if s.events == nil {
		return nil
	}

	course := s.category
	if p := s.profiles.Current(); p != nil && s.category != "General Knowledge" {
		course = p.Course
	}

	events := s.events
	data := store.QuizResultEventData{
		Course: course,
		Score:  s.progress.Score(),
		Total:  s.progress.Total(),
	}
	return func() tea.Msg {
		return resultSavedMsg{Err: events.AppendQuizResult(context.Background(), data)}
	}
}

func (s *QuizScreen) View(width, height int) string {
	var b strings.Builder

	if s.generating {
		b.WriteString(theme.Hint.Render("The Guru is setting your questions...") + "\n")
		return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
	}

	if s.progress.Completed() {
		b.WriteString("🏆\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Quiz Completed!") + "\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("You scored %d out of %d", s.progress.Score(), s.progress.Total())) + "\n\n")
		b.WriteString(theme.ButtonActive.Render("Try Again (R)"))
		if s.genErr != "" {
			b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(s.genErr))
		}
		card := theme.Card.Render(b.String())
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
	}

	counter := theme.Hint.Render(fmt.Sprintf("Question %d/%d", s.progress.Index()+1, s.progress.Total()))
	category := lipgloss.NewStyle().Foreground(theme.Primary).Render(s.category)
	b.WriteString(counter + "   " + category + "\n\n")

	bar := components.NewProgressBar("", float64(s.progress.Index())/float64(s.progress.Total()), false, min(width-8, 48))
	b.WriteString(bar.View() + "\n\n")

	b.WriteString(s.choice.View())

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
