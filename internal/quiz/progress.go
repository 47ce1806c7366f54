// Package quiz tracks a student's run through a multiple-choice
// question set. Progress is view state only and is never persisted in
// the profile; leaving the quiz and coming back starts over.
package quiz

import "github.com/chidera/unipal/internal/catalog"

// Progress tracks position and score through one quiz run.
type Progress struct {
	questions []catalog.QuizQuestion
	current   int
	score     int
	completed bool
}

// New starts a run over the given question set.
func New(questions []catalog.QuizQuestion) *Progress {
	return &Progress{questions: questions}
}

// Current returns the question awaiting an answer, or nil when the run
// is complete or the set is empty.
func (p *Progress) Current() *catalog.QuizQuestion {
	if p.completed || p.current >= len(p.questions) {
		return nil
	}
	q := p.questions[p.current]
	return &q
}

// Index returns the zero-based position of the current question.
func (p *Progress) Index() int { return p.current }

// Total returns the number of questions in the set.
func (p *Progress) Total() int { return len(p.questions) }

// Score returns the number of correct answers so far.
func (p *Progress) Score() int { return p.score }

// Completed reports whether every question has been answered.
func (p *Progress) Completed() bool { return p.completed }

// Answer scores the selected option against the current question and
// advances. Returns whether the answer was correct. Answers after
// completion are ignored and report false.
func (p *Progress) Answer(optionIndex int) bool {
	q := p.Current()
	if q == nil {
		return false
	}

	correct := optionIndex == q.CorrectAnswer
	if correct {
		p.score++
	}

	p.current++
	if p.current >= len(p.questions) {
		p.completed = true
	}
	return correct
}

// Reset returns the run to the first question with a zero score.
func (p *Progress) Reset() {
	p.current = 0
	p.score = 0
	p.completed = false
}
