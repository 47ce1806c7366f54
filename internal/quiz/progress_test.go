package quiz

import (
	"testing"

	"github.com/chidera/unipal/internal/catalog"
)

func TestAnswer_PerfectRun(t *testing.T) {
	p := New(catalog.Questions())

	answers := []int{3, 0, 2, 2, 2}
	for i, a := range answers {
		if p.Completed() {
			t.Fatalf("completed early at question %d", i)
		}
		if !p.Answer(a) {
			t.Fatalf("answer %d for question %d should be correct", a, i)
		}
	}

	if !p.Completed() {
		t.Fatal("expected run to be complete")
	}
	if p.Score() != 5 {
		t.Fatalf("expected 5/5, got %d", p.Score())
	}
	if p.Current() != nil {
		t.Fatal("no current question after completion")
	}
}

func TestAnswer_ScoresOnlyCorrect(t *testing.T) {
	p := New(catalog.Questions())

	// First answer wrong, rest right.
	if p.Answer(0) {
		t.Fatal("option 0 should be wrong for the first question")
	}
	for _, a := range []int{0, 2, 2, 2} {
		p.Answer(a)
	}

	if p.Score() != 4 {
		t.Fatalf("expected 4/5, got %d", p.Score())
	}
	if !p.Completed() {
		t.Fatal("expected run to be complete")
	}
}

func TestAnswer_AfterCompletionIgnored(t *testing.T) {
	p := New(catalog.Questions())
	for _, a := range []int{3, 0, 2, 2, 2} {
		p.Answer(a)
	}

	if p.Answer(3) {
		t.Fatal("answers after completion should report false")
	}
	if p.Score() != 5 {
		t.Fatalf("score changed after completion: %d", p.Score())
	}
}

func TestReset(t *testing.T) {
	p := New(catalog.Questions())
	for _, a := range []int{3, 0, 2, 2, 2} {
		p.Answer(a)
	}

	p.Reset()

	if p.Index() != 0 || p.Score() != 0 || p.Completed() {
		t.Fatalf("reset should return to (0, 0, false): index=%d score=%d completed=%v",
			p.Index(), p.Score(), p.Completed())
	}
	if p.Current() == nil {
		t.Fatal("expected the first question after reset")
	}
	if p.Current().ID != 1 {
		t.Fatalf("expected question 1 after reset, got %d", p.Current().ID)
	}
}

func TestEmptySet(t *testing.T) {
	p := New(nil)
	if p.Current() != nil {
		t.Fatal("empty set has no current question")
	}
	if p.Answer(0) {
		t.Fatal("answering an empty set should report false")
	}
}
