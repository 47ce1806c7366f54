package quizgen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/chidera/unipal/internal/catalog"
	"github.com/chidera/unipal/internal/llm"
)

const validQuizJSON = `{"questions":[
	{"question":"What does CPU stand for?","options":["Central Processing Unit","Computer Personal Unit","Central Program Utility","Core Processing Utility"],"correctAnswerIndex":0},
	{"question":"Which data structure uses FIFO ordering?","options":["Stack","Queue","Tree","Graph"],"correctAnswerIndex":1}
]}`

func TestGenerate_ParsesQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: validQuizJSON})
	g := New(mock, DefaultConfig())

	questions, err := g.Generate(context.Background(), GenerateInput{
		Course: "Computer Science",
		Level:  "200 Level",
		Count:  2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].ID != 1 || questions[1].ID != 2 {
		t.Fatalf("questions should be renumbered sequentially: %d, %d", questions[0].ID, questions[1].ID)
	}
	if questions[1].CorrectAnswer != 1 {
		t.Fatalf("wrong correct answer index: %d", questions[1].CorrectAnswer)
	}
}

func TestGenerate_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: validQuizJSON})
	g := New(mock, DefaultConfig())

	subject := catalog.Subject{ID: "cs-1", Title: "Data Structures & Algorithms", Code: "CSC 201"}
	_, err := g.Generate(context.Background(), GenerateInput{
		Course:  "Computer Science",
		Subject: &subject,
		Level:   "200 Level",
		Count:   2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "practice-quiz" {
		t.Fatal("expected the practice-quiz schema on the request")
	}
	userMsg := req.Messages[0].Content
	for _, want := range []string{"Computer Science", "Data Structures & Algorithms", "CSC 201", "200 Level", "Number of questions: 2"} {
		if !strings.Contains(userMsg, want) {
			t.Fatalf("user message missing %q:\n%s", want, userMsg)
		}
	}
}

func TestGenerate_DefaultCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: validQuizJSON})
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), GenerateInput{Course: "Law"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "Number of questions: 5") {
		t.Fatal("zero count should default to 5")
	}
}

func TestGenerate_RejectsWrongOptionCount(t *testing.T) {
	bad := `{"questions":[{"question":"Pick one","options":["a","b"],"correctAnswerIndex":0}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Text: bad})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Course: "Law", Count: 1})
	var inv *llm.ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestGenerate_RejectsOutOfRangeAnswer(t *testing.T) {
	bad := `{"questions":[{"question":"Pick one","options":["a","b","c","d"],"correctAnswerIndex":7}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Text: bad})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Course: "Law", Count: 1})
	var inv *llm.ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestGenerate_RejectsEmptySet(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: `{"questions":[]}`})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Course: "Law", Count: 5})
	var inv *llm.ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse for empty set, got %v", err)
	}
}

func TestGenerate_ProviderErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Course: "Law", Count: 5})
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected rate limit to surface, got %v", err)
	}
}
