package guru

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/chidera/unipal/internal/llm"
)

func TestStart_SeedsGreeting(t *testing.T) {
	a := NewAdapter(llm.NewMockProvider())
	a.Start("Ada Eze", "Computer Science")

	tr := a.Transcript()
	if len(tr) != 1 {
		t.Fatalf("expected a single greeting message, got %d", len(tr))
	}
	if tr[0].Role != llm.RoleAssistant {
		t.Fatalf("greeting should be from the assistant, got %q", tr[0].Role)
	}
	if !strings.Contains(tr[0].Text, "Hello Ada!") {
		t.Fatalf("greeting should address the first name: %q", tr[0].Text)
	}
	if !strings.Contains(tr[0].Text, "The Guru") {
		t.Fatalf("greeting should introduce The Guru: %q", tr[0].Text)
	}
}

func TestStart_ReplacesPriorSession(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "sure thing"})
	a := NewAdapter(mock)
	a.Start("Ada Eze", "Computer Science")

	if _, err := a.Send(context.Background(), "explain recursion"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(a.Transcript()); got != 3 {
		t.Fatalf("expected 3 messages before restart, got %d", got)
	}

	a.Start("Bola Ade", "Law")
	tr := a.Transcript()
	if len(tr) != 1 {
		t.Fatalf("restart should reset the transcript, got %d messages", len(tr))
	}
	if !strings.Contains(tr[0].Text, "Hello Bola!") {
		t.Fatalf("new session should greet the new student: %q", tr[0].Text)
	}
}

func TestSend_AppendsBothSides(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Recursion is when a function calls itself."})
	a := NewAdapter(mock)
	a.Start("Ada Eze", "Computer Science")

	reply, err := a.Send(context.Background(), "  explain recursion  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Recursion is when a function calls itself." {
		t.Fatalf("unexpected reply: %q", reply)
	}

	tr := a.Transcript()
	if len(tr) != 3 {
		t.Fatalf("expected greeting + user + assistant, got %d", len(tr))
	}
	if tr[1].Role != llm.RoleUser || tr[1].Text != "explain recursion" {
		t.Fatalf("user message not trimmed and appended: %+v", tr[1])
	}
	if tr[2].Role != llm.RoleAssistant {
		t.Fatalf("reply not appended: %+v", tr[2])
	}
}

func TestSend_GreetingNotSentToProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "ok"})
	a := NewAdapter(mock)
	a.Start("Ada Eze", "Computer Science")

	if _, err := a.Send(context.Background(), "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if len(req.Messages) != 1 {
		t.Fatalf("provider should only see the user turn, got %d messages", len(req.Messages))
	}
	if req.Messages[0].Role != llm.RoleUser {
		t.Fatalf("first wire message should be the user turn, got %q", req.Messages[0].Role)
	}
	if !strings.Contains(req.System, "Ada Eze") || !strings.Contains(req.System, "Computer Science") {
		t.Fatalf("system instruction should carry name and course: %q", req.System)
	}
}

func TestSend_EmptyInput(t *testing.T) {
	a := NewAdapter(llm.NewMockProvider())
	a.Start("Ada Eze", "Computer Science")

	if _, err := a.Send(context.Background(), "   "); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if got := len(a.Transcript()); got != 1 {
		t.Fatalf("blank input should not touch the transcript, got %d messages", got)
	}
}

func TestSend_BeforeStart(t *testing.T) {
	a := NewAdapter(llm.NewMockProvider())
	if _, err := a.Send(context.Background(), "hello"); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("expected ErrNotStarted, got %v", err)
	}
}

func TestSend_ProviderFailureKeepsTranscriptConsistent(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("timeout")}},
		llm.MockResponse{Text: "back online"},
	)
	a := NewAdapter(mock)
	a.Start("Ada Eze", "Computer Science")

	_, err := a.Send(context.Background(), "first try")
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected provider error to surface, got %v", err)
	}

	tr := a.Transcript()
	if len(tr) != 2 {
		t.Fatalf("failed send should keep the user message only, got %d messages", len(tr))
	}
	if tr[1].Role != llm.RoleUser {
		t.Fatalf("last message should be the retained user turn, got %q", tr[1].Role)
	}
	if a.Busy() {
		t.Fatal("adapter should return to idle after a failure")
	}

	// Retry succeeds and the session carries on.
	reply, err := a.Send(context.Background(), "second try")
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if reply != "back online" {
		t.Fatalf("unexpected retry reply: %q", reply)
	}
}

// blockingProvider blocks Generate until released, to hold the adapter
// in the awaiting-response state.
type blockingProvider struct {
	entered chan struct{}
	release chan struct{}
}

func (b *blockingProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	close(b.entered)
	<-b.release
	return &llm.Response{Text: "done waiting"}, nil
}

func (b *blockingProvider) ModelID() string { return "blocking" }

func TestSend_RejectsConcurrentSend(t *testing.T) {
	bp := &blockingProvider{entered: make(chan struct{}), release: make(chan struct{})}
	a := NewAdapter(bp)
	a.Start("Ada Eze", "Computer Science")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := a.Send(context.Background(), "slow question"); err != nil {
			t.Errorf("in-flight send failed: %v", err)
		}
	}()

	<-bp.entered
	if !a.Busy() {
		t.Fatal("adapter should report busy while awaiting a reply")
	}
	if _, err := a.Send(context.Background(), "impatient question"); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy for overlapping send, got %v", err)
	}

	close(bp.release)
	wg.Wait()

	tr := a.Transcript()
	if len(tr) != 3 {
		t.Fatalf("rejected send should leave no trace, got %d messages", len(tr))
	}
	if a.Busy() {
		t.Fatal("adapter should be idle after the reply lands")
	}
}
