package guru

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/chidera/unipal/internal/llm"
)

var (
	// ErrEmptyInput is returned when a message is blank after trimming.
	ErrEmptyInput = errors.New("message is empty")

	// ErrBusy is returned while a previous send is still awaiting a reply.
	ErrBusy = errors.New("a reply is still pending")

	// ErrNotStarted is returned when Send is called before Start.
	ErrNotStarted = errors.New("chat session not started")
)

// Message is a single entry in the conversation transcript.
type Message struct {
	Role llm.Role
	Text string
}

// Adapter manages one provider-backed chat session with The Guru.
// At most one send is in flight at a time; concurrent sends are
// rejected with ErrBusy rather than queued.
type Adapter struct {
	mu         sync.Mutex
	provider   llm.Provider
	system     string
	transcript []Message
	started    bool
	busy       bool
}

// NewAdapter creates an Adapter over the given provider. The session
// is unusable until Start is called.
func NewAdapter(provider llm.Provider) *Adapter {
	return &Adapter{provider: provider}
}

// Start begins a fresh session for the named student, replacing any
// prior one. The transcript opens with a synthetic greeting addressed
// by first name; the greeting is display-only and never sent to the
// model.
func (a *Adapter) Start(userName, course string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	first := userName
	if fields := strings.Fields(userName); len(fields) > 0 {
		first = fields[0]
	}

	a.system = systemInstruction(userName, course)
	a.transcript = []Message{{Role: llm.RoleAssistant, Text: greeting(first)}}
	a.started = true
	a.busy = false
}

// Send appends the user's message, asks the provider for a reply, and
// appends it to the transcript. On provider failure the user message
// stays in the transcript, no assistant entry is added, and the session
// returns to idle so the student can retry.
func (a *Adapter) Send(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyInput
	}

	a.mu.Lock()
	if !a.started {
		a.mu.Unlock()
		return "", ErrNotStarted
	}
	if a.busy {
		a.mu.Unlock()
		return "", ErrBusy
	}
	a.busy = true
	a.transcript = append(a.transcript, Message{Role: llm.RoleUser, Text: text})
	req := a.buildRequest()
	a.mu.Unlock()

	resp, err := a.provider.Generate(llm.WithPurpose(ctx, "guru-chat"), req)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.busy = false

	if err != nil {
		return "", fmt.Errorf("guru reply: %w", err)
	}

	reply := resp.Text
	if strings.TrimSpace(reply) == "" {
		reply = "Sorry, I couldn't generate a response. Please try again."
	}
	a.transcript = append(a.transcript, Message{Role: llm.RoleAssistant, Text: reply})
	return reply, nil
}

// buildRequest converts the transcript into a provider request. The
// leading synthetic greeting is skipped. Caller holds the lock.
func (a *Adapter) buildRequest() llm.Request {
	msgs := make([]llm.Message, 0, len(a.transcript)-1)
	for _, m := range a.transcript[1:] {
		msgs = append(msgs, llm.Message{Role: m.Role, Content: m.Text})
	}
	return llm.Request{
		System:   a.system,
		Messages: msgs,
	}
}

// Transcript returns a copy of the conversation so far.
func (a *Adapter) Transcript() []Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Message, len(a.transcript))
	copy(out, a.transcript)
	return out
}

// Busy reports whether a send is awaiting a reply.
func (a *Adapter) Busy() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.busy
}

// Started reports whether Start has been called.
func (a *Adapter) Started() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.started
}
