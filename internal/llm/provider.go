package llm

import "context"

// Provider is the core abstraction for generative-language interaction.
// The guru chat sends multi-turn conversations and reads back plain
// text; quiz generation sets a Schema and reads back validated JSON.
type Provider interface {
	// Generate sends the request and returns the model's reply. When
	// the request carries a Schema, the response Text is JSON that has
	// been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system instruction. Sets the model's role and tone.
	System string

	// Messages is the conversation so far, oldest first. Chat requests
	// send the whole transcript; generation requests send one user turn.
	Messages []Message

	// Schema, when set, instructs the provider to produce JSON
	// conforming to it using its native structured-output mechanism.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message is a single turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema. Kebab-case, e.g. "practice-quiz".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Text is the generated reply. Plain prose for chat requests;
	// schema-validated JSON when the request carried a Schema.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
