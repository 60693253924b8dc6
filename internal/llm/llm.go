package llm

import (
	"context"
	"errors"
)

// Roles used in chat prompts.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one turn of a chat prompt.
type Message struct {
	Role    string
	Content string
}

// Request is a single completion call.
type Request struct {
	Messages []Message
	// JSON asks the provider to constrain output to a JSON object.
	JSON bool
}

// Completer abstracts LLM providers. Implementations return the content of the
// first choice unmodified.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

var (
	// ErrNotImplemented is returned by the placeholder client.
	ErrNotImplemented = errors.New("LLM not implemented")
	// ErrNoChoices is returned when the provider answers without any choice.
	ErrNoChoices = errors.New("completion returned no choices")
)

// PlaceholderClient is used when no provider credential is configured.
type PlaceholderClient struct{}

// Complete returns ErrNotImplemented.
func (PlaceholderClient) Complete(ctx context.Context, req Request) (string, error) {
	_ = ctx
	_ = req
	return "", ErrNotImplemented
}

// SplitSystem separates system turns from the rest of the conversation, for
// providers that take the system instruction out of band.
func SplitSystem(messages []Message) (system string, rest []Message) {
	for _, m := range messages {
		if m.Role == RoleSystem {
			if system != "" {
				system += "\n\n"
			}
			system += m.Content
			continue
		}
		rest = append(rest, m)
	}
	return system, rest
}
