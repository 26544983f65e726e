package chat

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Chat interface {
	// Send appends prompt to the history, streams the answer through onDelta
	// and appends the completed answer to the history.
	Send(ctx context.Context, prompt string, model string, onDelta func(string)) (SendResult, error)
	GetHistory() []Message
}

type Message struct {
	Role    string
	Content string
}

type SendResult struct {
	Content      string
	FinishReason string
}

type EventKind int

const (
	EventDelta EventKind = iota
	EventDone
	EventError
)

// Event is one notification of a running request: any number of
// EventDelta fragments followed by one EventDone or EventError.
type Event struct {
	Kind EventKind
	Text string
	Err  error
}

func CopyHistory(history []Message) []Message {
	result := make([]Message, len(history))
	copy(result, history)
	return result
}
