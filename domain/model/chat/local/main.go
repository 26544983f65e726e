package local

import (
	"context"
	_ "embed"
	"strings"

	"github.com/t-kuni/openfit/domain/model/chat"
)

//go:embed result.txt
var resultContent string

// LocalChat answers every prompt with the embedded result.txt without any
// network access. Useful for trying the assistant offline.
type LocalChat struct {
	history []chat.Message
}

func NewLocalChat(history []chat.Message) *LocalChat {
	return &LocalChat{history: chat.CopyHistory(history)}
}

func (l *LocalChat) Send(ctx context.Context, prompt string, model string, onDelta func(string)) (chat.SendResult, error) {
	l.history = append(l.history, chat.Message{Role: chat.RoleUser, Content: prompt})

	var content strings.Builder
	for _, word := range strings.SplitAfter(resultContent, " ") {
		if err := ctx.Err(); err != nil {
			return chat.SendResult{}, err
		}
		content.WriteString(word)
		if onDelta != nil {
			onDelta(word)
		}
	}

	l.history = append(l.history, chat.Message{Role: chat.RoleAssistant, Content: content.String()})

	return chat.SendResult{
		Content:      content.String(),
		FinishReason: "stop",
	}, nil
}

func (l *LocalChat) GetHistory() []chat.Message {
	return chat.CopyHistory(l.history)
}
