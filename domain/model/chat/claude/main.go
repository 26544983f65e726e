package claude

import (
	"context"

	"github.com/t-kuni/openfit/domain/external/claude"
	"github.com/t-kuni/openfit/domain/model/chat"
)

type ClaudeChat struct {
	client  claude.Client
	apiKey  string
	system  string
	history []chat.Message
}

func NewClaudeChat(client claude.Client, apiKey string, system string, history []chat.Message) *ClaudeChat {
	return &ClaudeChat{
		client:  client,
		apiKey:  apiKey,
		system:  system,
		history: chat.CopyHistory(history),
	}
}

func (c *ClaudeChat) Send(ctx context.Context, prompt string, model string, onDelta func(string)) (chat.SendResult, error) {
	// Add user message to history
	c.history = append(c.history, chat.Message{Role: chat.RoleUser, Content: prompt})

	// Convert history to Claude messages
	claudeMessages := make([]claude.Message, len(c.history))
	for i, msg := range c.history {
		claudeMessages[i] = claude.Message{Role: msg.Role, Content: msg.Content}
	}

	response, err := c.client.SendMessage(ctx, c.apiKey, c.system, claudeMessages, model, onDelta)
	if err != nil {
		return chat.SendResult{}, err
	}

	// Add assistant response to history
	c.history = append(c.history, chat.Message{Role: chat.RoleAssistant, Content: response.Content})

	return chat.SendResult{
		Content:      response.Content,
		FinishReason: response.TerminationReason,
	}, nil
}

func (c *ClaudeChat) GetHistory() []chat.Message {
	return chat.CopyHistory(c.history)
}
