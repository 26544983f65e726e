package openAi

import (
	"context"

	"github.com/t-kuni/openfit/domain/external/openAi"
	"github.com/t-kuni/openfit/domain/model/chat"
)

type OpenAiChat struct {
	client  openAi.Client
	apiKey  string
	system  string
	history []chat.Message
}

func NewOpenAiChat(client openAi.Client, apiKey string, system string, history []chat.Message) *OpenAiChat {
	return &OpenAiChat{
		client:  client,
		apiKey:  apiKey,
		system:  system,
		history: chat.CopyHistory(history),
	}
}

func (c *OpenAiChat) Send(ctx context.Context, prompt string, model string, onDelta func(string)) (chat.SendResult, error) {
	c.history = append(c.history, chat.Message{Role: chat.RoleUser, Content: prompt})

	messages := make([]openAi.Message, 0, len(c.history)+1)
	if c.system != "" {
		messages = append(messages, openAi.NewMessage(chat.RoleSystem, c.system))
	}
	for _, msg := range c.history {
		messages = append(messages, openAi.NewMessage(msg.Role, msg.Content))
	}

	response, err := c.client.SendMessage(ctx, c.apiKey, messages, model, onDelta)
	if err != nil {
		return chat.SendResult{}, err
	}

	c.history = append(c.history, chat.Message{Role: chat.RoleAssistant, Content: response.Content})

	return chat.SendResult{
		Content:      response.Content,
		FinishReason: response.TerminationReason,
	}, nil
}

func (c *OpenAiChat) GetHistory() []chat.Message {
	return chat.CopyHistory(c.history)
}
