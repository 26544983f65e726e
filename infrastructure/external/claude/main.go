package claude

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/t-kuni/openfit/domain/external/claude"
)

const apiURL = "https://api.anthropic.com/v1/messages"

type ClaudeClient struct {
	httpClient *resty.Client
	url        string
}

func NewClaudeClient() *ClaudeClient {
	client := resty.New()
	client.SetHeader("anthropic-version", "2023-06-01")
	client.SetHeader("Content-Type", "application/json")

	return &ClaudeClient{
		httpClient: client,
		url:        apiURL,
	}
}

func (c *ClaudeClient) SendMessage(
	ctx context.Context,
	apiKey string,
	system string,
	messages []claude.Message,
	model string,
	onDelta func(string),
) (claude.GenerationResult, error) {
	requestBody := ClaudeRequest{
		Model:     model,
		System:    system,
		MaxTokens: 4096,
		Messages:  convertMessages(messages),
		Stream:    true,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return claude.GenerationResult{}, fmt.Errorf("failed to marshal request body: %w", err)
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("x-api-key", apiKey).
		SetBody(jsonBody).
		SetDoNotParseResponse(true).
		Post(c.url)

	if err != nil {
		return claude.GenerationResult{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.RawBody().Close()

	if resp.StatusCode() != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.RawBody())
		return claude.GenerationResult{}, fmt.Errorf("API request failed with status code %d and response: %s", resp.StatusCode(), string(bodyBytes))
	}

	return processStreamResponse(resp.RawBody(), onDelta)
}

func convertMessages(messages []claude.Message) []Message {
	converted := make([]Message, len(messages))
	for i, msg := range messages {
		converted[i] = Message{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}
	return converted
}

func processStreamResponse(body io.ReadCloser, onDelta func(string)) (claude.GenerationResult, error) {
	reader := bufio.NewReader(body)
	var fullResponse strings.Builder
	var stopReason string

	for {
		line, err := reader.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return claude.GenerationResult{}, fmt.Errorf("error reading stream: %w", err)
		}
		eof := err == io.EOF

		line = bytes.TrimSpace(line)
		if data := bytes.TrimPrefix(line, []byte("data: ")); len(data) > 0 && len(data) < len(line) {
			var streamResp StreamResponse
			if err := json.Unmarshal(data, &streamResp); err != nil {
				return claude.GenerationResult{}, fmt.Errorf("failed to unmarshal stream data: %w", err)
			}

			switch streamResp.Type {
			case "content_block_delta":
				fullResponse.WriteString(streamResp.Delta.Text)
				if onDelta != nil && streamResp.Delta.Text != "" {
					onDelta(streamResp.Delta.Text)
				}
			case "message_delta":
				if streamResp.Delta.StopReason != "" {
					stopReason = streamResp.Delta.StopReason
				}
			case "error":
				return claude.GenerationResult{}, fmt.Errorf("stream error: %s", streamResp.Error.Message)
			}
		}

		if eof {
			break
		}
	}

	return claude.GenerationResult{
		Content:           fullResponse.String(),
		TerminationReason: stopReason,
	}, nil
}

type ClaudeRequest struct {
	Model     string    `json:"model"`
	System    string    `json:"system,omitempty"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
	Stream    bool      `json:"stream"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type StreamResponse struct {
	Type  string `json:"type"`
	Delta struct {
		Type       string `json:"type"`
		Text       string `json:"text"`
		StopReason string `json:"stop_reason"`
	} `json:"delta"`
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}
