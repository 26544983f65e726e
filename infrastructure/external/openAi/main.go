package openAi

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
	domainOpenAI "github.com/t-kuni/openfit/domain/external/openAi"
)

const apiURL = "https://api.openai.com/v1/chat/completions"

type OpenAIClient struct {
	httpClient *resty.Client
	url        string
}

type apiRequest struct {
	Model          string            `json:"model"`
	Messages       []apiMessageItem  `json:"messages"`
	Stream         bool              `json:"stream"`
	ResponseFormat apiResponseFormat `json:"response_format"`
}

type apiResponseFormat struct {
	Type string `json:"type"`
}

type apiMessageItem struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiResponse struct {
	Choices []struct {
		Delta struct {
			Content *string `json:"content"`
		} `json:"delta"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func NewOpenAIClient() *OpenAIClient {
	client := resty.New()
	client.SetHeader("Content-Type", "application/json")

	return &OpenAIClient{
		httpClient: client,
		url:        apiURL,
	}
}

func (c *OpenAIClient) SendMessage(
	ctx context.Context,
	apiKey string,
	messages []domainOpenAI.Message,
	model string,
	onDelta func(string),
) (domainOpenAI.GenerationResult, error) {
	apiMessages := make([]apiMessageItem, len(messages))
	for i, msg := range messages {
		apiMessages[i] = apiMessageItem{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	reqBody := apiRequest{
		Model:          model,
		Messages:       apiMessages,
		Stream:         true,
		ResponseFormat: apiResponseFormat{Type: "text"},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return domainOpenAI.GenerationResult{}, fmt.Errorf("failed to marshal request body: %w", err)
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetBody(jsonBody).
		SetDoNotParseResponse(true).
		Post(c.url)

	if err != nil {
		return domainOpenAI.GenerationResult{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.RawBody().Close()

	if resp.StatusCode() != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.RawBody())
		return domainOpenAI.GenerationResult{}, fmt.Errorf("API request failed with status code %d and response: %s", resp.StatusCode(), string(bodyBytes))
	}

	return processStreamResponse(resp.RawBody(), onDelta)
}

func processStreamResponse(body io.ReadCloser, onDelta func(string)) (domainOpenAI.GenerationResult, error) {
	reader := bufio.NewReader(body)
	var fullResponse strings.Builder
	var terminationReason string

	for {
		line, err := reader.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return domainOpenAI.GenerationResult{}, fmt.Errorf("error reading stream: %w", err)
		}
		eof := err == io.EOF

		line = bytes.TrimSpace(line)
		if bytes.HasPrefix(line, []byte("data: ")) {
			data := bytes.TrimPrefix(line, []byte("data: "))
			if string(data) == "[DONE]" {
				break
			}

			var streamResp apiResponse
			if err := json.Unmarshal(data, &streamResp); err != nil {
				return domainOpenAI.GenerationResult{}, fmt.Errorf("failed to unmarshal stream data: %w", err)
			}

			if len(streamResp.Choices) > 0 {
				choice := streamResp.Choices[0]
				if choice.Delta.Content != nil && *choice.Delta.Content != "" {
					fullResponse.WriteString(*choice.Delta.Content)
					if onDelta != nil {
						onDelta(*choice.Delta.Content)
					}
				}
				if choice.FinishReason != "" {
					terminationReason = choice.FinishReason
				}
			}
		}

		if eof {
			break
		}
	}

	return domainOpenAI.GenerationResult{
		Content:           fullResponse.String(),
		TerminationReason: terminationReason,
	}, nil
}
