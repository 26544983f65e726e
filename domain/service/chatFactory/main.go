package chatFactory

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/openfit/domain/external/claude"
	"github.com/t-kuni/openfit/domain/external/openAi"
	"github.com/t-kuni/openfit/domain/model/chat"
	modelClaude "github.com/t-kuni/openfit/domain/model/chat/claude"
	"github.com/t-kuni/openfit/domain/model/chat/local"
	modelOpenAi "github.com/t-kuni/openfit/domain/model/chat/openAi"
)

const LocalModel = "local"

type Driver string

const (
	DriverOpenAi    Driver = "open-ai"
	DriverAnthropic Driver = "anthropic"
	DriverLocal     Driver = "local"
)

type ChatFactory struct {
	openAiClient openAi.Client
	claudeClient claude.Client
}

func NewChatFactory(openAiClient openAi.Client, claudeClient claude.Client) *ChatFactory {
	return &ChatFactory{
		openAiClient: openAiClient,
		claudeClient: claudeClient,
	}
}

// DriverOf picks the API serving model.
func DriverOf(model string) Driver {
	switch {
	case model == LocalModel:
		return DriverLocal
	case strings.HasPrefix(model, "claude-"):
		return DriverAnthropic
	default:
		return DriverOpenAi
	}
}

// Make builds a chat for model continuing history. openAiToken is the token
// stored in the program data; OPENAI_API_KEY is used when it is empty.
func (s *ChatFactory) Make(model string, system string, openAiToken string, history []chat.Message) (chat.Chat, error) {
	switch DriverOf(model) {
	case DriverLocal:
		return local.NewLocalChat(history), nil
	case DriverAnthropic:
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, eris.New("ANTHROPIC_API_KEY is not set")
		}
		return modelClaude.NewClaudeChat(s.claudeClient, apiKey, system, history), nil
	default:
		apiKey := openAiToken
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		if apiKey == "" {
			return nil, eris.New("OpenAI token is not set: store it in the assistant section or set OPENAI_API_KEY")
		}
		return modelOpenAi.NewOpenAiChat(s.openAiClient, apiKey, system, history), nil
	}
}
