//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package claude

import "context"

// Client はClaude APIとの通信を抽象化するインターフェースです。
type Client interface {
	// SendMessage はメッセージを送信し、ストリーミングで応答を受け取ります。
	// system はsystemプロンプトとして送信されます。
	// 応答の断片を受け取るたびに onDelta が呼ばれます。
	// ステータスコード200以外が返却された場合、レスポンスボディ全体をエラーメッセージに含めます。
	SendMessage(ctx context.Context, apiKey string, system string, messages []Message, model string, onDelta func(string)) (GenerationResult, error)
}

// Message はClaude APIに送信するメッセージの構造を表します。
type Message struct {
	Role    string
	Content string
}

// ModelName はClaude APIで使用可能なモデル名を定義する型です。
type ModelName string

const (
	ModelClaude3Opus    ModelName = "claude-3-opus-20240229"
	ModelClaude35Sonnet ModelName = "claude-3-5-sonnet-20240620"
	ModelClaude3Haiku   ModelName = "claude-3-haiku-20240307"
)

// NewMessage は新しいMessageインスタンスを作成します。
func NewMessage(role, content string) Message {
	return Message{
		Role:    role,
		Content: content,
	}
}

// GetAvailableModels は利用可能なすべてのモデル名を返します。
func GetAvailableModels() []ModelName {
	return []ModelName{
		ModelClaude3Opus,
		ModelClaude35Sonnet,
		ModelClaude3Haiku,
	}
}

// GenerationResult は生成結果を表す構造体です。
type GenerationResult struct {
	Content           string
	TerminationReason string
}
