package chatgpt

import (
	"context"
	"errors"

	"github.com/yanqian/weather-assistant/internal/domain/assistant"
	"github.com/yanqian/weather-assistant/pkg/metrics"
)

// ChatClient is the subset of Client used by Generator.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req ChatCompletionRequest) (ChatCompletionResponse, error)
}

// GeneratorConfig holds the completion parameters.
type GeneratorConfig struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// Generator adapts the chat completions API to assistant.Generator.
type Generator struct {
	cfg    GeneratorConfig
	client ChatClient
}

// NewGenerator wraps client.
func NewGenerator(cfg GeneratorConfig, client ChatClient) *Generator {
	return &Generator{cfg: cfg, client: client}
}

// Generate implements assistant.Generator.
func (g *Generator) Generate(ctx context.Context, systemPrompt string, conversation []assistant.Message) (assistant.Generation, error) {
	messages := make([]Message, 0, len(conversation)+1)
	messages = append(messages, Message{Role: "system", Content: systemPrompt})
	for _, m := range conversation {
		messages = append(messages, Message{Role: m.Role, Content: m.Content})
	}

	resp, err := g.client.CreateChatCompletion(ctx, ChatCompletionRequest{
		Model:       g.cfg.Model,
		Messages:    messages,
		Temperature: g.cfg.Temperature,
		MaxTokens:   g.cfg.MaxTokens,
	})
	if err != nil {
		return assistant.Generation{}, err
	}
	if len(resp.Choices) == 0 {
		return assistant.Generation{}, errors.New("chatgpt returned no choices")
	}
	return assistant.Generation{
		Text:  resp.Choices[0].Message.Content,
		Usage: metrics.NewTokenUsage(resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens),
	}, nil
}

var _ assistant.Generator = (*Generator)(nil)
