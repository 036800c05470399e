package langchain

import (
	"context"
	"errors"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/yanqian/weather-assistant/internal/domain/assistant"
	"github.com/yanqian/weather-assistant/pkg/metrics"
)

// GroqBaseURL is the OpenAI compatible endpoint of Groq.
const GroqBaseURL = "https://api.groq.com/openai/v1"

// Config selects the model behind the generator.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
}

type contentGenerator interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// Generator implements assistant.Generator on top of a langchaingo model.
type Generator struct {
	cfg    Config
	client contentGenerator
}

// NewGenerator builds a generator for any OpenAI compatible host.
func NewGenerator(cfg Config) (*Generator, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("langchain generator api key cannot be empty")
	}
	opts := []openai.Option{
		openai.WithModel(cfg.Model),
		openai.WithToken(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	client, err := openai.New(opts...)
	if err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, client: client}, nil
}

// Generate implements assistant.Generator.
func (g *Generator) Generate(ctx context.Context, systemPrompt string, conversation []assistant.Message) (assistant.Generation, error) {
	messages := make([]llms.MessageContent, 0, len(conversation)+1)
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt))
	for _, m := range conversation {
		switch m.Role {
		case assistant.RoleUser:
			messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, m.Content))
		case assistant.RoleAssistant:
			messages = append(messages, llms.TextParts(llms.ChatMessageTypeAI, m.Content))
		}
	}

	opts := []llms.CallOption{llms.WithModel(g.cfg.Model)}
	if g.cfg.Temperature != 0 {
		opts = append(opts, llms.WithTemperature(g.cfg.Temperature))
	}
	if g.cfg.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(g.cfg.MaxTokens))
	}

	resp, err := g.client.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return assistant.Generation{}, err
	}
	if len(resp.Choices) == 0 {
		return assistant.Generation{}, errors.New("empty response from model")
	}
	choice := resp.Choices[0]
	return assistant.Generation{
		Text:  choice.Content,
		Usage: usageFrom(choice.GenerationInfo),
	}, nil
}

func usageFrom(info map[string]any) metrics.TokenUsage {
	return metrics.NewTokenUsage(
		intField(info, "PromptTokens"),
		intField(info, "CompletionTokens"),
		intField(info, "TotalTokens"),
	)
}

func intField(info map[string]any, key string) int {
	switch v := info[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

var _ assistant.Generator = (*Generator)(nil)
