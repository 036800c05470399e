package langchain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/yanqian/weather-assistant/internal/domain/assistant"
)

type stubModel struct {
	messages []llms.MessageContent
	resp     *llms.ContentResponse
	err      error
}

func (s *stubModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	s.messages = messages
	return s.resp, s.err
}

func TestGenerateMapsRolesAndUsage(t *testing.T) {
	model := &stubModel{resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{{
		Content:        "Sunny in Rome.",
		GenerationInfo: map[string]any{"PromptTokens": 40, "CompletionTokens": 4, "TotalTokens": 44},
	}}}}
	gen := &Generator{cfg: Config{Model: "llama-3.1-8b-instant"}, client: model}

	out, err := gen.Generate(context.Background(), "system", []assistant.Message{
		{Role: assistant.RoleUser, Content: "hi"},
		{Role: assistant.RoleAssistant, Content: "hello"},
		{Role: assistant.RoleSystem, Content: "dropped"},
		{Role: assistant.RoleUser, Content: "weather in Rome"},
	})
	require.NoError(t, err)
	require.Equal(t, "Sunny in Rome.", out.Text)
	require.Equal(t, 44, out.Usage.TotalTokens)
	require.Len(t, model.messages, 4)
	require.Equal(t, llms.ChatMessageTypeSystem, model.messages[0].Role)
	require.Equal(t, llms.ChatMessageTypeAI, model.messages[2].Role)
}

func TestGenerateErrors(t *testing.T) {
	gen := &Generator{client: &stubModel{err: errors.New("rate limited")}}
	_, err := gen.Generate(context.Background(), "system", nil)
	require.Error(t, err)

	gen = &Generator{client: &stubModel{resp: &llms.ContentResponse{}}}
	_, err = gen.Generate(context.Background(), "system", nil)
	require.Error(t, err)
}

func TestNewGeneratorRequiresKey(t *testing.T) {
	_, err := NewGenerator(Config{BaseURL: GroqBaseURL})
	require.Error(t, err)
}
