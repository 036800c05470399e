package bootstrap

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/weather-assistant/internal/infra/config"
	"github.com/yanqian/weather-assistant/internal/infra/llm/chatgpt"
	"github.com/yanqian/weather-assistant/internal/infra/llm/langchain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewGenerator_SelectsProvider(t *testing.T) {
	cfg := &config.Config{LLM: config.LLMConfig{Provider: config.ProviderAuto}}
	generator, err := NewGenerator(cfg, discardLogger())
	require.NoError(t, err)
	require.Nil(t, generator)

	cfg.LLM.OpenAIAPIKey = "sk-test"
	cfg.LLM.OpenAIModel = "gpt-4o-mini"
	generator, err = NewGenerator(cfg, discardLogger())
	require.NoError(t, err)
	require.IsType(t, &chatgpt.Generator{}, generator)

	cfg.LLM.GroqAPIKey = "gsk-test"
	cfg.LLM.GroqModel = "llama-3.1-8b-instant"
	generator, err = NewGenerator(cfg, discardLogger())
	require.NoError(t, err)
	require.IsType(t, &langchain.Generator{}, generator)
}

func TestNewAssistant_RequiresWeatherKey(t *testing.T) {
	cfg := &config.Config{
		Weather: config.WeatherConfig{Timeout: time.Second},
		LLM:     config.LLMConfig{Provider: config.ProviderNone},
	}
	_, err := NewAssistant(cfg, discardLogger())
	require.Error(t, err)

	cfg.Weather.APIKey = "owm-key"
	svc, err := NewAssistant(cfg, discardLogger())
	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAssistantConfig(t *testing.T) {
	cfg := &config.Config{LLM: config.LLMConfig{SystemPrompt: "be brief", Timeout: 3 * time.Second, HistoryTokenBudget: 200}}
	got := NewAssistantConfig(cfg)
	require.Equal(t, "be brief", got.SystemPrompt)
	require.Equal(t, 3*time.Second, got.GenerationTimeout)
	require.Equal(t, 200, got.HistoryTokenBudget)
}
