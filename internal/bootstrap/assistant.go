package bootstrap

import (
	"log/slog"

	"github.com/yanqian/weather-assistant/internal/domain/assistant"
	"github.com/yanqian/weather-assistant/internal/infra/config"
	"github.com/yanqian/weather-assistant/internal/infra/llm/chatgpt"
	"github.com/yanqian/weather-assistant/internal/infra/llm/langchain"
	"github.com/yanqian/weather-assistant/internal/infra/llm/tokens"
	"github.com/yanqian/weather-assistant/internal/infra/weather/openweather"
)

// NewAssistantConfig maps the LLM section onto the assistant settings.
func NewAssistantConfig(cfg *config.Config) assistant.Config {
	return assistant.Config{
		SystemPrompt:       cfg.LLM.SystemPrompt,
		GenerationTimeout:  cfg.LLM.Timeout,
		HistoryTokenBudget: cfg.LLM.HistoryTokenBudget,
	}
}

// NewWeatherClient builds the OpenWeatherMap client.
func NewWeatherClient(cfg *config.Config, logger *slog.Logger) (*openweather.Client, error) {
	return openweather.NewClient(openweather.Config{
		APIKey:        cfg.Weather.APIKey,
		BaseURL:       cfg.Weather.BaseURL,
		Timeout:       cfg.Weather.Timeout,
		RetryAttempts: cfg.Weather.RetryAttempts,
		RetryDelay:    cfg.Weather.RetryDelay,
		CacheTTL:      cfg.Weather.CacheTTL,
		CacheSize:     cfg.Weather.CacheSize,
	}, logger)
}

// NewGenerator selects the reply generator. It returns a nil Generator when
// no provider is configured so replies come from templates.
func NewGenerator(cfg *config.Config, logger *slog.Logger) (assistant.Generator, error) {
	switch cfg.LLM.ResolvedProvider() {
	case config.ProviderOpenAI:
		client, err := chatgpt.NewClient(cfg.LLM.OpenAIAPIKey, cfg.LLM.OpenAIBaseURL)
		if err != nil {
			return nil, err
		}
		logger.Info("llm generator enabled", "provider", config.ProviderOpenAI, "model", cfg.LLM.OpenAIModel)
		return chatgpt.NewGenerator(chatgpt.GeneratorConfig{
			Model:       cfg.LLM.OpenAIModel,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
		}, client), nil
	case config.ProviderGroq:
		baseURL := cfg.LLM.GroqBaseURL
		if baseURL == "" {
			baseURL = langchain.GroqBaseURL
		}
		generator, err := langchain.NewGenerator(langchain.Config{
			APIKey:      cfg.LLM.GroqAPIKey,
			BaseURL:     baseURL,
			Model:       cfg.LLM.GroqModel,
			Temperature: float64(cfg.LLM.Temperature),
			MaxTokens:   cfg.LLM.MaxTokens,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("llm generator enabled", "provider", config.ProviderGroq, "model", cfg.LLM.GroqModel)
		return generator, nil
	default:
		logger.Info("no llm provider configured, using template replies")
		return nil, nil
	}
}

// NewTokenCounter picks the tokenizer matching the active model and loads it
// before the first request.
func NewTokenCounter(cfg *config.Config, logger *slog.Logger) assistant.TokenCounter {
	model := cfg.LLM.OpenAIModel
	if cfg.LLM.ResolvedProvider() == config.ProviderGroq {
		model = cfg.LLM.GroqModel
	}
	counter := tokens.NewCounter(model, logger)
	counter.Warm()
	return counter
}

// NewAssistant assembles the full assistant service from configuration.
func NewAssistant(cfg *config.Config, logger *slog.Logger) (assistant.Service, error) {
	weatherClient, err := NewWeatherClient(cfg, logger)
	if err != nil {
		return nil, err
	}
	generator, err := NewGenerator(cfg, logger)
	if err != nil {
		return nil, err
	}
	return assistant.NewService(NewAssistantConfig(cfg), weatherClient, generator, NewTokenCounter(cfg, logger), logger), nil
}
