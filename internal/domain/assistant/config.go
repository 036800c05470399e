package assistant

import "time"

// Config tunes the chat pipeline and the reply formatter.
type Config struct {
	SystemPrompt       string
	GenerationTimeout  time.Duration
	HistoryTokenBudget int
}

const (
	defaultGenerationTimeout  = 10 * time.Second
	defaultHistoryTokenBudget = 1000
	defaultSystemPrompt       = "You are a friendly weather assistant. Answer the user's latest message using only the weather data provided below. Be concise (under 120 words), mention the city, and give practical advice when the user asks about activities, clothing, travel or comfort."
)

func (c Config) withDefaults() Config {
	if c.GenerationTimeout <= 0 {
		c.GenerationTimeout = defaultGenerationTimeout
	}
	if c.HistoryTokenBudget <= 0 {
		c.HistoryTokenBudget = defaultHistoryTokenBudget
	}
	if c.SystemPrompt == "" {
		c.SystemPrompt = defaultSystemPrompt
	}
	return c
}
