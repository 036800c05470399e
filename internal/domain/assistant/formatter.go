package assistant

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/yanqian/weather-assistant/internal/domain/nlu"
	"github.com/yanqian/weather-assistant/internal/domain/session"
	"github.com/yanqian/weather-assistant/pkg/metrics"
)

var intentGuidance = map[nlu.Intent]string{
	nlu.IntentBasicWeather:      "Summarise the conditions and any forecast days.",
	nlu.IntentActivityPlanning:  "Explain the suitability verdict for the activity and the factors that drove it. Never contradict the verdict.",
	nlu.IntentClothingAdvice:    "Recommend what to wear for these conditions.",
	nlu.IntentTravelPlanning:    "Point out anything that could affect travel plans.",
	nlu.IntentComfortAssessment: "Describe how comfortable it will feel outside.",
}

// formatter renders reply text through the Generator and falls back to the
// deterministic templates whenever generation is unavailable.
type formatter struct {
	cfg       Config
	generator Generator
	counter   TokenCounter
	logger    *slog.Logger
}

func newFormatter(cfg Config, generator Generator, counter TokenCounter, logger *slog.Logger) *formatter {
	return &formatter{cfg: cfg, generator: generator, counter: counter, logger: logger}
}

// Format returns the reply text and, when the generator answered, the token
// usage of that call.
func (f *formatter) Format(ctx context.Context, conversation []Message, data *StructuredData) (string, *metrics.TokenUsage) {
	if f.generator == nil {
		return renderTemplate(data), nil
	}

	genCtx, cancel := context.WithTimeout(ctx, f.cfg.GenerationTimeout)
	defer cancel()

	prompt := f.systemPrompt(data)
	history := f.trimHistory(conversation)
	gen, err := f.generator.Generate(genCtx, prompt, history)
	if err != nil {
		f.logger.Warn("generator failed, using template", "intent", data.Intent, "error", err)
		return renderTemplate(data), nil
	}
	text := strings.TrimSpace(gen.Text)
	if text == "" {
		f.logger.Warn("generator returned empty text, using template", "intent", data.Intent)
		return renderTemplate(data), nil
	}

	usage := gen.Usage
	if usage.IsZero() && f.counter != nil {
		usage = f.estimateUsage(prompt, history, text)
	}
	return text, &usage
}

func (f *formatter) systemPrompt(data *StructuredData) string {
	var b strings.Builder
	b.WriteString(f.cfg.SystemPrompt)
	if guidance := intentGuidance[data.Intent]; guidance != "" {
		b.WriteString(" ")
		b.WriteString(guidance)
	}
	payload, err := json.Marshal(data)
	if err != nil {
		payload = []byte("{}")
	}
	b.WriteString("\n\nWeather data (JSON):\n")
	b.Write(payload)
	return b.String()
}

// trimHistory keeps the most recent user and assistant turns that fit in the
// token budget. The final message is always kept.
func (f *formatter) trimHistory(conversation []Message) []Message {
	filtered := make([]Message, 0, len(conversation))
	for _, m := range conversation {
		role := strings.ToLower(m.Role)
		if (role != RoleUser && role != RoleAssistant) || strings.TrimSpace(m.Content) == "" {
			continue
		}
		filtered = append(filtered, Message{Role: role, Content: m.Content})
	}
	if len(filtered) == 0 {
		return filtered
	}

	if f.counter == nil {
		if len(filtered) > session.MaxHistory {
			filtered = filtered[len(filtered)-session.MaxHistory:]
		}
		return filtered
	}

	start := len(filtered) - 1
	used := f.counter.Count(filtered[start].Content)
	for start > 0 {
		cost := f.counter.Count(filtered[start-1].Content)
		if used+cost > f.cfg.HistoryTokenBudget {
			break
		}
		used += cost
		start--
	}
	return filtered[start:]
}

func (f *formatter) estimateUsage(prompt string, history []Message, reply string) metrics.TokenUsage {
	promptTokens := f.counter.Count(prompt)
	for _, m := range history {
		promptTokens += f.counter.Count(m.Content)
	}
	return metrics.NewTokenUsage(promptTokens, f.counter.Count(reply), 0)
}
