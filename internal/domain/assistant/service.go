package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/yanqian/weather-assistant/internal/domain/nlu"
	"github.com/yanqian/weather-assistant/internal/domain/session"
	"github.com/yanqian/weather-assistant/internal/domain/suitability"
	"github.com/yanqian/weather-assistant/internal/domain/weather"
	apperrors "github.com/yanqian/weather-assistant/pkg/errors"
	"github.com/yanqian/weather-assistant/pkg/util"
)

const (
	msgNoInput     = "I didn't receive a message. Please ask me about the weather!"
	msgNeedCity    = "Which city would you like the weather for? For example: \"What's the weather in London?\""
	msgUnavailable = "I'm having trouble reaching the weather service right now. Please try again later."
	msgNotFoundFmt = "Sorry, I couldn't find weather data for '%s'. Please check the city name and try again."
)

// Error codes attached to lookup failures.
const (
	CodeWeatherNotFound    = "weather_not_found"
	CodeWeatherUnavailable = "weather_unavailable"
)

// Service answers chat messages about the weather.
type Service interface {
	// Chat processes the last user message of req against state. It never
	// fails; problems are reported as replies with ResponseError.
	Chat(ctx context.Context, state *session.State, req ChatRequest) Response
}

type service struct {
	cfg        Config
	weather    WeatherClient
	extractor  *nlu.Extractor
	classifier *nlu.Classifier
	scorer     *suitability.Scorer
	formatter  *formatter
	logger     *slog.Logger
	now        func() time.Time
}

// NewService wires the chat pipeline. generator and counter may be nil, in
// which case replies come from the built-in templates.
func NewService(cfg Config, weatherClient WeatherClient, generator Generator, counter TokenCounter, logger *slog.Logger) Service {
	cfg = cfg.withDefaults()
	logger = logger.With("component", "assistant.service")
	return &service{
		cfg:        cfg,
		weather:    weatherClient,
		extractor:  nlu.NewExtractor(),
		classifier: nlu.NewClassifier(),
		scorer:     suitability.NewScorer(),
		formatter:  newFormatter(cfg, generator, counter, logger),
		logger:     logger,
		now:        util.NowUTC,
	}
}

func (s *service) Chat(ctx context.Context, state *session.State, req ChatRequest) Response {
	message, ok := lastUserMessage(req.Messages)
	if !ok {
		return errorReply(state, msgNoInput, nil)
	}

	state.IncrementTurn()
	state.AppendHistory(message)

	if talk, ok := nlu.DetectSmallTalk(message); ok {
		state.SetLanguage(talk.Language)
		s.logger.Debug("small talk", "session", state.ID, "kind", talk.Kind, "language", talk.Language)
		return Response{
			Response:     smallTalkReply(talk),
			ResponseType: ResponseSmallTalk,
			SessionID:    state.ID,
		}
	}

	extraction := s.extractor.Extract(message)
	intent := s.classifier.Classify(message)
	data := &StructuredData{
		Intent:      intent,
		City:        extraction.City,
		Activity:    extraction.Activity,
		TimeContext: extraction.TimeContext,
		Confidence:  extraction.Confidence,
	}

	city := extraction.City
	if !extraction.HasCity() {
		remembered, ok := state.LastCity()
		if !ok {
			return errorReply(state, msgNeedCity, data)
		}
		city = remembered
		data.City = remembered
	}

	if err := s.lookup(ctx, city, message, data); err != nil {
		return s.failureReply(state, city, data, err)
	}

	state.RememberCity(data.City)

	responseType := ResponseEnhancedWeather
	if intent == nlu.IntentActivityPlanning {
		verdict := s.scorer.Score(*data.Weather, extraction.Activity)
		data.Verdict = &verdict
		responseType = ResponseActivityAdvice
	}

	text, usage := s.formatter.Format(ctx, req.Messages, data)
	s.logger.Info("chat reply",
		"session", state.ID,
		"intent", intent,
		"city", data.City,
		"activity", data.Activity,
		"timeContext", data.TimeContext,
		"responseType", responseType,
	)
	return Response{
		Response:       text,
		ResponseType:   responseType,
		StructuredData: data,
		SessionID:      state.ID,
		TokenUsage:     usage,
	}
}

func (s *service) failureReply(state *session.State, city string, data *StructuredData, err error) Response {
	if apperrors.IsCode(err, CodeWeatherNotFound) {
		s.logger.Info("city not found", "session", state.ID, "city", city)
		return errorReply(state, fmt.Sprintf(msgNotFoundFmt, city), data)
	}
	s.logger.Error("weather lookup failed", "session", state.ID, "city", city, "code", apperrors.CodeOf(err), "error", err)
	return errorReply(state, msgUnavailable, data)
}

func errorReply(state *session.State, text string, data *StructuredData) Response {
	return Response{
		Response:       text,
		ResponseType:   ResponseError,
		StructuredData: data,
		SessionID:      state.ID,
	}
}

func lastUserMessage(messages []Message) (string, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if !strings.EqualFold(messages[i].Role, RoleUser) {
			continue
		}
		content := strings.TrimSpace(messages[i].Content)
		if content != "" {
			return content, true
		}
	}
	return "", false
}

func wrapLookupError(err error) error {
	if errors.Is(err, weather.ErrNotFound) {
		return apperrors.Wrap(CodeWeatherNotFound, "weather location not found", err)
	}
	return apperrors.Wrap(CodeWeatherUnavailable, "weather provider failed", err)
}
