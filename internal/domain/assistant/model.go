package assistant

import (
	"context"

	"github.com/yanqian/weather-assistant/internal/domain/nlu"
	"github.com/yanqian/weather-assistant/internal/domain/suitability"
	"github.com/yanqian/weather-assistant/internal/domain/weather"
	"github.com/yanqian/weather-assistant/pkg/metrics"
)

// Message roles accepted in a chat request.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is one turn of the client supplied conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the payload accepted by the chat endpoints.
type ChatRequest struct {
	Messages  []Message `json:"messages"`
	SessionID string    `json:"session_id,omitempty"`
}

// ResponseType tells the UI how to render a reply.
type ResponseType string

const (
	ResponseEnhancedWeather ResponseType = "enhanced_weather"
	ResponseActivityAdvice  ResponseType = "activity_advice"
	ResponseSmallTalk       ResponseType = "small_talk"
	ResponseError           ResponseType = "error"
)

// StructuredData carries everything the reply was built from.
type StructuredData struct {
	Intent      nlu.Intent             `json:"intent"`
	City        string                 `json:"city"`
	Activity    string                 `json:"activity"`
	TimeContext nlu.TimeContext        `json:"time_context"`
	Confidence  float64                `json:"confidence"`
	Weather     *weather.Snapshot      `json:"weather,omitempty"`
	Forecast    *weather.ForecastEntry `json:"forecast,omitempty"`
	Daily       []weather.DailySummary `json:"daily,omitempty"`
	AirQuality  *weather.AirQuality    `json:"air_quality,omitempty"`
	Verdict     *suitability.Verdict   `json:"verdict,omitempty"`
}

// Response is the reply returned for every chat message.
type Response struct {
	Response       string              `json:"response"`
	ResponseType   ResponseType        `json:"response_type"`
	StructuredData *StructuredData     `json:"structured_data,omitempty"`
	SessionID      string              `json:"session_id"`
	TokenUsage     *metrics.TokenUsage `json:"token_usage,omitempty"`
}

// WeatherClient retrieves weather data for a city.
type WeatherClient interface {
	Current(ctx context.Context, city string) (weather.Snapshot, error)
	Forecast(ctx context.Context, city string) (weather.Forecast, error)
	AirQuality(ctx context.Context, city string) (weather.AirQuality, error)
}

// Generation is the text produced by a Generator.
type Generation struct {
	Text  string
	Usage metrics.TokenUsage
}

// Generator turns a prompt and conversation into reply text.
type Generator interface {
	Generate(ctx context.Context, systemPrompt string, conversation []Message) (Generation, error)
}

// TokenCounter estimates prompt size in model tokens.
type TokenCounter interface {
	Count(text string) int
}
