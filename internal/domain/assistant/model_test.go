package assistant

import (
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/weather-assistant/internal/domain/nlu"
	"github.com/yanqian/weather-assistant/internal/domain/suitability"
	"github.com/yanqian/weather-assistant/internal/domain/weather"
	"github.com/yanqian/weather-assistant/pkg/metrics"
)

var snakeKey = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)

func TestResponseJSONKeysAreSnakeCase(t *testing.T) {
	snapshot := weather.Snapshot{Location: "Mumbai", Temperature: 29, FeelsLike: 33, Humidity: 70, WindSpeed: 4, ObservedAt: time.Unix(0, 0).UTC()}
	verdict := suitability.NewScorer().Score(snapshot, "cricket")
	usage := metrics.NewTokenUsage(10, 5, 0)
	resp := Response{
		Response:     "ok",
		ResponseType: ResponseActivityAdvice,
		SessionID:    "s1",
		TokenUsage:   &usage,
		StructuredData: &StructuredData{
			Intent:      nlu.IntentActivityPlanning,
			City:        "Mumbai",
			Activity:    "cricket",
			TimeContext: nlu.TimeTomorrow,
			Weather:     &snapshot,
			Forecast:    &weather.ForecastEntry{Snapshot: snapshot, Time: time.Unix(3600, 0).UTC()},
			Daily:       []weather.DailySummary{{Date: "2024-06-02", MinTemp: 27, MaxTemp: 32}},
			AirQuality:  &weather.AirQuality{AQI: 2, Label: "Fair"},
			Verdict:     &verdict,
		},
	}

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	var decoded any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	var walk func(v any)
	walk = func(v any) {
		switch node := v.(type) {
		case map[string]any:
			for k, child := range node {
				require.Regexp(t, snakeKey, k)
				walk(child)
			}
		case []any:
			for _, child := range node {
				walk(child)
			}
		}
	}
	walk(decoded)
	require.Contains(t, string(raw), `"feels_like":33`)
	require.Contains(t, string(raw), `"wind_speed":4`)
}
