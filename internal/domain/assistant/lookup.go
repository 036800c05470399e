package assistant

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/yanqian/weather-assistant/internal/domain/nlu"
	"github.com/yanqian/weather-assistant/internal/domain/weather"
)

// Local hour each forecast time context refers to.
var targetHours = map[nlu.TimeContext]int{
	nlu.TimeMorning:   9,
	nlu.TimeAfternoon: 15,
	nlu.TimeEvening:   18,
	nlu.TimeTonight:   21,
	nlu.TimeTomorrow:  12,
}

var (
	dailyKeywords      = []string{"forecast", "week", "days"}
	airQualityKeywords = []string{"air quality", "aqi", "pollution", "smog"}
)

var errEmptyForecast = errors.New("forecast has no entries")

// lookup fills data with the weather needed to answer message. Current
// conditions or the chosen forecast entry are mandatory; the daily summary
// and air quality are best effort.
func (s *service) lookup(ctx context.Context, city, message string, data *StructuredData) error {
	lowered := strings.ToLower(message)

	var forecast *weather.Forecast
	loadForecast := func() (weather.Forecast, error) {
		if forecast != nil {
			return *forecast, nil
		}
		f, err := s.weather.Forecast(ctx, city)
		if err != nil {
			return weather.Forecast{}, err
		}
		forecast = &f
		return f, nil
	}

	if usesCurrent(data.TimeContext) {
		snapshot, err := s.weather.Current(ctx, city)
		if err != nil {
			return wrapLookupError(err)
		}
		data.Weather = &snapshot
	} else {
		f, err := loadForecast()
		if err != nil {
			return wrapLookupError(err)
		}
		entry, ok := f.Nearest(s.targetTime(f, data.TimeContext))
		if !ok {
			return wrapLookupError(errEmptyForecast)
		}
		snapshot := entry.Snapshot
		if snapshot.Location == "" {
			snapshot.Location = f.Location
			snapshot.Country = f.Country
		}
		data.Weather = &snapshot
		data.Forecast = &entry
	}
	if data.Weather.Location != "" {
		data.City = data.Weather.Location
	}

	if data.Intent == nlu.IntentBasicWeather && containsAny(lowered, dailyKeywords) {
		if f, err := loadForecast(); err != nil {
			s.logger.Warn("daily forecast unavailable", "city", city, "error", err)
		} else {
			data.Daily = f.Daily()
		}
	}

	if containsAny(lowered, airQualityKeywords) {
		if aq, err := s.weather.AirQuality(ctx, city); err != nil {
			s.logger.Warn("air quality unavailable", "city", city, "error", err)
		} else {
			data.AirQuality = &aq
		}
	}
	return nil
}

func usesCurrent(tc nlu.TimeContext) bool {
	return tc == nlu.TimeNow || tc == nlu.TimeToday || tc == ""
}

// targetTime resolves a time context to an instant in the forecast's local
// zone. Periods that already passed today roll over to tomorrow.
func (s *service) targetTime(f weather.Forecast, tc nlu.TimeContext) time.Time {
	local := s.now().In(f.Zone())
	hour, ok := targetHours[tc]
	if !ok {
		return local
	}
	target := time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, local.Location())
	if tc == nlu.TimeTomorrow || target.Before(local) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
