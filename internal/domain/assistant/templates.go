package assistant

import (
	"fmt"
	"strings"

	"github.com/yanqian/weather-assistant/internal/domain/nlu"
	"github.com/yanqian/weather-assistant/internal/domain/suitability"
	"github.com/yanqian/weather-assistant/internal/domain/weather"
)

var timePhrases = map[nlu.TimeContext]string{
	nlu.TimeMorning:   "in the morning",
	nlu.TimeAfternoon: "in the afternoon",
	nlu.TimeEvening:   "in the evening",
	nlu.TimeTonight:   "tonight",
	nlu.TimeTomorrow:  "tomorrow",
}

// renderTemplate builds the deterministic reply for data. It is used whenever
// the generator is missing or fails.
func renderTemplate(data *StructuredData) string {
	if data == nil || data.Weather == nil {
		return msgUnavailable
	}
	var b strings.Builder
	switch data.Intent {
	case nlu.IntentActivityPlanning:
		writeActivity(&b, data)
	case nlu.IntentClothingAdvice:
		writeConditions(&b, data)
		b.WriteString(" ")
		b.WriteString(clothingAdvice(*data.Weather))
	case nlu.IntentTravelPlanning:
		writeConditions(&b, data)
		b.WriteString(" ")
		b.WriteString(travelAdvice(*data.Weather))
	case nlu.IntentComfortAssessment:
		writeConditions(&b, data)
		b.WriteString(" ")
		b.WriteString(comfortAssessment(*data.Weather))
	default:
		writeConditions(&b, data)
	}
	writeAirQuality(&b, data.AirQuality)
	writeDaily(&b, data.Daily)
	return b.String()
}

func writeConditions(b *strings.Builder, data *StructuredData) {
	w := data.Weather
	if data.Forecast != nil {
		when := timePhrases[data.TimeContext]
		if when == "" {
			when = "later"
		}
		fmt.Fprintf(b, "Forecast for %s %s: %.1f°C, feels like %.1f°C, %s.",
			data.City, when, w.Temperature, w.FeelsLike, w.Description)
	} else {
		fmt.Fprintf(b, "Right now in %s it's %.1f°C (feels like %.1f°C) with %s.",
			data.City, w.Temperature, w.FeelsLike, w.Description)
	}
	fmt.Fprintf(b, " Humidity is %d%% and wind is %.1f m/s.", w.Humidity, w.WindSpeed)
	if w.Precipitation > 0 {
		fmt.Fprintf(b, " Expected precipitation: %.1f mm.", w.Precipitation)
	}
}

func writeActivity(b *strings.Builder, data *StructuredData) {
	v := data.Verdict
	if v == nil || v.Reason == suitability.ReasonUnrecognized {
		b.WriteString("I can't rate that activity yet. I can check: ")
		b.WriteString(strings.Join(suitability.ActivityNames(), ", "))
		b.WriteString(". ")
		writeConditions(b, data)
		return
	}

	fmt.Fprintf(b, "Conditions for %s in %s are %s (score %d/100).", v.Activity, data.City, v.Recommendation, v.Confidence)
	for _, factor := range v.Factors {
		fmt.Fprintf(b, "\n- %s %s: %s", titleWord(factor.Name), factor.Value, factor.Impact)
	}
	b.WriteString("\n")
	if v.Suitable {
		fmt.Fprintf(b, "Looks like a good time for %s!", v.Activity)
	} else {
		fmt.Fprintf(b, "I'd reconsider %s or pick an indoor alternative.", v.Activity)
	}
}

func clothingAdvice(w weather.Snapshot) string {
	var parts []string
	switch {
	case w.FeelsLike < 5:
		parts = append(parts, "Wear a heavy coat, hat and gloves.")
	case w.FeelsLike < 12:
		parts = append(parts, "A warm jacket is a good idea.")
	case w.FeelsLike < 18:
		parts = append(parts, "Bring a light jacket or sweater.")
	case w.FeelsLike < 26:
		parts = append(parts, "A t-shirt with a light layer should be fine.")
	default:
		parts = append(parts, "Go for light, breathable clothing and sunscreen.")
	}
	if wet(w) {
		parts = append(parts, "Take an umbrella.")
	}
	if w.WindSpeed > 10 {
		parts = append(parts, "It's windy, so a windbreaker helps.")
	}
	return strings.Join(parts, " ")
}

func travelAdvice(w weather.Snapshot) string {
	switch {
	case wet(w):
		return "Expect wet roads and allow extra travel time."
	case w.WindSpeed > 12:
		return "Strong winds may disrupt flights or make driving harder."
	default:
		return "Conditions look fine for travel."
	}
}

func comfortAssessment(w weather.Snapshot) string {
	switch {
	case w.Humidity > 70 && w.Temperature > 24:
		return "It will feel humid and sticky outside."
	case w.FeelsLike < 5:
		return "It will feel cold, so dress warmly."
	case w.FeelsLike > 32:
		return "It will feel very hot; stay hydrated and seek shade."
	case w.Temperature >= 18 && w.Temperature <= 26 && w.Humidity >= 30 && w.Humidity <= 70:
		return "It should feel pleasant outside."
	default:
		return "Comfort levels look moderate."
	}
}

func writeAirQuality(b *strings.Builder, aq *weather.AirQuality) {
	if aq == nil {
		return
	}
	fmt.Fprintf(b, " Air quality is %s (AQI %d, PM2.5 %.1f µg/m³).", aq.Label, aq.AQI, aq.PM25)
}

func writeDaily(b *strings.Builder, days []weather.DailySummary) {
	if len(days) == 0 {
		return
	}
	b.WriteString("\nNext days:")
	for _, d := range days {
		fmt.Fprintf(b, "\n- %s: %.0f–%.0f°C, %s", d.Date, d.MinTemp, d.MaxTemp, d.Description)
	}
}

func wet(w weather.Snapshot) bool {
	if w.Precipitation > 0 {
		return true
	}
	desc := strings.ToLower(w.Description)
	return strings.Contains(desc, "rain") || strings.Contains(desc, "drizzle") || strings.Contains(desc, "snow")
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
