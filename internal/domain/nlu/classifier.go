package nlu

import "strings"

// Intent is the query type of a message.
type Intent string

const (
	IntentBasicWeather      Intent = "BASIC_WEATHER"
	IntentActivityPlanning  Intent = "ACTIVITY_PLANNING"
	IntentClothingAdvice    Intent = "CLOTHING_ADVICE"
	IntentTravelPlanning    Intent = "TRAVEL_PLANNING"
	IntentComfortAssessment Intent = "COMFORT_ASSESSMENT"
)

type intentRule struct {
	intent   Intent
	keywords []string
}

// Keywords match as plain substrings, so "plan" also fires on "plant".
var intentRules = []intentRule{
	{
		intent: IntentBasicWeather,
		keywords: []string{
			"what's the weather", "what is the weather", "whats the weather",
			"how's the weather", "how is the weather", "hows the weather",
			"current weather", "weather report", "weather update",
			"temperature in", "weather now",
		},
	},
	{
		intent: IntentActivityPlanning,
		keywords: []string{
			"good for", "good day for", "good time", "suitable", "should i",
			"can i", "play", "go for", "plan", "okay for", "ok for",
			"cricket", "football", "running", "cycling", "walking", "picnic",
			"hiking", "tennis", "golf", "swimming", "gardening", "shopping",
		},
	},
	{
		intent: IntentClothingAdvice,
		keywords: []string{
			"wear", "clothes", "clothing", "jacket", "umbrella", "outfit",
			"dress", "coat", "sunscreen", "layers",
		},
	},
	{
		intent: IntentTravelPlanning,
		keywords: []string{
			"travel", "trip", "visit", "flight", "drive", "vacation",
			"holiday", "journey", "commute",
		},
	},
	{
		intent: IntentComfortAssessment,
		keywords: []string{
			"comfortable", "humid", "muggy", "sticky", "feels like",
			"feel like", "too hot", "too cold", "pleasant", "bearable",
		},
	},
}

// Classifier buckets messages into intents by keyword tables.
type Classifier struct {
	rules []intentRule
}

// NewClassifier returns a classifier over the built-in keyword tables.
func NewClassifier() *Classifier {
	return &Classifier{rules: intentRules}
}

// Classify returns the first intent whose keyword table matches, defaulting
// to IntentBasicWeather.
func (c *Classifier) Classify(message string) Intent {
	lowered := strings.ToLower(message)
	for _, rule := range c.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.intent
			}
		}
	}
	return IntentBasicWeather
}
