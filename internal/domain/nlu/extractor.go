package nlu

import (
	"regexp"
	"strings"

	"github.com/yanqian/weather-assistant/internal/domain/suitability"
)

// Unknown marks a slot the extractor could not fill.
const Unknown = "unknown"

const (
	patternConfidence   = 0.8
	gazetteerConfidence = 0.7
	shortMsgConfidence  = 0.5
	maxCityWords        = 4
	maxCityLen          = 40
)

// TimeContext is the period of interest named in a message.
type TimeContext string

const (
	TimeNow       TimeContext = "now"
	TimeToday     TimeContext = "today"
	TimeTomorrow  TimeContext = "tomorrow"
	TimeMorning   TimeContext = "morning"
	TimeAfternoon TimeContext = "afternoon"
	TimeEvening   TimeContext = "evening"
	TimeTonight   TimeContext = "tonight"
)

// Extraction holds the slots found in a single message.
type Extraction struct {
	City        string      `json:"city"`
	Confidence  float64     `json:"confidence"`
	Activity    string      `json:"activity"`
	TimeContext TimeContext `json:"time_context"`
}

// HasCity reports whether a city was identified.
func (e Extraction) HasCity() bool {
	return e.City != Unknown
}

// HasActivity reports whether a catalog activity was identified.
func (e Extraction) HasActivity() bool {
	return e.Activity != Unknown
}

// cityTriggers mark where a city name may start. Only the trigger is
// matched, so every occurrence is tried: "in an hour in springfield" reaches
// the second "in".
var cityTriggers = []*regexp.Regexp{
	regexp.MustCompile(`(?:how's|how is|hows|what's|what is|whats)\s+the\s+weather(?:\s+like)?\s+in\s+`),
	regexp.MustCompile(`\bweather\s+(?:like\s+)?(?:in|for|at)\s+`),
	regexp.MustCompile(`\bforecast\s+(?:for|in|at)\s+`),
	regexp.MustCompile(`\bin\s+`),
}

type timeRule struct {
	context  TimeContext
	triggers []string
}

// Evaluated in order; the first context with a matching trigger wins.
var timeRules = []timeRule{
	{context: TimeMorning, triggers: []string{"morning", "am"}},
	{context: TimeAfternoon, triggers: []string{"afternoon", "noon"}},
	{context: TimeEvening, triggers: []string{"evening", "night", "pm"}},
	{context: TimeTomorrow, triggers: []string{"tomorrow"}},
	{context: TimeToday, triggers: []string{"today"}},
	{context: TimeTonight, triggers: []string{"tonight"}},
}

var baseStopWords = []string{
	"tomorrow", "today", "tonight", "now", "morning", "afternoon", "evening",
	"night", "noon", "weekend", "week", "this", "next", "later", "soon",
	"what", "about", "when", "how", "where", "why", "who", "which", "can",
	"should", "could", "would", "will", "is", "are", "was", "be", "it",
	"it's", "its", "the", "a", "an", "my", "me", "i", "i'm", "you", "your",
	"weather", "forecast", "temperature", "climate", "like", "there",
	"here", "please", "and", "or", "but", "for", "with", "to", "at", "on",
	"in", "of", "from", "right", "good", "bad", "go", "play", "do", "rain",
	"raining", "sunny", "hot", "cold", "outside", "current", "currently",
	"tell", "check", "whats", "what's", "hows", "how's", "general", "case",
	"days", "day", "hours", "air", "quality", "wear", "outfit", "advice",
	"yes", "no", "not", "any", "some",
}

// Extractor identifies city, activity and time context in a message.
type Extractor struct {
	activities []string
	stopWords  map[string]struct{}
}

// NewExtractor builds an extractor over the activity catalog.
func NewExtractor() *Extractor {
	activities := suitability.ActivityNames()
	stop := make(map[string]struct{}, len(baseStopWords)+len(activities)+len(smallTalkWords))
	for _, w := range baseStopWords {
		stop[w] = struct{}{}
	}
	for _, a := range activities {
		stop[a] = struct{}{}
	}
	for w := range smallTalkWords {
		stop[w] = struct{}{}
	}
	// words of known city names ("buenos aires") are never stop words
	for _, name := range gazetteer {
		for _, w := range strings.Fields(name) {
			delete(stop, w)
		}
	}
	return &Extractor{activities: activities, stopWords: stop}
}

// Extract runs city, activity and time detection over the message.
func (e *Extractor) Extract(message string) Extraction {
	lowered := strings.ToLower(strings.TrimSpace(message))
	city, confidence := e.detectCity(lowered)
	return Extraction{
		City:        city,
		Confidence:  confidence,
		Activity:    e.detectActivity(lowered),
		TimeContext: detectTime(lowered),
	}
}

func (e *Extractor) detectCity(lowered string) (string, float64) {
	for _, trigger := range cityTriggers {
		for _, loc := range trigger.FindAllStringIndex(lowered, -1) {
			if city, ok := e.cleanCapture(lowered[loc[1]:]); ok {
				return city, patternConfidence
			}
		}
	}

	for _, name := range gazetteer {
		if strings.Contains(lowered, name) {
			return TitleCase(name), gazetteerConfidence
		}
	}

	words := strings.Fields(normalize(lowered))
	if len(words) > 0 && len(words) <= 2 {
		candidate := strings.Join(words, " ")
		if e.acceptable(candidate) {
			return TitleCase(candidate), shortMsgConfidence
		}
	}
	return Unknown, 0
}

// cleanCapture takes the text after a trigger, cuts it at the first
// punctuation mark or stop word and keeps at most four words.
func (e *Extractor) cleanCapture(raw string) (string, bool) {
	if idx := strings.IndexAny(raw, "?!.,;:()\"\n"); idx >= 0 {
		raw = raw[:idx]
	}
	kept := make([]string, 0, maxCityWords)
	for _, w := range strings.Fields(raw) {
		w = trimWord(w)
		if w == "" {
			break
		}
		if _, stop := e.stopWords[w]; stop {
			break
		}
		kept = append(kept, w)
		if len(kept) == maxCityWords {
			break
		}
	}
	candidate := strings.Join(kept, " ")
	if !e.acceptable(candidate) {
		return "", false
	}
	return TitleCase(candidate), true
}

func (e *Extractor) acceptable(candidate string) bool {
	if len(candidate) < 2 || len(candidate) > maxCityLen {
		return false
	}
	for _, w := range strings.Fields(candidate) {
		if _, stop := e.stopWords[w]; stop {
			return false
		}
	}
	return true
}

func (e *Extractor) detectActivity(lowered string) string {
	for _, activity := range e.activities {
		if strings.Contains(lowered, activity) {
			return activity
		}
	}
	return Unknown
}

// detectTime matches every trigger as a plain substring, so "6pm" is
// evening and "amsterdam" is morning.
func detectTime(lowered string) TimeContext {
	for _, rule := range timeRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lowered, trigger) {
				return rule.context
			}
		}
	}
	return TimeNow
}
