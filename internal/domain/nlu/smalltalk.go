package nlu

import "strings"

// SmallTalkKind classifies conversational filler that needs no weather data.
type SmallTalkKind string

const (
	SmallTalkGreeting SmallTalkKind = "greeting"
	SmallTalkThanks   SmallTalkKind = "thanks"
	SmallTalkFarewell SmallTalkKind = "farewell"
)

// SmallTalk describes a detected greeting, thanks or farewell.
type SmallTalk struct {
	Kind     SmallTalkKind `json:"kind"`
	Language string        `json:"language"`
}

type phrase struct {
	tokens   []string
	kind     SmallTalkKind
	language string
}

type phraseDef struct {
	text     string
	kind     SmallTalkKind
	language string
}

const maxSmallTalkTokens = 6

var phrases = buildPhrases([]phraseDef{
	{"hi", SmallTalkGreeting, "en"},
	{"hello", SmallTalkGreeting, "en"},
	{"hey", SmallTalkGreeting, "en"},
	{"heya", SmallTalkGreeting, "en"},
	{"howdy", SmallTalkGreeting, "en"},
	{"yo", SmallTalkGreeting, "en"},
	{"greetings", SmallTalkGreeting, "en"},
	{"good morning", SmallTalkGreeting, "en"},
	{"good afternoon", SmallTalkGreeting, "en"},
	{"good evening", SmallTalkGreeting, "en"},
	{"hola", SmallTalkGreeting, "es"},
	{"buenos dias", SmallTalkGreeting, "es"},
	{"buenas tardes", SmallTalkGreeting, "es"},
	{"bonjour", SmallTalkGreeting, "fr"},
	{"salut", SmallTalkGreeting, "fr"},
	{"hallo", SmallTalkGreeting, "de"},
	{"guten tag", SmallTalkGreeting, "de"},
	{"guten morgen", SmallTalkGreeting, "de"},
	{"ciao", SmallTalkGreeting, "it"},
	{"ola", SmallTalkGreeting, "pt"},
	{"olá", SmallTalkGreeting, "pt"},
	{"namaste", SmallTalkGreeting, "hi"},
	{"konnichiwa", SmallTalkGreeting, "ja"},

	{"thanks", SmallTalkThanks, "en"},
	{"thank you", SmallTalkThanks, "en"},
	{"thank u", SmallTalkThanks, "en"},
	{"thx", SmallTalkThanks, "en"},
	{"ty", SmallTalkThanks, "en"},
	{"cheers", SmallTalkThanks, "en"},
	{"ok", SmallTalkThanks, "en"},
	{"okay", SmallTalkThanks, "en"},
	{"cool", SmallTalkThanks, "en"},
	{"great", SmallTalkThanks, "en"},
	{"awesome", SmallTalkThanks, "en"},
	{"perfect", SmallTalkThanks, "en"},
	{"got it", SmallTalkThanks, "en"},
	{"appreciate it", SmallTalkThanks, "en"},
	{"gracias", SmallTalkThanks, "es"},
	{"muchas gracias", SmallTalkThanks, "es"},
	{"merci", SmallTalkThanks, "fr"},
	{"merci beaucoup", SmallTalkThanks, "fr"},
	{"danke", SmallTalkThanks, "de"},
	{"vielen dank", SmallTalkThanks, "de"},
	{"grazie", SmallTalkThanks, "it"},
	{"obrigado", SmallTalkThanks, "pt"},
	{"obrigada", SmallTalkThanks, "pt"},
	{"dhanyavad", SmallTalkThanks, "hi"},
	{"shukriya", SmallTalkThanks, "hi"},
	{"arigato", SmallTalkThanks, "ja"},

	{"bye", SmallTalkFarewell, "en"},
	{"goodbye", SmallTalkFarewell, "en"},
	{"good bye", SmallTalkFarewell, "en"},
	{"good night", SmallTalkFarewell, "en"},
	{"see you", SmallTalkFarewell, "en"},
	{"see ya", SmallTalkFarewell, "en"},
	{"later", SmallTalkFarewell, "en"},
	{"adios", SmallTalkFarewell, "es"},
	{"adiós", SmallTalkFarewell, "es"},
	{"hasta luego", SmallTalkFarewell, "es"},
	{"au revoir", SmallTalkFarewell, "fr"},
	{"tschüss", SmallTalkFarewell, "de"},
	{"tschuss", SmallTalkFarewell, "de"},
	{"arrivederci", SmallTalkFarewell, "it"},
	{"tchau", SmallTalkFarewell, "pt"},
	{"sayonara", SmallTalkFarewell, "ja"},
})

var kindPriority = map[SmallTalkKind]int{
	SmallTalkGreeting: 1,
	SmallTalkThanks:   2,
	SmallTalkFarewell: 3,
}

var fillers = map[string]struct{}{
	"so": {}, "much": {}, "a": {}, "lot": {}, "you": {}, "very": {},
	"there": {}, "again": {}, "for": {}, "the": {}, "help": {}, "info": {},
	"and": {}, "all": {}, "oh": {}, "ah": {}, "bot": {}, "weatherbot": {},
	"mate": {}, "buddy": {}, "friend": {}, "really": {}, "that's": {},
	"thats": {}, "was": {}, "helpful": {}, "now": {}, "that": {}, "it": {},
}

// smallTalkWords is every token that appears in a phrase; none of them can
// name a city.
var smallTalkWords = func() map[string]struct{} {
	out := make(map[string]struct{})
	for _, p := range phrases {
		for _, t := range p.tokens {
			out[t] = struct{}{}
		}
	}
	return out
}()

func buildPhrases(defs []phraseDef) []phrase {
	out := make([]phrase, 0, len(defs))
	for _, d := range defs {
		out = append(out, phrase{tokens: strings.Fields(d.text), kind: d.kind, language: d.language})
	}
	// longest phrases first so "thank you" wins over a bare "thank"
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && len(out[j].tokens) > len(out[j-1].tokens); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// DetectSmallTalk reports whether the whole message is a greeting, thanks or
// farewell. Mixed messages such as "thanks, and in Paris?" are not small talk.
func DetectSmallTalk(message string) (SmallTalk, bool) {
	tokens := strings.Fields(normalize(message))
	if len(tokens) == 0 || len(tokens) > maxSmallTalkTokens {
		return SmallTalk{}, false
	}

	var (
		found  bool
		result SmallTalk
	)
	for i := 0; i < len(tokens); {
		p, ok := matchPhrase(tokens[i:])
		if ok {
			if !found {
				result.Language = p.language
			}
			if kindPriority[p.kind] > kindPriority[result.Kind] {
				result.Kind = p.kind
			}
			found = true
			i += len(p.tokens)
			continue
		}
		if _, filler := fillers[tokens[i]]; filler {
			i++
			continue
		}
		return SmallTalk{}, false
	}
	if !found {
		return SmallTalk{}, false
	}
	return result, true
}

func matchPhrase(tokens []string) (phrase, bool) {
	for _, p := range phrases {
		if len(p.tokens) > len(tokens) {
			continue
		}
		match := true
		for i, t := range p.tokens {
			if tokens[i] != t {
				match = false
				break
			}
		}
		if match {
			return p, true
		}
	}
	return phrase{}, false
}
