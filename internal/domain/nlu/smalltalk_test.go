package nlu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectSmallTalk(t *testing.T) {
	tests := []struct {
		message  string
		kind     SmallTalkKind
		language string
	}{
		{message: "thanks!", kind: SmallTalkThanks, language: "en"},
		{message: "Thank you so much", kind: SmallTalkThanks, language: "en"},
		{message: "Hello there", kind: SmallTalkGreeting, language: "en"},
		{message: "good morning!", kind: SmallTalkGreeting, language: "en"},
		{message: "¡Gracias!", kind: SmallTalkThanks, language: "es"},
		{message: "merci beaucoup", kind: SmallTalkThanks, language: "fr"},
		{message: "thanks, bye", kind: SmallTalkFarewell, language: "en"},
		{message: "Tschüss", kind: SmallTalkFarewell, language: "de"},
	}
	for _, tt := range tests {
		got, ok := DetectSmallTalk(tt.message)
		require.True(t, ok, tt.message)
		require.Equal(t, tt.kind, got.Kind, tt.message)
		require.Equal(t, tt.language, got.Language, tt.message)
	}
}

func TestDetectSmallTalkRejectsWeatherQuestions(t *testing.T) {
	for _, msg := range []string{
		"thanks, and what about Paris?",
		"hi, weather in Tokyo",
		"good for cycling?",
		"Tokyo",
		"",
		"tomorrow?",
	} {
		_, ok := DetectSmallTalk(msg)
		require.False(t, ok, msg)
	}
}
