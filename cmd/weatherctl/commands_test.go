package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/weather-assistant/internal/domain/assistant"
	"github.com/yanqian/weather-assistant/internal/domain/nlu"
	"github.com/yanqian/weather-assistant/internal/domain/session"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestExtractCommand(t *testing.T) {
	out, err := runCmd(t, "extract", "Can", "I", "play", "cricket", "in", "Mumbai", "tomorrow?")
	require.NoError(t, err)
	require.Contains(t, out, "city: Mumbai")
	require.Contains(t, out, "activity: cricket")
	require.Contains(t, out, "time: tomorrow")
	require.Contains(t, out, "intent: ACTIVITY_PLANNING")
}

func TestExtractCommand_JSON(t *testing.T) {
	out, err := runCmd(t, "extract", "--json", "hola")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "hola", got["message"])
	require.Equal(t, nlu.Unknown, got["city"])
	smallTalk, ok := got["small_talk"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "es", smallTalk["language"])
}

func TestScoreCommand(t *testing.T) {
	out, err := runCmd(t, "score", "cricket", "--temp", "26", "--wind", "4", "--precip", "0", "--humidity", "60")
	require.NoError(t, err)
	require.Contains(t, out, "cricket EXCELLENT (score 100)")
	require.Contains(t, out, "temperature")
	require.Contains(t, out, "precipitation")
}

func TestScoreCommand_RainLowersTier(t *testing.T) {
	out, err := runCmd(t, "score", "picnic", "--temp", "22", "--wind", "2", "--precip", "3", "--humidity", "40")
	require.NoError(t, err)
	require.Contains(t, out, "picnic MODERATE (score 50)")
	require.Contains(t, out, "3.0 mm")
}

func TestScoreCommand_UnknownActivity(t *testing.T) {
	_, err := runCmd(t, "score", "skydiving")
	require.ErrorContains(t, err, "unknown activity")
}

func TestChatSession_REPL(t *testing.T) {
	color.NoColor = true
	svc := &recordingAssistant{}
	var out bytes.Buffer
	c := &chatSession{svc: svc, state: session.New("cli"), out: &out, showData: true}

	err := c.repl(context.Background(), strings.NewReader("weather in Oslo\n\nand tomorrow?\n/clear\nhi\n/exit\n"))
	require.NoError(t, err)

	require.Len(t, svc.requests, 3)
	require.Len(t, svc.requests[1].Messages, 3)
	require.Equal(t, "and tomorrow?", svc.requests[1].Messages[2].Content)
	require.Len(t, svc.requests[2].Messages, 1)
	require.NotEqual(t, "cli", svc.requests[2].SessionID)

	text := out.String()
	require.Contains(t, text, "reply to: weather in Oslo")
	require.Contains(t, text, "conversation cleared")
	require.Contains(t, text, "intent=BASIC_WEATHER city=Oslo")
}

func TestChatSession_HistoryIsCapped(t *testing.T) {
	color.NoColor = true
	svc := &recordingAssistant{}
	var out bytes.Buffer
	c := &chatSession{svc: svc, state: session.New("cli"), out: &out}

	for i := 0; i < 20; i++ {
		c.ask(context.Background(), fmt.Sprintf("weather in Oslo, take %d", i))
	}

	require.Len(t, svc.requests, 20)
	last := svc.requests[19].Messages
	require.Len(t, last, maxHistoryMessages)
	require.Equal(t, "weather in Oslo, take 19", last[len(last)-1].Content)
	require.Len(t, c.history, maxHistoryMessages)
}

type recordingAssistant struct {
	requests []assistant.ChatRequest
}

func (r *recordingAssistant) Chat(_ context.Context, state *session.State, req assistant.ChatRequest) assistant.Response {
	copied := req
	copied.Messages = append([]assistant.Message(nil), req.Messages...)
	r.requests = append(r.requests, copied)
	last := req.Messages[len(req.Messages)-1].Content
	return assistant.Response{
		Response:     "reply to: " + last,
		ResponseType: assistant.ResponseEnhancedWeather,
		SessionID:    state.ID,
		StructuredData: &assistant.StructuredData{
			Intent: nlu.IntentBasicWeather,
			City:   "Oslo",
		},
	}
}
