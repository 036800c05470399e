package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/weather-assistant/internal/domain/assistant"
	"github.com/yanqian/weather-assistant/internal/domain/session"
	"github.com/yanqian/weather-assistant/internal/infra/config"
	"github.com/yanqian/weather-assistant/internal/infra/sessionstore"
	apperrors "github.com/yanqian/weather-assistant/pkg/errors"
)

func TestRouter_WeatherChatCreatesSession(t *testing.T) {
	svc := &stubAssistant{
		chatFn: func(_ context.Context, state *session.State, req assistant.ChatRequest) assistant.Response {
			require.Len(t, req.Messages, 1)
			state.RememberCity("Tokyo")
			return assistant.Response{Response: "Sunny", ResponseType: assistant.ResponseEnhancedWeather, SessionID: state.ID}
		},
	}
	store := sessionstore.NewMemoryStore()
	server := newRouterUnderTest(t, svc, store)

	rec := performRequest(server, http.MethodPost, "/api/weather-chat", `{"messages":[{"role":"user","content":"weather in Tokyo"}]}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "fixed-id", rec.Header().Get(sessionHeader))

	var got assistant.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Sunny", got.Response)
	require.Equal(t, assistant.ResponseEnhancedWeather, got.ResponseType)
	require.Equal(t, "fixed-id", got.SessionID)

	state, ok, err := store.Load(context.Background(), "fixed-id")
	require.NoError(t, err)
	require.True(t, ok)
	city, _ := state.LastCity()
	require.Equal(t, "Tokyo", city)
}

func TestRouter_WeatherChatReusesSessionFromHeader(t *testing.T) {
	store := sessionstore.NewMemoryStore()
	seeded := session.New("abc")
	seeded.RememberCity("Paris")
	require.NoError(t, store.Save(context.Background(), seeded, time.Minute))

	svc := &stubAssistant{
		chatFn: func(_ context.Context, state *session.State, _ assistant.ChatRequest) assistant.Response {
			city, ok := state.LastCity()
			require.True(t, ok)
			require.Equal(t, "Paris", city)
			return assistant.Response{Response: "ok", SessionID: state.ID}
		},
	}
	server := newRouterUnderTest(t, svc, store)

	rec := performRequest(server, http.MethodPost, "/api/chat", `{"messages":[{"role":"user","content":"tomorrow?"}]}`, map[string]string{sessionHeader: "abc"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "abc", rec.Header().Get(sessionHeader))
	require.Equal(t, 1, svc.calls)
}

func TestRouter_WeatherChatInvalidJSON(t *testing.T) {
	svc := &stubAssistant{}
	rec := performRequest(newRouterUnderTest(t, svc, sessionstore.NewMemoryStore()), http.MethodPost, "/api/weather-chat", `{"messages":"nope"}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.NotEmpty(t, errBody["error"]["message"])
	require.Zero(t, svc.calls)
}

func TestRouter_SessionStoreFailure(t *testing.T) {
	svc := &stubAssistant{}
	rec := performRequest(newRouterUnderTest(t, svc, failingStore{}), http.MethodPost, "/api/weather-chat", `{"messages":[{"role":"user","content":"hi"}]}`, nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "internal_error", decodeErrorBody(t, rec.Body.Bytes())["error"]["code"])
	require.Zero(t, svc.calls)
}

func TestRouter_SessionStoreUnavailable(t *testing.T) {
	store := failingStore{err: apperrors.Wrap(session.CodeStoreUnavailable, "load session", errors.New("dial tcp: refused"))}
	server := newRouterUnderTest(t, &stubAssistant{}, store)

	rec := performRequest(server, http.MethodPost, "/api/weather-chat", `{"messages":[{"role":"user","content":"hi"}]}`, nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	errBody := decodeErrorBody(t, rec.Body.Bytes())
	require.Equal(t, session.CodeStoreUnavailable, errBody["error"]["code"])
	require.Equal(t, "load session", errBody["error"]["message"])

	rec = performRequest(server, http.MethodDelete, "/api/sessions/abc", "", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_LegacyCityWeather(t *testing.T) {
	svc := &stubAssistant{
		chatFn: func(_ context.Context, _ *session.State, req assistant.ChatRequest) assistant.Response {
			require.Equal(t, "What's the current weather in London?", req.Messages[0].Content)
			return assistant.Response{Response: "Cloudy in London"}
		},
	}
	rec := performRequest(newRouterUnderTest(t, svc, sessionstore.NewMemoryStore()), http.MethodGet, "/api/weather/London", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Cloudy in London", body["description"])
	require.Equal(t, "London", body["city"])
}

func TestRouter_DeleteSession(t *testing.T) {
	store := sessionstore.NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), session.New("abc"), time.Minute))

	rec := performRequest(newRouterUnderTest(t, &stubAssistant{}, store), http.MethodDelete, "/api/sessions/abc", "", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	_, ok, err := store.Load(context.Background(), "abc")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRouter_HealthAndInfo(t *testing.T) {
	server := newRouterUnderTest(t, &stubAssistant{}, sessionstore.NewMemoryStore())

	rec := performRequest(server, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok","weather_assistant":"initialized"}`, rec.Body.String())

	rec = performRequest(server, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "/api/weather-chat")
}

func TestRouter_CORSPreflight(t *testing.T) {
	server := newRouterUnderTest(t, &stubAssistant{}, sessionstore.NewMemoryStore())
	rec := performRequest(server, http.MethodOptions, "/api/weather-chat", "", map[string]string{"Origin": "http://localhost:5173"})
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, sessionHeader, rec.Header().Get("Access-Control-Expose-Headers"))

	rec = performRequest(server, http.MethodOptions, "/api/weather-chat", "", map[string]string{"Origin": "https://evil.example"})
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1, Burst: 1}
	handler := NewHandler(cfg, &stubAssistant{}, sessionstore.NewMemoryStore(), newTestLogger())
	server := NewRouter(cfg, handler)

	body := `{"messages":[{"role":"user","content":"hi"}]}`
	require.Equal(t, http.StatusOK, performRequest(server, http.MethodPost, "/api/chat", body, nil).Code)
	rec := performRequest(server, http.MethodPost, "/api/chat", body, nil)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "60", rec.Header().Get("Retry-After"))
	require.Equal(t, "rate_limit_exceeded", decodeErrorBody(t, rec.Body.Bytes())["error"]["code"])

	// health checks are not limited
	require.Equal(t, http.StatusOK, performRequest(server, http.MethodGet, "/health", "", nil).Code)
}

func performRequest(server *http.Server, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func testConfig() *config.Config {
	return &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
			CORS:         config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"}},
		},
		Session: config.SessionConfig{Store: config.StoreMemory, TTL: time.Minute},
	}
}

func newRouterUnderTest(t *testing.T, svc assistant.Service, store session.Store) *http.Server {
	t.Helper()
	cfg := testConfig()
	handler := NewHandler(cfg, svc, store, newTestLogger())
	handler.newID = func() string { return "fixed-id" }
	return NewRouter(cfg, handler)
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubAssistant struct {
	chatFn func(ctx context.Context, state *session.State, req assistant.ChatRequest) assistant.Response
	calls  int
}

func (s *stubAssistant) Chat(ctx context.Context, state *session.State, req assistant.ChatRequest) assistant.Response {
	s.calls++
	if s.chatFn != nil {
		return s.chatFn(ctx, state, req)
	}
	return assistant.Response{Response: "ok", SessionID: state.ID}
}

type failingStore struct {
	err error
}

func (s failingStore) Load(context.Context, string) (*session.State, bool, error) {
	return nil, false, s.fail()
}

func (s failingStore) Save(context.Context, *session.State, time.Duration) error {
	return s.fail()
}

func (s failingStore) Delete(context.Context, string) error {
	return s.fail()
}

func (s failingStore) fail() error {
	if s.err != nil {
		return s.err
	}
	return errors.New("valkey down")
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
