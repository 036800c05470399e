package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yanqian/weather-assistant/internal/domain/assistant"
	"github.com/yanqian/weather-assistant/internal/domain/session"
	"github.com/yanqian/weather-assistant/internal/infra/config"
)

const (
	sessionHeader = "X-Session-ID"
	apiVersion    = "2.0.0"
)

// Handler wires the HTTP transport to the assistant and the session store.
type Handler struct {
	assistantSvc assistant.Service
	sessions     session.Store
	sessionTTL   time.Duration
	logger       *slog.Logger
	newID        func() string
}

// NewHandler constructs the root HTTP handler.
func NewHandler(cfg *config.Config, svc assistant.Service, sessions session.Store, logger *slog.Logger) *Handler {
	return &Handler{
		assistantSvc: svc,
		sessions:     sessions,
		sessionTTL:   cfg.Session.TTL,
		logger:       logger.With("component", "http.handler"),
		newID:        uuid.NewString,
	}
}

// WeatherChat answers the last user message of the conversation.
func (h *Handler) WeatherChat(c *gin.Context) {
	var req assistant.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	id := strings.TrimSpace(req.SessionID)
	if id == "" {
		id = strings.TrimSpace(c.GetHeader(sessionHeader))
	}
	if id == "" {
		id = h.newID()
	}

	ctx := c.Request.Context()
	state, ok, err := h.sessions.Load(ctx, id)
	if err != nil {
		abortWithError(c, asHTTPError(err))
		return
	}
	if !ok {
		state = session.New(id)
	}

	resp := h.assistantSvc.Chat(ctx, state, req)
	if err := h.sessions.Save(ctx, state, h.sessionTTL); err != nil {
		h.logger.Error("save session failed", "session", id, "error", err)
	}

	c.Header(sessionHeader, id)
	c.JSON(http.StatusOK, resp)
}

// CityWeather is the legacy single city lookup. It runs on a throwaway
// session so no conversation state is touched.
func (h *Handler) CityWeather(c *gin.Context) {
	city := strings.TrimSpace(c.Param("city"))
	if city == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "city is required", nil))
		return
	}
	state := session.New(h.newID())
	resp := h.assistantSvc.Chat(c.Request.Context(), state, assistant.ChatRequest{
		Messages: []assistant.Message{{Role: assistant.RoleUser, Content: "What's the current weather in " + city + "?"}},
	})
	c.JSON(http.StatusOK, gin.H{"description": resp.Response, "city": city})
}

// DeleteSession forgets a conversation.
func (h *Handler) DeleteSession(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := h.sessions.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, asHTTPError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "weather_assistant": "initialized"})
}

// Info describes the API.
func (h *Handler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Weather Assistant API",
		"version": apiVersion,
		"endpoints": gin.H{
			"weather_chat":   "/api/weather-chat",
			"weather":        "/api/weather/{city}",
			"chat":           "/api/chat",
			"delete_session": "/api/sessions/{id}",
			"health":         "/health",
		},
	})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
