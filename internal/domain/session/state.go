package session

import (
	"strings"
	"time"

	"github.com/yanqian/weather-assistant/pkg/util"
)

const (
	// MaxHistory caps the remembered user messages.
	MaxHistory = 5
	// DefaultLanguage is used until small talk reveals another language.
	DefaultLanguage = "en"
)

// State is the per-conversation memory carried between turns.
type State struct {
	ID        string    `json:"id"`
	City      string    `json:"city,omitempty"`
	Turns     int       `json:"turns"`
	History   []string  `json:"history"`
	Language  string    `json:"language"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New returns an empty state for the given conversation id.
func New(id string) *State {
	return &State{ID: id, Language: DefaultLanguage, UpdatedAt: util.NowUTC()}
}

// RememberCity records the city of the last successful lookup.
func (s *State) RememberCity(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	s.City = name
	s.touch()
}

// LastCity returns the remembered city, if any.
func (s *State) LastCity() (string, bool) {
	if s.City == "" {
		return "", false
	}
	return s.City, true
}

// IncrementTurn counts one more user turn.
func (s *State) IncrementTurn() {
	s.Turns++
	s.touch()
}

// AppendHistory keeps the most recent MaxHistory messages.
func (s *State) AppendHistory(message string) {
	s.History = append(s.History, message)
	if over := len(s.History) - MaxHistory; over > 0 {
		s.History = append([]string(nil), s.History[over:]...)
	}
	s.touch()
}

// SetLanguage updates the reply language; empty tags are ignored.
func (s *State) SetLanguage(tag string) {
	if tag == "" {
		return
	}
	s.Language = tag
	s.touch()
}

// Lang returns the language tag, falling back to DefaultLanguage.
func (s *State) Lang() string {
	if s.Language == "" {
		return DefaultLanguage
	}
	return s.Language
}

func (s *State) touch() {
	s.UpdatedAt = util.NowUTC()
}
