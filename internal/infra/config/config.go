package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LLM provider names.
const (
	ProviderAuto   = "auto"
	ProviderOpenAI = "openai"
	ProviderGroq   = "groq"
	ProviderNone   = "none"
)

// Session store backends.
const (
	StoreMemory = "memory"
	StoreValkey = "valkey"
)

// dotenvFiles are loaded in order when present; they never override
// variables already set in the environment.
var dotenvFiles = []string{"config.env", ".env"}

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Weather WeatherConfig `yaml:"weather"`
	LLM     LLMConfig     `yaml:"llm"`
	Session SessionConfig `yaml:"session"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string          `yaml:"address"`
	ReadTimeout  time.Duration   `yaml:"readTimeout"`
	WriteTimeout time.Duration   `yaml:"writeTimeout"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
	CORS         CORSConfig      `yaml:"cors"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// CORSConfig lists origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// WeatherConfig configures the OpenWeatherMap client.
type WeatherConfig struct {
	APIKey        string        `yaml:"apiKey"`
	BaseURL       string        `yaml:"baseUrl"`
	Timeout       time.Duration `yaml:"timeout"`
	RetryAttempts uint          `yaml:"retryAttempts"`
	RetryDelay    time.Duration `yaml:"retryDelay"`
	CacheTTL      time.Duration `yaml:"cacheTtl"`
	CacheSize     int           `yaml:"cacheSize"`
}

// LLMConfig selects and tunes the reply generator.
type LLMConfig struct {
	Provider           string        `yaml:"provider"`
	OpenAIAPIKey       string        `yaml:"openaiApiKey"`
	OpenAIBaseURL      string        `yaml:"openaiBaseUrl"`
	OpenAIModel        string        `yaml:"openaiModel"`
	GroqAPIKey         string        `yaml:"groqApiKey"`
	GroqBaseURL        string        `yaml:"groqBaseUrl"`
	GroqModel          string        `yaml:"groqModel"`
	Temperature        float32       `yaml:"temperature"`
	MaxTokens          int           `yaml:"maxTokens"`
	Timeout            time.Duration `yaml:"timeout"`
	SystemPrompt       string        `yaml:"systemPrompt"`
	HistoryTokenBudget int           `yaml:"historyTokenBudget"`
}

// SessionConfig controls conversation memory.
type SessionConfig struct {
	Store  string        `yaml:"store"`
	TTL    time.Duration `yaml:"ttl"`
	Valkey ValkeyConfig  `yaml:"valkey"`
}

// ValkeyConfig contains connection information for the Valkey session store.
type ValkeyConfig struct {
	Addr   string `yaml:"addr"`
	Prefix string `yaml:"prefix"`
}

// Load reads configuration from a YAML file, dotenv files and environment
// variables, in that order of increasing precedence.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	if err := loadDotenv(dotenvFiles...); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func loadDotenv(files ...string) error {
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.HTTP.Address = ":" + v
	}
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	setInt(&cfg.HTTP.RateLimit.RequestsPerMinute, "HTTP_RATE_LIMIT_RPM")
	setInt(&cfg.HTTP.RateLimit.Burst, "HTTP_RATE_LIMIT_BURST")
	if v := os.Getenv("HTTP_CORS_ORIGINS"); v != "" {
		cfg.HTTP.CORS.AllowedOrigins = splitList(v)
	}

	setString(&cfg.Weather.APIKey, "OPENWEATHER_API_KEY")
	setString(&cfg.Weather.BaseURL, "WEATHER_BASE_URL")
	setDuration(&cfg.Weather.Timeout, "WEATHER_TIMEOUT")
	if v := os.Getenv("WEATHER_RETRY_ATTEMPTS"); v != "" {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil {
			cfg.Weather.RetryAttempts = uint(parsed)
		}
	}
	setDuration(&cfg.Weather.RetryDelay, "WEATHER_RETRY_DELAY")
	setDuration(&cfg.Weather.CacheTTL, "WEATHER_CACHE_TTL")
	setInt(&cfg.Weather.CacheSize, "WEATHER_CACHE_SIZE")

	setString(&cfg.LLM.Provider, "LLM_PROVIDER")
	setString(&cfg.LLM.OpenAIAPIKey, "OPENAI_API_KEY")
	setString(&cfg.LLM.OpenAIBaseURL, "OPENAI_BASE_URL")
	setString(&cfg.LLM.OpenAIModel, "OPENAI_MODEL")
	setString(&cfg.LLM.GroqAPIKey, "GROQ_API_KEY")
	setString(&cfg.LLM.GroqBaseURL, "GROQ_BASE_URL")
	setString(&cfg.LLM.GroqModel, "GROQ_MODEL")
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	setInt(&cfg.LLM.MaxTokens, "LLM_MAX_TOKENS")
	setDuration(&cfg.LLM.Timeout, "LLM_TIMEOUT")
	setString(&cfg.LLM.SystemPrompt, "LLM_SYSTEM_PROMPT")
	setInt(&cfg.LLM.HistoryTokenBudget, "LLM_HISTORY_TOKENS")

	setString(&cfg.Session.Store, "SESSION_STORE")
	setDuration(&cfg.Session.TTL, "SESSION_TTL")
	setString(&cfg.Session.Valkey.Addr, "SESSION_VALKEY_ADDR")
	setString(&cfg.Session.Valkey.Prefix, "SESSION_VALKEY_PREFIX")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			*dst = parsed
		}
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
			CORS: CORSConfig{
				AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
			},
		},
		Weather: WeatherConfig{
			BaseURL:       "https://api.openweathermap.org",
			Timeout:       10 * time.Second,
			RetryAttempts: 2,
			RetryDelay:    300 * time.Millisecond,
			CacheTTL:      10 * time.Minute,
			CacheSize:     1000,
		},
		LLM: LLMConfig{
			Provider:           ProviderAuto,
			OpenAIModel:        "gpt-4o-mini",
			GroqBaseURL:        "https://api.groq.com/openai/v1",
			GroqModel:          "llama-3.1-8b-instant",
			Temperature:        0.4,
			MaxTokens:          300,
			Timeout:            10 * time.Second,
			HistoryTokenBudget: 1000,
		},
		Session: SessionConfig{
			Store: StoreMemory,
			TTL:   30 * time.Minute,
			Valkey: ValkeyConfig{
				Prefix: "weather:session",
			},
		},
	}
}

// ResolvedProvider returns the generator to use. In auto mode Groq wins when
// its key is set, then OpenAI, otherwise replies come from templates.
func (c LLMConfig) ResolvedProvider() string {
	provider := strings.ToLower(strings.TrimSpace(c.Provider))
	if provider != ProviderAuto && provider != "" {
		return provider
	}
	switch {
	case strings.TrimSpace(c.GroqAPIKey) != "":
		return ProviderGroq
	case strings.TrimSpace(c.OpenAIAPIKey) != "":
		return ProviderOpenAI
	default:
		return ProviderNone
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if strings.TrimSpace(c.Weather.APIKey) == "" {
		return errors.New("weather.apiKey cannot be empty (set OPENWEATHER_API_KEY)")
	}
	if c.Weather.Timeout <= 0 {
		return errors.New("weather.timeout must be positive")
	}
	if c.Weather.RetryAttempts == 0 {
		return errors.New("weather.retryAttempts must be positive")
	}
	if c.Weather.CacheTTL < 0 {
		return errors.New("weather.cacheTtl cannot be negative")
	}

	switch c.LLM.ResolvedProvider() {
	case ProviderNone:
	case ProviderOpenAI:
		if strings.TrimSpace(c.LLM.OpenAIAPIKey) == "" {
			return errors.New("llm.openaiApiKey cannot be empty when provider is openai")
		}
	case ProviderGroq:
		if strings.TrimSpace(c.LLM.GroqAPIKey) == "" {
			return errors.New("llm.groqApiKey cannot be empty when provider is groq")
		}
	default:
		return fmt.Errorf("llm.provider %q is not supported", c.LLM.Provider)
	}
	if c.LLM.Timeout <= 0 {
		return errors.New("llm.timeout must be positive")
	}

	switch c.Session.Store {
	case StoreMemory:
	case StoreValkey:
		if strings.TrimSpace(c.Session.Valkey.Addr) == "" {
			return errors.New("session.valkey.addr cannot be empty when the valkey store is used")
		}
	default:
		return fmt.Errorf("session.store %q is not supported", c.Session.Store)
	}
	if c.Session.TTL <= 0 {
		return errors.New("session.ttl must be positive")
	}
	return nil
}
