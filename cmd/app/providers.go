package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/weather-assistant/internal/domain/session"
	"github.com/yanqian/weather-assistant/internal/infra/config"
	"github.com/yanqian/weather-assistant/internal/infra/sessionstore"
)

// provideSessionStore falls back to the in-memory store when Valkey cannot be
// reached at startup.
func provideSessionStore(cfg *config.Config, logger *slog.Logger) (session.Store, func(), error) {
	noop := func() {}
	if cfg.Session.Store != config.StoreValkey {
		return sessionstore.NewMemoryStore(), noop, nil
	}
	opt, err := buildValkeyOptions(cfg.Session.Valkey.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return sessionstore.NewMemoryStore(), noop, nil
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return sessionstore.NewMemoryStore(), noop, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		client.Close()
		return sessionstore.NewMemoryStore(), noop, nil
	}
	logger.Info("valkey session store enabled", "addr", cfg.Session.Valkey.Addr)
	return sessionstore.NewValkeyStore(client, cfg.Session.Valkey.Prefix), client.Close, nil
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
