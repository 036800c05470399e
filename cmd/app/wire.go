//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/weather-assistant/internal/bootstrap"
	"github.com/yanqian/weather-assistant/internal/domain/assistant"
	"github.com/yanqian/weather-assistant/internal/infra/config"
	"github.com/yanqian/weather-assistant/internal/infra/weather/openweather"
	httpiface "github.com/yanqian/weather-assistant/internal/interface/http"
	"github.com/yanqian/weather-assistant/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		bootstrap.NewAssistantConfig,
		bootstrap.NewWeatherClient,
		bootstrap.NewGenerator,
		bootstrap.NewTokenCounter,
		provideSessionStore,
		assistant.NewService,
		wire.Bind(new(assistant.WeatherClient), new(*openweather.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
