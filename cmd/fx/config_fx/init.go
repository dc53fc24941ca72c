package config_fx

import (
	"accessitrip/internal/config"
	"accessitrip/pkg/logger"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	config.Load,
	provideAPIConfig,
	provideSessionConfig,
	provideServerConfig,
	provideLogger,
	provideFieldLogger)

func provideAPIConfig(cfg *config.Config) config.APIConfig {
	return cfg.API
}

func provideSessionConfig(cfg *config.Config) config.SessionConfig {
	return cfg.Session
}

func provideServerConfig(cfg *config.Config) config.ServerConfig {
	return cfg.Server
}

func provideLogger(cfg *config.Config) (*logrus.Logger, error) {
	return logger.New(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
}

func provideFieldLogger(log *logrus.Logger) logrus.FieldLogger {
	return log
}
