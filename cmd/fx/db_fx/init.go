package db_fx

import (
	"context"

	"accessitrip/internal/config"
	"accessitrip/internal/infra"
	"accessitrip/internal/services"
	"accessitrip/internal/session"
	"accessitrip/pkg/middleware"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideTokenStore,
	session.NewService,
	provideTokenSource,
	provideSessionManager,
	provideSessionReader)

// provideTokenStore keeps the credential in memory or in a sqlite/postgres
// table, sealed when an encryption key is configured.
func provideTokenStore(lc fx.Lifecycle, cfg config.SessionConfig, log *logrus.Logger) (session.TokenStore, error) {
	if cfg.Driver == "memory" {
		log.Info("session tokens kept in memory")
		return session.NewMemoryTokenStore(), nil
	}

	var cipher *session.TokenCipher
	if len(cfg.EncryptionKey) > 0 {
		c, err := session.NewTokenCipher(cfg.EncryptionKey)
		if err != nil {
			return nil, err
		}
		cipher = c
	}

	db, err := infra.OpenSessionDB(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseDatabase(db)
			return nil
		},
	})

	log.WithFields(logrus.Fields{"driver": cfg.Driver, "sealed": cipher != nil}).Info("session store ready")
	return session.NewGormTokenStore(db, cipher), nil
}

func provideTokenSource(s *session.Service) infra.TokenSource {
	return s
}

func provideSessionManager(s *session.Service) services.SessionManager {
	return s
}

func provideSessionReader(s *session.Service) middleware.SessionReader {
	return s
}
