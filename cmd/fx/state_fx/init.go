package state_fx

import (
	"context"

	"accessitrip/internal/config"
	"accessitrip/internal/repositories"
	"accessitrip/internal/services"
	mem "accessitrip/pkg/memcache"

	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideItineraryService,
	provideItineraryStepService,
	provideSearchService,
	provideSavedItineraryService,
	provideReviewService,
	provideSettingsService,
	provideAccessibilityService,
	provideCountryService,
	provideUserService,
	provideSignUpService)

type closer interface {
	Close()
}

// closeOnStop stops the holder's own background work with the app.
func closeOnStop(lc fx.Lifecycle, c closer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			c.Close()
			return nil
		},
	})
}

func provideItineraryService(lc fx.Lifecycle, repo repositories.ItineraryRepository, log logrus.FieldLogger) services.ItineraryServiceInterface {
	s := services.NewItineraryService(repo, services.WithLogger(log))
	closeOnStop(lc, s)
	return s
}

func provideItineraryStepService(repo repositories.ItineraryStepRepository, log logrus.FieldLogger) services.ItineraryStepServiceInterface {
	return services.NewItineraryStepService(repo, services.WithLogger(log))
}

func provideSearchService(itineraries services.ItineraryServiceInterface) services.SearchServiceInterface {
	return services.NewSearchService(itineraries.Itineraries())
}

func provideSavedItineraryService(lc fx.Lifecycle, cfg *config.Config, repo repositories.SavedItineraryRepository, log logrus.FieldLogger) services.SavedItineraryServiceInterface {
	s := services.NewSavedItineraryService(repo, cfg.DemoUserID, services.WithLogger(log))
	closeOnStop(lc, s)
	return s
}

func provideReviewService(lc fx.Lifecycle, repo repositories.ReviewRepository, log logrus.FieldLogger) services.ReviewServiceInterface {
	s := services.NewReviewService(repo, services.WithLogger(log))
	closeOnStop(lc, s)
	return s
}

func provideSettingsService(
	lc fx.Lifecycle,
	cfg *config.Config,
	settingRepo repositories.SettingRepository,
	userSettingRepo repositories.UserSettingRepository,
	log logrus.FieldLogger,
) services.SettingsServiceInterface {
	s := services.NewSettingsService(settingRepo, userSettingRepo, cfg.DemoUserID.String(), services.WithLogger(log))
	closeOnStop(lc, s)
	return s
}

func provideAccessibilityService(
	lc fx.Lifecycle,
	featureRepo repositories.AccessibilityFeatureRepository,
	userFeatureRepo repositories.UserAccessibilityFeatureRepository,
	log logrus.FieldLogger,
) services.AccessibilityServiceInterface {
	s := services.NewAccessibilityService(featureRepo, userFeatureRepo, services.WithLogger(log))
	closeOnStop(lc, s)
	return s
}

func provideCountryService(lc fx.Lifecycle, repo repositories.CountryRepository, log logrus.FieldLogger) services.CountryServiceInterface {
	s := services.NewCountryService(repo, services.WithLogger(log))
	closeOnStop(lc, s)
	return s
}

func provideUserService(
	userRepo repositories.UserRepository,
	authRepo repositories.AuthRepository,
	session services.SessionManager,
	log logrus.FieldLogger,
) services.UserServiceInterface {
	return services.NewUserService(userRepo, authRepo, session, services.WithLogger(log))
}

func provideSignUpService(
	cfg *config.Config,
	userRepo repositories.UserRepository,
	authRepo repositories.AuthRepository,
	userFeatureRepo repositories.UserAccessibilityFeatureRepository,
	countryRepo repositories.CountryRepository,
	destinationRepo repositories.DestinationRepository,
	session services.SessionManager,
	drafts mem.TTLStore[*services.SignUpDraft],
	log logrus.FieldLogger,
) services.SignUpServiceInterface {
	return services.NewSignUpService(
		userRepo,
		authRepo,
		userFeatureRepo,
		countryRepo,
		destinationRepo,
		session,
		drafts,
		services.SignUpConfig{
			FlowTTL:         cfg.SignUp.FlowTTL,
			LinkConcurrency: cfg.SignUp.LinkConcurrency,
		},
		services.WithLogger(log),
	)
}
