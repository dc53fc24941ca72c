package gateway_fx

import (
	"accessitrip/internal/infra"
	"accessitrip/internal/repositories"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	infra.NewAPIClient,
	repositories.NewItineraryRepository,
	repositories.NewItineraryStepRepository,
	repositories.NewSavedItineraryRepository,
	repositories.NewReviewRepository,
	repositories.NewAccessibilityFeatureRepository,
	repositories.NewUserAccessibilityFeatureRepository,
	repositories.NewSettingRepository,
	repositories.NewUserSettingRepository,
	repositories.NewUserRepository,
	repositories.NewAuthRepository,
	repositories.NewCountryRepository,
	repositories.NewDestinationRepository)
