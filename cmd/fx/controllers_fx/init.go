package controllers_fx

import (
	"accessitrip/internal/api/controllers"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewSavedItineraryController),
	fx.Provide(controllers.NewReviewController),
	fx.Provide(controllers.NewSettingsController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewSignUpController),
	fx.Provide(controllers.NewStreamController))
