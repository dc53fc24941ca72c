package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"accessitrip/cmd/fx/config_fx"
	"accessitrip/cmd/fx/controllers_fx"
	"accessitrip/cmd/fx/db_fx"
	"accessitrip/cmd/fx/gateway_fx"
	"accessitrip/cmd/fx/memcache_fx"
	"accessitrip/cmd/fx/state_fx"
	"accessitrip/internal/api/controllers"
	"accessitrip/internal/config"
	"accessitrip/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		gateway_fx.Module,
		memcache_fx.Module,
		state_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg config.ServerConfig, engine *gin.Engine, log *logrus.Logger) {
	handler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", middleware.TraceIDHeader},
		ExposedHeaders:   []string{middleware.TraceIDHeader},
		AllowCredentials: true,
	}).Handler(engine)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infof("Starting HTTP server at :%s", cfg.Port)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type routeControllers struct {
	fx.In

	Itinerary *controllers.ItineraryController
	Saved     *controllers.SavedItineraryController
	Review    *controllers.ReviewController
	Settings  *controllers.SettingsController
	Catalog   *controllers.CatalogController
	Account   *controllers.AccountController
	SignUp    *controllers.SignUpController
	Stream    *controllers.StreamController
}

func ProvideRouter(ctrl routeControllers, sessions middleware.SessionReader) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, ctrl, sessions)

	return r
}

func RegisterRoutes(r *gin.Engine, ctrl routeControllers, sessions middleware.SessionReader) {
	itineraries := r.Group("/itineraries")
	itineraries.GET("", ctrl.Itinerary.ListItineraries)
	itineraries.GET("/:id", ctrl.Itinerary.GetItinerary)
	itineraries.GET("/:id/steps", ctrl.Itinerary.GetSteps)

	search := r.Group("/search")
	search.POST("", ctrl.Itinerary.Search)
	search.GET("", ctrl.Itinerary.SearchResults)

	saved := r.Group("/saved")
	saved.GET("", ctrl.Saved.ListSaved)
	saved.POST("", ctrl.Saved.Save)
	saved.DELETE("/:itineraryId", ctrl.Saved.Remove)
	saved.PUT("/next-plan", ctrl.Saved.SetNextPlan)
	r.GET("/home", ctrl.Saved.Home)

	reviews := r.Group("/reviews")
	reviews.GET("", ctrl.Review.ListReviews)
	reviews.POST("", ctrl.Review.AddReview)
	reviews.GET("/itineraries/:id", ctrl.Review.ForItinerary)
	reviews.GET("/users/:userId", ctrl.Review.ForUser)

	settings := r.Group("/settings")
	settings.GET("", ctrl.Settings.GetSettings)
	settings.PUT("/:settingId", ctrl.Settings.UpdateSetting)

	r.GET("/accessibility-features", ctrl.Catalog.ListFeatures)
	r.GET("/accessibility-features/users/:userId", ctrl.Catalog.UserFeatures)
	r.GET("/countries", ctrl.Catalog.ListCountries)

	users := r.Group("/users")
	users.POST("", ctrl.Account.Register)
	users.GET("/by-id/:id", ctrl.Account.GetUser)
	users.GET("/by-email/:email", ctrl.Account.GetUserByEmail)
	users.GET("/by-phone/:phone", ctrl.Account.GetUserByPhone)

	auth := r.Group("/auth")
	auth.POST("/login", ctrl.Account.Login)
	auth.POST("/google", ctrl.Account.LoginWithGoogle)
	auth.POST("/facebook", ctrl.Account.LoginWithFacebook)
	auth.POST("/logout", ctrl.Account.Logout)
	auth.GET("/me", middleware.RequireSession(sessions), ctrl.Account.Me)

	signup := r.Group("/signup")
	signup.POST("", ctrl.SignUp.Begin)
	signup.GET("/:flowId", ctrl.SignUp.GetDraft)
	signup.PATCH("/:flowId", ctrl.SignUp.UpdateDraft)
	signup.DELETE("/:flowId", ctrl.SignUp.Discard)
	signup.POST("/:flowId/submit", ctrl.SignUp.Submit)

	stream := r.Group("/stream")
	stream.GET("/itineraries", ctrl.Stream.Itineraries)
	stream.GET("/home", ctrl.Stream.Home)
}
