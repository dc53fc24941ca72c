package controllers

import (
	"net/http"
	"slices"
	"time"

	"accessitrip/internal/config"
	"accessitrip/internal/models/response_models"
	"accessitrip/internal/services"
	"accessitrip/pkg/observable"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const streamWriteWait = 10 * time.Second

// StreamController pushes state snapshots over a websocket every time the
// underlying cells change, so the UI shell does not have to poll.
type StreamController struct {
	upgrader    websocket.Upgrader
	itineraries observable.Readable[[]response_models.Itinerary]
	home        observable.Readable[homeState]
	log         logrus.FieldLogger
}

func NewStreamController(
	server config.ServerConfig,
	itineraryService services.ItineraryServiceInterface,
	savedService services.SavedItineraryServiceInterface,
	log logrus.FieldLogger,
) *StreamController {
	nextPlan := services.NextPlanItinerary(savedService.NextPlan(), itineraryService.Itineraries())
	details := services.SavedItineraryDetails(savedService.SavedItineraries(), itineraryService.Itineraries())

	return &StreamController{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(server.AllowedOrigins, "*") || slices.Contains(server.AllowedOrigins, origin)
			},
		},
		itineraries: itineraryService.Itineraries(),
		home: observable.Combine[*response_models.Itinerary, []services.SavedItineraryDetail, homeState](
			nextPlan, details,
			func(plan *response_models.Itinerary, saved []services.SavedItineraryDetail) homeState {
				return homeState{NextPlan: plan, Saved: saved}
			},
		),
		log: log.WithField("component", "stream"),
	}
}

func (s *StreamController) Itineraries(c *gin.Context) {
	stream(c, &s.upgrader, s.log.WithField("stream", "itineraries"), s.itineraries)
}

func (s *StreamController) Home(c *gin.Context) {
	stream(c, &s.upgrader, s.log.WithField("stream", "home"), s.home)
}

// stream sends the current value, then every update, until the client goes
// away.
func stream[T any](c *gin.Context, upgrader *websocket.Upgrader, log logrus.FieldLogger, src observable.Readable[T]) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	updates, cancel := src.Subscribe()
	defer cancel()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	write := func(v T) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
		if err := conn.WriteJSON(v); err != nil {
			log.WithError(err).Debug("stream write failed")
			return false
		}
		return true
	}

	if !write(src.Get()) {
		return
	}
	for {
		select {
		case <-closed:
			return
		case v, ok := <-updates:
			if !ok || !write(v) {
				return
			}
		}
	}
}
