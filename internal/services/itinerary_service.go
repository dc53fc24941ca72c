package services

import (
	"context"

	"accessitrip/internal/models/response_models"
	"accessitrip/internal/repositories"
	"accessitrip/pkg/observable"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ItineraryServiceInterface interface {
	Itineraries() observable.Readable[[]response_models.Itinerary]
	FetchAll(ctx context.Context)
	LookupByID(id uuid.UUID) observable.Readable[*response_models.Itinerary]
	Close()
}

// ItineraryService holds the itinerary catalog. A failed fetch keeps the
// previous list and is only logged.
type ItineraryService struct {
	*taskScope
	repo        repositories.ItineraryRepository
	log         logrus.FieldLogger
	itineraries *observable.Value[[]response_models.Itinerary]
}

func NewItineraryService(repo repositories.ItineraryRepository, opts ...Option) *ItineraryService {
	o := newOptions("itinerary", opts)
	s := &ItineraryService{
		taskScope:   newTaskScope(),
		repo:        repo,
		log:         o.logger,
		itineraries: observable.NewValue[[]response_models.Itinerary](nil),
	}
	if !o.skipInitialFetch {
		s.launch(s.FetchAll)
	}
	return s
}

func (s *ItineraryService) Itineraries() observable.Readable[[]response_models.Itinerary] {
	return s.itineraries
}

func (s *ItineraryService) FetchAll(ctx context.Context) {
	itineraries, err := s.repo.ListItineraries(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to fetch itineraries")
		return
	}
	s.itineraries.Set(itineraries)
}

// LookupByID is re-evaluated against the current list on every read.
func (s *ItineraryService) LookupByID(id uuid.UUID) observable.Readable[*response_models.Itinerary] {
	return observable.Map[[]response_models.Itinerary, *response_models.Itinerary](s.itineraries, func(items []response_models.Itinerary) *response_models.Itinerary {
		return findItinerary(items, id)
	})
}

func findItinerary(items []response_models.Itinerary, id uuid.UUID) *response_models.Itinerary {
	for i := range items {
		if items[i].ID == id {
			item := items[i]
			return &item
		}
	}
	return nil
}
