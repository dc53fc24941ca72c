package services

import (
	"context"

	"accessitrip/internal/models/request_models"
	"accessitrip/internal/models/response_models"
	"accessitrip/internal/repositories"
	"accessitrip/pkg/observable"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const savedItinerariesErrorMessage = "Error fetching saved itineraries"

type SavedItineraryServiceInterface interface {
	UserID() uuid.UUID
	SavedItineraries() observable.Readable[[]response_models.SavedItinerary]
	NextPlan() observable.Readable[*response_models.SavedItinerary]
	Err() observable.Readable[string]
	FetchAll(ctx context.Context)
	Save(ctx context.Context, itineraryID uuid.UUID, onSuccess func())
	Remove(ctx context.Context, itineraryID uuid.UUID)
	SetAsNextPlan(itineraryID uuid.UUID)
	Close()
}

// SavedItineraryService holds one user's saved itineraries and the one
// picked as next plan. The next plan always points at a saved record.
type SavedItineraryService struct {
	*taskScope
	repo     repositories.SavedItineraryRepository
	log      logrus.FieldLogger
	userID   uuid.UUID
	saved    *observable.Value[[]response_models.SavedItinerary]
	nextPlan *observable.Value[*response_models.SavedItinerary]
	err      *observable.Value[string]
}

func NewSavedItineraryService(repo repositories.SavedItineraryRepository, userID uuid.UUID, opts ...Option) *SavedItineraryService {
	o := newOptions("saved_itinerary", opts)
	s := &SavedItineraryService{
		taskScope: newTaskScope(),
		repo:      repo,
		log:       o.logger.WithField("user_id", userID),
		userID:    userID,
		saved:     observable.NewValue[[]response_models.SavedItinerary](nil),
		nextPlan:  observable.NewValue[*response_models.SavedItinerary](nil),
		err:       observable.NewValue(""),
	}
	if !o.skipInitialFetch {
		s.launch(s.FetchAll)
	}
	return s
}

func (s *SavedItineraryService) UserID() uuid.UUID {
	return s.userID
}

func (s *SavedItineraryService) SavedItineraries() observable.Readable[[]response_models.SavedItinerary] {
	return s.saved
}

func (s *SavedItineraryService) NextPlan() observable.Readable[*response_models.SavedItinerary] {
	return s.nextPlan
}

func (s *SavedItineraryService) Err() observable.Readable[string] {
	return s.err
}

func (s *SavedItineraryService) FetchAll(ctx context.Context) {
	saved, err := s.repo.ListByUser(ctx, s.userID)
	if err != nil {
		s.log.WithError(err).Error("failed to fetch saved itineraries")
		s.err.Set(savedItinerariesErrorMessage)
		return
	}
	s.saved.Set(saved)
	s.err.Set("")
}

// Save appends the created record without refetching. onSuccess may be nil.
func (s *SavedItineraryService) Save(ctx context.Context, itineraryID uuid.UUID, onSuccess func()) {
	created, err := s.repo.Save(ctx, request_models.SavedItineraryRequest{
		UserID:      s.userID,
		ItineraryID: itineraryID,
	})
	if err != nil {
		s.log.WithError(err).WithField("itinerary_id", itineraryID).Error("failed to save itinerary")
		return
	}

	s.saved.Update(func(current []response_models.SavedItinerary) []response_models.SavedItinerary {
		return appendCopy(current, *created)
	})
	if onSuccess != nil {
		onSuccess()
	}
}

// Remove deletes the saved record that references itineraryID. Nothing is
// sent when no such record is held locally.
func (s *SavedItineraryService) Remove(ctx context.Context, itineraryID uuid.UUID) {
	target := findSaved(s.saved.Get(), itineraryID)
	if target == nil {
		return
	}

	if err := s.repo.Delete(ctx, target.ID); err != nil {
		s.log.WithError(err).WithField("saved_id", target.ID).Error("failed to remove saved itinerary")
		return
	}

	s.saved.Update(func(current []response_models.SavedItinerary) []response_models.SavedItinerary {
		kept := make([]response_models.SavedItinerary, 0, len(current))
		for _, item := range current {
			if item.ID != target.ID {
				kept = append(kept, item)
			}
		}
		return kept
	})
}

// SetAsNextPlan leaves the next plan untouched when itineraryID is not saved.
func (s *SavedItineraryService) SetAsNextPlan(itineraryID uuid.UUID) {
	if target := findSaved(s.saved.Get(), itineraryID); target != nil {
		s.nextPlan.Set(target)
	}
}

func findSaved(items []response_models.SavedItinerary, itineraryID uuid.UUID) *response_models.SavedItinerary {
	for i := range items {
		if items[i].ItineraryID == itineraryID {
			item := items[i]
			return &item
		}
	}
	return nil
}

// appendCopy never writes into the backing array of a published slice.
func appendCopy[T any](current []T, item T) []T {
	next := make([]T, len(current), len(current)+1)
	copy(next, current)
	return append(next, item)
}
