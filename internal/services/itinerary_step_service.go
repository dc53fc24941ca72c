package services

import (
	"context"
	"sort"

	"accessitrip/internal/models/response_models"
	"accessitrip/internal/repositories"
	"accessitrip/pkg/observable"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const stepsErrorMessage = "No steps available or error occurred"

type ItineraryStepServiceInterface interface {
	Steps() observable.Readable[[]response_models.ItineraryStep]
	Err() observable.Readable[string]
	FetchSteps(ctx context.Context, itineraryID uuid.UUID)
}

// ItineraryStepService holds the steps of the itinerary currently on screen,
// ordered by step index.
type ItineraryStepService struct {
	repo  repositories.ItineraryStepRepository
	log   logrus.FieldLogger
	steps *observable.Value[[]response_models.ItineraryStep]
	err   *observable.Value[string]
}

func NewItineraryStepService(repo repositories.ItineraryStepRepository, opts ...Option) *ItineraryStepService {
	o := newOptions("itinerary_step", opts)
	return &ItineraryStepService{
		repo:  repo,
		log:   o.logger,
		steps: observable.NewValue[[]response_models.ItineraryStep](nil),
		err:   observable.NewValue(""),
	}
}

func (s *ItineraryStepService) Steps() observable.Readable[[]response_models.ItineraryStep] {
	return s.steps
}

func (s *ItineraryStepService) Err() observable.Readable[string] {
	return s.err
}

func (s *ItineraryStepService) FetchSteps(ctx context.Context, itineraryID uuid.UUID) {
	steps, err := s.repo.ListStepsByItinerary(ctx, itineraryID)
	if err != nil {
		s.log.WithError(err).WithField("itinerary_id", itineraryID).Error("failed to fetch itinerary steps")
		s.err.Set(stepsErrorMessage)
		return
	}

	sorted := make([]response_models.ItineraryStep, len(steps))
	copy(sorted, steps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StepIndex < sorted[j].StepIndex
	})
	s.steps.Set(sorted)
	s.err.Set("")
}
