package repositories

import (
	"context"
	"net/url"

	"accessitrip/internal/infra"
	"accessitrip/internal/models/request_models"
	"accessitrip/internal/models/response_models"

	"github.com/google/uuid"
)

type ItineraryRepository interface {
	ListItineraries(ctx context.Context) ([]response_models.Itinerary, error)
}

type itineraryRepository struct {
	client *infra.APIClient
}

func NewItineraryRepository(client *infra.APIClient) ItineraryRepository {
	return &itineraryRepository{client: client}
}

func (r *itineraryRepository) ListItineraries(ctx context.Context) ([]response_models.Itinerary, error) {
	var itineraries []response_models.Itinerary
	if err := r.client.Get(ctx, "/api/itineraries", &itineraries); err != nil {
		return nil, err
	}
	return itineraries, nil
}

type ItineraryStepRepository interface {
	ListStepsByItinerary(ctx context.Context, itineraryID uuid.UUID) ([]response_models.ItineraryStep, error)
}

type itineraryStepRepository struct {
	client *infra.APIClient
}

func NewItineraryStepRepository(client *infra.APIClient) ItineraryStepRepository {
	return &itineraryStepRepository{client: client}
}

func (r *itineraryStepRepository) ListStepsByItinerary(ctx context.Context, itineraryID uuid.UUID) ([]response_models.ItineraryStep, error) {
	var steps []response_models.ItineraryStep
	if err := r.client.Get(ctx, "/api/itinerary-steps/by-itinerary/"+itineraryID.String(), &steps); err != nil {
		return nil, err
	}
	return steps, nil
}

type SavedItineraryRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]response_models.SavedItinerary, error)
	Save(ctx context.Context, request request_models.SavedItineraryRequest) (*response_models.SavedItinerary, error)
	// Delete takes the saved record's own id, not the itinerary id.
	Delete(ctx context.Context, savedID uuid.UUID) error
}

type savedItineraryRepository struct {
	client *infra.APIClient
}

func NewSavedItineraryRepository(client *infra.APIClient) SavedItineraryRepository {
	return &savedItineraryRepository{client: client}
}

func (r *savedItineraryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]response_models.SavedItinerary, error) {
	var saved []response_models.SavedItinerary
	if err := r.client.Get(ctx, "/api/saved-itineraries/user/"+url.PathEscape(userID.String()), &saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *savedItineraryRepository) Save(ctx context.Context, request request_models.SavedItineraryRequest) (*response_models.SavedItinerary, error) {
	var created response_models.SavedItinerary
	if err := r.client.Post(ctx, "/api/saved-itineraries", request, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *savedItineraryRepository) Delete(ctx context.Context, savedID uuid.UUID) error {
	return r.client.Delete(ctx, "/api/saved-itineraries/"+savedID.String())
}
