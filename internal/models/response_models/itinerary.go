package response_models

import (
	"encoding/json"

	"github.com/google/uuid"
)

type Itinerary struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Price           *float64  `json:"price"`
	Duration        *int      `json:"duration"` // hours
	Rating          *float32  `json:"rating"`
	DestinationName string    `json:"destinationName"`
	ImageURL        *string   `json:"imageUrl"`
	CreatedAt       string    `json:"createdAt"`
	UpdatedAt       *string   `json:"updatedAt"`
}

// ItineraryStep coordinates are fixed-point decimals; json.Number keeps the
// backend's exact digits.
type ItineraryStep struct {
	ID          uuid.UUID   `json:"id"`
	ItineraryID uuid.UUID   `json:"itineraryId"`
	StepIndex   int         `json:"stepIndex"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Latitude    json.Number `json:"latitude"`
	Longitude   json.Number `json:"longitude"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   *string     `json:"updatedAt"`
}

// Coordinates converts the step position for map rendering.
func (s ItineraryStep) Coordinates() (lat, lng float64, err error) {
	if lat, err = s.Latitude.Float64(); err != nil {
		return 0, 0, err
	}
	if lng, err = s.Longitude.Float64(); err != nil {
		return 0, 0, err
	}
	return lat, lng, nil
}

type SavedItinerary struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	ItineraryID uuid.UUID `json:"itineraryId"`
	SavedAt     string    `json:"savedAt"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   *string   `json:"updatedAt"`
}

type Review struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	ItineraryID uuid.UUID `json:"itineraryId"`
	Rating      float32   `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   *string   `json:"updatedAt"`
}
