package request_models

import "github.com/google/uuid"

type SavedItineraryRequest struct {
	UserID      uuid.UUID `json:"userId"`
	ItineraryID uuid.UUID `json:"itineraryId"`
}

type ReviewRequest struct {
	UserID      uuid.UUID `json:"userId" binding:"required"`
	ItineraryID uuid.UUID `json:"itineraryId" binding:"required"`
	Rating      float32   `json:"rating" binding:"required,min=1,max=5"`
	Comment     string    `json:"comment"`
}
