package request_models

import "github.com/google/uuid"

type ItineraryRefRequest struct {
	ItineraryID uuid.UUID `json:"itineraryId" binding:"required"`
}

type SettingValueRequest struct {
	Value *bool `json:"value" binding:"required"`
}

type SearchRequest struct {
	Query  string `json:"query"`
	Filter string `json:"filter"`
}

// SignUpDraftPatch sets the fields that are present and leaves the rest.
type SignUpDraftPatch struct {
	FullName              *string     `json:"fullName"`
	Nickname              *string     `json:"nickname"`
	Phone                 *string     `json:"phone"`
	Email                 *string     `json:"email"`
	Password              *string     `json:"password"`
	AccessibilityFeatures []uuid.UUID `json:"accessibilityFeatures"`
	Destinations          []string    `json:"destinations"`
	Places                []string    `json:"places"`
}
