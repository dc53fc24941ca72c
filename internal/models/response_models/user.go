package response_models

import "github.com/google/uuid"

type User struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Nickname     *string `json:"nickname"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	PasswordHash string  `json:"passwordHash,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

type AuthResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
}

type Country struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Available bool      `json:"available"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt *string   `json:"updatedAt"`
}

type Destination struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Available   bool      `json:"available"`
	CountryID   uuid.UUID `json:"countryId"`
	CountryName string    `json:"countryName"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   *string   `json:"updatedAt"`
}

type UserCountryAccess struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	CountryID   uuid.UUID `json:"countryId"`
	CountryName string    `json:"countryName"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   *string   `json:"updatedAt"`
}

type UserSelectedDestination struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"userId"`
	DestinationID uuid.UUID `json:"destinationId"`
	CreatedAt     string    `json:"createdAt"`
	UpdatedAt     *string   `json:"updatedAt"`
}
