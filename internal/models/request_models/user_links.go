package request_models

import "github.com/google/uuid"

type UserAccessibilityFeatureRequest struct {
	UserID    uuid.UUID `json:"userId"`
	FeatureID uuid.UUID `json:"featureId"`
}

type UserCountryAccessRequest struct {
	UserID    uuid.UUID `json:"userId"`
	CountryID uuid.UUID `json:"countryId"`
}

type UserSelectedDestinationRequest struct {
	UserID        uuid.UUID `json:"userId"`
	DestinationID uuid.UUID `json:"destinationId"`
}

type UserSettingRequest struct {
	UserID    string `json:"userId"`
	SettingID string `json:"settingId"`
	Value     bool   `json:"value"`
}
