package response_models

import "github.com/google/uuid"

type AccessibilityFeature struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt *string   `json:"updatedAt"`
}

type UserAccessibilityFeature struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	FeatureID uuid.UUID `json:"featureId"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt *string   `json:"updatedAt"`
}

// Setting ids are opaque strings, unlike the rest of the catalog.
type Setting struct {
	ID           string `json:"id"`
	SettingKey   string `json:"settingKey"`
	Label        string `json:"label"`
	Description  string `json:"description"`
	DefaultValue bool   `json:"defaultValue"`
}

type UserSetting struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	SettingID string `json:"settingId"`
	Value     bool   `json:"value"`
}
