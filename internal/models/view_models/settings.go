package view_models

// UserSettingRow is one line of the settings screen. ID is the user's
// override id; it is empty exactly when no override exists yet.
type UserSettingRow struct {
	ID        string `json:"id"`
	SettingID string `json:"settingId"`
	Label     string `json:"label"`
	Value     bool   `json:"value"`
}
