package controllers

import (
	"net/http"

	"accessitrip/internal/models/request_models"
	"accessitrip/internal/models/view_models"
	"accessitrip/internal/services"
	"accessitrip/pkg/utils"

	"github.com/gin-gonic/gin"
)

type settingsState struct {
	Settings []view_models.UserSettingRow `json:"settings"`
	Loading  bool                         `json:"loading"`
	Error    string                       `json:"error,omitempty"`
}

type SettingsController struct {
	settingsService services.SettingsServiceInterface
}

func NewSettingsController(settingsService services.SettingsServiceInterface) *SettingsController {
	return &SettingsController{settingsService: settingsService}
}

func (s *SettingsController) state() settingsState {
	return settingsState{
		Settings: s.settingsService.Settings().Get(),
		Loading:  s.settingsService.Loading().Get(),
		Error:    s.settingsService.Err().Get(),
	}
}

// GetSettings godoc
// @Summary Settings screen rows for the current user
// @Tags Settings
// @Param reload query bool false "Reload catalog and overrides first"
// @Success 200 {object} utils.APIResponse
// @Router /settings [get]
func (s *SettingsController) GetSettings(c *gin.Context) {
	if c.Query("reload") == "true" {
		s.settingsService.LoadSettings(c.Request.Context())
	}
	utils.RespondSuccess(c, s.state(), "Settings fetched successfully")
}

// UpdateSetting godoc
// @Summary Change one setting
// @Tags Settings
// @Accept json
// @Param settingId path string true "Setting ID"
// @Param request body request_models.SettingValueRequest true "New value"
// @Success 200 {object} utils.APIResponse
// @Router /settings/{settingId} [put]
func (s *SettingsController) UpdateSetting(c *gin.Context) {
	var req request_models.SettingValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	s.settingsService.PostUserSetting(c.Request.Context(), c.Param("settingId"), *req.Value)
	utils.RespondSuccess(c, s.state(), "Setting updated")
}
