package controllers

import (
	"net/http"

	"accessitrip/internal/services"
	"accessitrip/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogController serves the accessibility feature and country catalogs
// that the sign-up and profile screens pick from.
type CatalogController struct {
	accessibilityService services.AccessibilityServiceInterface
	countryService       services.CountryServiceInterface
}

func NewCatalogController(
	accessibilityService services.AccessibilityServiceInterface,
	countryService services.CountryServiceInterface,
) *CatalogController {
	return &CatalogController{
		accessibilityService: accessibilityService,
		countryService:       countryService,
	}
}

func (a *CatalogController) ListFeatures(c *gin.Context) {
	if c.Query("refresh") == "true" {
		a.accessibilityService.FetchAccessibilityFeatures(c.Request.Context())
	}
	utils.RespondSuccess(c, gin.H{
		"features": a.accessibilityService.Features().Get(),
		"loading":  a.accessibilityService.Loading().Get(),
	}, "Accessibility features fetched successfully")
}

// UserFeatures godoc
// @Summary Accessibility labels picked by a user
// @Description Labels resolve through the loaded catalog; an unloaded catalog yields none
// @Tags Accessibility
// @Param userId path string true "User ID"
// @Success 200 {array} string
// @Router /accessibility-features/users/{userId} [get]
func (a *CatalogController) UserFeatures(c *gin.Context) {
	userID := c.Param("userId")
	if _, err := uuid.Parse(userID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	a.accessibilityService.FetchUserFeatures(c.Request.Context(), userID)
	utils.RespondSuccess(c, a.accessibilityService.SelectedLabels().Get(), "User accessibility features fetched successfully")
}

func (a *CatalogController) ListCountries(c *gin.Context) {
	if c.Query("refresh") == "true" {
		a.countryService.FetchCountries(c.Request.Context())
	}
	utils.RespondSuccess(c, a.countryService.Countries().Get(), "Countries fetched successfully")
}
