package controllers

import (
	"net/http"

	"accessitrip/internal/models/request_models"
	"accessitrip/internal/models/response_models"
	"accessitrip/internal/services"
	"accessitrip/pkg/observable"
	"accessitrip/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type savedState struct {
	Saved    []response_models.SavedItinerary `json:"saved"`
	NextPlan *response_models.SavedItinerary  `json:"nextPlan"`
	Error    string                           `json:"error,omitempty"`
}

type homeState struct {
	NextPlan *response_models.Itinerary      `json:"nextPlan"`
	Saved    []services.SavedItineraryDetail `json:"saved"`
}

type SavedItineraryController struct {
	savedService services.SavedItineraryServiceInterface
	nextPlan     observable.Readable[*response_models.Itinerary]
	details      observable.Readable[[]services.SavedItineraryDetail]
}

func NewSavedItineraryController(
	savedService services.SavedItineraryServiceInterface,
	itineraryService services.ItineraryServiceInterface,
) *SavedItineraryController {
	return &SavedItineraryController{
		savedService: savedService,
		nextPlan:     services.NextPlanItinerary(savedService.NextPlan(), itineraryService.Itineraries()),
		details:      services.SavedItineraryDetails(savedService.SavedItineraries(), itineraryService.Itineraries()),
	}
}

func (s *SavedItineraryController) state() savedState {
	return savedState{
		Saved:    s.savedService.SavedItineraries().Get(),
		NextPlan: s.savedService.NextPlan().Get(),
		Error:    s.savedService.Err().Get(),
	}
}

// ListSaved godoc
// @Summary Saved itineraries of the current user
// @Tags Saved
// @Param refresh query bool false "Reload before answering"
// @Success 200 {object} utils.APIResponse
// @Router /saved [get]
func (s *SavedItineraryController) ListSaved(c *gin.Context) {
	if c.Query("refresh") == "true" {
		s.savedService.FetchAll(c.Request.Context())
	}
	utils.RespondSuccess(c, s.state(), "Saved itineraries fetched successfully")
}

// Save godoc
// @Summary Save an itinerary
// @Tags Saved
// @Accept json
// @Param request body request_models.ItineraryRefRequest true "Itinerary to save"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /saved [post]
func (s *SavedItineraryController) Save(c *gin.Context) {
	var req request_models.ItineraryRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	saved := false
	s.savedService.Save(c.Request.Context(), req.ItineraryID, func() { saved = true })
	if !saved {
		utils.RespondError(c, http.StatusBadGateway, "Could not save itinerary")
		return
	}
	utils.RespondSuccess(c, s.state(), "Itinerary saved")
}

// Remove answers with the current state whether or not anything was removed.
func (s *SavedItineraryController) Remove(c *gin.Context) {
	id, err := uuid.Parse(c.Param("itineraryId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary ID")
		return
	}

	s.savedService.Remove(c.Request.Context(), id)
	utils.RespondSuccess(c, s.state(), "Saved itineraries updated")
}

func (s *SavedItineraryController) SetNextPlan(c *gin.Context) {
	var req request_models.ItineraryRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	s.savedService.SetAsNextPlan(req.ItineraryID)
	utils.RespondSuccess(c, s.state(), "Next plan updated")
}

// Home godoc
// @Summary Home screen state
// @Description Next plan and saved itineraries resolved against the itinerary list
// @Tags Saved
// @Success 200 {object} utils.APIResponse
// @Router /home [get]
func (s *SavedItineraryController) Home(c *gin.Context) {
	utils.RespondSuccess(c, homeState{
		NextPlan: s.nextPlan.Get(),
		Saved:    s.details.Get(),
	}, "Home fetched successfully")
}
