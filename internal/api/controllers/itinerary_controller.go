package controllers

import (
	"net/http"

	"accessitrip/internal/models/request_models"
	"accessitrip/internal/models/view_models"
	"accessitrip/internal/services"
	"accessitrip/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	stepService      services.ItineraryStepServiceInterface
	searchService    services.SearchServiceInterface
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	stepService services.ItineraryStepServiceInterface,
	searchService services.SearchServiceInterface,
) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		stepService:      stepService,
		searchService:    searchService,
	}
}

// ListItineraries godoc
// @Summary List itineraries
// @Description Current itinerary list; pass refresh=true to reload it from the backend first
// @Tags Itineraries
// @Produce json
// @Param refresh query bool false "Reload before answering"
// @Success 200 {array} response_models.Itinerary
// @Router /itineraries [get]
func (i *ItineraryController) ListItineraries(c *gin.Context) {
	if c.Query("refresh") == "true" {
		i.itineraryService.FetchAll(c.Request.Context())
	}
	utils.RespondSuccess(c, i.itineraryService.Itineraries().Get(), "Itineraries fetched successfully")
}

// GetItinerary godoc
// @Summary Get itinerary by ID
// @Tags Itineraries
// @Param id path string true "Itinerary ID"
// @Success 200 {object} response_models.Itinerary
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries/{id} [get]
func (i *ItineraryController) GetItinerary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary ID")
		return
	}

	itinerary := i.itineraryService.LookupByID(id).Get()
	if itinerary == nil {
		utils.RespondError(c, http.StatusNotFound, "Itinerary not found")
		return
	}
	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// GetSteps godoc
// @Summary List the steps of an itinerary
// @Tags Itineraries
// @Param id path string true "Itinerary ID"
// @Success 200 {array} view_models.ItineraryStepView
// @Failure 502 {object} utils.APIResponse
// @Router /itineraries/{id}/steps [get]
func (i *ItineraryController) GetSteps(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary ID")
		return
	}

	i.stepService.FetchSteps(c.Request.Context(), id)
	if msg := i.stepService.Err().Get(); msg != "" {
		utils.RespondError(c, http.StatusBadGateway, msg)
		return
	}
	utils.RespondSuccess(c, view_models.NewItineraryStepViews(i.stepService.Steps().Get()), "Steps fetched successfully")
}

func (i *ItineraryController) Search(c *gin.Context) {
	var req request_models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	i.searchService.SetQuery(req.Query)
	i.searchService.SetFilter(req.Filter)
	utils.RespondSuccess(c, i.searchService.Results().Get(), "Search results")
}

func (i *ItineraryController) SearchResults(c *gin.Context) {
	utils.RespondSuccess(c, i.searchService.Results().Get(), "Search results")
}
