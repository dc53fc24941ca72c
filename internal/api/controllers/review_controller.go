package controllers

import (
	"net/http"

	"accessitrip/internal/models/request_models"
	"accessitrip/internal/services"
	"accessitrip/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewController(reviewService services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// ListReviews godoc
// @Summary List reviews
// @Tags Reviews
// @Param refresh query bool false "Reload before answering"
// @Success 200 {array} response_models.Review
// @Failure 502 {object} utils.APIResponse
// @Router /reviews [get]
func (r *ReviewController) ListReviews(c *gin.Context) {
	if c.Query("refresh") == "true" {
		r.reviewService.FetchAll(c.Request.Context())
		if msg := r.reviewService.Err().Get(); msg != "" {
			utils.RespondError(c, http.StatusBadGateway, msg)
			return
		}
	}
	utils.RespondSuccess(c, r.reviewService.Reviews().Get(), "Reviews fetched successfully")
}

// AddReview godoc
// @Summary Post a review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body request_models.ReviewRequest true "Review payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /reviews [post]
func (r *ReviewController) AddReview(c *gin.Context) {
	var req request_models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	failure := ""
	r.reviewService.PostReview(c.Request.Context(), req, nil, func(msg string) { failure = msg })
	if failure != "" {
		utils.RespondError(c, http.StatusBadGateway, failure)
		return
	}

	utils.RespondSuccess(c, r.reviewService.ForItinerary(req.ItineraryID), "Review added successfully")
}

func (r *ReviewController) ForItinerary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary ID")
		return
	}
	utils.RespondSuccess(c, r.reviewService.ForItinerary(id), "Reviews fetched successfully")
}

func (r *ReviewController) ForUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}
	utils.RespondSuccess(c, r.reviewService.ForUser(id), "Reviews fetched successfully")
}
