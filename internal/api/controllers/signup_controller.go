package controllers

import (
	"net/http"

	"accessitrip/internal/models/request_models"
	"accessitrip/internal/services"
	"accessitrip/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SignUpController drives the multi-screen sign-up flow. Each flow owns one
// draft, addressed by its flow id.
type SignUpController struct {
	signUpService  services.SignUpServiceInterface
	countryService services.CountryServiceInterface
}

func NewSignUpController(
	signUpService services.SignUpServiceInterface,
	countryService services.CountryServiceInterface,
) *SignUpController {
	return &SignUpController{
		signUpService:  signUpService,
		countryService: countryService,
	}
}

func (s *SignUpController) Begin(c *gin.Context) {
	draft := s.signUpService.Begin()
	utils.RespondSuccess(c, draft.Snapshot(), "Sign-up started")
}

func (s *SignUpController) GetDraft(c *gin.Context) {
	draft, ok := s.draft(c)
	if !ok {
		return
	}
	utils.RespondSuccess(c, draft.Snapshot(), "Sign-up draft fetched")
}

// UpdateDraft godoc
// @Summary Update sign-up fields
// @Description Fields missing from the payload keep their value
// @Tags SignUp
// @Accept json
// @Param flowId path string true "Flow ID"
// @Param request body request_models.SignUpDraftPatch true "Fields to set"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /signup/{flowId} [patch]
func (s *SignUpController) UpdateDraft(c *gin.Context) {
	var patch request_models.SignUpDraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	draft, ok := s.draft(c)
	if !ok {
		return
	}

	if patch.FullName != nil {
		draft.SetFullName(*patch.FullName)
	}
	if patch.Nickname != nil {
		draft.SetNickname(patch.Nickname)
	}
	if patch.Phone != nil {
		draft.SetPhone(*patch.Phone)
	}
	if patch.Email != nil {
		draft.SetEmail(*patch.Email)
	}
	if patch.Password != nil {
		draft.SetPassword(*patch.Password)
	}
	if patch.AccessibilityFeatures != nil {
		draft.SetAccessibilityFeatures(patch.AccessibilityFeatures)
	}
	if patch.Destinations != nil {
		draft.SetDestinations(patch.Destinations)
	}
	if patch.Places != nil {
		draft.SetPlaces(patch.Places)
	}

	utils.RespondSuccess(c, draft.Snapshot(), "Sign-up draft updated")
}

func (s *SignUpController) Discard(c *gin.Context) {
	flowID, err := uuid.Parse(c.Param("flowId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid flow ID")
		return
	}
	s.signUpService.Discard(flowID)
	utils.RespondSuccess(c, nil, "Sign-up discarded")
}

// Submit godoc
// @Summary Finish sign-up
// @Description Creates the account, logs in and links the selections; the result lists every link attempt
// @Tags SignUp
// @Param flowId path string true "Flow ID"
// @Success 200 {object} services.SignUpResult
// @Failure 404 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /signup/{flowId}/submit [post]
func (s *SignUpController) Submit(c *gin.Context) {
	flowID, err := uuid.Parse(c.Param("flowId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid flow ID")
		return
	}

	result, err := s.signUpService.SubmitSignup(c.Request.Context(), flowID, s.countryService.NameToID())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Sign-up completed")
}

func (s *SignUpController) draft(c *gin.Context) (*services.SignUpDraft, bool) {
	flowID, err := uuid.Parse(c.Param("flowId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid flow ID")
		return nil, false
	}
	draft, err := s.signUpService.Draft(flowID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return nil, false
	}
	return draft, true
}
