package controllers

import (
	"context"
	"net/http"

	"accessitrip/internal/models/request_models"
	"accessitrip/internal/models/response_models"
	"accessitrip/internal/services"
	"accessitrip/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AccountController struct {
	userService services.UserServiceInterface
}

func NewAccountController(userService services.UserServiceInterface) *AccountController {
	return &AccountController{
		userService: userService,
	}
}

// Register godoc
// @Summary Create a user
// @Description Create a user account on the backend
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.UserRequest true "User payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /users [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	a.userService.CreateUser(c.Request.Context(), req)
	if msg := a.userService.Err().Get(); msg != "" {
		utils.RespondError(c, http.StatusBadGateway, msg)
		return
	}
	utils.RespondSuccess(c, a.userService.User().Get(), "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate with an email or phone number and store the session token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if !a.userService.Login(c.Request.Context(), req.Identifier, req.Password) {
		utils.RespondError(c, http.StatusUnauthorized, a.userService.Err().Get())
		return
	}
	utils.RespondSuccess(c, a.userService.User().Get(), "Login successful")
}

func (a *AccountController) LoginWithGoogle(c *gin.Context) {
	a.federatedLogin(c, a.userService.LoginWithGoogle)
}

func (a *AccountController) LoginWithFacebook(c *gin.Context) {
	a.federatedLogin(c, a.userService.LoginWithFacebook)
}

func (a *AccountController) federatedLogin(c *gin.Context, login func(ctx context.Context, idToken string) bool) {
	var req request_models.FederatedSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if !login(c.Request.Context(), req.IDToken) {
		utils.RespondError(c, http.StatusUnauthorized, a.userService.Err().Get())
		return
	}
	utils.RespondSuccess(c, a.userService.User().Get(), "Login successful")
}

// Logout godoc
// @Summary Logout
// @Description Clear the stored session token
// @Tags Accounts
// @Success 200 {object} utils.APIResponse
// @Router /auth/logout [post]
func (a *AccountController) Logout(c *gin.Context) {
	a.userService.Logout(c.Request.Context())
	utils.RespondSuccess(c, nil, "Logged out")
}

// Me restores the user from the stored session token.
func (a *AccountController) Me(c *gin.Context) {
	a.userService.LoadUserFromToken(c.Request.Context())

	user := a.userService.User().Get()
	if user == nil || user.ID != c.GetString("user_id") {
		utils.RespondError(c, http.StatusNotFound, "User not found")
		return
	}
	utils.RespondSuccess(c, user, "User fetched successfully")
}

func (a *AccountController) GetUser(c *gin.Context) {
	a.userService.FetchUser(c.Request.Context(), c.Param("id"))
	if msg := a.userService.Err().Get(); msg != "" {
		utils.RespondError(c, http.StatusNotFound, msg)
		return
	}
	utils.RespondSuccess(c, a.userService.User().Get(), "User fetched successfully")
}

func (a *AccountController) GetUserByEmail(c *gin.Context) {
	respondLookup(c, a.userService.FetchUserByEmail(c.Request.Context(), c.Param("email")))
}

func (a *AccountController) GetUserByPhone(c *gin.Context) {
	respondLookup(c, a.userService.FetchUserByPhone(c.Request.Context(), c.Param("phone")))
}

func respondLookup(c *gin.Context, user *response_models.User) {
	if user == nil {
		utils.RespondError(c, http.StatusNotFound, "User not found")
		return
	}
	utils.RespondSuccess(c, user, "User fetched successfully")
}
