package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrFlowNotFound):
		RespondError(c, http.StatusNotFound, "Sign-up flow not found or expired")
	case errors.Is(err, ErrInvalidRequest):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNoSession), errors.Is(err, ErrInvalidToken):
		RespondError(c, http.StatusUnauthorized, "No valid session")
	case errors.Is(err, ErrUnexpectedStatus):
		code := StatusCode(err)
		if code < 400 {
			code = http.StatusBadGateway
		}
		RespondError(c, code, err.Error())
	case errors.Is(err, ErrTransport), errors.Is(err, ErrDecode):
		logrus.WithError(err).Warn("backend unreachable")
		RespondError(c, http.StatusBadGateway, "Backend unavailable")
	default:
		logrus.WithError(err).Error("unknown error")
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
