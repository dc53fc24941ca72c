package middleware

import (
	"context"
	"errors"
	"net/http"

	"accessitrip/pkg/utils"

	"github.com/gin-gonic/gin"
)

type SessionReader interface {
	CurrentUserID(ctx context.Context) (string, error)
}

// RequireSession rejects the request unless a session token is stored and
// carries a user id. The id is available to handlers as "user_id".
func RequireSession(sessions SessionReader) gin.HandlerFunc {

	return func(c *gin.Context) {
		userID, err := sessions.CurrentUserID(c.Request.Context())
		if err != nil {
			if errors.Is(err, utils.ErrNoSession) {
				utils.RespondError(c, http.StatusUnauthorized, "Not logged in")
			} else {
				utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired session")
			}
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
