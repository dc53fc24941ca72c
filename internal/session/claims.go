package session

import (
	"fmt"

	"accessitrip/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// DecodeClaims reads the payload of a bearer token without verifying its
// signature; the backend stays the authority on validity.
func DecodeClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidToken, err)
	}
	return claims, nil
}
