package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenClaims is returned when the token carries no usable
// rider id claim.
var ErrInvalidTokenClaims = errors.New("invalid token claims")

// userIDClaim is the claim the fare API stores the rider id in.
const userIDClaim = "id_user"

// SessionClaims are the claims a rider client reads from its bearer token.
type SessionClaims struct {
	UserID    string
	ExpiresAt time.Time
}

// ParseSessionClaims decodes the rider id and expiry from tokenString
// without verifying the signature. The client cannot verify it and does not
// need to: every request is authorized by the API.
func ParseSessionClaims(tokenString string) (SessionClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return SessionClaims{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return SessionClaims{}, ErrInvalidTokenClaims
	}

	userID, ok := claims[userIDClaim].(string)
	if !ok || userID == "" {
		return SessionClaims{}, ErrInvalidTokenClaims
	}

	var expiresAt time.Time
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return SessionClaims{}, fmt.Errorf("parse token exp: %w", err)
	}
	if exp != nil {
		expiresAt = exp.Time
	}

	return SessionClaims{UserID: userID, ExpiresAt: expiresAt}, nil
}
