package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the session cookie claims
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}
