package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is an issued or parsed bearer token.
type Token struct {
	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"token"`

	// UserID is the owner taken from the "sub" claim.
	UserID int64 `json:"-"`

	// ExpiresAt mirrors the "exp" claim.
	ExpiresAt time.Time `json:"expires_at"`
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}

// TokenClaims is the claim set signed into every bearer token.
type TokenClaims struct {
	jwt.RegisteredClaims
}

// UserID parses the subject claim as a base-10 user id.
func (c TokenClaims) UserID() (int64, error) {
	if c.Subject == "" {
		return 0, fmt.Errorf("token has an empty subject")
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting token subject to user id: %w", err)
	}
	return userID, nil
}
