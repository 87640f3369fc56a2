package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// The "sub" claim carries the acting account's email, which is the user
// identifier every resolver receives.
type Token struct {
	// Token is the underlying JWT token used for claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the account email extracted from the "sub" claim.
	UserID string `json:"-"`
}

// GetUserID extracts the account email from the token's "sub" claim.
//
// Returns an error if the subject claim is missing or empty.
func (t *Token) GetUserID() (string, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if subject == "" {
		return "", fmt.Errorf("error extracting UserID from token: empty subject")
	}

	return subject, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
