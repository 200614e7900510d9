package model

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the payload the GED backend puts in the session token.
// The console never verifies the signature; it only reads these fields.
type SessionClaims struct {
	Nome        string   `json:"nome,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}
