package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the request-scoped identity carried by the JWT. Operations that
// need elevated privilege check IsAdmin instead of any ambient session flag.
type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}
