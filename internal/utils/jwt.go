package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of every issued identity token.
const TokenTTL = time.Hour

// Claims is the decoded payload of an identity token. The email is the only
// claim the API interprets; anything else the caller signed rides along.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken signs the given payload with the server secret, adding the
// fixed expiry. The payload is signed as-is; it must carry at least "email"
// for the token to be of any use downstream.
func GenerateToken(secret []byte, payload map[string]any) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("token secret is not configured")
	}
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["exp"] = jwt.NewNumericDate(time.Now().Add(TokenTTL))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken verifies signature and expiry and returns the decoded claims.
func ValidateToken(secret []byte, tokenStr string) (*Claims, error) {
	if len(secret) == 0 {
		return nil, errors.New("token secret is not configured")
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
