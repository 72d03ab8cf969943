package middleware

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "inventory_session"

// ParseSessionToken validates a session token and returns the session ID it
// references. The token carries only the ID; the identity itself never leaves
// the server.
func ParseSessionToken(secret, tokenString string) (string, error) {
	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid session token")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", errors.New("session token missing subject")
	}
	return claims.Subject, nil
}
