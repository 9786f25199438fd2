package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL is how long a login stays valid. Within the window the Discord
// profile is never re-checked.
const SessionTTL = 7 * 24 * time.Hour

// SignSessionID wraps a server-side session id in an HS256 token for the
// cookie. The record itself lives in Mongo so logout can destroy it.
func SignSessionID(sid string, secret []byte, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   sid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseSessionID validates the cookie token and returns the session id.
func ParseSessionID(token string, secret []byte) (string, error) {
	var claims jwt.RegisteredClaims
	tok, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !tok.Valid {
		return "", errors.New("invalid session token")
	}
	if claims.Subject == "" {
		return "", errors.New("missing session id")
	}
	return claims.Subject, nil
}
