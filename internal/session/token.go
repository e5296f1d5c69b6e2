package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 24 * time.Hour

type claims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// signToken wraps a session id in a signed HS256 token so the cookie cannot
// be forged to point at another session's state file.
func signToken(secret []byte, sessionID string) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("session secret is not set")
	}

	c := claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(secret)
}

func parseToken(secret []byte, tokenStr string) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("session secret is not set")
	}

	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return secret, nil
		},
	)
	if err != nil {
		return "", err
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid || c.SessionID == "" {
		return "", errors.New("invalid session token")
	}
	return c.SessionID, nil
}
