package services

import (
	"errors"
	"time"

	"filmio-backend/internal/common"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL matches the original deployment's year-long sessions.
// There is no refresh flow; set TOKEN_TTL if long-lived credentials are not
// acceptable.
const DefaultTokenTTL = 52 * 7 * 24 * time.Hour

// TokenService issues and verifies signed bearer tokens binding a username
// as the subject claim.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue signs a token carrying the username as subject.
func (s *TokenService) Issue(username string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature, algorithm and expiry and returns the subject.
// The algorithm is pinned: a token declaring anything but HS256 is rejected
// before its signature is even checked, so a caller-supplied algorithm can
// never downgrade verification.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return "", common.ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}
	return claims.Subject, nil
}
