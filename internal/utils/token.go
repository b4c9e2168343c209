package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer is the issuer claim of access tokens minted by this service.
const TokenIssuer = "bet_tracker"

// GenerateJWT signs an HS256 access token whose subject is userID.
func GenerateJWT(userID string, secret string, expiryDuration time.Duration, now time.Time) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}
	if secret == "" {
		return "", errors.New("signing secret is required")
	}
	claims := jwt.RegisteredClaims{
		Issuer:    TokenIssuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ErrMissingSubject is returned for a correctly signed token without a user id.
var ErrMissingSubject = errors.New("token has no subject")

// ParseJWT verifies an HS256 access token and returns its subject.
// Expiry and not-before are enforced by the jwt parser.
func ParseJWT(signed, secret string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", ErrMissingSubject
	}
	return claims.Subject, nil
}
