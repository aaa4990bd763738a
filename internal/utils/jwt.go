package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateBridgeToken issues an HS256 token for a bridge session.
// The session id becomes the subject claim.
func GenerateBridgeToken(issuer, sessionID string, ttl time.Duration, signKey string) (string, error) {
	if issuer == "" || sessionID == "" || ttl <= 0 || signKey == "" {
		return "", errors.New("invalid params for generating bridge token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   sessionID,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error signing bridge token: %w", err)
	}
	return signed, nil
}

// ValidateBridgeToken verifies signature, issuer and expiry of a bridge
// token and returns its session id.
func ValidateBridgeToken(tokenString, signKey, issuer string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("error validating bridge token: %w", err)
	}

	sessionID, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error reading token subject: %w", err)
	}
	if sessionID == "" {
		return "", errors.New("empty subject error")
	}

	return sessionID, nil
}

// ParseBearerToken extracts the credential from an "Authorization: Bearer x" header.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
