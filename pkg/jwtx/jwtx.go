// Package jwtx issues and verifies the HMAC-signed bearer tokens used by the
// back-office API. Tokens are HS256 with a single shared secret; there is no
// key rotation, operators cut a new secret and re-mint instead.
package jwtx

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("jwtx: invalid token")
	ErrNoSecret     = errors.New("jwtx: secret is empty")
)

// Claims is the decoded, validated content of an admin token.
type Claims struct {
	Subject   string
	Issuer    string
	Scopes    []string
	ExpiresAt time.Time
}

// Mint signs an HS256 token for subject with the given scopes.
func Mint(secret, issuer, subject string, scopes []string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrNoSecret
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":   issuer,
		"sub":   subject,
		"scope": strings.Join(scopes, " "),
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Verify parses and validates raw, checking signature, expiry and issuer.
func Verify(secret, issuer, raw string) (Claims, error) {
	if secret == "" {
		return Claims{}, ErrNoSecret
	}

	parsed, err := jwt.Parse(raw,
		func(t *jwt.Token) (any, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	sub, _ := mapClaims.GetSubject()
	exp, _ := mapClaims.GetExpirationTime()

	claims := Claims{
		Subject: sub,
		Issuer:  issuer,
	}
	if exp != nil {
		claims.ExpiresAt = exp.Time
	}
	if scope, ok := mapClaims["scope"].(string); ok {
		claims.Scopes = strings.Fields(scope)
	}

	return claims, nil
}
