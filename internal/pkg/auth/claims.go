package auth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var ErrInvalidToken = errors.New("invalid auth token")

// Claims is the subset of the bearer token payload the storefront reads.
// The payload is decoded WITHOUT signature verification: the subject is a UI
// convenience (prefill, display, cache keys) and must never feed an
// authorization decision. All real authorization happens on the bakery
// platform, which validates the same token on every forwarded call.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Decoder extracts claims from a bearer token.
type Decoder interface {
	Decode(token string) (*Claims, error)
}

// JWTDecoder reads the payload segment of a JWT without verifying it.
type JWTDecoder struct{}

// NewJWTDecoder constructs JWTDecoder.
func NewJWTDecoder() *JWTDecoder {
	return &JWTDecoder{}
}

// Decode splits the compact JWT form and unmarshals the payload segment.
func (d *JWTDecoder) Decode(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, ErrInvalidToken
	}

	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, ErrInvalidToken
	}

	var payload struct {
		Sub string `json:"sub"`
		Exp int64  `json:"exp"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, ErrInvalidToken
	}
	if payload.Sub == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{Subject: payload.Sub}
	if payload.Exp > 0 {
		claims.ExpiresAt = time.Unix(payload.Exp, 0)
	}
	return claims, nil
}

// Expired reports whether the token carries an exp claim in the past.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}

var _ Decoder = (*JWTDecoder)(nil)
