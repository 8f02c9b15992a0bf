package test

import (
	"encoding/base64"
	"encoding/json"
	"time"
)

// BearerToken builds an unsigned JWT-shaped token whose payload carries the
// given subject and expiry. The signature segment is a placeholder; the
// service never verifies it.
func BearerToken(subject string, expiresAt time.Time) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, _ := json.Marshal(map[string]any{
		"sub": subject,
		"exp": expiresAt.Unix(),
	})
	body := base64.RawURLEncoding.EncodeToString(payload)
	return header + "." + body + ".sig"
}
