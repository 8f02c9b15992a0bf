package auth

import (
	"encoding/base64"
	"testing"
	"time"
)

func token(payload string) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256"}`))
	body := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return header + "." + body + ".sig"
}

func TestDecodeValidToken(t *testing.T) {
	decoder := NewJWTDecoder()

	claims, err := decoder.Decode(token(`{"sub":"customer-7","exp":4102444800}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "customer-7" {
		t.Fatalf("unexpected subject %s", claims.Subject)
	}
	if claims.ExpiresAt.Unix() != 4102444800 {
		t.Fatalf("unexpected expiry %v", claims.ExpiresAt)
	}
}

func TestDecodeWithoutExpiry(t *testing.T) {
	decoder := NewJWTDecoder()

	claims, err := decoder.Decode(token(`{"sub":"customer-7"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !claims.ExpiresAt.IsZero() {
		t.Fatalf("expected zero expiry, got %v", claims.ExpiresAt)
	}
	if claims.Expired(time.Now()) {
		t.Fatal("token without exp must never be expired")
	}
}

func TestDecodeRejectsMalformedTokens(t *testing.T) {
	decoder := NewJWTDecoder()

	cases := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"two segments", "a.b"},
		{"bad base64", "a.!!!.c"},
		{"bad json", token(`not-json`)},
		{"missing subject", token(`{"exp":123}`)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := decoder.Decode(tc.token); err != ErrInvalidToken {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestClaimsExpired(t *testing.T) {
	now := time.Now()

	past := Claims{Subject: "c", ExpiresAt: now.Add(-time.Minute)}
	if !past.Expired(now) {
		t.Fatal("expected past expiry to be expired")
	}

	future := Claims{Subject: "c", ExpiresAt: now.Add(time.Minute)}
	if future.Expired(now) {
		t.Fatal("expected future expiry to not be expired")
	}
}
