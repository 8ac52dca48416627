package auth

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"
)

func testConfig() *JWTConfig {
	return &JWTConfig{
		Secret:   []byte("test-secret-change-me"),
		Issuer:   "test",
		Audience: "test",
		TTL:      time.Hour,
	}
}

func TestGenerateAndValidate(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateToken(cfg, "user-1", "Alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateToken(cfg, token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Subject != "user-1" || claims.Name != "Alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateRejects(t *testing.T) {
	cfg := testConfig()

	expired, _ := GenerateToken(&JWTConfig{Secret: cfg.Secret, Issuer: "test", Audience: "test", TTL: -time.Minute}, "u", "")
	wrongIssuer, _ := GenerateToken(&JWTConfig{Secret: cfg.Secret, Issuer: "other", Audience: "test", TTL: time.Hour}, "u", "")
	wrongAudience, _ := GenerateToken(&JWTConfig{Secret: cfg.Secret, Issuer: "test", Audience: "other", TTL: time.Hour}, "u", "")
	wrongSecret, _ := GenerateToken(&JWTConfig{Secret: []byte("nope"), Issuer: "test", Audience: "test", TTL: time.Hour}, "u", "")
	noSubject, _ := GenerateToken(cfg, "", "")

	cases := map[string]string{
		"garbage":        "not-a-jwt",
		"expired":        expired,
		"wrong issuer":   wrongIssuer,
		"wrong audience": wrongAudience,
		"wrong secret":   wrongSecret,
		"no subject":     noSubject,
	}
	for name, token := range cases {
		if _, err := ValidateToken(cfg, token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}

func TestVerifierIdentify(t *testing.T) {
	cfg := testConfig()
	token, err := GenerateToken(cfg, "user-7", "Bob")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	optional := NewVerifier(cfg, false)
	required := NewVerifier(cfg, true)

	anon := httptest.NewRequest("GET", "/ws", nil)
	if id, err := optional.Identify(anon); err != nil || id.Subject != "" {
		t.Fatalf("optional anonymous: id=%+v err=%v", id, err)
	}
	if _, err := required.Identify(anon); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("required anonymous: expected ErrMissingToken, got %v", err)
	}

	byHeader := httptest.NewRequest("GET", "/ws", nil)
	byHeader.Header.Set("Authorization", "Bearer "+token)
	if id, err := required.Identify(byHeader); err != nil || id.Subject != "user-7" || id.Name != "Bob" {
		t.Fatalf("header token: id=%+v err=%v", id, err)
	}

	byQuery := httptest.NewRequest("GET", "/ws?token="+token, nil)
	if id, err := optional.Identify(byQuery); err != nil || id.Subject != "user-7" {
		t.Fatalf("query token: id=%+v err=%v", id, err)
	}

	bad := httptest.NewRequest("GET", "/ws?token=bogus", nil)
	if _, err := optional.Identify(bad); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("bad token: expected ErrInvalidToken, got %v", err)
	}
}
