// Package auth verifies the bearer tokens that give a connection its
// identity. Token issuance belongs to the account service; GenerateToken
// exists for tests and local tooling.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingToken is returned when a request carries no bearer token.
	ErrMissingToken = errors.New("missing token")
	// ErrInvalidToken is returned for tokens that fail verification.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims represents the JWT claims of a chat identity. The subject is the
// stable identity used as a room key.
type Claims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// JWTConfig holds JWT configuration.
type JWTConfig struct {
	Secret   []byte
	Issuer   string
	Audience string
	TTL      time.Duration
}

// Identity is the verified identity of a connection.
type Identity struct {
	Subject string
	Name    string
}

// GenerateToken creates a signed token for subject.
func GenerateToken(cfg *JWTConfig, subject, name string) (string, error) {
	now := time.Now()
	claims := Claims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    cfg.Issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	if cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{cfg.Audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(cfg.Secret)
}

// ValidateToken parses and validates a JWT token.
func ValidateToken(cfg *JWTConfig, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return cfg.Secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: bad claims", ErrInvalidToken)
	}

	// Validate issuer and audience if configured
	if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
		return nil, fmt.Errorf("%w: issuer", ErrInvalidToken)
	}
	if cfg.Audience != "" && !slices.Contains(claims.Audience, cfg.Audience) {
		return nil, fmt.Errorf("%w: audience", ErrInvalidToken)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}

	return claims, nil
}

// Verifier resolves the identity behind a request.
type Verifier struct {
	cfg      *JWTConfig
	required bool
}

// NewVerifier builds a verifier. A nil or secret-less config disables
// verification; required rejects requests without a valid token.
func NewVerifier(cfg *JWTConfig, required bool) *Verifier {
	return &Verifier{cfg: cfg, required: required}
}

// Identify returns the identity carried by the request. Without a token,
// or with verification disabled, it returns an empty identity unless a
// token is required.
func (v *Verifier) Identify(r *http.Request) (Identity, error) {
	token := TokenFromRequest(r)
	if token == "" {
		if v.required {
			return Identity{}, ErrMissingToken
		}
		return Identity{}, nil
	}
	if v.cfg == nil || len(v.cfg.Secret) == 0 {
		if v.required {
			return Identity{}, fmt.Errorf("%w: no secret configured", ErrInvalidToken)
		}
		return Identity{}, nil
	}

	claims, err := ValidateToken(v.cfg, token)
	if err != nil {
		return Identity{}, err
	}
	return Identity{Subject: claims.Subject, Name: claims.Name}, nil
}

// TokenFromRequest extracts a bearer token from the Authorization header or
// the "token" query parameter.
func TokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return r.URL.Query().Get("token")
}
