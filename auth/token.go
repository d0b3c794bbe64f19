package auth

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/superwise-ai/TestGenie/dto"
)

// ErrInvalidToken is returned when a bearer token is missing, malformed,
// expired, or carries a bad signature
var ErrInvalidToken = errors.New("could not validate credentials")

// TokenService issues and verifies self-contained signed identity tokens.
// Expiry is embedded in the token, so no server-side session store exists.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewTokenService creates a token service for the given symmetric secret,
// algorithm name and default token lifetime
func NewTokenService(secret, algorithm string, ttl time.Duration) (*TokenService, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm: %s", algorithm)
	}

	return &TokenService{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed token for the given subject using the default TTL
func (s *TokenService) Issue(subject string) (string, time.Time, error) {
	return s.IssueWithTTL(subject, s.ttl)
}

// IssueWithTTL creates a signed token for the given subject expiring at now+ttl
func (s *TokenService) IssueWithTTL(subject string, ttl time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(ttl)

	claims := dto.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// Verify decodes and validates a token. It returns nil on any failure and
// never panics past its boundary; the log distinguishes structurally
// invalid or expired tokens from unexpected internal states.
func (s *TokenService) Verify(tokenString string) *dto.TokenClaims {
	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != s.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		log.Printf("Token verification failed: %v", err)
		return nil
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok || !token.Valid {
		log.Printf("Unexpected token state: claims type %T, valid=%v", token.Claims, token.Valid)
		return nil
	}

	return claims
}
