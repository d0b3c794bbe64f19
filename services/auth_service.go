package services

import (
	"log"

	"github.com/superwise-ai/TestGenie/auth"
	"github.com/superwise-ai/TestGenie/dto"
	"github.com/superwise-ai/TestGenie/models"
)

// AuthService authenticates logins and resolves bearer tokens to identities
type AuthService struct {
	credentials auth.CredentialStore
	tokens      *auth.TokenService
}

// NewAuthService creates an auth service over the given credential store and
// token service
func NewAuthService(credentials auth.CredentialStore, tokens *auth.TokenService) *AuthService {
	return &AuthService{
		credentials: credentials,
		tokens:      tokens,
	}
}

// Login verifies the credential pair and issues an access token whose
// subject is the user's email
func (s *AuthService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.credentials.Verify(req.Email, req.Password)
	if err != nil {
		log.Printf("Failed login attempt for email: %s", req.Email)
		return nil, err
	}

	token, _, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, err
	}

	log.Printf("Login successful for user: %s", user.Email)
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}, nil
}

// Authenticate resolves a bearer token to a known identity. Missing,
// malformed, expired or tampered tokens come back as ErrInvalidToken; a
// valid token whose subject is not a known user comes back as
// ErrUnknownIdentity.
func (s *AuthService) Authenticate(tokenString string) (models.User, error) {
	claims := s.tokens.Verify(tokenString)
	if claims == nil || claims.Subject == "" {
		return models.User{}, auth.ErrInvalidToken
	}

	user, err := s.credentials.Lookup(claims.Subject)
	if err != nil {
		log.Printf("User not found in system: %s", claims.Subject)
		return models.User{}, err
	}

	return user, nil
}
