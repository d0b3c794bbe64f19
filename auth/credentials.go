package auth

import (
	"errors"
	"time"

	"github.com/superwise-ai/TestGenie/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when the email/password pair does not match
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUnknownIdentity is returned when a token subject has no known user
	ErrUnknownIdentity = errors.New("user not found")
)

// CredentialStore verifies login credentials and resolves token subjects to
// identities. The deployment ships with a single configured user; a real
// user store can implement this interface without touching the token service
// or the middleware.
type CredentialStore interface {
	Verify(email, password string) (models.User, error)
	Lookup(email string) (models.User, error)
}

// StaticCredentialStore holds the one configured user in memory. The
// password is hashed at construction so the plaintext is not retained.
type StaticCredentialStore struct {
	user models.User
}

// NewStaticCredentialStore builds the in-memory store from the configured
// credential triple
func NewStaticCredentialStore(id, email, fullName, password string) (*StaticCredentialStore, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &StaticCredentialStore{
		user: models.User{
			ID:             id,
			Email:          email,
			FullName:       fullName,
			HashedPassword: string(hashed),
			IsActive:       true,
			CreatedAt:      time.Now(),
		},
	}, nil
}

// Verify checks an email/password pair against the stored credential
func (s *StaticCredentialStore) Verify(email, password string) (models.User, error) {
	if email != s.user.Email {
		return models.User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.user.HashedPassword), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	return s.user, nil
}

// Lookup resolves a token subject to the stored identity
func (s *StaticCredentialStore) Lookup(email string) (models.User, error) {
	if email != s.user.Email || !s.user.IsActive {
		return models.User{}, ErrUnknownIdentity
	}
	return s.user, nil
}
