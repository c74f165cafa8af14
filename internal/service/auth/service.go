// Package auth exchanges the static admin credential pair for opaque bearer
// tokens held in a TokenStore.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	authstore "github.com/atelierdahl/atelier-go/internal/auth"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	username     string
	passwordHash []byte
	tokens       authstore.TokenStore
}

func New(username, passwordHash string, tokens authstore.TokenStore) *Service {
	return &Service{
		username:     username,
		passwordHash: []byte(passwordHash),
		tokens:       tokens,
	}
}

// Login checks the credential pair and issues a bearer token.
//
// Returns:
//   - string: the opaque token on success.
//   - error: auth.ErrInvalidCredentials on a wrong username or password.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	const op = "service.auth.Login"

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1

	// bcrypt runs either way so both failure modes cost the same.
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))

	if !userOK || passErr != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err := s.tokens.Issue(ctx)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return token, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	const op = "service.auth.Logout"

	if err := s.tokens.Revoke(ctx, token); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Service) Validate(ctx context.Context, token string) (bool, error) {
	const op = "service.auth.Validate"

	ok, err := s.tokens.Validate(ctx, token)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return ok, nil
}
