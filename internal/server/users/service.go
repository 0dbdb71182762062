package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/pixgate/internal/common"
	"github.com/dmitrijs2005/pixgate/internal/server/auth"
)

// Service provides the authentication operations of the user directory:
// - Register: hash the password and create a user
// - Login: verify credentials and mint an identity token
// - Authenticate: turn a presented token back into a user record
type Service struct {
	repo  Repository
	codec auth.TokenCodec
}

func NewService(repo Repository, codec auth.TokenCodec) *Service {
	return &Service{repo: repo, codec: codec}
}

// Register creates a new user with the given email and plaintext password.
// The duplicate check is an explicit lookup so the caller-facing error does
// not depend on driver-specific constraint reporting. Returns
// common.ErrorAlreadyExists when the email is taken.
func (s *Service) Register(ctx context.Context, email string, password string) (*User, error) {

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the email/password pair and, on success, mints an identity
// token for the email. A missing user and a wrong password both return
// common.ErrorUnauthorized so the two cases cannot be told apart.
func (s *Service) Login(ctx context.Context, email string, password string) (string, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	token, err := s.codec.Mint(user.Email)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// Authenticate resolves a presented token to the user it claims and looks the
// user up in the directory. Every failure collapses to
// common.ErrorUnauthorized; which stage rejected is internal only.
func (s *Service) Authenticate(ctx context.Context, token string) (*User, error) {

	email, err := s.codec.Resolve(token)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	return user, nil
}
