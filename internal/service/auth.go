package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Suriyaprakashm14/BPTracker-Backend-Project/internal/crypto"
	"github.com/Suriyaprakashm14/BPTracker-Backend-Project/internal/model"
	"github.com/Suriyaprakashm14/BPTracker-Backend-Project/internal/repository"
)

var (
	ErrCredentialsRequired = errors.New("username and password required")
	ErrUsernameTaken       = errors.New("username taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnauthenticated     = errors.New("unauthorized")
)

// AuthService handles registration, login, and bearer token resolution.
type AuthService struct {
	repo *repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Register creates a new user account. The username is trimmed of surrounding
// whitespace; the password is stored only as an argon2id hash. On any failure
// nothing is written.
func (s *AuthService) Register(ctx context.Context, req model.CredentialsRequest) error {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return ErrCredentialsRequired
	}
	if req.Password == "" {
		return ErrCredentialsRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return ErrUsernameTaken
		}
		return err
	}

	return nil
}

// Login verifies the credentials and, on success, issues a fresh session
// token, replacing whatever token the user held before. An unknown username
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req model.CredentialsRequest) (model.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token := crypto.NewSessionToken()
	if err := s.repo.UpdateToken(ctx, user.ID, token); err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Token:    token,
		Username: user.Username,
	}, nil
}

// ResolveToken resolves an Authorization header value to the user it
// authenticates. The value must be exactly "Bearer <token>" with a
// case-insensitive scheme; any other shape, and any token no store row
// carries, resolves to ErrUnauthenticated with no further distinction.
func (s *AuthService) ResolveToken(ctx context.Context, rawHeader string) (*model.User, error) {
	parts := strings.Fields(rawHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, ErrUnauthenticated
	}

	user, err := s.repo.GetByToken(ctx, parts[1])
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	return user, nil
}
