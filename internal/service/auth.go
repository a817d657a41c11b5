package service

import (
	"context"
	"errors"
	"time"

	"github.com/adboard/adboard-go/internal/crypto"
	"github.com/adboard/adboard-go/internal/model"
	"github.com/adboard/adboard-go/internal/repository"
)

var (
	ErrNameRequired       = errors.New("name is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService handles registration and login.
type AuthService struct {
	users     *repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
	hashCost  int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users *repository.UserRepository, secret string, expiry time.Duration, hashCost int) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: secret,
		jwtExpiry: expiry,
		hashCost:  hashCost,
	}
}

// Register creates a new user account and returns a session token. Duplicate
// emails surface from the unique index at insert time; there is no
// read-before-write check.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	if req.Name == "" {
		return model.AuthResponse{}, ErrNameRequired
	}
	if req.Email == "" {
		return model.AuthResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.AuthResponse{}, ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(req.Password, s.hashCost)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		ID:           crypto.NewID(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Success: true,
		Token:   token,
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
	}, nil
}

// Login authenticates a user and returns a session token. An unknown email
// and a wrong password collapse into the same error so callers cannot tell
// the two apart.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
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

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Success: true,
		Token:   token,
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
	}, nil
}
