package users

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// UserService provides authentication and management of local application
// users.
type UserService struct {
	repo          UserRepository
	adminUsername string
	adminPassword string
}

// Option is a function that configures a UserService
type Option func(*UserService)

// WithAdminCredentials configures the built-in admin account. The admin is
// defined by configuration rather than stored in the repository.
func WithAdminCredentials(username, password string) Option {
	return func(s *UserService) {
		s.adminUsername = username
		s.adminPassword = password
	}
}

// NewUserService creates a new user service
func NewUserService(repo UserRepository, opts ...Option) *UserService {
	service := &UserService{
		repo: repo,
	}

	for _, opt := range opts {
		opt(service)
	}

	return service
}

// Authenticate verifies a username/password pair and returns the
// authenticated username, or ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (string, error) {
	// Configured admin short-circuits the repository.
	if s.adminUsername != "" && username == s.adminUsername {
		if password == s.adminPassword {
			return s.adminUsername, nil
		}
		return "", ErrInvalidCredentials
	}

	user, err := s.repo.GetUserByUsername(ctx, username)
	if errors.Is(err, ErrUserNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return user.Username, nil
}

// CreateUser creates a new user with a bcrypt-hashed password.
func (s *UserService) CreateUser(ctx context.Context, username, password string) (User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, CreateUserParams{
		Username:     username,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		return User{}, err
	}
	return user, nil
}

// IsAdmin reports whether the given username is the configured admin.
func (s *UserService) IsAdmin(username string) bool {
	return s.adminUsername != "" && username == s.adminUsername
}
