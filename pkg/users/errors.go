package users

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned when authentication fails for any
	// reason; it deliberately does not reveal whether the username exists.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ErrUsernameAlreadyExists is returned when attempting to create a user
// with a username that already exists
type ErrUsernameAlreadyExists struct {
	Username string
}

func (e ErrUsernameAlreadyExists) Error() string {
	return fmt.Sprintf("username already exists: %s", e.Username)
}
