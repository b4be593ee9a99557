package users

import (
	"time"

	"github.com/google/uuid"
)

// User is a local application user, separate from the Telegram accounts
// the backend manages on their behalf.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateUserParams carries the fields needed to persist a new user.
type CreateUserParams struct {
	Username     string
	PasswordHash []byte
}
