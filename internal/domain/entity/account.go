package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is an authenticated principal: the email/password credential a profile hangs off.
type Account struct {
	ID           uuid.UUID // Principal identifier, used as the JWT subject.
	Email        string    // Login identifier, unique.
	PasswordHash string    // bcrypt hash of the password.
	CreatedAt    time.Time // Timestamp of signup.
}
