package domain

import (
	"errors"
	"time"
)

// Account is the authentication identity: a unique username plus a one-way
// password hash. The delivery profile shares the account's identifier.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUsernameTaken = errors.New("username already taken")
var ErrWeakPassword = errors.New("password does not meet policy")
var ErrAccountNotFound = errors.New("account not found")
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrCorruptHash signals that a stored password hash cannot be parsed.
// This is a storage fault, not a credential mismatch.
var ErrCorruptHash = errors.New("stored password hash is malformed")
