package domain

import "time"

// Maximum lengths of the username and email columns.
const (
	MaxUsernameLen = 80
	MaxEmailLen    = 80
)

// User models an account of the service.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	IsActive     bool      `json:"is_active"`
}

// NewUser builds an active user whose creation time is fixed to now.
// The id is assigned by the store on insert.
func NewUser(username, email, passwordHash string, now time.Time) *User {
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now.UTC(),
		IsActive:     true,
	}
}
