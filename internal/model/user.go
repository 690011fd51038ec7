package model

import "time"

// UserID uniquely identifies a user across the system
type UserID string

// User is an account identity record. Users are immutable after creation
// and are never deleted.
type User struct {
	ID        UserID    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Credential holds a user's login secret, keyed by email.
// Stored separately from User so the hash never travels with the identity record.
type Credential struct {
	UserID       UserID `json:"user_id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"` // bcrypt hash
}
