package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")

	// Credential errors
	ErrCredentialNotFound = errors.New("credential not found")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Leaderboard / score errors
	ErrHighScoreNotFound = errors.New("high score not found")
	ErrInvalidMode       = errors.New("invalid game mode")

	// Spectate errors
	ErrActivePlayerNotFound = errors.New("active player not found")
)
