package model

import "time"

// Session maps an opaque bearer token to a user. A user may hold any number
// of concurrent sessions; sessions live until explicitly revoked.
type Session struct {
	Token     string    `json:"token"`
	UserID    UserID    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
