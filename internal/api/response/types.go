package response

import (
	"time"

	"github.com/snakesocial/snakesocial-go/internal/model"
	"github.com/snakesocial/snakesocial-go/internal/services/auth"
)

// User represents a user in API responses. Field names are part of the
// client contract and must not change.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:        string(u.ID),
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// AuthResponse is the response for login and signup
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		User:  UserFromModel(&s.User),
		Token: s.Token,
	}
}

// LeaderboardEntry represents a ranked score in API responses.
// Date is serialized as a calendar date (YYYY-MM-DD).
type LeaderboardEntry struct {
	ID       string `json:"id"`
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Score    int    `json:"score"`
	Mode     string `json:"mode"`
	Date     string `json:"date"`
}

// LeaderboardEntryFromModel converts a model.LeaderboardEntry
func LeaderboardEntryFromModel(e *model.LeaderboardEntry) LeaderboardEntry {
	return LeaderboardEntry{
		ID:       e.ID,
		Rank:     e.Rank,
		Username: e.Username,
		Score:    e.Score,
		Mode:     string(e.Mode),
		Date:     e.Date.Format(time.DateOnly),
	}
}

// LeaderboardFromModel converts a slice of entries
func LeaderboardFromModel(entries []*model.LeaderboardEntry) []LeaderboardEntry {
	result := make([]LeaderboardEntry, len(entries))
	for i, e := range entries {
		result[i] = LeaderboardEntryFromModel(e)
	}
	return result
}

// Position is an integer board coordinate
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ActivePlayer represents an in-progress game in API responses
type ActivePlayer struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Score     int        `json:"score"`
	Mode      string     `json:"mode"`
	Snake     []Position `json:"snake"`
	Food      Position   `json:"food"`
	Direction string     `json:"direction"`
	StartedAt time.Time  `json:"startedAt"`
}

// ActivePlayerFromModel converts a model.ActivePlayer
func ActivePlayerFromModel(p *model.ActivePlayer) ActivePlayer {
	snake := make([]Position, len(p.Snake))
	for i, pos := range p.Snake {
		snake[i] = Position{X: pos.X, Y: pos.Y}
	}
	return ActivePlayer{
		ID:        p.ID,
		Username:  p.Username,
		Score:     p.Score,
		Mode:      string(p.Mode),
		Snake:     snake,
		Food:      Position{X: p.Food.X, Y: p.Food.Y},
		Direction: string(p.Direction),
		StartedAt: p.StartedAt,
	}
}

// ActivePlayersFromModel converts a slice of active players
func ActivePlayersFromModel(players []*model.ActivePlayer) []ActivePlayer {
	result := make([]ActivePlayer, len(players))
	for i, p := range players {
		result[i] = ActivePlayerFromModel(p)
	}
	return result
}

// HighScore is the response for high-score reads
type HighScore struct {
	Score int `json:"score"`
}

// Message is a simple acknowledgement response
type Message struct {
	Message string `json:"message"`
}
