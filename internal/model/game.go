package model

import "time"

// GameMode selects the rule variant a score was achieved under
type GameMode string

const (
	// ModeWalls ends the game on wall collision
	ModeWalls GameMode = "walls"
	// ModePassThrough wraps the snake around the board edges
	ModePassThrough GameMode = "pass-through"
)

// ParseGameMode validates a wire-format mode string
func ParseGameMode(s string) (GameMode, error) {
	switch GameMode(s) {
	case ModeWalls:
		return ModeWalls, nil
	case ModePassThrough:
		return ModePassThrough, nil
	default:
		return "", ErrInvalidMode
	}
}

// Direction is the snake's current heading
type Direction string

const (
	DirectionUp    Direction = "UP"
	DirectionDown  Direction = "DOWN"
	DirectionLeft  Direction = "LEFT"
	DirectionRight Direction = "RIGHT"
)

// Position is an integer board coordinate
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ActivePlayer is a live snapshot of one in-progress game, used for
// read-only spectating. The snapshot is written by an external game-loop
// feed; the store only guarantees consistent read-back of the last write.
type ActivePlayer struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Score     int        `json:"score"`
	Mode      GameMode   `json:"mode"`
	Snake     []Position `json:"snake"` // body segments, head first
	Food      Position   `json:"food"`
	Direction Direction  `json:"direction"`
	StartedAt time.Time  `json:"startedAt"`
}

// HighScore is a user's best score in one game mode.
// The stored value only ever increases.
type HighScore struct {
	UserID UserID   `json:"user_id"`
	Mode   GameMode `json:"mode"`
	Score  int      `json:"score"`
}
