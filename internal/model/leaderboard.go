package model

import "time"

// LeaderboardEntry is one ranked score submission. Username is a snapshot
// taken at submission time, not a live reference to the User record.
type LeaderboardEntry struct {
	ID       string    `json:"id"`
	Rank     int       `json:"rank"` // 1-based, recomputed on every insert
	Username string    `json:"username"`
	Score    int       `json:"score"`
	Mode     GameMode  `json:"mode"`
	Date     time.Time `json:"date"`
}
