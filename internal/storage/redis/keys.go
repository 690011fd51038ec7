package redis

import (
	"fmt"

	"github.com/snakesocial/snakesocial-go/internal/model"
)

// Key prefix for all snake-social data
const keyPrefix = "snakesocial"

// Key generation functions for each entity type

// userKey returns the Redis key for a User
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// emailIndexKey returns the Redis key for the email -> user_id index
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, email)
}

// usernameIndexKey returns the Redis key for the username -> user_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// credentialKey returns the Redis key for a Credential
func credentialKey(email string) string {
	return fmt.Sprintf("%s:credential:%s", keyPrefix, email)
}

// sessionKey returns the Redis key for a Session
func sessionKey(token string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, token)
}

// leaderboardKey returns the Redis key for the ranked leaderboard list
func leaderboardKey() string {
	return fmt.Sprintf("%s:leaderboard", keyPrefix)
}

// highScoreKey returns the Redis key for a per-user per-mode high score
func highScoreKey(userID model.UserID, mode model.GameMode) string {
	return fmt.Sprintf("%s:highscore:%s:%s", keyPrefix, userID, mode)
}

// activePlayerKey returns the Redis key for an ActivePlayer snapshot
func activePlayerKey(id string) string {
	return fmt.Sprintf("%s:active_player:%s", keyPrefix, id)
}

// activePlayersIndexKey returns the Redis key for the SET of active player IDs
func activePlayersIndexKey() string {
	return fmt.Sprintf("%s:idx:active_players", keyPrefix)
}
