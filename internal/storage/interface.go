package storage

import (
	"context"

	"github.com/snakesocial/snakesocial-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// Credential operations
	SaveCredential(ctx context.Context, cred *model.Credential) error
	GetCredentialByEmail(ctx context.Context, email string) (*model.Credential, error)

	// Session operations. DeleteSession is idempotent: deleting an unknown
	// token is a no-op, not an error.
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, token string) (*model.Session, error)
	DeleteSession(ctx context.Context, token string) error

	// Leaderboard operations. The ranked list is stored and replaced as a
	// single unit; ordering and ranks are the leaderboard service's concern.
	SaveLeaderboard(ctx context.Context, entries []*model.LeaderboardEntry) error
	GetLeaderboard(ctx context.Context) ([]*model.LeaderboardEntry, error)

	// High-score operations
	SaveHighScore(ctx context.Context, hs *model.HighScore) error
	GetHighScore(ctx context.Context, userID model.UserID, mode model.GameMode) (*model.HighScore, error)

	// Active-player operations (spectate feed)
	SaveActivePlayer(ctx context.Context, player *model.ActivePlayer) error
	GetActivePlayer(ctx context.Context, id string) (*model.ActivePlayer, error)
	ListActivePlayers(ctx context.Context) ([]*model.ActivePlayer, error)
	DeleteActivePlayer(ctx context.Context, id string) error
}
