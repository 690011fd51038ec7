package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/snakesocial/snakesocial-go/internal/model"
	"github.com/snakesocial/snakesocial-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index updates
	pipe := s.client.Pipeline()
	pipe.Set(ctx, userKey(user.ID), data, 0)
	pipe.Set(ctx, emailIndexKey(user.Email), string(user.ID), 0)
	pipe.Set(ctx, usernameIndexKey(user.Username), string(user.ID), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.getUserByIndex(ctx, emailIndexKey(email))
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.getUserByIndex(ctx, usernameIndexKey(username))
}

func (s *Storage) getUserByIndex(ctx context.Context, indexKey string) (*model.User, error) {
	userIDStr, err := s.client.Get(ctx, indexKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return s.GetUser(ctx, model.UserID(userIDStr))
}

// Credential operations

func (s *Storage) SaveCredential(ctx context.Context, cred *model.Credential) error {
	data, err := json.Marshal(cred)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, credentialKey(cred.Email), data, 0).Err()
}

func (s *Storage) GetCredentialByEmail(ctx context.Context, email string) (*model.Credential, error) {
	data, err := s.client.Get(ctx, credentialKey(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrCredentialNotFound
		}
		return nil, err
	}

	var cred model.Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, err
	}
	return &cred, nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	// Sessions have no expiry; they live until revoked
	return s.client.Set(ctx, sessionKey(session.Token), data, 0).Err()
}

func (s *Storage) GetSession(ctx context.Context, token string) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}

// Leaderboard operations

func (s *Storage) SaveLeaderboard(ctx context.Context, entries []*model.LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, leaderboardKey(), data, 0).Err()
}

func (s *Storage) GetLeaderboard(ctx context.Context) ([]*model.LeaderboardEntry, error) {
	data, err := s.client.Get(ctx, leaderboardKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var entries []*model.LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// High-score operations

func (s *Storage) SaveHighScore(ctx context.Context, hs *model.HighScore) error {
	data, err := json.Marshal(hs)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, highScoreKey(hs.UserID, hs.Mode), data, 0).Err()
}

func (s *Storage) GetHighScore(ctx context.Context, userID model.UserID, mode model.GameMode) (*model.HighScore, error) {
	data, err := s.client.Get(ctx, highScoreKey(userID, mode)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrHighScoreNotFound
		}
		return nil, err
	}

	var hs model.HighScore
	if err := json.Unmarshal(data, &hs); err != nil {
		return nil, err
	}
	return &hs, nil
}

// Active-player operations

func (s *Storage) SaveActivePlayer(ctx context.Context, player *model.ActivePlayer) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, activePlayerKey(player.ID), data, s.cfg.ActivePlayerTTL)
	pipe.SAdd(ctx, activePlayersIndexKey(), player.ID)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetActivePlayer(ctx context.Context, id string) (*model.ActivePlayer, error) {
	data, err := s.client.Get(ctx, activePlayerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrActivePlayerNotFound
		}
		return nil, err
	}

	var player model.ActivePlayer
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) ListActivePlayers(ctx context.Context) ([]*model.ActivePlayer, error) {
	ids, err := s.client.SMembers(ctx, activePlayersIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.ActivePlayer, 0, len(ids))
	var stale []any
	for _, id := range ids {
		player, err := s.GetActivePlayer(ctx, id)
		if err != nil {
			if errors.Is(err, model.ErrActivePlayerNotFound) {
				// Snapshot expired; prune it from the index
				stale = append(stale, id)
				continue
			}
			return nil, err
		}
		players = append(players, player)
	}

	if len(stale) > 0 {
		_ = s.client.SRem(ctx, activePlayersIndexKey(), stale...).Err()
	}

	return players, nil
}

func (s *Storage) DeleteActivePlayer(ctx context.Context, id string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, activePlayerKey(id))
	pipe.SRem(ctx, activePlayersIndexKey(), id)
	_, err := pipe.Exec(ctx)
	return err
}
