package highscore

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/snakesocial/snakesocial-go/internal/model"
	"github.com/snakesocial/snakesocial-go/internal/storage"
)

// Service tracks each user's best score per game mode
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	// mu serializes the read-then-conditionally-write sequence so two
	// concurrent saves for the same key cannot lose the higher score
	mu sync.Mutex
}

// New creates a new high-score Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Save records a score for (userID, mode) if it beats the stored best.
// An absent record counts as a baseline of zero, so unknown users are fine.
func (s *Service) Save(ctx context.Context, userID model.UserID, mode model.GameMode, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Get(ctx, userID, mode)
	if err != nil {
		return err
	}

	if score <= current {
		return nil
	}

	s.logger.Info("high score updated",
		slog.String("user_id", string(userID)),
		slog.String("mode", string(mode)),
		slog.Int("score", score),
		slog.Int("previous", current),
	)

	return s.storage.SaveHighScore(ctx, &model.HighScore{
		UserID: userID,
		Mode:   mode,
		Score:  score,
	})
}

// Get returns the stored best for (userID, mode), or 0 if none recorded
func (s *Service) Get(ctx context.Context, userID model.UserID, mode model.GameMode) (int, error) {
	hs, err := s.storage.GetHighScore(ctx, userID, mode)
	if err != nil {
		if errors.Is(err, model.ErrHighScoreNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return hs.Score, nil
}
