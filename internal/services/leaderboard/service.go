package leaderboard

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/snakesocial/snakesocial-go/internal/dependencies/clock"
	"github.com/snakesocial/snakesocial-go/internal/dependencies/random"
	"github.com/snakesocial/snakesocial-go/internal/model"
	"github.com/snakesocial/snakesocial-go/internal/storage"
)

// Config holds configuration for the leaderboard service
type Config struct {
	// Capacity is the maximum number of ranked entries kept.
	// Lowest-scoring entries are evicted first when exceeded.
	Capacity int
}

// DefaultConfig returns default leaderboard configuration
func DefaultConfig() Config {
	return Config{
		Capacity: 100,
	}
}

// Service maintains the ranked, size-bounded score collection
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	// mu serializes the read-sort-truncate-rank sequence so concurrent
	// submissions cannot produce inconsistent ranks or lost updates
	mu sync.Mutex

	capacity int
}

// New creates a new leaderboard Service
func New(storage storage.Storage, clock clock.Clock, random random.Random, cfg Config, logger *slog.Logger) *Service {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultConfig().Capacity
	}
	return &Service{
		storage:  storage,
		clock:    clock,
		random:   random,
		logger:   logger,
		capacity: cfg.Capacity,
	}
}

// SubmitScore records a score for the leaderboard. The full collection is
// re-sorted descending by score (stable, so tied scores keep submission
// order), every rank is reassigned to its 1-based position, and the list is
// truncated to capacity. The returned bool is false when the entry did not
// make the cut; that is "not ranked", not an error.
func (s *Service) SubmitScore(ctx context.Context, username string, score int, mode model.GameMode) (*model.LeaderboardEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.storage.GetLeaderboard(ctx)
	if err != nil {
		return nil, false, err
	}

	entry := &model.LeaderboardEntry{
		ID:       s.random.ID("e_"),
		Username: username,
		Score:    score,
		Mode:     mode,
		Date:     s.clock.Now(),
	}

	entries = append(entries, entry)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	for i, e := range entries {
		e.Rank = i + 1
	}

	if len(entries) > s.capacity {
		entries = entries[:s.capacity]
	}

	if err := s.storage.SaveLeaderboard(ctx, entries); err != nil {
		return nil, false, err
	}

	ranked := entry.Rank <= s.capacity

	s.logger.Info("score submitted",
		slog.String("username", username),
		slog.Int("score", score),
		slog.String("mode", string(mode)),
		slog.Bool("ranked", ranked),
	)

	return entry, ranked, nil
}

// GetLeaderboard returns the ranked entries, optionally filtered to one mode.
// Filtering does not re-rank: returned ranks are the entry's global position
// across all modes.
func (s *Service) GetLeaderboard(ctx context.Context, mode model.GameMode) ([]*model.LeaderboardEntry, error) {
	entries, err := s.storage.GetLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	if mode == "" {
		return entries, nil
	}

	filtered := make([]*model.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		if e.Mode == mode {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}
