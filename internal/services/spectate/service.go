package spectate

import (
	"context"
	"log/slog"

	"github.com/snakesocial/snakesocial-go/internal/model"
	"github.com/snakesocial/snakesocial-go/internal/storage"
)

// Service exposes read-only views of in-progress games. The write side
// (PublishSnapshot/RemovePlayer) is reserved for the game-loop feed that
// populates the registry; spectators only ever read.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new spectate Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// ListActivePlayers returns a snapshot of every in-progress game
func (s *Service) ListActivePlayers(ctx context.Context) ([]*model.ActivePlayer, error) {
	return s.storage.ListActivePlayers(ctx)
}

// GetActivePlayer returns one in-progress game by player id
func (s *Service) GetActivePlayer(ctx context.Context, id string) (*model.ActivePlayer, error) {
	return s.storage.GetActivePlayer(ctx, id)
}

// PublishSnapshot records the latest state of an in-progress game.
// Subsequent reads observe exactly this snapshot until the next publish.
func (s *Service) PublishSnapshot(ctx context.Context, player *model.ActivePlayer) error {
	return s.storage.SaveActivePlayer(ctx, player)
}

// RemovePlayer drops a finished game from the registry
func (s *Service) RemovePlayer(ctx context.Context, id string) error {
	s.logger.Debug("active player removed", slog.String("player_id", id))
	return s.storage.DeleteActivePlayer(ctx, id)
}
