package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/snakesocial/snakesocial-go/internal/dependencies/clock"
	"github.com/snakesocial/snakesocial-go/internal/dependencies/random"
	"github.com/snakesocial/snakesocial-go/internal/services/auth"
	"github.com/snakesocial/snakesocial-go/internal/services/highscore"
	"github.com/snakesocial/snakesocial-go/internal/services/leaderboard"
	"github.com/snakesocial/snakesocial-go/internal/services/spectate"
	"github.com/snakesocial/snakesocial-go/internal/storage"
	"github.com/snakesocial/snakesocial-go/internal/storage/memory"
	redisstorage "github.com/snakesocial/snakesocial-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components.
// The store is constructed once here and handed to each service by
// reference; nothing reaches for process-global state.
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AuthService        *auth.Service
	LeaderboardService *leaderboard.Service
	HighscoreService   *highscore.Service
	SpectateService    *spectate.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// LeaderboardConfig holds leaderboard settings (optional)
	// If zero value, defaults to leaderboard.DefaultConfig()
	LeaderboardConfig leaderboard.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	lbCfg := cfg.LeaderboardConfig
	if lbCfg.Capacity == 0 {
		lbCfg = leaderboard.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, lbCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, lbCfg leaderboard.Config, logger *slog.Logger) *App {
	authService := auth.New(store, clk, rnd, logger)
	leaderboardService := leaderboard.New(store, clk, rnd, lbCfg, logger)
	highscoreService := highscore.New(store, logger)
	spectateService := spectate.New(store, logger)

	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		AuthService:        authService,
		LeaderboardService: leaderboardService,
		HighscoreService:   highscoreService,
		SpectateService:    spectateService,
	}
}
