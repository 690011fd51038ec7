package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/snakesocial/snakesocial-go/internal/api/handler"
	"github.com/snakesocial/snakesocial-go/internal/api/middleware"
	"github.com/snakesocial/snakesocial-go/internal/services/auth"
	"github.com/snakesocial/snakesocial-go/internal/services/highscore"
	"github.com/snakesocial/snakesocial-go/internal/services/leaderboard"
	"github.com/snakesocial/snakesocial-go/internal/services/spectate"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	AuthService        *auth.Service
	LeaderboardService *leaderboard.Service
	HighscoreService   *highscore.Service
	SpectateService    *spectate.Service

	// AllowedOrigins configures CORS; empty allows any origin
	AllowedOrigins []string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardService)
	gameHandler := handler.NewGameHandler(cfg.HighscoreService)
	spectateHandler := handler.NewSpectateHandler(cfg.SpectateService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	metricsMiddleware := middleware.Metrics()
	corsMiddleware := middleware.CORS(cfg.AllowedOrigins)

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(corsMiddleware)
	api.Use(loggingMiddleware)
	api.Use(metricsMiddleware)

	// Auth routes (no auth required for signup/login)
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost, http.MethodOptions)

	// Protected auth routes
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost, http.MethodOptions)
	authProtected.HandleFunc("/me", authHandler.GetMe).Methods(http.MethodGet, http.MethodOptions)

	// Leaderboard routes (reads are public, submissions require auth)
	api.HandleFunc("/leaderboard", leaderboardHandler.Get).Methods(http.MethodGet, http.MethodOptions)
	submit := api.PathPrefix("/leaderboard").Subrouter()
	submit.Use(authMiddleware)
	submit.HandleFunc("", leaderboardHandler.Submit).Methods(http.MethodPost)

	// High-score routes (all require auth)
	game := api.PathPrefix("/game").Subrouter()
	game.Use(authMiddleware)
	game.HandleFunc("/highscore", gameHandler.GetHighScore).Methods(http.MethodGet, http.MethodOptions)
	game.HandleFunc("/highscore", gameHandler.SaveHighScore).Methods(http.MethodPost, http.MethodOptions)

	// Spectate routes (public, read-only)
	api.HandleFunc("/spectate/active", spectateHandler.ListActive).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/spectate/player/{player_id}", spectateHandler.GetPlayer).Methods(http.MethodGet, http.MethodOptions)

	// Operational endpoints outside the /api prefix
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
