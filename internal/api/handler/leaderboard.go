package handler

import (
	"encoding/json"
	"net/http"

	"github.com/snakesocial/snakesocial-go/internal/api/middleware"
	"github.com/snakesocial/snakesocial-go/internal/api/request"
	"github.com/snakesocial/snakesocial-go/internal/api/response"
	"github.com/snakesocial/snakesocial-go/internal/model"
	"github.com/snakesocial/snakesocial-go/internal/services/leaderboard"
)

// LeaderboardHandler handles leaderboard endpoints
type LeaderboardHandler struct {
	leaderboardService *leaderboard.Service
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService *leaderboard.Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// Get handles GET /api/leaderboard?mode=
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	var mode model.GameMode
	if raw := r.URL.Query().Get("mode"); raw != "" {
		parsed, err := model.ParseGameMode(raw)
		if err != nil {
			WriteError(w, err)
			return
		}
		mode = parsed
	}

	entries, err := h.leaderboardService.GetLeaderboard(r.Context(), mode)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(entries))
}

// Submit handles POST /api/leaderboard. The response body is the ranked
// entry, or JSON null when the score did not make the top of the board.
func (h *LeaderboardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	var req request.ScoreSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := request.Validate(req); err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	mode, err := model.ParseGameMode(req.Mode)
	if err != nil {
		WriteError(w, err)
		return
	}

	entry, ranked, err := h.leaderboardService.SubmitScore(r.Context(), user.Username, req.Score, mode)
	if err != nil {
		WriteError(w, err)
		return
	}

	if !ranked {
		response.Null(w, http.StatusOK)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardEntryFromModel(entry))
}
