package handler

import (
	"encoding/json"
	"net/http"

	"github.com/snakesocial/snakesocial-go/internal/api/middleware"
	"github.com/snakesocial/snakesocial-go/internal/api/request"
	"github.com/snakesocial/snakesocial-go/internal/api/response"
	"github.com/snakesocial/snakesocial-go/internal/model"
	"github.com/snakesocial/snakesocial-go/internal/services/highscore"
)

// GameHandler handles personal high-score endpoints
type GameHandler struct {
	highscoreService *highscore.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(highscoreService *highscore.Service) *GameHandler {
	return &GameHandler{
		highscoreService: highscoreService,
	}
}

// GetHighScore handles GET /api/game/highscore?mode=
func (h *GameHandler) GetHighScore(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	mode, err := model.ParseGameMode(r.URL.Query().Get("mode"))
	if err != nil {
		WriteError(w, err)
		return
	}

	score, err := h.highscoreService.Get(r.Context(), user.ID, mode)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HighScore{Score: score})
}

// SaveHighScore handles POST /api/game/highscore
func (h *GameHandler) SaveHighScore(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	var req request.HighScoreSave
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

	if err := h.highscoreService.Save(r.Context(), user.ID, mode, req.Score); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Message{Message: "Score saved"})
}
