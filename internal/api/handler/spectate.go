package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/snakesocial/snakesocial-go/internal/api/response"
	"github.com/snakesocial/snakesocial-go/internal/services/spectate"
)

// SpectateHandler handles read-only spectating endpoints
type SpectateHandler struct {
	spectateService *spectate.Service
}

// NewSpectateHandler creates a new spectate handler
func NewSpectateHandler(spectateService *spectate.Service) *SpectateHandler {
	return &SpectateHandler{
		spectateService: spectateService,
	}
}

// ListActive handles GET /api/spectate/active
func (h *SpectateHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	players, err := h.spectateService.ListActivePlayers(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ActivePlayersFromModel(players))
}

// GetPlayer handles GET /api/spectate/player/{player_id}
func (h *SpectateHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["player_id"]

	player, err := h.spectateService.GetActivePlayer(r.Context(), playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ActivePlayerFromModel(player))
}
