package handler

import (
	"net/http"

	"github.com/GEON1999/PomoFarm/internal/domain"
)

// HandleGetState returns the whole game snapshot
// @Summary Get game state
// @Tags state
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Router /api/v1/state [get]
// @Security ApiKeyAuth
func (h *GameHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.game.Snapshot())
}

// HandleUpdateSettings merges a partial settings change
// @Summary Update settings
// @Tags state
// @Accept json
// @Produce json
// @Param request body domain.SettingsUpdate true "Partial settings"
// @Success 200 {object} domain.Settings
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/settings [patch]
// @Security ApiKeyAuth
func (h *GameHandler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req domain.SettingsUpdate
	if err := DecodeAndValidateRequest(r, w, &req, "Update settings"); err != nil {
		return
	}
	settings := h.game.UpdateSettings(r.Context(), req)
	respondJSON(w, http.StatusOK, settings)
}

// HandleResetAll returns the game to its defaults
// @Summary Reset the game
// @Description Returns every aggregate to its defaults. Settings are kept.
// @Tags state
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/reset [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleResetAll(w http.ResponseWriter, r *http.Request) {
	h.game.ResetAll(r.Context())
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgGameReset})
}
