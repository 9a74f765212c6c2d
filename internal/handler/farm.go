package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GEON1999/PomoFarm/internal/logger"
)

// URL parameters
const (
	URLParamPlotID   = "plotID"
	URLParamAnimalID = "animalID"
)

// PlantRequest puts a seed from the inventory into a plot
type PlantRequest struct {
	SeedID string `json:"seedId" validate:"required,catalogid"`
}

// HandlePlant plants a seed into the plot named in the URL
// @Summary Plant a seed
// @Tags farm
// @Accept json
// @Produce json
// @Param plotID path string true "Plot id"
// @Param request body PlantRequest true "Seed to plant"
// @Success 200 {object} ActionResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/farm/plots/{plotID}/plant [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandlePlant(w http.ResponseWriter, r *http.Request) {
	plotID, ok := idParam(w, r, URLParamPlotID)
	if !ok {
		return
	}

	var req PlantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Plant"); err != nil {
		return
	}

	applied := h.game.Plant(r.Context(), plotID, req.SeedID)
	respondJSON(w, http.StatusOK, actionResponse(applied, MsgPlantDeclined))
}

// HandleHarvest collects a fully grown crop
// @Summary Harvest a crop
// @Tags farm
// @Produce json
// @Param plotID path string true "Plot id"
// @Success 200 {object} ActionResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/farm/plots/{plotID}/harvest [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleHarvest(w http.ResponseWriter, r *http.Request) {
	plotID, ok := idParam(w, r, URLParamPlotID)
	if !ok {
		return
	}
	applied := h.game.Harvest(r.Context(), plotID)
	respondJSON(w, http.StatusOK, actionResponse(applied, MsgHarvestDeclined))
}

// HandleCollectProduct collects a ready animal product
// @Summary Collect an animal product
// @Tags farm
// @Produce json
// @Param animalID path string true "Animal id"
// @Success 200 {object} ActionResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/farm/animals/{animalID}/collect [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleCollectProduct(w http.ResponseWriter, r *http.Request) {
	animalID, ok := idParam(w, r, URLParamAnimalID)
	if !ok {
		return
	}
	applied := h.game.CollectProduct(r.Context(), animalID)
	respondJSON(w, http.StatusOK, actionResponse(applied, MsgCollectDeclined))
}

// HandleFeed restarts an animal's production cycle
// @Summary Feed an animal
// @Description No-op while a product is waiting to be collected
// @Tags farm
// @Produce json
// @Param animalID path string true "Animal id"
// @Success 200 {object} ActionResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/farm/animals/{animalID}/feed [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	animalID, ok := idParam(w, r, URLParamAnimalID)
	if !ok {
		return
	}
	applied := h.game.Feed(r.Context(), animalID)
	respondJSON(w, http.StatusOK, actionResponse(applied, MsgFeedDeclined))
}

// HandleUpdateFarm recomputes growth and production now and returns the farm
// @Summary Recompute farm state
// @Tags farm
// @Produce json
// @Success 200 {object} domain.FarmState
// @Router /api/v1/farm/update [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleUpdateFarm(w http.ResponseWriter, r *http.Request) {
	h.game.UpdateFarmState(r.Context())
	respondJSON(w, http.StatusOK, h.game.Snapshot().Farm)
}

// idParam reads a path id and rejects malformed values.
// If ok is false, the response has already been written.
func idParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id := chi.URLParam(r, name)
	if id == "" || len(id) > 64 || !catalogIDPattern.MatchString(id) {
		logger.FromContext(r.Context()).Warn("Invalid path id", "param", name, "value", id)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
		return "", false
	}
	return id, true
}
