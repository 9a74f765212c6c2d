package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/GEON1999/PomoFarm/internal/clock"
	"github.com/GEON1999/PomoFarm/internal/domain"
	"github.com/GEON1999/PomoFarm/internal/logger"
	"github.com/GEON1999/PomoFarm/internal/storage/backup"
)

// SnapshotLoader reads the last persisted game. Load returns nil when nothing was saved.
type SnapshotLoader interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
}

// BackupHandler exports and imports whole-game backups
type BackupHandler struct {
	game  GameService
	saved SnapshotLoader
	clock clock.Clock
}

// NewBackupHandler creates a new backup handler. saved may be nil, in which
// case only the live game can be exported.
func NewBackupHandler(game GameService, saved SnapshotLoader, clk clock.Clock) *BackupHandler {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &BackupHandler{game: game, saved: saved, clock: clk}
}

// HandleExport downloads the live game, or the last save with ?source=saved
// @Summary Export backup
// @Description Downloads the game as an indented JSON backup document. source=saved exports what is on disk instead of the live game.
// @Tags backup
// @Produce json
// @Param source query string false "live (default) or saved"
// @Success 200 {object} domain.Snapshot
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/backup [get]
// @Security ApiKeyAuth
func (h *BackupHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	var snapshot domain.Snapshot
	switch r.URL.Query().Get(QueryParamSource) {
	case "", BackupSourceLive:
		snapshot = h.game.Snapshot()
	case BackupSourceSaved:
		saved, ok := h.loadSaved(w, r)
		if !ok {
			return
		}
		snapshot = *saved
	default:
		respondError(w, http.StatusBadRequest, ErrMsgInvalidBackupSource)
		return
	}

	now := h.clock.Now()
	data, err := backup.Export(snapshot, now)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgExportFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgExportFailed)
		return
	}

	filename := fmt.Sprintf(BackupFilenameFmt, now.UTC().Format(BackupFilenameDateFmt))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.FromContext(r.Context()).Error("Failed to write backup", "error", err)
	}
}

func (h *BackupHandler) loadSaved(w http.ResponseWriter, r *http.Request) (*domain.Snapshot, bool) {
	if h.saved == nil {
		respondError(w, http.StatusNotFound, ErrMsgNoSavedGame)
		return nil, false
	}
	saved, err := h.saved.Load(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgExportFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgExportFailed)
		return nil, false
	}
	if saved == nil {
		respondError(w, http.StatusNotFound, ErrMsgNoSavedGame)
		return nil, false
	}
	return saved, true
}

// HandleImport replaces the whole game with an uploaded backup.
// A document that fails validation leaves the current game untouched.
// @Summary Import backup
// @Description Replaces the whole game with a backup document. All four aggregates must be present.
// @Tags backup
// @Accept json
// @Produce json
// @Param request body domain.Snapshot true "Backup document"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Router /api/v1/backup [post]
// @Security ApiKeyAuth
func (h *BackupHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBackupBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgBackupTooLarge)
			return
		}
		log.Warn(ErrMsgReadBackupFailed, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgReadBackupFailed)
		return
	}

	snapshot, err := backup.Import(data)
	if err != nil {
		respondServiceError(w, r, "Import backup", err)
		return
	}

	h.game.Restore(r.Context(), snapshot)
	h.game.Autosave(r.Context())

	log.Info("Backup imported", "backup_date", snapshot.LastSave)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgBackupImported})
}
