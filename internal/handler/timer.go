package handler

import (
	"net/http"

	"github.com/GEON1999/PomoFarm/internal/domain"
	"github.com/GEON1999/PomoFarm/internal/logger"
	"github.com/GEON1999/PomoFarm/internal/timer"
)

// SetModeRequest force-switches the timer mode
type SetModeRequest struct {
	Mode string `json:"mode" validate:"required,timermode"`
}

// UpdateDurationsRequest changes one or more session lengths, in minutes
type UpdateDurationsRequest struct {
	FocusMin      *int `json:"focus,omitempty" validate:"omitempty,min=1,max=120"`
	ShortBreakMin *int `json:"shortBreak,omitempty" validate:"omitempty,min=1,max=120"`
	LongBreakMin  *int `json:"longBreak,omitempty" validate:"omitempty,min=1,max=120"`
}

// TimerResponse wraps the timer state after a command
type TimerResponse struct {
	Applied bool              `json:"applied"`
	Message string            `json:"message,omitempty"`
	Timer   domain.TimerState `json:"timer"`
}

// HandleStartTimer starts or resumes the countdown
// @Summary Start timer
// @Tags timer
// @Produce json
// @Success 200 {object} TimerResponse
// @Router /api/v1/timer/start [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleStartTimer(w http.ResponseWriter, r *http.Request) {
	applied := h.game.StartTimer(r.Context())
	h.respondTimer(w, applied, MsgTimerAlreadyRunning)
}

// HandlePauseTimer pauses a running countdown
// @Summary Pause timer
// @Tags timer
// @Produce json
// @Success 200 {object} TimerResponse
// @Router /api/v1/timer/pause [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandlePauseTimer(w http.ResponseWriter, r *http.Request) {
	applied := h.game.PauseTimer(r.Context())
	h.respondTimer(w, applied, MsgTimerNotRunning)
}

// HandleResetTimer stops the timer and returns to a fresh focus session
// @Summary Reset timer
// @Tags timer
// @Produce json
// @Success 200 {object} TimerResponse
// @Router /api/v1/timer/reset [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleResetTimer(w http.ResponseWriter, r *http.Request) {
	h.game.ResetTimer(r.Context())
	h.respondTimer(w, true, "")
}

// HandleSetMode force-switches the timer mode
// @Summary Set timer mode
// @Tags timer
// @Accept json
// @Produce json
// @Param request body SetModeRequest true "Target mode"
// @Success 200 {object} TimerResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/timer/mode [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleSetMode(w http.ResponseWriter, r *http.Request) {
	var req SetModeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set timer mode"); err != nil {
		return
	}

	if err := h.game.SetTimerMode(r.Context(), domain.TimerMode(req.Mode)); err != nil {
		respondServiceError(w, r, "Set timer mode", err)
		return
	}
	h.respondTimer(w, true, "")
}

// HandleUpdateDurations changes the configured session lengths. Out-of-range
// values reject the whole request.
// @Summary Update session durations
// @Tags timer
// @Accept json
// @Produce json
// @Param request body UpdateDurationsRequest true "Durations in minutes (1-120)"
// @Success 200 {object} TimerResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/timer/durations [put]
// @Security ApiKeyAuth
func (h *GameHandler) HandleUpdateDurations(w http.ResponseWriter, r *http.Request) {
	var req UpdateDurationsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update durations"); err != nil {
		return
	}
	if req.FocusMin == nil && req.ShortBreakMin == nil && req.LongBreakMin == nil {
		respondError(w, http.StatusBadRequest, ErrMsgEmptyDurationList)
		return
	}

	logger.FromContext(r.Context()).Info("Updating timer durations",
		"focus", req.FocusMin, "short_break", req.ShortBreakMin, "long_break", req.LongBreakMin)

	err := h.game.UpdateDurations(r.Context(), timer.DurationUpdate{
		FocusMin:      req.FocusMin,
		ShortBreakMin: req.ShortBreakMin,
		LongBreakMin:  req.LongBreakMin,
	})
	if err != nil {
		respondServiceError(w, r, "Update durations", err)
		return
	}
	h.respondTimer(w, true, "")
}

// HandleResetAccumulated zeroes the lifetime focus counter
// @Summary Reset accumulated focus time
// @Tags timer
// @Produce json
// @Success 200 {object} TimerResponse
// @Router /api/v1/timer/accumulated/reset [post]
// @Security ApiKeyAuth
func (h *GameHandler) HandleResetAccumulated(w http.ResponseWriter, r *http.Request) {
	h.game.ResetAccumulated(r.Context())
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgAccumulatedReset})
}

func (h *GameHandler) respondTimer(w http.ResponseWriter, applied bool, declined string) {
	resp := TimerResponse{Applied: applied, Timer: h.game.Snapshot().Timer}
	if !applied {
		resp.Message = declined
	}
	respondJSON(w, http.StatusOK, resp)
}
