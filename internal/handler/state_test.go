package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GEON1999/PomoFarm/internal/domain"
	"github.com/GEON1999/PomoFarm/internal/handler"
)

func TestGameHandler_GetState(t *testing.T) {
	snap := domain.DefaultSnapshot()
	svc := new(MockGameService)
	svc.On("Snapshot").Return(snap)

	h := handler.NewGameHandler(svc, staticCatalog{})
	w := httptest.NewRecorder()
	h.HandleGetState(w, newRequest(http.MethodGet, "/api/v1/state", ""))

	require.Equal(t, http.StatusOK, w.Code)
	var got domain.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, snap.User.Ledger.Gold, got.User.Ledger.Gold)
	assert.Len(t, got.Farm.Plots, len(snap.Farm.Plots))
}

func TestGameHandler_UpdateSettings(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		svc := new(MockGameService)
		svc.On("UpdateSettings", mock.Anything, mock.MatchedBy(func(u domain.SettingsUpdate) bool {
			return u.AutoStartBreaks != nil && *u.AutoStartBreaks && u.Theme == nil
		})).Return(domain.Settings{AutoStartBreaks: true})

		h := handler.NewGameHandler(svc, staticCatalog{})
		w := httptest.NewRecorder()
		h.HandleUpdateSettings(w, newRequest(http.MethodPatch, "/api/v1/settings", `{"autoStartBreaks":true}`))

		require.Equal(t, http.StatusOK, w.Code)
		var got domain.Settings
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.True(t, got.AutoStartBreaks)
		svc.AssertExpectations(t)
	})

	t.Run("volume out of range", func(t *testing.T) {
		svc := new(MockGameService)
		h := handler.NewGameHandler(svc, staticCatalog{})
		w := httptest.NewRecorder()
		h.HandleUpdateSettings(w, newRequest(http.MethodPatch, "/api/v1/settings", `{"soundVolume":1.5}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "UpdateSettings", mock.Anything, mock.Anything)
	})
}

func TestGameHandler_ResetAll(t *testing.T) {
	svc := new(MockGameService)
	svc.On("ResetAll", mock.Anything).Return()

	h := handler.NewGameHandler(svc, staticCatalog{})
	w := httptest.NewRecorder()
	h.HandleResetAll(w, newRequest(http.MethodPost, "/api/v1/reset", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), handler.MsgGameReset)
	svc.AssertExpectations(t)
}
