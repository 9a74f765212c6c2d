package backup

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GEON1999/PomoFarm/internal/domain"
)

func TestExportImport(t *testing.T) {
	now := time.Date(2026, 2, 14, 8, 30, 0, 0, time.UTC)

	snapshot := domain.DefaultSnapshot()
	snapshot.User.Ledger.Gold = 321
	snapshot.User.Ledger.Level = 4
	snapshot.Farm.Inventory.Slots = []domain.InventorySlot{{ItemID: "wheat_seed", Quantity: 3}}
	snapshot.Timer.CompletedSessions = 9
	snapshot.Shop.FeaturedItemIDs = []string{"chicken", "carrot_seed"}

	data, err := Export(snapshot, now)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"_backupDate", "user", "farm", "timer", "shop"} {
		assert.Contains(t, raw, key)
	}
	assert.JSONEq(t, `"2026-02-14T08:30:00Z"`, string(raw["_backupDate"]))

	restored, err := Import(data)
	require.NoError(t, err)
	assert.Equal(t, 321, restored.User.Ledger.Gold)
	assert.Equal(t, 4, restored.User.Ledger.Level)
	assert.Equal(t, snapshot.Farm.Inventory.Slots, restored.Farm.Inventory.Slots)
	assert.Equal(t, 9, restored.Timer.CompletedSessions)
	assert.Equal(t, []string{"chicken", "carrot_seed"}, restored.Shop.FeaturedItemIDs)
	assert.True(t, now.Equal(restored.LastSave))
}

func TestImport_Rejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"user":`},
		{"missing farm", `{"user": {}, "timer": {}, "shop": {}}`},
		{"missing every aggregate", `{"_backupDate": "2026-01-01T00:00:00Z"}`},
		{"farm is not an object", `{"user": {}, "farm": 3, "timer": {}, "shop": {}}`},
		{"bad duration", `{"user": {}, "farm": {}, "timer": {"focusDuration": 0}, "shop": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot, err := Import([]byte(tt.data))
			assert.ErrorIs(t, err, domain.ErrInvalidBackup)
			assert.Nil(t, snapshot)
		})
	}
}

func TestImport_EmptyAggregatesUseDefaults(t *testing.T) {
	snapshot, err := Import([]byte(`{"user": {}, "farm": {}, "timer": {}, "shop": {}}`))
	require.NoError(t, err)

	defaults := domain.DefaultSnapshot()
	assert.Equal(t, defaults.User.Ledger, snapshot.User.Ledger)
	assert.Equal(t, defaults.Farm.Plots, snapshot.Farm.Plots)
	assert.Equal(t, defaults.Timer.FocusDurationMin, snapshot.Timer.FocusDurationMin)
	assert.True(t, snapshot.LastSave.IsZero())
}
