// Package backup converts snapshots to and from a single human-readable document.
package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/GEON1999/PomoFarm/internal/domain"
	"github.com/GEON1999/PomoFarm/internal/validation"
)

// Document is the on-disk backup layout
type Document struct {
	BackupDate time.Time         `json:"_backupDate"`
	User       domain.UserState  `json:"user"`
	Farm       domain.FarmState  `json:"farm"`
	Timer      domain.TimerState `json:"timer"`
	Shop       domain.ShopState  `json:"shop"`
}

var schemaValidator = validation.NewSchemaValidator()

// Export renders the snapshot as indented JSON stamped with now
func Export(snapshot domain.Snapshot, now time.Time) ([]byte, error) {
	doc := Document{
		BackupDate: now.UTC(),
		User:       snapshot.User,
		Farm:       snapshot.Farm,
		Timer:      snapshot.Timer,
		Shop:       snapshot.Shop,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	return data, nil
}

// Import validates a backup document and returns the snapshot it holds.
// The document is rejected as a whole if any aggregate is missing or malformed.
func Import(data []byte) (*domain.Snapshot, error) {
	if err := schemaValidator.ValidateBytes(data, validation.BackupSchema); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidBackup, err)
	}

	defaults := domain.DefaultSnapshot()
	doc := Document{
		User:  defaults.User,
		Farm:  defaults.Farm,
		Timer: defaults.Timer,
		Shop:  defaults.Shop,
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidBackup, err)
	}

	snapshot := domain.Snapshot{
		User:     doc.User,
		Farm:     doc.Farm,
		Timer:    doc.Timer,
		Shop:     doc.Shop,
		LastSave: doc.BackupDate,
	}
	snapshot.Normalize()
	return &snapshot, nil
}
