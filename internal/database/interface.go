package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
)

// HistoryRepository defines the completed-phase log operations.
type HistoryRepository interface {
	RecordPhase(ctx context.Context, rec models.PhaseRecord) (int64, error)
	ListPhases(ctx context.Context, limit int) ([]models.PhaseRecord, error)
	PhaseTotals(ctx context.Context, since time.Time) (models.PhaseTotals, error)
	ClearHistory(ctx context.Context) error
}

// SettingsRepository defines key/value preference operations.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
type Repository interface {
	HistoryRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
