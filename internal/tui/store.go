package tui

import (
	"context"

	"github.com/akyairhashvil/pomo/internal/models"
)

// Store defines the persistence methods the TUI requires. A nil Store
// disables history and theme memory.
//
//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=tui
type Store interface {
	RecordPhase(ctx context.Context, rec models.PhaseRecord) (int64, error)
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}
