package tui

import (
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// TickMsg is one tick forwarded from the live subscription.
type TickMsg struct {
	Sub uint64
	At  time.Time
}

type tickClosedMsg struct {
	Sub uint64
}

type phaseRecordedMsg struct {
	Phase models.Phase
	ID    int64
	Err   error
}

type themeSavedMsg struct {
	Name string
	Err  error
}

// waitForTick blocks on the subscription channel for the next tick. Exactly
// one waiter is outstanding per live subscription.
func waitForTick(sub *timer.Subscription) tea.Cmd {
	return func() tea.Msg {
		t, ok := <-sub.C
		if !ok {
			return tickClosedMsg{Sub: sub.ID}
		}
		return TickMsg{Sub: t.Sub, At: t.At}
	}
}

func (m Model) recordCmd(tr timer.Transition) tea.Cmd {
	if m.store == nil {
		return nil
	}
	ctx, store := m.ctx, m.store
	rec := models.PhaseRecord{
		Phase:       tr.From,
		Seconds:     timer.Nominal(tr.From),
		CompletedAt: m.clock.Now(),
	}
	return func() tea.Msg {
		id, err := store.RecordPhase(ctx, rec)
		return phaseRecordedMsg{Phase: rec.Phase, ID: id, Err: err}
	}
}

func (m Model) saveThemeCmd() tea.Cmd {
	if m.store == nil {
		return nil
	}
	ctx, store, name := m.ctx, m.store, m.themeName
	return func() tea.Msg {
		return themeSavedMsg{Name: name, Err: store.SetSetting(ctx, config.SettingTheme, name)}
	}
}
