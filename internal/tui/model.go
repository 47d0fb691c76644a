package tui

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/pomo/internal/clock"
	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the root bubbletea model. Its Update loop is the only code that
// mutates the timer machine.
type Model struct {
	ctx     context.Context
	clock   clock.Clock
	machine *timer.Machine
	ticks   *timer.TickSource
	sub     *timer.Subscription
	store   Store

	themeName string
	theme     Theme
	keys      keyMap
	help      help.Model
	bar       progress.Model

	width    int
	height   int
	status   string
	statusOK bool
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

func WithStore(s Store) Option {
	return func(m *Model) { m.store = s }
}

func WithClock(c clock.Clock) Option {
	return func(m *Model) { m.clock = c }
}

func WithTickSource(src *timer.TickSource) Option {
	return func(m *Model) { m.ticks = src }
}

// WithTheme selects the initial theme. A theme remembered in the store takes
// precedence.
func WithTheme(name string) Option {
	return func(m *Model) { m.themeName = name }
}

// New builds a paused model at the start of a work phase.
func New(ctx context.Context, opts ...Option) Model {
	m := Model{
		ctx:       ctx,
		clock:     clock.System,
		machine:   timer.NewMachine(),
		themeName: "default",
		keys:      defaultKeyMap(),
		help:      help.New(),
		bar: progress.New(
			progress.WithSolidFill(config.WorkAccent),
			progress.WithoutPercentage(),
			progress.WithWidth(config.ProgressBarWidth),
		),
		statusOK: true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.ticks == nil {
		m.ticks = timer.NewTickSource(m.clock, config.TickInterval)
	}
	if m.store != nil {
		if saved, ok := m.store.GetSetting(ctx, config.SettingTheme); ok && saved != "" {
			m.themeName = saved
		}
	}
	m.themeName, m.theme = LookupTheme(m.themeName)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(config.AppName)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.bar.Width = util.Clamp(msg.Width-8, config.MinProgressBarWidth, config.ProgressBarWidth)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Close()
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			return m.apply(m.machine.Toggle())
		case key.Matches(msg, m.keys.Reset):
			return m.apply(m.machine.Reset())
		case key.Matches(msg, m.keys.Theme):
			m.themeName, m.theme = LookupTheme(NextTheme(m.themeName))
			m.setStatus(fmt.Sprintf("Theme: %s", m.theme.Name), true)
			return m, m.saveThemeCmd()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case TickMsg:
		if m.sub == nil || msg.Sub != m.sub.ID {
			return m, nil
		}
		return m.apply(m.machine.Tick())

	case tickClosedMsg:
		if m.sub != nil && msg.Sub == m.sub.ID {
			// Released from outside Update (context cancelled).
			m.sub = nil
		}
		return m, nil

	case phaseRecordedMsg:
		if msg.Err != nil {
			util.LogError("record phase", msg.Err)
			m.setStatus("History not saved: "+msg.Err.Error(), false)
			return m, nil
		}
		util.Logger.Info().Str("phase", string(msg.Phase)).Int64("id", msg.ID).Msg("phase recorded")
		return m, nil

	case themeSavedMsg:
		util.LogError("save theme "+msg.Name, msg.Err)
		return m, nil
	}
	return m, nil
}

// apply syncs the tick subscription with the machine after a transition and
// schedules the follow-up commands.
func (m Model) apply(tr timer.Transition) (Model, tea.Cmd) {
	if tr.Kind == timer.TransitionNone {
		return m, nil
	}
	util.Logger.Debug().
		Str("transition", tr.Kind.String()).
		Str("phase", string(m.machine.Phase())).
		Int("remaining", m.machine.Remaining()).
		Msg("timer transition")

	var cmds []tea.Cmd
	switch tr.Kind {
	case timer.TransitionCompleted:
		m.setStatus(fmt.Sprintf("%s complete. %s is ready.", tr.From.Label(), tr.To.Label()), true)
		cmds = append(cmds, m.recordCmd(tr))
	case timer.TransitionReset:
		m.setStatus("", true)
	}

	prev := m.sub
	m.sub = m.ticks.Sync(m.ctx, m.machine.Running())
	if m.sub != nil && (m.sub != prev || tr.Kind == timer.TransitionTicked) {
		cmds = append(cmds, waitForTick(m.sub))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) setStatus(text string, ok bool) {
	m.status = text
	m.statusOK = ok
}

// Close releases the tick subscription. It is safe to call more than once.
func (m Model) Close() {
	if m.ticks != nil {
		m.ticks.Stop()
	}
}

// Snapshot exposes the current timer state.
func (m Model) Snapshot() timer.Snapshot {
	return m.machine.Snapshot()
}
