package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akyairhashvil/pomo/internal/clock"
	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/akyairhashvil/pomo/internal/tui"
	"github.com/akyairhashvil/pomo/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type runCmd struct {
	Headless bool `help:"Print one line per update instead of the full-screen UI."`
	Start    bool `help:"Start counting immediately (headless mode)."`
}

func (c *runCmd) Run(app *appContext) error {
	if c.Headless || !term.IsTerminal(int(os.Stdout.Fd())) {
		return runHeadless(app, c.Start)
	}
	return runTUI(app)
}

func runTUI(app *appContext) error {
	opts := []tui.Option{tui.WithTheme(app.cfg.Theme)}
	if app.clock != nil {
		opts = append(opts, tui.WithClock(app.clock))
	}
	if app.cfg.History && app.store != nil {
		opts = append(opts, tui.WithStore(app.store))
	}
	model := tui.New(app.ctx, opts...)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(app.ctx))
	final, err := p.Run()
	if fm, ok := final.(tui.Model); ok {
		fm.Close()
	}
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && app.ctx.Err() != nil {
		return nil
	}
	return err
}

func runHeadless(app *appContext, start bool) error {
	ctx, cancel := context.WithCancel(app.ctx)
	defer cancel()

	clk := app.clock
	if clk == nil {
		clk = clock.System
	}
	opts := []timer.SessionOption{timer.WithClock(clk)}
	if app.cfg.History && app.store != nil {
		store := app.store
		opts = append(opts, timer.WithCompletionHook(func(c timer.Completion) {
			_, err := store.RecordPhase(ctx, models.PhaseRecord{
				Phase:       c.From,
				Seconds:     c.Seconds,
				CompletedAt: c.At,
			})
			util.LogError("record phase", err)
		}))
	}
	session := timer.NewSession(timer.NewTickSource(clk, config.TickInterval), opts...)

	errc := make(chan error, 1)
	go func() { errc <- session.Run(ctx) }()
	go readIntents(ctx, cancel, app.stdin, session, start)

	for snap := range session.Updates() {
		fmt.Fprintln(app.stdout, formatLine(snap))
	}
	if err := <-errc; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// readIntents forwards stdin commands. EOF leaves the session running until
// the context ends.
func readIntents(ctx context.Context, cancel context.CancelFunc, r io.Reader, s *timer.Session, start bool) {
	if start {
		if err := s.Send(ctx, timer.IntentToggle); err != nil {
			return
		}
	}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		in, quit, ok := parseIntent(sc.Text())
		if quit {
			cancel()
			return
		}
		if !ok {
			util.Logger.Debug().Str("input", sc.Text()).Msg("ignored headless input")
			continue
		}
		if err := s.Send(ctx, in); err != nil {
			return
		}
	}
}

func parseIntent(line string) (in timer.Intent, quit bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "t", "toggle", "s", "start", "p", "pause":
		return timer.IntentToggle, false, true
	case "r", "reset":
		return timer.IntentReset, false, true
	case "q", "quit", "exit":
		return 0, true, false
	default:
		return 0, false, false
	}
}

func formatLine(s timer.Snapshot) string {
	state := "paused"
	if s.Running {
		state = "running"
	}
	return fmt.Sprintf("[%s] %s %s", s.Phase.Label(), s.Clock, state)
}
