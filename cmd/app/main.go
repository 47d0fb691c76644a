package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/akyairhashvil/pomo/internal/clock"
	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/database"
	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/alecthomas/kong"
)

type cli struct {
	Config    string           `help:"Path to config.yaml." type:"path"`
	DB        string           `name:"db" help:"Path to the history database." type:"path" env:"${db_env}"`
	LogLevel  string           `name:"log-level" help:"Log level (debug, info, warn, error)."`
	NoHistory bool             `name:"no-history" help:"Do not record completed phases or remember the theme."`
	Version   kong.VersionFlag `help:"Print version and exit."`

	Run        runCmd        `cmd:"" default:"1" help:"Run the timer (default)."`
	History    historyCmd    `cmd:"" help:"List completed phases."`
	Report     reportCmd     `cmd:"" help:"Write a PDF report of completed phases."`
	InitConfig initConfigCmd `cmd:"" name:"init-config" help:"Write a config file with default settings."`
}

// appContext is bound into every command's Run method.
type appContext struct {
	ctx     context.Context
	cfg     config.File
	cfgPath string
	clock   clock.Clock
	store   *database.Database
	stdin   io.Reader
	stdout  io.Writer
	logFile io.Closer
}

func (a *appContext) Close() {
	if a.store != nil {
		util.LogError("close database", a.store.Close())
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

func main() {
	var c cli
	kctx := kong.Parse(&c, cliOptions()...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := setup(ctx, &c, kctx.Command())
	kctx.FatalIfErrorf(err)

	util.Logger.Info().Str("command", kctx.Command()).Msg("start command")
	err = kctx.Run(app)
	if err != nil {
		util.LogError("command "+kctx.Command(), err)
	}
	app.Close()
	kctx.FatalIfErrorf(err)
}

func cliOptions() []kong.Option {
	return []kong.Option{
		kong.Name(config.AppName),
		kong.Description("A Pomodoro timer for the terminal."),
		kong.UsageOnError(),
		kong.Vars{
			"version":       versionLabel(),
			"history_limit": fmt.Sprint(config.DefaultHistoryLimit),
			"db_env":        config.DBPathEnv,
		},
	}
}

func setup(ctx context.Context, c *cli, command string) (*appContext, error) {
	cfgPath := c.Config
	if cfgPath == "" {
		cfgPath = filepath.Join(util.ConfigDir(config.AppName), config.ConfigFileName)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}
	if c.NoHistory {
		cfg.History = false
	}

	app := &appContext{
		ctx:     ctx,
		cfg:     cfg,
		cfgPath: cfgPath,
		clock:   clock.System,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
	}

	dataDir := util.DataDir(config.AppName)
	logFile, err := util.OpenLogFile(filepath.Join(dataDir, config.LogFileName))
	if err != nil {
		return nil, err
	}
	app.logFile = logFile
	util.SetupLogging(logFile, cfg.LogLevel)

	if !needsStore(command, cfg.History) {
		return app, nil
	}
	store, err := database.Open(ctx, resolveDBPath(c.DB, cfg.DBPath, dataDir))
	if err != nil {
		app.Close()
		return nil, err
	}
	app.store = store
	return app, nil
}

// needsStore reports whether command reads or writes the history database.
func needsStore(command string, history bool) bool {
	switch command {
	case "history", "report":
		return true
	case "init-config":
		return false
	default:
		return history
	}
}

// resolveDBPath picks the flag/env value, then the config file, then the
// data directory default.
func resolveDBPath(flagPath, cfgPath, dataDir string) string {
	if p := strings.TrimSpace(flagPath); p != "" {
		return p
	}
	if p := strings.TrimSpace(cfgPath); p != "" {
		return p
	}
	return filepath.Join(dataDir, config.DBFileName)
}
