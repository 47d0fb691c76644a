package config

import "time"

// Phase durations.
const (
	WorkDuration  = 25 * time.Minute
	BreakDuration = 5 * time.Minute
	TickInterval  = time.Second
)

// Database/application settings.
const (
	AppName        = "pomo"
	DBFileName     = "pomo.db"
	LogFileName    = "pomo.log"
	ConfigFileName = "config.yaml"
	DBPathEnv      = "POMO_DB"
)

// Setting keys stored in the settings table.
const (
	SettingTheme = "theme"
)

// DefaultHistoryLimit is the number of rows `history` prints without --limit.
const DefaultHistoryLimit = 20
