package config

// Layout constants.
const (
	// ClockBoxWidth is the inner width of the bordered MM:SS box.
	ClockBoxWidth = 16

	// ProgressBarWidth is the preferred width of the progress bar.
	ProgressBarWidth = 40

	// MinProgressBarWidth is used on narrow terminals.
	MinProgressBarWidth = 10

	// ButtonWidth is the width of the Start/Pause and Reset buttons.
	ButtonWidth = 12

	// BackgroundAlpha is the opacity of the progress gradient over the
	// theme surface.
	BackgroundAlpha = 0.2
)

// Accent colors per phase.
const (
	WorkAccent  = "#ff6b6b"
	BreakAccent = "#51cf66"
	ResetAccent = "#687076"
)
