package timer

import (
	"fmt"
	"math"

	"github.com/akyairhashvil/pomo/internal/models"
)

// RGB is an 8-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex renders the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Blend paints c over base at the given opacity.
func (c RGB) Blend(base RGB, alpha float64) RGB {
	mix := func(top, bottom uint8) uint8 {
		return uint8(math.Round(alpha*float64(top) + (1-alpha)*float64(bottom)))
	}
	return RGB{R: mix(c.R, base.R), G: mix(c.G, base.G), B: mix(c.B, base.B)}
}

// Progress is the interpolation fraction for the background gradient. It
// runs 1 -> 0 across a work phase and 0 -> 1 across a break.
func Progress(p models.Phase, remaining int) float64 {
	if p == models.PhaseBreak {
		return 1 - float64(remaining)/float64(BreakSeconds)
	}
	return float64(remaining) / float64(WorkSeconds)
}

// Gradient maps (phase, remaining) onto the red/green ramp. The channel
// assignment is mirrored per phase, so both phases start red and end green.
func Gradient(p models.Phase, remaining int) RGB {
	progress := Progress(p, remaining)
	isWork := p != models.PhaseBreak
	red := progress
	green := 1 - progress
	if !isWork {
		red, green = 1-progress, progress
	}
	return RGB{R: channel(red), G: channel(green)}
}

func channel(f float64) uint8 {
	return uint8(math.Round(255 * f))
}
