package modifier

import "github.com/vovakirdan/neon-rush/internal/config"

// Overdrive activates once all distinct letter collectibles are
// gathered. While logically active, obstacles are destroyed on contact
// instead of damaging; the final seconds flash a warning. Deactivation
// starts a presentation fade during which collision rules already
// treat overdrive as inactive: LogicalActive and PresentationActive
// both derive from the same countdown, so they can never desync.
type Overdrive struct {
	Remaining float64 // Logical active time left
	Fade      float64 // Presentation fade time left after logical end
	fired     bool    // Overdrive already ran this run
}

// Activate starts overdrive. It fires at most once per run.
func (o Overdrive) Activate(cfg config.OverdriveConfig) Overdrive {
	if o.fired || o.Remaining > 0 {
		return o
	}
	o.Remaining = cfg.Duration
	o.fired = true
	return o
}

// Tick counts down the active window, then the fade window.
func (o Overdrive) Tick(cfg config.OverdriveConfig, dt float64, ev Events) Overdrive {
	if ev.LettersComplete {
		o = o.Activate(cfg)
	}
	switch {
	case o.Remaining > 0:
		o.Remaining -= dt
		if o.Remaining <= 0 {
			o.Remaining = 0
			o.Fade = cfg.FadeWindow
		}
	case o.Fade > 0:
		o.Fade -= dt
		if o.Fade < 0 {
			o.Fade = 0
		}
	}
	return o
}

// Active reports logical activity; this is what collision rules read.
func (o Overdrive) Active() bool {
	return o.Remaining > 0
}

// PresentationActive reports whether rendering should still show the
// overdrive treatment (logical window plus fade).
func (o Overdrive) PresentationActive() bool {
	return o.Remaining > 0 || o.Fade > 0
}

// Warning reports whether the final-seconds warning flash should show.
func (o Overdrive) Warning(cfg config.OverdriveConfig) bool {
	return o.Remaining > 0 && o.Remaining <= cfg.WarningWindow
}

// OverdriveSnapshot is the render view of the overdrive state.
type OverdriveSnapshot struct {
	LogicalActive      bool
	PresentationActive bool
	Warning            bool
	Remaining          float64
}
