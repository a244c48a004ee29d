package modifier

import "github.com/vovakirdan/neon-rush/internal/config"

// PhaseDash charges an energy meter passively. At full charge a
// one-shot activation grants a fixed window of quadrupled scoring and
// pass-through immunity; while active the meter shows remaining
// percent instead of charge. Quantum lock suppresses usability without
// destroying the meter.
type PhaseDash struct {
	Energy     float64 // 0..100 charge percent while inactive
	Remaining  float64 // Seconds of the active window left
	Level      int     // Upgrade level extending the window
	Suppressed bool    // Set while quantum lock's hazard phase runs
}

// NewPhaseDash returns the state at run start.
func NewPhaseDash(upgradeLevel int) PhaseDash {
	return PhaseDash{Level: upgradeLevel}
}

// Duration returns the active window length for the upgrade level.
func (d PhaseDash) Duration(cfg config.DashConfig) float64 {
	return cfg.Duration + cfg.DurationPerLevel*float64(d.Level)
}

// Activate fires the dash if the meter is full, not already active,
// and not suppressed. The bool reports whether it took effect.
func (d PhaseDash) Activate(cfg config.DashConfig) (PhaseDash, bool) {
	if d.Active() || d.Suppressed || d.Energy < 100 {
		return d, false
	}
	d.Energy = 0
	d.Remaining = d.Duration(cfg)
	return d, true
}

// Tick charges the meter, or counts the active window down. While
// suppressed the meter freezes entirely so nothing is lost or gained.
func (d PhaseDash) Tick(cfg config.DashConfig, dt float64, ev Events) PhaseDash {
	if d.Suppressed {
		return d
	}
	if d.Remaining > 0 {
		d.Remaining -= dt
		if d.Remaining < 0 {
			d.Remaining = 0
		}
		return d
	}
	d.Energy += cfg.ChargeRate * dt
	if d.Energy > 100 {
		d.Energy = 100
	}
	return d
}

// Active reports whether the dash window is running.
func (d PhaseDash) Active() bool {
	return d.Remaining > 0
}

// RemainingPercent returns the active window as 0..100.
func (d PhaseDash) RemainingPercent(cfg config.DashConfig) float64 {
	dur := d.Duration(cfg)
	if dur <= 0 || d.Remaining <= 0 {
		return 0
	}
	return d.Remaining / dur * 100
}

// DashSnapshot is the render view of the phase-dash state.
type DashSnapshot struct {
	Energy     float64
	Active     bool
	Remaining  float64 // Remaining percent while active
	Suppressed bool
}
