package modifier

import "github.com/vovakirdan/neon-rush/internal/config"

// LockPhase is the quantum-lock phase machine state. This is an
// explicit machine, not a simple timer: each phase has its own
// duration and exit rules.
type LockPhase int

const (
	PhaseInactive LockPhase = iota
	PhaseTracking
	PhaseLockedOn
	PhaseActiveHazard
	PhaseResolving
)

// String returns the phase name.
func (p LockPhase) String() string {
	switch p {
	case PhaseInactive:
		return "inactive"
	case PhaseTracking:
		return "tracking"
	case PhaseLockedOn:
		return "locked-on"
	case PhaseActiveHazard:
		return "active-hazard"
	case PhaseResolving:
		return "resolving"
	default:
		return "?"
	}
}

// QuantumLock cycles inactive -> tracking -> locked-on -> active-hazard
// -> resolving -> inactive. The hazard phase suppresses phase dash and
// applies the corrupted audio/visual cue; it resolves after its fixed
// duration or immediately on a successful evasion (lane swap).
type QuantumLock struct {
	Enabled   bool // Gated by chapter; disabled locks never leave inactive
	Phase     LockPhase
	Remaining float64 // Time left in the current phase
	SinceLast float64 // Seconds since the machine last went inactive
}

// NewQuantumLock returns the state at run start.
func NewQuantumLock(enabled bool) QuantumLock {
	return QuantumLock{Enabled: enabled, Phase: PhaseInactive}
}

// Tick advances the phase machine.
func (q QuantumLock) Tick(cfg config.QuantumLockConfig, dt float64, ev Events) QuantumLock {
	if !q.Enabled {
		return q
	}

	switch q.Phase {
	case PhaseInactive:
		q.SinceLast += dt
		if cfg.Interval > 0 && q.SinceLast >= cfg.Interval {
			q.Phase = PhaseTracking
			q.Remaining = cfg.TrackingDuration
		}

	case PhaseTracking:
		q.Remaining -= dt
		if q.Remaining <= 0 {
			q.Phase = PhaseLockedOn
			q.Remaining = cfg.LockOnDuration
		}

	case PhaseLockedOn:
		q.Remaining -= dt
		if q.Remaining <= 0 {
			q.Phase = PhaseActiveHazard
			q.Remaining = cfg.HazardDuration
		}

	case PhaseActiveHazard:
		q.Remaining -= dt
		if ev.LaneSwapped || q.Remaining <= 0 {
			// Evasion or timeout both resolve the hazard.
			q.Phase = PhaseResolving
			q.Remaining = cfg.ResolveDuration
		}

	case PhaseResolving:
		q.Remaining -= dt
		if q.Remaining <= 0 {
			q.Phase = PhaseInactive
			q.Remaining = 0
			q.SinceLast = 0
		}
	}
	return q
}

// Active reports whether the machine is anywhere past inactive.
func (q QuantumLock) Active() bool {
	return q.Phase != PhaseInactive
}

// Hazard reports whether the hazard phase is running; this is what
// suppresses phase dash and drives the corrupted cue.
func (q QuantumLock) Hazard() bool {
	return q.Phase == PhaseActiveHazard
}

// QuantumLockSnapshot is the render view of the lock state.
type QuantumLockSnapshot struct {
	Active    bool
	Phase     string
	Corrupted bool // Hazard phase: corrupted audio/visual cue
}
