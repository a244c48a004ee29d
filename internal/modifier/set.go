package modifier

import "github.com/vovakirdan/neon-rush/internal/config"

// Loadout carries the player's owned upgrades into a run.
type Loadout struct {
	MagnetOwned     bool
	MagnetLevel     int
	DashLevel       int
	ShieldCharges   int // 0 means the run starts without a shield
	QuantumEnabled  bool
	GlobalScoreMult float64 // Permanent score upgrade; 0 treated as 1
}

// Set holds one instance per modifier kind and evaluates them in the
// fixed per-tick order. At most one instance per kind ever exists;
// re-activations are silent no-ops inside the kinds themselves.
type Set struct {
	cfg config.ModifierConfig

	Rhythm    Rhythm
	NearMiss  NearMissStreak
	Resonance Resonance
	Overdrive Overdrive
	SlowMo    SlowMotion
	Shield    Shield
	Magnet    Magnet
	Dash      PhaseDash
	Lock      QuantumLock

	paused bool
}

// NewSet builds the modifier set for one run.
func NewSet(cfg config.ModifierConfig, lo Loadout) *Set {
	return &Set{
		cfg:    cfg,
		SlowMo: NewSlowMotion(cfg.SlowMotion),
		Shield: NewShield(lo.ShieldCharges),
		Magnet: Magnet{Owned: lo.MagnetOwned, Level: lo.MagnetLevel},
		Dash:   NewPhaseDash(lo.DashLevel),
		Lock:   NewQuantumLock(lo.QuantumEnabled),
	}
}

// Pause freezes every in-progress timer via explicit paused sub-states
// rather than by stopping a wall clock; Tick becomes a no-op until
// Resume, so no elapsed time is lost or fast-forwarded.
func (s *Set) Pause() {
	if s.paused {
		return
	}
	s.paused = true
	s.Resonance = s.Resonance.Pause()
}

// Resume unfreezes all timers from their exact frozen values.
func (s *Set) Resume() {
	if !s.paused {
		return
	}
	s.paused = false
	s.Resonance = s.Resonance.Resume()
}

// Paused reports whether the set is frozen.
func (s *Set) Paused() bool {
	return s.paused
}

// PauseResonance freezes only the resonance window (external pause,
// e.g. an overlay that should not stop the run).
func (s *Set) PauseResonance() {
	s.Resonance = s.Resonance.Pause()
}

// ResumeResonance resumes a resonance-only pause.
func (s *Set) ResumeResonance() {
	s.Resonance = s.Resonance.Resume()
}

// ActivateSlowMotion tries to spend a slow-motion use.
func (s *Set) ActivateSlowMotion() bool {
	next, ok := s.SlowMo.Activate(s.cfg.SlowMotion)
	s.SlowMo = next
	return ok
}

// ActivateDash tries to fire the phase dash.
func (s *Set) ActivateDash() bool {
	next, ok := s.Dash.Activate(s.cfg.Dash)
	s.Dash = next
	return ok
}

// Tick evaluates every kind in the fixed order and returns the
// aggregate effects for the run loop. While paused it only reports
// current passive effects and advances nothing.
func (s *Set) Tick(dt float64, ev Events) Effects {
	if s.paused {
		return s.effects(0)
	}

	// 1. Rhythm multiplier
	prevStreak := s.Rhythm.Streak
	s.Rhythm = s.Rhythm.Tick(s.cfg.Rhythm, dt, ev)

	// 2. Near-miss streak (own bonus, resets on collision)
	prevNear := s.NearMiss
	s.NearMiss = s.NearMiss.Tick(dt, ev)
	nearBonus := s.NearMiss.BonusBetween(s.cfg.NearMiss, prevNear)

	// 3. Resonance: activates when the rhythm streak crosses the
	// threshold, using the streak value rhythm just produced.
	if prevStreak < s.cfg.Resonance.StreakThreshold &&
		s.Rhythm.Streak >= s.cfg.Resonance.StreakThreshold {
		s.Resonance = s.Resonance.Activate(s.cfg.Resonance)
	}
	s.Resonance = s.Resonance.Tick(dt, ev)

	// 4. Overdrive
	s.Overdrive = s.Overdrive.Tick(s.cfg.Overdrive, dt, ev)

	// 5. Slow motion
	s.SlowMo = s.SlowMo.Tick(dt, ev)

	// 6. Shield
	s.Shield = s.Shield.Tick(s.cfg.Shield, dt, ev)

	// 7. Magnet
	s.Magnet = s.Magnet.Tick(dt, ev)

	// 8. Phase dash
	s.Dash = s.Dash.Tick(s.cfg.Dash, dt, ev)

	// 9. Quantum lock; its hazard phase suppresses dash usability
	// from here on without touching the dash counters.
	s.Lock = s.Lock.Tick(s.cfg.QuantumLock, dt, ev)
	s.Dash.Suppressed = s.Lock.Hazard()

	return s.effects(nearBonus)
}

// effects assembles the aggregate view of the current states.
func (s *Set) effects(nearBonus int) Effects {
	e := Effects{
		TimeScale:        s.SlowMo.TimeScale(s.cfg.SlowMotion),
		RhythmMultiplier: s.Rhythm.Multiplier(s.cfg.Rhythm),
		MagnetRadius:     s.Magnet.Radius(s.cfg.Magnet),
		ShakeBoost:       1.0,
		ParticleBoost:    1.0,
		AbsorbedHits:     s.Shield.Absorbed(),
		NearMissBonus:    nearBonus,
	}
	e.ScoreMultiplier = float64(e.RhythmMultiplier)
	if s.Dash.Active() {
		e.ScoreMultiplier *= s.cfg.Dash.ScoreMultiplier
	}
	if s.Resonance.Active() {
		e.PaletteInverted = true
		e.ShakeBoost = s.cfg.Resonance.ShakeBoost
		e.ParticleBoost = s.cfg.Resonance.ParticleBoost
	}
	// Pass-through immunity: shield window, dash window, or the lock's
	// hazard phase. Overdrive destroys instead of passing through.
	e.PassThrough = s.Shield.Invulnerable() || s.Dash.Active() || s.Lock.Hazard()
	e.DestroyOnContact = s.Overdrive.Active()
	return e
}

// Snapshot is the read-only render view of every modifier.
type Snapshot struct {
	Rhythm     RhythmSnapshot
	NearMiss   NearMissSnapshot
	Resonance  ResonanceSnapshot
	Overdrive  OverdriveSnapshot
	SlowMotion SlowMotionSnapshot
	Shield     ShieldSnapshot
	Magnet     MagnetSnapshot
	Dash       DashSnapshot
	Lock       QuantumLockSnapshot
}

// Snapshot builds the render view of the whole set.
func (s *Set) Snapshot() Snapshot {
	return Snapshot{
		Rhythm: RhythmSnapshot{
			Streak:     s.Rhythm.Streak,
			Multiplier: s.Rhythm.Multiplier(s.cfg.Rhythm),
		},
		NearMiss:  NearMissSnapshot{Streak: s.NearMiss.Streak},
		Resonance: s.Resonance.Snapshot(s.cfg.Resonance),
		Overdrive: OverdriveSnapshot{
			LogicalActive:      s.Overdrive.Active(),
			PresentationActive: s.Overdrive.PresentationActive(),
			Warning:            s.Overdrive.Warning(s.cfg.Overdrive),
			Remaining:          s.Overdrive.Remaining,
		},
		SlowMotion: SlowMotionSnapshot{
			Active:    s.SlowMo.Active(),
			UsesLeft:  s.SlowMo.UsesLeft,
			Remaining: s.SlowMo.Remaining,
		},
		Shield: ShieldSnapshot{
			Charges:      s.Shield.Charges,
			Invulnerable: s.Shield.Invulnerable(),
		},
		Magnet: MagnetSnapshot{
			Owned:  s.Magnet.Owned,
			Radius: s.Magnet.Radius(s.cfg.Magnet),
		},
		Dash: DashSnapshot{
			Energy:     s.Dash.Energy,
			Active:     s.Dash.Active(),
			Remaining:  s.Dash.RemainingPercent(s.cfg.Dash),
			Suppressed: s.Dash.Suppressed,
		},
		Lock: QuantumLockSnapshot{
			Active:    s.Lock.Active(),
			Phase:     s.Lock.Phase.String(),
			Corrupted: s.Lock.Hazard(),
		},
	}
}
