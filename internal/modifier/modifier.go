// Package modifier implements the nine independent temporal effects
// layered onto each run tick. Every kind keeps a value-type state with
// a pure Tick (previous state, dt, events) -> next state, so two runs
// fed identical inputs evolve identically and each machine is testable
// in isolation. The Set applies them in a fixed order; later kinds see
// the already-updated values of earlier ones.
package modifier

// Kind identifies a modifier machine.
type Kind int

const (
	KindRhythm Kind = iota
	KindNearMiss
	KindResonance
	KindOverdrive
	KindSlowMotion
	KindShield
	KindMagnet
	KindPhaseDash
	KindQuantumLock
)

// String returns the modifier name.
func (k Kind) String() string {
	switch k {
	case KindRhythm:
		return "rhythm"
	case KindNearMiss:
		return "near-miss"
	case KindResonance:
		return "resonance"
	case KindOverdrive:
		return "overdrive"
	case KindSlowMotion:
		return "slow-motion"
	case KindShield:
		return "shield"
	case KindMagnet:
		return "magnet"
	case KindPhaseDash:
		return "phase-dash"
	case KindQuantumLock:
		return "quantum-lock"
	default:
		return "?"
	}
}

// Events is the per-tick input every modifier consumes. The run loop
// builds it from the track engine's hit-test results.
type Events struct {
	Collisions      int  // Damaging overlaps this tick (before shield absorption)
	Collects        int  // Collectibles picked up this tick
	NearMisses      int  // Near misses this tick
	LettersComplete bool // All distinct letter collectibles gathered
	LaneSwapped     bool // Player issued a lane swap this tick
}

// Effects is the aggregate outcome of one Set tick, consumed by the
// run loop when advancing physics and score.
type Effects struct {
	TimeScale        float64 // dt multiplier (slow motion)
	ScoreMultiplier  float64 // Rhythm multiplier x dash bonus
	RhythmMultiplier int
	PassThrough      bool // Collision immunity next hit-test
	DestroyOnContact bool // Overdrive: obstacles die on contact
	MagnetRadius     float64
	ShakeBoost       float64
	ParticleBoost    float64
	PaletteInverted  bool
	AbsorbedHits     int // Collisions eaten by shield charges this tick
	NearMissBonus    int // Bonus points from the near-miss streak this tick
}
