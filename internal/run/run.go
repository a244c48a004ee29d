// Package run owns the per-attempt simulation loop: it advances the
// player, drives the track engine and modifier set in the fixed order,
// accumulates score and distance, and fires the one-shot terminal
// transition into an immutable Result. All mutation funnels through
// Tick on a single goroutine; the presentation layer reads snapshots.
package run

import (
	"fmt"

	"github.com/vovakirdan/neon-rush/internal/config"
	"github.com/vovakirdan/neon-rush/internal/event"
	"github.com/vovakirdan/neon-rush/internal/level"
	"github.com/vovakirdan/neon-rush/internal/modifier"
	"github.com/vovakirdan/neon-rush/internal/ports"
	"github.com/vovakirdan/neon-rush/internal/track"
)

// Phase is the loop's lifecycle state.
type Phase int

const (
	PhaseReady Phase = iota
	PhaseRunning
	PhasePaused
	// PhaseDowned: health reached zero but the player may still spend
	// currency on the one-per-run restore. Ticks do nothing here; the
	// run finalizes to PhaseFailed via Concede or revives via Restore.
	PhaseDowned
	PhaseComplete
	PhaseFailed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseDowned:
		return "downed"
	case PhaseComplete:
		return "complete"
	case PhaseFailed:
		return "failed"
	default:
		return "?"
	}
}

// Terminal reports whether the run has produced its Result.
func (p Phase) Terminal() bool {
	return p == PhaseComplete || p == PhaseFailed
}

// Result is the immutable outcome of a finished run, produced exactly
// once at the terminal transition.
type Result struct {
	Level                int
	DistanceTraveled     float64
	ShardsCollected      int
	TotalShardsAvailable int
	DamageTaken          int
	HealthRemaining      int
	Completed            bool
}

// Options configures a run beyond its level parameters.
type Options struct {
	Seed    int64
	Loadout modifier.Loadout
	Bus     *event.Bus   // Optional; a private bus is created when nil
	Ports   ports.Ports  // Zero members are filled with no-ops
	Restore func(cost int) bool // Currency gate for the one-per-run restore
}

// Points per collectible pickup before multipliers.
const shardScore = 50

// Run is the mutable per-attempt aggregate. It is exclusively owned by
// the tick driver and never persisted; a Result survives it.
type Run struct {
	lvl   level.Config
	cfg   config.GameConfig
	field *track.Field
	mods  *modifier.Set
	bus   *event.Bus
	ports ports.Ports

	phase       Phase
	lane        int
	color       track.Affinity
	distance    float64
	score       float64
	health      int
	damage      int
	shards      int
	letters     map[int]bool
	lettersDone bool
	restored    bool
	globalMult  float64
	restore     func(cost int) bool

	pendingSwap int // -1, 0, +1; applied at the top of the next tick
	effects     modifier.Effects

	// Last published values, to publish state events only on change.
	pubScore      int
	pubRhythm     modifier.RhythmSnapshot
	pubNearMiss   int
	pubSlowActive bool
	pubDashActive bool
	pubLockPhase  string

	result *Result
}

// New validates the configuration and builds a ready run.
// Only construction errors surface; per-tick errors are absorbed.
func New(lvl level.Config, cfg config.GameConfig, opts Options) (*Run, error) {
	if lvl.Level < 1 || lvl.Level > level.MaxLevel {
		return nil, fmt.Errorf("run: invalid level config (level %d)", lvl.Level)
	}
	if cfg.Run.BaseHealth <= 0 {
		return nil, fmt.Errorf("run: base health must be positive, got %d", cfg.Run.BaseHealth)
	}
	if cfg.Run.MaxDelta <= 0 {
		return nil, fmt.Errorf("run: max delta must be positive, got %v", cfg.Run.MaxDelta)
	}

	bus := opts.Bus
	if bus == nil {
		bus = event.NewBus()
	}
	lo := opts.Loadout
	lo.QuantumEnabled = lo.QuantumEnabled || lvl.Chapter >= 4
	globalMult := lo.GlobalScoreMult
	if globalMult <= 0 {
		globalMult = 1
	}

	r := &Run{
		lvl:        lvl,
		cfg:        cfg,
		field:      track.NewField(lvl, cfg.Spawn, opts.Seed),
		mods:       modifier.NewSet(cfg.Modifiers, lo),
		bus:        bus,
		ports:      opts.Ports.Fill(),
		lane:       track.Lanes / 2,
		color:      track.AffinityCyan,
		health:     cfg.Run.BaseHealth,
		letters:    make(map[int]bool),
		globalMult: globalMult,
		restore:    opts.Restore,
	}
	r.effects = modifier.Effects{TimeScale: 1, ScoreMultiplier: 1, RhythmMultiplier: 1, ShakeBoost: 1, ParticleBoost: 1}
	return r, nil
}

// Start begins the run.
func (r *Run) Start() {
	if r.phase != PhaseReady {
		return
	}
	r.phase = PhaseRunning
	r.ports.Analytics.Track("run_started", map[string]any{"level": r.lvl.Level})
}

// Pause freezes the run and all modifier timers.
func (r *Run) Pause() {
	if r.phase != PhaseRunning {
		return
	}
	r.phase = PhasePaused
	r.mods.Pause()
}

// Resume continues a paused run from its exact frozen state.
func (r *Run) Resume() {
	if r.phase != PhasePaused {
		return
	}
	r.phase = PhaseRunning
	r.mods.Resume()
}

// SwapLane queues a lane change for the next tick. The player's color
// flips with each swap, so swapping dodges and re-tunes at once.
func (r *Run) SwapLane(dir int) {
	if r.phase != PhaseRunning || dir == 0 {
		return
	}
	if dir > 0 {
		r.pendingSwap = 1
	} else {
		r.pendingSwap = -1
	}
}

// ActivateSlowMotion spends a slow-motion use if one remains.
func (r *Run) ActivateSlowMotion() bool {
	if r.phase != PhaseRunning {
		return false
	}
	ok := r.mods.ActivateSlowMotion()
	if ok {
		r.ports.Audio.Play("slowmo")
	}
	return ok
}

// ActivateDash fires the phase dash if the meter is full.
func (r *Run) ActivateDash() bool {
	if r.phase != PhaseRunning {
		return false
	}
	ok := r.mods.ActivateDash()
	if ok {
		r.ports.Audio.Play("dash")
	}
	return ok
}

// Restore revives a downed run once per attempt, gated by the currency
// callback. It never partially mutates: either the payment succeeds
// and the run resumes with one health, or nothing changes.
func (r *Run) Restore() bool {
	if r.phase != PhaseDowned || r.restored {
		return false
	}
	if r.restore == nil || !r.restore(r.cfg.Run.RestoreCost) {
		return false
	}
	r.restored = true
	r.health = 1
	r.phase = PhaseRunning
	r.ports.Audio.Play("restore")
	r.ports.Analytics.Track("run_restored", map[string]any{"level": r.lvl.Level})
	return true
}

// Concede finalizes a downed run as failed.
func (r *Run) Concede() {
	if r.phase != PhaseDowned {
		return
	}
	r.finish(false)
}

// Phase returns the current lifecycle phase.
func (r *Run) Phase() Phase {
	return r.phase
}

// Result returns the immutable outcome once the run is terminal.
func (r *Run) Result() (Result, bool) {
	if r.result == nil {
		return Result{}, false
	}
	return *r.result, true
}

// Tick advances the simulation by dt seconds. Large deltas (after
// backgrounding) are clamped. Terminal and paused phases are
// re-validated first so a stale tick after cancellation cannot mutate
// a finished run.
func (r *Run) Tick(dt float64) {
	if r.phase != PhaseRunning || dt <= 0 {
		return
	}
	if dt > r.cfg.Run.MaxDelta {
		dt = r.cfg.Run.MaxDelta
	}

	// (1) Time dilation from the previous tick's modifier state.
	scaled := dt * r.effects.TimeScale

	// Apply the queued lane swap.
	swapped := false
	if r.pendingSwap != 0 {
		lane := r.lane + r.pendingSwap
		r.pendingSwap = 0
		if lane >= 0 && lane < track.Lanes {
			r.lane = lane
			swapped = true
			if r.color == track.AffinityCyan {
				r.color = track.AffinityMagenta
			} else {
				r.color = track.AffinityCyan
			}
			r.ports.Audio.Play("swap")
		}
	}

	// (2) Advance the world.
	r.distance += r.lvl.BaseSpeed * scaled
	for n := r.field.Step(r.distance, scaled); n > 0; n-- {
		r.publish(event.Mission{Kind: event.MissionObstacleAvoided, Level: r.lvl.Level})
	}
	r.field.Spawn(r.distance)
	r.field.Attract(r.distance, r.lane, r.effects.MagnetRadius)

	// (3) Hit-test against the new positions.
	events := r.field.Collide(r.distance, r.lane, r.color,
		r.effects.PassThrough, r.effects.DestroyOnContact)

	// (4) Feed events into the modifier set.
	mev := modifier.Events{LaneSwapped: swapped}
	collects := 0
	for _, ev := range events {
		switch ev.Kind {
		case track.EventCollision:
			mev.Collisions++
		case track.EventDestroyed:
			r.publish(event.Mission{Kind: event.MissionObstacleDestroyed, Level: r.lvl.Level})
		case track.EventCollect:
			collects++
			r.collect(ev.Entity)
		case track.EventNearMiss:
			mev.NearMisses++
			r.publish(event.Mission{Kind: event.MissionNearMiss, Level: r.lvl.Level})
		}
	}
	mev.Collects = collects
	if !r.lettersDone && len(r.letters) >= r.cfg.Modifiers.Overdrive.Letters {
		r.lettersDone = true
		mev.LettersComplete = true
		r.ports.Audio.Play("overdrive")
	}
	r.effects = r.mods.Tick(dt, mev)

	// Damage resolves after shield absorption.
	if hits := mev.Collisions - r.effects.AbsorbedHits; hits > 0 {
		r.health -= hits
		r.damage += hits
		r.ports.Haptics.Impact(1.0)
		r.ports.Audio.Play("hit")
		r.publish(event.Mission{Kind: event.MissionDamageTaken, Level: r.lvl.Level})
	} else if mev.Collisions > 0 {
		r.ports.Audio.Play("shield")
	}

	// (5) Accumulate score.
	base := r.cfg.Run.BaseScoreRate*r.lvl.BaseSpeed*scaled + float64(collects*shardScore)
	r.score += base*r.effects.ScoreMultiplier*r.globalMult + float64(r.effects.NearMissBonus)

	r.publishState()

	// (6) Terminal conditions, one-shot.
	switch {
	case r.health <= 0:
		r.phase = PhaseDowned
		r.ports.Audio.Play("downed")
	case r.distance >= r.lvl.TargetDistance:
		r.finish(true)
	}
}

// collect applies a single pickup.
func (r *Run) collect(e track.Entity) {
	switch e.Kind {
	case track.KindShard:
		r.shards++
		r.publish(event.Mission{Kind: event.MissionShardCollected, Level: r.lvl.Level})
	case track.KindLetter:
		r.letters[e.Letter] = true
		r.publish(event.Mission{Kind: event.MissionLetterCollected, Level: r.lvl.Level})
	}
	r.ports.Audio.Play("collect")
}

// finish fires the one-shot terminal transition.
func (r *Run) finish(completed bool) {
	if r.result != nil {
		return
	}
	res := Result{
		Level:                r.lvl.Level,
		DistanceTraveled:     r.distance,
		ShardsCollected:      r.shards,
		TotalShardsAvailable: r.field.TotalShards(),
		DamageTaken:          r.damage,
		HealthRemaining:      r.health,
		Completed:            completed,
	}
	if res.HealthRemaining < 0 {
		res.HealthRemaining = 0
	}
	r.result = &res
	if completed {
		r.phase = PhaseComplete
		r.publish(event.RunCompleted{Result: res})
		r.ports.Audio.Play("complete")
	} else {
		r.phase = PhaseFailed
		r.publish(event.RunFailed{Result: res})
		r.ports.Audio.Play("failed")
	}
	r.ports.Analytics.Track("run_finished", map[string]any{
		"level":     res.Level,
		"completed": res.Completed,
		"distance":  res.DistanceTraveled,
		"shards":    res.ShardsCollected,
	})
}

// publish forwards an event to the bus.
func (r *Run) publish(e event.Event) {
	r.bus.Publish(e)
}

// publishState emits change-driven state events for the HUD.
func (r *Run) publishState() {
	snap := r.mods.Snapshot()

	if s := int(r.score); s != r.pubScore {
		r.pubScore = s
		r.publish(event.ScoreUpdated{Score: s, Multiplier: snap.Rhythm.Multiplier})
	}
	if snap.Rhythm != r.pubRhythm {
		r.pubRhythm = snap.Rhythm
		r.publish(event.RhythmChanged{Streak: snap.Rhythm.Streak, Multiplier: snap.Rhythm.Multiplier})
	}
	if snap.NearMiss.Streak != r.pubNearMiss {
		r.pubNearMiss = snap.NearMiss.Streak
		r.publish(event.NearMissStreakChanged{Streak: snap.NearMiss.Streak, Bonus: r.effects.NearMissBonus})
	}
	if snap.SlowMotion.Active != r.pubSlowActive {
		r.pubSlowActive = snap.SlowMotion.Active
		r.publish(event.SlowMotionChanged{Active: snap.SlowMotion.Active, UsesLeft: snap.SlowMotion.UsesLeft})
	}
	if snap.Dash.Active != r.pubDashActive {
		r.pubDashActive = snap.Dash.Active
		r.publish(event.DashChanged{Energy: snap.Dash.Energy, Active: snap.Dash.Active, Remaining: snap.Dash.Remaining})
	}
	if snap.Lock.Phase != r.pubLockPhase {
		r.pubLockPhase = snap.Lock.Phase
		r.publish(event.QuantumLockChanged{Active: snap.Lock.Active, Phase: snap.Lock.Phase})
	}
	r.publish(event.DistanceProgress{
		Distance: r.distance,
		Target:   r.lvl.TargetDistance,
		Percent:  r.distance / r.lvl.TargetDistance * 100,
	})
}
