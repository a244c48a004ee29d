package track

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/neon-rush/internal/config"
	"github.com/vovakirdan/neon-rush/internal/level"
)

// Field manages the pooled entity set for one run.
type Field struct {
	lvl level.Config
	cfg config.SpawnConfig

	rng    *rand.Rand
	pool   []Entity
	nextID int

	nextSpawnAt  float64        // Track position of the next spawn row
	lastLanePos  [Lanes]float64 // Last spawn position per lane, enforces the minimum gap
	totalShards  int
	totalLetters int
}

// NewField creates a field for the given level with a seeded RNG.
func NewField(lvl level.Config, cfg config.SpawnConfig, seed int64) *Field {
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = 64
	}
	f := &Field{
		lvl:  lvl,
		cfg:  cfg,
		pool: make([]Entity, cfg.PoolSize),
	}
	f.Reset(seed)
	return f
}

// Reset clears all entities and restarts the RNG and spawn cursor.
func (f *Field) Reset(seed int64) {
	f.rng = rand.New(rand.NewSource(seed))
	for i := range f.pool {
		f.pool[i] = Entity{}
	}
	f.nextID = 0
	f.nextSpawnAt = f.cfg.AheadDistance / 2 // First row spawns well ahead of the start
	for i := range f.lastLanePos {
		f.lastLanePos[i] = -math.MaxFloat64
	}
	f.totalShards = 0
	f.totalLetters = 0
}

// TotalShards returns how many shards have been placed so far this run.
func (f *Field) TotalShards() int {
	return f.totalShards
}

// Entities returns the pool for read-only iteration; callers must check
// Active() on each slot.
func (f *Field) Entities() []Entity {
	return f.pool
}

// minGap returns the per-lane minimum spawn gap.
// Higher density shrinks the gap, floored by the configured base.
func (f *Field) minGap() float64 {
	return f.cfg.BaseGap / f.lvl.ObstacleDensity
}

// acquire finds a free pool slot, or nil when the pool is exhausted.
// A full pool simply skips the spawn; the cursor advances regardless.
func (f *Field) acquire() *Entity {
	for i := range f.pool {
		if !f.pool[i].active {
			f.nextID++
			f.pool[i] = Entity{ID: f.nextID, active: true}
			return &f.pool[i]
		}
	}
	return nil
}

// release returns a slot to the pool.
func (f *Field) release(e *Entity) {
	e.active = false
}

// Spawn places new rows ahead of the player up to the look-ahead horizon.
// Each row holds one obstacle; a shard or letter may ride along in a lane
// the obstacle does not cover, so a row is never an unavoidable wall.
func (f *Field) Spawn(playerPos float64) {
	horizon := playerPos + f.cfg.AheadDistance
	for f.nextSpawnAt <= horizon {
		f.spawnRow(f.nextSpawnAt)
		f.nextSpawnAt += f.minGap() * (1 + f.rng.Float64())
	}
}

// spawnRow places the entities for one row at the given track position.
func (f *Field) spawnRow(pos float64) {
	obstacleLane := f.rng.Intn(Lanes)
	if pos-f.lastLanePos[obstacleLane] < f.minGap() {
		// Gap invariant would break in this lane; shift to the
		// lane that has been clear the longest.
		obstacleLane = f.oldestLane()
		if pos-f.lastLanePos[obstacleLane] < f.minGap() {
			return // Every lane too recent; skip the row entirely
		}
	}

	if e := f.acquire(); e != nil {
		e.Kind = KindObstacle
		e.Lane = obstacleLane
		e.baseLane = obstacleLane
		e.Pos = pos
		e.Affinity = AffinityCyan
		if f.rng.Intn(2) == 1 {
			e.Affinity = AffinityMagenta
		}
		if f.lvl.MovingObstacles {
			e.Vel = 0.5 + f.rng.Float64()
			e.driftDir = 1
			if obstacleLane == Lanes-1 || (obstacleLane > 0 && f.rng.Intn(2) == 0) {
				e.driftDir = -1
			}
			e.phase = f.rng.Float64() * 2 * math.Pi
		}
		f.lastLanePos[obstacleLane] = pos
	}

	// Collectibles favor a lane the obstacle does not cover.
	roll := f.rng.Float64()
	switch {
	case roll < f.cfg.LetterChance:
		if e := f.acquire(); e != nil {
			e.Kind = KindLetter
			e.Lane = f.freeLane(obstacleLane)
			e.Pos = pos
			e.Letter = f.totalLetters
			f.totalLetters++
		}
	case roll < f.cfg.LetterChance+f.cfg.ShardChance:
		if e := f.acquire(); e != nil {
			e.Kind = KindShard
			e.Lane = f.freeLane(obstacleLane)
			e.Pos = pos
			f.totalShards++
		}
	}
}

// oldestLane returns the lane whose last spawn is furthest behind.
func (f *Field) oldestLane() int {
	best := 0
	for i := 1; i < Lanes; i++ {
		if f.lastLanePos[i] < f.lastLanePos[best] {
			best = i
		}
	}
	return best
}

// freeLane picks a random lane other than the one given.
func (f *Field) freeLane(covered int) int {
	lane := f.rng.Intn(Lanes - 1)
	if lane >= covered {
		lane++
	}
	return lane
}

// Step advances moving obstacles and expires entities behind the player.
// It returns the number of obstacles that expired untouched, meaning
// the player dodged them rather than hitting or destroying them.
func (f *Field) Step(playerPos, dt float64) int {
	avoided := 0
	expiry := playerPos - f.cfg.HitWindow - f.cfg.NearMissMargin - 1
	for i := range f.pool {
		e := &f.pool[i]
		if !e.active {
			continue
		}
		if e.Pos < expiry || e.Consumed {
			if e.Kind == KindObstacle && !e.Consumed {
				avoided++
			}
			f.release(e)
			continue
		}
		if e.Kind == KindObstacle && e.Vel > 0 {
			// Oscillate between the spawn lane and its drift neighbor.
			e.phase += e.Vel * dt
			offset := 0
			if math.Sin(e.phase) > 0 {
				offset = e.driftDir
			}
			lane := e.baseLane + offset
			if lane >= 0 && lane < Lanes {
				e.Lane = lane
			}
		}
	}
	return avoided
}

// Attract pulls shards within the magnet radius into the player's lane.
// Letters are deliberate pickups and are not attracted.
func (f *Field) Attract(playerPos float64, playerLane int, radius float64) {
	if radius <= 0 {
		return
	}
	for i := range f.pool {
		e := &f.pool[i]
		if !e.active || e.Kind != KindShard {
			continue
		}
		if math.Abs(e.Pos-playerPos) <= radius {
			e.Lane = playerLane
		}
	}
}

// Collide hit-tests the player against every active entity and returns
// the tick's events ordered most severe first: collisions, then
// collects, then near misses. With passThrough set, matching-color
// overlaps are ignored; with destroyOnContact set they consume the
// obstacle instead of damaging.
func (f *Field) Collide(playerPos float64, playerLane int, playerColor Affinity, passThrough, destroyOnContact bool) []Event {
	var collisions, collects, nearMisses []Event

	for i := range f.pool {
		e := &f.pool[i]
		if !e.active || e.Consumed {
			continue
		}
		dist := math.Abs(e.Pos - playerPos)

		switch e.Kind {
		case KindObstacle:
			overlap := dist <= f.cfg.HitWindow && e.Lane == playerLane
			if overlap && e.Affinity == playerColor {
				switch {
				case destroyOnContact:
					e.Consumed = true
					collisions = append(collisions, Event{Kind: EventDestroyed, Entity: *e})
				case passThrough:
					// Shield/dash/lock immunity: no event, obstacle stays.
				default:
					e.Consumed = true
					collisions = append(collisions, Event{Kind: EventCollision, Entity: *e})
				}
				continue
			}
			// A matching obstacle sliding past in an adjacent lane
			// within the margin counts as a near miss, once.
			if !e.nearMiss && e.Affinity == playerColor &&
				dist <= f.cfg.HitWindow+f.cfg.NearMissMargin &&
				e.Pos < playerPos &&
				abs(e.Lane-playerLane) == 1 {
				e.nearMiss = true
				nearMisses = append(nearMisses, Event{Kind: EventNearMiss, Entity: *e})
			}

		case KindShard, KindLetter:
			if dist <= f.cfg.HitWindow && e.Lane == playerLane {
				e.Consumed = true
				collects = append(collects, Event{Kind: EventCollect, Entity: *e})
			}
		}
	}

	events := collisions
	events = append(events, collects...)
	events = append(events, nearMisses...)
	return events
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
