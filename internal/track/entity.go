// Package track owns procedural entity placement and per-tick
// hit-testing for a run. It reports discrete events only and never
// touches score or health; the run loop applies consequences.
package track

// Lanes is the number of lanes the player can occupy.
const Lanes = 3

// Kind classifies a track entity.
type Kind int

const (
	KindObstacle Kind = iota
	KindShard         // Currency collectible
	KindLetter        // Overdrive letter collectible
)

// String returns the name of the entity kind.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "obstacle"
	case KindShard:
		return "shard"
	case KindLetter:
		return "letter"
	default:
		return "?"
	}
}

// Affinity is the color channel of an obstacle or the player.
// Overlapping an obstacle of matching affinity damages the player;
// the opposite affinity passes through harmlessly.
type Affinity int

const (
	AffinityNone Affinity = iota
	AffinityCyan
	AffinityMagenta
)

// String returns the name of the affinity.
func (a Affinity) String() string {
	switch a {
	case AffinityCyan:
		return "cyan"
	case AffinityMagenta:
		return "magenta"
	default:
		return "none"
	}
}

// Entity is one pooled track object.
// Lifecycle: spawn -> active -> consumed or expired -> back to pool.
type Entity struct {
	ID       int
	Kind     Kind
	Lane     int
	Pos      float64 // Track distance coordinate
	Vel      float64 // Lane drift speed for moving obstacles
	Affinity Affinity
	Letter   int  // Letter index for KindLetter entities
	Consumed bool // Set when collected or destroyed, before pooling

	baseLane int     // Lane the entity spawned in, drift oscillates around it
	driftDir int     // +1 or -1, side the obstacle drifts toward
	phase    float64 // Drift oscillation phase
	nearMiss bool    // A near miss was already reported for this entity
	active   bool    // Slot is in use
}

// Active reports whether the entity slot is live.
func (e *Entity) Active() bool {
	return e.active
}

// EventKind classifies a hit-test outcome.
type EventKind int

const (
	// EventCollision is a damaging overlap with a matching-color obstacle.
	EventCollision EventKind = iota
	// EventDestroyed is an obstacle consumed on contact while overdrive
	// destroys instead of damaging.
	EventDestroyed
	// EventCollect is a collectible pickup.
	EventCollect
	// EventNearMiss is an obstacle squeaking past in an adjacent lane.
	EventNearMiss
)

// Event is a discrete hit-test result for one entity this tick.
type Event struct {
	Kind   EventKind
	Entity Entity // Copy taken at event time; pool slot may be reused
}
