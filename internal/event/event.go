// Package event defines the typed events the run core publishes and a
// small synchronous bus the presentation layer subscribes to.
// The core never calls into subscribers except through Publish, so UI
// code can observe a run without reaching into its internals.
package event

// Event is the marker interface implemented by all run events.
type Event interface {
	runEvent()
}

// ScoreUpdated is published whenever the run score changes.
type ScoreUpdated struct {
	Score      int
	Multiplier int // Current rhythm multiplier applied to new points
}

func (ScoreUpdated) runEvent() {}

// RhythmChanged reports the rhythm streak and its resulting multiplier.
type RhythmChanged struct {
	Streak     int
	Multiplier int
}

func (RhythmChanged) runEvent() {}

// NearMissStreakChanged reports the independent near-miss streak counter.
type NearMissStreakChanged struct {
	Streak int
	Bonus  int // Bonus points granted by this streak step, 0 on reset
}

func (NearMissStreakChanged) runEvent() {}

// SlowMotionChanged reports slow-motion activation state and uses left.
type SlowMotionChanged struct {
	Active   bool
	UsesLeft int
}

func (SlowMotionChanged) runEvent() {}

// DashChanged reports phase-dash energy and activation state.
type DashChanged struct {
	Energy    float64 // 0..100 charge percent while inactive
	Active    bool
	Remaining float64 // 0..100 remaining percent while active
}

func (DashChanged) runEvent() {}

// QuantumLockChanged reports the quantum-lock phase machine state.
type QuantumLockChanged struct {
	Active bool
	Phase  string
}

func (QuantumLockChanged) runEvent() {}

// DistanceProgress reports run distance against the level target.
type DistanceProgress struct {
	Distance float64
	Target   float64
	Percent  float64
}

func (DistanceProgress) runEvent() {}

// MissionEventKind tags discrete gameplay facts mission bookkeeping
// observes. The core only emits these; it never tracks missions itself.
type MissionEventKind int

const (
	MissionObstacleAvoided MissionEventKind = iota
	MissionShardCollected
	MissionLetterCollected
	MissionNearMiss
	MissionObstacleDestroyed
	MissionDamageTaken
)

// Mission is a typed gameplay fact for external mission/challenge tracking.
type Mission struct {
	Kind  MissionEventKind
	Level int
}

func (Mission) runEvent() {}

// RunCompleted is published exactly once when the target distance is reached.
type RunCompleted struct {
	Result any // run.Result; typed as any to avoid an import cycle
}

func (RunCompleted) runEvent() {}

// RunFailed is published exactly once when health reaches zero.
type RunFailed struct {
	Result any
}

func (RunFailed) runEvent() {}

// Handler receives published events.
type Handler func(Event)

// Bus is a synchronous fan-out of run events to subscribers.
// Not safe for concurrent use; the run loop is the only publisher and
// runs single-threaded (one mutation pass per frame).
type Bus struct {
	handlers []Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for all subsequent events.
func (b *Bus) Subscribe(h Handler) {
	if h != nil {
		b.handlers = append(b.handlers, h)
	}
}

// Publish delivers an event to every subscriber in subscription order.
func (b *Bus) Publish(e Event) {
	for _, h := range b.handlers {
		h(e)
	}
}
