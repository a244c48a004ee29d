// Package ports defines the outward-facing interfaces the run core
// fires into (audio, haptics, analytics). The core only calls these;
// it never depends on concrete implementations, and the no-op set
// keeps tests and headless runs silent.
package ports

// Audio receives fire-and-forget sound cues.
type Audio interface {
	Play(cue string)
}

// Haptics receives fire-and-forget vibration cues.
type Haptics interface {
	Impact(strength float64)
}

// Analytics receives gameplay telemetry.
type Analytics interface {
	Track(name string, fields map[string]any)
}

// Ports bundles all outward interfaces handed to a run.
type Ports struct {
	Audio     Audio
	Haptics   Haptics
	Analytics Analytics
}

// Noop returns a Ports set whose members discard everything.
func Noop() Ports {
	n := noop{}
	return Ports{Audio: n, Haptics: n, Analytics: n}
}

// Fill replaces nil members with no-ops so callers can set only what
// they care about.
func (p Ports) Fill() Ports {
	n := noop{}
	if p.Audio == nil {
		p.Audio = n
	}
	if p.Haptics == nil {
		p.Haptics = n
	}
	if p.Analytics == nil {
		p.Analytics = n
	}
	return p
}

type noop struct{}

func (noop) Play(string)                  {}
func (noop) Impact(float64)               {}
func (noop) Track(string, map[string]any) {}
