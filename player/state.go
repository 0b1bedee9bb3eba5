// SPDX-License-Identifier: EPL-2.0

package player

import "time"

type State int

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// TransportState is a snapshot for the UI.
type TransportState struct {
	Track int
	Name  string
	State State
	// Position is how far decoding has progressed into the track. It runs
	// ahead of what is audible by at most the queued buffers.
	Position time.Duration
	// Length is zero when the decoder cannot tell.
	Length time.Duration
	// Err is the error that ended the last session or failed the last Play.
	Err error
}

func (t TransportState) IsPlaying() bool { return t.State == Playing }

// Stats are counters kept over the engine's lifetime.
type Stats struct {
	// Underruns is the number of times the sink ran dry mid-session.
	Underruns uint64
	// SlowRefills counts refills that took longer than one quantum plays.
	SlowRefills uint64
	MaxRefill   time.Duration
	Submitted   uint64
	Sessions    uint64
}
