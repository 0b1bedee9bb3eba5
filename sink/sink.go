// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"fmt"
	"strings"

	"github.com/ik5/trackdeck/pcm"
)

// Backend names accepted by New.
const (
	BackendOto   = "oto"
	BackendBeep  = "beep"
	BackendClock = "clock"
)

// BufferConsumed reports that the sink has finished reading a buffer and
// handed ownership back to whoever submitted it.
type BufferConsumed struct {
	Session uint64
	Buffer  int
}

// Sink is an output device fed with fixed-size PCM buffers.
//
// A submitted buffer belongs to the sink until its BufferConsumed event is
// sent or Reset returns. Events are delivered on the channel returned by
// Events; the sink never calls back into the submitter.
type Sink interface {
	// SetFormat opens the device. It must be called once before Submit.
	SetFormat(format pcm.Format) error
	Submit(buf *pcm.Buffer) error
	Events() <-chan BufferConsumed
	// SetPaused makes the device play silence without consuming buffers.
	SetPaused(paused bool)
	// Reset drops every queued buffer. No reference to them survives the call
	// and no event is sent for them.
	Reset()
	// Underruns counts buffers submitted after the device had run dry.
	Underruns() uint64
	Close() error
}

// Backends returns the names New accepts.
func Backends() []string {
	return []string{BackendOto, BackendBeep, BackendClock}
}

// New returns an unopened sink for the named backend.
func New(backend string) (Sink, error) {
	switch strings.ToLower(backend) {
	case BackendOto:
		return NewOto()
	case BackendBeep:
		return NewBeep()
	case BackendClock, "headless":
		return NewClock(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
