// SPDX-License-Identifier: EPL-2.0

package pcm

import "fmt"

// Buffer is one hardware quantum of interleaved PCM.
type Buffer struct {
	// Index identifies the buffer inside its pool.
	Index int
	// Session is the playback session whose audio the buffer holds.
	Session uint64
	// Frames is the number of valid frames in Data.
	Frames int
	// Data holds Frames*FrameSize valid bytes; its capacity never changes.
	Data []byte

	inFlight bool
}

// Pool is a fixed set of Buffers sized for one quantum each.
// Pool is not safe for concurrent use; the owner serializes access.
type Pool struct {
	format  Format
	quantum int
	bufs    []*Buffer
}

func NewPool(format Format, quantumFrames, count int) (*Pool, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	if quantumFrames <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantum, quantumFrames)
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPoolSize, count)
	}

	p := &Pool{
		format:  format,
		quantum: quantumFrames,
		bufs:    make([]*Buffer, count),
	}

	size := quantumFrames * format.FrameSize()
	for i := range p.bufs {
		p.bufs[i] = &Buffer{Index: i, Data: make([]byte, 0, size)}
	}

	return p, nil
}

func (p *Pool) Format() Format     { return p.format }
func (p *Pool) QuantumFrames() int { return p.quantum }
func (p *Pool) Len() int           { return len(p.bufs) }

// Acquire hands out a free buffer reset to zero frames, or nil when every
// buffer is in flight.
func (p *Pool) Acquire() *Buffer {
	for _, b := range p.bufs {
		if b.inFlight {
			continue
		}
		b.inFlight = true
		b.Frames = 0
		b.Session = 0
		b.Data = b.Data[:0]
		return b
	}
	return nil
}

// Release returns the buffer with the given index. Releasing a free or
// unknown index does nothing.
func (p *Pool) Release(index int) {
	if index < 0 || index >= len(p.bufs) {
		return
	}
	p.bufs[index].inFlight = false
}

// ReleaseFor returns the buffer only if it is still in flight for session.
// It reports whether the buffer was released.
func (p *Pool) ReleaseFor(index int, session uint64) bool {
	if index < 0 || index >= len(p.bufs) {
		return false
	}

	b := p.bufs[index]
	if !b.inFlight || b.Session != session {
		return false
	}
	b.inFlight = false
	return true
}

// ReleaseAll marks every buffer free. Only call it once the sink has dropped
// all references to submitted buffers.
func (p *Pool) ReleaseAll() {
	for _, b := range p.bufs {
		b.inFlight = false
	}
}

// InFlight counts buffers currently handed out.
func (p *Pool) InFlight() int {
	n := 0
	for _, b := range p.bufs {
		if b.inFlight {
			n++
		}
	}
	return n
}
