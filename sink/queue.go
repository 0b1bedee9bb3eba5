// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"sync"

	"github.com/ik5/trackdeck/pcm"
)

const eventBacklog = 64

// queue is the buffer FIFO every backend reads from. Backends embed it and
// call read from their device callback.
type queue struct {
	mu        sync.Mutex
	format    pcm.Format
	hasFormat bool
	bufs      []*pcm.Buffer
	off       int // bytes of bufs[0] already read
	paused    bool
	active    bool // a buffer was submitted since the last reset
	dry       bool // ran out of data while active
	underruns uint64
	closed    bool

	events chan BufferConsumed
	done   chan struct{}

	// owned by the goroutine calling read
	finished []BufferConsumed
}

func newQueue() *queue {
	return &queue{
		events: make(chan BufferConsumed, eventBacklog),
		done:   make(chan struct{}),
	}
}

func (q *queue) setFormat(format pcm.Format) error {
	if err := format.Validate(); err != nil {
		return err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}
	if q.hasFormat {
		return ErrFormatSet
	}

	q.format = format
	q.hasFormat = true
	return nil
}

// clearFormat undoes setFormat after the device failed to open, so the
// caller may try again.
func (q *queue) clearFormat() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.format = pcm.Format{}
	q.hasFormat = false
}

func (q *queue) Events() <-chan BufferConsumed { return q.events }

func (q *queue) Submit(buf *pcm.Buffer) error {
	if buf == nil {
		return ErrNilBuffer
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}
	if !q.hasFormat {
		return ErrFormatNotSet
	}

	if q.dry {
		q.underruns++
		q.dry = false
	}

	q.bufs = append(q.bufs, buf)
	q.active = true
	return nil
}

func (q *queue) SetPaused(paused bool) {
	q.mu.Lock()
	q.paused = paused
	q.mu.Unlock()
}

func (q *queue) Reset() {
	q.mu.Lock()
	defer q.mu.Unlock()

	clear(q.bufs)
	q.bufs = q.bufs[:0]
	q.off = 0
	q.active = false
	q.dry = false
}

func (q *queue) Underruns() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.underruns
}

// queued returns the number of buffers not yet fully read.
func (q *queue) queued() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.bufs)
}

// read fills p with queued PCM, padding with silence, and always returns
// len(p). Events for buffers it finishes are sent after the lock is dropped.
func (q *queue) read(p []byte) int {
	q.mu.Lock()

	q.finished = q.finished[:0]
	n := 0
	if !q.paused && !q.closed {
		for n < len(p) && len(q.bufs) > 0 {
			head := q.bufs[0]
			c := copy(p[n:], head.Data[q.off:])
			n += c
			q.off += c

			if q.off >= len(head.Data) {
				q.finished = append(q.finished, BufferConsumed{Session: head.Session, Buffer: head.Index})
				q.bufs[0] = nil
				q.bufs = q.bufs[1:]
				q.off = 0
			}
		}

		if n < len(p) && q.active {
			q.dry = true
		}
	}

	q.mu.Unlock()

	clear(p[n:])

	for _, ev := range q.finished {
		select {
		case q.events <- ev:
		case <-q.done:
			return len(p)
		}
	}

	return len(p)
}

// close stops event delivery. Buffers still queued are dropped.
func (q *queue) close() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}

	q.closed = true
	clear(q.bufs)
	q.bufs = nil
	close(q.done)
	return true
}
