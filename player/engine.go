// SPDX-License-Identifier: EPL-2.0

package player

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ik5/trackdeck/catalog"
	"github.com/ik5/trackdeck/logger"
	"github.com/ik5/trackdeck/pcm"
	"github.com/ik5/trackdeck/sink"
)

// Engine drives one sink from one decode session at a time.
//
// Control calls and the refill triggered by BufferConsumed events are
// serialized by a single mutex. A buffer is only written while the pool
// owns it; the sink owns it from Submit until its event arrives or the sink
// is reset.
type Engine struct {
	mu sync.Mutex

	sink    sink.Sink
	catalog *catalog.Catalog
	opts    Options
	log     *slog.Logger

	pool    *pcm.Pool
	scratch []float32
	quantum time.Duration

	state   State
	track   int
	sess    *session
	lastID  uint64
	lastErr error
	stats   Stats
	closed  bool

	// nested auto-advances in the current call; tracks shorter than the
	// pool end during priming and would otherwise recurse without bound
	advanceDepth int

	done chan struct{}
	wg   sync.WaitGroup
}

// New sets the sink format, allocates the buffer pool and starts delivering
// the sink's events to OnBufferConsumed. The engine owns s from here on.
func New(s sink.Sink, cat *catalog.Catalog, opts Options) (*Engine, error) {
	if cat == nil || cat.Len() == 0 {
		return nil, ErrEmptyCatalog
	}

	opts.fillDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	pool, err := pcm.NewPool(opts.Format, opts.QuantumFrames, opts.Buffers)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	if err := s.SetFormat(opts.Format); err != nil {
		return nil, fmt.Errorf("setting sink format: %w", err)
	}

	log := opts.Logger
	if log == nil {
		log = logger.WithComponent("player")
	}

	e := &Engine{
		sink:    s,
		catalog: cat,
		opts:    opts,
		log:     log,
		pool:    pool,
		scratch: make([]float32, opts.QuantumFrames*opts.Format.Channels),
		quantum: opts.Format.Duration(int64(opts.QuantumFrames)),
		done:    make(chan struct{}),
	}

	e.wg.Add(1)
	go e.loop()

	log.Debug("engine ready",
		slog.String("format", opts.Format.String()),
		slog.Int("quantum", opts.QuantumFrames),
		slog.Int("buffers", opts.Buffers))

	return e, nil
}

func (e *Engine) loop() {
	defer e.wg.Done()

	events := e.sink.Events()
	for {
		select {
		case <-e.done:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			e.OnBufferConsumed(ev)
		}
	}
}

// OnBufferConsumed takes a buffer back from the sink and, if it belongs to
// the live session and the engine is playing, refills it. Events from
// closed sessions only return their buffer to the pool.
func (e *Engine) OnBufferConsumed(ev sink.BufferConsumed) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pool.ReleaseFor(ev.Buffer, ev.Session)

	if e.closed || e.sess == nil || ev.Session != e.sess.id || e.state != Playing {
		return
	}

	e.fillLocked()
}

// Play stops whatever is open and starts track i from the beginning.
func (e *Engine) Play(i int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	return e.playLocked(i)
}

func (e *Engine) playLocked(i int) error {
	track, err := e.catalog.Track(i)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoSuchTrack, err)
	}

	e.stopLocked()

	e.track = i
	e.lastErr = nil
	e.lastID++

	sess, err := openSession(e.lastID, track, e.opts.Registry, e.opts.Format)
	if err != nil {
		e.lastErr = err
		e.log.Error("open failed", slog.String("track", track.Name()), slog.Any("error", err))
		return err
	}

	e.sess = sess
	e.state = Playing
	e.stats.Sessions++
	e.sink.SetPaused(false)

	e.log.Info("playing",
		slog.String("track", track.Name()),
		slog.String("format", sess.format),
		slog.Uint64("session", sess.id))

	e.fillLocked()
	return nil
}

// fillLocked decodes into every free buffer while the session lasts.
func (e *Engine) fillLocked() {
	for e.state == Playing && e.sess != nil {
		buf := e.pool.Acquire()
		if buf == nil {
			return
		}

		if !e.refillLocked(buf) {
			return
		}
	}
}

func (e *Engine) refillLocked(buf *pcm.Buffer) bool {
	start := time.Now()
	n, err := e.sess.decode(buf, e.scratch)
	e.observeRefill(time.Since(start))

	if err != nil {
		e.pool.Release(buf.Index)
		e.lastErr = err
		e.log.Error("decode failed", slog.Uint64("session", e.sess.id), slog.Any("error", err))
		e.stopLocked()
		return false
	}

	if n == 0 {
		e.pool.Release(buf.Index)
		e.endOfStreamLocked()
		return false
	}

	if err := e.sink.Submit(buf); err != nil {
		e.pool.Release(buf.Index)
		e.lastErr = fmt.Errorf("%w: %w", ErrSink, err)
		e.log.Error("submit failed", slog.Any("error", err))
		e.stopLocked()
		return false
	}

	e.stats.Submitted++
	return true
}

func (e *Engine) observeRefill(d time.Duration) {
	e.stats.MaxRefill = max(e.stats.MaxRefill, d)
	if d > e.quantum {
		e.stats.SlowRefills++
		e.log.Warn("slow refill", slog.Duration("took", d), slog.Duration("quantum", e.quantum))
	}
}

// endOfStreamLocked closes the session but leaves queued buffers with the
// sink so the tail of the track still plays.
func (e *Engine) endOfStreamLocked() {
	id, produced := e.sess.id, e.sess.framesOut > 0
	e.closeSessionLocked()
	e.state = Stopped

	e.log.Info("end of track", slog.Int("track", e.track), slog.Uint64("session", id))

	if !e.opts.AutoAdvance || !produced || e.advanceDepth >= e.catalog.Len() {
		return
	}

	e.advanceDepth++
	defer func() { e.advanceDepth-- }()

	next := (e.track + 1) % e.catalog.Len()
	if err := e.playLocked(next); err != nil {
		e.log.Warn("auto-advance failed", slog.Int("track", next), slog.Any("error", err))
	}
}

func (e *Engine) closeSessionLocked() {
	if e.sess == nil {
		return
	}

	if err := e.sess.close(); err != nil {
		e.log.Warn("closing session", slog.Uint64("session", e.sess.id), slog.Any("error", err))
	}
	e.log.Debug("session closed", slog.Uint64("session", e.sess.id))
	e.sess = nil
}

// Stop closes the session and discards everything queued on the sink.
// Calling it when already stopped only flushes the sink again.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopLocked()
}

func (e *Engine) stopLocked() {
	e.closeSessionLocked()
	e.state = Stopped

	if e.closed {
		return
	}

	// the sink holds no buffer after Reset returns
	e.sink.Reset()
	e.sink.SetPaused(false)
	e.pool.ReleaseAll()
}

func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pauseLocked()
}

func (e *Engine) pauseLocked() {
	if e.state != Playing {
		return
	}

	e.state = Paused
	e.sink.SetPaused(true)
	e.log.Debug("paused", slog.Int("track", e.track))
}

func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.resumeLocked()
}

func (e *Engine) resumeLocked() {
	if e.state != Paused {
		return
	}

	e.state = Playing
	e.sink.SetPaused(false)
	e.log.Debug("resumed", slog.Int("track", e.track))

	// buffers consumed just before the pause came back without a refill
	e.fillLocked()
}

// TogglePause pauses when playing and resumes when paused.
func (e *Engine) TogglePause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case Playing:
		e.pauseLocked()
	case Paused:
		e.resumeLocked()
	}
}

// Seek moves the decode position by delta, clamped to the track. Audio
// already queued on the sink still plays. Decoders land on the nearest
// frame they can decode from, so the result is approximate.
func (e *Engine) Seek(delta time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	if e.state == Stopped || e.sess == nil {
		return nil
	}

	if err := e.sess.seek(delta); err != nil {
		if !errors.Is(err, ErrSeekUnsupported) {
			e.log.Warn("seek failed", slog.Duration("delta", delta), slog.Any("error", err))
		}
		return err
	}

	e.log.Debug("seek", slog.Duration("delta", delta), slog.Duration("position", e.sess.position()))
	return nil
}

// SwitchTrack plays the track direction steps away from the current one,
// wrapping around the catalog.
func (e *Engine) SwitchTrack(direction int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}

	n := e.catalog.Len()
	next := ((e.track+direction)%n + n) % n
	return e.playLocked(next)
}

func (e *Engine) TransportState() TransportState {
	e.mu.Lock()
	defer e.mu.Unlock()

	ts := TransportState{
		Track: e.track,
		State: e.state,
		Err:   e.lastErr,
	}

	if t, err := e.catalog.Track(e.track); err == nil {
		ts.Name = t.Name()
	}

	if e.sess != nil {
		ts.Position = e.sess.position()
		ts.Length = e.sess.length()
	}

	return ts
}

func (e *Engine) Stats() Stats {
	e.mu.Lock()
	st := e.stats
	e.mu.Unlock()

	st.Underruns = e.sink.Underruns()
	return st
}

func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

func (e *Engine) Format() pcm.Format { return e.opts.Format }

// Close stops playback, ends event delivery and closes the sink. Later
// control calls return ErrClosed or do nothing.
func (e *Engine) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.stopLocked()
	e.closed = true
	e.mu.Unlock()

	close(e.done)
	e.wg.Wait()

	if err := e.sink.Close(); err != nil {
		return fmt.Errorf("closing sink: %w", err)
	}
	return nil
}
