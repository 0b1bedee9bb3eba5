// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"errors"
	"testing"
	"time"

	"github.com/ik5/trackdeck/pcm"
)

func TestNew(t *testing.T) {
	t.Parallel()

	s, err := New("Clock")
	if err != nil {
		t.Fatalf("New(clock) error = %v", err)
	}
	if _, ok := s.(*Clock); !ok {
		t.Errorf("New(clock) = %T, want *Clock", s)
	}
	_ = s.Close()

	if _, err := New("pulse"); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("New(pulse) error = %v, want ErrUnknownBackend", err)
	}
}

func TestClock_ConsumesInRealTime(t *testing.T) {
	t.Parallel()

	c := NewClock()
	defer c.Close()

	format := pcm.Format{SampleRate: 8000, Channels: 1, BitDepth: 16}
	if err := c.SetFormat(format); err != nil {
		t.Fatalf("SetFormat() error = %v", err)
	}

	// 400 frames at 8 kHz is 50ms of audio
	start := time.Now()
	_ = c.Submit(&pcm.Buffer{Index: 3, Session: 7, Data: make([]byte, 400*format.FrameSize())})

	select {
	case ev := <-c.Events():
		if ev != (BufferConsumed{Session: 7, Buffer: 3}) {
			t.Errorf("event = %+v, want session 7 buffer 3", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Clock never consumed the buffer")
	}

	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("buffer consumed after %v, faster than real time", elapsed)
	}
}

func TestClock_CloseIdempotent(t *testing.T) {
	t.Parallel()

	c := NewClock()
	_ = c.SetFormat(pcm.CD)

	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := c.Submit(&pcm.Buffer{Data: make([]byte, 4)}); !errors.Is(err, ErrClosed) {
		t.Errorf("Submit() after Close error = %v, want ErrClosed", err)
	}
}

func TestClock_SetFormatTwice(t *testing.T) {
	t.Parallel()

	c := NewClock()
	defer c.Close()

	_ = c.SetFormat(pcm.CD)
	if err := c.SetFormat(pcm.CD); !errors.Is(err, ErrFormatSet) {
		t.Errorf("second SetFormat() error = %v, want ErrFormatSet", err)
	}
}
