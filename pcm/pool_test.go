// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"testing"
)

func TestNewPool_Sizes(t *testing.T) {
	t.Parallel()

	p, err := NewPool(CD, 1024, 2)
	if err != nil {
		t.Fatalf("NewPool() error = %v", err)
	}

	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}

	b := p.Acquire()
	if cap(b.Data) != 1024*4 {
		t.Errorf("cap(Data) = %d, want %d", cap(b.Data), 1024*4)
	}
	if len(b.Data) != 0 {
		t.Errorf("len(Data) = %d, want 0", len(b.Data))
	}
}

func TestNewPool_InvalidArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  Format
		quantum int
		count   int
		want    error
	}{
		{"zero rate", Format{0, 2, 16}, 1024, 2, ErrInvalidSampleRate},
		{"zero channels", Format{44100, 0, 16}, 1024, 2, ErrInvalidChannels},
		{"8-bit", Format{44100, 2, 8}, 1024, 2, ErrOnlyPCM16Supported},
		{"zero quantum", CD, 0, 2, ErrInvalidQuantum},
		{"zero buffers", CD, 1024, 0, ErrInvalidPoolSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewPool(tt.format, tt.quantum, tt.count)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewPool() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPool_AcquireRelease(t *testing.T) {
	t.Parallel()

	p, _ := NewPool(CD, 16, 2)

	a := p.Acquire()
	b := p.Acquire()
	if a == nil || b == nil {
		t.Fatal("Acquire() returned nil with free buffers")
	}
	if a.Index == b.Index {
		t.Fatal("Acquire() handed out the same buffer twice")
	}

	if c := p.Acquire(); c != nil {
		t.Errorf("Acquire() = buffer %d, want nil when exhausted", c.Index)
	}
	if p.InFlight() != 2 {
		t.Errorf("InFlight() = %d, want 2", p.InFlight())
	}

	p.Release(a.Index)
	p.Release(a.Index)
	p.Release(99)

	if p.InFlight() != 1 {
		t.Errorf("InFlight() = %d, want 1", p.InFlight())
	}

	again := p.Acquire()
	if again != a {
		t.Error("Acquire() did not reuse the released buffer")
	}

	p.ReleaseAll()
	if p.InFlight() != 0 {
		t.Errorf("InFlight() after ReleaseAll = %d, want 0", p.InFlight())
	}
}

func TestPool_AcquireResetsBuffer(t *testing.T) {
	t.Parallel()

	p, _ := NewPool(CD, 4, 1)

	b := p.Acquire()
	b.Session = 7
	b.Frames = 4
	b.Data = append(b.Data, make([]byte, 16)...)
	p.Release(b.Index)

	b = p.Acquire()
	if b.Session != 0 || b.Frames != 0 || len(b.Data) != 0 {
		t.Errorf("Acquire() = {Session:%d Frames:%d len:%d}, want zeroed", b.Session, b.Frames, len(b.Data))
	}
}

func TestPool_ReleaseFor(t *testing.T) {
	t.Parallel()

	p, _ := NewPool(CD, 4, 2)

	b := p.Acquire()
	b.Session = 3

	if p.ReleaseFor(b.Index, 2) {
		t.Error("ReleaseFor() released a buffer owned by another session")
	}
	if p.ReleaseFor(5, 3) {
		t.Error("ReleaseFor() released an unknown index")
	}
	if !p.ReleaseFor(b.Index, 3) {
		t.Fatal("ReleaseFor() = false for the owning session")
	}
	if p.ReleaseFor(b.Index, 3) {
		t.Error("ReleaseFor() released a free buffer twice")
	}
	if p.InFlight() != 0 {
		t.Errorf("InFlight() = %d, want 0", p.InFlight())
	}
}
