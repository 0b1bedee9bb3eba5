// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides audio sources and decoders for tests.
package audiotest

import (
	"io"
	"math"
	"sync"
)

// MockSource generates audio from a waveform function.
// It implements audio.Source and audio.Seeker.
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // frames to generate
	generated    int // frames generated so far
	waveform     func(sample int, channel int) float32

	// Chunk caps the frames returned per ReadSamples call when positive.
	Chunk int
	// FailAfter makes the read with this 1-based index return ErrCorrupt.
	FailAfter int

	mu     sync.Mutex
	reads  int
	closes int
}

// ErrCorrupt is the error MockSource returns when FailAfter triggers.
var ErrCorrupt = io.ErrUnexpectedEOF

func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 { return 0 })
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 { return value })
}

// NewFrameSource emulates a compressed stream of frames packets, each
// decoding to samplesPerFrame frames. Every read returns one packet and the
// read after the last one returns (0, io.EOF).
func NewFrameSource(sampleRate, channels, frames, samplesPerFrame int) *MockSource {
	m := NewConstantSource(sampleRate, channels, frames*samplesPerFrame, 0.25)
	m.Chunk = samplesPerFrame
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }

func (m *MockSource) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closes++
	return nil
}

// Closes reports how many times Close was called.
func (m *MockSource) Closes() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.closes
}

// Reads reports how many times ReadSamples was called.
func (m *MockSource) Reads() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.reads
}

// Rewind moves the generator back to the first frame.
func (m *MockSource) Rewind() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.generated = 0
}

func (m *MockSource) Position() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return int64(m.generated)
}

func (m *MockSource) Length() int64 { return int64(m.totalSamples) }

func (m *MockSource) SeekFrame(frame int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.generated = int(max(0, min(frame, int64(m.totalSamples))))
	return nil
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reads++
	if m.FailAfter > 0 && m.reads >= m.FailAfter {
		return 0, ErrCorrupt
	}

	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)
	if m.Chunk > 0 {
		frames = min(frames, m.Chunk)
	}

	for f := range frames {
		idx := m.generated + f
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(idx, ch)
		}
	}
	m.generated += frames

	return frames * m.channels, nil
}
