// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package sink

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/ik5/trackdeck/pcm"
)

const beepLatency = 50 * time.Millisecond

// Beep plays through the gopxl/beep speaker, which is always stereo. Mono
// buffers are duplicated to both sides.
type Beep struct {
	*queue

	channels int
	raw      []byte
	samples  []float32
}

func NewBeep() (*Beep, error) {
	return &Beep{queue: newQueue()}, nil
}

func (b *Beep) SetFormat(format pcm.Format) error {
	if format.Channels > 2 {
		return fmt.Errorf("%w: beep speaker is stereo, got %d channels", ErrUnsupportedFmt, format.Channels)
	}
	if err := b.setFormat(format); err != nil {
		return err
	}

	b.channels = format.Channels

	sr := beep.SampleRate(format.SampleRate)
	if err := speaker.Init(sr, sr.N(beepLatency)); err != nil {
		b.clearFormat()
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	speaker.Play(beep.StreamerFunc(b.stream))
	return nil
}

// stream runs on the speaker goroutine with the speaker lock held.
func (b *Beep) stream(out [][2]float64) (int, bool) {
	n := len(out) * b.channels
	if cap(b.raw) < n*2 {
		b.raw = make([]byte, n*2)
		b.samples = make([]float32, n)
	}

	b.read(b.raw[:n*2])
	pcm.DecodeInt16(b.samples[:n], b.raw[:n*2])

	for i := range out {
		if b.channels == 1 {
			v := float64(b.samples[i])
			out[i] = [2]float64{v, v}
			continue
		}
		out[i] = [2]float64{float64(b.samples[2*i]), float64(b.samples[2*i+1])}
	}

	return len(out), true
}

func (b *Beep) Close() error {
	if !b.close() {
		return nil
	}

	speaker.Clear()
	speaker.Close()
	return nil
}
