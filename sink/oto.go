// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package sink

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/ik5/trackdeck/pcm"
)

// Oto plays through the system device with ebitengine/oto. oto allows one
// context per process, so only one Oto sink can be opened.
type Oto struct {
	*queue

	mu     sync.Mutex
	ctx    *oto.Context
	player *oto.Player
}

func NewOto() (*Oto, error) {
	return &Oto{queue: newQueue()}, nil
}

func (o *Oto) SetFormat(format pcm.Format) error {
	if err := o.setFormat(format); err != nil {
		return err
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   format.SampleRate,
		ChannelCount: format.Channels,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		o.clearFormat()
		return fmt.Errorf("opening oto context: %w", err)
	}
	<-ready

	o.mu.Lock()
	defer o.mu.Unlock()

	o.ctx = ctx
	o.player = ctx.NewPlayer(o)
	o.player.Play()
	return nil
}

// Read is pulled by the oto player; it never blocks on an empty queue.
func (o *Oto) Read(p []byte) (int, error) {
	return o.read(p), nil
}

func (o *Oto) Close() error {
	if !o.close() {
		return nil
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.player != nil {
		err := o.player.Close()
		o.player = nil
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}
