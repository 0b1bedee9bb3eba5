// SPDX-License-Identifier: EPL-2.0

package player

import (
	"fmt"
	"log/slog"

	"github.com/ik5/trackdeck/audio"
	"github.com/ik5/trackdeck/pcm"
)

const (
	DefaultQuantumFrames = 1024
	DefaultBuffers       = 2
)

type Options struct {
	// Format is the sink format; every track is converted to it.
	Format pcm.Format
	// QuantumFrames is the size of one buffer in frames.
	QuantumFrames int
	// Buffers is the pool size. 2 gives double buffering.
	Buffers int
	// AutoAdvance starts the next track when one ends, wrapping after the
	// last one.
	AutoAdvance bool
	// Registry resolves track formats to decoders. Required.
	Registry *audio.Registry
	Logger   *slog.Logger
}

// DefaultOptions returns 44.1 kHz stereo, 1024-frame quanta, double
// buffering and no auto-advance. Registry is left for the caller.
func DefaultOptions() Options {
	return Options{
		Format:        pcm.CD,
		QuantumFrames: DefaultQuantumFrames,
		Buffers:       DefaultBuffers,
	}
}

func (o *Options) fillDefaults() {
	if o.Format == (pcm.Format{}) {
		o.Format = pcm.CD
	}
	if o.QuantumFrames == 0 {
		o.QuantumFrames = DefaultQuantumFrames
	}
	if o.Buffers == 0 {
		o.Buffers = DefaultBuffers
	}
}

func (o Options) validate() error {
	if err := o.Format.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	if o.QuantumFrames < 0 {
		return fmt.Errorf("%w: quantum %d frames", ErrInvalidOptions, o.QuantumFrames)
	}
	if o.Buffers < 0 {
		return fmt.Errorf("%w: %d buffers", ErrInvalidOptions, o.Buffers)
	}
	if o.Registry == nil {
		return fmt.Errorf("%w: no decoder registry", ErrInvalidOptions)
	}
	return nil
}
