// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	ErrInvalidSampleRate  = errors.New("sample rate must be positive")
	ErrInvalidChannels    = errors.New("channel count must be positive")
	ErrOnlyPCM16Supported = errors.New("only 16-bit PCM output is supported")
	ErrInvalidQuantum     = errors.New("quantum must hold at least one frame")
	ErrInvalidPoolSize    = errors.New("pool needs at least one buffer")
)
