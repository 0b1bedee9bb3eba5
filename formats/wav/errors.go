// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnsupportedBitDepth  = errors.New("only 16-bit and 24-bit PCM supported")
	ErrUnsupportedWavChunks = errors.New("unsupported WAV chunks")
	ErrCorruptStream        = errors.New("corrupt WAV data")
	ErrInvalidFormat        = errors.New("invalid WAV output format")
)
