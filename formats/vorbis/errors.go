// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	// ErrNotVorbis indicates the stream is not an Ogg Vorbis stream or its headers are invalid.
	ErrNotVorbis = errors.New("not an Ogg Vorbis stream")

	// ErrCorruptStream indicates a packet failed to decode mid-stream.
	ErrCorruptStream = errors.New("corrupt Ogg Vorbis stream")

	// ErrNotSeekable indicates the input reader does not implement io.Seeker.
	ErrNotSeekable = errors.New("Ogg Vorbis input is not seekable")

	ErrClosed = errors.New("source is closed")
)
