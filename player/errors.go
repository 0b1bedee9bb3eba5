// SPDX-License-Identifier: EPL-2.0

package player

import "errors"

var (
	// ErrOpen means a track could not be opened: unreadable bytes, unknown
	// container or a decoder that rejected the stream. The engine stays
	// Stopped.
	ErrOpen = errors.New("cannot open track")

	// ErrDecode means decoding failed mid-stream. The session is ended and
	// never retried.
	ErrDecode = errors.New("decode failed")

	ErrNoSuchTrack     = errors.New("no such track")
	ErrSeekUnsupported = errors.New("track does not support seeking")
	ErrSink            = errors.New("audio sink rejected buffer")
	ErrClosed          = errors.New("engine is closed")
	ErrEmptyCatalog    = errors.New("catalog has no tracks")
	ErrInvalidOptions  = errors.New("invalid engine options")
)
