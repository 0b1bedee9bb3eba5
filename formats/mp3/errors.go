// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

var (
	// ErrNotMP3 indicates no decodable MPEG audio frame was found.
	ErrNotMP3 = errors.New("not an MP3 stream")

	// ErrCorruptStream indicates decoding failed mid-stream.
	ErrCorruptStream = errors.New("corrupt MP3 stream")

	// ErrNotSeekable indicates the input reader does not implement io.Seeker.
	ErrNotSeekable = errors.New("MP3 input is not seekable")

	ErrClosed = errors.New("source is closed")
)
