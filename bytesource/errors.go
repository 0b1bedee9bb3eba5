// SPDX-License-Identifier: EPL-2.0

package bytesource

import "errors"

var (
	// ErrSeekOutOfRange is returned when a seek would leave the cursor outside [0, Size].
	ErrSeekOutOfRange = errors.New("seek out of range")

	// ErrInvalidWhence is returned for a whence other than io.SeekStart, io.SeekCurrent or io.SeekEnd.
	ErrInvalidWhence = errors.New("invalid whence")

	// ErrClosed is returned by operations on a closed source.
	ErrClosed = errors.New("byte source is closed")
)
