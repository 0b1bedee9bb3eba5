// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrUnknownFormat is returned when a stream's container cannot be detected.
	ErrUnknownFormat = errors.New("unknown audio format")

	// ErrUnsupportedFormat is returned when no decoder is registered for a format.
	ErrUnsupportedFormat = errors.New("no decoder registered for format")

	// ErrUnsupportedChannels is returned when Conform cannot map the channel layout.
	ErrUnsupportedChannels = errors.New("unsupported channel conversion")
)
