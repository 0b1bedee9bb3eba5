// SPDX-License-Identifier: EPL-2.0

package sink

import "errors"

var (
	ErrUnknownBackend = errors.New("unknown audio backend")

	// ErrBackendUnavailable is returned for device backends in headless builds.
	ErrBackendUnavailable = errors.New("audio backend not available in this build")

	ErrFormatNotSet   = errors.New("sink format not set")
	ErrFormatSet      = errors.New("sink format already set")
	ErrUnsupportedFmt = errors.New("unsupported sink format")
	ErrClosed         = errors.New("sink is closed")
	ErrNilBuffer      = errors.New("nil buffer")
)
