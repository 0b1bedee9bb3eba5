// SPDX-License-Identifier: EPL-2.0

//go:build headless

package sink

// Device backends need cgo or system audio libraries; headless builds keep
// only Clock.

func NewOto() (Sink, error) { return nil, ErrBackendUnavailable }

func NewBeep() (Sink, error) { return nil, ErrBackendUnavailable }
