// SPDX-License-Identifier: EPL-2.0

package catalog

import "errors"

var (
	ErrEmptyName   = errors.New("track name is empty")
	ErrNoData      = errors.New("track has no audio data")
	ErrNoSuchTrack = errors.New("no such track")
	ErrOpen        = errors.New("cannot open track")
	ErrManifest    = errors.New("invalid track manifest")

	// ErrEmpty indicates a directory or bundle with no playable files.
	ErrEmpty = errors.New("no playable tracks")
)
