// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes Audio Interchange File Format files.
//
// Decoding goes through github.com/go-audio/aiff. Big-endian PCM at 16 or
// 24 bits is accepted with any channel count and rate; samples come out as
// float32 normalized to [-1.0, 1.0).
//
//	src, err := aiff.Decoder{}.Decode(file)
//
// go-audio requires an io.ReadSeeker. Plain readers are read fully into a
// bytesource.Memory first, which is fine for the track sizes a player keeps
// around but not for long recordings.
//
// AIFF sources do not implement audio.Seeker.
package aiff
