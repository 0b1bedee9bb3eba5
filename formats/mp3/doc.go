// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III streams.
//
// This package uses github.com/hajimehoshi/go-mp3, which always produces
// stereo 16-bit PCM; the source converts it to float32 in [-1.0, 1.0).
//
//	src, err := mp3.Decoder{}.Decode(bytesource.NewMemory(data))
//
// Given an io.Seeker input the source also implements audio.Seeker. Seeking
// lands on the requested frame, but go-mp3 has to decode from the enclosing
// MPEG frame, so a seek costs up to one frame of decoding.
//
// Reads are frame-aligned: bytes of an incomplete stereo frame are kept and
// prepended to the next read.
package mp3
