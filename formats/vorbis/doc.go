// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams.
//
// This package uses github.com/jfreymuth/oggvorbis. Output is interleaved
// float32 at the stream's own rate and channel count:
//
//	[L0, R0, L1, R1, L2, R2, ...]
//
// When the input passed to Decode also implements io.Seeker (for example a
// bytesource.Memory over a bundled track), the returned source implements
// audio.Seeker: Length reports the total frame count and SeekFrame jumps to
// a frame position.
//
//	src, err := vorbis.Decoder{}.Decode(bytesource.NewMemory(data))
//	if err != nil {
//	    // not a vorbis stream (vorbis.ErrNotVorbis)
//	}
//	seeker := src.(audio.Seeker)
//	_ = seeker.SeekFrame(int64(src.SampleRate()) * 30) // jump to 0:30
//
// A packet that fails to decode mid-stream surfaces as ErrCorruptStream.
// Callers should treat it as terminal for the stream.
package vorbis
