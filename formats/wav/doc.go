// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE PCM files.
//
// Decoding goes through github.com/go-audio/wav. Uncompressed PCM at 16 or
// 24 bits is accepted, any channel count and any sample rate. Samples come
// out as float32 normalized to [-1.0, 1.0).
//
//	src, err := wav.Decoder{}.Decode(file)
//
// WAV sources do not implement audio.Seeker, so a player cannot seek within
// them; they always play from the start.
//
// # Writing
//
// WriteWAV16 emits a canonical 44-byte header followed by 16-bit samples.
// The data size must be known up front, which keeps the writer usable on
// pipes:
//
//	err := wav.WriteWAV16(os.Stdout, pcm.CD, samples)
package wav
