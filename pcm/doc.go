// SPDX-License-Identifier: EPL-2.0

// Package pcm holds the fixed-size PCM scratch buffers exchanged between the
// playback engine and an audio sink.
//
// A Pool allocates all of its buffers once. The engine acquires a free buffer,
// fills it with interleaved signed 16-bit little-endian samples and submits it
// to the sink; the buffer stays owned by the sink until the sink reports it
// consumed, at which point the engine releases it back to the pool. Buffers
// are never reallocated, so steady-state playback does not allocate.
package pcm
