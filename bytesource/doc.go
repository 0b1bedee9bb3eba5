// SPDX-License-Identifier: EPL-2.0

// Package bytesource provides seekable, random-access byte providers for
// decoders.
//
// A ByteSource is an io.ReadSeeker with a few extra guarantees that decoders
// relying on custom read/seek callbacks expect:
//   - Read never copies past the end of the backing store and returns
//     (0, io.EOF) once the cursor reaches the end.
//   - Seek rejects any request that would move the cursor outside [0, Size]
//     and leaves the cursor untouched when it does.
//   - Tell reports the cursor without moving it.
//
// Two implementations are provided:
//
//	// Borrow an in-memory payload (no copy is made)
//	src := bytesource.NewMemory(data)
//
//	// Stream from a file on disk
//	src, err := bytesource.OpenFile("track.ogg")
//
// Both can be handed directly to any audio.Decoder.
package bytesource
