// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/ik5/trackdeck/utils"
)

// Format describes the PCM layout a sink accepts.
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// CD is the output format of the handheld audio channel: 44.1 kHz stereo PCM16.
var CD = Format{SampleRate: 44100, Channels: 2, BitDepth: 16}

func (f Format) Validate() error {
	if f.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, f.SampleRate)
	}
	if f.Channels <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, f.Channels)
	}
	if f.BitDepth != 16 {
		return fmt.Errorf("%w: %d", ErrOnlyPCM16Supported, f.BitDepth)
	}
	return nil
}

// FrameSize is the number of bytes holding one sample for every channel.
func (f Format) FrameSize() int { return f.Channels * f.BitDepth / 8 }

// Duration returns how long frames take to play.
func (f Format) Duration(frames int64) time.Duration {
	if f.SampleRate <= 0 {
		return 0
	}
	return time.Duration(frames) * time.Second / time.Duration(f.SampleRate)
}

// Frames returns the number of frames played in d, rounded down.
func (f Format) Frames(d time.Duration) int64 {
	return int64(d) * int64(f.SampleRate) / int64(time.Second)
}

func (f Format) String() string {
	return fmt.Sprintf("%d Hz, %d ch, %d-bit", f.SampleRate, f.Channels, f.BitDepth)
}

// EncodeFloat32 writes src as signed 16-bit little-endian samples into dst
// and returns the number of bytes written. Samples that do not fit in dst are
// dropped.
func EncodeFloat32(dst []byte, src []float32) int {
	n := min(len(src), len(dst)/2)
	for i := range n {
		binary.LittleEndian.PutUint16(dst[2*i:], uint16(utils.Float32ToInt16(src[i])))
	}
	return n * 2
}

// DecodeInt16 reads signed 16-bit little-endian samples from src into dst
// as float32 in [-1, 1) and returns the number of samples written.
func DecodeInt16(dst []float32, src []byte) int {
	n := min(len(dst), len(src)/2)
	for i := range n {
		dst[i] = utils.Int16ToFloat32(int16(binary.LittleEndian.Uint16(src[2*i:])))
	}
	return n
}
