// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/trackdeck/pcm"
)

const headerSize = 44

// Header returns the canonical 44-byte RIFF header for a 16-bit PCM stream
// of the given format holding dataSize bytes of sample data.
func Header(format pcm.Format, dataSize uint32) ([]byte, error) {
	if err := format.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	blockAlign := uint16(format.FrameSize())
	header := make([]byte, headerSize)

	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], uint16(format.Channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(format.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(format.SampleRate)*uint32(blockAlign))
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], uint16(format.BitDepth))

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	return header, nil
}

// WriteWAV16 writes interleaved float32 samples as a 16-bit PCM WAV stream.
// w does not need to seek, so stdout works.
func WriteWAV16(w io.Writer, format pcm.Format, samples []float32) error {
	samples = samples[:len(samples)-len(samples)%max(format.Channels, 1)]

	header, err := Header(format, uint32(len(samples)*2))
	if err != nil {
		return err
	}

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	const chunk = 8192
	buf := make([]byte, min(len(samples), chunk)*2)

	for i := 0; i < len(samples); i += chunk {
		end := min(i+chunk, len(samples))
		n := pcm.EncodeFloat32(buf, samples[i:end])

		if _, err := w.Write(buf[:n]); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
