// SPDX-License-Identifier: EPL-2.0

package trackdeck

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/trackdeck/audio"
	"github.com/ik5/trackdeck/formats/wav"
	"github.com/ik5/trackdeck/pcm"
)

// maxEmptyReads is how many (0, nil) reads in a row end a render.
const maxEmptyReads = 4

// Render converts src to format and collects every sample.
//
// The pipeline is the one the player uses: downmix, resample with cubic
// interpolation, upmix. The returned samples are interleaved float32 in
// [-1, 1] at format.SampleRate with format.Channels channels. bufferSize is
// the read size in samples; values below one frame fall back to 4096.
//
// Render does not close src.
func Render(src audio.Source, format pcm.Format, bufferSize int) ([]float32, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	out, err := audio.Conform(src, format.SampleRate, format.Channels)
	if err != nil {
		return nil, err
	}

	if bufferSize < format.Channels {
		bufferSize = 4096
	}
	bufferSize -= bufferSize % format.Channels

	// Estimate ~2 seconds up front and let append grow it.
	samples := make([]float32, 0, format.SampleRate*format.Channels*2)
	buf := make([]float32, bufferSize)

	for empty := 0; empty < maxEmptyReads; {
		n, err := out.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return samples, fmt.Errorf("%w", err)
		}

		if n == 0 {
			empty++
		} else {
			empty = 0
		}
	}

	return samples, nil
}

// RenderWAV renders src to format and writes it to w as a 16-bit PCM WAV
// stream.
func RenderWAV(w io.Writer, src audio.Source, format pcm.Format) error {
	samples, err := Render(src, format, 4096)
	if err != nil {
		return err
	}

	return wav.WriteWAV16(w, format, samples)
}
