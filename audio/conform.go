// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Conform wraps src so that it produces samples at rate with the given
// channel count. Downmixing runs before and upmixing after rate conversion,
// so the resampler always works on the narrower layout.
//
// Supported channel mappings are identity, N->1 (MonoMixer) and 1->N
// (Upmixer).
func Conform(src Source, rate, channels int) (Source, error) {
	if rate <= 0 || channels <= 0 {
		return nil, fmt.Errorf("%w: %d Hz, %d ch", ErrUnsupportedChannels, rate, channels)
	}

	in := src.Channels()
	if in != channels && in != 1 && channels != 1 {
		return nil, fmt.Errorf("%w: %d -> %d", ErrUnsupportedChannels, in, channels)
	}

	out := src
	if channels == 1 && in > 1 {
		out = NewMonoMixer(out)
	}

	if out.SampleRate() != rate {
		out = NewResampler(out, rate)
	}

	if in == 1 && channels > 1 {
		out = NewUpmixer(out, channels)
	}

	return out, nil
}
