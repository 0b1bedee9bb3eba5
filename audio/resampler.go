// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/trackdeck/utils"
)

// Resampler streams from src to target sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// A one-pole low-pass filter is applied when downsampling.
type Resampler struct {
	src      Source
	dstRate  float64
	ratio    float64 // source frames per output frame
	channels int

	// frames[0] = t-1, frames[1] = t0, frames[2] = t+1, frames[3] = t+2
	frames   [4][]float32
	hasFrame [4]bool

	// fractional position between frames[1] and frames[2]
	pos float64

	srcBuf []float32
	eof    bool

	filterState []float32
	useFilter   bool
	filterAlpha float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:         src,
		dstRate:     float64(dstRate),
		ratio:       ratio,
		channels:    channels,
		srcBuf:      make([]float32, channels),
		useFilter:   ratio > 1.0,
		filterAlpha: 0.5,
		filterState: make([]float32, channels),
	}

	for i := range r.frames {
		r.frames[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }
func (r *Resampler) Close() error    { return closeSource(r.src) }

// Reset forgets interpolation history so the next read primes from the
// source's current position.
func (r *Resampler) Reset() {
	r.hasFrame = [4]bool{}
	r.pos = 0
	r.eof = false
	clear(r.filterState)
	resetSource(r.src)
}

// readFrame pulls one source frame into dst, filtered when downsampling.
func (r *Resampler) readFrame(dst []float32) (bool, error) {
	n, err := r.src.ReadSamples(r.srcBuf)
	got := n > 0
	if got {
		copy(dst, r.srcBuf[:n])
		if r.useFilter {
			for c := range r.channels {
				dst[c] = r.filterAlpha*dst[c] + (1-r.filterAlpha)*r.filterState[c]
				r.filterState[c] = dst[c]
			}
		}
	}

	if err == io.EOF {
		r.eof = true
		return got, nil
	}
	if err != nil {
		return got, fmt.Errorf("%w", err)
	}

	return got, nil
}

// prime fills the four-frame window, repeating the last frame when the
// source is shorter than the window.
func (r *Resampler) prime() error {
	for i := range r.frames {
		if r.eof {
			if i == 0 {
				return io.EOF
			}
			copy(r.frames[i], r.frames[i-1])
			r.hasFrame[i] = true
			continue
		}

		if i == 0 && r.useFilter {
			// seed the filter with the first frame to avoid a warm-up ramp
			n, err := r.src.ReadSamples(r.srcBuf)
			if n > 0 {
				copy(r.frames[0], r.srcBuf[:n])
				copy(r.filterState, r.srcBuf[:n])
				r.hasFrame[0] = true
			}
			if err == io.EOF {
				r.eof = true
			} else if err != nil {
				return fmt.Errorf("%w", err)
			}
			if n == 0 && r.eof {
				return io.EOF
			}
			continue
		}

		got, err := r.readFrame(r.frames[i])
		if err != nil {
			return err
		}
		if !got {
			if i == 0 {
				return io.EOF
			}
			copy(r.frames[i], r.frames[i-1])
		}
		r.hasFrame[i] = true
	}

	return nil
}

// advance shifts the window by one frame.
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	r.frames[0], r.frames[1], r.frames[2], r.frames[3] = r.frames[1], r.frames[2], r.frames[3], r.frames[0]
	r.hasFrame[0], r.hasFrame[1], r.hasFrame[2] = r.hasFrame[1], r.hasFrame[2], r.hasFrame[3]

	got, err := r.readFrame(r.frames[3])
	if err != nil {
		return err
	}
	r.hasFrame[3] = got

	if !got && r.eof {
		return io.EOF
	}

	return nil
}

// ReadSamples produces dst samples at the target rate.
// dst length should be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.hasFrame[1] {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	need := len(dst) / r.channels

	for written < need {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF && written == 0 {
					return 0, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.hasFrame[1] || !r.hasFrame[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		alpha := float32(r.pos)
		for c := range r.channels {
			y1 := r.frames[1][c]
			y2 := r.frames[2][c]
			y0, y3 := y1, y2
			if r.hasFrame[0] {
				y0 = r.frames[0][c]
			}
			if r.hasFrame[3] {
				y3 = r.frames[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
