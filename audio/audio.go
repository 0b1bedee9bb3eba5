// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"slices"
	"sync"
)

// Source is a stream of interleaved float32 PCM samples.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources. Calling it twice is allowed.
	Close() error
}

// Seeker is implemented by sources that can reposition inside the decoded
// stream. Positions are counted in frames (one sample per channel) at the
// source's own sample rate.
type Seeker interface {
	// Position returns the frame the next ReadSamples call starts at.
	Position() int64
	// Length returns the total number of frames, or a value <= 0 when unknown.
	Length() int64
	// SeekFrame moves to frame. Compressed formats may land on the nearest
	// decodable frame instead of the exact one.
	SeekFrame(frame int64) error
}

// Decoder constructs a Source from an input reader. Decoders that can seek
// use r as an io.Seeker when it implements one.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats lists the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	out := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		out = append(out, k)
	}
	slices.Sort(out)

	return out
}

// Lookup resolves the decoder for format, sniffing header when format is
// empty.
func (r *Registry) Lookup(format string, header []byte) (Decoder, string, error) {
	if format == "" {
		format = Sniff(header)
		if format == "" {
			return nil, "", ErrUnknownFormat
		}
	}

	d, ok := r.Get(format)
	if !ok {
		return nil, format, ErrUnsupportedFormat
	}

	return d, format, nil
}
