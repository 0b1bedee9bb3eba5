// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/trackdeck/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is the part of oggvorbis.Reader the source uses; tests swap in a mock.
type oggReader interface {
	SampleRate() int
	Channels() int
	// Read returns the number of float32 values decoded (frames * channels).
	Read([]float32) (int, error)
	Position() int64
	Length() int64
	SetPosition(pos int64) error
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	seekable   bool
	closed     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 }

func (s *source) Close() error {
	s.closed = true
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}

	// keep whole frames only
	dst = dst[:len(dst)-len(dst)%s.channels]
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst)
	if err == io.EOF {
		return n, io.EOF
	}
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrCorruptStream, err)
	}

	return n, nil
}

func (s *source) Position() int64 { return s.dec.Position() }

func (s *source) Length() int64 {
	if !s.seekable {
		return -1
	}
	return s.dec.Length()
}

// SeekFrame moves to frame. The underlying decoder bisects ogg pages, so
// the landing point is only as precise as the page granule positions.
func (s *source) SeekFrame(frame int64) error {
	if !s.seekable {
		return ErrNotSeekable
	}

	if err := s.dec.SetPosition(frame); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbis, err)
	}

	_, seekable := r.(io.Seeker)

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		seekable:   seekable,
	}, nil
}
