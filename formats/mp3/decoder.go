// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/trackdeck/audio"
	"github.com/ik5/trackdeck/pcm"
)

// go-mp3 always emits stereo signed 16-bit little-endian PCM.
const (
	channels  = 2
	frameSize = channels * 2
)

// mp3Reader is the part of gomp3.Decoder the source uses; tests swap in a mock.
type mp3Reader interface {
	Read([]byte) (int, error)
	Seek(offset int64, whence int) (int64, error)
	SampleRate() int
	// Length returns the decoded stream size in bytes, or -1 when unknown.
	Length() int64
}

type source struct {
	dec        mp3Reader
	sampleRate int
	seekable   bool
	buf        []byte
	pos        int64 // bytes of PCM handed out
	pending    []byte
	closed     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) BufSize() int    { return cap(s.buf) / 2 } // sample capacity, not bytes

func (s *source) Close() error {
	s.closed = true
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}

	dst = dst[:len(dst)-len(dst)%channels]
	if len(dst) == 0 {
		return 0, nil
	}

	need := len(dst) * 2
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	// carry over a partial frame from the previous read
	have := copy(s.buf, s.pending)
	s.pending = s.pending[:0]

	n, err := s.dec.Read(s.buf[have:])
	have += n

	whole := have - have%frameSize
	if whole < have {
		s.pending = append(s.pending, s.buf[whole:have]...)
	}
	s.pos += int64(whole)

	samples := pcm.DecodeInt16(dst, s.buf[:whole])

	switch {
	case err == nil:
		return samples, nil
	case err == io.EOF:
		return samples, io.EOF
	default:
		return samples, fmt.Errorf("%w: %w", ErrCorruptStream, err)
	}
}

func (s *source) Position() int64 { return s.pos / frameSize }

func (s *source) Length() int64 {
	if !s.seekable {
		return -1
	}

	n := s.dec.Length()
	if n < 0 {
		return -1
	}
	return n / frameSize
}

// SeekFrame jumps to frame. go-mp3 decodes from the nearest MPEG frame
// boundary and discards the samples before the target.
func (s *source) SeekFrame(frame int64) error {
	if !s.seekable {
		return ErrNotSeekable
	}

	off, err := s.dec.Seek(frame*frameSize, io.SeekStart)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	s.pos = off
	s.pending = s.pending[:0]
	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotMP3, err)
	}

	_, seekable := r.(io.Seeker)

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		seekable:   seekable,
		buf:        make([]byte, 8192),
		pending:    make([]byte, 0, frameSize),
	}, nil
}
