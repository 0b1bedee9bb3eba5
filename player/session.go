// SPDX-License-Identifier: EPL-2.0

package player

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/ik5/trackdeck/audio"
	"github.com/ik5/trackdeck/bytesource"
	"github.com/ik5/trackdeck/catalog"
	"github.com/ik5/trackdeck/pcm"
)

// maxEmptyReads bounds how many (0, nil) reads a decode tolerates before it
// treats the source as finished.
const maxEmptyReads = 4

// session is one open decode context bound to one track.
type session struct {
	id     uint64
	track  catalog.Track
	format string

	bytes  bytesource.ByteSource
	raw    audio.Source // decoder output
	out    audio.Source // raw conformed to the sink format
	seeker audio.Seeker // nil when raw cannot seek

	sinkFormat pcm.Format
	framesOut  int64
	eof        bool
	closed     bool
}

func openSession(id uint64, track catalog.Track, reg *audio.Registry, sinkFormat pcm.Format) (*session, error) {
	bs, err := track.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	s, err := decodeSession(id, track, bs, reg, sinkFormat)
	if err != nil {
		_ = bs.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrOpen, track.Name(), err)
	}

	return s, nil
}

func decodeSession(id uint64, track catalog.Track, bs bytesource.ByteSource, reg *audio.Registry, sinkFormat pcm.Format) (*session, error) {
	var header []byte
	if track.Format() == "" {
		header = make([]byte, audio.SniffLen)
		n, err := io.ReadFull(bs, header)
		if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
			return nil, err
		}
		header = header[:n]

		if _, err := bs.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
	}

	dec, format, err := reg.Lookup(track.Format(), header)
	if err != nil {
		return nil, err
	}

	raw, err := dec.Decode(bs)
	if err != nil {
		return nil, err
	}

	out, err := audio.Conform(raw, sinkFormat.SampleRate, sinkFormat.Channels)
	if err != nil {
		_ = raw.Close()
		return nil, err
	}

	s := &session{
		id:         id,
		track:      track,
		format:     format,
		bytes:      bs,
		raw:        raw,
		out:        out,
		sinkFormat: sinkFormat,
	}
	if sk, ok := raw.(audio.Seeker); ok {
		s.seeker = sk
	}

	return s, nil
}

// decode fills buf with up to one quantum and returns the bytes written.
// It returns 0 at end of stream. On error nothing is written to buf.
func (s *session) decode(buf *pcm.Buffer, scratch []float32) (int, error) {
	if s.closed || s.eof {
		return 0, nil
	}

	ch := s.sinkFormat.Channels
	want := min(len(scratch), cap(buf.Data)/2)
	want -= want % ch

	n, empty := 0, 0
	for n < want {
		got, err := s.out.ReadSamples(scratch[n:want])
		n += got

		if errors.Is(err, io.EOF) {
			s.eof = true
			break
		}
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", ErrDecode, s.track.Name(), err)
		}

		if got > 0 {
			empty = 0
			continue
		}
		if empty++; empty >= maxEmptyReads {
			s.eof = true
			break
		}
	}

	n -= n % ch
	written := pcm.EncodeFloat32(buf.Data[:cap(buf.Data)], scratch[:n])
	buf.Data = buf.Data[:written]
	buf.Frames = n / ch
	buf.Session = s.id

	s.framesOut += int64(buf.Frames)
	return written, nil
}

func (s *session) position() time.Duration {
	if s.seeker != nil {
		return frameTime(s.seeker.Position(), s.raw.SampleRate())
	}
	return s.sinkFormat.Duration(s.framesOut)
}

func (s *session) length() time.Duration {
	if s.seeker == nil {
		return 0
	}
	if n := s.seeker.Length(); n > 0 {
		return frameTime(n, s.raw.SampleRate())
	}
	return 0
}

// seek moves the decode position by delta, clamped to [0, length).
func (s *session) seek(delta time.Duration) error {
	if s.seeker == nil {
		return ErrSeekUnsupported
	}

	target := s.seeker.Position() + durationFrames(delta, s.raw.SampleRate())

	if n := s.seeker.Length(); n > 0 && target >= n {
		target = n - 1
	}
	target = max(target, 0)

	if err := s.seeker.SeekFrame(target); err != nil {
		return fmt.Errorf("seeking %s: %w", s.track.Name(), err)
	}

	// drop interpolation history from before the jump
	if r, ok := s.out.(audio.Resetter); ok {
		r.Reset()
	}
	s.eof = false
	return nil
}

// close releases the decoder and the byte source once.
func (s *session) close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	return errors.Join(s.out.Close(), s.bytes.Close())
}

// durationFrames converts d to frames at rate, saturating instead of
// overflowing for very long durations.
func durationFrames(d time.Duration, rate int) int64 {
	if rate <= 0 {
		return 0
	}

	r := int64(rate)
	secs := int64(d / time.Second)
	if secs > math.MaxInt64/(2*r) {
		return math.MaxInt64 / 2
	}
	if secs < math.MinInt64/(2*r) {
		return math.MinInt64 / 2
	}

	return secs*r + int64(d%time.Second)*r/int64(time.Second)
}

func frameTime(frames int64, rate int) time.Duration {
	if rate <= 0 {
		return 0
	}
	return time.Duration(frames) * time.Second / time.Duration(rate)
}
