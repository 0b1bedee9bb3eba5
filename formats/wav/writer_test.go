// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/ik5/trackdeck/pcm"
)

func TestHeader(t *testing.T) {
	t.Parallel()

	h, err := Header(pcm.CD, 400)
	if err != nil {
		t.Fatalf("Header() error = %v", err)
	}

	if len(h) != headerSize {
		t.Fatalf("len(Header()) = %d, want %d", len(h), headerSize)
	}

	checks := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"riff size", binary.LittleEndian.Uint32(h[4:8]), 436},
		{"format", uint32(binary.LittleEndian.Uint16(h[20:22])), 1},
		{"channels", uint32(binary.LittleEndian.Uint16(h[22:24])), 2},
		{"sample rate", binary.LittleEndian.Uint32(h[24:28]), 44100},
		{"byte rate", binary.LittleEndian.Uint32(h[28:32]), 176400},
		{"block align", uint32(binary.LittleEndian.Uint16(h[32:34])), 4},
		{"bits", uint32(binary.LittleEndian.Uint16(h[34:36])), 16},
		{"data size", binary.LittleEndian.Uint32(h[40:44]), 400},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}

	for off, tag := range map[int]string{0: "RIFF", 8: "WAVE", 12: "fmt ", 36: "data"} {
		if got := string(h[off : off+4]); got != tag {
			t.Errorf("tag at %d = %q, want %q", off, got, tag)
		}
	}
}

func TestHeader_InvalidFormat(t *testing.T) {
	t.Parallel()

	for _, f := range []pcm.Format{
		{SampleRate: 0, Channels: 2, BitDepth: 16},
		{SampleRate: 44100, Channels: 0, BitDepth: 16},
		{SampleRate: 44100, Channels: 2, BitDepth: 24},
	} {
		if _, err := Header(f, 0); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Header(%v) error = %v, want ErrInvalidFormat", f, err)
		}
	}
}

func TestWriteWAV16_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, pcm.CD, []float32{0.1, 0.2, 0.3}); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	if got, want := buf.Len(), headerSize+4; got != want {
		t.Errorf("output length = %d, want %d", got, want)
	}
}

type shortWriter struct{ limit int }

func (w *shortWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		return 0, errors.New("short write")
	}
	w.limit -= len(p)
	return len(p), nil
}

func TestWriteWAV16_WriterError(t *testing.T) {
	t.Parallel()

	if err := WriteWAV16(&shortWriter{limit: 10}, pcm.CD, []float32{0, 0}); err == nil {
		t.Error("WriteWAV16() on failing header write returned nil")
	}
	if err := WriteWAV16(&shortWriter{limit: headerSize}, pcm.CD, []float32{0, 0}); err == nil {
		t.Error("WriteWAV16() on failing data write returned nil")
	}
}
