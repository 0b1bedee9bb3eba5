// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/trackdeck/pcm"
)

func encode(t *testing.T, format pcm.Format, samples []float32) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, format, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}
	return buf.Bytes()
}

func readAll(t *testing.T, r io.Reader) ([]float32, int, int) {
	t.Helper()

	src, err := Decoder{}.Decode(r)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	var out []float32
	buf := make([]float32, 6)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	return out, src.SampleRate(), src.Channels()
}

func TestDecoder_Decode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format pcm.Format
		frames int
	}{
		{"mono 8k", pcm.Format{SampleRate: 8000, Channels: 1, BitDepth: 16}, 100},
		{"stereo 44.1k", pcm.CD, 1000},
		{"stereo 48k", pcm.Format{SampleRate: 48000, Channels: 2, BitDepth: 16}, 7},
		{"empty", pcm.CD, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := make([]float32, tt.frames*tt.format.Channels)
			for i := range in {
				in[i] = float32(math.Sin(float64(i) * 0.1))
			}

			out, rate, ch := readAll(t, bytes.NewReader(encode(t, tt.format, in)))

			if rate != tt.format.SampleRate || ch != tt.format.Channels {
				t.Errorf("format = %d Hz %d ch, want %d Hz %d ch", rate, ch, tt.format.SampleRate, tt.format.Channels)
			}
			if len(out) != len(in) {
				t.Fatalf("decoded %d samples, want %d", len(out), len(in))
			}
			for i := range in {
				if math.Abs(float64(out[i]-in[i])) > 1.0/16384 {
					t.Fatalf("sample %d = %v, want ~%v", i, out[i], in[i])
				}
			}
		})
	}
}

// onlyReader hides io.Seeker so Decode has to buffer.
type onlyReader struct{ io.Reader }

func TestDecoder_Decode_NonSeekableInput(t *testing.T) {
	t.Parallel()

	in := []float32{0.5, -0.5, 0.25, -0.25}
	out, _, _ := readAll(t, onlyReader{bytes.NewReader(encode(t, pcm.CD, in))})

	if len(out) != len(in) {
		t.Errorf("decoded %d samples, want %d", len(out), len(in))
	}
}

func TestDecoder_Decode_Rejects(t *testing.T) {
	t.Parallel()

	valid := encode(t, pcm.CD, []float32{0, 0})

	eightBit := bytes.Clone(valid)
	binary.LittleEndian.PutUint16(eightBit[34:36], 8)
	binary.LittleEndian.PutUint16(eightBit[32:34], 2)

	float := bytes.Clone(valid)
	binary.LittleEndian.PutUint16(float[20:22], 3)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrNotWavFile},
		{"text", []byte("definitely not a RIFF header at all, no way"), ErrNotWavFile},
		{"8-bit", eightBit, ErrUnsupportedBitDepth},
		{"ieee float", float, ErrUnsupportedWavLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

type failingReader struct{}

func (failingReader) PCMBuffer(*goaudio.IntBuffer) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestSource_ReadSamples_Corrupt(t *testing.T) {
	t.Parallel()

	src := &source{dec: failingReader{}, sampleRate: 44100, channels: 2, bitDepth: 16}

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, ErrCorruptStream) {
		t.Errorf("ReadSamples() error = %v, want ErrCorruptStream", err)
	}
}

func TestSource_NotSeekable(t *testing.T) {
	t.Parallel()

	src, err := Decoder{}.Decode(bytes.NewReader(encode(t, pcm.CD, []float32{0, 0})))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if _, ok := src.(interface{ SeekFrame(int64) error }); ok {
		t.Error("WAV source unexpectedly implements SeekFrame")
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	var buf bytes.Buffer
	_ = WriteWAV16(&buf, pcm.CD, make([]float32, 44100*2))
	data := buf.Bytes()
	dst := make([]float32, 2048)

	b.ReportAllocs()

	for b.Loop() {
		src, err := Decoder{}.Decode(bytes.NewReader(data))
		if err != nil {
			b.Fatal(err)
		}
		for {
			if _, err := src.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
