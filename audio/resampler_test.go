// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/trackdeck/audio"
	"github.com/ik5/trackdeck/internal/audiotest"
)

func TestResampler_Lengths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		srcRate int
		dstRate int
	}{
		{"downsample 44.1k to 16k", 44100, 16000},
		{"downsample 48k to 44.1k", 48000, 44100},
		{"upsample 22.05k to 44.1k", 22050, 44100},
		{"upsample 8k to 48k", 8000, 48000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewSineSource(tt.srcRate, 1, tt.srcRate, 440)
			r := audio.NewResampler(src, tt.dstRate)

			if r.SampleRate() != tt.dstRate {
				t.Fatalf("SampleRate() = %d, want %d", r.SampleRate(), tt.dstRate)
			}

			got := len(drain(t, r, 4096))
			tolerance := tt.dstRate / 100
			if got < tt.dstRate-tolerance || got > tt.dstRate+tolerance {
				t.Errorf("samples = %d, want ≈%d (±%d)", got, tt.dstRate, tolerance)
			}
		})
	}
}

func TestResampler_StaysInRange(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(44100, 2, 4410, 1000)
	r := audio.NewResampler(src, 48000)

	for i, s := range drain(t, r, 2048) {
		if math.Abs(float64(s)) > 1.1 {
			t.Fatalf("sample %d = %v, overshoots", i, s)
		}
	}
}

func TestResampler_InvalidDst(t *testing.T) {
	t.Parallel()

	r := audio.NewResampler(audiotest.NewSilentSource(44100, 2, 100), 22050)

	if _, err := r.ReadSamples(make([]float32, 3)); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	r := audio.NewResampler(audiotest.NewSilentSource(44100, 1, 0), 22050)

	n, err := r.ReadSamples(make([]float32, 16))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestResampler_ResetAfterSeek(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(22050, 1, 22050, 220)
	r := audio.NewResampler(src, 44100)

	buf := make([]float32, 1024)
	if _, err := r.ReadSamples(buf); err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if err := src.SeekFrame(0); err != nil {
		t.Fatalf("SeekFrame() error = %v", err)
	}
	r.Reset()

	remaining := len(drain(t, r, 1024))
	if remaining < 44100-500 {
		t.Errorf("after Reset read %d samples, want ≈44100", remaining)
	}
}

func BenchmarkResampler_ReadSamples(b *testing.B) {
	src := audiotest.NewSineSource(48000, 2, 48000*60, 440)
	r := audio.NewResampler(src, 44100)
	buf := make([]float32, 2048)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		if _, err := r.ReadSamples(buf); err == io.EOF {
			src.Rewind()
			r.Reset()
		}
	}
}
