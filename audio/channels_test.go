// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"errors"
	"io"
	"testing"

	"github.com/ik5/trackdeck/audio"
	"github.com/ik5/trackdeck/internal/audiotest"
)

func TestMonoMixer_Averages(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 2, 4, func(_ int, ch int) float32 {
		if ch == 0 {
			return 1
		}
		return 0
	})

	mixer := audio.NewMonoMixer(src)
	if mixer.Channels() != 1 {
		t.Fatalf("Channels() = %d, want 1", mixer.Channels())
	}

	dst := make([]float32, 4)
	n, err := mixer.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Fatalf("ReadSamples() n = %d, want 4", n)
	}

	for i := range n {
		if dst[i] != 0.5 {
			t.Errorf("dst[%d] = %v, want 0.5", i, dst[i])
		}
	}

	if n, err := mixer.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() at end = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestMonoMixer_MonoPassThrough(t *testing.T) {
	t.Parallel()

	src := audiotest.NewConstantSource(8000, 1, 3, 0.25)
	mixer := audio.NewMonoMixer(src)

	dst := make([]float32, 8)
	n, _ := mixer.ReadSamples(dst)
	if n != 3 {
		t.Errorf("ReadSamples() n = %d, want 3", n)
	}
}

func TestUpmixer_Duplicates(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 1, 3, func(sample int, _ int) float32 {
		return float32(sample) / 10
	})

	up := audio.NewUpmixer(src, 2)
	dst := make([]float32, 6)

	n, err := up.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 6 {
		t.Fatalf("ReadSamples() n = %d, want 6", n)
	}

	want := []float32{0, 0, 0.1, 0.1, 0.2, 0.2}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestUpmixer_InvalidDst(t *testing.T) {
	t.Parallel()

	up := audio.NewUpmixer(audiotest.NewSilentSource(8000, 1, 10), 2)

	if _, err := up.ReadSamples(make([]float32, 3)); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}
