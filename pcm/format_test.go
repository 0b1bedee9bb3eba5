// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"math"
	"testing"
	"time"
)

func TestFormat_FrameSizeAndDuration(t *testing.T) {
	t.Parallel()

	if CD.FrameSize() != 4 {
		t.Errorf("FrameSize() = %d, want 4", CD.FrameSize())
	}

	if d := CD.Duration(44100); d != time.Second {
		t.Errorf("Duration(44100) = %v, want 1s", d)
	}

	if n := CD.Frames(2 * time.Second); n != 88200 {
		t.Errorf("Frames(2s) = %d, want 88200", n)
	}

	if d := (Format{}).Duration(100); d != 0 {
		t.Errorf("Duration() with zero rate = %v, want 0", d)
	}
}

func TestEncodeDecodeInt16(t *testing.T) {
	t.Parallel()

	src := []float32{0, 0.5, -0.5, 1, -1, 2}
	dst := make([]byte, len(src)*2)

	if n := EncodeFloat32(dst, src); n != len(dst) {
		t.Fatalf("EncodeFloat32() = %d, want %d", n, len(dst))
	}

	back := make([]float32, len(src))
	if n := DecodeInt16(back, dst); n != len(src) {
		t.Fatalf("DecodeInt16() = %d, want %d", n, len(src))
	}

	want := []float32{0, 0.5, -0.5, 1, -1, 1}
	for i := range want {
		if math.Abs(float64(back[i]-want[i])) > 0.001 {
			t.Errorf("sample %d = %v, want ≈%v", i, back[i], want[i])
		}
	}
}

func TestEncodeFloat32_ShortDestination(t *testing.T) {
	t.Parallel()

	dst := make([]byte, 3)
	if n := EncodeFloat32(dst, []float32{0.1, 0.2, 0.3}); n != 2 {
		t.Errorf("EncodeFloat32() = %d, want 2", n)
	}
}

func BenchmarkEncodeFloat32(b *testing.B) {
	src := make([]float32, 2048)
	for i := range src {
		src[i] = float32(math.Sin(float64(i) * 0.01))
	}
	dst := make([]byte, len(src)*2)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		EncodeFloat32(dst, src)
	}
}
