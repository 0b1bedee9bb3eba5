// SPDX-License-Identifier: EPL-2.0

package bytesource

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "track.bin")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestFile_ReadAndSeek(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, []byte("0123456789"))

	src, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer src.Close()

	if src.Size() != 10 {
		t.Fatalf("Size() = %d, want 10", src.Size())
	}

	if _, err := src.Seek(-3, io.SeekEnd); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}

	buf := make([]byte, 8)
	n, err := src.Read(buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(buf[:n]) != "789" {
		t.Errorf("Read() = %q, want %q", buf[:n], "789")
	}

	n, err = src.Read(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("Read() at end = %d, %v; want 0, io.EOF", n, err)
	}
}

func TestFile_SeekOutOfRangeKeepsCursor(t *testing.T) {
	t.Parallel()

	src, err := OpenFile(writeTemp(t, []byte("abcd")))
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer src.Close()

	_, _ = src.Seek(2, io.SeekStart)

	if _, err := src.Seek(3, io.SeekCurrent); !errors.Is(err, ErrSeekOutOfRange) {
		t.Errorf("Seek() error = %v, want ErrSeekOutOfRange", err)
	}

	if src.Tell() != 2 {
		t.Errorf("Tell() = %d, want 2", src.Tell())
	}
}

func TestFile_CloseTwice(t *testing.T) {
	t.Parallel()

	src, err := OpenFile(writeTemp(t, []byte("x")))
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}

	if err := src.Close(); err != nil {
		t.Errorf("first Close() error = %v", err)
	}
	if err := src.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestOpenFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := OpenFile(filepath.Join(t.TempDir(), "missing.ogg"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("OpenFile() error = %v, want os.ErrNotExist", err)
	}
}
