// SPDX-License-Identifier: EPL-2.0

package bytesource

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// File is a ByteSource backed by a file on disk. The size is captured when
// the file is opened; Read uses ReadAt so the OS file offset is never shared.
type File struct {
	f      *os.File
	size   int64
	offset int64
	closed bool
}

func OpenFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w", err)
	}

	return &File{f: f, size: info.Size()}, nil
}

func (s *File) Tell() int64 { return s.offset }
func (s *File) Size() int64 { return s.size }

func (s *File) Read(p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}

	if len(p) == 0 {
		return 0, nil
	}

	remaining := s.size - s.offset
	if remaining <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err := s.f.ReadAt(p, s.offset)
	s.offset += int64(n)

	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("%w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	return n, nil
}

func (s *File) Seek(offset int64, whence int) (int64, error) {
	if s.closed {
		return s.offset, ErrClosed
	}

	next, err := resolve(s.offset, s.size, offset, whence)
	if err != nil {
		return s.offset, err
	}

	s.offset = next
	return next, nil
}

func (s *File) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.f.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
