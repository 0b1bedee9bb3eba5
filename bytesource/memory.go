// SPDX-License-Identifier: EPL-2.0

package bytesource

import "io"

// Memory is a ByteSource over a borrowed byte slice.
// The slice is never copied or modified; only the cursor changes.
type Memory struct {
	data   []byte
	offset int64
	closed bool
}

func NewMemory(data []byte) *Memory {
	return &Memory{data: data}
}

func (m *Memory) Tell() int64 { return m.offset }
func (m *Memory) Size() int64 { return int64(len(m.data)) }

func (m *Memory) Read(p []byte) (int, error) {
	if m.closed {
		return 0, ErrClosed
	}

	if len(p) == 0 {
		return 0, nil
	}

	if m.offset >= int64(len(m.data)) {
		return 0, io.EOF
	}

	n := copy(p, m.data[m.offset:])
	m.offset += int64(n)

	return n, nil
}

func (m *Memory) Seek(offset int64, whence int) (int64, error) {
	if m.closed {
		return m.offset, ErrClosed
	}

	next, err := resolve(m.offset, int64(len(m.data)), offset, whence)
	if err != nil {
		return m.offset, err
	}

	m.offset = next
	return next, nil
}

// Close abandons the cursor. The borrowed slice stays untouched.
func (m *Memory) Close() error {
	m.closed = true
	return nil
}
