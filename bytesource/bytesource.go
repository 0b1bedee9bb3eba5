// SPDX-License-Identifier: EPL-2.0

package bytesource

import (
	"fmt"
	"io"
)

// ByteSource is a seekable random-access byte provider.
type ByteSource interface {
	io.ReadSeeker
	// Tell returns the current cursor.
	Tell() int64
	// Size returns the total number of bytes available.
	Size() int64
	// Close releases the source. Calling it more than once is allowed.
	Close() error
}

// resolve computes the cursor a seek would land on without applying it.
func resolve(cursor, size, offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		if offset < 0 || offset > size {
			return 0, fmt.Errorf("%w: start%+d of %d", ErrSeekOutOfRange, offset, size)
		}
		return offset, nil
	case io.SeekCurrent:
		next := cursor + offset
		if next < 0 || next > size {
			return 0, fmt.Errorf("%w: %d%+d of %d", ErrSeekOutOfRange, cursor, offset, size)
		}
		return next, nil
	case io.SeekEnd:
		if offset > 0 || -offset > size {
			return 0, fmt.Errorf("%w: end%+d of %d", ErrSeekOutOfRange, offset, size)
		}
		return size + offset, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidWhence, whence)
	}
}
