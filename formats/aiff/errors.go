// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input has no FORM/AIFF header.
	ErrNotAiffFile = errors.New("not an AIFF file")

	ErrUnsupportedBitDepth = errors.New("only 16-bit and 24-bit AIFF supported")

	// ErrUnsupportedAiffLayout indicates a COMM chunk with no usable format.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")

	ErrCorruptStream = errors.New("corrupt AIFF data")
)
