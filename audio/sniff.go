// SPDX-License-Identifier: EPL-2.0

package audio

import "bytes"

// Format keys used by the bundled decoders.
const (
	FormatOgg  = "ogg"
	FormatMP3  = "mp3"
	FormatWAV  = "wav"
	FormatAIFF = "aiff"
)

// SniffLen is how many leading bytes Sniff needs to tell the containers apart.
const SniffLen = 12

// Sniff guesses the container format from the first bytes of a stream.
// It returns "" when nothing matches.
func Sniff(header []byte) string {
	switch {
	case bytes.HasPrefix(header, []byte("OggS")):
		return FormatOgg
	case len(header) >= 12 && bytes.Equal(header[:4], []byte("RIFF")) && bytes.Equal(header[8:12], []byte("WAVE")):
		return FormatWAV
	case len(header) >= 12 && bytes.Equal(header[:4], []byte("FORM")) &&
		(bytes.Equal(header[8:12], []byte("AIFF")) || bytes.Equal(header[8:12], []byte("AIFC"))):
		return FormatAIFF
	case bytes.HasPrefix(header, []byte("ID3")):
		return FormatMP3
	case len(header) >= 2 && header[0] == 0xFF && header[1]&0xE0 == 0xE0:
		// MPEG audio frame sync
		return FormatMP3
	}

	return ""
}
