// SPDX-License-Identifier: EPL-2.0

package trackdeck

import (
	"github.com/ik5/trackdeck/audio"
	"github.com/ik5/trackdeck/formats/aiff"
	"github.com/ik5/trackdeck/formats/mp3"
	"github.com/ik5/trackdeck/formats/vorbis"
	"github.com/ik5/trackdeck/formats/wav"
)

// Register adds every bundled decoder to reg.
func Register(reg *audio.Registry) {
	reg.Register(audio.FormatOgg, vorbis.Decoder{})
	reg.Register(audio.FormatMP3, mp3.Decoder{})
	reg.Register(audio.FormatWAV, wav.Decoder{})
	reg.Register(audio.FormatAIFF, aiff.Decoder{})
}

// NewRegistry returns a registry with Ogg Vorbis, MP3, WAV and AIFF
// decoders.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	Register(reg)
	return reg
}
