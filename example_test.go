// SPDX-License-Identifier: EPL-2.0

package trackdeck_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/trackdeck"
	"github.com/ik5/trackdeck/audio"
	"github.com/ik5/trackdeck/catalog"
	"github.com/ik5/trackdeck/formats/wav"
	"github.com/ik5/trackdeck/pcm"
)

// tone returns interleaved samples of a square wave.
func tone(frames, channels int) []float32 {
	samples := make([]float32, frames*channels)
	for i := range samples {
		if (i/channels)%10 < 5 {
			samples[i] = 0.3
		} else {
			samples[i] = -0.3
		}
	}
	return samples
}

// Example_registry lists the bundled decoders.
func Example_registry() {
	reg := trackdeck.NewRegistry()
	fmt.Println(reg.Formats())
	// Output: [aiff mp3 ogg wav]
}

// Example_sniffing shows how an untagged track finds its decoder.
func Example_sniffing() {
	mono := pcm.Format{SampleRate: 16000, Channels: 1, BitDepth: 16}

	data := new(bytes.Buffer)
	if err := wav.WriteWAV16(data, mono, tone(5, 1)); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	// An empty format name means: look at the first bytes.
	dec, format, err := trackdeck.NewRegistry().Lookup("", data.Bytes())
	if err != nil {
		fmt.Printf("lookup error: %v\n", err)
		return
	}

	src, err := dec.Decode(bytes.NewReader(data.Bytes()))
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}
	defer src.Close()

	fmt.Printf("Format: %s\n", format)
	fmt.Printf("Sample rate: %d Hz\n", src.SampleRate())
	fmt.Printf("Channels: %d\n", src.Channels())
	// Output:
	// Format: wav
	// Sample rate: 16000 Hz
	// Channels: 1
}

// Example_render converts a mono file to the stereo output format.
func Example_render() {
	mono := pcm.Format{SampleRate: 8000, Channels: 1, BitDepth: 16}
	stereo := pcm.Format{SampleRate: 8000, Channels: 2, BitDepth: 16}

	data := new(bytes.Buffer)
	if err := wav.WriteWAV16(data, mono, tone(100, 1)); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	src, err := wav.Decoder{}.Decode(data)
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}
	defer src.Close()

	samples, err := trackdeck.Render(src, stereo, 4096)
	if err != nil {
		fmt.Printf("render error: %v\n", err)
		return
	}

	fmt.Printf("Rendered %d samples (%d frames, %d ch)\n",
		len(samples), len(samples)/stereo.Channels, stereo.Channels)
	// Output: Rendered 200 samples (100 frames, 2 ch)
}

// Example_writingWAV demonstrates writing audio data to a WAV stream.
func Example_writingWAV() {
	format := pcm.Format{SampleRate: 8000, Channels: 1, BitDepth: 16}

	// Write to a buffer (in real code, use os.Create or os.Stdout)
	output := new(bytes.Buffer)
	if err := wav.WriteWAV16(output, format, tone(100, 1)); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("Wrote WAV stream: %d bytes\n", output.Len())
	fmt.Printf("Header (44 bytes) + data (%d bytes)\n", 100*2)
	// Output:
	// Wrote WAV stream: 244 bytes
	// Header (44 bytes) + data (200 bytes)
}

// Example_catalog builds an in-memory playlist.
func Example_catalog() {
	format := pcm.Format{SampleRate: 8000, Channels: 2, BitDepth: 16}

	var tracks []catalog.Track
	for _, name := range []string{"intro", "loop", "outro"} {
		data := new(bytes.Buffer)
		_ = wav.WriteWAV16(data, format, tone(80, 2))

		t, err := catalog.NewTrack(name, audio.FormatWAV, data.Bytes())
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		tracks = append(tracks, t)
	}

	cat := catalog.New(tracks...)
	for i, name := range cat.Names() {
		fmt.Printf("%d: %s\n", i, name)
	}
	// Output:
	// 0: intro
	// 1: loop
	// 2: outro
}

// Example_errorHandling demonstrates proper error handling.
func Example_errorHandling() {
	invalidData := bytes.NewReader([]byte("not an audio file"))

	_, _, err := trackdeck.NewRegistry().Lookup("", []byte("not an audio file"))
	if errors.Is(err, audio.ErrUnknownFormat) {
		fmt.Println("Unknown container")
	}

	_, err = wav.Decoder{}.Decode(invalidData)
	if errors.Is(err, wav.ErrNotWavFile) {
		fmt.Println("Not a valid WAV file")
	}
	// Output:
	// Unknown container
	// Not a valid WAV file
}
