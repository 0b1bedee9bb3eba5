// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoding and sample-processing primitives the
// playback engine is built from.
//
//   - Source: a pull-based stream of interleaved float32 samples in [-1, 1]
//   - Seeker: optional repositioning by frame for seekable decoders
//   - Decoder and Registry: map a container format to its decoder
//   - Sniff: detect the container from the first bytes of a stream
//   - Resampler, MonoMixer, Upmixer and Conform: adapt a decoded stream
//     to the output format of a sink
//
// A typical pipeline opens a decoder on a byte source and conforms it to the
// output format:
//
//	reg := audio.NewRegistry()
//	reg.Register(audio.FormatOgg, vorbis.Decoder{})
//
//	dec, _, err := reg.Lookup("", header)
//	src, err := dec.Decode(byteSource)
//	out, err := audio.Conform(src, 44100, 2)
//
//	buf := make([]float32, 2048)
//	for {
//	    n, err := out.ReadSamples(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // Use buf[:n]
//	}
//
// Reads return io.EOF once the stream is exhausted. A read may return n > 0
// together with io.EOF; the next read then returns (0, io.EOF).
//
// After seeking a decoder that sits under a Resampler or mixer, call Reset
// on the outermost stage (see Resetter) so interpolation history from the
// old position is dropped.
package audio
