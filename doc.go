// SPDX-License-Identifier: EPL-2.0

// Package trackdeck is a streaming decode-and-playback engine for compressed
// audio held in memory or on disk.
//
// The engine reads a track through a byte source, decodes it one quantum at
// a time into a small fixed pool of PCM buffers and hands those buffers to an
// audio sink. Each time the sink finishes a buffer the engine decodes the
// next quantum into it, so only a few buffers of audio are ever resident.
//
// # Packages
//
//   - bytesource: seekable readers over a borrowed byte slice or a file
//   - audio: the Source contract, decoder registry, container sniffing and
//     conversion to the output format (resampling, channel mixing)
//   - formats/vorbis, formats/mp3, formats/wav, formats/aiff: decoders
//   - pcm: output format, the buffer pool and float to PCM16 encoding
//   - sink: output devices (oto, beep speaker, a headless clock)
//   - catalog: the immutable track list, YAML manifests and fs.FS bundles
//   - player: the playback engine and its transport controls
//   - config, logger: viper settings and slog setup for the CLI
//
// # Quick Start
//
//	cat, _ := catalog.LoadManifest("tracks.yaml")
//	out, _ := sink.New(sink.BackendOto)
//
//	opts := player.DefaultOptions()
//	opts.Registry = trackdeck.NewRegistry()
//
//	eng, _ := player.New(out, cat, opts)
//	defer eng.Close()
//
//	_ = eng.Play(0)
//	eng.TogglePause()
//	_ = eng.Seek(10 * time.Second)
//	_ = eng.SwitchTrack(+1)
//
// # Offline Rendering
//
// Render and RenderWAV run the same conversion pipeline without a device:
//
//	dec, _, _ := trackdeck.NewRegistry().Lookup("", header)
//	src, _ := dec.Decode(in)
//	defer src.Close()
//
//	f, _ := os.Create("out.wav")
//	_ = trackdeck.RenderWAV(f, src, pcm.CD)
package trackdeck
