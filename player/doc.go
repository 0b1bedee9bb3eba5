// SPDX-License-Identifier: EPL-2.0

// Package player is a streaming decode-and-playback engine.
//
// An Engine opens one catalog track at a time, decodes it into a small
// fixed pool of PCM buffers and keeps a sink.Sink fed. Each time the sink
// reports a buffer consumed, the engine decodes the next quantum into it
// and submits it again.
//
//	eng, err := player.New(out, cat, opts)
//	if err != nil {
//	    return err
//	}
//	defer eng.Close()
//
//	_ = eng.Play(0)
//	eng.Pause()
//	eng.Resume()
//	_ = eng.Seek(-5 * time.Second)
//
// # Transport
//
// The engine is Stopped, Playing or Paused. Play and SwitchTrack always
// restart on the chosen track and close the previous session first. Stop
// discards queued audio. Reaching the end of a track closes the session and
// goes to Stopped without flushing the sink, so the last buffers still play;
// it does not move on to the next track unless Options.AutoAdvance is set.
//
// Open and decode failures are never retried. The failing error is kept in
// TransportState.Err until the next Play.
//
// # Sessions
//
// Every Play gets a new session id and every submitted buffer carries it.
// Events for older sessions only return buffers to the pool, so a consumed
// event racing a Stop or Play cannot refill into the new session.
//
// # Position
//
// Position comes from the decoder, not a wall clock. For seekable formats
// it is the decoder's frame position; otherwise it is the number of frames
// submitted. Length is zero for decoders that cannot report it.
package player
