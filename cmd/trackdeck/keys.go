// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/ik5/trackdeck/player"
)

type action int

const (
	actPrev action = iota + 1
	actNext
	actToggle
	actSeekBack
	actSeekForward
	actStop
	actReplay
	actQuit
)

// errQuit ends the play loops without reporting an error.
var errQuit = errors.New("quit")

// controller is the part of the engine the key bindings drive.
type controller interface {
	SwitchTrack(direction int) error
	TogglePause()
	Seek(delta time.Duration) error
	Stop()
	Play(i int) error
	TransportState() player.TransportState
}

// parseKeys maps raw terminal input to actions. Arrow keys arrive as
// ESC [ C / ESC [ D.
func parseKeys(b []byte) []action {
	var out []action

	for i := 0; i < len(b); i++ {
		if b[i] == 0x1b && i+2 < len(b) && b[i+1] == '[' {
			switch b[i+2] {
			case 'C':
				out = append(out, actNext)
			case 'D':
				out = append(out, actPrev)
			}
			i += 2
			continue
		}

		switch b[i] {
		case 'a', 'A', ' ':
			out = append(out, actToggle)
		case 'l', 'L', ',':
			out = append(out, actSeekBack)
		case 'r', 'R', '.':
			out = append(out, actSeekForward)
		case 'n', 'N':
			out = append(out, actNext)
		case 'b', 'B':
			out = append(out, actPrev)
		case 's', 'S':
			out = append(out, actStop)
		case 'p', 'P':
			out = append(out, actReplay)
		case 'q', 'Q', 0x03, 0x04:
			out = append(out, actQuit)
		}
	}

	return out
}

// apply runs one action against ctl.
func apply(ctl controller, act action, step time.Duration) error {
	switch act {
	case actPrev:
		return ctl.SwitchTrack(-1)
	case actNext:
		return ctl.SwitchTrack(+1)
	case actToggle:
		ctl.TogglePause()
	case actSeekBack:
		return ctl.Seek(-step)
	case actSeekForward:
		return ctl.Seek(step)
	case actStop:
		ctl.Stop()
	case actReplay:
		return ctl.Play(ctl.TransportState().Track)
	case actQuit:
		return errQuit
	}
	return nil
}

// inputLoop reads keys from r until quit, end of input or ctx is done.
// Engine errors are logged and do not stop the loop.
func inputLoop(ctx context.Context, r io.Reader, ctl controller, step time.Duration) error {
	chunks := make(chan []byte)
	readErr := make(chan error, 1)

	go func() {
		buf := make([]byte, 32)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				select {
				case chunks <- slices.Clone(buf[:n]):
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				readErr <- err
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return errQuit
			}
			return err
		case chunk := <-chunks:
			for _, act := range parseKeys(chunk) {
				err := apply(ctl, act, step)
				if errors.Is(err, errQuit) {
					return errQuit
				}
				if err != nil {
					slog.Warn("control failed", slog.Any("error", err))
				}
			}
		}
	}
}
