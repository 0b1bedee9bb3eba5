// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ik5/trackdeck/player"
)

const (
	statusInterval = 100 * time.Millisecond
	seekBarWidth   = 40

	// clearScreen homes the cursor and clears the terminal.
	clearScreen = "\x1b[H\x1b[2J"
)

// status is what the screen shows.
type status interface {
	TransportState() player.TransportState
	Stats() player.Stats
}

// clock formats d as mm:ss.
func clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// statusLine renders "Name [Playing] 01:02 / 03:04".
func statusLine(ts player.TransportState) string {
	length := "--:--"
	if ts.Length > 0 {
		length = clock(ts.Length)
	}
	return fmt.Sprintf("%s [%s] %s / %s", ts.Name, ts.State, clock(ts.Position), length)
}

func seekBar(pos, length time.Duration, width int) string {
	if length <= 0 {
		return "[" + strings.Repeat("-", width) + "]"
	}

	filled := int(int64(width) * int64(pos) / int64(length))
	filled = max(0, min(filled, width))
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}

// screen renders the full player screen. Lines end in CRLF since the
// terminal is in raw mode.
func screen(names []string, ts player.TransportState, st player.Stats, logs []string) string {
	var b strings.Builder

	b.WriteString("trackdeck\r\n\r\n")
	for i, name := range names {
		marker := "  "
		if i == ts.Track {
			marker = "> "
		}
		fmt.Fprintf(&b, "%s%d. %s\r\n", marker, i+1, name)
	}

	b.WriteString("\r\n")
	b.WriteString(statusLine(ts))
	b.WriteString("\r\n")
	b.WriteString(seekBar(ts.Position, ts.Length, seekBarWidth))
	fmt.Fprintf(&b, "  underruns %d\r\n", st.Underruns)

	if ts.Err != nil {
		fmt.Fprintf(&b, "error: %v\r\n", ts.Err)
	}

	b.WriteString("\r\n<-/-> track  a/space pause  l/r seek  s stop  p replay  q quit\r\n\r\n")

	for _, line := range logs {
		b.WriteString(line)
		b.WriteString("\r\n")
	}

	return b.String()
}

// statusLoop redraws the screen until ctx is done.
func statusLoop(ctx context.Context, w io.Writer, names []string, st status, logs func() []string) error {
	ticker := time.NewTicker(statusInterval)
	defer ticker.Stop()

	for {
		if _, err := io.WriteString(w, clearScreen+screen(names, st.TransportState(), st.Stats(), logs())); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
