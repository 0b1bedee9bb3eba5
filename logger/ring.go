// SPDX-License-Identifier: EPL-2.0

package logger

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// DefaultRingSize is how many lines the on-screen log keeps.
const DefaultRingSize = 8

// Ring is a slog handler that keeps the last few formatted records in
// memory for display under the player status line.
type Ring struct {
	store *ringStore
	inner slog.Handler
}

type ringStore struct {
	mu    sync.Mutex
	lines []string
	next  int
	full  bool
}

// Write receives exactly one formatted record per call from the text handler.
func (s *ringStore) Write(p []byte) (int, error) {
	line := strings.TrimRight(string(p), "\n")

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines[s.next] = line
	s.next = (s.next + 1) % len(s.lines)
	if s.next == 0 {
		s.full = true
	}
	return len(p), nil
}

// NewRing returns a handler keeping size lines at or above level.
func NewRing(size int, level slog.Leveler) *Ring {
	if size <= 0 {
		size = DefaultRingSize
	}

	store := &ringStore{lines: make([]string, size)}
	inner := slog.NewTextHandler(store, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})

	return &Ring{store: store, inner: inner}
}

func (r *Ring) Enabled(ctx context.Context, level slog.Level) bool {
	return r.inner.Enabled(ctx, level)
}

func (r *Ring) Handle(ctx context.Context, rec slog.Record) error {
	return r.inner.Handle(ctx, rec)
}

func (r *Ring) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Ring{store: r.store, inner: r.inner.WithAttrs(attrs)}
}

func (r *Ring) WithGroup(name string) slog.Handler {
	return &Ring{store: r.store, inner: r.inner.WithGroup(name)}
}

// Lines returns the kept records, oldest first.
func (r *Ring) Lines() []string {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.full {
		return append([]string(nil), s.lines[:s.next]...)
	}

	out := make([]string, 0, len(s.lines))
	out = append(out, s.lines[s.next:]...)
	return append(out, s.lines[:s.next]...)
}
