// SPDX-License-Identifier: EPL-2.0

package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/trackdeck/audio"
	"github.com/ik5/trackdeck/bytesource"
)

// Track is an immutable catalog entry. Its audio lives either in memory or
// in a file.
type Track struct {
	name   string
	format string
	data   []byte
	path   string
}

// NewTrack returns a track over data held in memory. The slice is borrowed,
// not copied; callers must not modify it afterwards. An empty format means
// the container is sniffed when the track is opened.
func NewTrack(name, format string, data []byte) (Track, error) {
	if name == "" {
		return Track{}, ErrEmptyName
	}
	if len(data) == 0 {
		return Track{}, fmt.Errorf("%w: %s", ErrNoData, name)
	}

	return Track{name: name, format: format, data: data}, nil
}

// FileTrack returns a track read from path each time it is opened.
func FileTrack(name, format, path string) (Track, error) {
	if name == "" {
		return Track{}, ErrEmptyName
	}
	if path == "" {
		return Track{}, fmt.Errorf("%w: %s", ErrNoData, name)
	}

	return Track{name: name, format: format, path: path}, nil
}

func (t Track) Name() string   { return t.name }
func (t Track) Format() string { return t.format }
func (t Track) InMemory() bool { return t.data != nil }

// Open returns a fresh byte source positioned at the start of the track.
func (t Track) Open() (bytesource.ByteSource, error) {
	if t.data != nil {
		return bytesource.NewMemory(t.data), nil
	}

	src, err := bytesource.OpenFile(t.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOpen, t.name, err)
	}
	return src, nil
}

// Catalog is an ordered, fixed list of tracks.
type Catalog struct {
	tracks []Track
}

func New(tracks ...Track) *Catalog {
	return &Catalog{tracks: append([]Track(nil), tracks...)}
}

func (c *Catalog) Len() int { return len(c.tracks) }

// Track returns the track at index i.
func (c *Catalog) Track(i int) (Track, error) {
	if i < 0 || i >= len(c.tracks) {
		return Track{}, fmt.Errorf("%w: %d of %d", ErrNoSuchTrack, i, len(c.tracks))
	}
	return c.tracks[i], nil
}

// Names returns the track names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.tracks))
	for i, t := range c.tracks {
		names[i] = t.name
	}
	return names
}

var extensions = map[string]string{
	".ogg":  audio.FormatOgg,
	".oga":  audio.FormatOgg,
	".mp3":  audio.FormatMP3,
	".wav":  audio.FormatWAV,
	".aif":  audio.FormatAIFF,
	".aiff": audio.FormatAIFF,
}

// FormatForPath maps a file extension to a registry format name.
func FormatForPath(path string) (string, bool) {
	format, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return format, ok
}

// FromDir builds a catalog of every playable file directly inside dir,
// sorted by file name. Tracks are read from disk on demand.
func FromDir(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var tracks []Track
	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		format, ok := FormatForPath(e.Name())
		if !ok {
			continue
		}

		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		t, err := FileTrack(name, format, filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}

	if len(tracks) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, dir)
	}

	return New(tracks...), nil
}
