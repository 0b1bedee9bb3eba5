// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ik5/trackdeck"
	"github.com/ik5/trackdeck/audio"
	"github.com/ik5/trackdeck/catalog"
	"github.com/ik5/trackdeck/config"
)

var errNoTracks = errors.New("no tracks: pass files or set catalog.manifest or catalog.dir")

// loadCatalog builds the track list. Files on the command line win over the
// manifest, which wins over the directory.
func loadCatalog(cfg *config.Config, files []string) (*catalog.Catalog, error) {
	switch {
	case len(files) > 0:
		return filesCatalog(files)
	case cfg.Catalog.Manifest != "":
		return catalog.LoadManifest(cfg.Catalog.Manifest)
	case cfg.Catalog.Dir != "":
		return catalog.FromDir(cfg.Catalog.Dir)
	default:
		return nil, errNoTracks
	}
}

func filesCatalog(files []string) (*catalog.Catalog, error) {
	tracks := make([]catalog.Track, 0, len(files))

	for _, path := range files {
		// Unknown extensions are sniffed when the track opens.
		format, _ := catalog.FormatForPath(path)
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

		t, err := catalog.FileTrack(name, format, path)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}

	return catalog.New(tracks...), nil
}

// decodeTrack opens t and returns its decoded source. Closing the source
// does not close the byte source, so both are returned.
func decodeTrack(t catalog.Track) (audio.Source, io.Closer, error) {
	bs, err := t.Open()
	if err != nil {
		return nil, nil, err
	}

	header := make([]byte, audio.SniffLen)
	n, err := io.ReadFull(bs, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		bs.Close()
		return nil, nil, fmt.Errorf("reading %s: %w", t.Name(), err)
	}

	if _, err := bs.Seek(0, io.SeekStart); err != nil {
		bs.Close()
		return nil, nil, fmt.Errorf("rewinding %s: %w", t.Name(), err)
	}

	dec, format, err := trackdeck.NewRegistry().Lookup(t.Format(), header[:n])
	if err != nil {
		bs.Close()
		return nil, nil, fmt.Errorf("%s: %w", t.Name(), err)
	}

	src, err := dec.Decode(bs)
	if err != nil {
		bs.Close()
		return nil, nil, fmt.Errorf("decoding %s as %s: %w", t.Name(), format, err)
	}

	return src, bs, nil
}
