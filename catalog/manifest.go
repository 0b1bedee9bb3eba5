// SPDX-License-Identifier: EPL-2.0

package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest lists tracks in play order.
//
//	tracks:
//	  - name: Title Theme
//	    file: title.ogg
//	  - name: Credits
//	    file: credits.mp3
//	    format: mp3
//	    preload: true
type Manifest struct {
	Tracks []ManifestEntry `yaml:"tracks"`
}

type ManifestEntry struct {
	Name   string `yaml:"name"`
	File   string `yaml:"file"`
	Format string `yaml:"format"`
	// Preload reads the file into memory when the catalog is built.
	Preload bool `yaml:"preload"`
}

// ParseManifest decodes a YAML manifest and checks every entry.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: parse yaml: %w", ErrManifest, err)
	}

	if len(m.Tracks) == 0 {
		return nil, fmt.Errorf("%w: no tracks", ErrManifest)
	}

	for i, e := range m.Tracks {
		if e.File == "" {
			return nil, fmt.Errorf("%w: track %d has no file", ErrManifest, i)
		}
		if e.Name == "" {
			m.Tracks[i].Name = e.File
		}
		if e.Format == "" {
			m.Tracks[i].Format, _ = FormatForPath(e.File)
		}
	}

	return &m, nil
}

// LoadManifest builds a catalog from a manifest file. Relative track paths
// are resolved against the manifest's directory.
func LoadManifest(manifestPath string) (*Catalog, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}

	base := filepath.Dir(manifestPath)
	tracks := make([]Track, 0, len(m.Tracks))

	for _, e := range m.Tracks {
		p := e.File
		if !filepath.IsAbs(p) {
			p = filepath.Join(base, p)
		}

		var t Track
		if e.Preload {
			raw, err := os.ReadFile(p)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrOpen, e.Name, err)
			}
			t, err = NewTrack(e.Name, e.Format, raw)
			if err != nil {
				return nil, err
			}
		} else {
			t, err = FileTrack(e.Name, e.Format, p)
			if err != nil {
				return nil, err
			}
		}

		tracks = append(tracks, t)
	}

	return New(tracks...), nil
}

// FromFS builds an in-memory catalog from fsys, typically an embed.FS.
// If manifest is empty every playable file under dir is loaded in name
// order; otherwise the manifest at that path inside fsys decides, with its
// file entries relative to the manifest.
func FromFS(fsys fs.FS, dir, manifest string) (*Catalog, error) {
	var entries []ManifestEntry

	if manifest != "" {
		data, err := fs.ReadFile(fsys, manifest)
		if err != nil {
			return nil, fmt.Errorf("read manifest: %w", err)
		}

		m, err := ParseManifest(data)
		if err != nil {
			return nil, err
		}

		for _, e := range m.Tracks {
			e.File = path.Join(path.Dir(manifest), e.File)
			entries = append(entries, e)
		}
	} else {
		files, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", dir, err)
		}

		for _, f := range files {
			format, ok := FormatForPath(f.Name())
			if f.IsDir() || !ok {
				continue
			}

			entries = append(entries, ManifestEntry{
				Name:   f.Name()[:len(f.Name())-len(path.Ext(f.Name()))],
				File:   path.Join(dir, f.Name()),
				Format: format,
			})
		}
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, dir)
	}

	tracks := make([]Track, 0, len(entries))
	for _, e := range entries {
		data, err := fs.ReadFile(fsys, e.File)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrOpen, e.Name, err)
		}

		t, err := NewTrack(e.Name, e.Format, data)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}

	return New(tracks...), nil
}
