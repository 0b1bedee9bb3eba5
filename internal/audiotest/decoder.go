// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ik5/trackdeck/audio"
)

// ErrNotMock is returned by Decoder for payloads without the mock prefix.
var ErrNotMock = errors.New("not a mock payload")

// Decoder decodes "mock:<name>" payloads by calling New with <name>.
// Every Decode and Close is appended to a shared journal so tests can assert
// ordering between sessions.
type Decoder struct {
	New func(name string) *MockSource

	mu      sync.Mutex
	journal []string
	sources map[string][]*MockSource
}

// Decode reads the whole payload and opens a source built by New.
func (d *Decoder) Decode(r io.Reader) (audio.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	name, ok := strings.CutPrefix(string(data), "mock:")
	if !ok {
		return nil, ErrNotMock
	}

	src := d.New(name)

	d.mu.Lock()
	defer d.mu.Unlock()

	d.journal = append(d.journal, "open:"+name)
	if d.sources == nil {
		d.sources = make(map[string][]*MockSource)
	}
	d.sources[name] = append(d.sources[name], src)

	return &journaled{MockSource: src, name: name, d: d}, nil
}

// Journal returns a copy of the open/close log.
func (d *Decoder) Journal() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]string(nil), d.journal...)
}

// Sources returns every source opened for name, oldest first.
func (d *Decoder) Sources(name string) []*MockSource {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]*MockSource(nil), d.sources[name]...)
}

type journaled struct {
	*MockSource
	name string
	d    *Decoder
}

func (j *journaled) Close() error {
	j.d.mu.Lock()
	j.d.journal = append(j.d.journal, "close:"+j.name)
	j.d.mu.Unlock()

	return j.MockSource.Close()
}
