// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"sync"
	"time"

	"github.com/ik5/trackdeck/pcm"
)

const clockPeriod = 10 * time.Millisecond

// Clock consumes buffers in real time without producing sound. It stands in
// for a device in headless runs and CI.
type Clock struct {
	*queue

	period time.Duration
	stop   chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
}

func NewClock() *Clock {
	return &Clock{
		queue:  newQueue(),
		period: clockPeriod,
		stop:   make(chan struct{}),
	}
}

func (c *Clock) SetFormat(format pcm.Format) error {
	if err := c.setFormat(format); err != nil {
		return err
	}

	c.wg.Add(1)
	go c.run(format)
	return nil
}

func (c *Clock) run(format pcm.Format) {
	defer c.wg.Done()

	ticker := time.NewTicker(c.period)
	defer ticker.Stop()

	var (
		buf    []byte
		played int64 // frames
		start  = time.Now()
	)

	for {
		select {
		case <-c.stop:
			return
		case now := <-ticker.C:
			due := format.Frames(now.Sub(start)) - played
			if due <= 0 {
				continue
			}

			size := int(due) * format.FrameSize()
			if cap(buf) < size {
				buf = make([]byte, size)
			}

			c.read(buf[:size])
			played += due
		}
	}
}

func (c *Clock) Close() error {
	c.once.Do(func() {
		c.close()
		close(c.stop)
		c.wg.Wait()
	})
	return nil
}
