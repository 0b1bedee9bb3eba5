// SPDX-License-Identifier: EPL-2.0

// Package sink delivers PCM buffers to an output device.
//
// All backends share one FIFO. The device side pulls bytes from it and, for
// every buffer it finishes, sends a BufferConsumed event on the Events
// channel. Submitters treat that event as the moment the buffer is theirs
// again. When the FIFO is empty or paused the device hears silence.
//
// Backends:
//   - Oto: the system device through github.com/ebitengine/oto/v3
//   - Beep: the github.com/gopxl/beep/v2 speaker
//   - Clock: no device, buffers are consumed at the real-time rate
//
// Building with the headless tag drops the device backends.
package sink
