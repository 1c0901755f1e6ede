// This file is part of zxtape.
//
// zxtape is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// zxtape is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with zxtape.  If not, see <https://www.gnu.org/licenses/>.

// Package audiomonitor plays the tape signal through the sound card so that
// the familiar sound of a loading tape can be heard.
//
// Pulses are rendered into a Buffer of samples, which the audio device drains
// from its own goroutine. When the Buffer runs dry the device plays silence.
//
// Building with the headless tag replaces the audio device with an
// implementation that discards the samples.
package audiomonitor

import (
	"sync"

	"github.com/jetsetilly/zxtape/sonify"
)

// SampleRate of the audio device.
const SampleRate = sonify.DefaultSampleRate

// DefaultBufferSize is the number of samples held by the Buffer. About a
// quarter of a second.
const DefaultBufferSize = SampleRate / 4

// amplitude of the float samples sent to the audio device.
const amplitude = 0.25

// Buffer is a bounded queue of samples. It is safe to use from more than one
// goroutine.
type Buffer struct {
	crit sync.Mutex

	renderer *sonify.Renderer

	data  []float32
	head  int
	count int

	// number of samples that were requested but not available and the number
	// of samples that were dropped because the buffer was full
	underrun int
	overrun  int
}

// NewBuffer is the preferred method of initialisation for the Buffer type. The
// clock is the frequency of the ticks that pulses are measured in.
func NewBuffer(clock int, size int) *Buffer {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Buffer{
		renderer: sonify.NewRenderer(clock, SampleRate),
		data:     make([]float32, size),
	}
}

// Pulse renders the pulse into the buffer. The function signature is
// compatible with the Drain() function of the pulsequeue package.
func (b *Buffer) Pulse(length uint32, high bool) {
	b.crit.Lock()
	defer b.crit.Unlock()

	level, n := b.renderer.Pulse(length, high)
	v := float32(-amplitude)
	if level {
		v = amplitude
	}

	for range n {
		if b.count == len(b.data) {
			b.overrun++
			continue
		}
		b.data[(b.head+b.count)%len(b.data)] = v
		b.count++
	}
}

// Fill dst with samples from the buffer. If there are not enough samples the
// remainder of dst is filled with silence. Returns the number of samples
// taken from the buffer.
func (b *Buffer) Fill(dst []float32) int {
	b.crit.Lock()
	defer b.crit.Unlock()

	n := min(len(dst), b.count)
	for i := range n {
		dst[i] = b.data[(b.head+i)%len(b.data)]
	}
	b.head = (b.head + n) % len(b.data)
	b.count -= n

	clear(dst[n:])
	b.underrun += len(dst) - n

	return n
}

// Len returns the number of samples in the buffer.
func (b *Buffer) Len() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.count
}

// Stats returns the number of samples of silence played because the buffer
// was empty and the number of samples lost because the buffer was full.
func (b *Buffer) Stats() (underrun int, overrun int) {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.underrun, b.overrun
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.head = 0
	b.count = 0
	b.renderer.Reset()
}
