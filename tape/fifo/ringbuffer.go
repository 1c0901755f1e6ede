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

// Package fifo implements the bounded byte queue that sits between the tape
// file and the pulse generator.
//
// The RingBuffer never blocks and never returns an error. Writes to a full
// buffer are dropped and reads from an empty buffer return zero. Callers are
// expected to check Free() and Occupied() before writing and reading.
//
// The RingBuffer is not safe for concurrent use.
package fifo

// DefaultCapacity is the depth of the ring buffer used by the tape driver. It
// bounds the look-ahead between file reads and pulse generation.
const DefaultCapacity = 0x30

// RingBuffer is a single-producer, single-consumer byte queue.
type RingBuffer struct {
	buffer   []byte
	occupied int
	writeIdx int
	readIdx  int
}

// NewRingBuffer is the preferred method of initialisation for the RingBuffer
// type. A capacity of less than one is treated as a capacity of one.
func NewRingBuffer(capacity int) *RingBuffer {
	return &RingBuffer{
		buffer: make([]byte, max(capacity, 1)),
	}
}

// Capacity returns the maximum number of bytes the buffer can hold.
func (rb *RingBuffer) Capacity() int {
	return len(rb.buffer)
}

// Clear removes all stored bytes and resets the cursors.
func (rb *RingBuffer) Clear() {
	rb.occupied = 0
	rb.writeIdx = 0
	rb.readIdx = 0
}

// Occupied returns the number of bytes waiting to be read.
func (rb *RingBuffer) Occupied() int {
	return rb.occupied
}

// Free returns the number of bytes that can be written before the buffer is
// full.
func (rb *RingBuffer) Free() int {
	return len(rb.buffer) - rb.occupied
}

// Pull returns the oldest byte in the buffer. If the buffer is empty then
// zero is returned and the buffer is unchanged.
func (rb *RingBuffer) Pull() byte {
	if rb.occupied == 0 {
		return 0
	}
	b := rb.buffer[rb.readIdx]
	rb.readIdx++
	if rb.readIdx >= len(rb.buffer) {
		rb.readIdx = 0
	}
	rb.occupied--
	return b
}

// Front returns the oldest byte in the buffer without removing it. The second
// return value is false if the buffer is empty.
func (rb *RingBuffer) Front() (byte, bool) {
	if rb.occupied == 0 {
		return 0, false
	}
	return rb.buffer[rb.readIdx], true
}

// Push adds a byte to the buffer. If the buffer is full the byte is
// dropped. Data already in the buffer is never overwritten.
func (rb *RingBuffer) Push(b byte) {
	if rb.occupied == len(rb.buffer) {
		return
	}
	rb.buffer[rb.writeIdx] = b
	rb.writeIdx++
	if rb.writeIdx >= len(rb.buffer) {
		rb.writeIdx = 0
	}
	rb.occupied++
}

// PullBulk copies up to len(p) bytes into p and returns the number of bytes
// actually copied, which is never more than Occupied().
func (rb *RingBuffer) PullBulk(p []byte) int {
	n := min(len(p), rb.occupied)

	// copy in one or two segments depending on wrap-around
	first := min(n, len(rb.buffer)-rb.readIdx)
	copy(p[:first], rb.buffer[rb.readIdx:rb.readIdx+first])
	copy(p[first:n], rb.buffer[:n-first])

	rb.readIdx = (rb.readIdx + n) % len(rb.buffer)
	rb.occupied -= n
	return n
}
