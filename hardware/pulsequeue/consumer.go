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

package pulsequeue

import "time"

// Consumer removes pulses from a Queue at the rate that the hardware would
// play them.
type Consumer struct {
	q     *Queue
	clock int64
	f     func(length uint32, high bool)

	// ticks available for playing pulses. can be negative if the last pulse
	// was longer than the time available for it
	credit int64

	// set when the queue ran dry during a call to Advance()
	starved bool
}

// NewConsumer is the preferred method of initialisation for the Consumer type.
// The clock is the frequency of the ticks that pulses are measured in. The
// function is called for every pulse removed from the queue and may be nil.
func NewConsumer(q *Queue, clock int, f func(length uint32, high bool)) *Consumer {
	return &Consumer{
		q:     q,
		clock: int64(clock),
		f:     f,
	}
}

// Advance the consumer by the duration. Returns the number of pulses removed
// from the queue.
func (c *Consumer) Advance(d time.Duration) int {
	c.credit += int64(d) * c.clock / int64(time.Second)
	c.starved = false

	n := 0
	for c.credit > 0 {
		length, high, ok := c.q.Pop()
		if !ok {
			// the time spent waiting for a pulse is lost. a real tape
			// interface would be outputting nothing at this point
			c.credit = 0
			c.starved = true
			break
		}
		c.credit -= int64(length)
		if c.f != nil {
			c.f(length, high)
		}
		n++
	}

	return n
}

// Starved returns true if the queue ran dry during the most recent call to
// Advance().
func (c *Consumer) Starved() bool {
	return c.starved
}

// Reset the consumer.
func (c *Consumer) Reset() {
	c.credit = 0
	c.starved = false
}
