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

import "sync"

// DefaultDepth is the number of entries in the queue if no other depth is
// specified.
const DefaultDepth = 64

// Queue of pulses.
type Queue struct {
	crit sync.Mutex

	entries []uint16
	head    int
	count   int

	// sticky flags. cleared when the register is read
	underflow bool
	overflow  bool

	// total number of pulses written and popped. used for statistics
	written uint64
	popped  uint64
}

// NewQueue is the preferred method of initialisation for the Queue type. A
// depth of zero or less will use DefaultDepth.
func NewQueue(depth int) *Queue {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Queue{
		entries: make([]uint16, depth),
	}
}

// Depth returns the maximum number of entries in the queue.
func (q *Queue) Depth() int {
	return len(q.entries)
}

// Len returns the number of entries in the queue.
func (q *Queue) Len() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.count
}

// Full returns true if no more entries can be added to the queue. Implements
// the pulse.Sink interface.
func (q *Queue) Full() bool {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.count == len(q.entries)
}

// Empty returns true if there are no entries in the queue.
func (q *Queue) Empty() bool {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.count == 0
}

// Push a pulse onto the queue. Implements the pulse.Sink interface. If the
// queue is full the pulse is lost and the overflow flag is set.
func (q *Queue) Push(length uint32, high bool) {
	q.Write(NewRegister(length, high))
}

// Write the data bits of the register to the queue. Status bits in the value
// are ignored.
func (q *Queue) Write(r Register) {
	q.crit.Lock()
	defer q.crit.Unlock()

	if q.count == len(q.entries) {
		q.overflow = true
		return
	}

	q.entries[(q.head+q.count)%len(q.entries)] = r.Data()
	q.count++
	q.written++
}

// Read the register. The data bits contain the entry at the front of the
// queue, if there is one, but the entry is not removed. The underflow and
// overflow flags are cleared by the read.
func (q *Queue) Read() Register {
	q.crit.Lock()
	defer q.crit.Unlock()

	var r Register

	if q.count == 0 {
		r |= MaskEmpty
	} else {
		r = Register(q.entries[q.head])
	}
	if q.count == len(q.entries) {
		r |= MaskFull
	}
	if q.underflow {
		r |= MaskUnderflow
	}
	if q.overflow {
		r |= MaskOverflow
	}

	q.underflow = false
	q.overflow = false

	return r
}

// Pop removes the entry at the front of the queue. Returns false if the
// queue is empty, in which case the underflow flag is set.
func (q *Queue) Pop() (uint32, bool, bool) {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.pop()
}

func (q *Queue) pop() (uint32, bool, bool) {
	if q.count == 0 {
		q.underflow = true
		return 0, false, false
	}

	r := Register(q.entries[q.head])
	q.head = (q.head + 1) % len(q.entries)
	q.count--
	q.popped++

	return r.Length(), r.High(), true
}

// Drain removes every entry in the queue, in order, and passes them to the
// function. Returns the number of entries removed. The function must not
// call any other function of the Queue.
func (q *Queue) Drain(f func(length uint32, high bool)) int {
	q.crit.Lock()
	defer q.crit.Unlock()

	n := 0
	for q.count > 0 {
		length, high, _ := q.pop()
		f(length, high)
		n++
	}
	return n
}

// Reset the queue to the empty state. All flags are cleared.
func (q *Queue) Reset() {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.head = 0
	q.count = 0
	q.underflow = false
	q.overflow = false
}

// Stats returns the total number of pulses written to and popped from the
// queue since it was created.
func (q *Queue) Stats() (written uint64, popped uint64) {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.written, q.popped
}
