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

package pulsequeue_test

import (
	"testing"

	"github.com/jetsetilly/zxtape/hardware/pulsequeue"
	"github.com/jetsetilly/zxtape/tape/pulse"
	"github.com/jetsetilly/zxtape/test"
)

// the queue must be usable as the sink for the pulse generator
var _ pulse.Sink = (*pulsequeue.Queue)(nil)

func TestRegister(t *testing.T) {
	r := pulsequeue.NewRegister(2406, true)
	test.ExpectEquality(t, r.Length(), uint32(2406))
	test.ExpectSuccess(t, r.High())
	test.ExpectEquality(t, r.Data(), uint16(0x8000|2406))

	r = pulsequeue.NewRegister(3500, false)
	test.ExpectEquality(t, r.Length(), uint32(3500))
	test.ExpectFailure(t, r.High())

	// lengths are clamped so they do not corrupt the level bit
	r = pulsequeue.NewRegister(0x12345, false)
	test.ExpectEquality(t, r.Length(), pulsequeue.MaxLength)
	test.ExpectFailure(t, r.High())

	test.ExpectEquality(t, pulsequeue.NewRegister(100, true).String(), "high 100")
}

func TestEmptyAndFull(t *testing.T) {
	q := pulsequeue.NewQueue(4)
	test.ExpectEquality(t, q.Depth(), 4)
	test.ExpectSuccess(t, q.Empty())
	test.ExpectFailure(t, q.Full())

	r := q.Read()
	test.ExpectSuccess(t, r.Empty())
	test.ExpectFailure(t, r.Full())

	for i := range 4 {
		q.Push(uint32(i+1), true)
	}
	test.ExpectSuccess(t, q.Full())
	test.ExpectEquality(t, q.Len(), 4)

	r = q.Read()
	test.ExpectSuccess(t, r.Full())
	test.ExpectFailure(t, r.Empty())
	test.ExpectFailure(t, r.Overflow())

	// the front entry is visible in the data bits but is not removed
	test.ExpectEquality(t, r.Length(), uint32(1))
	test.ExpectEquality(t, q.Len(), 4)
}

func TestOverflow(t *testing.T) {
	q := pulsequeue.NewQueue(2)
	q.Push(10, true)
	q.Push(20, true)
	q.Push(30, true)
	test.ExpectEquality(t, q.Len(), 2)

	r := q.Read()
	test.ExpectSuccess(t, r.Overflow())

	// flag is cleared by the read
	r = q.Read()
	test.ExpectFailure(t, r.Overflow())

	// the pulse that overflowed is lost
	q.Pop()
	l, _, ok := q.Pop()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, l, uint32(20))
}

func TestUnderflow(t *testing.T) {
	q := pulsequeue.NewQueue(2)
	_, _, ok := q.Pop()
	test.ExpectFailure(t, ok)

	r := q.Read()
	test.ExpectSuccess(t, r.Underflow())
	test.ExpectSuccess(t, r.Empty())

	r = q.Read()
	test.ExpectFailure(t, r.Underflow())
}

func TestWriteIgnoresStatus(t *testing.T) {
	q := pulsequeue.NewQueue(2)
	q.Write(pulsequeue.MaskEmpty | pulsequeue.MaskFull | pulsequeue.NewRegister(5, true))
	test.ExpectEquality(t, q.Len(), 1)

	l, high, ok := q.Pop()
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, high)
	test.ExpectEquality(t, l, uint32(5))
}

func TestDrainOrder(t *testing.T) {
	q := pulsequeue.NewQueue(8)

	// wrap the queue around the end of the underlying slice
	for i := range 6 {
		q.Push(uint32(i), false)
	}
	for range 6 {
		q.Pop()
	}
	for i := range 8 {
		q.Push(uint32(100+i), i%2 == 0)
	}

	var lengths []uint32
	var levels []bool
	n := q.Drain(func(length uint32, high bool) {
		lengths = append(lengths, length)
		levels = append(levels, high)
	})

	test.DemandEquality(t, n, 8)
	for i := range 8 {
		test.ExpectEquality(t, lengths[i], uint32(100+i), i)
		test.ExpectEquality(t, levels[i], i%2 == 0, i)
	}
	test.ExpectSuccess(t, q.Empty())

	written, popped := q.Stats()
	test.ExpectEquality(t, written, uint64(14))
	test.ExpectEquality(t, popped, uint64(14))
}

func TestReset(t *testing.T) {
	q := pulsequeue.NewQueue(0)
	test.ExpectEquality(t, q.Depth(), pulsequeue.DefaultDepth)

	q.Push(1, true)
	q.Pop()
	q.Pop()
	q.Push(1, true)
	q.Reset()
	test.ExpectSuccess(t, q.Empty())
	test.ExpectFailure(t, q.Read().Underflow())
}
