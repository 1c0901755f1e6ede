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

package fifo_test

import (
	"math/rand/v2"
	"testing"

	"github.com/jetsetilly/zxtape/tape/fifo"
	"github.com/jetsetilly/zxtape/test"
)

func TestEmptyRead(t *testing.T) {
	rb := fifo.NewRingBuffer(4)
	test.ExpectEquality(t, rb.Occupied(), 0)
	test.ExpectEquality(t, rb.Free(), 4)

	// reading from an empty buffer returns the zero sentinel
	test.ExpectEquality(t, rb.Pull(), byte(0))
	test.ExpectEquality(t, rb.Occupied(), 0)

	_, ok := rb.Front()
	test.ExpectFailure(t, ok)
}

func TestFullWrite(t *testing.T) {
	rb := fifo.NewRingBuffer(4)
	for i := range 4 {
		rb.Push(byte(i + 1))
	}
	test.ExpectEquality(t, rb.Free(), 0)

	// writing to a full buffer drops the byte
	rb.Push(0xff)
	test.ExpectEquality(t, rb.Occupied(), 4)

	for i := range 4 {
		test.ExpectEquality(t, rb.Pull(), byte(i+1))
	}
	test.ExpectEquality(t, rb.Occupied(), 0)
}

func TestPeek(t *testing.T) {
	rb := fifo.NewRingBuffer(4)
	rb.Push(0x80)
	b, ok := rb.Front()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, byte(0x80))
	test.ExpectEquality(t, rb.Occupied(), 1)
}

func TestClear(t *testing.T) {
	rb := fifo.NewRingBuffer(fifo.DefaultCapacity)
	test.ExpectEquality(t, rb.Capacity(), 48)
	rb.Push(1)
	rb.Push(2)
	rb.Pull()
	rb.Clear()
	test.ExpectEquality(t, rb.Occupied(), 0)
	test.ExpectEquality(t, rb.Free(), 48)
	rb.Push(3)
	test.ExpectEquality(t, rb.Pull(), byte(3))
}

func TestReadBulk(t *testing.T) {
	rb := fifo.NewRingBuffer(5)

	// move the cursors so that the bulk read wraps around
	for range 3 {
		rb.Push(0)
		rb.Pull()
	}
	for i := range 5 {
		rb.Push(byte(10 + i))
	}

	p := make([]byte, 3)
	n := rb.PullBulk(p)
	test.ExpectEquality(t, n, 3)
	test.ExpectEquality(t, p[0], byte(10))
	test.ExpectEquality(t, p[1], byte(11))
	test.ExpectEquality(t, p[2], byte(12))
	test.ExpectEquality(t, rb.Occupied(), 2)

	// asking for more than is available returns what is there
	p = make([]byte, 10)
	n = rb.PullBulk(p)
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, p[0], byte(13))
	test.ExpectEquality(t, p[1], byte(14))
	test.ExpectEquality(t, rb.Occupied(), 0)

	n = rb.PullBulk(p)
	test.ExpectEquality(t, n, 0)
}

// interleaved writes and reads must preserve FIFO order and never exceed
// capacity
func TestInterleavedOrder(t *testing.T) {
	rb := fifo.NewRingBuffer(fifo.DefaultCapacity)
	rnd := rand.New(rand.NewPCG(1, 2))

	var expected []byte
	var next byte

	for range 10000 {
		if rnd.IntN(2) == 0 {
			if rb.Free() > 0 {
				expected = append(expected, next)
			}
			rb.Push(next)
			next++
		} else {
			b := rb.Pull()
			if len(expected) > 0 {
				test.DemandEquality(t, b, expected[0])
				expected = expected[1:]
			} else {
				test.DemandEquality(t, b, byte(0))
			}
		}
		test.DemandEquality(t, rb.Occupied(), len(expected))
		if rb.Occupied() > rb.Capacity() {
			t.Fatalf("occupied count exceeds capacity")
		}
	}
}
