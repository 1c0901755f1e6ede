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

package audiomonitor_test

import (
	"testing"

	"github.com/jetsetilly/zxtape/audiomonitor"
	"github.com/jetsetilly/zxtape/test"
)

// a clock equal to the sample rate makes one tick one sample
const clock = audiomonitor.SampleRate

func TestFill(t *testing.T) {
	b := audiomonitor.NewBuffer(clock, 16)
	b.Pulse(3, true)
	b.Pulse(2, true)
	test.ExpectEquality(t, b.Len(), 5)

	dst := make([]float32, 8)
	for i := range dst {
		dst[i] = 99
	}
	n := b.Fill(dst)
	test.ExpectEquality(t, n, 5)
	test.ExpectEquality(t, b.Len(), 0)

	test.ExpectEquality(t, dst[0], float32(0.25))
	test.ExpectEquality(t, dst[2], float32(0.25))
	test.ExpectEquality(t, dst[3], float32(-0.25))
	test.ExpectEquality(t, dst[4], float32(-0.25))

	// silence when the buffer runs dry
	test.ExpectEquality(t, dst[5], float32(0))
	test.ExpectEquality(t, dst[7], float32(0))

	underrun, overrun := b.Stats()
	test.ExpectEquality(t, underrun, 3)
	test.ExpectEquality(t, overrun, 0)
}

func TestOverrun(t *testing.T) {
	b := audiomonitor.NewBuffer(clock, 4)
	b.Pulse(6, true)
	test.ExpectEquality(t, b.Len(), 4)
	_, overrun := b.Stats()
	test.ExpectEquality(t, overrun, 2)

	// wrap around the end of the buffer
	dst := make([]float32, 3)
	b.Fill(dst)
	b.Pulse(3, true)
	test.ExpectEquality(t, b.Len(), 4)

	dst = make([]float32, 4)
	test.ExpectEquality(t, b.Fill(dst), 4)
	test.ExpectEquality(t, dst[0], float32(0.25))
	test.ExpectEquality(t, dst[1], float32(-0.25))
	test.ExpectEquality(t, dst[3], float32(-0.25))

	b.Pulse(2, true)
	b.Reset()
	test.ExpectEquality(t, b.Len(), 0)
}
