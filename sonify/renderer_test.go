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

package sonify_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/zxtape/sonify"
	"github.com/jetsetilly/zxtape/test"
)

func TestLevels(t *testing.T) {
	r := sonify.NewRenderer(1000, 1000)

	level, n := r.Pulse(3, true)
	test.ExpectSuccess(t, level)
	test.ExpectEquality(t, n, 3)

	level, n = r.Pulse(2, true)
	test.ExpectFailure(t, level)
	test.ExpectEquality(t, n, 2)

	level, _ = r.Pulse(2, true)
	test.ExpectSuccess(t, level)

	// low pulses always force the low level
	level, n = r.Pulse(4, false)
	test.ExpectFailure(t, level)
	test.ExpectEquality(t, n, 4)
	level, _ = r.Pulse(4, false)
	test.ExpectFailure(t, level)

	test.ExpectEquality(t, r.Samples(), 3+2+2+4+4)
	test.ExpectEquality(t, r.Duration(), 15*time.Millisecond)
}

func TestNoDrift(t *testing.T) {
	r := sonify.NewRenderer(sonify.DefaultClock, sonify.DefaultSampleRate)

	// one second of pilot tone pulses. no single pulse is a whole number of
	// samples but the total must be
	const pilot = 2406
	total := 0
	pulses := 0
	for ticks := 0; ticks+pilot <= sonify.DefaultClock; ticks += pilot {
		_, n := r.Pulse(pilot, true)
		total += n
		pulses++
	}

	expected := pulses * pilot * sonify.DefaultSampleRate / sonify.DefaultClock
	test.ExpectEquality(t, total, expected)
	test.ExpectEquality(t, r.Samples(), total)
	test.ExpectApproximate(t, r.Duration().Seconds(), 1.0, 0.01)

	r.Reset()
	test.ExpectEquality(t, r.Samples(), 0)
}

func TestDefaults(t *testing.T) {
	r := sonify.NewRenderer(0, 0)
	test.ExpectEquality(t, r.Rate(), sonify.DefaultSampleRate)
	test.ExpectEquality(t, sonify.Sample(true), sonify.Amplitude)
	test.ExpectEquality(t, sonify.Sample(false), -sonify.Amplitude)
}
