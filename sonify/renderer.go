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

// Package sonify converts pulses into the square wave that would be heard on
// the EAR socket of the computer. A high pulse flips the level of the wave and
// holds the new level for the length of the pulse. A low pulse forces the wave
// low for the length of the pulse.
package sonify

import "time"

// DefaultClock is the frequency in Hz of the ticks that pulse lengths are
// measured in. Pulse lengths are scaled by 111/100 from the 3.5MHz clock of
// the computer.
const DefaultClock = 3885000

// DefaultSampleRate of the rendered wave.
const DefaultSampleRate = 44100

// Amplitude of the rendered wave as a signed 16 bit sample.
const Amplitude = 0x3fff

// Renderer converts pulse lengths to a number of samples at the sample rate.
// Fractions of a sample are carried over to the next pulse so the length of
// the rendered wave does not drift.
type Renderer struct {
	clock int64
	rate  int64

	level bool

	// remainder of ticks multiplied by the sample rate
	acc int64

	ticks   int64
	samples int64
}

// NewRenderer is the preferred method of initialisation for the Renderer
// type. Values of zero or less for clock or rate use the default values.
func NewRenderer(clock int, rate int) *Renderer {
	if clock <= 0 {
		clock = DefaultClock
	}
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &Renderer{
		clock: int64(clock),
		rate:  int64(rate),
	}
}

// Rate returns the sample rate of the Renderer.
func (r *Renderer) Rate() int {
	return int(r.rate)
}

// Pulse returns the level of the wave for the pulse and the number of
// samples for which it should be held.
func (r *Renderer) Pulse(length uint32, high bool) (bool, int) {
	if high {
		r.level = !r.level
	} else {
		r.level = false
	}

	r.acc += int64(length) * r.rate
	n := r.acc / r.clock
	r.acc -= n * r.clock

	r.ticks += int64(length)
	r.samples += n

	return r.level, int(n)
}

// Sample returns the signed sample value for the level.
func Sample(level bool) int {
	if level {
		return Amplitude
	}
	return -Amplitude
}

// Duration of the pulses rendered so far.
func (r *Renderer) Duration() time.Duration {
	return time.Duration(r.ticks * int64(time.Second) / r.clock)
}

// Samples returns the number of samples rendered so far.
func (r *Renderer) Samples() int {
	return int(r.samples)
}

// Reset the renderer to the low level with no carried over fraction.
func (r *Renderer) Reset() {
	r.level = false
	r.acc = 0
	r.ticks = 0
	r.samples = 0
}
