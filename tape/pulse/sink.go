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

package pulse

// Sink is the destination for generated pulses. On real hardware this is a
// hardware FIFO that turns each pulse into a timed level on the tape input.
//
// Callers of Generator.Step() check Full() before every call, so Push() is
// never called on a full Sink by the generator.
type Sink interface {
	Full() bool

	// Push a pulse of length ticks. High pulses toggle the tape level. Low
	// pulses hold the tape level low and are used for pauses.
	Push(length uint32, high bool)
}

// PauseLength is the length of a single low pulse emitted during the pause
// phase of a block. Pause durations are measured in these units, which at
// 3.5MHz is one millisecond.
const PauseLength = 3500
