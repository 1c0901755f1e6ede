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

// Package pulsequeue models the hardware pulse FIFO that the tape player
// writes to. Each entry in the queue is a sixteen bit word: the low fifteen
// bits are the length of the pulse in clock ticks and the top bit is the
// level of the pulse.
//
// The queue is accessed through a 32 bit register. Writing the register adds
// the data bits as a new entry. Reading the register returns the status of
// the queue in the top four bits along with the entry at the front of the
// queue:
//
//	bits 0 to 14   pulse length
//	bit 15         pulse level
//	bit 28         underflow (sticky until read)
//	bit 29         overflow (sticky until read)
//	bit 30         full
//	bit 31         empty
//
// The Queue type also implements the pulse.Sink interface so that it can be
// given directly to the tape player. Consumers of the pulses, such as the
// audio monitor or the WAV writer, remove entries with Pop() or Drain().
//
// The Queue is safe to use from more than one goroutine.
package pulsequeue
