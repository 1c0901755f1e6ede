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

// Package tape plays TAP and TZX tape images. A Session streams the bytes of
// the tape file into a ring buffer and a pulse.Generator converts the bytes
// into pulses, which are pushed to a pulse.Sink.
//
// The Session does not block and has no goroutines of its own. Tick() should
// be called regularly, usually once per iteration of the main loop. Each call
// tops up the ring buffer from the tape file and then generates pulses until
// the sink is full or the ring buffer runs dry.
//
// Blocks that produce no sound are never added to the ring buffer. The
// Session skips them by seeking past their data. The TZX loop blocks are also
// handled by the Session by seeking back to the start of the loop.
//
// The Session stops automatically when the end of the tape is reached and
// every pulse has been generated.
package tape
