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

// Package pulse converts the bytes in the tape ring buffer into pulses.
//
// The Generator is a state machine that works through the phases of a tape
// block: pilot tone, first and second sync pulses, data and pause. Each call
// to Step() emits at most one pulse. When the block is finished the next
// header is taken from the ring buffer and decoded.
//
// The ring buffer contains the header of each audible block followed by its
// data bytes, exactly as they appear in the tape file. If the bytes needed by
// the generator are not yet in the ring buffer then Step() returns without
// doing anything and the generator will try again on the next call.
package pulse

import (
	"github.com/jetsetilly/zxtape/tape/block"
	"github.com/jetsetilly/zxtape/tape/fifo"
)

// Result of a call to Step().
type Result int

// List of valid Result values.
const (
	// the generator is waiting for bytes to arrive in the ring buffer
	Idle Result = iota

	// a pulse has been pushed to the sink
	Pulsed

	// the generator has advanced without pushing a pulse. for example, a
	// header has been decoded or metadata bytes have been discarded
	Progress

	// the ring buffer and the current block are both empty and the end of
	// the tape file has been reached
	EndOfTape
)

func (r Result) String() string {
	switch r {
	case Idle:
		return "idle"
	case Pulsed:
		return "pulsed"
	case Progress:
		return "progress"
	case EndOfTape:
		return "end of tape"
	}
	return "unknown result"
}

// Phase of the block currently being played.
type Phase int

// List of valid Phase values.
const (
	Header Phase = iota
	Pilot
	Sync1
	Sync2
	Data
	Pause
)

func (p Phase) String() string {
	switch p {
	case Header:
		return "header"
	case Pilot:
		return "pilot"
	case Sync1:
		return "sync1"
	case Sync2:
		return "sync2"
	case Data:
		return "data"
	case Pause:
		return "pause"
	}
	return "unknown phase"
}

// Generator reads bytes from a ring buffer and pushes pulses to a Sink.
type Generator struct {
	rb     *fifo.RingBuffer
	sink   Sink
	format block.Format

	// header being assembled from the ring buffer. one byte larger than the
	// largest header to allow room for the TAP flag byte
	header     [block.MaxHeaderSize]byte
	headerPos  int
	headerSize int

	// the block being played
	timing block.Timing

	// the data byte being modulated and the number of pulses remaining for
	// it. each bit is two pulses so a full byte starts at 16
	data    byte
	dataBit int
}

// NewGenerator is the preferred method of initialisation for the Generator
// type.
func NewGenerator(rb *fifo.RingBuffer, sink Sink) *Generator {
	return &Generator{
		rb:   rb,
		sink: sink,
	}
}

// Reset the generator so that the next call to Step() begins by reading a
// header in the specified format. Any block being played is discarded.
func (g *Generator) Reset(format block.Format) {
	g.format = format
	g.headerPos = 0
	g.headerSize = 0
	g.timing = block.Timing{}
	g.data = 0
	g.dataBit = 0
}

// Timing returns a copy of the timing of the block being played. Counts in
// the timing are the number of pulses or bytes remaining.
func (g *Generator) Timing() block.Timing {
	return g.timing
}

// Phase returns the current phase of the block being played.
func (g *Generator) Phase() Phase {
	switch {
	case g.timing.PilotCount > 0:
		return Pilot
	case g.timing.SyncPhase >= 2:
		return Sync1
	case g.timing.SyncPhase == 1:
		return Sync2
	case g.timing.Length > 0:
		return Data
	case g.timing.Pause > 0:
		return Pause
	}
	return Header
}

// Step advances the generator by at most one pulse. The finished argument
// indicates that no more bytes will be added to the ring buffer.
//
// The caller should make sure the sink is not full before calling Step().
func (g *Generator) Step(finished bool) Result {
	result := Idle

	if g.timing.Empty() {
		if !g.nextHeader() {
			if finished && g.rb.Occupied() == 0 {
				g.headerPos = 0
				return EndOfTape
			}
			return Idle
		}
		result = Progress
	}

	switch g.Phase() {
	case Pilot:
		g.sink.Push(g.timing.Pilot, true)
		g.timing.PilotCount--
		return Pulsed

	case Sync1:
		g.sink.Push(g.timing.Sync1, true)
		g.timing.SyncPhase--
		return Pulsed

	case Sync2:
		g.sink.Push(g.timing.Sync2, true)
		g.timing.SyncPhase--
		return Pulsed

	case Data:
		switch g.timing.Category {
		case block.Audio:
			if r := g.stepAudio(finished); r != Idle {
				return r
			}
		case block.Sequence:
			if r := g.stepSequence(finished); r != Idle {
				return r
			}
		default:
			if r := g.stepMetadata(finished); r != Idle {
				return r
			}
		}

	case Pause:
		g.sink.Push(PauseLength, false)
		g.timing.Pause--
		return Pulsed
	}

	return result
}

// nextHeader reads as much of the next header from the ring buffer as
// possible. Returns true if a header has been decoded.
func (g *Generator) nextHeader() bool {
	for g.rb.Occupied() > 0 && (g.headerPos == 0 || g.headerPos < g.headerSize) {
		g.header[g.headerPos] = g.rb.Pull()
		g.headerPos++
		if g.headerPos == 1 {
			g.headerSize = block.HeaderSize(g.header[0], g.format)
		}
	}

	if g.headerPos == 0 || g.headerPos < g.headerSize {
		return false
	}

	hdr := g.header[:g.headerSize]

	// the pilot length of a TAP block depends on the flag byte, which is the
	// first data byte. it is left in the ring buffer to be played as data
	if g.format == block.TAP && block.Decode(hdr, g.format).Length > 0 {
		flag, ok := g.rb.Front()
		if !ok {
			return false
		}
		g.header[g.headerSize] = flag
		hdr = g.header[:g.headerSize+1]
	}

	g.timing = block.Decode(hdr, g.format)
	g.headerPos = 0
	g.headerSize = 0
	g.dataBit = 0

	return true
}

// starved is called when the data phase needs more bytes than are in the ring
// buffer. if the tape has finished then the bytes will never arrive and the
// block is abandoned. this happens when the declared length of a block is
// longer than the remainder of the file
func (g *Generator) starved(finished bool) Result {
	if finished {
		g.timing.Clear()
		g.dataBit = 0
		return Progress
	}
	return Idle
}

func (g *Generator) stepAudio(finished bool) Result {
	if g.dataBit == 0 {
		if g.rb.Occupied() == 0 {
			return g.starved(finished)
		}
		g.data = g.rb.Pull()
		g.dataBit = 16
	}

	if g.data&0x80 == 0x80 {
		g.sink.Push(g.timing.One, true)
	} else {
		g.sink.Push(g.timing.Zero, true)
	}

	// shift to the next bit after every second pulse
	if g.dataBit&0x01 == 0x01 {
		g.data <<= 1
	}
	g.dataBit--

	if g.dataBit == 0 {
		g.timing.Length--
	} else if g.timing.Length == 1 && g.dataBit == g.timing.LastBit {
		// unused bits in the final byte are not played
		g.timing.Length = 0
		g.dataBit = 0
	}

	return Pulsed
}

func (g *Generator) stepSequence(finished bool) Result {
	if g.rb.Occupied() < 2 {
		return g.starved(finished)
	}

	var p [2]byte
	g.rb.PullBulk(p[:])
	g.sink.Push(block.Convert(uint32(p[0])|uint32(p[1])<<8), true)
	g.timing.Length = max(g.timing.Length-2, 0)

	return Pulsed
}

func (g *Generator) stepMetadata(finished bool) Result {
	if g.rb.Occupied() == 0 {
		return g.starved(finished)
	}
	for g.rb.Occupied() > 0 && g.timing.Length > 0 {
		g.rb.Pull()
		g.timing.Length--
	}
	return Progress
}
