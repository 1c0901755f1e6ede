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

package block

import "fmt"

// Format of the tape image being decoded.
type Format int

// List of valid Format values.
const (
	TAP Format = iota
	TZX
)

func (f Format) String() string {
	switch f {
	case TAP:
		return "TAP"
	case TZX:
		return "TZX"
	}
	return "unknown format"
}

// Category describes how the data bytes that follow a header are to be
// treated by the pulse generator.
type Category int

// List of valid Category values.
const (
	// data bytes are modulated bit by bit using the zero and one pulse widths
	Audio Category = iota

	// each pair of data bytes is a little endian pulse width
	Sequence

	// data bytes are consumed but produce no pulses
	Metadata
)

func (c Category) String() string {
	switch c {
	case Audio:
		return "audio"
	case Sequence:
		return "sequence"
	case Metadata:
		return "metadata"
	}
	return "unknown category"
}

// Timing is the decoded form of a block header. It is consumed by the pulse
// generator as the block is played: counts are decremented as pulses are
// emitted and the block is finished when Empty() returns true.
type Timing struct {
	// pulse widths in ticks
	Pilot uint32
	Sync1 uint32
	Sync2 uint32
	Zero  uint32
	One   uint32

	// number of pilot pulses
	PilotCount int

	// sync phase counter. the first sync pulse is emitted when the value is
	// two and the second sync pulse when the value is one
	SyncPhase int

	// number of pause units (milliseconds) after the data
	Pause int

	// the number of pulses that are not sonified in the final byte of data.
	// each bit is two pulses so the value is always even
	LastBit int

	// number of data bytes remaining
	Length int

	Category Category
}

func (tm Timing) String() string {
	return fmt.Sprintf("pilot %d x %d, sync %d/%d (%d), zero %d, one %d, pause %dms, length %d (%s)",
		tm.PilotCount, tm.Pilot, tm.Sync1, tm.Sync2, tm.SyncPhase, tm.Zero, tm.One,
		tm.Pause, tm.Length, tm.Category)
}

// Empty returns true if the block has nothing left to play.
func (tm Timing) Empty() bool {
	return tm.PilotCount == 0 && tm.SyncPhase == 0 && tm.Pause == 0 && tm.Length == 0
}

// Audible returns true if the block produces any pulses when played. Blocks
// that are not audible are never sent to the pulse generator.
func (tm Timing) Audible() bool {
	return tm.PilotCount > 0 || tm.SyncPhase > 0 || tm.Pause > 0 || (tm.Length > 0 && tm.Category != Metadata)
}

// Clear the counts in the Timing instance so that the block is Empty(). Pulse
// widths are untouched.
func (tm *Timing) Clear() {
	tm.PilotCount = 0
	tm.SyncPhase = 0
	tm.Pause = 0
	tm.Length = 0
}
