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

package tape

import (
	"fmt"

	"github.com/jetsetilly/zxtape/tape/block"
)

// Action taken by the Session for a block in the tape file.
type Action int

// List of valid Action values.
const (
	// the block has been queued for the pulse generator
	Queued Action = iota

	// the block is silent and has been skipped
	Skipped

	// loop start block. a new loop frame has been pushed
	LoopStart

	// loop start block ignored because the loop stack is full
	LoopIgnored

	// loop end block. the file has been rewound to the start of the loop
	LoopRepeat

	// loop end block. the loop has finished or there was no loop frame
	LoopEnd
)

func (a Action) String() string {
	switch a {
	case Queued:
		return "queued"
	case Skipped:
		return "skipped"
	case LoopStart:
		return "loop start"
	case LoopIgnored:
		return "loop ignored"
	case LoopRepeat:
		return "loop repeat"
	case LoopEnd:
		return "loop end"
	}
	return "unknown action"
}

// Event describes a block header that has been read by the Session.
type Event struct {
	// offset of the first byte of the header in the tape file
	Offset int64

	// block ID. for TAP files this is always zero
	ID byte

	Format block.Format
	Timing block.Timing
	Action Action
}

func (e Event) String() string {
	if e.Format == block.TAP {
		return fmt.Sprintf("%#06x: TAP block (%d bytes) %s", e.Offset, e.Timing.Length, e.Action)
	}
	return fmt.Sprintf("%#06x: %s %s", e.Offset, block.Name(e.ID), e.Action)
}
