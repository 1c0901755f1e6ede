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

package pulsequeue

import (
	"fmt"
	"strings"
)

// Register is the 32 bit view of the pulse queue.
type Register uint32

// Masks for the fields of the Register.
const (
	MaskLength    Register = 0x00007fff
	MaskLevel     Register = 0x00008000
	MaskData      Register = MaskLength | MaskLevel
	MaskUnderflow Register = 0x10000000
	MaskOverflow  Register = 0x20000000
	MaskFull      Register = 0x40000000
	MaskEmpty     Register = 0x80000000
)

// MaxLength is the longest pulse that can be stored in the queue. Longer
// pulses are clamped to this value.
const MaxLength = uint32(MaskLength)

// NewRegister creates a register value with the data bits set for a pulse
// of the specified length and level.
func NewRegister(length uint32, high bool) Register {
	r := Register(min(length, MaxLength))
	if high {
		r |= MaskLevel
	}
	return r
}

// Length of the pulse in the data bits.
func (r Register) Length() uint32 {
	return uint32(r & MaskLength)
}

// High returns the level of the pulse in the data bits.
func (r Register) High() bool {
	return r&MaskLevel == MaskLevel
}

// Data returns the data bits as they are stored in the queue.
func (r Register) Data() uint16 {
	return uint16(r & MaskData)
}

// Underflow returns true if a read was made from an empty queue since the
// last time the register was read.
func (r Register) Underflow() bool {
	return r&MaskUnderflow == MaskUnderflow
}

// Overflow returns true if a write was made to a full queue since the last
// time the register was read.
func (r Register) Overflow() bool {
	return r&MaskOverflow == MaskOverflow
}

// Full returns true if the queue was full at the time of the read.
func (r Register) Full() bool {
	return r&MaskFull == MaskFull
}

// Empty returns true if the queue was empty at the time of the read.
func (r Register) Empty() bool {
	return r&MaskEmpty == MaskEmpty
}

func (r Register) String() string {
	s := strings.Builder{}
	if r.High() {
		s.WriteString(fmt.Sprintf("high %d", r.Length()))
	} else {
		s.WriteString(fmt.Sprintf("low %d", r.Length()))
	}
	if r.Empty() {
		s.WriteString(" [empty]")
	}
	if r.Full() {
		s.WriteString(" [full]")
	}
	if r.Overflow() {
		s.WriteString(" [overflow]")
	}
	if r.Underflow() {
		s.WriteString(" [underflow]")
	}
	return s.String()
}
