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

import "bytes"

// List of TZX block IDs with special handling.
const (
	IDStandardSpeed   = 0x10
	IDTurboSpeed      = 0x11
	IDPureTone        = 0x12
	IDPulseSequence   = 0x13
	IDPureData        = 0x14
	IDDirectRecording = 0x15
	IDPause           = 0x20
	IDGroupStart      = 0x21
	IDGroupEnd        = 0x22
	IDJump            = 0x23
	IDLoopStart       = 0x24
	IDLoopEnd         = 0x25
	IDTextDescription = 0x30
	IDMessage         = 0x31
	IDArchiveInfo     = 0x32
	IDHardwareType    = 0x33
	IDEmulationInfo   = 0x34
	IDCustomInfo      = 0x35
	IDSnapshot        = 0x40
	IDGlue            = 0x5a
)

// Signature is found at the start of every TZX file. It is followed by a
// major and minor version number.
const Signature = "ZXTape!\x1a"

// SignatureLen is the number of bytes that should be read from the start of a
// file in order to test for the TZX format. The probe includes the version
// bytes.
const SignatureLen = 10

// IsTZX returns true if the probe data begins with the TZX signature.
func IsTZX(probe []byte) bool {
	return len(probe) >= SignatureLen && bytes.HasPrefix(probe, []byte(Signature))
}

// MaxHeaderSize is the largest value that HeaderSize() will return, plus one
// byte for the TAP flag byte. See Decode() for how the flag byte is used.
const MaxHeaderSize = 0x20

// TAPHeaderSize is the size of the header for every block in a TAP file.
const TAPHeaderSize = 2

// the default header size for IDs that are not in the header size table. it
// covers the ID byte and a four byte length, which is how the decoder handles
// unrecognised blocks
const unknownHeaderSize = 5

// header sizes for TZX IDs 0x10 to 0x35 inclusive. the value includes the ID
// byte itself
var tzxHeaderSize = [...]int{
	5, 19, 5, 2, 11, 9, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, // 0x10
	3, 2, 1, 3, 3, 1, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, // 0x20
	2, 3, 3, 2, 9, 0x15, // 0x30
}

// HeaderSize returns the number of header bytes, including the ID byte, for
// the block ID. In TAP format the size is always TAPHeaderSize and the id
// argument is ignored.
func HeaderSize(id byte, format Format) int {
	if format == TAP {
		return TAPHeaderSize
	}

	switch {
	case id == IDGlue:
		return 10
	case id == IDSnapshot:
		return 5
	case id >= 0x10 && int(id-0x10) < len(tzxHeaderSize):
		return tzxHeaderSize[id-0x10]
	}

	return unknownHeaderSize
}

// reads return zero for any byte outside the header. Decode() is therefore
// safe to call with a short header, although the result is unlikely to be
// meaningful
type header []byte

func (h header) byte(i int) byte {
	if i < 0 || i >= len(h) {
		return 0
	}
	return h[i]
}

func (h header) word(i int) int {
	return int(h.byte(i)) | int(h.byte(i+1))<<8
}

func (h header) word3(i int) int {
	return h.word(i) | int(h.byte(i+2))<<16
}

func (h header) dword(i int) int {
	return h.word3(i) | int(h.byte(i+3))<<24
}

// Convert a nominal pulse width to ticks of the emulated clock.
func Convert(ticks uint32) uint32 {
	return ticks * 111 / 100
}

// Standard ROM loader pulse widths in nominal ticks.
const (
	StandardPilot = 2168
	StandardSync1 = 667
	StandardSync2 = 735
	StandardZero  = 855
	StandardOne   = 1710
)

// Pilot pulse counts. The TAP format does not specify the pilot length so the
// flag byte, which is the first byte of the block data, decides which is used.
const (
	PilotHeader = 6000
	PilotData   = 3000
)

// TAPPause is the length of the pause in milliseconds after each TAP block.
const TAPPause = 2000

// Decode the header bytes according to the format.
//
// For TAP format the header is the two length bytes. Optionally, the flag
// byte of the block may be supplied as a third byte. If it is present and has
// the high bit set then the block is a data block and the shorter pilot tone
// is used.
//
// For TZX format the first byte is the block ID and the header should be the
// length given by HeaderSize().
func Decode(hdr []byte, format Format) Timing {
	h := header(hdr)

	tm := Timing{
		Pilot: Convert(StandardPilot),
		Sync1: Convert(StandardSync1),
		Sync2: Convert(StandardSync2),
		Zero:  Convert(StandardZero),
		One:   Convert(StandardOne),
	}

	if format == TAP {
		tm.PilotCount = PilotHeader
		if len(h) > TAPHeaderSize && h.byte(TAPHeaderSize) >= 0x80 {
			tm.PilotCount = PilotData
		}
		tm.SyncPhase = 2
		tm.Pause = TAPPause
		tm.Length = h.word(0)
		tm.Category = Audio
		return tm
	}

	switch h.byte(0) {
	case IDStandardSpeed:
		tm.PilotCount = PilotHeader
		tm.SyncPhase = 2
		tm.Pause = h.word(1)
		tm.Length = h.word(3)
		tm.Category = Audio

	case IDTurboSpeed:
		tm.Pilot = Convert(uint32(h.word(1)))
		tm.Sync1 = Convert(uint32(h.word(3)))
		tm.Sync2 = Convert(uint32(h.word(5)))
		tm.Zero = Convert(uint32(h.word(7)))
		tm.One = Convert(uint32(h.word(9)))
		tm.PilotCount = h.word(11)
		tm.SyncPhase = 2
		tm.LastBit = lastBit(h.byte(13))
		tm.Pause = h.word(14)
		tm.Length = h.word3(16)
		tm.Category = Audio

	case IDPureTone:
		tm.Pilot = Convert(uint32(h.word(1)))
		tm.PilotCount = h.word(3)

	case IDPulseSequence:
		tm.Length = int(h.byte(1)) * 2
		tm.Category = Sequence

	case IDPureData:
		tm.Zero = Convert(uint32(h.word(1)))
		tm.One = Convert(uint32(h.word(3)))
		tm.LastBit = lastBit(h.byte(5))
		tm.Pause = h.word(6)
		tm.Length = h.word3(8)
		tm.Category = Audio

	case IDDirectRecording:
		tm.Length = h.word3(6)
		tm.Category = Metadata

	case IDPause:
		// a pause of zero means "stop the tape", which is not supported. the
		// block is then silent and will be skipped
		tm.Pause = h.word(1)

	case IDGroupStart, IDTextDescription:
		tm.Length = int(h.byte(1))
		tm.Category = Metadata

	case IDGroupEnd, IDJump, IDLoopStart, IDLoopEnd, IDEmulationInfo, IDGlue:
		// no data

	case IDMessage:
		tm.Length = int(h.byte(2))
		tm.Category = Metadata

	case IDArchiveInfo:
		tm.Length = h.word(1)
		tm.Category = Metadata

	case IDHardwareType:
		tm.Length = int(h.byte(1)) * 3
		tm.Category = Metadata

	case IDCustomInfo:
		tm.Length = h.dword(0x11)
		tm.Category = Metadata

	case IDSnapshot:
		tm.Length = h.word3(2)
		tm.Category = Metadata

	default:
		// unrecognised blocks are assumed to have a four byte length after
		// the ID. this is true for many extension blocks but not all
		tm.Length = h.dword(1)
		tm.Category = Metadata
	}

	return tm
}

// lastBit converts the "used bits in the last byte" field of a TZX header to
// the number of pulses to be dropped from the final byte.
func lastBit(used byte) int {
	if used == 0 || used > 8 {
		return 0
	}
	return int(8-used) * 2
}

// LoopCount returns the repetition count of a loop start header.
func LoopCount(hdr []byte) int {
	return header(hdr).word(1)
}

// Known returns true if the block ID has a layout that Decode() understands.
// Other blocks are skipped using a four byte length that follows the ID, which
// is correct for many extension blocks but not all of them.
func Known(id byte) bool {
	switch id {
	case IDStandardSpeed, IDTurboSpeed, IDPureTone, IDPulseSequence, IDPureData,
		IDDirectRecording, IDPause, IDGroupStart, IDGroupEnd, IDJump, IDLoopStart,
		IDLoopEnd, IDTextDescription, IDMessage, IDArchiveInfo, IDHardwareType,
		IDEmulationInfo, IDCustomInfo, IDSnapshot, IDGlue:
		return true
	}
	return false
}
