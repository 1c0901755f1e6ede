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

var names = map[byte]string{
	IDStandardSpeed:   "standard speed data",
	IDTurboSpeed:      "turbo speed data",
	IDPureTone:        "pure tone",
	IDPulseSequence:   "pulse sequence",
	IDPureData:        "pure data",
	IDDirectRecording: "direct recording",
	0x18:              "CSW recording",
	0x19:              "generalized data",
	IDPause:           "pause",
	IDGroupStart:      "group start",
	IDGroupEnd:        "group end",
	IDJump:            "jump to block",
	IDLoopStart:       "loop start",
	IDLoopEnd:         "loop end",
	0x26:              "call sequence",
	0x27:              "return from sequence",
	0x28:              "select block",
	0x2a:              "stop the tape if in 48K mode",
	0x2b:              "set signal level",
	IDTextDescription: "text description",
	IDMessage:         "message",
	IDArchiveInfo:     "archive info",
	IDHardwareType:    "hardware type",
	IDEmulationInfo:   "emulation info",
	IDCustomInfo:      "custom info",
	IDSnapshot:        "snapshot",
	IDGlue:            "glue",
}

// Name returns a descriptive name for the TZX block ID.
func Name(id byte) string {
	if n, ok := names[id]; ok {
		return n
	}
	return fmt.Sprintf("unknown (%#02x)", id)
}
