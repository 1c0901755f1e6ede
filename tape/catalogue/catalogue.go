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

// Package catalogue lists the blocks in a tape file without playing it. The
// list includes the text found in description blocks and the names of
// programs saved by the ROM, and an estimate of how long each block takes to
// play.
//
// Loops are listed as they appear in the file and are not expanded.
package catalogue

import (
	"fmt"
	"strings"
	"time"

	"github.com/jetsetilly/zxtape/curated"
	"github.com/jetsetilly/zxtape/sonify"
	"github.com/jetsetilly/zxtape/tape/block"
	"github.com/jetsetilly/zxtape/tape/pulse"
)

// NoData is returned by New() when there is no data.
const NoData = "catalogue: no data"

// Entry in the catalogue.
type Entry struct {
	// offset of the block from the start of the file
	Offset int

	// TZX block ID. always zero for TAP files
	ID byte

	Name       string
	HeaderSize int
	Timing     block.Timing
	Audible    bool

	// length of the block data actually present in the file. this will be
	// less than the length in the Timing if the file is truncated
	Length int

	// repeat count of a loop start block
	Repeat int

	// text from description blocks or the name of a program or file in a
	// ROM header block
	Text string

	// length of the block in ticks when played
	Ticks int64

	// the block extends beyond the end of the file
	Truncated bool
}

// Duration of the block when played.
func (e Entry) Duration() time.Duration {
	return ticksToDuration(e.Ticks)
}

func ticksToDuration(ticks int64) time.Duration {
	return time.Duration(ticks * int64(time.Second) / sonify.DefaultClock)
}

// Catalogue of a tape file.
type Catalogue struct {
	Format block.Format

	// TZX version number as a string. for example, "1.20"
	Version string

	// size of the file in bytes
	Size int

	Entries []Entry

	// the final block of the file is incomplete
	Truncated bool
}

// New creates a catalogue of the tape file data.
func New(data []byte) (*Catalogue, error) {
	if len(data) == 0 {
		return nil, curated.Errorf(NoData)
	}

	cat := &Catalogue{
		Format: block.TAP,
		Size:   len(data),
	}

	pos := 0
	if block.IsTZX(data) {
		cat.Format = block.TZX
		cat.Version = fmt.Sprintf("%d.%02d", data[8], data[9])
		pos = block.SignatureLen
	}

	for pos < len(data) {
		size := block.HeaderSize(data[pos], cat.Format)
		if pos+size > len(data) {
			cat.Truncated = true
			break
		}

		hdr := data[pos : pos+size]
		start := pos + size

		e := Entry{
			Offset:     pos,
			HeaderSize: size,
			Timing:     block.Decode(hdr, cat.Format),
		}

		// the flag byte of a TAP block decides the length of the pilot tone.
		// an empty block has no flag byte and the next byte belongs to the
		// following block
		if cat.Format == block.TAP && e.Timing.Length > 0 && start < len(data) {
			flagHdr := append([]byte{}, hdr...)
			flagHdr = append(flagHdr, data[start])
			e.Timing = block.Decode(flagHdr, cat.Format)
		}
		e.Audible = e.Timing.Audible()

		end := start + e.Timing.Length
		if end > len(data) || end < start {
			e.Truncated = true
			cat.Truncated = true
			end = len(data)
		}
		payload := data[start:end]
		e.Length = len(payload)

		if cat.Format == block.TZX {
			e.ID = hdr[0]
			e.Name = block.Name(e.ID)
			if e.ID == block.IDLoopStart {
				e.Repeat = block.LoopCount(hdr)
			}
			e.Text = tzxText(hdr, payload)
		} else {
			e.Name, e.Text = tapDescription(payload)
		}

		if e.Audible {
			e.Ticks = ticks(e.Timing, payload)
		}

		cat.Entries = append(cat.Entries, e)
		pos = end
	}

	return cat, nil
}

// Ticks returns the total length of every block in the catalogue. Loops are
// not expanded.
func (cat *Catalogue) Ticks() int64 {
	var t int64
	for _, e := range cat.Entries {
		t += e.Ticks
	}
	return t
}

// Duration of the tape when played. Loops are not expanded.
func (cat *Catalogue) Duration() time.Duration {
	return ticksToDuration(cat.Ticks())
}

// ticks calculates the length of an audible block
func ticks(tm block.Timing, payload []byte) int64 {
	var t int64

	t += int64(tm.PilotCount) * int64(tm.Pilot)
	if tm.SyncPhase >= 2 {
		t += int64(tm.Sync1)
	}
	if tm.SyncPhase >= 1 {
		t += int64(tm.Sync2)
	}

	switch tm.Category {
	case block.Audio:
		for i, b := range payload {
			bits := 8
			if i == len(payload)-1 && tm.LastBit > 0 {
				bits -= tm.LastBit / 2
			}
			for range bits {
				if b&0x80 == 0x80 {
					t += 2 * int64(tm.One)
				} else {
					t += 2 * int64(tm.Zero)
				}
				b <<= 1
			}
		}
	case block.Sequence:
		for i := 0; i+1 < len(payload); i += 2 {
			t += int64(block.Convert(uint32(payload[i]) | uint32(payload[i+1])<<8))
		}
	}

	t += int64(tm.Pause) * pulse.PauseLength

	return t
}

// printable replaces control characters and anything outside of the ASCII
// range with a full stop
func printable(b []byte) string {
	s := strings.Builder{}
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			s.WriteByte('.')
		} else {
			s.WriteByte(c)
		}
	}
	return strings.TrimSpace(s.String())
}

// names of the fields in an archive info block
var archiveFields = map[byte]string{
	0x00: "title",
	0x01: "publisher",
	0x02: "author",
	0x03: "year",
	0x04: "language",
	0x05: "type",
	0x06: "price",
	0x07: "protection",
	0x08: "origin",
	0xff: "comment",
}

func tzxText(hdr []byte, payload []byte) string {
	switch hdr[0] {
	case block.IDGroupStart, block.IDTextDescription, block.IDMessage:
		return printable(payload)

	case block.IDArchiveInfo:
		if len(payload) == 0 {
			return ""
		}
		var parts []string
		n := int(payload[0])
		p := payload[1:]
		for range n {
			if len(p) < 2 || len(p) < 2+int(p[1]) {
				break
			}
			field, ok := archiveFields[p[0]]
			if !ok {
				field = fmt.Sprintf("%#02x", p[0])
			}
			parts = append(parts, fmt.Sprintf("%s: %s", field, printable(p[2:2+int(p[1])])))
			p = p[2+int(p[1]):]
		}
		return strings.Join(parts, "; ")
	}
	return ""
}

// types of file saved by the ROM
var romFileTypes = [...]string{"program", "number array", "character array", "bytes"}

// the data of a ROM header block is the flag byte, the file type, a ten
// character name, three words of parameters and a checksum
const romHeaderLen = 19

func tapDescription(payload []byte) (string, string) {
	if len(payload) == 0 {
		return "empty block", ""
	}
	if payload[0] >= 0x80 {
		return "data block", ""
	}
	if len(payload) != romHeaderLen || int(payload[1]) >= len(romFileTypes) {
		return "header block", ""
	}
	return "header block", fmt.Sprintf("%s: %s", romFileTypes[payload[1]], printable(payload[2:12]))
}
