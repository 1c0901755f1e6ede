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

package catalogue_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/zxtape/curated"
	"github.com/jetsetilly/zxtape/tape/block"
	"github.com/jetsetilly/zxtape/tape/catalogue"
	"github.com/jetsetilly/zxtape/test"
)

func tzx(blocks ...byte) []byte {
	d := []byte(block.Signature)
	d = append(d, 0x01, 0x14)
	return append(d, blocks...)
}

// a ROM header for a program called "manic" followed by a two byte data block
func tapFile() []byte {
	d := []byte{0x13, 0x00, 0x00, 0x00}
	d = append(d, []byte("manic     ")...)
	d = append(d, make([]byte, 7)...)
	d = append(d, 0x04, 0x00, 0xff, 0xaa, 0x55, 0x00)
	return d
}

func TestNoData(t *testing.T) {
	_, err := catalogue.New(nil)
	test.ExpectSuccess(t, curated.Is(err, catalogue.NoData))
}

func TestTAP(t *testing.T) {
	cat, err := catalogue.New(tapFile())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cat.Format, block.TAP)
	test.ExpectFailure(t, cat.Truncated)
	test.DemandEquality(t, len(cat.Entries), 2)

	e := cat.Entries[0]
	test.ExpectEquality(t, e.Offset, 0)
	test.ExpectEquality(t, e.Name, "header block")
	test.ExpectEquality(t, e.Text, "program: manic")
	test.ExpectEquality(t, e.Length, 19)
	test.ExpectEquality(t, e.Timing.PilotCount, block.PilotHeader)

	e = cat.Entries[1]
	test.ExpectEquality(t, e.Offset, 21)
	test.ExpectEquality(t, e.Name, "data block")
	test.ExpectEquality(t, e.Length, 4)
	test.ExpectEquality(t, e.Timing.PilotCount, block.PilotData)
	test.ExpectSuccess(t, e.Audible)
}

func TestEmptyTAPBlockPilot(t *testing.T) {
	// an empty block followed by a block of 0x80 bytes. the low byte of the
	// second length must not be mistaken for a flag byte
	data := []byte{0x00, 0x00, 0x80, 0x00}
	data = append(data, make([]byte, 0x80)...)

	cat, err := catalogue.New(data)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cat.Truncated)
	test.DemandEquality(t, len(cat.Entries), 2)

	e := cat.Entries[0]
	test.ExpectEquality(t, e.Name, "empty block")
	test.ExpectEquality(t, e.Timing.PilotCount, block.PilotHeader)

	pilot := int64(block.PilotHeader) * int64(block.Convert(block.StandardPilot))
	sync := int64(block.Convert(block.StandardSync1)) + int64(block.Convert(block.StandardSync2))
	test.ExpectEquality(t, e.Ticks, pilot+sync+block.TAPPause*3500)

	e = cat.Entries[1]
	test.ExpectEquality(t, e.Offset, 2)
	test.ExpectEquality(t, e.Length, 0x80)
	test.ExpectEquality(t, e.Timing.PilotCount, block.PilotHeader)
}

func TestTicks(t *testing.T) {
	// turbo block. one pilot pulse, one data byte with four bits used and a
	// one millisecond pause
	data := tzx(
		0x11, 0x64, 0x00, 0xc8, 0x00, 0x2c, 0x01, 0x90, 0x01, 0xf4, 0x01,
		0x01, 0x00, 0x04, 0x01, 0x00, 0x01, 0x00, 0x00,
		0xa0,
	)
	cat, err := catalogue.New(data)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(cat.Entries), 1)

	// 0xa0 is 1010 and the remaining four bits are not played
	pilot := int64(block.Convert(100))
	sync := int64(block.Convert(200)) + int64(block.Convert(300))
	zero := int64(block.Convert(400))
	one := int64(block.Convert(500))
	expected := pilot + sync + 2*(one+zero+one+zero) + 3500
	test.ExpectEquality(t, cat.Entries[0].Ticks, expected)
	test.ExpectEquality(t, cat.Ticks(), expected)
}

func TestTZX(t *testing.T) {
	data := tzx(
		0x30, 0x05, 'h', 'e', 'l', 'l', 'o',
		0x24, 0x02, 0x00,
		0x12, 0x64, 0x00, 0x02, 0x00,
		0x25,
		0x32, 0x09, 0x00, 0x02, 0x00, 0x02, 'J', 'S', 0x02, 0x02, 'M', 'S',
		0x13, 0x02, 0x00, 0x01, 0x64, 0x00,
	)

	cat, err := catalogue.New(data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cat.Format, block.TZX)
	test.ExpectEquality(t, cat.Version, "1.20")
	test.ExpectFailure(t, cat.Truncated)
	test.DemandEquality(t, len(cat.Entries), 6)

	test.ExpectEquality(t, cat.Entries[0].ID, byte(block.IDTextDescription))
	test.ExpectEquality(t, cat.Entries[0].Text, "hello")
	test.ExpectFailure(t, cat.Entries[0].Audible)

	test.ExpectEquality(t, cat.Entries[1].Repeat, 2)
	test.ExpectEquality(t, cat.Entries[2].Offset, 20)
	test.ExpectEquality(t, cat.Entries[2].Ticks, 2*int64(block.Convert(100)))
	test.ExpectEquality(t, cat.Entries[3].Name, block.Name(block.IDLoopEnd))
	test.ExpectEquality(t, cat.Entries[4].Text, "title: JS; author: MS")

	// pulse sequence
	test.ExpectEquality(t, cat.Entries[5].Ticks, int64(block.Convert(256)+block.Convert(100)))
}

func TestTruncated(t *testing.T) {
	data := tzx(0x10, 0x00, 0x00, 0x0a, 0x00, 0xff, 0xff)
	cat, err := catalogue.New(data)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cat.Truncated)
	test.DemandEquality(t, len(cat.Entries), 1)
	test.ExpectSuccess(t, cat.Entries[0].Truncated)
	test.ExpectEquality(t, cat.Entries[0].Length, 2)

	// incomplete header
	cat, err = catalogue.New(tzx(0x11, 0x00))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cat.Truncated)
	test.ExpectEquality(t, len(cat.Entries), 0)
}

func TestWrite(t *testing.T) {
	cat, err := catalogue.New(tapFile())
	test.DemandSuccess(t, err)

	tw := &test.CompareWriter{}
	cat.Write(tw)
	s := tw.String()
	test.ExpectSuccess(t, strings.Contains(s, "TAP, 27 bytes, 2 blocks"))
	test.ExpectSuccess(t, strings.Contains(s, "program: manic"))
	test.ExpectSuccess(t, strings.Contains(s, "data block"))
	test.ExpectFailure(t, strings.Contains(s, "truncated"))
}

func TestDump(t *testing.T) {
	cat, err := catalogue.New(tapFile())
	test.DemandSuccess(t, err)

	tw := &test.CompareWriter{}
	cat.Dump(tw)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "digraph"))
}

func TestDuration(t *testing.T) {
	// a TAP block with no data has a pilot, sync pulses and a two second pause
	cat, err := catalogue.New([]byte{0x00, 0x00})
	test.DemandSuccess(t, err)
	ticks := int64(block.PilotHeader*block.Convert(block.StandardPilot) +
		block.Convert(block.StandardSync1) + block.Convert(block.StandardSync2) +
		block.TAPPause*3500)
	test.ExpectEquality(t, cat.Ticks(), ticks)
	test.ExpectApproximate(t, cat.Duration(), 5518*time.Millisecond, 0.001)
}
