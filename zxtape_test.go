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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/zxtape/modalflag"
	"github.com/jetsetilly/zxtape/test"
)

// selectMode mimics the first layer of parsing in launch()
func selectMode(t *testing.T, args ...string) *modalflag.Modes {
	t.Helper()
	md := &modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs(args)
	md.AddSubModes("PLAY", "WAV", "INFO", "VERSION")
	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)
	return md
}

func writeTape(t *testing.T, name string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	data := []byte{0x03, 0x00, 0x00, 0x55, 0x55}
	test.DemandSuccess(t, os.WriteFile(fn, data, 0644))
	return fn
}

func TestWAVMode(t *testing.T) {
	tap := writeTape(t, "tone.tap")
	out := filepath.Join(t.TempDir(), "tone.wav")

	md := selectMode(t, "wav", "-rate", "22050", "-quiet", tap, out)
	test.ExpectEquality(t, md.Mode(), "WAV")
	test.DemandSuccess(t, wav(md))

	fi, err := os.Stat(out)
	test.DemandSuccess(t, err)

	// about 5.5 seconds of 16 bit mono audio. the header pilot tone and
	// the pause account for nearly all of it
	test.ExpectApproximate(t, fi.Size(), 244000, 0.05)
}

func TestWAVModeArguments(t *testing.T) {
	md := selectMode(t, "wav", "tone.tap")
	test.ExpectFailure(t, wav(md))

	md = selectMode(t, "wav", "tone.mp3", "tone.wav")
	test.ExpectFailure(t, wav(md))

	md = selectMode(t, "wav", filepath.Join(t.TempDir(), "missing.tap"), "tone.wav")
	test.ExpectFailure(t, wav(md))
}

func TestINFOMode(t *testing.T) {
	tap := writeTape(t, "tone.tap")
	dot := filepath.Join(t.TempDir(), "tone.dot")

	md := selectMode(t, "info", "-memviz", dot, tap)
	test.DemandSuccess(t, info(md))

	b, err := os.ReadFile(dot)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(b), "digraph"))

	md = selectMode(t, "info")
	test.ExpectFailure(t, info(md))
}

func TestDefaultMode(t *testing.T) {
	md := selectMode(t, "game.tap")
	test.ExpectEquality(t, md.Mode(), "PLAY")
	test.ExpectEquality(t, md.GetArg(0), "game.tap")
}

func TestVersionMode(t *testing.T) {
	md := selectMode(t, "version")
	test.ExpectSuccess(t, showVersion(md))
}
