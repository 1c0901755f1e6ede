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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles command lines where the first argument selects a mode
// of operation and where each mode has its own set of flags. For example:
//
//	zxtape PLAY -monitor game.tzx
//	zxtape WAV -rate 22050 game.tap game.wav
//
// Parsing happens in layers. The top layer is parsed with the list of modes
// added with AddSubModes(). If the first non-flag argument matches one of the
// modes it is consumed. Otherwise the first mode in the list is assumed. A
// call to NewMode() then prepares the next layer, which would usually add
// the flags for the selected mode.
//
// Help is handled automatically. A -help flag at any layer prints the flags
// and modes for that layer and Parse() returns ParseHelp.
package modalflag
