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

// Package block decodes the headers of TAP and TZX tape blocks into the
// timing parameters used by the pulse generator.
//
// A TAP file is a sequence of blocks, each prefixed with a two byte little
// endian length. Every block is played with the standard ROM loader timings.
//
// A TZX file begins with a ten byte signature and is followed by a sequence
// of typed blocks. The first byte of each block is the block ID and the
// number of header bytes that follow depends on the ID. HeaderSize() returns
// the total header size, including the ID byte, for any ID.
//
// Pulse widths are expressed in ticks of the emulated machine's clock. The
// nominal values found in the format documentation are scaled by 111/100 by
// the Convert() function to compensate for the difference between the
// emulated clock and the original 3.5MHz clock.
package block
