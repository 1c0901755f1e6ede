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

// Package logger is the central log for zxtape. Entries are made up of a tag
// and a detail string. By convention the tag names the package and, where it
// helps, the sub-system making the entry. For example:
//
//	logger.Logf(logger.Allow, "tape: driver", "loop start at offset %d", offset)
//
// Consecutive identical entries are folded into a single entry with a repeat
// count. The central log is bounded and the oldest entries are discarded when
// the maximum number of entries is reached.
//
// The Permission interface allows the caller to decide whether a log entry
// should be made at all. The Allow value should be used when an entry should
// always be made.
package logger
