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

// Package tapeloader locates tape files and opens them for the tape player.
//
// Tape files can be on the local filesystem or at an http or https URL. Local
// files are streamed from disk as the tape plays. Remote files are downloaded
// completely before playback starts.
//
// Only files with the .tap or .tzx extensions are accepted. The extension is
// not case sensitive.
package tapeloader
