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

package tape

import "io"

// Source is an open tape file.
type Source interface {
	io.ReadSeekCloser

	// Size of the tape file in bytes
	Size() int64
}

// Opener opens the tape file at the path. The path is the value given to the
// Select() function of the Session. Implementations will typically be a
// loader for files on the local filesystem.
type Opener interface {
	Open(path string) (Source, error)
}
