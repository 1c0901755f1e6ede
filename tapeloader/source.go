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

package tapeloader

import (
	"bytes"
	"os"
)

type fileSource struct {
	*os.File
	size int64
}

func (f fileSource) Size() int64 {
	return f.size
}

// bytes.Reader already has a Size() function
type memorySource struct {
	*bytes.Reader
}

func (m memorySource) Close() error {
	return nil
}
