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

package logger

// Permission decides whether a log request is turned into an entry. Callers
// that produce a lot of log traffic, such as a tape session rendering to a
// file, can be handed Deny to keep the log clear.
type Permission interface {
	AllowLogging() bool
}

type permission bool

func (p permission) AllowLogging() bool {
	return bool(p)
}

// List of fixed permissions.
var (
	// the request is always logged
	Allow Permission = permission(true)

	// the request is never logged
	Deny Permission = permission(false)
)
