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

// Package statsview offers runtime statistics of the zxtape process over HTTP.
// The server is only included when the statsview build tag is present.
// Without the tag, Launch() does nothing and Available() returns false.
//
// The statistics page is served by "github.com/go-echarts/statsview" and
// will be at:
//
//	localhost:12650/debug/statsview
//
// The standard Go pprof pages are also available at:
//
//	localhost:12650/debug/pprof/
package statsview

// Address of the statistics server.
const Address = "localhost:12650"

const url = "/debug/statsview"
