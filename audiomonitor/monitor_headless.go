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

//go:build headless

package audiomonitor

// Monitor discards the contents of the Buffer.
type Monitor struct {
	*Buffer
	started bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(clock int) (*Monitor, error) {
	return &Monitor{
		Buffer: NewBuffer(clock, DefaultBufferSize),
	}, nil
}

// Read implements the io.Reader interface.
func (mon *Monitor) Read(p []byte) (int, error) {
	samples := make([]float32, len(p)/4)
	mon.Fill(samples)
	clear(p)
	return len(p), nil
}

// Start playing the buffer.
func (mon *Monitor) Start() {
	mon.started = true
}

// Stop playing the buffer.
func (mon *Monitor) Stop() {
	mon.started = false
}

// IsStarted returns true if the monitor is playing.
func (mon *Monitor) IsStarted() bool {
	return mon.started
}

// Close the monitor.
func (mon *Monitor) Close() error {
	mon.started = false
	return nil
}
