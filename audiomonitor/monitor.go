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

//go:build !headless

package audiomonitor

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/jetsetilly/zxtape/curated"
	"github.com/jetsetilly/zxtape/logger"
)

// Monitor plays the contents of a Buffer through the audio device.
type Monitor struct {
	*Buffer

	crit    sync.Mutex
	ctx     *oto.Context
	player  *oto.Player
	started bool

	// conversion buffer used by Read(). only accessed by the audio goroutine
	samples []float32
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(clock int) (*Monitor, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf("audiomonitor: %v", err)
	}
	<-ready

	mon := &Monitor{
		Buffer:  NewBuffer(clock, DefaultBufferSize),
		ctx:     ctx,
		samples: make([]float32, 1024),
	}
	mon.player = ctx.NewPlayer(mon)

	// the monitor is only created for live playback so the sample rate is
	// always logged
	logger.Logf(logger.Allow, "audiomonitor", "sample rate %dHz", SampleRate)

	return mon, nil
}

// Read implements the io.Reader interface. It is called by the audio device.
func (mon *Monitor) Read(p []byte) (int, error) {
	n := len(p) / 4
	if len(mon.samples) < n {
		mon.samples = make([]float32, n)
	}
	samples := mon.samples[:n]
	mon.Fill(samples)

	for i, s := range samples {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(s))
	}

	return n * 4, nil
}

// Start playing the buffer.
func (mon *Monitor) Start() {
	mon.crit.Lock()
	defer mon.crit.Unlock()
	if !mon.started {
		mon.player.Play()
		mon.started = true
	}
}

// Stop playing the buffer. The buffer is not emptied.
func (mon *Monitor) Stop() {
	mon.crit.Lock()
	defer mon.crit.Unlock()
	if mon.started {
		mon.player.Pause()
		mon.started = false
	}
}

// IsStarted returns true if the monitor is playing.
func (mon *Monitor) IsStarted() bool {
	mon.crit.Lock()
	defer mon.crit.Unlock()
	return mon.started
}

// Close the audio device. The Monitor cannot be used again.
func (mon *Monitor) Close() error {
	mon.Stop()
	mon.crit.Lock()
	defer mon.crit.Unlock()
	if mon.player != nil {
		err := mon.player.Close()
		mon.player = nil
		if err != nil {
			return curated.Errorf("audiomonitor: %v", err)
		}
	}
	return nil
}
