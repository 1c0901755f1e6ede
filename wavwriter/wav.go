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

// Package wavwriter allows writing of the tape signal to disk as a WAV file.
// Note that audio data is buffered in memory in its entirety, and written to
// disk when EndMixing() is called.
package wavwriter

import (
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/zxtape/curated"
	"github.com/jetsetilly/zxtape/logger"
	"github.com/jetsetilly/zxtape/sonify"
)

// bit depth of the WAV file
const bitDepth = 16

// the WAV format tag for uncompressed PCM data
const pcmFormat = 1

// WavWriter collects pulses and writes them to a WAV file as a square wave.
type WavWriter struct {
	filename string
	renderer *sonify.Renderer
	buffer   []int
}

// New is the preferred method of initialisation for the WavWriter type. The
// clock is the frequency of the ticks that pulses are measured in. Values of
// zero will use the defaults in the sonify package.
func New(filename string, clock int, rate int) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: %v", "no filename")
	}
	if clock < 0 || rate < 0 {
		return nil, curated.Errorf("wavwriter: %v", "clock and sample rate must be positive")
	}

	aw := &WavWriter{
		filename: filename,
		renderer: sonify.NewRenderer(clock, rate),
		buffer:   make([]int, 0),
	}

	return aw, nil
}

// Pulse adds a pulse to the audio buffer. The function signature is
// compatible with the Drain() function of the pulsequeue package.
func (aw *WavWriter) Pulse(length uint32, high bool) {
	level, n := aw.renderer.Pulse(length, high)
	v := sonify.Sample(level)
	for range n {
		aw.buffer = append(aw.buffer, v)
	}
}

// Duration of the audio in the buffer.
func (aw *WavWriter) Duration() time.Duration {
	return aw.renderer.Duration()
}

// EndMixing writes the buffered audio to the WAV file.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.renderer.Rate(), bitDepth, 1, pcmFormat)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  aw.renderer.Rate(),
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %v of audio to %s", aw.Duration().Round(time.Millisecond), aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// Reset discards all buffered audio.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
	aw.renderer.Reset()
}
