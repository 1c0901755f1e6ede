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

import (
	"io"

	"github.com/jetsetilly/zxtape/logger"
	"github.com/jetsetilly/zxtape/tape/block"
	"github.com/jetsetilly/zxtape/tape/fifo"
	"github.com/jetsetilly/zxtape/tape/pulse"
)

// tag string used in calls to Log().
const logTag = "tape"

// DefaultLoopDepth is the maximum number of nested TZX loops.
const DefaultLoopDepth = 16

// MinRingDepth is the smallest usable ring buffer. Entries in a pulse
// sequence block are two bytes and must be in the ring buffer together.
const MinRingDepth = 2

// ToggleKey is the key that starts and stops the tape in HandleKey().
const ToggleKey = '-'

// Config for a new Session.
type Config struct {
	// capacity of the ring buffer between the tape file and the pulse
	// generator. values smaller than MinRingDepth are raised to MinRingDepth
	RingDepth int

	// maximum number of nested loops. loop starts beyond this depth are
	// ignored
	LoopDepth int

	// permission for log entries made by the session
	Permission logger.Permission
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		RingDepth:  fifo.DefaultCapacity,
		LoopDepth:  DefaultLoopDepth,
		Permission: logger.Allow,
	}
}

type loopFrame struct {
	// file offset of the first block in the loop
	offset int64

	// number of repetitions remaining
	counter int
}

// Session is a single playback of a tape file.
type Session struct {
	opener Opener
	sink   pulse.Sink
	cfg    Config

	rb  *fifo.RingBuffer
	gen *pulse.Generator

	path   string
	src    Source
	size   int64
	pos    int64
	format block.Format

	started bool

	// a (re)start has been requested and will happen on the next Tick()
	restart bool

	// the end of the tape file has been reached. the session will stop when
	// the generator has played everything in the ring buffer
	finished bool

	// header of the block being queued. headerPending is the number of bytes
	// still to be pushed to the ring buffer
	header        [block.MaxHeaderSize]byte
	headerPos     int
	headerPending int

	// number of data bytes of the block being queued still to be read from
	// the file
	dataPending int

	loops []loopFrame

	observer func(Event)
}

// NewSession is the preferred method of initialisation for the Session type.
func NewSession(opener Opener, sink pulse.Sink, cfg Config) *Session {
	if cfg.RingDepth <= 0 {
		cfg.RingDepth = fifo.DefaultCapacity
	}
	cfg.RingDepth = max(cfg.RingDepth, MinRingDepth)
	if cfg.Permission == nil {
		cfg.Permission = logger.Allow
	}
	if cfg.LoopDepth <= 0 {
		cfg.LoopDepth = DefaultLoopDepth
	}

	s := &Session{
		opener: opener,
		sink:   sink,
		cfg:    cfg,
		rb:     fifo.NewRingBuffer(cfg.RingDepth),
		loops:  make([]loopFrame, 0, cfg.LoopDepth),
	}
	s.gen = pulse.NewGenerator(s.rb, sink)

	return s
}

// SetObserver sets a function that is called for every block header read
// from the tape file. A nil value removes the observer.
func (s *Session) SetObserver(f func(Event)) {
	s.observer = f
}

// Select the tape file to be used the next time the session is started. A
// session that is already playing continues with the previous file until it
// is restarted.
func (s *Session) Select(path string) {
	s.path = path
}

// Selected returns the path of the selected tape file.
func (s *Session) Selected() string {
	return s.path
}

// Start the session. The tape file is opened on the next call to Tick() and
// is played from the beginning. Has no effect if the session is already
// started or if no tape file has been selected.
func (s *Session) Start() {
	if s.started {
		return
	}
	s.Restart()
}

// Restart the session from the beginning of the tape file, whether or not
// it is currently started. Has no effect if no tape file has been selected.
func (s *Session) Restart() {
	if s.path == "" {
		logger.Log(s.cfg.Permission, logTag, "no tape selected")
		return
	}
	s.reset()
	s.restart = true
	s.started = true
}

// Stop the session. The state of the session is discarded and the tape file
// is closed. Stopping a session that is not started has no effect.
func (s *Session) Stop() {
	if !s.started {
		return
	}
	s.started = false
	s.restart = false
	s.reset()
	s.close()
}

// IsStarted returns true if the session is playing.
func (s *Session) IsStarted() bool {
	return s.started
}

// Format of the tape file being played. Only meaningful once the session has
// been started and ticked.
func (s *Session) Format() block.Format {
	return s.format
}

// Phase of the block being played.
func (s *Session) Phase() pulse.Phase {
	return s.gen.Phase()
}

// HandleKey starts or stops the session if the key is the ToggleKey. Returns
// true if the key has been used.
func (s *Session) HandleKey(key byte) bool {
	if key != ToggleKey {
		return false
	}
	if s.started {
		s.Stop()
	} else {
		s.Start()
	}
	return true
}

// reset the buffers and block state. the tape file is not touched
func (s *Session) reset() {
	s.rb.Clear()
	s.gen.Reset(s.format)
	s.finished = false
	s.headerPos = 0
	s.headerPending = 0
	s.dataPending = 0
	s.loops = s.loops[:0]
}

func (s *Session) close() {
	if s.src == nil {
		return
	}
	if err := s.src.Close(); err != nil {
		logger.Log(s.cfg.Permission, logTag, err)
	}
	s.src = nil
}

// open the tape file and decide on the format. the file is left positioned
// at the first block
func (s *Session) open() bool {
	s.close()

	src, err := s.opener.Open(s.path)
	if err != nil {
		logger.Log(s.cfg.Permission, logTag, err)
		return false
	}

	s.src = src
	s.size = src.Size()
	s.pos = 0
	s.format = block.TAP

	if s.size >= block.SignatureLen {
		var probe [block.SignatureLen]byte
		n, _ := io.ReadFull(src, probe[:])
		if block.IsTZX(probe[:n]) {
			s.format = block.TZX
			s.pos = int64(n)
		} else if !s.seek(0) {
			return false
		}
	}

	logger.Logf(s.cfg.Permission, logTag, "playing %s (%s)", s.path, s.format)

	return true
}

func (s *Session) seek(offset int64) bool {
	pos, err := s.src.Seek(offset, io.SeekStart)
	if err != nil {
		logger.Log(s.cfg.Permission, logTag, err)
		return false
	}
	s.pos = pos
	return true
}

// read from the tape file. returns false on a short read
func (s *Session) read(p []byte) bool {
	n, _ := io.ReadFull(s.src, p)
	s.pos += int64(n)
	return n == len(p)
}

func (s *Session) observe(offset int64, tm block.Timing, action Action) {
	if s.observer == nil {
		return
	}
	e := Event{
		Offset: offset,
		Format: s.format,
		Timing: tm,
		Action: action,
	}
	if s.format == block.TZX {
		e.ID = s.header[0]
	}
	s.observer(e)
}

// Tick advances the session. The ring buffer is filled from the tape file and
// then pulses are generated until the sink is full.
func (s *Session) Tick() {
	if !s.started {
		return
	}

	if s.restart {
		s.restart = false
		s.reset()
		if !s.open() {
			s.started = false
			s.close()
			return
		}
		s.gen.Reset(s.format)
	}

	s.fill()
	s.drain()
}

// fill the ring buffer from the tape file
func (s *Session) fill() {
	for s.started && s.rb.Free() > 0 {
		if s.headerPending > 0 {
			s.rb.Push(s.header[s.headerPos])
			s.headerPos++
			s.headerPending--
			continue
		}

		if s.dataPending > 0 {
			var b [1]byte
			if !s.read(b[:]) {
				s.finished = true
				s.dataPending = 0
				break
			}
			s.rb.Push(b[0])
			s.dataPending--
			continue
		}

		if s.finished {
			break
		}

		if s.pos >= s.size {
			s.finished = true
			break
		}

		offset := s.pos

		if !s.read(s.header[:1]) {
			s.finished = true
			break
		}

		size := block.HeaderSize(s.header[0], s.format)
		if !s.read(s.header[1:size]) {
			s.finished = true
			break
		}

		hdr := s.header[:size]
		tm := block.Decode(hdr, s.format)

		if tm.Audible() {
			s.headerPos = 0
			s.headerPending = size
			s.dataPending = tm.Length
			s.observe(offset, tm, Queued)
			continue
		}

		switch {
		case s.format == block.TZX && s.header[0] == block.IDLoopStart:
			if len(s.loops) < s.cfg.LoopDepth {
				s.loops = append(s.loops, loopFrame{
					offset:  s.pos,
					counter: block.LoopCount(hdr),
				})
				s.observe(offset, tm, LoopStart)
			} else {
				logger.Logf(s.cfg.Permission, logTag, "loop at %#x ignored: too many nested loops", offset)
				s.observe(offset, tm, LoopIgnored)
			}

		case s.format == block.TZX && s.header[0] == block.IDLoopEnd:
			if len(s.loops) == 0 {
				s.observe(offset, tm, LoopEnd)
				break
			}
			top := &s.loops[len(s.loops)-1]
			if top.counter > 0 {
				top.counter--
			}
			if top.counter > 0 {
				s.observe(offset, tm, LoopRepeat)
				if !s.seek(top.offset) {
					s.finished = true
				}
			} else {
				s.loops = s.loops[:len(s.loops)-1]
				s.observe(offset, tm, LoopEnd)
			}

		default:
			if s.format == block.TZX && !block.Known(s.header[0]) {
				logger.Logf(s.cfg.Permission, logTag, "%s at %#x skipped using a length of %d bytes",
					block.Name(s.header[0]), offset, tm.Length)
			}
			s.observe(offset, tm, Skipped)
			if !s.seek(s.pos + int64(tm.Length)) {
				s.finished = true
			}
		}
	}
}

// drain the ring buffer into the sink
func (s *Session) drain() {
	for s.started && !s.sink.Full() {
		switch s.gen.Step(s.finished) {
		case pulse.Idle:
			return
		case pulse.EndOfTape:
			logger.Logf(s.cfg.Permission, logTag, "end of tape %s", s.path)
			s.Stop()
			return
		}
	}
}
