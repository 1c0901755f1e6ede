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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It puts the
// terminal into cbreak mode so that single key presses can be read without
// waiting for the return key, and delivers the key presses on a channel that
// can be polled from a main loop.
package easyterm

import (
	"fmt"
	"os"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	keys chan byte

	// sig/ack channels to control the key reader
	terminateSig chan bool
	terminateAck chan bool

	mu sync.Mutex
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The terminal is put into cbreak mode and key presses are read until
// CleanUp() is called.
func NewTerminal(inputFile, outputFile *os.File) (*Terminal, error) {
	if inputFile == nil {
		return nil, fmt.Errorf("easyterm: Terminal requires an input file")
	}
	if outputFile == nil {
		return nil, fmt.Errorf("easyterm: Terminal requires an output file")
	}

	pt := &Terminal{
		input:        inputFile,
		output:       outputFile,
		keys:         make(chan byte, 16),
		terminateSig: make(chan bool),
		terminateAck: make(chan bool),
	}

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return nil, fmt.Errorf("easyterm: %w", err)
	}

	// cbreak attributes are based on the current attributes. the read
	// timeout allows the key reader to notice the terminate signal
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)
	pt.cbreakAttr.Cc[unix.VMIN] = 0
	pt.cbreakAttr.Cc[unix.VTIME] = 1

	if err := pt.CBreakMode(); err != nil {
		return nil, err
	}

	go pt.reader()

	return pt, nil
}

func (pt *Terminal) reader() {
	defer func() {
		pt.terminateAck <- true
	}()

	b := make([]byte, 1)
	for {
		select {
		case <-pt.terminateSig:
			return
		default:
		}

		n, err := pt.input.Read(b)
		if err != nil {
			// no more key presses are possible
			<-pt.terminateSig
			return
		}
		if n == 0 {
			continue
		}

		select {
		case pt.keys <- b[0]:
		default:
			// key presses are dropped if nobody is reading them
		}
	}
}

// CleanUp stops reading key presses and returns the terminal to canonical
// mode.
func (pt *Terminal) CleanUp() {
	pt.terminateSig <- true
	<-pt.terminateAck
	_ = pt.CanonicalMode()
}

// Key returns the next key press, if there is one. It does not block.
func (pt *Terminal) Key() (byte, bool) {
	select {
	case k := <-pt.keys:
		return k, true
	default:
		return 0, false
	}
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...any) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.output.WriteString(fmt.Sprintf(s, a...))
	pt.output.Sync()
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	return nil
}

// CBreakMode puts terminal into cbreak mode.
func (pt *Terminal) CBreakMode() error {
	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	return nil
}
