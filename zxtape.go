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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/zxtape/audiomonitor"
	"github.com/jetsetilly/zxtape/easyterm"
	"github.com/jetsetilly/zxtape/hardware/pulsequeue"
	"github.com/jetsetilly/zxtape/logger"
	"github.com/jetsetilly/zxtape/modalflag"
	"github.com/jetsetilly/zxtape/sonify"
	"github.com/jetsetilly/zxtape/statsview"
	"github.com/jetsetilly/zxtape/tape"
	"github.com/jetsetilly/zxtape/tape/catalogue"
	"github.com/jetsetilly/zxtape/tapeloader"
	"github.com/jetsetilly/zxtape/version"
	"github.com/jetsetilly/zxtape/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode has its own
	// handler. for example, the PLAY mode must restore the terminal before
	// quitting.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function.
type mainSync struct {
	state chan stateRequest
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// default interrupt handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Stop(intChan)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("PLAY", "WAV", "INFO", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, sync)

	case "WAV":
		err = wav(md)

	case "INFO":
		err = info(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// the interval between ticks of the tape session in PLAY mode
const playInterval = 2 * time.Millisecond

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	monitor := md.AddBool("monitor", true, "play the tape signal through the sound card")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	log := md.AddBool("log", false, "echo log to stdout")
	ringDepth := md.AddInt("ring", tape.DefaultConfig().RingDepth, "size of the tape ring buffer in bytes")
	queueDepth := md.AddInt("queue", pulsequeue.DefaultDepth, "size of the pulse queue")
	autoQuit := md.AddBool("quit", true, "quit when the tape has finished")
	md.AdditionalHelp(fmt.Sprintf("keys: '%c' start/stop, 'r' restart, 'q' quit", tape.ToggleKey))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* statsview not available in this build")
		}
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one tape file required for %s mode", md)
	}

	// check the file extension before doing anything else
	if _, err := tapeloader.NewLoader(md.GetArg(0)); err != nil {
		return err
	}

	queue := pulsequeue.NewQueue(*queueDepth)

	cfg := tape.DefaultConfig()
	cfg.RingDepth = *ringDepth
	sess := tape.NewSession(tapeloader.Opener{Permission: cfg.Permission}, queue, cfg)
	sess.Select(md.GetArg(0))

	var onPulse func(length uint32, high bool)
	if *monitor {
		mon, err := audiomonitor.NewMonitor(sonify.DefaultClock)
		if err != nil {
			fmt.Printf("* %v: playing without sound\n", err)
		} else {
			defer mon.Close()
			mon.Start()
			onPulse = mon.Pulse
		}
	}
	consumer := pulsequeue.NewConsumer(queue, sonify.DefaultClock, onPulse)

	// the terminal must be restored before quitting so this mode handles
	// the interrupt signal itself
	sync.state <- stateRequest{req: reqNoIntSig}
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	term, err := easyterm.NewTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer term.CleanUp()

	sess.SetObserver(func(e tape.Event) {
		if e.Action == tape.Queued {
			term.Print("\r%s\n", e)
		}
	})

	sess.Start()

	ticker := time.NewTicker(playInterval)
	defer ticker.Stop()
	last := time.Now()

	// the tape has been stopped with the toggle key rather than by reaching
	// the end of the tape
	paused := false

	for {
		select {
		case <-intChan:
			return nil
		case now := <-ticker.C:
			for k, ok := term.Key(); ok; k, ok = term.Key() {
				if sess.HandleKey(k) {
					paused = !sess.IsStarted()
					if paused {
						queue.Reset()
						consumer.Reset()
					}
					continue
				}
				switch k {
				case 'r', 'R':
					queue.Reset()
					consumer.Reset()
					sess.Restart()
					paused = false
				case 'q', 'Q', easyterm.KeyEsc:
					return nil
				}
			}

			sess.Tick()
			consumer.Advance(now.Sub(last))
			last = now

			if *autoQuit && !paused && !sess.IsStarted() && queue.Empty() {
				return nil
			}
		}
	}
}

func wav(md *modalflag.Modes) error {
	md.NewMode()

	rate := md.AddInt("rate", sonify.DefaultSampleRate, "sample rate of the WAV file")
	clock := md.AddInt("clock", sonify.DefaultClock, "frequency of the pulse clock")
	log := md.AddBool("log", false, "echo log to stdout")
	quiet := md.AddBool("quiet", false, "do not log tape events")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	cfg := tape.DefaultConfig()
	if *quiet {
		cfg.Permission = logger.Deny
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("tape file and WAV file required for %s mode", md)
	}

	if _, err := tapeloader.NewLoader(md.GetArg(0)); err != nil {
		return err
	}

	queue := pulsequeue.NewQueue(pulsequeue.DefaultDepth)
	sess := tape.NewSession(tapeloader.Opener{Permission: cfg.Permission}, queue, cfg)
	sess.Select(md.GetArg(0))

	// the session will stop immediately if the file cannot be opened. the
	// error will be in the log
	sess.Start()
	sess.Tick()
	if !sess.IsStarted() && queue.Empty() {
		logger.Tail(os.Stdout, 1)
		return fmt.Errorf("cannot play %s", md.GetArg(0))
	}

	aw, err := wavwriter.New(md.GetArg(1), *clock, *rate)
	if err != nil {
		return err
	}

	for sess.IsStarted() {
		queue.Drain(aw.Pulse)
		sess.Tick()
	}
	queue.Drain(aw.Pulse)

	return aw.EndMixing()
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	dot := md.AddString("memviz", "", "write the catalogue structure to a graphviz file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one tape file required for %s mode", md)
	}

	tl, err := tapeloader.NewLoader(md.GetArg(0))
	if err != nil {
		return err
	}
	if err := tl.Load(); err != nil {
		return err
	}

	cat, err := catalogue.New(tl.Data)
	if err != nil {
		return err
	}

	fmt.Printf("%s (sha1 %s)\n", tl.ShortName(), tl.Hash)
	cat.Write(os.Stdout)

	if *dot != "" {
		f, err := os.Create(*dot)
		if err != nil {
			return err
		}
		defer f.Close()
		cat.Dump(f)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	if *revision {
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, r)
	} else {
		fmt.Printf("%s %s\n", version.ApplicationName, v)
	}

	return nil
}
