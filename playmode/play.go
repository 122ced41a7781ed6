// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package playmode is the normal mode of operation: run the machine at full
// speed against the wall clock, with video, sound and keyboard input but
// without any debugging features.
package playmode

import (
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
)

// sentinal error returned when the GUI sends a quit event.
const quitEvent = "playmode: quit event"

type playmode struct {
	c8  *hardware.Chip8
	scr gui.GUI

	rnd    gui.PixelRenderer
	mixers []gui.AudioMixer

	events  chan gui.Event
	intChan chan os.Signal
}

// Play sets the emulation running.
//
// The scr argument is the GUI created for the occasion. Audio mixers beyond
// the one the GUI itself may implement (eg. a wavwriter) are passed in the
// mixers argument. A nil font means the built-in font is used and a rate of
// zero means the default instruction rate.
func Play(scr gui.GUI, mixers []gui.AudioMixer, cartload cartridgeloader.Loader, font []byte, rate int) error {
	c8, err := hardware.NewChip8(nil)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	if font != nil {
		if err := c8.SetFont(font); err != nil {
			return curated.Errorf("playmode: %v", err)
		}
	}

	if rate > 0 {
		if err := c8.SetInstructionRate(rate); err != nil {
			return curated.Errorf("playmode: %v", err)
		}
	}

	if err := c8.AttachCartridge(cartload); err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	logger.Logf("playmode", "running %s (%s)", cartload.ShortName(), cartload.Hash)

	pl := &playmode{
		c8:     c8,
		scr:    scr,
		mixers: mixers,
		events: make(chan gui.Event, 2),
	}

	// the GUI doubles as an audio mixer and a pixel renderer when it can
	if m, ok := scr.(gui.AudioMixer); ok {
		pl.mixers = append(pl.mixers, m)
	}
	pl.rnd, _ = scr.(gui.PixelRenderer)

	defer func() {
		for _, m := range pl.mixers {
			if err := m.EndMixing(); err != nil {
				logger.Log("playmode", err.Error())
			}
		}
	}()

	if err := scr.SetFeature(gui.ReqSetEventChannel, pl.events); err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	if err := scr.SetFeature(gui.ReqSetVisibility, true); err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// ctrl-c quits the emulation cleanly
	pl.intChan = make(chan os.Signal, 1)
	signal.Notify(pl.intChan, os.Interrupt)

	// hold the emulation at the timer rate
	lmtr := limiter.NewFPSLimiter(timer.Rate)

	err = c8.Run(func() (bool, error) {
		lmtr.Wait()

		if err := pl.eventHandler(); err != nil {
			if curated.Is(err, quitEvent) {
				return false, nil
			}
			return false, err
		}

		if pl.rnd != nil {
			if err := pl.rnd.Render(c8.Video.Snapshot()); err != nil {
				return false, err
			}
		}

		active := c8.Timer.IsSoundActive()
		for _, m := range pl.mixers {
			if err := m.SetBuzzer(active); err != nil {
				return false, err
			}
		}

		return true, nil
	})

	if err != nil {
		// the machine reaching the end of its program is not an error
		if curated.Is(err, cpu.PoweredOff) {
			return nil
		}
		return curated.Errorf("playmode: %v", err)
	}

	return nil
}
