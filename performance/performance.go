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

// Package performance measures the raw speed of the emulation. The machine
// is run without a frame limiter for a fixed wall clock duration and the
// instruction and tick counts are reported.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/timer"
)

// sentinal error returned by the Run() callback when the measurement period
// has elapsed.
const timedOut = "performance: timed out"

// Check the performance of the emulator using the supplied cartridge.
//
// The emulation will run for the specified duration. A CPU and memory
// profile is written when the profile argument is true.
func Check(output io.Writer, profile bool, duration string, cartload cartridgeloader.Loader) error {
	c8, err := hardware.NewChip8(nil)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	if err := c8.AttachCartridge(cartload); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	ticks := 0

	runner := func() error {
		// the timer expires when the measurement duration has elapsed
		timesUp := make(chan bool)
		go func() {
			time.AfterFunc(dur, func() {
				timesUp <- true
			})
		}()

		return c8.Run(func() (bool, error) {
			ticks++
			select {
			case <-timesUp:
				return false, curated.Errorf(timedOut)
			default:
			}
			return true, nil
		})
	}

	if profile {
		err = ProfileCPU("performance.cpu.profile", runner)
		if err == nil {
			err = ProfileMem("performance.mem.profile")
		}
	} else {
		err = runner()
	}

	if err != nil && !curated.Is(err, timedOut) {
		// a machine that powers off before the duration elapses still has a
		// measurable performance
		if !curated.Is(err, cpu.PoweredOff) {
			return curated.Errorf("performance: %v", err)
		}
	}

	instructions := c8.CPU.Cycles()
	seconds := dur.Seconds()

	// the emulated machine runs at sixty ticks per second. the ratio of
	// measured speed to that is the headroom the host has
	speedup := float64(ticks) / timer.Rate / seconds

	output.Write([]byte(fmt.Sprintf("%.0f instructions/sec (%d instructions in %.2f seconds)\n",
		float64(instructions)/seconds, instructions, seconds)))
	output.Write([]byte(fmt.Sprintf("%.0f ticks/sec (%.1fx emulated speed)\n",
		float64(ticks)/seconds, speedup)))

	return nil
}
