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

// Package timer implements the delay and sound timers of the CHIP-8 machine.
// Both count down towards zero at 60Hz and stop there. The machine drives
// the countdown by calling Step() once per frame.
package timer

import "fmt"

// Rate is the frequency in Hz at which the timers count down.
const Rate = 60

// Timer implements the two 8 bit countdown timers.
type Timer struct {
	// Delay is readable and writeable by the program
	Delay uint8

	// Sound is only writeable. the buzzer sounds while it is non-zero
	Sound uint8
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer() *Timer {
	return &Timer{}
}

func (tmr Timer) String() string {
	return fmt.Sprintf("DT=%02x ST=%02x", tmr.Delay, tmr.Sound)
}

// Reset both timers to zero.
func (tmr *Timer) Reset() {
	tmr.Delay = 0
	tmr.Sound = 0
}

// Step decrements both timers. Timers at zero stay at zero.
func (tmr *Timer) Step() {
	if tmr.Delay > 0 {
		tmr.Delay--
	}
	if tmr.Sound > 0 {
		tmr.Sound--
	}
}

// IsSoundActive returns true while the buzzer should sound.
func (tmr *Timer) IsSoundActive() bool {
	return tmr.Sound > 0
}
