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

package gui

// Events are the things that happen in the gui as a result of user
// interaction. They are sent over the channel registered with the
// ReqSetEventChannel feature request.

// Event is the interface implemented by all gui event types.
type Event interface{}

// EventQuit is sent when the user closes the window or presses the quit key.
type EventQuit struct{}

// EventKeypad is sent when a host key mapped to one of the sixteen CHIP-8
// keys is pressed or released. Key is in the range 0x0 to 0xf.
type EventKeypad struct {
	Key  uint8
	Down bool
}
