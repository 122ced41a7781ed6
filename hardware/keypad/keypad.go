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

// Package keypad implements the 16 key hexadecimal keypad of the CHIP-8
// machine. The gui layer translates host keyboard events into SetKey()
// calls.
package keypad

import (
	"github.com/jetsetilly/gopher8/curated"
)

// InvalidKey is returned when a key outside the 0x0 to 0xf range is used.
const InvalidKey = "keypad: invalid key (%#02x)"

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Keypad records the pressed state of the 16 keys.
type Keypad struct {
	keys [NumKeys]bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Reset releases all keys.
func (kpd *Keypad) Reset() {
	for i := range kpd.keys {
		kpd.keys[i] = false
	}
}

// SetKey records a key as pressed or released.
func (kpd *Keypad) SetKey(key uint8, pressed bool) error {
	if key >= NumKeys {
		return curated.Errorf(InvalidKey, key)
	}
	kpd.keys[key] = pressed
	return nil
}

// IsPressed returns the pressed state of the specified key.
func (kpd *Keypad) IsPressed(key uint8) (bool, error) {
	if key >= NumKeys {
		return false, curated.Errorf(InvalidKey, key)
	}
	return kpd.keys[key], nil
}

// AnyPressed returns the lowest numbered key that is currently pressed. The
// ok value is false if no key is pressed.
func (kpd *Keypad) AnyPressed() (uint8, bool) {
	for i := range kpd.keys {
		if kpd.keys[i] {
			return uint8(i), true
		}
	}
	return 0, false
}
