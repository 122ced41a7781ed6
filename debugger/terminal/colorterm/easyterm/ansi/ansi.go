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

// Package ansi defines ANSI control codes for styling terminal output.
package ansi

import "fmt"

// NormalPen returns the pen to its default styling.
const NormalPen = "\033[0m"

// ClearLine erases the current line.
const ClearLine = "\033[2K"

// PenColor is the set of bright ANSI pens.
var PenColor = map[string]string{
	"red":     "\033[91m",
	"green":   "\033[92m",
	"yellow":  "\033[93m",
	"blue":    "\033[94m",
	"magenta": "\033[95m",
	"cyan":    "\033[96m",
	"white":   "\033[97m",
}

// DimPens is the set of normal intensity ANSI pens.
var DimPens = map[string]string{
	"red":     "\033[31m",
	"green":   "\033[32m",
	"yellow":  "\033[33m",
	"blue":    "\033[34m",
	"magenta": "\033[35m",
	"cyan":    "\033[36m",
	"white":   "\033[37m",
}

// PenStyles is the set of ANSI attributes.
var PenStyles = map[string]string{
	"bold":      "\033[1m",
	"underline": "\033[4m",
}

// CursorBackwardOne moves the cursor backward one character.
const CursorBackwardOne = "\033[1D"

// CursorMove moves the cursor n characters forward (positive) or backward
// (negative).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}
