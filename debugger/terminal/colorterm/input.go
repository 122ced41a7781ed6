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

package colorterm

import (
	"fmt"
	"unicode"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	ct.RawMode()
	defer ct.CanonicalMode()

	input := make([]byte, 0, 255)
	cursorPos := 0
	historyIdx := len(ct.commandHistory)

	// liveBuffInput is the input line as it was before the user started
	// flipping through the command history
	liveBuffInput := make([]byte, 0, 255)

	// redraw the prompt and the current input
	render := func() {
		ct.Print(ansi.ClearLine)
		ct.Print("\r%s", prompt)
		ct.Print(string(input))
		if cursorPos < len(input) {
			ct.Print(ansi.CursorMove(cursorPos - len(input)))
		}
		_ = ct.Flush()
	}

	render()

	for {
		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyCtrlC:
			ct.Print("\r\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyCarriageReturn:
			ct.Print("\r\n")
			_ = ct.Flush()

			if len(input) > 0 {
				ct.commandHistory = append(ct.commandHistory, command{input: append([]byte(nil), input...)})
			}

			return string(input), nil

		case easyterm.KeyTab:
			// no tab completion

		case easyterm.KeyBackspace:
			if cursorPos > 0 {
				input = append(input[:cursorPos-1], input[cursorPos:]...)
				cursorPos--
				render()
			}

		case easyterm.KeyEsc:
			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			if r != easyterm.EscCursor {
				continue // for loop
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				if historyIdx > 0 {
					if historyIdx == len(ct.commandHistory) {
						liveBuffInput = append(liveBuffInput[:0], input...)
					}
					historyIdx--
					input = append(input[:0], ct.commandHistory[historyIdx].input...)
					cursorPos = len(input)
					render()
				}

			case easyterm.CursorDown:
				if historyIdx < len(ct.commandHistory) {
					historyIdx++
					if historyIdx == len(ct.commandHistory) {
						input = append(input[:0], liveBuffInput...)
					} else {
						input = append(input[:0], ct.commandHistory[historyIdx].input...)
					}
					cursorPos = len(input)
					render()
				}

			case easyterm.CursorForward:
				if cursorPos < len(input) {
					cursorPos++
					render()
				}

			case easyterm.CursorBackward:
				if cursorPos > 0 {
					cursorPos--
					render()
				}
			}

		default:
			if unicode.IsPrint(r) {
				b := []byte(fmt.Sprintf("%c", r))
				input = append(input[:cursorPos], append(b, input[cursorPos:]...)...)
				cursorPos += len(b)
				render()
			}
		}
	}
}
