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

// Package terminal defines the operations required by the command line
// interface of the debugger. Implementations are found in the plainterm and
// colorterm sub-packages.
package terminal

// UserInterrupt is returned by TermRead() when the user has interrupted
// input, with ctrl-c for example.
const UserInterrupt = "user interrupt"

// Style is used to hint at the formatting of a line of output. Terminal
// implementations without formatting control are free to ignore it.
type Style int

// List of terminal styles.
const (
	// the result of a machine step, the CPU state and suchlike
	StyleResult Style = iota

	// information the user has asked for
	StyleInfo

	// response to a command that is not machine state
	StyleFeedback

	// help text
	StyleHelp

	// error messages. always shown
	StyleError
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of user input, without the line
	// terminator.
	TermRead(prompt string) (string, error)

	// IsInteractive returns true for implementations that expect a user at
	// the other end.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(style Style, s string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all implementations need to do anything.
	Initialise() error

	// CleanUp restores the terminal to its original state, if possible. for
	// example, returning the terminal to canonical mode.
	CleanUp()
}
