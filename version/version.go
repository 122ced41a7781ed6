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

// Package version records the version number of the project.
package version

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher8"

// if number is empty then the project was not built using the makefile
var number string

// Version returns the version string and whether this is a numbered
// "release" version.
func Version() (string, bool) {
	if number == "" {
		return "unreleased", false
	}
	return number, true
}
