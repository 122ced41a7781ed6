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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "gopher8.prefs"

// WarningBoilerPlate is the first line in a prefs file. If the first line
// does not match, the file will not be treated as a prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the string that separates the key from the value in a prefs file entry.
const keySep = " :: "

// NoPrefsFile is a sentinal error returned by Load() when the prefs file
// does not exist. It is not necessarily a condition that needs handling.
const NoPrefsFile = "prefs: no prefs file (%s)"

// Disk represents preference values as stored on disk. Preference values
// must be added with the Add() function before calls to Load() or Save()
// have any effect on them.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:    path,
		entries: make(map[string]pref),
	}
	return dsk, nil
}

func (dsk Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", key, keySep, dsk.entries[key].String()))
	}
	return s.String()
}

// Add a preference value to the list of values belonging to the prefs file.
// The key must not contain the key separator sequence.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, strings.TrimSpace(keySep)) {
		return curated.Errorf("prefs: %v", fmt.Sprintf("invalid key (%s)", key))
	}

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: %v", fmt.Sprintf("key already in use (%s)", key))
	}

	dsk.entries[key] = p

	return nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	fmt.Fprintln(f, WarningBoilerPlate)
	_, err = f.WriteString(dsk.String())
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. Entries in the prefs file that have not
// been added with the Add() function are left untouched - the file may be
// shared with other instances of the emulation.
//
// Returns the sentinal error NoPrefsFile if the file does not exist. This is
// not necessarily an error that needs handling; a missing prefs file just
// means default values will be used.
func (dsk *Disk) Load() error {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return curated.Errorf(NoPrefsFile, dsk.path)
		}
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check boilerplate
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return curated.Errorf("prefs: %v", fmt.Sprintf("not a valid prefs file (%s)", dsk.path))
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), keySep, 2)
		if len(kv) != 2 {
			continue
		}
		if p, ok := dsk.entries[kv[0]]; ok {
			if err := p.Set(kv[1]); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}
