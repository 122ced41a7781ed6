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

package prefs_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/test"
)

const tempFile = "gopher8_prefs_test"

func getTmpPrefFile(t *testing.T) string {
	t.Helper()
	return path.Join(os.TempDir(), tempFile)
}

func delTmpPrefFile(t *testing.T, fn string) {
	t.Helper()

	if err := os.Remove(fn); err != nil {
		// not worrying about path errors; these are returned if
		// file doesn't exist
		if _, ok := err.(*os.PathError); !ok {
			t.Errorf("error removing tmp pref file: %v", err)
		}
	}
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := ioutil.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)

	if expected != string(data) {
		t.Errorf("expected data and data in prefs file do not match")
		fmt.Println("expected:")
		fmt.Println(expected)
		fmt.Println("\nin file:")
		fmt.Println(string(data))
	}
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)
	defer delTmpPrefFile(t, fn)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Fatalf("error preparing disk: %v", err)
	}

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	err = dsk.Add("test", &v)
	test.ExpectedSuccess(t, err)
	err = dsk.Add("testB", &w)
	test.ExpectedSuccess(t, err)
	err = dsk.Add("testC", &x)
	test.ExpectedSuccess(t, err)

	err = v.Set(true)
	test.ExpectedSuccess(t, err)
	err = w.Set("foo")
	test.ExpectedSuccess(t, err)
	err = x.Set("true")
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	test.ExpectedSuccess(t, err)

	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	// load back into fresh values
	dsk2, err := prefs.NewDisk(fn)
	if err != nil {
		t.Fatalf("error preparing disk: %v", err)
	}

	var y prefs.Bool
	err = dsk2.Add("testB", &y)
	test.ExpectedSuccess(t, err)
	err = y.Set(true)
	test.ExpectedSuccess(t, err)

	err = dsk2.Load()
	test.ExpectedSuccess(t, err)
	test.Equate(t, y.Get().(bool), false)
}

func TestInt(t *testing.T) {
	fn := getTmpPrefFile(t)
	defer delTmpPrefFile(t, fn)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Fatalf("error preparing disk: %v", err)
	}

	var v prefs.Int
	err = dsk.Add("testInt", &v)
	test.ExpectedSuccess(t, err)

	err = v.Set(100)
	test.ExpectedSuccess(t, err)

	err = dsk.Save()
	test.ExpectedSuccess(t, err)

	cmpTmpFile(t, fn, "testInt :: 100\n")

	// setting from a non-numeric string should fail
	err = v.Set("foo")
	test.ExpectedFailure(t, err)
}

func TestDuplicateKeys(t *testing.T) {
	fn := getTmpPrefFile(t)
	defer delTmpPrefFile(t, fn)

	dsk, err := prefs.NewDisk(fn)
	if err != nil {
		t.Fatalf("error preparing disk: %v", err)
	}

	var v prefs.Bool
	var w prefs.Bool
	err = dsk.Add("test", &v)
	test.ExpectedSuccess(t, err)
	err = dsk.Add("test", &w)
	test.ExpectedFailure(t, err)
}
