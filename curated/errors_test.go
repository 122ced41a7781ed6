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

package curated_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
)

const testPattern = "test: %v"

func TestDeduplication(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.Equate(t, e.Error(), "test: foo")

	// wrapping an error in the same pattern should not cause the message
	// part to repeat
	f := curated.Errorf(testPattern, e)
	test.Equate(t, f.Error(), "test: foo")
}

func TestIsHas(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, testPattern))

	// wrapped in a different pattern, Is() fails but Has() succeeds
	f := curated.Errorf("fatal: %v", e)
	test.ExpectedFailure(t, curated.Is(f, testPattern))
	test.ExpectedSuccess(t, curated.Has(f, testPattern))

	// uncurated errors are never matched
	test.ExpectedFailure(t, curated.IsAny(nil))
	test.ExpectedFailure(t, curated.Is(nil, testPattern))
	test.ExpectedFailure(t, curated.Has(nil, testPattern))
}
