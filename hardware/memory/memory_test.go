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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

func TestReadWrite(t *testing.T) {
	mem := memory.NewMemory()

	// every valid address reads back what was written
	for a := uint16(0); a <= memory.Memtop; a++ {
		err := mem.Write(a, uint8(a))
		test.ExpectedSuccess(t, err)

		d, err := mem.Read(a)
		test.ExpectedSuccess(t, err)
		test.Equate(t, d, uint8(a))
	}
}

func TestOutOfBounds(t *testing.T) {
	mem := memory.NewMemory()

	_, err := mem.Read(memory.Memtop + 1)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, memory.OutOfBounds))

	err = mem.Write(0x1000, 0xff)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, memory.OutOfBounds))
}

func TestLoad(t *testing.T) {
	mem := memory.NewMemory()

	data := []byte{0x01, 0x02, 0x03}
	err := mem.Load(data, memory.OriginCart)
	test.ExpectedSuccess(t, err)

	for i := range data {
		d, err := mem.Read(memory.OriginCart + uint16(i))
		test.ExpectedSuccess(t, err)
		test.Equate(t, d, data[i])
	}

	// a load that just fits is okay
	data = make([]byte, int(memory.Memtop)+1-int(memory.OriginCart))
	err = mem.Load(data, memory.OriginCart)
	test.ExpectedSuccess(t, err)

	// one byte longer and the load must fail
	data = append(data, 0x00)
	err = mem.Load(data, memory.OriginCart)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, memory.OutOfBounds))
}
