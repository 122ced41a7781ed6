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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

func TestFromData(t *testing.T) {
	dsm := disassembly.FromData([]byte{
		0xa2, 0x22, // LD I, 0x0222
		0xd0, 0x1f, // DRW V0, V1, 15
		0xff, 0xff, // not an instruction
		0x80, // trailing byte
	}, memory.OriginCart)

	test.Equate(t, len(dsm.Entries), 4)
	test.Equate(t, dsm.Entries[0].String(), "0x0200  a222  LD I, 0x0222")
	test.Equate(t, dsm.Entries[1].String(), "0x0202  d01f  DRW V0, V1, 15")
	test.Equate(t, dsm.Entries[2].String(), "0x0204  ffff  .word 0xffff")
	test.Equate(t, dsm.Entries[3].String(), "0x0206  0080  .byte 0x80")
}

func TestWrite(t *testing.T) {
	dsm := disassembly.FromData([]byte{0x00, 0xe0}, memory.OriginCart)

	s := &strings.Builder{}
	test.ExpectedSuccess(t, dsm.Write(s))
	test.Equate(t, s.String(), "0x0200  00e0  CLS\n")
}
