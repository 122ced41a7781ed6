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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/hardware/video"
)

type stubClock struct{}

func (s stubClock) Cycles() uint64 {
	return 0
}

type testMachine struct {
	cpu *cpu.CPU
	mem *memory.Memory
	vid *video.Video
	kpd *keypad.Keypad
	tmr *timer.Timer
}

// newTestMachine assembles a machine around the supplied program, loaded at
// the cartridge origin.
func newTestMachine(t *testing.T, program []uint8) *testMachine {
	t.Helper()

	ins, err := instance.NewInstance(stubClock{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	ins.Normalise()

	m := &testMachine{
		mem: memory.NewMemory(),
		vid: video.NewVideo(),
		kpd: keypad.NewKeypad(),
		tmr: timer.NewTimer(),
	}
	m.cpu = cpu.NewCPU(ins, m.mem, m.vid, m.kpd, m.tmr)
	m.cpu.Reset()

	if err := m.mem.Load(program, memory.OriginCart); err != nil {
		t.Fatal(err)
	}

	return m
}

// step the machine n instructions, failing the test on any error.
func (m *testMachine) step(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := m.cpu.Step(); err != nil {
			t.Fatal(err)
		}
	}
}

func (m *testMachine) register(t *testing.T, r uint8) uint8 {
	t.Helper()
	v, err := m.cpu.Reg.Register(r)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func (m *testMachine) equateRegister(t *testing.T, r uint8, expected int) {
	t.Helper()
	v := m.register(t, r)
	if v != uint8(expected) {
		t.Errorf("V%X is %#02x (wanted %#02x)", r, v, expected)
	}
}

func TestAddCarry(t *testing.T) {
	m := newTestMachine(t, []uint8{
		0x60, 0xff, // LD V0, 0xff
		0x61, 0x01, // LD V1, 0x01
		0x80, 0x14, // ADD V0, V1
		0x62, 0x0a, // LD V2, 0x0a
		0x82, 0x14, // ADD V2, V1
	})

	m.step(t, 3)
	m.equateRegister(t, 0x00, 0x00)
	m.equateRegister(t, 0x0f, 0x01)

	m.step(t, 2)
	m.equateRegister(t, 0x02, 0x0b)
	m.equateRegister(t, 0x0f, 0x00)
}

func TestSubtractBorrow(t *testing.T) {
	m := newTestMachine(t, []uint8{
		0x60, 0x05, // LD V0, 5
		0x61, 0x0a, // LD V1, 10
		0x80, 0x15, // SUB V0, V1 (borrows)
		0x62, 0x0a, // LD V2, 10
		0x63, 0x05, // LD V3, 5
		0x82, 0x35, // SUB V2, V3 (no borrow)
	})

	m.step(t, 3)
	m.equateRegister(t, 0x00, 0xfb)
	m.equateRegister(t, 0x0f, 0x00)

	m.step(t, 3)
	m.equateRegister(t, 0x02, 0x05)
	m.equateRegister(t, 0x0f, 0x01)
}

// VF is both a destination register and the carry flag. The flag write must
// win.
func TestFlagIsWrittenAfterResult(t *testing.T) {
	m := newTestMachine(t, []uint8{
		0x6f, 0xff, // LD VF, 0xff
		0x61, 0x01, // LD V1, 0x01
		0x8f, 0x14, // ADD VF, V1
	})

	m.step(t, 3)
	m.equateRegister(t, 0x0f, 0x01)
}

func TestShiftQuirk(t *testing.T) {
	program := []uint8{
		0x60, 0x00, // LD V0, 0x00
		0x61, 0x03, // LD V1, 0x03
		0x80, 0x16, // SHR V0, V1
	}

	// default behaviour copies VY into VX before shifting
	m := newTestMachine(t, program)
	m.step(t, 3)
	m.equateRegister(t, 0x00, 0x01)
	m.equateRegister(t, 0x0f, 0x01)

	// with the quirk disabled VX is shifted in place and VY ignored
	m = newTestMachine(t, program)
	if err := m.cpu.Instance().Prefs.ShiftCopiesY.Set(false); err != nil {
		t.Fatal(err)
	}
	m.step(t, 3)
	m.equateRegister(t, 0x00, 0x00)
	m.equateRegister(t, 0x0f, 0x00)
}

func TestDrawCollision(t *testing.T) {
	m := newTestMachine(t, []uint8{
		0xa3, 0x00, // LD I, 0x300
		0xd0, 0x01, // DRW V0, V0, 1
		0xd0, 0x01, // DRW V0, V0, 1
	})
	if err := m.mem.Write(0x0300, 0xff); err != nil {
		t.Fatal(err)
	}

	m.step(t, 2)
	m.equateRegister(t, 0x0f, 0x00)
	if !m.vid.Pixel(0, 0) {
		t.Error("pixel (0, 0) not set after first draw")
	}
	if !m.cpu.LastResult.VideoUpdate {
		t.Error("draw did not record a video update")
	}

	// the second draw erases the sprite and raises the collision flag
	m.step(t, 1)
	m.equateRegister(t, 0x0f, 0x01)
	if m.vid.Pixel(0, 0) {
		t.Error("pixel (0, 0) still set after second draw")
	}
}

func TestCallReturn(t *testing.T) {
	m := newTestMachine(t, []uint8{
		0x22, 0x06, // 0x200: CALL 0x206
		0x00, 0x00,
		0x00, 0x00,
		0x60, 0x2a, // 0x206: LD V0, 42
		0x00, 0xee, // 0x208: RET
	})

	m.step(t, 1)
	if m.cpu.Reg.PC != 0x0206 {
		t.Fatalf("PC is %#04x after CALL (wanted 0x0206)", m.cpu.Reg.PC)
	}

	m.step(t, 2)
	m.equateRegister(t, 0x00, 42)
	if m.cpu.Reg.PC != 0x0202 {
		t.Fatalf("PC is %#04x after RET (wanted 0x0202)", m.cpu.Reg.PC)
	}
}

func TestSkip(t *testing.T) {
	m := newTestMachine(t, []uint8{
		0x60, 0x05, // LD V0, 5
		0x30, 0x05, // SE V0, 5 (skips)
		0x61, 0xff, // skipped
		0x30, 0x06, // SE V0, 6 (does not skip)
	})

	m.step(t, 2)
	if m.cpu.Reg.PC != 0x0206 {
		t.Fatalf("PC is %#04x after taken skip (wanted 0x0206)", m.cpu.Reg.PC)
	}

	m.step(t, 1)
	if m.cpu.Reg.PC != 0x0208 {
		t.Fatalf("PC is %#04x after untaken skip (wanted 0x0208)", m.cpu.Reg.PC)
	}
	m.equateRegister(t, 0x01, 0x00)
}

func TestUnknownOpcodeMutatesNothing(t *testing.T) {
	m := newTestMachine(t, []uint8{
		0xff, 0xff, // not an instruction
	})

	err := m.cpu.Step()
	if err == nil {
		t.Fatal("unknown opcode did not halt the machine")
	}
	if !curated.Has(err, instructions.UnknownInstruction) {
		t.Fatalf("unexpected error: %v", err)
	}

	// the program counter still points at the offending word
	if m.cpu.Reg.PC != memory.OriginCart {
		t.Errorf("PC advanced past an unknown opcode (%#04x)", m.cpu.Reg.PC)
	}
	if m.cpu.Cycles() != 0 {
		t.Errorf("cycle count advanced past an unknown opcode")
	}
}

func TestPoweredOff(t *testing.T) {
	// an empty program. the first fetched word is 0x0000
	m := newTestMachine(t, []uint8{})

	err := m.cpu.Step()
	if !curated.Is(err, cpu.PoweredOff) {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.cpu.HasPowered() {
		t.Error("machine still powered after end of program")
	}

	// stepping again returns the same condition
	err = m.cpu.Step()
	if !curated.Is(err, cpu.PoweredOff) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWaitKey(t *testing.T) {
	m := newTestMachine(t, []uint8{
		0xf0, 0x0a, // LD V0, K
	})

	// no key is pressed so the program counter stays put
	m.step(t, 1)
	if !m.cpu.AwaitingKey {
		t.Fatal("cpu is not waiting for a key")
	}
	if m.cpu.Reg.PC != memory.OriginCart {
		t.Fatalf("PC advanced while waiting for a key (%#04x)", m.cpu.Reg.PC)
	}

	if err := m.kpd.SetKey(0x05, true); err != nil {
		t.Fatal(err)
	}

	m.step(t, 1)
	if m.cpu.AwaitingKey {
		t.Error("cpu still waiting for a key")
	}
	m.equateRegister(t, 0x00, 0x05)
	if m.cpu.Reg.PC != memory.OriginCart+2 {
		t.Fatalf("PC is %#04x after key press (wanted %#04x)", m.cpu.Reg.PC, memory.OriginCart+2)
	}
}

func TestRandomMask(t *testing.T) {
	m := newTestMachine(t, []uint8{
		0x60, 0xff, // LD V0, 0xff
		0xc0, 0x00, // RND V0, 0x00
	})

	m.step(t, 2)
	m.equateRegister(t, 0x00, 0x00)
}

func TestStoreDecimal(t *testing.T) {
	m := newTestMachine(t, []uint8{
		0x60, 0x9c, // LD V0, 156
		0xa3, 0x00, // LD I, 0x300
		0xf0, 0x33, // LD B, V0
	})

	m.step(t, 3)

	expected := []uint8{1, 5, 6}
	for i, e := range expected {
		v, err := m.mem.Read(0x0300 + uint16(i))
		if err != nil {
			t.Fatal(err)
		}
		if v != e {
			t.Errorf("BCD digit %d is %d (wanted %d)", i, v, e)
		}
	}
}

func TestStoreLoadRegisters(t *testing.T) {
	m := newTestMachine(t, []uint8{
		0x60, 0x11, // LD V0, 0x11
		0x61, 0x22, // LD V1, 0x22
		0x62, 0x33, // LD V2, 0x33
		0xa3, 0x00, // LD I, 0x300
		0xf2, 0x55, // LD [I], V2
		0x60, 0x00, // LD V0, 0
		0x61, 0x00, // LD V1, 0
		0x62, 0x00, // LD V2, 0
		0xf2, 0x65, // LD V2, [I]
	})

	m.step(t, 5)

	// by default the index register is left untouched
	if m.cpu.Reg.I != 0x0300 {
		t.Fatalf("I is %#04x after register store (wanted 0x0300)", m.cpu.Reg.I)
	}

	m.step(t, 4)
	m.equateRegister(t, 0x00, 0x11)
	m.equateRegister(t, 0x01, 0x22)
	m.equateRegister(t, 0x02, 0x33)
}

func TestTimerInstructions(t *testing.T) {
	m := newTestMachine(t, []uint8{
		0x60, 0x3c, // LD V0, 60
		0xf0, 0x15, // LD DT, V0
		0xf0, 0x18, // LD ST, V0
		0xf1, 0x07, // LD V1, DT
	})

	m.step(t, 4)
	if m.tmr.Delay != 60 || m.tmr.Sound != 60 {
		t.Fatalf("timers not set (DT=%d ST=%d)", m.tmr.Delay, m.tmr.Sound)
	}
	m.equateRegister(t, 0x01, 60)
}

func TestFontAddress(t *testing.T) {
	m := newTestMachine(t, []uint8{
		0x60, 0x0a, // LD V0, 0x0a
		0xf0, 0x29, // LD F, V0
	})

	m.step(t, 2)
	expected := uint16(memory.OriginFont) + 0x0a*5
	if m.cpu.Reg.I != expected {
		t.Fatalf("I is %#04x for sprite 0xa (wanted %#04x)", m.cpu.Reg.I, expected)
	}
}

func TestStackLimitThroughProgram(t *testing.T) {
	// a program that calls itself. the 17th call must fail with a stack
	// overflow
	m := newTestMachine(t, []uint8{
		0x22, 0x00, // 0x200: CALL 0x200
	})

	for i := 0; i < registers.StackDepth; i++ {
		m.step(t, 1)
	}

	err := m.cpu.Step()
	if !curated.Has(err, registers.StackOverflow) {
		t.Fatalf("unexpected error: %v", err)
	}
}
