// This file is part of M6502.
//
// M6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// M6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with M6502.  If not, see <https://www.gnu.org/licenses/>.

package cpu_test

import (
	"errors"
	"testing"

	"github.com/hollyburn/m6502/cpu"
	"github.com/hollyburn/m6502/cpu/execution"
	"github.com/hollyburn/m6502/cpu/instructions"
	rtest "github.com/hollyburn/m6502/cpu/registers/test"
	"github.com/hollyburn/m6502/test"
)

func TestNotReset(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	// execution before the first Reset() is an error
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	test.ExpectedFailure(t, err)
	test.Equate(t, errors.Is(err, cpu.NotReset), true)
}

func TestReset(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, mc.Reset())

	// documented power-on state
	rtest.EquateRegisters(t, mc.A, 0)
	rtest.EquateRegisters(t, mc.X, 0)
	rtest.EquateRegisters(t, mc.Y, 0)
	rtest.EquateRegisters(t, mc.SP, 255)
	rtest.EquateRegisters(t, mc.Status, "sv-BdIzc")
	test.Equate(t, mc.Status.Value(), 0x34)
	test.Equate(t, mc.HasReset(), true)

	// the reset vector is in the unreadable top page of mockMem. the read is
	// advisory; it is recorded in the result and the PC ends up at zero
	rtest.EquateRegisters(t, mc.PC, 0x0000)
	test.Equate(t, mc.LastResult.Error == "", false)

	// relocating the reset vector
	mc.Vectors.Reset = 0x0ffc
	mem.putInstructions(0x0ffc, 0x00, 0x10)
	test.ExpectedSuccess(t, mc.Reset())
	rtest.EquateRegisters(t, mc.PC, 0x1000)
	test.Equate(t, mc.LastResult.Error, "")
}

func TestStatusInstructions(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, mc.Reset())

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	mem.putInstructions(0x0000, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	rtest.EquateRegisters(t, mc.Status, "sv-BdIzC")
	step(t, mc) // CLC
	rtest.EquateRegisters(t, mc.Status, "sv-BdIzc")
	step(t, mc) // CLI
	rtest.EquateRegisters(t, mc.Status, "sv-Bdizc")
	step(t, mc) // SEI
	rtest.EquateRegisters(t, mc.Status, "sv-BdIzc")
	step(t, mc) // SED
	rtest.EquateRegisters(t, mc.Status, "sv-BDIzc")
	step(t, mc) // CLD
	rtest.EquateRegisters(t, mc.Status, "sv-BdIzc")
	step(t, mc) // CLV
	rtest.EquateRegisters(t, mc.Status, "sv-BdIzc")
}

func TestPHPPLP(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, mc.Reset())

	mem.putInstructions(0x0000, 0x08, 0x28)

	// the pushed status byte always has the break bit forced on, whatever
	// the state of the flag itself
	mc.Status.Break = false
	step(t, mc) // PHP
	rtest.EquateRegisters(t, mc.SP, 254)
	mem.assert(t, 0x01ff, 0x34)

	// mangle status register before restoring it from the stack
	mc.Status.Sign = true
	mc.Status.Overflow = true
	mc.Status.InterruptDisable = false

	step(t, mc) // PLP
	rtest.EquateRegisters(t, mc.SP, 255)
	rtest.EquateRegisters(t, mc.Status, "sv-BdIzc")
	test.Equate(t, mc.Status.Value(), 0x34)
}

func TestRegisterArithmetic(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, mc.Reset())

	// LDA immediate; ADC immediate
	mem.putInstructions(0x0000, 0xa9, 0x01, 0x69, 0x0a)
	res := step(t, mc) // LDA #1
	test.Equate(t, res.String(), "0x0000 LDA #$01 [2]")
	step(t, mc) // ADC #10
	rtest.EquateRegisters(t, mc.A, 11)

	// SEC; SBC immediate
	mem.putInstructions(0x0004, 0x38, 0xe9, 0x08)
	step(t, mc) // SEC
	step(t, mc) // SBC #8
	rtest.EquateRegisters(t, mc.A, 3)
	rtest.EquateRegisters(t, mc.Status, "sv-BdIzC")

	// signed overflow: 0x50 + 0x50 = 0xa0
	mem.putInstructions(0x0007, 0x18, 0xa9, 0x50, 0x69, 0x50)
	step(t, mc) // CLC
	step(t, mc) // LDA #$50
	step(t, mc) // ADC #$50
	rtest.EquateRegisters(t, mc.A, 0xa0)
	rtest.EquateRegisters(t, mc.Status, "SV-BdIzc")
}

func TestRegisterBitwiseInstructions(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, mc.Reset())

	// ORA immediate; EOR immediate; AND immediate
	mem.putInstructions(0x0000, 0x09, 0xff, 0x49, 0xf0, 0x29, 0x01)
	rtest.EquateRegisters(t, mc.A, 0)
	step(t, mc) // ORA #$FF
	rtest.EquateRegisters(t, mc.A, 255)
	rtest.EquateRegisters(t, mc.Status, "Sv-BdIzc")
	step(t, mc) // EOR #$F0
	rtest.EquateRegisters(t, mc.A, 15)
	step(t, mc) // AND #$01
	rtest.EquateRegisters(t, mc.A, 1)

	// ASL implied; LSR implied; LSR implied
	mem.putInstructions(0x0006, 0x0a, 0x4a, 0x4a)
	step(t, mc) // ASL
	rtest.EquateRegisters(t, mc.A, 2)
	rtest.EquateRegisters(t, mc.Status, "sv-BdIzc")
	step(t, mc) // LSR
	rtest.EquateRegisters(t, mc.A, 1)
	step(t, mc) // LSR
	rtest.EquateRegisters(t, mc.A, 0)
	rtest.EquateRegisters(t, mc.Status, "sv-BdIZC")

	// ROL implied; ROR implied; ROR implied; ROR implied
	mem.putInstructions(0x0009, 0x2a, 0x6a, 0x6a, 0x6a)
	step(t, mc) // ROL
	rtest.EquateRegisters(t, mc.A, 1)
	rtest.EquateRegisters(t, mc.Status, "sv-BdIzc")
	step(t, mc) // ROR
	rtest.EquateRegisters(t, mc.A, 0)
	rtest.EquateRegisters(t, mc.Status, "sv-BdIZC")
	step(t, mc) // ROR
	rtest.EquateRegisters(t, mc.A, 128)
	rtest.EquateRegisters(t, mc.Status, "Sv-BdIzc")
	step(t, mc) // ROR
	rtest.EquateRegisters(t, mc.A, 64)
	rtest.EquateRegisters(t, mc.Status, "sv-BdIzc")
}

func TestImpliedAddressing(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, mc.Reset())

	// LDX immediate; INX; DEX
	mem.putInstructions(0x0000, 0xa2, 0x05, 0xe8, 0xca)
	step(t, mc) // LDX #5
	rtest.EquateRegisters(t, mc.X, 5)
	step(t, mc) // INX
	rtest.EquateRegisters(t, mc.X, 6)
	step(t, mc) // DEX
	rtest.EquateRegisters(t, mc.X, 5)
	rtest.EquateRegisters(t, mc.Status, "sv-BdIzc")

	// LDA immediate; PHA; LDA immediate; PLA
	mem.putInstructions(0x0004, 0xa9, 0x05, 0x48, 0xa9, 0x00, 0x68)
	step(t, mc) // LDA #5
	step(t, mc) // PHA
	rtest.EquateRegisters(t, mc.SP, 254)
	step(t, mc) // LDA #0
	rtest.EquateRegisters(t, mc.A, 0)
	test.Equate(t, mc.Status.Zero, true)
	step(t, mc) // PLA
	rtest.EquateRegisters(t, mc.A, 5)
	rtest.EquateRegisters(t, mc.SP, 255)

	// transfers
	mem.putInstructions(0x000a, 0xaa, 0xa8, 0x8a, 0x98, 0xba)
	step(t, mc) // TAX
	rtest.EquateRegisters(t, mc.X, 5)
	step(t, mc) // TAY
	rtest.EquateRegisters(t, mc.Y, 5)
	step(t, mc) // TXA
	step(t, mc) // TYA
	rtest.EquateRegisters(t, mc.A, 5)
	step(t, mc) // TSX
	rtest.EquateRegisters(t, mc.X, 255)
	rtest.EquateRegisters(t, mc.Status, "Sv-BdIzc")
}

func TestAddressingModes(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, mc.Reset())
	test.ExpectedSuccess(t, mc.LoadPC(0x0200))

	// zero page data
	mem.putInstructions(0x0080, 0xab, 0x47)
	mem.putInstructions(0x0090, 0x11)
	mem.putInstructions(0x0024, 0x00, 0x03)
	mem.putInstructions(0x0010, 0x60, 0x03)
	mem.putInstructions(0x0040, 0x50, 0x03, 0x40, 0x03)

	// absolute data
	mem.putInstructions(0x0123, 0x99, 0x21)
	mem.putInstructions(0x0280, 0x22)
	mem.putInstructions(0x0300, 0x55)
	mem.putInstructions(0x0360, 0x77)
	mem.putInstructions(0x0430, 0x88)

	// LDA zeroPage
	origin := mem.putInstructions(0x0200, 0xa5, 0x80)
	res := step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0xab)
	test.Equate(t, res.Cycles, 3)

	// LDX immediate; LDA zeroPage,X with wraparound: (0xff + 0x82) & 0xff = 0x81
	origin = mem.putInstructions(origin, 0xa2, 0x82, 0xb5, 0xff)
	step(t, mc)
	res = step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x47)
	test.Equate(t, res.Cycles, 4)
	test.Equate(t, res.CPUBug, execution.ZeroPageIndexBug)

	// LDY immediate; LDX zeroPage,Y
	origin = mem.putInstructions(origin, 0xa0, 0x02, 0xb6, 0x8e)
	step(t, mc)
	res = step(t, mc)
	rtest.EquateRegisters(t, mc.X, 0x11)
	test.Equate(t, res.Cycles, 4)

	// LDA absolute
	origin = mem.putInstructions(origin, 0xad, 0x23, 0x01)
	res = step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x99)
	test.Equate(t, res.Cycles, 4)

	// LDX immediate; LDA absolute,X without page fault
	origin = mem.putInstructions(origin, 0xa2, 0x01, 0xbd, 0x23, 0x01)
	step(t, mc)
	res = step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x21)
	test.Equate(t, res.Cycles, 4)
	test.Equate(t, res.PageFault, false)

	// LDX immediate; LDA absolute,X with page fault: 0x0181 + 0xff = 0x0280
	origin = mem.putInstructions(origin, 0xa2, 0xff, 0xbd, 0x81, 0x01)
	step(t, mc)
	res = step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x22)
	test.Equate(t, res.Cycles, 5)
	test.Equate(t, res.PageFault, true)

	// LDX immediate; LDA (indirect,X)
	origin = mem.putInstructions(origin, 0xa2, 0x04, 0xa1, 0x20)
	step(t, mc)
	res = step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x55)
	test.Equate(t, res.Cycles, 6)

	// LDX immediate; LDA (indirect,X) with wraparound: 0x30 + 0xe0 = 0x10
	origin = mem.putInstructions(origin, 0xa2, 0xe0, 0xa1, 0x30)
	step(t, mc)
	res = step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x77)
	test.Equate(t, res.Cycles, 6)
	test.Equate(t, res.CPUBug, execution.IndexedIndirectAddressingBug)

	// LDY immediate; LDA (indirect),Y without page fault
	origin = mem.putInstructions(origin, 0xa0, 0x10, 0xb1, 0x40)
	step(t, mc)
	res = step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x77)
	test.Equate(t, res.Cycles, 5)
	test.Equate(t, res.PageFault, false)

	// LDY immediate; LDA (indirect),Y with page fault: 0x0340 + 0xf0 = 0x0430
	origin = mem.putInstructions(origin, 0xa0, 0xf0, 0xb1, 0x42)
	step(t, mc)
	res = step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x88)
	test.Equate(t, res.Cycles, 6)
	test.Equate(t, res.PageFault, true)

	// LDX immediate; LDA absolute,X indexing past the end of memory:
	// 0xffff + 0x01 wraps at the 16 bit boundary, not within the page
	mem.putInstructions(0x0000, 0x42)
	mem.putInstructions(origin, 0xa2, 0x01, 0xbd, 0xff, 0xff)
	step(t, mc)
	res = step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x42)
	test.Equate(t, res.Cycles, 5)
	test.Equate(t, res.PageFault, true)
}

func TestIndirectPointerWraparound(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, mc.Reset())
	test.ExpectedSuccess(t, mc.LoadPC(0x0200))

	// a two byte pointer with its low byte at 0xff takes its high byte from
	// 0x00, not from 0x100
	mem.putInstructions(0x00ff, 0x34)
	mem.putInstructions(0x0000, 0x12)
	mem.putInstructions(0x0100, 0x77) // decoy on the wrong page
	mem.putInstructions(0x1234, 0x99)
	mem.putInstructions(0x1235, 0x66)

	// LDX immediate; LDA (indirect,X) with the pointer at 0xff
	origin := mem.putInstructions(0x0200, 0xa2, 0x00, 0xa1, 0xff)
	step(t, mc)
	res := step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x99)
	test.Equate(t, res.Cycles, 6)

	// LDY immediate; LDA (indirect),Y with the pointer at 0xff
	mem.putInstructions(origin, 0xa0, 0x01, 0xb1, 0xff)
	step(t, mc)
	res = step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x66)
	test.Equate(t, res.Cycles, 5)
}

func TestStorageInstructions(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, mc.Reset())
	test.ExpectedSuccess(t, mc.LoadPC(0x0200))

	// LDA immediate; STA zeroPage
	origin := mem.putInstructions(0x0200, 0xa9, 0x05, 0x85, 0x07)
	step(t, mc)
	res := step(t, mc)
	mem.assert(t, 0x0007, 0x05)
	test.Equate(t, res.Cycles, 3)

	// LDX immediate; STX absolute
	origin = mem.putInstructions(origin, 0xa2, 0x10, 0x8e, 0x00, 0x03)
	step(t, mc)
	res = step(t, mc)
	mem.assert(t, 0x0300, 0x10)
	test.Equate(t, res.Cycles, 4)

	// LDY immediate; STY zeroPage
	origin = mem.putInstructions(origin, 0xa0, 0x22, 0x84, 0x08)
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x0008, 0x22)

	// LDY immediate; STA absolute,Y. stores always consume the extra cycle,
	// even without a page fault
	origin = mem.putInstructions(origin, 0xa0, 0x00, 0x99, 0x40, 0x03)
	step(t, mc)
	res = step(t, mc)
	mem.assert(t, 0x0340, 0x05)
	test.Equate(t, res.Cycles, 5)
	test.Equate(t, res.PageFault, false)

	// INC zeroPage; DEC absolute; LDX immediate; ASL absolute,X
	origin = mem.putInstructions(origin, 0xe6, 0x07, 0xce, 0x00, 0x03, 0xa2, 0x00, 0x1e, 0x40, 0x03)
	res = step(t, mc) // INC $07
	mem.assert(t, 0x0007, 0x06)
	test.Equate(t, res.Cycles, 5)
	res = step(t, mc) // DEC $0300
	mem.assert(t, 0x0300, 0x0f)
	test.Equate(t, res.Cycles, 6)
	step(t, mc) // LDX #0
	res = step(t, mc) // ASL $0340,X
	mem.assert(t, 0x0340, 0x0a)
	test.Equate(t, res.Cycles, 7)
}

func TestBranching(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, mc.Reset())

	// LDX immediate; BNE taken; BEQ not taken
	mem.putInstructions(0x0000, 0xa2, 0x01, 0xd0, 0x01, 0xea, 0xf0, 0x01, 0xea)
	step(t, mc) // LDX #1
	res := step(t, mc) // BNE +1
	test.Equate(t, res.BranchSuccess, true)
	test.Equate(t, res.Cycles, 3)
	rtest.EquateRegisters(t, mc.PC, 0x0005)
	res = step(t, mc) // BEQ +1
	test.Equate(t, res.BranchSuccess, false)
	test.Equate(t, res.Cycles, 2)
	rtest.EquateRegisters(t, mc.PC, 0x0007)

	// branch across a page boundary costs an additional cycle
	mem.putInstructions(0x00f0, 0xd0, 0x10)
	test.ExpectedSuccess(t, mc.LoadPC(0x00f0))
	res = step(t, mc) // BNE +16
	test.Equate(t, res.Cycles, 4)
	test.Equate(t, res.PageFault, true)
	rtest.EquateRegisters(t, mc.PC, 0x0102)

	// backwards branch within the page
	mem.putInstructions(0x0102, 0xd0, 0xfc)
	res = step(t, mc) // BNE -4
	test.Equate(t, res.Cycles, 3)
	test.Equate(t, res.PageFault, false)
	rtest.EquateRegisters(t, mc.PC, 0x0100)
}

func TestJumps(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, mc.Reset())

	// JMP absolute
	mem.putInstructions(0x0000, 0x4c, 0x80, 0x02)
	res := step(t, mc)
	rtest.EquateRegisters(t, mc.PC, 0x0280)
	test.Equate(t, res.Cycles, 3)

	// JMP indirect
	mem.putInstructions(0x0280, 0x6c, 0x50, 0x03)
	mem.putInstructions(0x0350, 0x00, 0x04)
	res = step(t, mc)
	rtest.EquateRegisters(t, mc.PC, 0x0400)
	test.Equate(t, res.Cycles, 5)
	test.Equate(t, res.CPUBug, "")

	// JMP indirect with the pointer on a page boundary. the MSB of the jump
	// address is read from the zero byte of the pointer's page, not the next
	// page
	mem.putInstructions(0x0400, 0x6c, 0xff, 0x05)
	mem.putInstructions(0x05ff, 0x34)
	mem.putInstructions(0x0500, 0x12)
	res = step(t, mc)
	rtest.EquateRegisters(t, mc.PC, 0x1234)
	test.Equate(t, res.CPUBug, execution.JmpIndirectAddressingBug)
}

func TestCompareInstructions(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, mc.Reset())
	test.ExpectedSuccess(t, mc.LoadPC(0x0200))

	mem.putInstructions(0x0010, 0xc0)

	// LDA immediate; CMP immediate (equal); CMP immediate (less than)
	origin := mem.putInstructions(0x0200, 0xa9, 0x40, 0xc9, 0x40, 0xc9, 0x41)
	step(t, mc)
	step(t, mc) // CMP #$40
	rtest.EquateRegisters(t, mc.Status, "sv-BdIZC")
	step(t, mc) // CMP #$41
	rtest.EquateRegisters(t, mc.Status, "Sv-BdIzc")

	// CPX immediate; CPY immediate
	origin = mem.putInstructions(origin, 0xe0, 0x00, 0xc0, 0x01)
	step(t, mc) // CPX #0
	rtest.EquateRegisters(t, mc.Status, "sv-BdIZC")
	step(t, mc) // CPY #1
	rtest.EquateRegisters(t, mc.Status, "Sv-BdIzc")

	// LDA immediate; BIT zeroPage. sign and overflow come from the memory
	// value, zero from the AND of the two
	mem.putInstructions(origin, 0xa9, 0x01, 0x24, 0x10)
	step(t, mc)
	step(t, mc) // BIT $10
	rtest.EquateRegisters(t, mc.Status, "SV-BdIZc")
}

func TestSubroutineInstructions(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, mc.Reset())

	mem.putInstructions(0x0000, 0x20, 0x00, 0x03)
	mem.putInstructions(0x0300, 0x60)

	// JSR pushes the address of the final byte of the instruction, not the
	// address of the next instruction
	res := step(t, mc) // JSR $0300
	rtest.EquateRegisters(t, mc.PC, 0x0300)
	rtest.EquateRegisters(t, mc.SP, 253)
	mem.assert(t, 0x01ff, 0x00)
	mem.assert(t, 0x01fe, 0x02)
	test.Equate(t, res.Cycles, 6)

	// the return address can be read non-destructively
	address, ok := mc.PredictRTS()
	test.Equate(t, ok, true)
	test.Equate(t, address, 0x0003)

	res = step(t, mc) // RTS
	rtest.EquateRegisters(t, mc.PC, 0x0003)
	rtest.EquateRegisters(t, mc.SP, 255)
	test.Equate(t, res.Cycles, 6)
}

func TestDecimalMode(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, mc.Reset())

	// SED; LDA immediate; ADC immediate
	mem.putInstructions(0x0000, 0xf8, 0xa9, 0x05, 0x69, 0x05)
	step(t, mc)
	step(t, mc)
	step(t, mc) // ADC #$05
	rtest.EquateRegisters(t, mc.A, 0x10)
	test.Equate(t, mc.Status.Carry, false)

	// LDA immediate; ADC immediate with decimal rollover. note that the NMOS
	// zero and sign flags reflect the intermediate result, not the corrected
	// decimal value
	mem.putInstructions(0x0005, 0xa9, 0x99, 0x69, 0x01)
	step(t, mc)
	step(t, mc) // ADC #$01
	rtest.EquateRegisters(t, mc.A, 0x00)
	rtest.EquateRegisters(t, mc.Status, "Sv-BDIzC")

	// SEC; LDA immediate; SBC immediate
	mem.putInstructions(0x0009, 0x38, 0xa9, 0x10, 0xe9, 0x05)
	step(t, mc)
	step(t, mc)
	step(t, mc) // SBC #$05
	rtest.EquateRegisters(t, mc.A, 0x05)
	test.Equate(t, mc.Status.Carry, true)

	// the Ricoh variant has no BCD unit. the decimal flag can be set but
	// arithmetic is always binary
	mem = newMockMem()
	mc = cpu.NewCPUModel(instructions.Ricoh2A03, mem)
	test.ExpectedSuccess(t, mc.Reset())
	mem.putInstructions(0x0000, 0xf8, 0xa9, 0x05, 0x69, 0x05)
	step(t, mc)
	step(t, mc)
	step(t, mc) // ADC #$05
	test.Equate(t, mc.Status.DecimalMode, true)
	rtest.EquateRegisters(t, mc.A, 0x0a)
}

func TestBRK(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, mc.Reset())

	mc.Vectors.BRK = 0x0f00
	mem.putInstructions(0x0f00, 0x00, 0x02)

	// CLI; BRK
	mem.putInstructions(0x0000, 0x58, 0x00)
	mem.putInstructions(0x0200, 0x40) // RTI in the handler
	step(t, mc)
	mc.Status.Break = false

	res := step(t, mc) // BRK
	rtest.EquateRegisters(t, mc.PC, 0x0200)
	test.Equate(t, res.Cycles, 7)
	test.Equate(t, mc.Status.InterruptDisable, true)

	// BRK pushes the address of the byte after its padding byte, and the
	// status byte with the break bit forced on
	rtest.EquateRegisters(t, mc.SP, 252)
	mem.assert(t, 0x01ff, 0x00)
	mem.assert(t, 0x01fe, 0x03)
	test.Equate(t, mem.internal[0x01fd]&0x10 == 0x10, true)

	res = step(t, mc) // RTI
	rtest.EquateRegisters(t, mc.PC, 0x0003)
	rtest.EquateRegisters(t, mc.SP, 255)
	test.Equate(t, res.Cycles, 6)
	test.Equate(t, mc.Status.InterruptDisable, false)
}

func TestIRQ(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, mc.Reset())

	mc.Vectors.IRQ = 0x0f00
	mem.putInstructions(0x0f00, 0x00, 0x02)
	mem.putInstructions(0x0200, 0x40) // RTI in the handler

	// CLI; NOP
	mem.putInstructions(0x0000, 0x58, 0xea)
	step(t, mc)
	mc.Status.Break = false

	test.ExpectedSuccess(t, mc.Raise(cpu.IRQ))
	test.ExpectedSuccess(t, mc.ExecuteInstruction(cpu.NilCycleCallback))

	// seven cycle service sequence: push PC and status, jump through vector
	rtest.EquateRegisters(t, mc.PC, 0x0200)
	test.Equate(t, mc.LastResult.Cycles, 7)
	test.Equate(t, mc.Interrupted, true)
	test.Equate(t, mc.Status.InterruptDisable, true)

	// unlike BRK, a hardware interrupt pushes the status byte with the break
	// bit clear
	rtest.EquateRegisters(t, mc.SP, 252)
	mem.assert(t, 0x01ff, 0x00)
	mem.assert(t, 0x01fe, 0x01)
	test.Equate(t, mem.internal[0x01fd]&0x10 == 0x00, true)

	step(t, mc) // RTI
	rtest.EquateRegisters(t, mc.PC, 0x0001)
	test.Equate(t, mc.Status.InterruptDisable, false)
	step(t, mc) // NOP
	rtest.EquateRegisters(t, mc.PC, 0x0002)
}

func TestIRQMasked(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, mc.Reset())

	mc.Vectors.IRQ = 0x0f00
	mem.putInstructions(0x0f00, 0x00, 0x02)

	// NOP; CLI
	mem.putInstructions(0x0000, 0xea, 0x58)

	// the interrupt disable flag is set after reset. a raised IRQ is not
	// serviced but stays latched
	test.ExpectedSuccess(t, mc.Raise(cpu.IRQ))
	res := step(t, mc) // NOP runs normally
	test.Equate(t, res.Defn.Operator == instructions.Nop, true)
	rtest.EquateRegisters(t, mc.PC, 0x0001)

	step(t, mc) // CLI

	// the latched IRQ is serviced at the next instruction boundary
	test.ExpectedSuccess(t, mc.ExecuteInstruction(cpu.NilCycleCallback))
	rtest.EquateRegisters(t, mc.PC, 0x0200)
}

func TestNMI(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, mc.Reset())

	mc.Vectors.NMI = 0x0f04
	mc.Vectors.IRQ = 0x0f00
	mem.putInstructions(0x0f00, 0x00, 0x02)
	mem.putInstructions(0x0f04, 0x00, 0x03)
	mem.putInstructions(0x0300, 0x58) // CLI in the NMI handler

	// NMI is not maskable: the interrupt disable flag is still set from reset
	test.ExpectedSuccess(t, mc.Raise(cpu.NMI))
	test.ExpectedSuccess(t, mc.Raise(cpu.IRQ))

	// NMI takes priority over the IRQ raised at the same time
	test.ExpectedSuccess(t, mc.ExecuteInstruction(cpu.NilCycleCallback))
	rtest.EquateRegisters(t, mc.PC, 0x0300)

	// the IRQ is still latched. it is serviced once the handler clears the
	// interrupt disable flag
	step(t, mc) // CLI
	test.ExpectedSuccess(t, mc.ExecuteInstruction(cpu.NilCycleCallback))
	rtest.EquateRegisters(t, mc.PC, 0x0200)
}

func TestKIL(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, mc.Reset())

	mem.putInstructions(0x0000, 0x02)
	step(t, mc)
	test.Equate(t, mc.Killed, true)

	// a killed CPU does nothing until the next reset
	test.ExpectedSuccess(t, mc.ExecuteInstruction(cpu.NilCycleCallback))
	rtest.EquateRegisters(t, mc.PC, 0x0001)

	test.ExpectedSuccess(t, mc.Reset())
	test.Equate(t, mc.Killed, false)
}

func TestTrapUndocumented(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, mc.Reset())

	// NOP zeroPage (undocumented)
	mem.putInstructions(0x0000, 0x04, 0x00)

	mc.TrapUndocumented = true
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	test.ExpectedFailure(t, err)
	test.Equate(t, errors.Is(err, cpu.UndocumentedInstruction), true)
	test.Equate(t, mc.LastResult.Final, true)

	// without the trap the instruction is emulated
	mc.TrapUndocumented = false
	test.ExpectedSuccess(t, mc.Reset())
	res := step(t, mc)
	test.Equate(t, res.Defn.Undocumented, true)
	test.Equate(t, res.Defn.Operator == instructions.NOP, true)
}

func TestModels(t *testing.T) {
	// the 6507 has no interrupt pins
	mc := cpu.NewCPUModel(instructions.MOS6507, newMockMem())
	test.ExpectedSuccess(t, mc.Reset())
	test.ExpectedFailure(t, mc.Raise(cpu.IRQ))
	test.ExpectedFailure(t, mc.Raise(cpu.NMI))
	test.Equate(t, mc.Model() == instructions.MOS6507, true)

	// the Ricoh has both pins
	mc = cpu.NewCPUModel(instructions.Ricoh2A03, newMockMem())
	test.ExpectedSuccess(t, mc.Reset())
	test.ExpectedSuccess(t, mc.Raise(cpu.IRQ))
	test.ExpectedSuccess(t, mc.Raise(cpu.NMI))

	// opcode 0x80 decodes to BRA on the 65C02 rather than the undocumented
	// immediate NOP
	mem := newMockMem()
	mc = cpu.NewCPUModel(instructions.WDC65C02Min, mem)
	test.ExpectedSuccess(t, mc.Reset())
	mem.putInstructions(0x0000, 0x80, 0x02, 0xea, 0xea, 0xea)
	res := step(t, mc)
	test.Equate(t, res.Defn.Operator == instructions.Bra, true)
	test.Equate(t, res.Cycles, 3)
	rtest.EquateRegisters(t, mc.PC, 0x0004)

	mem = newMockMem()
	mc = cpu.NewCPU(mem)
	test.ExpectedSuccess(t, mc.Reset())
	mem.putInstructions(0x0000, 0x80, 0x02)
	res = step(t, mc)
	test.Equate(t, res.Defn.Operator == instructions.NOP, true)
	test.Equate(t, res.Defn.Undocumented, true)
	rtest.EquateRegisters(t, mc.PC, 0x0002)
}

func TestStateExportImport(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, mc.Reset())

	// LDX immediate; LDA immediate; INX; INX
	mem.putInstructions(0x0000, 0xa2, 0x05, 0xa9, 0x80, 0xe8, 0xe8)
	step(t, mc)
	step(t, mc)

	s := mc.ExportState()
	test.Equate(t, s.PC, 0x0004)
	test.Equate(t, s.A, 0x80)
	test.Equate(t, s.X, 0x05)

	// keep running and then restore the snapshot
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.X, 7)

	test.ExpectedSuccess(t, mc.ImportState(s))
	rtest.EquateRegisters(t, mc.X, 5)
	rtest.EquateRegisters(t, mc.PC, 0x0004)
	test.Equate(t, mc.ExportState() == s, true)

	// execution resumes from the imported state
	step(t, mc)
	rtest.EquateRegisters(t, mc.X, 6)
}

func TestAdvisoryAddressError(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, mc.Reset())

	// LDA absolute from the unreadable top page. the access fault is
	// advisory: execution completes with a zero value and the error is
	// recorded in the result
	mem.putInstructions(0x0000, 0xad, 0x80, 0xff)
	res := step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0)
	test.Equate(t, res.Error == "", false)
}

// every instruction must leave the flags outside of its update profile
// untouched. run every opcode from an all-clear and an all-set status
// register and compare.
func TestFlagUpdateProfiles(t *testing.T) {
	for op := 0; op < 256; op++ {
		defn := instructions.Definitions[op]

		// KIL never completes; interrupt and subroutine instructions
		// manipulate the stack and program counter in ways that are tested
		// separately
		if defn.Operator == instructions.KIL {
			continue
		}
		if defn.Effect == instructions.Interrupt || defn.Effect == instructions.Subroutine {
			continue
		}

		for _, init := range []uint8{0x00, 0xff} {
			mem := newMockMem()
			mc := cpu.NewCPU(mem)
			if err := mc.Reset(); err != nil {
				t.Fatal(err)
			}

			mem.putInstructions(0x0200, uint8(op), 0x00, 0x00)
			if err := mc.LoadPC(0x0200); err != nil {
				t.Fatal(err)
			}

			mc.Status.FromValue(init)
			before := mc.Status.Value()

			if err := mc.ExecuteInstruction(cpu.NilCycleCallback); err != nil {
				t.Fatalf("%s: %s", defn.String(), err)
			}
			if err := mc.LastResult.IsValid(); err != nil {
				t.Fatalf("%s: %s", defn.String(), err)
			}

			changed := before ^ mc.Status.Value()
			if changed&^uint8(defn.Updates) != 0 {
				t.Errorf("%s: flags changed outside of update profile (%#02x)", defn.String(), changed&^uint8(defn.Updates))
			}
		}
	}
}
