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
	"fmt"
	"testing"

	"github.com/hollyburn/m6502/cpu"
	"github.com/hollyburn/m6502/cpu/execution"
	"github.com/hollyburn/m6502/cpubus"
)

// mockMem is 64K of flat memory with the top page roped off. reads and
// writes to the top page return an advisory error wrapping
// cpubus.AddressError, which includes the reset vector. the CPU records the
// error and carries on with a value of zero, meaning programs conveniently
// begin at address zero.
type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	mem := new(mockMem)
	mem.internal = make([]uint8, 0x10000)
	return mem
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	if address&0xff00 == 0xff00 {
		return 0, fmt.Errorf("%w: unreadable address (%#04x)", cpubus.AddressError, address)
	}
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if address&0xff00 == 0xff00 {
		return fmt.Errorf("%w: unwritable address (%#04x)", cpubus.AddressError, address)
	}
	mem.internal[address] = data
	return nil
}

// Peek implements the adhoc interface used by cpu.PredictRTS.
func (mem *mockMem) Peek(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

// putInstructions copies the bytes directly into memory, sidestepping the
// Write function, and returns the address immediately after the sequence.
func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %#04x)", mem.internal[address], value, address)
	}
}

// step executes one instruction, failing the test on an execution error or an
// inconsistent result.
func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()

	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}

	return mc.LastResult
}
