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

// Package cpubus defines the memory capability consumed by the CPU. The CPU
// does not own any memory; the bus, mapping and mirroring are the concern of
// whatever implements the Memory interface.
package cpubus

import "errors"

// Memory defines the operations required of the address space when accessed
// from the CPU. The full 16bit address space must be accepted; whether an
// address is meaningful is the implementation's concern.
//
// Addresses should be mapped to their primary mirror in all cases.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// AddressError is the sentinel for advisory address faults. Memory
// implementations that want to complain about an access without halting the
// CPU should return an error that wraps AddressError. The CPU records such
// faults in the instruction trace and carries on; any other error is treated
// as fatal for the instruction.
var AddressError = errors.New("address error")

// The conventional vector locations at the top of the address space.
const (
	NMI   uint16 = 0xfffa
	Reset uint16 = 0xfffc
	IRQ   uint16 = 0xfffe

	// BRK shares the IRQ vector. the pushed status register (the B bit)
	// distinguishes the two paths
	BRK uint16 = IRQ
)

// VectorTable gathers the locations the CPU jumps through on reset,
// interrupt and break. The addresses are configuration, not constants; a
// host machine with an unusual memory map can move them.
type VectorTable struct {
	NMI   uint16
	Reset uint16
	IRQ   uint16
	BRK   uint16
}

// DefaultVectors returns the conventional vector table.
func DefaultVectors() VectorTable {
	return VectorTable{
		NMI:   NMI,
		Reset: Reset,
		IRQ:   IRQ,
		BRK:   BRK,
	}
}
