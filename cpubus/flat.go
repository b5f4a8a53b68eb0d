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

package cpubus

// Flat is the simplest possible Memory implementation: 64K of RAM with no
// mapping and no unreadable areas. Useful for tests and for machines that
// genuinely have nothing on the bus but memory.
type Flat struct {
	data [0x10000]uint8
}

// NewFlat is the preferred method of initialisation for the Flat type.
func NewFlat() *Flat {
	return &Flat{}
}

// Read implements the Memory interface.
func (mem *Flat) Read(address uint16) (uint8, error) {
	return mem.data[address], nil
}

// Write implements the Memory interface.
func (mem *Flat) Write(address uint16, data uint8) error {
	mem.data[address] = data
	return nil
}

// Peek returns the byte at address without any of the consequences of a bus
// read. For Flat the two are the same but the distinction matters to
// debugging interfaces (eg. cpu.PredictRTS).
func (mem *Flat) Peek(address uint16) (uint8, error) {
	return mem.data[address], nil
}

// Put copies bytes into memory starting at origin. Returns the address
// immediately after the last byte written. Convenient for seeding programs.
func (mem *Flat) Put(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.data[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}
