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

package instructions

// Model describes the differences between members of the 6502 family. The
// instruction table is the same for every model except where noted by the
// fields below.
type Model struct {
	Name string

	// the Ricoh 2A03, as found in the NES, has no decimal mode. the D flag
	// can be set and cleared as normal but has no effect on ADC and SBC
	HasBCD bool

	// the 6507 package does not expose the IRQ and NMI pins
	HasIRQ bool
	HasNMI bool

	// later members of the family have an unconditional branch instruction
	// in place of the undocumented NOP at $80
	HasBRA bool
}

func (m Model) String() string {
	return m.Name
}

// The supported models.
var (
	MOS6502 = Model{
		Name:   "MOS6502",
		HasBCD: true,
		HasIRQ: true,
		HasNMI: true,
	}

	MOS6507 = Model{
		Name:   "MOS6507",
		HasBCD: true,
	}

	Ricoh2A03 = Model{
		Name:   "Ricoh2A03",
		HasIRQ: true,
		HasNMI: true,
	}

	// WDC65C02Min is not a full 65C02: of the additional instructions in
	// that device only BRA is decoded. It is useful for running the many ROM
	// images that rely on nothing from the 65C02 but the unconditional
	// branch.
	WDC65C02Min = Model{
		Name:   "WDC65C02Min",
		HasBCD: true,
		HasIRQ: true,
		HasNMI: true,
		HasBRA: true,
	}
)
