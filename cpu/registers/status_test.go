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

package registers_test

import (
	"testing"

	"github.com/hollyburn/m6502/cpu/registers"
	rtest "github.com/hollyburn/m6502/cpu/registers/test"
	"github.com/hollyburn/m6502/test"
)

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	rtest.EquateRegisters(t, sr, "sv-bdizc")

	// the unused bit reads as 1 even when every flag is clear
	test.Equate(t, sr.Value(), 0x20)

	// the packed byte view and the flag fields are the same value
	sr.Sign = true
	sr.Carry = true
	test.Equate(t, sr.Value(), 0xa1)
	rtest.EquateRegisters(t, sr, "Sv-bdizC")

	// round-trip through the byte view preserves every flag
	var o registers.StatusRegister
	o.FromValue(sr.Value())
	test.Equate(t, o.Value(), sr.Value())

	// all bits set, bar bit 5 which has no storage
	sr.FromValue(0xff)
	rtest.EquateRegisters(t, sr, "SV-BDIZC")
	test.Equate(t, sr.Value(), 0xff)

	sr.Reset()
	rtest.EquateRegisters(t, sr, "sv-bdizc")
}
