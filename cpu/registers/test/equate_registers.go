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

// Package test contains test helpers that understand the register types.
package test

import (
	"reflect"
	"testing"

	"github.com/hollyburn/m6502/cpu/registers"
)

// EquateRegisters is used to test equality between a register and an
// expected value. Registers compare against int; the status register also
// compares against the flag string produced by its String() function (eg.
// "Sv-BdIzc").
func EquateRegisters(t *testing.T, r, x interface{}) {
	t.Helper()

	switch r := r.(type) {
	default:
		t.Errorf("EquateRegisters failed (unsupported register type [%s])", reflect.TypeOf(r))

	case registers.Register:
		switch x := x.(type) {
		default:
			t.Errorf("EquateRegisters failed (unsupported value type [%s])", reflect.TypeOf(x))

		case int:
			if int(r.Value()) != x {
				t.Errorf("EquateRegisters failed for %s (%#02x - wanted %#02x)", r.Label(), r.Value(), x)
			}
		}

	case registers.StackPointer:
		switch x := x.(type) {
		default:
			t.Errorf("EquateRegisters failed (unsupported value type [%s])", reflect.TypeOf(x))

		case int:
			if int(r.Value()) != x {
				t.Errorf("EquateRegisters failed for SP (%#02x - wanted %#02x)", r.Value(), x)
			}
		}

	case registers.ProgramCounter:
		switch x := x.(type) {
		default:
			t.Errorf("EquateRegisters failed (unsupported value type [%s])", reflect.TypeOf(x))

		case int:
			if int(r.Address()) != x {
				t.Errorf("EquateRegisters failed for PC (%#04x - wanted %#04x)", r.Address(), x)
			}
		}

	case registers.StatusRegister:
		switch x := x.(type) {
		default:
			t.Errorf("EquateRegisters failed (unsupported value type [%s])", reflect.TypeOf(x))

		case int:
			if int(r.Value()) != x {
				t.Errorf("EquateRegisters failed for SR (%#02x - wanted %#02x)", r.Value(), x)
			}

		case string:
			if r.String() != x {
				t.Errorf("EquateRegisters failed for SR (%s - wanted %s)", r.String(), x)
			}
		}
	}
}
