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

// Package registers implements the register types of the 6502: the 8 bit
// accumulator type used for A, X and Y; the stack pointer; the 16 bit
// program counter; and the status register.
//
// The Register type defines all the basic operations the ALU can perform on
// an 8 bit value: load, add, subtract, logical operations, shifts and
// rotates. In addition it implements the tests required for status updates:
// is the value zero, is the value negative, is the overflow bit set.
//
// The status register is implemented as a series of named flags. Setting of
// flags is done directly. For instance, in the CPU, we might have this
// sequence of function calls:
//
//	a.Load(10)
//	a.Subtract(11, false)
//	sr.Zero = a.IsZero()
//
// The packed byte view required by PHP, PLP and interrupt entry is available
// through the Value() and FromValue() functions. The two views are the same
// value; there is no second copy of the flags to fall out of sync.
package registers
