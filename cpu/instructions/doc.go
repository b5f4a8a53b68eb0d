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

// Package instructions defines the table of instruction definitions for the
// 6502 family. The Definitions array is indexed by opcode and has an entry
// for every one of the 256 possible opcodes, including the undocumented
// instructions of the NMOS 6502.
//
// Undocumented instructions are identified by the Undocumented field of the
// Definition. By convention, operators for undocumented instructions print in
// lowercase while documented operators print in uppercase.
//
// The Model type describes the variations between members of the CPU family.
// The table itself is the same for every model; it is the execution package
// and the CPU implementation that consult the Model for differences in
// behaviour.
package instructions
