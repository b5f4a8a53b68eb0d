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

package execution

// The NMOS 6502 has some known bugs which can catch people out. The CPUBug
// field of the Result type records which one, if any, was triggered during
// execution.
const (
	NoBug                        = ""
	JmpIndirectAddressingBug     = "indirect addressing bug"
	IndexedIndirectAddressingBug = "indexed indirect addressing bug"
	ZeroPageIndexBug             = "zero page index bug"
)
