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

// Package cpu emulates the 6502 family of microprocessors. The principal
// type is CPU and its ExecuteInstruction() function.
//
// The CPU sub-packages, registers, instructions and execution, complete the
// emulation: registers implements the register logic, instructions defines
// the instruction table, and execution records the result of each executed
// instruction.
//
// The emulation is cycle-attributed. ExecuteInstruction() takes a callback
// function which is run after every consumed cycle, allowing the memory bus
// and any other attached hardware to be stepped in lock-step with the CPU.
// When no per-cycle work is required the NilCycleCallback() function can be
// used, or the Step() function which wraps it.
//
// The CPU must be Reset() before the first instruction is executed. Reset
// puts the registers into the documented power-on state and loads the PC
// from the reset vector.
package cpu
