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

import (
	"fmt"
	"strings"

	"github.com/hollyburn/m6502/cpu/instructions"
)

// Result records the state of the CPU after execution of an instruction. The
// Result of the most recent instruction can be found in the LastResult field
// of the CPU type.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition. a nil value means the
	// opcode has not yet been decoded
	Defn *instructions.Definition

	// the data read as part of the instruction's operand. the number of
	// bytes actually read depends on the instruction; unread bytes are zero
	InstructionData uint16

	// the actual number of bytes read and cycles consumed during execution.
	// if Final is false then these are the values read/consumed so far
	ByteCount int
	Cycles    int

	// whether an extra cycle was incurred because of 8 bit adder overflow
	PageFault bool

	// whether a branch instruction took the branch
	BranchSuccess bool

	// whether a buggy CPU code path (eg. JMP indirect on a page boundary)
	// was triggered
	CPUBug string

	// error string. the memory bus can return advisory errors; they are
	// recorded here rather than halting execution
	Error string

	// whether this data has been finalised. data that has not been
	// finalised was triggered part-way through execution, by a
	// mid-instruction reset for example
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.InstructionData = 0
	r.ByteCount = 0
	r.Cycles = 0
	r.PageFault = false
	r.BranchSuccess = false
	r.CPUBug = ""
	r.Error = ""
	r.Final = false
}

// String returns a disassembly-like rendering of the result:
//
//	0xf000 LDA #$0f [2]
func (r Result) String() string {
	if r.Defn == nil {
		return "undecoded instruction"
	}

	var data string

	switch r.Defn.Bytes {
	case 2:
		data = fmt.Sprintf("$%02x", r.InstructionData)
	case 3:
		data = fmt.Sprintf("$%04x", r.InstructionData)
	}

	switch r.Defn.AddressingMode {
	case instructions.Implied:
	case instructions.Immediate:
		data = fmt.Sprintf("#%s", data)
	case instructions.Relative:
	case instructions.Absolute:
	case instructions.ZeroPage:
	case instructions.Indirect:
		data = fmt.Sprintf("(%s)", data)
	case instructions.IndexedIndirect:
		data = fmt.Sprintf("(%s,X)", data)
	case instructions.IndirectIndexed:
		data = fmt.Sprintf("(%s),Y", data)
	case instructions.AbsoluteIndexedX:
		data = fmt.Sprintf("%s,X", data)
	case instructions.AbsoluteIndexedY:
		data = fmt.Sprintf("%s,Y", data)
	case instructions.ZeroPageIndexedX:
		data = fmt.Sprintf("%s,X", data)
	case instructions.ZeroPageIndexedY:
		data = fmt.Sprintf("%s,Y", data)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("0x%04x %s", r.Address, r.Defn.Operator))
	if data != "" {
		s.WriteString(fmt.Sprintf(" %s", data))
	}
	if r.Final {
		s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))
	} else {
		s.WriteString(" [v]")
	}
	if r.PageFault {
		s.WriteString(" page-fault")
	}
	if r.CPUBug != "" {
		s.WriteString(fmt.Sprintf(" * %s *", r.CPUBug))
	}
	return s.String()
}
