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

package viz

import (
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/hollyburn/m6502/cpu"
)

// Write a graphviz (dot) representation of the supplied structures to output.
func Write(output io.Writer, is ...interface{}) {
	memviz.Map(output, is...)
}

// WriteCPU is a convenience function. It writes a graphviz (dot)
// representation of the CPU and the result of the most recently executed
// instruction to output.
func WriteCPU(output io.Writer, mc *cpu.CPU) {
	memviz.Map(output, mc, &mc.LastResult)
}

// WriteFile writes a graphviz (dot) representation of the supplied structures
// to the named file.
func WriteFile(filename string, is ...interface{}) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	memviz.Map(f, is...)
	return nil
}
