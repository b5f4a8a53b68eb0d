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

package cpu

import "fmt"

// State is a snapshot of the CPU registers, suitable for serialisation. The
// status register is stored in its packed byte form.
type State struct {
	PC     uint16 `json:"pc"`
	A      uint8  `json:"a"`
	X      uint8  `json:"x"`
	Y      uint8  `json:"y"`
	SP     uint8  `json:"sp"`
	Status uint8  `json:"status"`
	Killed bool   `json:"killed,omitempty"`
}

func (s State) String() string {
	return fmt.Sprintf("PC=%04x A=%02x X=%02x Y=%02x SP=%02x SR=%02x", s.PC, s.A, s.X, s.Y, s.SP, s.Status)
}

// ExportState returns a snapshot of the current register state.
func (mc *CPU) ExportState() State {
	return State{
		PC:     mc.PC.Address(),
		A:      mc.A.Value(),
		X:      mc.X.Value(),
		Y:      mc.Y.Value(),
		SP:     mc.SP.Value(),
		Status: mc.Status.Value(),
		Killed: mc.Killed,
	}
}

// ImportState loads a previously exported register state into the CPU. It is
// an error to import state part-way through an instruction.
func (mc *CPU) ImportState(s State) error {
	if !mc.LastResult.Final && !mc.Interrupted {
		return fmt.Errorf("cpu: import state invalid mid-instruction")
	}

	mc.PC.Load(s.PC)
	mc.A.Load(s.A)
	mc.X.Load(s.X)
	mc.Y.Load(s.Y)
	mc.SP.Load(s.SP)
	mc.Status.FromValue(s.Status)
	mc.Killed = s.Killed

	// an imported state is as good as a reset
	mc.hasReset = true
	mc.LastResult.Reset()
	mc.Interrupted = true

	return nil
}
