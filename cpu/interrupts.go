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

import (
	"fmt"
	"sync/atomic"
)

// Interrupt identifies one of the two interrupt pins on the CPU package.
type Interrupt int

// List of interrupt pins.
const (
	IRQ Interrupt = iota
	NMI
)

func (irq Interrupt) String() string {
	switch irq {
	case IRQ:
		return "IRQ"
	case NMI:
		return "NMI"
	}
	return "unknown interrupt"
}

// Raise latches an interrupt request. It is safe to call from a goroutine
// other than the one running ExecuteInstruction(); the request is serviced
// at the next instruction boundary.
//
// A latched IRQ is held until the interrupt disable flag allows it to be
// serviced. An NMI is always serviced at the next boundary. Raising an
// interrupt on a model without the corresponding pin is an error.
func (mc *CPU) Raise(irq Interrupt) error {
	switch irq {
	case IRQ:
		if !mc.model.HasIRQ {
			return fmt.Errorf("cpu: %s has no IRQ pin", mc.model)
		}
		atomic.StoreInt32(&mc.pendingIRQ, 1)
	case NMI:
		if !mc.model.HasNMI {
			return fmt.Errorf("cpu: %s has no NMI pin", mc.model)
		}
		atomic.StoreInt32(&mc.pendingNMI, 1)
	default:
		return fmt.Errorf("cpu: unknown interrupt (%d)", irq)
	}
	return nil
}

// ackNMI consumes a pending NMI. returns true if one was pending.
func (mc *CPU) ackNMI() bool {
	return atomic.CompareAndSwapInt32(&mc.pendingNMI, 1, 0)
}

// ackIRQ consumes a pending IRQ. returns true if one was pending.
func (mc *CPU) ackIRQ() bool {
	return atomic.CompareAndSwapInt32(&mc.pendingIRQ, 1, 0)
}

// serviceInterrupt runs the seven cycle interrupt sequence: push PC and
// status, disable interrupts and jump through the vector. the status byte is
// pushed with the break bit clear, distinguishing a hardware interrupt from
// BRK.
//
// the cycleCallback field must be valid before calling.
func (mc *CPU) serviceInterrupt(vector uint16) error {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// two dead cycles while the interrupt sequence takes over the opcode
	// fetch
	// +2 cycles
	for i := 0; i < 2; i++ {
		_, err := mc.read8Bit(mc.PC.Address(), true)
		if err != nil {
			return err
		}
	}

	// push MSB of PC onto stack, and decrement SP
	// +1 cycle
	err := mc.write8Bit(mc.SP.Address(), uint8(mc.PC.Address()>>8), false)
	if err != nil {
		return err
	}
	mc.SP.Add(0xff, false)
	mc.LastResult.Cycles++
	err = mc.cycleCallback()
	if err != nil {
		return err
	}

	// push LSB of PC onto stack, and decrement SP
	// +1 cycle
	err = mc.write8Bit(mc.SP.Address(), uint8(mc.PC.Address()), false)
	if err != nil {
		return err
	}
	mc.SP.Add(0xff, false)
	mc.LastResult.Cycles++
	err = mc.cycleCallback()
	if err != nil {
		return err
	}

	// push status register with the break bit clear
	// +1 cycle
	err = mc.write8Bit(mc.SP.Address(), mc.Status.Value()&^0x10, false)
	if err != nil {
		return err
	}
	mc.SP.Add(0xff, false)
	mc.LastResult.Cycles++
	err = mc.cycleCallback()
	if err != nil {
		return err
	}

	mc.Status.InterruptDisable = true

	// +2 cycles
	address, err := mc.read16Bit(vector)
	if err != nil {
		return err
	}
	if !mc.NoFlowControl {
		mc.PC.Load(address)
	}

	// the interrupt sequence is not an instruction. mark the CPU as
	// interrupted so the next call to ExecuteInstruction() is not treated
	// as a mid-instruction restart
	mc.Interrupted = true

	return nil
}
