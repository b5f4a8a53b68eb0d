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

package instructions

import "strings"

// Flags is a bit mask of status register flags. The bit positions correspond
// to the bit positions in the packed status register byte.
type Flags uint8

// List of individual flags. Bit 5 of the status register has no storage and
// so has no Flags value.
const (
	FlagC Flags = 1 << 0
	FlagZ Flags = 1 << 1
	FlagI Flags = 1 << 2
	FlagD Flags = 1 << 3
	FlagB Flags = 1 << 4
	FlagV Flags = 1 << 6
	FlagN Flags = 1 << 7
)

// FlagsAll is the union of every stored flag.
const FlagsAll = FlagC | FlagZ | FlagI | FlagD | FlagB | FlagV | FlagN

// FlagsNone is the empty flag set.
const FlagsNone = Flags(0)

func (f Flags) String() string {
	if f == FlagsNone {
		return "none"
	}

	s := strings.Builder{}
	if f&FlagN == FlagN {
		s.WriteRune('N')
	}
	if f&FlagV == FlagV {
		s.WriteRune('V')
	}
	if f&FlagB == FlagB {
		s.WriteRune('B')
	}
	if f&FlagD == FlagD {
		s.WriteRune('D')
	}
	if f&FlagI == FlagI {
		s.WriteRune('I')
	}
	if f&FlagZ == FlagZ {
		s.WriteRune('Z')
	}
	if f&FlagC == FlagC {
		s.WriteRune('C')
	}
	return s.String()
}
