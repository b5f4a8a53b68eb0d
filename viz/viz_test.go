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

package viz_test

import (
	"strings"
	"testing"

	"github.com/hollyburn/m6502/cpu"
	"github.com/hollyburn/m6502/cpubus"
	"github.com/hollyburn/m6502/test"
	"github.com/hollyburn/m6502/viz"
)

func TestWriteCPU(t *testing.T) {
	mem := cpubus.NewFlat()
	mc := cpu.NewCPU(mem)
	test.ExpectedSuccess(t, mc.Reset())

	s := &strings.Builder{}
	viz.WriteCPU(s, mc)

	if !strings.HasPrefix(s.String(), "digraph") {
		t.Errorf("expected dot output to begin with digraph")
	}
}
