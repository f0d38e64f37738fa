// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package columns fixes the layout of the arithmetic trace: one boolean
// selector column per operator, followed by shared limb registers which the
// encoding gadgets write their operand, output and auxiliary limbs into.  The
// layout is a compile-time table; nothing in it changes after process start.
package columns

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Selector columns.  Exactly one of these is set (to the field's one) on any
// given row, and it decides which operator's constraints apply to that row.
const (
	IsAdd uint = iota
	IsMul
	IsSub
	IsDiv
	IsMod
	IsLt
	IsGt
	IsShl
	IsShr
	IsAddMod
	IsMulMod
	IsSubMod

	// NumSelectors is the number of selector columns, which also marks where
	// the shared register columns begin.
	NumSelectors
)

// Operands are decomposed into 16-bit limbs, so a 32-bit machine word
// occupies two consecutive columns (least-significant limb first).
const (
	LimbBits = 16
	NLimbs   = 2
)

// Register identifies the half-open column range [Start, End) backing one
// limb-decomposed value.
type Register struct {
	Start uint
	End   uint
}

// Width returns the number of columns spanned by this register.
func (r Register) Width() uint {
	return r.End - r.Start
}

// Shared general-purpose registers, laid out directly after the selectors.
// Each gadget interprets them for its own operator: for example the
// division gadget reads the dividend from InputRegister0 and places the
// remainder in AuxRegister0, spilling further witness limbs onto the next
// row at the same indices.
var (
	InputRegister0 = register(0)
	InputRegister1 = register(1)
	InputRegister2 = register(2)
	OutputRegister = register(3)
	AuxRegister0   = register(4)
	AuxRegister1   = register(5)
)

// NumArithColumns is the total width of one arithmetic trace row.
const NumArithColumns = NumSelectors + 6*NLimbs

func register(n uint) Register {
	start := NumSelectors + n*NLimbs
	//
	return Register{start, start + NLimbs}
}

// Registers returns the shared registers in layout order.
func Registers() []Register {
	return []Register{
		InputRegister0, InputRegister1, InputRegister2,
		OutputRegister, AuxRegister0, AuxRegister1,
	}
}

// A broken layout must fail at startup rather than let two gadgets (or a
// gadget and a selector) silently write the same column.
func init() {
	occupied := bitset.New(NumArithColumns)
	//
	mark := func(col uint) {
		if col >= NumArithColumns {
			panic(fmt.Sprintf("column %d lies outside the %d-column row", col, NumArithColumns))
		} else if occupied.Test(col) {
			panic(fmt.Sprintf("column %d allocated twice", col))
		}
		//
		occupied.Set(col)
	}
	//
	for sel := IsAdd; sel < NumSelectors; sel++ {
		mark(sel)
	}
	//
	for _, reg := range Registers() {
		for col := reg.Start; col < reg.End; col++ {
			mark(col)
		}
	}
	// Every column must have exactly one owner.
	if occupied.Count() != NumArithColumns {
		panic(fmt.Sprintf("layout covers %d of %d columns", occupied.Count(), NumArithColumns))
	}
}
