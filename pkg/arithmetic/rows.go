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
package arithmetic

import (
	"fmt"

	"github.com/sukrucildirr/zkm/pkg/arithmetic/columns"
	"github.com/sukrucildirr/zkm/pkg/util/field"
)

// Translator converts operations into rows of the arithmetic trace.  It is a
// pure router: beyond placing the selector bit it performs no arithmetic
// itself, delegating all column encoding to the five gadgets it is
// constructed with.  A Translator holds no per-operation state, so a single
// instance may be shared by any number of goroutines provided the injected
// gadgets are themselves safe for concurrent Generate calls.
type Translator[F field.Element[F]] struct {
	AddCy   AddCyGadget[F]
	Mul     MulGadget[F]
	DivMod  DivModGadget[F]
	Shift   ShiftGadget[F]
	Modular ModularGadget[F]
}

// ToRows converts an operation into one or two rows of the trace.  Each row
// is freshly allocated and zero-filled, with the operator's selector column
// set to one and the remaining columns written by exactly one gadget.  For
// single-row operators the second return is nil; for two-row operators it
// holds continuation data and must immediately follow the first row in the
// final trace.
//
// Morally the rows are [columns.NumArithColumns]F arrays, but slices are
// what the downstream range-check transposition consumes.
func (t *Translator[F]) ToRows(op Operation) ([]F, []F) {
	switch op := op.(type) {
	case BinaryOperation:
		return t.binaryOpToRows(op)
	case TernaryOperation:
		return t.ternaryOpToRows(op)
	default:
		panic(fmt.Sprintf("unknown operation %v", op))
	}
}

func (t *Translator[F]) binaryOpToRows(op BinaryOperation) ([]F, []F) {
	row := newRow[F]()
	row[op.operator.RowFilter()] = field.One[F]()
	//
	switch op.operator {
	case Add, Sub, Lt, Gt:
		t.AddCy.Generate(row, op.operator.RowFilter(), op.input0, op.input1)
		//
		return row, nil
	case Mul:
		t.Mul.Generate(row, op.input0, op.input1)
		//
		return row, nil
	case Shl:
		nv := newRow[F]()
		t.Shift.Generate(row, nv, true, op.input0, op.input1, op.result)
		//
		return row, nil
	case Div, Mod:
		nv := newRow[F]()
		t.DivMod.Generate(row, nv, op.operator.RowFilter(), op.input0, op.input1, op.result)
		//
		return row, nv
	case Shr:
		nv := newRow[F]()
		t.Shift.Generate(row, nv, false, op.input0, op.input1, op.result)
		//
		return row, nv
	default:
		panic(fmt.Sprintf("unknown binary operator %d", op.operator))
	}
}

func (t *Translator[F]) ternaryOpToRows(op TernaryOperation) ([]F, []F) {
	row := newRow[F]()
	nv := newRow[F]()
	//
	row[op.operator.RowFilter()] = field.One[F]()
	//
	t.Modular.Generate(row, nv, op.operator.RowFilter(), op.input0, op.input1, op.input2)
	//
	return row, nv
}

// newRow allocates one zero-filled trace row.  The zero value of F is the
// field's additive identity, so a fresh slice is already a valid empty row.
func newRow[F field.Element[F]]() []F {
	return make([]F, columns.NumArithColumns)
}
