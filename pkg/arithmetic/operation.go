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

// Package arithmetic translates concrete arithmetic instructions into rows of
// the arithmetic co-processor trace.  Each operation is handled in isolation:
// its native 32-bit result is fixed at construction time, and a translator
// then routes the operands and result into the encoding gadget responsible
// for that operator's trace columns.
package arithmetic

import (
	"fmt"

	"github.com/sukrucildirr/zkm/pkg/arithmetic/columns"
)

// BinaryOperator enumerates the two-operand arithmetic operations supported
// by the co-processor.
type BinaryOperator int

// Binary operators.  Shl and Shr have no gadget of their own: they are
// simulated with Mul and Div respectively.
const (
	Add BinaryOperator = iota
	Mul
	Sub
	Div
	Mod
	Lt
	Gt
	Shl
	Shr
)

// Result computes the native 32-bit result of applying this operator to the
// given operands.  The function is total: Add, Mul and Sub wrap silently at
// 32 bits, Div and Mod return 0 on a zero divisor, and shift amounts of 32
// or more yield 0.  For Shl and Shr the first operand is the shift amount
// and the second the shifted value.
func (op BinaryOperator) Result(input0, input1 uint32) uint32 {
	switch op {
	case Add:
		return input0 + input1
	case Mul:
		return input0 * input1
	case Sub:
		return input0 - input1
	case Div:
		if input1 == 0 {
			return 0
		}
		//
		return input0 / input1
	case Mod:
		if input1 == 0 {
			return 0
		}
		//
		return input0 % input1
	case Lt:
		if input0 < input1 {
			return 1
		}
		//
		return 0
	case Gt:
		if input0 > input1 {
			return 1
		}
		//
		return 0
	case Shl:
		if input0 < 32 {
			return input1 << input0
		}
		//
		return 0
	case Shr:
		if input0 < 32 {
			return input1 >> input0
		}
		//
		return 0
	default:
		panic(fmt.Sprintf("unknown binary operator %d", op))
	}
}

// RowFilter returns the index of the selector column associated with this
// operator.
func (op BinaryOperator) RowFilter() uint {
	switch op {
	case Add:
		return columns.IsAdd
	case Mul:
		return columns.IsMul
	case Sub:
		return columns.IsSub
	case Div:
		return columns.IsDiv
	case Mod:
		return columns.IsMod
	case Lt:
		return columns.IsLt
	case Gt:
		return columns.IsGt
	case Shl:
		return columns.IsShl
	case Shr:
		return columns.IsShr
	default:
		panic(fmt.Sprintf("unknown binary operator %d", op))
	}
}

func (op BinaryOperator) String() string {
	switch op {
	case Add:
		return "add"
	case Mul:
		return "mul"
	case Sub:
		return "sub"
	case Div:
		return "div"
	case Mod:
		return "mod"
	case Lt:
		return "lt"
	case Gt:
		return "gt"
	case Shl:
		return "shl"
	case Shr:
		return "shr"
	default:
		panic(fmt.Sprintf("unknown binary operator %d", int(op)))
	}
}

// TernaryOperator enumerates the three-operand modular operations.
type TernaryOperator int

// Ternary operators.
const (
	AddMod TernaryOperator = iota
	MulMod
	SubMod
)

// Result computes the residue of the underlying operation modulo input2.
// The intermediate sum, difference or product is taken over the integers
// (64-bit arithmetic suffices for two 32-bit operands), so reduction sees the
// exact value rather than its 32-bit truncation, and SubMod yields the
// non-negative residue even when input1 > input0.  A zero modulus gives 0,
// consistent with the Div and Mod zero-divisor rule.
func (op TernaryOperator) Result(input0, input1, input2 uint32) uint32 {
	if input2 == 0 {
		return 0
	}
	//
	m := uint64(input2)
	//
	switch op {
	case AddMod:
		return uint32((uint64(input0) + uint64(input1)) % m)
	case MulMod:
		return uint32(uint64(input0) * uint64(input1) % m)
	case SubMod:
		a, b := uint64(input0)%m, uint64(input1)%m
		//
		return uint32((a + m - b) % m)
	default:
		panic(fmt.Sprintf("unknown ternary operator %d", op))
	}
}

// RowFilter returns the index of the selector column associated with this
// operator.
func (op TernaryOperator) RowFilter() uint {
	switch op {
	case AddMod:
		return columns.IsAddMod
	case MulMod:
		return columns.IsMulMod
	case SubMod:
		return columns.IsSubMod
	default:
		panic(fmt.Sprintf("unknown ternary operator %d", op))
	}
}

func (op TernaryOperator) String() string {
	switch op {
	case AddMod:
		return "addmod"
	case MulMod:
		return "mulmod"
	case SubMod:
		return "submod"
	default:
		panic(fmt.Sprintf("unknown ternary operator %d", int(op)))
	}
}

// Operation is one concrete arithmetic instruction, either binary or
// ternary, together with its native result.  The result is computed exactly
// once, inside the factory, and stored alongside the inputs: the encoding
// stage must observe the value fixed at construction time, not a
// recomputation that could diverge in a zero-handling branch.
type Operation interface {
	// Result returns the native 32-bit result embedded at construction time.
	Result() uint32
	// isOperation restricts implementations to this package, which is what
	// keeps the stored result in step with the stored operands.
	isOperation()
}

// BinaryOperation applies a BinaryOperator to two 32-bit operands.
type BinaryOperation struct {
	operator BinaryOperator
	input0   uint32
	input1   uint32
	result   uint32
}

// TernaryOperation applies a TernaryOperator to three 32-bit operands.
type TernaryOperation struct {
	operator TernaryOperator
	input0   uint32
	input1   uint32
	input2   uint32
	result   uint32
}

// Binary constructs a binary operation with the given inputs.
//
// NB: This works as you would expect, EXCEPT for Shl and Shr, whose inputs
// need a small amount of preprocessing.  Because those operators are
// simulated with the multiplication and division encodings, the caller must
// pass the already-exponentiated shift, i.e. to encode `SHL(shift, value)`
// call (note the reversal of argument order):
//
//	Binary(Shl, value, 1 << shift)
//
// and similarly `Binary(Shr, value, 1 << shift)` for `SHR(shift, value)`.
func Binary(operator BinaryOperator, input0, input1 uint32) Operation {
	result := operator.Result(input0, input1)
	//
	return BinaryOperation{operator, input0, input1, result}
}

// Ternary constructs a ternary operation with the given inputs.
func Ternary(operator TernaryOperator, input0, input1, input2 uint32) Operation {
	result := operator.Result(input0, input1, input2)
	//
	return TernaryOperation{operator, input0, input1, input2, result}
}

// Operator returns the operator tag.
func (op BinaryOperation) Operator() BinaryOperator {
	return op.operator
}

// Input0 returns the first operand.
func (op BinaryOperation) Input0() uint32 {
	return op.input0
}

// Input1 returns the second operand.
func (op BinaryOperation) Input1() uint32 {
	return op.input1
}

// Result implementation for the Operation interface.
func (op BinaryOperation) Result() uint32 {
	return op.result
}

func (op BinaryOperation) isOperation() {}

func (op BinaryOperation) String() string {
	return fmt.Sprintf("%s(%d,%d)=%d", op.operator, op.input0, op.input1, op.result)
}

// Operator returns the operator tag.
func (op TernaryOperation) Operator() TernaryOperator {
	return op.operator
}

// Input0 returns the first operand.
func (op TernaryOperation) Input0() uint32 {
	return op.input0
}

// Input1 returns the second operand.
func (op TernaryOperation) Input1() uint32 {
	return op.input1
}

// Input2 returns the modulus operand.
func (op TernaryOperation) Input2() uint32 {
	return op.input2
}

// Result implementation for the Operation interface.
func (op TernaryOperation) Result() uint32 {
	return op.result
}

func (op TernaryOperation) isOperation() {}

func (op TernaryOperation) String() string {
	return fmt.Sprintf("%s(%d,%d,%d)=%d", op.operator, op.input0, op.input1, op.input2, op.result)
}
