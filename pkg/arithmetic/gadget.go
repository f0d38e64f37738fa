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

import "github.com/sukrucildirr/zkm/pkg/util/field"

// The encoding gadgets.  Each one owns a set of columns (registers from the
// columns package) and fills them from native operands so that the polynomial
// constraints guarded by the row's selector are satisfiable.  A gadget only
// ever writes columns it owns; it must not read or rely on columns written by
// anything else.  Gadgets receive pre-validated 32-bit operands and have no
// failure path: every edge case the operator semantics define (zero
// divisors, wrapped sums, oversized shifts) must still produce a satisfiable
// encoding.  A gadget shared through a Translator may see Generate called
// from many goroutines at once (each call with its own row buffers), so
// implementations must be safe under concurrent invocation.

// AddCyGadget encodes addition, subtraction and the two comparisons via a
// single carry/borrow chain.  The filter tells it which of the four
// operators' column interpretation to use.
type AddCyGadget[F field.Element[F]] interface {
	Generate(row []F, filter uint, input0, input1 uint32)
}

// MulGadget encodes schoolbook multiplication of the two operands' limbs,
// including the carries needed to justify the 32-bit truncated product.
type MulGadget[F field.Element[F]] interface {
	Generate(row []F, input0, input1 uint32)
}

// DivModGadget encodes long division across two adjacent rows.  Whatever the
// operands, the encoded quotient and remainder must satisfy
//
//	input0 == input1*quotient + remainder
//
// which forces quotient = remainder = 0 when input1 = 0 and result = 0, so
// the gadget has to special-case the zero divisor rather than fault on it.
type DivModGadget[F field.Element[F]] interface {
	Generate(row []F, nextRow []F, filter uint, input0, input1, result uint32)
}

// ShiftGadget encodes a shift as a multiplication (isLeft) or division
// (!isLeft) by a power of two.  The caller has already replaced the shift
// amount with that power of two (see Binary).  Only the division form spills
// witness limbs onto the next row; for a left shift nextRow is scratch space
// the translator discards.
type ShiftGadget[F field.Element[F]] interface {
	Generate(row []F, nextRow []F, isLeft bool, input0, input1, result uint32)
}

// ModularGadget encodes the three modular ternary operators across two
// adjacent rows, reducing the exact integer sum, difference or product of
// the first two operands modulo the third.
type ModularGadget[F field.Element[F]] interface {
	Generate(row []F, nextRow []F, filter uint, input0, input1, input2 uint32)
}
