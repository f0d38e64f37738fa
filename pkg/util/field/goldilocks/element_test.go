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
package goldilocks

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func uint64Elem(val uint64) Element {
	var elem Element
	//
	return elem.SetUint64(val)
}

func TestZeroValueIsAdditiveIdentity(t *testing.T) {
	var zero Element
	//
	assert.True(t, zero.IsZero())
	assert.True(t, uint64Elem(42).Add(zero).Equals(uint64Elem(42)))
}

func TestOne(t *testing.T) {
	one := uint64Elem(1)
	//
	assert.True(t, one.IsOne())
	assert.True(t, uint64Elem(42).Mul(one).Equals(uint64Elem(42)))
}

func TestArithmetic(t *testing.T) {
	assert.Equal(t, uint64(12), uint64Elem(5).Add(uint64Elem(7)).Uint64())
	assert.Equal(t, uint64(42), uint64Elem(6).Mul(uint64Elem(7)).Uint64())
	assert.Equal(t, uint64(3), uint64Elem(10).Sub(uint64Elem(7)).Uint64())
}

func TestUint64RoundTrip(t *testing.T) {
	for _, val := range []uint64{0, 1, 0xffff, 0xdeadbeef, 1 << 40} {
		assert.Equal(t, val, uint64Elem(val).Uint64())
	}
}

func TestCmp(t *testing.T) {
	assert.Equal(t, -1, uint64Elem(3).Cmp(uint64Elem(5)))
	assert.Equal(t, 0, uint64Elem(5).Cmp(uint64Elem(5)))
	assert.Equal(t, 1, uint64Elem(7).Cmp(uint64Elem(5)))
}

func TestModulus(t *testing.T) {
	// 2^64 - 2^32 + 1
	expected := new(big.Int).SetUint64(0xffffffff00000001)
	//
	assert.Equal(t, 0, expected.Cmp(Element{}.Modulus()))
}

func TestInverse(t *testing.T) {
	for _, val := range []uint64{1, 2, 3, 0xdeadbeef} {
		elem := uint64Elem(val)
		assert.True(t, elem.Mul(elem.Inverse()).IsOne(), "inverse of %d", val)
	}
	// Zero maps to zero.
	assert.True(t, uint64Elem(0).Inverse().IsZero())
}

func TestText(t *testing.T) {
	assert.Equal(t, "255", uint64Elem(255).Text(10))
	assert.Equal(t, "ff", uint64Elem(255).Text(16))
}
