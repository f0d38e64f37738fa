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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sukrucildirr/zkm/pkg/util/field/goldilocks"
)

// batchOperations builds a mixed workload, repeating the full operator set
// with varying operands so adjacent operations produce different rows.
func batchOperations(n int) []Operation {
	var ops []Operation
	//
	for i := 0; len(ops) < n; i++ {
		salt := uint32(i * 31)
		//
		for _, op := range binaryOperators {
			ops = append(ops, Binary(op, 0x1000+salt, 3+salt))
		}
		//
		for _, op := range ternaryOperators {
			ops = append(ops, Ternary(op, 0x1000+salt, 3+salt, 17+salt))
		}
	}
	//
	return ops[:n]
}

// sequentialRows is the reference implementation: translate one operation at
// a time, in order.
func sequentialRows(t *Translator[goldilocks.Element], ops []Operation) [][]goldilocks.Element {
	var rows [][]goldilocks.Element
	//
	for _, op := range ops {
		row, next := t.ToRows(op)
		rows = append(rows, row)
		//
		if next != nil {
			rows = append(rows, next)
		}
	}
	//
	return rows
}

func TestGenerateRowsMatchesSequential(t *testing.T) {
	tr, _ := newTestTranslator()
	ops := batchOperations(100)
	//
	expected := sequentialRows(tr, ops)
	//
	for _, parallelism := range []int{0, 1, 4, 16} {
		rows := GenerateRows(tr, ops, parallelism)
		assert.Equal(t, expected, rows, "parallelism %d", parallelism)
	}
}

func TestGenerateRowsPairAdjacency(t *testing.T) {
	tr, _ := newTestTranslator()
	ops := batchOperations(50)
	//
	rows := GenerateRows(tr, ops, 8)
	// Walk the flattened rows against the operation list: every operation
	// contributes its first row, immediately followed by its continuation row
	// when one exists.
	i := 0
	//
	for _, op := range ops {
		row, next := tr.ToRows(op)
		//
		require.Less(t, i, len(rows))
		assert.Equal(t, row, rows[i])
		i++
		//
		if next != nil {
			require.Less(t, i, len(rows))
			assert.Equal(t, next, rows[i])
			i++
		}
	}
	//
	assert.Equal(t, len(rows), i)
}

func TestGenerateRowsConcurrentGadgetCalls(t *testing.T) {
	tr, s := newTestTranslator()
	ops := batchOperations(500)
	// Fan out wide enough that gadget invocations genuinely overlap; every
	// operation must still be recorded exactly once, with no lost appends.
	GenerateRows(tr, ops, 16)
	//
	assert.Equal(t, len(ops), s.invocations())
}

func TestGenerateRowsEmpty(t *testing.T) {
	tr, _ := newTestTranslator()
	//
	assert.Empty(t, GenerateRows(tr, nil, 4))
}
