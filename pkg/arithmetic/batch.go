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
	"runtime"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sukrucildirr/zkm/pkg/util/field"
)

// rowPair is the output of translating one operation: a row and, for two-row
// operators, the continuation row which must immediately follow it.
type rowPair[F field.Element[F]] struct {
	row  []F
	next []F
}

// GenerateRows translates a batch of operations into trace rows, fanning the
// work out across at most parallelism goroutines (defaulting to GOMAXPROCS
// when parallelism <= 0).  Operations are independent, so the fan-out is
// safe; each result lands in its operation's slot, keeping the returned rows
// in operation order with every continuation row adjacent to its first row.
func GenerateRows[F field.Element[F]](t *Translator[F], ops []Operation, parallelism int) [][]F {
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	//
	pairs := make([]rowPair[F], len(ops))
	//
	var g errgroup.Group
	//
	g.SetLimit(parallelism)
	//
	for i, op := range ops {
		i, op := i, op
		//
		g.Go(func() error {
			row, next := t.ToRows(op)
			pairs[i] = rowPair[F]{row, next}
			//
			return nil
		})
	}
	// Translation has no failure path, so this only synchronises.
	_ = g.Wait()
	//
	rows := make([][]F, 0, 2*len(ops))
	//
	for _, pair := range pairs {
		rows = append(rows, pair.row)
		//
		if pair.next != nil {
			rows = append(rows, pair.next)
		}
	}
	//
	log.Debugf("translated %d operations into %d arithmetic rows", len(ops), len(rows))
	//
	return rows
}
