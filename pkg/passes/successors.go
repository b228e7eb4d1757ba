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

// Package passes provides reusable analyses over read-only circuits and
// modules: successor sets, topological depths, and call-stack and operation
// histograms.  Every analysis returns a freshly allocated map and never
// mutates its input.
package passes

import (
	"github.com/encryptogroup/fuse/pkg/core"
	"github.com/encryptogroup/fuse/pkg/util/collection/set"
)

// NodeSuccessors computes, for every node of a circuit, the set of
// identifiers of its direct consumers.
func NodeSuccessors(circuit core.Circuit) map[uint64]*set.SortedSet[uint64] {
	successors := make(map[uint64]*set.SortedSet[uint64], circuit.NumNodes())
	//
	circuit.Traverse(func(node core.Node) {
		// Every node owns an entry, even without consumers.
		if _, ok := successors[node.ID()]; !ok {
			successors[node.ID()] = set.NewSortedSet[uint64]()
		}
		//
		for _, input := range node.InputIDs() {
			succ, ok := successors[input]
			if !ok {
				succ = set.NewSortedSet[uint64]()
				successors[input] = succ
			}
			//
			succ.Insert(node.ID())
		}
	})
	//
	return successors
}
