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
package passes

import (
	"github.com/encryptogroup/fuse/pkg/core"
	"github.com/encryptogroup/fuse/pkg/ir"
	"github.com/encryptogroup/fuse/pkg/util/collection/set"
)

// NodeDepths computes the level of every node in the circuit DAG: nodes
// without predecessors (inputs, constants) sit at depth zero, every other
// node at one more than the maximum depth of its predecessors.
func NodeDepths(circuit core.Circuit) map[uint64]uint64 {
	return nodeDepths(circuit, func(node core.Node, base uint64, hasPreds bool) uint64 {
		if !hasPreds {
			return 0
		}
		//
		return base + 1
	})
}

// NodeInstructionDepths computes, for every node, the largest number of
// nodes with the given operation on any path from an input to that node: the
// depth recurrence only pays for nodes whose operation matches, and is
// inherited unchanged otherwise.
func NodeInstructionDepths(circuit core.Circuit, operation ir.PrimitiveOperation) map[uint64]uint64 {
	return nodeDepths(circuit, func(node core.Node, base uint64, hasPreds bool) uint64 {
		if node.Operation() == operation {
			return base + 1
		}
		//
		return base
	})
}

// nodeDepths runs the shared breadth-first recurrence.  Nodes are taken from a
// worklist seeded with all predecessor-free nodes; a node whose predecessors
// are not yet all assigned is simply skipped (its last-resolved predecessor
// re-enqueues it), so the worklist may touch a node several times.
func nodeDepths(circuit core.Circuit, level func(core.Node, uint64, bool) uint64) map[uint64]uint64 {
	depth := make(map[uint64]uint64, circuit.NumNodes())
	successors := NodeSuccessors(circuit)
	// Lookup is linear on the view, so build a side map once.
	nodes := make(map[uint64]core.Node, circuit.NumNodes())
	//
	var worklist []uint64
	//
	circuit.Traverse(func(node core.Node) {
		nodes[node.ID()] = node
		//
		if len(node.InputIDs()) == 0 {
			worklist = append(worklist, node.ID())
		}
	})
	//
	enqueued := set.NewSortedSet[uint64]()
	enqueued.InsertAll(worklist...)
	//
	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]
		enqueued.Remove(current)
		//
		node := nodes[current]
		//
		var (
			base     uint64
			hasPreds = len(node.InputIDs()) > 0
			skip     bool
		)
		//
		for _, pred := range node.InputIDs() {
			d, ok := depth[pred]
			if !ok {
				// Not all predecessors resolved yet; the last of them will
				// re-enqueue this node.
				skip = true
				break
			}
			//
			base = max(base, d)
		}
		//
		if skip {
			continue
		}
		//
		depth[current] = level(node, base, hasPreds)
		//
		if succ, ok := successors[current]; ok {
			for _, next := range succ.Iter() {
				if !enqueued.Contains(next) {
					worklist = append(worklist, next)
					enqueued.Insert(next)
				}
			}
		}
	}
	//
	return depth
}
