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
	"sort"

	"github.com/encryptogroup/fuse/pkg/core"
	"github.com/encryptogroup/fuse/pkg/ir"
	log "github.com/sirupsen/logrus"
)

// VectorizeInstructions fuses same-operation nodes into SIMD nodes, one
// fusion per instruction-depth level.  Only levels with at least minGates
// candidates are fused, and within a level only nodes whose plain node depth
// lies within maxDistance of the level's median (data-parallel nodes far
// apart in the schedule rarely pay off downstream).  The number of fused
// nodes is returned.
func VectorizeInstructions(circuit *core.CircuitObject, operation ir.PrimitiveOperation,
	minGates, maxDistance int) (int, error) {
	log.Debugf("vectorizing %s gates of %s (%d nodes)", operation, circuit.Name(), circuit.NumNodes())
	//
	instructionDepth := NodeInstructionDepths(circuit, operation)
	nodeDepth := NodeDepths(circuit)
	// Group candidate nodes by instruction depth.
	depthToNodes := make(map[uint64][]uint64)
	//
	circuit.Traverse(func(node core.Node) {
		if node.Operation() == operation {
			d := instructionDepth[node.ID()]
			depthToNodes[d] = append(depthToNodes[d], node.ID())
		}
	})
	// Process levels in ascending depth order.
	levels := make([]uint64, 0, len(depthToNodes))
	for d := range depthToNodes {
		levels = append(levels, d)
	}
	//
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })
	//
	replaced := 0
	//
	for _, level := range levels {
		candidates := depthToNodes[level]
		if len(candidates) < minGates {
			continue
		}
		// Keep only candidates close to the median node depth of the level.
		median := medianDepth(candidates, nodeDepth)
		//
		var group []uint64
		for _, id := range candidates {
			if distance(int(nodeDepth[id]), median) <= maxDistance {
				group = append(group, id)
			}
		}
		//
		if len(group) < minGates {
			continue
		}
		//
		if _, err := circuit.ReplaceNodesBySIMDNode(group); err != nil {
			return replaced, err
		}
		//
		log.Debugf("fused %d %s gates at instruction depth %d", len(group), operation, level)
		replaced += len(group)
	}
	//
	log.Debugf("vectorized %s: %d nodes fused, %d nodes remain", operation, replaced, circuit.NumNodes())
	//
	return replaced, nil
}

// VectorizeAllInstructions applies VectorizeInstructions to every fusable
// operation of a circuit, returning the total number of fused nodes.
func VectorizeAllInstructions(circuit *core.CircuitObject, minGates, maxDistance int) (int, error) {
	replaced := 0
	//
	for op := ir.PrimitiveOperationConstant; op <= ir.PrimitiveOperationMux; op++ {
		if op == ir.PrimitiveOperationConstant {
			continue
		}
		//
		n, err := VectorizeInstructions(circuit, op, minGates, maxDistance)
		replaced += n
		//
		if err != nil {
			return replaced, err
		}
	}
	//
	return replaced, nil
}

// medianDepth computes the median node depth of a candidate group.
func medianDepth(ids []uint64, nodeDepth map[uint64]uint64) int {
	depths := make([]int, len(ids))
	for i, id := range ids {
		depths[i] = int(nodeDepth[id])
	}
	//
	sort.Ints(depths)
	//
	if len(depths)%2 == 0 {
		return (depths[len(depths)/2-1] + depths[len(depths)/2]) / 2
	}
	//
	return depths[len(depths)/2]
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	//
	return b - a
}
