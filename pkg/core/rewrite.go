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
package core

import (
	"fmt"
	"slices"

	"github.com/encryptogroup/fuse/pkg/ir"
	"github.com/encryptogroup/fuse/pkg/util/collection/set"
)

// ReplaceNodesBySubcircuit replaces a matched set of nodes by a single call to
// a freshly factored subcircuit, returning the identifier of the new call
// node.  The arguments are:
//
//   - subcircuit: the callee (which must live in the same module);
//   - nodesToReplace: the matched nodes to be removed;
//   - inputPlacement: for each subcircuit input, the node of this circuit
//     producing the corresponding value;
//   - outputConsumers: for each subcircuit output, all nodes of this circuit
//     consuming the corresponding value;
//   - outputProducers: for each subcircuit output, the replaced node that used
//     to produce the corresponding value.
//
// Every consumer of a replaced producer is rewired to the matching output
// offset of the call node, and the node sequence is repaired back into a
// valid topological order.
func (p *CircuitObject) ReplaceNodesBySubcircuit(
	subcircuit Circuit,
	nodesToReplace []uint64,
	inputPlacement map[uint64]uint64,
	outputConsumers map[uint64][]uint64,
	outputProducers map[uint64]uint64,
) (uint64, error) {
	replaced := set.NewSortedSet[uint64]()
	replaced.InsertAll(nodesToReplace...)
	// Sanity check the rewrite specification up front.
	if err := p.checkSubcircuitRewrite(subcircuit, replaced, inputPlacement, outputConsumers, outputProducers); err != nil {
		return 0, err
	}
	// The call node takes the placed producers as inputs, in subcircuit input
	// order.
	inputIDs := make([]uint64, 0, len(inputPlacement))
	for _, subInput := range subcircuit.InputIDs() {
		inputIDs = append(inputIDs, inputPlacement[subInput])
	}
	//
	callID := p.NextID()
	callNode := &ir.NodeTableT{
		Id:               callID,
		Operation:        ir.PrimitiveOperationCallSubcircuit,
		SubcircuitName:   subcircuit.Name(),
		InputIdentifiers: inputIDs,
		NumOfOutputs:     uint32(len(outputProducers)),
	}
	// Insert immediately after the last input producer, i.e. the earliest
	// position at which all inputs are already defined.
	p.insertAfterProducers(callNode, inputIDs)
	// Assign each subcircuit output a call output offset, in subcircuit output
	// order.
	callOffsets := make(map[uint64]uint32, len(outputProducers))
	//
	var offset uint32
	for _, subOutput := range subcircuit.OutputIDs() {
		callOffsets[subOutput] = offset
		offset++
	}
	// Rewire every consumer of a replaced producer onto the call node.
	for _, subOutput := range subcircuit.OutputIDs() {
		producer := outputProducers[subOutput]
		//
		for _, consumerID := range outputConsumers[subOutput] {
			consumer, err := p.MutableNodeWithID(consumerID)
			if err != nil {
				return 0, err
			}
			//
			rewireConsumer(consumer, producer, callID, callOffsets[subOutput])
		}
	}
	// Drop the replaced nodes and repair the order.
	p.RemoveNodes(replaced)
	//
	if err := p.restoreTopologicalOrder(callID); err != nil {
		return 0, err
	}
	//
	return callID, nil
}

// ReplaceNodesBySIMDNode fuses an ordered list of nodes sharing one operation
// into a single SIMD node whose input list is the concatenation of the fused
// input lists and whose outputs correspond, in list order, to the outputs of
// the fused nodes.  Every consumer is rewired to the matching output offset,
// and the node sequence is repaired back into a valid topological order.  The
// identifier of the new node is returned.
func (p *CircuitObject) ReplaceNodesBySIMDNode(nodesToFuse []uint64) (uint64, error) {
	if len(nodesToFuse) == 0 {
		return 0, fmt.Errorf("no nodes to fuse: %w", ErrInconsistentRewrite)
	}
	//
	fused := set.NewSortedSet[uint64]()
	fused.InsertAll(nodesToFuse...)
	// Concatenate the input lists and assign each fused node its output
	// offset within the SIMD node.
	var (
		inputIDs     []uint64
		inputOffsets []uint32
		operation    ir.PrimitiveOperation
		outputOffset = make(map[uint64]uint32, len(nodesToFuse))
	)
	//
	for i, id := range nodesToFuse {
		node, err := p.MutableNodeWithID(id)
		if err != nil {
			return 0, err
		}
		//
		if i == 0 {
			operation = node.Operation()
		} else if node.Operation() != operation {
			return 0, fmt.Errorf("fusing %s node %d into %s group: %w",
				node.OperationName(), id, operation, ErrInconsistentRewrite)
		}
		//
		inputIDs = append(inputIDs, node.InputIDs()...)
		//
		if node.UsesInputOffsets() {
			inputOffsets = append(inputOffsets, node.InputOffsets()...)
		} else {
			inputOffsets = append(inputOffsets, make([]uint32, node.NumInputs())...)
		}
		//
		outputOffset[id] = uint32(i)
	}
	// A fused node reading another fused node cannot be assigned a position.
	for _, id := range inputIDs {
		if fused.Contains(id) {
			return 0, fmt.Errorf("node %d is both fused and an input of the fusion: %w", id, ErrInconsistentRewrite)
		}
	}
	//
	simdID := p.NextID()
	simdNode := &ir.NodeTableT{
		Id:               simdID,
		Operation:        operation,
		InputIdentifiers: inputIDs,
		InputOffsets:     inputOffsets,
		NumOfOutputs:     simdOutputCount(operation, len(inputIDs)),
	}
	//
	p.insertAfterProducers(simdNode, inputIDs)
	// Rewire all consumers of fused nodes onto the SIMD node.
	for _, node := range p.object.Nodes {
		if node.Id == simdID {
			continue
		}
		//
		consumer := NewNodeObject(node)
		for _, inputID := range slices.Clone(consumer.InputIDs()) {
			if off, ok := outputOffset[inputID]; ok {
				rewireConsumer(consumer, inputID, simdID, off)
			}
		}
	}
	// Drop the fused nodes and repair the order.
	p.RemoveNodes(fused)
	//
	if err := p.restoreTopologicalOrder(simdID); err != nil {
		return 0, err
	}
	//
	return simdID, nil
}

// CheckTopologicalOrder verifies that the node sequence is a valid
// topological order: every producer referenced by a node appears strictly
// earlier in the sequence.
func (p *CircuitObject) CheckTopologicalOrder() error {
	seen := set.NewSortedSet[uint64]()
	//
	for _, node := range p.object.Nodes {
		for _, input := range node.InputIdentifiers {
			if !seen.Contains(input) {
				return fmt.Errorf("node %d reads node %d which is not defined earlier: %w",
					node.Id, input, ErrCycleIntroduced)
			}
		}
		//
		seen.Insert(node.Id)
	}
	//
	return nil
}

// checkSubcircuitRewrite validates that the arguments of a subcircuit rewrite
// form a self-consistent specification against the current circuit.
func (p *CircuitObject) checkSubcircuitRewrite(
	subcircuit Circuit,
	replaced *set.SortedSet[uint64],
	inputPlacement map[uint64]uint64,
	outputConsumers map[uint64][]uint64,
	outputProducers map[uint64]uint64,
) error {
	// Every subcircuit input must be placed at an existing producer.
	for _, subInput := range subcircuit.InputIDs() {
		producer, ok := inputPlacement[subInput]
		if !ok {
			return fmt.Errorf("subcircuit input %d has no placement: %w", subInput, ErrInconsistentRewrite)
		}
		//
		if _, err := p.NodeWithID(producer); err != nil {
			return err
		}
	}
	// Every subcircuit output must name the replaced node which produced it.
	for _, subOutput := range subcircuit.OutputIDs() {
		producer, ok := outputProducers[subOutput]
		if !ok {
			return fmt.Errorf("subcircuit output %d has no producer: %w", subOutput, ErrInconsistentRewrite)
		}
		//
		if !replaced.Contains(producer) {
			return fmt.Errorf("subcircuit output %d produced by node %d which is not replaced: %w",
				subOutput, producer, ErrInconsistentRewrite)
		}
		//
		for _, consumer := range outputConsumers[subOutput] {
			if _, err := p.NodeWithID(consumer); err != nil {
				return err
			}
		}
	}
	// Every replaced node must exist, and must be reachable (backwards) from a
	// declared output producer without passing a placed input producer.
	reachable := set.NewSortedSet[uint64]()
	//
	placed := set.NewSortedSet[uint64]()
	for _, producer := range inputPlacement {
		placed.Insert(producer)
	}
	//
	var worklist []uint64
	for _, producer := range outputProducers {
		worklist = append(worklist, producer)
	}
	//
	for len(worklist) > 0 {
		id := worklist[0]
		worklist = worklist[1:]
		//
		if reachable.Contains(id) || placed.Contains(id) {
			continue
		}
		//
		reachable.Insert(id)
		//
		if node, err := p.NodeWithID(id); err == nil {
			worklist = append(worklist, node.InputIDs()...)
		}
	}
	//
	for _, id := range replaced.Iter() {
		if _, err := p.NodeWithID(id); err != nil {
			return err
		}
		//
		if !reachable.Contains(id) {
			return fmt.Errorf("replaced node %d is not covered by the subcircuit: %w", id, ErrInconsistentRewrite)
		}
	}
	//
	return nil
}

// insertAfterProducers inserts a node immediately after the last of its
// producers in the current sequence, i.e. the earliest position at which all
// of its inputs are already defined.  A node without producers is inserted at
// the front.
func (p *CircuitObject) insertAfterProducers(node *ir.NodeTableT, producers []uint64) {
	pending := set.NewSortedSet[uint64]()
	pending.InsertAll(producers...)
	//
	if pending.Size() == 0 {
		p.object.Nodes = slices.Insert(p.object.Nodes, 0, node)
		return
	}
	//
	for i, existing := range p.object.Nodes {
		pending.Remove(existing.Id)
		//
		if pending.Size() == 0 {
			p.object.Nodes = slices.Insert(p.object.Nodes, i+1, node)
			return
		}
	}
	// Some producer is absent from the circuit; append so the node is not
	// silently lost, leaving the final order check to report the problem.
	p.object.Nodes = append(p.object.Nodes, node)
}

// restoreTopologicalOrder repairs the node sequence after a rewrite has
// inserted the node with the given identifier.  Working breadth-first from
// that node, any consumer found before its producer is moved to just after
// it, and the repair recurses on each moved consumer until the worklist
// drains.  A bound of (n+1)² processed work items converts a repair that does
// not drain (as when a cycle was introduced) into ErrCycleIntroduced, and a
// final order check reports any back edge that remains.
func (p *CircuitObject) restoreTopologicalOrder(startID uint64) error {
	successors := p.nodeSuccessors()
	//
	worklist := []uint64{startID}
	//
	bound := (len(p.object.Nodes) + 1) * (len(p.object.Nodes) + 1)
	steps := 0
	//
	for len(worklist) > 0 {
		if steps++; steps > bound {
			return fmt.Errorf("topological repair did not converge: %w", ErrCycleIntroduced)
		}
		//
		current := worklist[0]
		worklist = worklist[1:]
		//
		succ, ok := successors[current]
		if !ok {
			continue
		}
		// Locate the current node.
		position := -1
		//
		for i, node := range p.object.Nodes {
			if node.Id == current {
				position = i
				break
			}
		}
		//
		if position <= 0 {
			continue
		}
		// Collect consumers appearing before their producer.
		var (
			kept   []*ir.NodeTableT
			moved  []*ir.NodeTableT
			before = p.object.Nodes[:position]
		)
		//
		for _, node := range before {
			if succ.Contains(node.Id) {
				moved = append(moved, node)
			} else {
				kept = append(kept, node)
			}
		}
		//
		if len(moved) == 0 {
			continue
		}
		// Reinsert the moved consumers just after the current node and recurse
		// on them.
		kept = append(kept, p.object.Nodes[position])
		kept = append(kept, moved...)
		kept = append(kept, p.object.Nodes[position+1:]...)
		p.object.Nodes = kept
		//
		for _, node := range moved {
			worklist = append(worklist, node.Id)
		}
	}
	//
	return p.CheckTopologicalOrder()
}

// nodeSuccessors computes, for every node, the set of identifiers of its
// direct consumers.  (The passes package exposes the same analysis over
// read-only circuits; rewrites recompute it here because they run mid-surgery
// on the object tree.)
func (p *CircuitObject) nodeSuccessors() map[uint64]*set.SortedSet[uint64] {
	successors := make(map[uint64]*set.SortedSet[uint64], len(p.object.Nodes))
	//
	for _, node := range p.object.Nodes {
		for _, input := range node.InputIdentifiers {
			succ, ok := successors[input]
			if !ok {
				succ = set.NewSortedSet[uint64]()
				successors[input] = succ
			}
			//
			succ.Insert(node.Id)
		}
	}
	//
	return successors
}

// rewireConsumer redirects every input port of a consumer reading the given
// producer onto (replacement, offset), materializing an offset list when the
// consumer had none.
func rewireConsumer(consumer *NodeObject, producer, replacement uint64, offset uint32) {
	ids := slices.Clone(consumer.InputIDs())
	offsets := consumer.InputOffsets()
	//
	for i, id := range ids {
		if id != producer {
			continue
		}
		//
		var prevOffset uint32
		if len(offsets) > 0 {
			prevOffset = offsets[i]
		}
		//
		consumer.ReplaceInputBy(producer, replacement, prevOffset, offset)
	}
}

// simdOutputCount determines how many outputs a SIMD node has: one per input
// pair for binary operations, one per (condition, then, else) triple for Mux,
// and one per input otherwise.
func simdOutputCount(operation ir.PrimitiveOperation, inputs int) uint32 {
	switch {
	case IsBinaryOperation(operation):
		return uint32(inputs / 2)
	case operation == ir.PrimitiveOperationMux:
		return uint32(inputs / 3)
	default:
		return uint32(inputs)
	}
}
