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

// Package backend contains the consumers of the IR shipped with the core: the
// reference evaluator used as a test oracle, a scalar plaintext interpreter
// for flat boolean circuits, and a DOT emitter for visual inspection.
package backend

import (
	"fmt"

	"github.com/encryptogroup/fuse/pkg/core"
	"github.com/encryptogroup/fuse/pkg/ir"
	"github.com/encryptogroup/fuse/pkg/passes"
)

// Environment maps node identifiers to their output value lists.  Input nodes
// are seeded by the caller with single-element lists; every other node is
// assigned exactly once during evaluation, and consumers read through their
// input offsets.
type Environment map[uint64][]any

// EvaluateModule evaluates the entry circuit of a module under the given
// environment, resolving subcircuit calls by recursive descent.  The module
// call graph is checked for cycles up front, failing with ErrCycleIntroduced.
func EvaluateModule(module core.Module, env Environment) error {
	callGraph, err := passes.ModuleCallGraph(module)
	if err != nil {
		return err
	}
	//
	if err := passes.CheckCallGraphAcyclic(callGraph); err != nil {
		return err
	}
	//
	entry, err := module.EntryCircuit()
	if err != nil {
		return err
	}
	//
	return evaluateCircuit(entry, env, module)
}

// EvaluateCircuit evaluates a stand-alone circuit under the given
// environment.  Subcircuit calls cannot be resolved without a module and fail
// with ErrUnsupportedOperation.
func EvaluateCircuit(circuit core.Circuit, env Environment) error {
	return evaluateCircuit(circuit, env, nil)
}

// evaluateCircuit walks the node sequence in topological order, evaluating
// each node once.
func evaluateCircuit(circuit core.Circuit, env Environment, module core.Module) error {
	var failure error
	//
	circuit.Traverse(func(node core.Node) {
		if failure == nil {
			failure = evaluateNode(node, env, module)
		}
	})
	//
	return failure
}

// evaluateNode computes the output value list of one node and stores it under
// the node's identifier.
func evaluateNode(node core.Node, env Environment, module core.Module) error {
	// already computed (e.g. a seeded input)
	if _, ok := env[node.ID()]; ok {
		return nil
	}
	//
	inputs, err := gatherInputs(node, env)
	if err != nil {
		return err
	}
	//
	outputs, err := applyOperation(node, inputs, module)
	if err != nil {
		return err
	}
	//
	env[node.ID()] = outputs
	//
	return nil
}

// gatherInputs reads the input values of a node through its offsets.
func gatherInputs(node core.Node, env Environment) ([]any, error) {
	var (
		ids     = node.InputIDs()
		offsets = node.InputOffsets()
		values  = make([]any, len(ids))
	)
	//
	for i, id := range ids {
		produced, ok := env[id]
		if !ok {
			return nil, fmt.Errorf("input of node %d from node %d: %w", node.ID(), id, core.ErrMissingValue)
		}
		//
		var offset uint32
		if len(offsets) > 0 {
			offset = offsets[i]
		}
		//
		if uint(offset) >= uint(len(produced)) {
			return nil, fmt.Errorf("input of node %d from node %d at offset %d (only %d outputs): %w",
				node.ID(), id, offset, len(produced), core.ErrMissingValue)
		}
		//
		values[i] = produced[offset]
	}
	//
	return values, nil
}

// applyOperation dispatches on the node operation.  Nodes with several
// outputs apply their operation lane-wise: the input list is interpreted as
// NumOutputs consecutive groups of equal size, each yielding one output (this
// is how SIMD nodes produced by fusion evaluate).
func applyOperation(node core.Node, inputs []any, module core.Module) ([]any, error) {
	op := node.Operation()
	//
	switch op {
	case ir.PrimitiveOperationInput:
		// Unseeded inputs only occur when the caller forgot a binding.
		return nil, fmt.Errorf("input node %d was not seeded: %w", node.ID(), core.ErrMissingValue)
	case ir.PrimitiveOperationOutput, ir.PrimitiveOperationSelectOffset:
		return []any{inputs[0]}, nil
	case ir.PrimitiveOperationConstant:
		value, err := core.DecodeConstant(node)
		if err != nil {
			return nil, err
		}
		//
		return []any{value}, nil
	case ir.PrimitiveOperationSplit:
		return splitBits(node, inputs[0])
	case ir.PrimitiveOperationMerge:
		value, err := mergeBits(node, inputs)
		if err != nil {
			return nil, err
		}
		//
		return []any{value}, nil
	case ir.PrimitiveOperationCallSubcircuit:
		return callSubcircuit(node, inputs, module)
	case ir.PrimitiveOperationLoop, ir.PrimitiveOperationCustom:
		return nil, fmt.Errorf("evaluating %s node %d: %w", node.OperationName(), node.ID(), core.ErrUnsupportedOperation)
	}
	// Lane-wise operations.
	lanes := int(node.NumOutputs())
	if lanes == 0 {
		lanes = 1
	}
	//
	if len(inputs)%lanes != 0 {
		return nil, fmt.Errorf("node %d has %d inputs over %d lanes: %w",
			node.ID(), len(inputs), lanes, core.ErrTypeMismatch)
	}
	//
	width := len(inputs) / lanes
	outputs := make([]any, lanes)
	//
	for i := range outputs {
		value, err := applyScalarOperation(node, op, inputs[i*width:(i+1)*width])
		if err != nil {
			return nil, err
		}
		//
		outputs[i] = value
	}
	//
	return outputs, nil
}

// applyScalarOperation evaluates one lane of an operation over its input
// group.
func applyScalarOperation(node core.Node, op ir.PrimitiveOperation, inputs []any) (any, error) {
	switch op {
	case ir.PrimitiveOperationNot:
		b, err := toBool(node, inputs[0])
		if err != nil {
			return nil, err
		}
		//
		return !b, nil
	case ir.PrimitiveOperationAnd, ir.PrimitiveOperationOr, ir.PrimitiveOperationXor,
		ir.PrimitiveOperationNand, ir.PrimitiveOperationNor, ir.PrimitiveOperationXnor:
		return foldBoolean(node, op, inputs)
	case ir.PrimitiveOperationNeg, ir.PrimitiveOperationSquare:
		return applyUnaryArithmetic(node, op, inputs[0])
	case ir.PrimitiveOperationAdd, ir.PrimitiveOperationSub, ir.PrimitiveOperationMul,
		ir.PrimitiveOperationDiv:
		return foldArithmetic(node, op, inputs)
	case ir.PrimitiveOperationEq, ir.PrimitiveOperationGt, ir.PrimitiveOperationGe,
		ir.PrimitiveOperationLt, ir.PrimitiveOperationLe:
		if len(inputs) != 2 {
			return nil, fmt.Errorf("comparison node %d with %d inputs: %w", node.ID(), len(inputs), core.ErrTypeMismatch)
		}
		//
		return compare(node, op, inputs[0], inputs[1])
	case ir.PrimitiveOperationMux:
		if len(inputs) != 3 {
			return nil, fmt.Errorf("mux node %d with %d inputs: %w", node.ID(), len(inputs), core.ErrTypeMismatch)
		}
		//
		cond, err := toBool(node, inputs[0])
		if err != nil {
			return nil, err
		}
		//
		if cond {
			return inputs[1], nil
		}
		//
		return inputs[2], nil
	default:
		return nil, fmt.Errorf("evaluating %s node %d: %w", node.OperationName(), node.ID(), core.ErrUnsupportedOperation)
	}
}

// callSubcircuit evaluates a callee circuit in a fresh child environment,
// binding the callee inputs to the caller's input values, and returns the
// callee's output values as the call node's result list.
func callSubcircuit(node core.Node, inputs []any, module core.Module) ([]any, error) {
	if module == nil {
		return nil, fmt.Errorf("call node %d outside a module: %w", node.ID(), core.ErrUnsupportedOperation)
	}
	//
	callee, err := module.CircuitWithName(node.SubcircuitName())
	if err != nil {
		return nil, err
	}
	//
	calleeInputs := callee.InputIDs()
	if len(calleeInputs) != len(inputs) {
		return nil, fmt.Errorf("call node %d passes %d values to %s which takes %d: %w",
			node.ID(), len(inputs), callee.Name(), len(calleeInputs), core.ErrMissingValue)
	}
	//
	child := make(Environment, len(calleeInputs))
	for i, id := range calleeInputs {
		child[id] = []any{inputs[i]}
	}
	//
	if err := evaluateCircuit(callee, child, module); err != nil {
		return nil, err
	}
	//
	outputs := make([]any, 0, callee.NumOutputs())
	//
	for _, id := range callee.OutputIDs() {
		produced, ok := child[id]
		if !ok || len(produced) == 0 {
			return nil, fmt.Errorf("output %d of callee %s: %w", id, callee.Name(), core.ErrMissingValue)
		}
		//
		outputs = append(outputs, produced[0])
	}
	//
	return outputs, nil
}

// splitBits decomposes an integer value into its bits, least significant
// first, one boolean per declared output.
func splitBits(node core.Node, value any) ([]any, error) {
	bits, width, err := toUint64(node, value)
	if err != nil {
		return nil, err
	}
	//
	outputs := node.NumOutputs()
	if outputs == 0 || outputs > width {
		return nil, fmt.Errorf("split node %d with %d outputs over %d bits: %w",
			node.ID(), outputs, width, core.ErrTypeMismatch)
	}
	//
	result := make([]any, outputs)
	for i := range result {
		result[i] = (bits>>uint(i))&1 == 1
	}
	//
	return result, nil
}

// mergeBits composes booleans (least significant first) into the integer
// value of the node's declared output type (uint64 when undeclared).
func mergeBits(node core.Node, inputs []any) (any, error) {
	var bits uint64
	//
	for i, input := range inputs {
		b, err := toBool(node, input)
		if err != nil {
			return nil, err
		}
		//
		if b {
			bits |= 1 << uint(i)
		}
	}
	//
	datatype := node.OutputTypeAt(0)
	if datatype == nil {
		return bits, nil
	}
	//
	switch datatype.PrimitiveType() {
	case ir.PrimitiveTypeBool:
		return bits != 0, nil
	case ir.PrimitiveTypeInt8:
		return int8(bits), nil
	case ir.PrimitiveTypeInt16:
		return int16(bits), nil
	case ir.PrimitiveTypeInt32:
		return int32(bits), nil
	case ir.PrimitiveTypeInt64:
		return int64(bits), nil
	case ir.PrimitiveTypeUInt8:
		return uint8(bits), nil
	case ir.PrimitiveTypeUInt16:
		return uint16(bits), nil
	case ir.PrimitiveTypeUInt32:
		return uint32(bits), nil
	default:
		return bits, nil
	}
}
