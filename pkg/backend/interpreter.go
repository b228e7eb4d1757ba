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
package backend

import (
	"fmt"

	"github.com/encryptogroup/fuse/pkg/core"
	"github.com/encryptogroup/fuse/pkg/ir"
)

// InterpretBoolean evaluates a flat gate-level boolean circuit under a scalar
// environment mapping node identifiers to single boolean values.  This is the
// light-weight sibling of the general evaluator: one value per node, no
// offsets, no subcircuit calls.  Non-boolean operations fail with
// ErrUnsupportedOperation, missing inputs with ErrMissingValue.  Results for
// every node (including outputs) are stored back into the environment.
func InterpretBoolean(circuit core.Circuit, env map[uint64]bool) error {
	var failure error
	//
	circuit.Traverse(func(node core.Node) {
		if failure == nil {
			failure = interpretBooleanNode(node, env)
		}
	})
	//
	return failure
}

func interpretBooleanNode(node core.Node, env map[uint64]bool) error {
	if _, ok := env[node.ID()]; ok {
		return nil
	}
	//
	inputs := make([]any, 0, node.NumInputs())
	//
	for _, id := range node.InputIDs() {
		value, ok := env[id]
		if !ok {
			return fmt.Errorf("input of node %d from node %d: %w", node.ID(), id, core.ErrMissingValue)
		}
		//
		inputs = append(inputs, value)
	}
	//
	var result bool
	//
	switch op := node.Operation(); op {
	case ir.PrimitiveOperationInput:
		return fmt.Errorf("input node %d was not seeded: %w", node.ID(), core.ErrMissingValue)
	case ir.PrimitiveOperationOutput:
		result = inputs[0].(bool)
	case ir.PrimitiveOperationConstant:
		value, err := core.ConstantScalar[bool](node)
		if err != nil {
			return err
		}
		//
		result = value
	case ir.PrimitiveOperationNot:
		result = !inputs[0].(bool)
	case ir.PrimitiveOperationAnd, ir.PrimitiveOperationOr, ir.PrimitiveOperationXor,
		ir.PrimitiveOperationNand, ir.PrimitiveOperationNor, ir.PrimitiveOperationXnor:
		value, err := foldBoolean(node, op, inputs)
		if err != nil {
			return err
		}
		//
		result = value
	default:
		return fmt.Errorf("interpreting %s node %d: %w", node.OperationName(), node.ID(), core.ErrUnsupportedOperation)
	}
	//
	env[node.ID()] = result
	//
	return nil
}
