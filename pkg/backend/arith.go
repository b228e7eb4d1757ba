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

// Value-level helpers for the reference evaluator.  Values are dynamically
// typed; arithmetic keeps the concrete Go type of its operands (so fixed-width
// overflow wraps exactly as the declared type does).

// toBool narrows a value to a boolean.
func toBool(node core.Node, value any) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("node %d expects a boolean, got %T: %w", node.ID(), value, core.ErrTypeMismatch)
	}
	//
	return b, nil
}

// toUint64 widens an integer value to its raw bits, returning the bit width
// of its concrete type.
func toUint64(node core.Node, value any) (uint64, uint, error) {
	switch v := value.(type) {
	case bool:
		if v {
			return 1, 1, nil
		}
		//
		return 0, 1, nil
	case int8:
		return uint64(uint8(v)), 8, nil
	case int16:
		return uint64(uint16(v)), 16, nil
	case int32:
		return uint64(uint32(v)), 32, nil
	case int64:
		return uint64(v), 64, nil
	case uint8:
		return uint64(v), 8, nil
	case uint16:
		return uint64(v), 16, nil
	case uint32:
		return uint64(v), 32, nil
	case uint64:
		return v, 64, nil
	default:
		return 0, 0, fmt.Errorf("node %d expects an integer, got %T: %w", node.ID(), value, core.ErrTypeMismatch)
	}
}

// foldBoolean folds a boolean gate over its input values, left to right.
func foldBoolean(node core.Node, op ir.PrimitiveOperation, inputs []any) (bool, error) {
	if len(inputs) == 0 {
		return false, fmt.Errorf("%s node %d without inputs: %w", node.OperationName(), node.ID(), core.ErrMissingValue)
	}
	//
	accumulator, err := toBool(node, inputs[0])
	if err != nil {
		return false, err
	}
	//
	for _, input := range inputs[1:] {
		b, err := toBool(node, input)
		if err != nil {
			return false, err
		}
		//
		switch op {
		case ir.PrimitiveOperationAnd, ir.PrimitiveOperationNand:
			accumulator = accumulator && b
		case ir.PrimitiveOperationOr, ir.PrimitiveOperationNor:
			accumulator = accumulator || b
		default:
			// Xor, Xnor
			accumulator = accumulator != b
		}
	}
	//
	switch op {
	case ir.PrimitiveOperationNand, ir.PrimitiveOperationNor, ir.PrimitiveOperationXnor:
		return !accumulator, nil
	default:
		return accumulator, nil
	}
}

// foldArithmetic folds an arithmetic operation over its input values, left to
// right, preserving the concrete operand type.
func foldArithmetic(node core.Node, op ir.PrimitiveOperation, inputs []any) (any, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%s node %d without inputs: %w", node.OperationName(), node.ID(), core.ErrMissingValue)
	}
	//
	accumulator := inputs[0]
	//
	for _, input := range inputs[1:] {
		var err error
		//
		accumulator, err = applyArithmetic(node, op, accumulator, input)
		if err != nil {
			return nil, err
		}
	}
	//
	return accumulator, nil
}

// applyArithmetic applies one arithmetic operation to two values of the same
// concrete type.
func applyArithmetic(node core.Node, op ir.PrimitiveOperation, a, b any) (any, error) {
	switch x := a.(type) {
	case int8:
		return arith(node, op, x, b)
	case int16:
		return arith(node, op, x, b)
	case int32:
		return arith(node, op, x, b)
	case int64:
		return arith(node, op, x, b)
	case uint8:
		return arith(node, op, x, b)
	case uint16:
		return arith(node, op, x, b)
	case uint32:
		return arith(node, op, x, b)
	case uint64:
		return arith(node, op, x, b)
	case float32:
		return arith(node, op, x, b)
	case float64:
		return arith(node, op, x, b)
	default:
		return nil, fmt.Errorf("node %d applies %s to %T: %w", node.ID(), op, a, core.ErrTypeMismatch)
	}
}

// numeric captures the types arithmetic is defined over.
type numeric interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// arith applies one arithmetic operation over a typed left operand and a
// dynamically typed right operand, which must share the concrete type.
func arith[T numeric](node core.Node, op ir.PrimitiveOperation, a T, rhs any) (T, error) {
	b, ok := rhs.(T)
	if !ok {
		return a, fmt.Errorf("node %d mixes %T and %T: %w", node.ID(), a, rhs, core.ErrTypeMismatch)
	}
	//
	switch op {
	case ir.PrimitiveOperationAdd:
		return a + b, nil
	case ir.PrimitiveOperationSub:
		return a - b, nil
	case ir.PrimitiveOperationMul:
		return a * b, nil
	case ir.PrimitiveOperationDiv:
		if b == 0 {
			return a, fmt.Errorf("node %d divides by zero: %w", node.ID(), core.ErrUnsupportedOperation)
		}
		//
		return a / b, nil
	default:
		return a, fmt.Errorf("node %d applies %s: %w", node.ID(), op, core.ErrUnsupportedOperation)
	}
}

// applyUnaryArithmetic applies Neg or Square to one value.
func applyUnaryArithmetic(node core.Node, op ir.PrimitiveOperation, value any) (any, error) {
	switch x := value.(type) {
	case int8:
		return unary(node, op, x)
	case int16:
		return unary(node, op, x)
	case int32:
		return unary(node, op, x)
	case int64:
		return unary(node, op, x)
	case uint8:
		return unary(node, op, x)
	case uint16:
		return unary(node, op, x)
	case uint32:
		return unary(node, op, x)
	case uint64:
		return unary(node, op, x)
	case float32:
		return unary(node, op, x)
	case float64:
		return unary(node, op, x)
	default:
		return nil, fmt.Errorf("node %d applies %s to %T: %w", node.ID(), op, value, core.ErrTypeMismatch)
	}
}

func unary[T numeric](node core.Node, op ir.PrimitiveOperation, a T) (T, error) {
	switch op {
	case ir.PrimitiveOperationNeg:
		var zero T
		return zero - a, nil
	case ir.PrimitiveOperationSquare:
		return a * a, nil
	default:
		return a, fmt.Errorf("node %d applies %s: %w", node.ID(), op, core.ErrUnsupportedOperation)
	}
}

// compare applies a comparison operation to two values of the same concrete
// type, yielding a boolean.
func compare(node core.Node, op ir.PrimitiveOperation, a, b any) (bool, error) {
	if x, ok := a.(bool); ok {
		y, ok := b.(bool)
		if !ok || op != ir.PrimitiveOperationEq {
			return false, fmt.Errorf("node %d compares %T and %T: %w", node.ID(), a, b, core.ErrTypeMismatch)
		}
		//
		return x == y, nil
	}
	//
	switch x := a.(type) {
	case int8:
		return ordered(node, op, x, b)
	case int16:
		return ordered(node, op, x, b)
	case int32:
		return ordered(node, op, x, b)
	case int64:
		return ordered(node, op, x, b)
	case uint8:
		return ordered(node, op, x, b)
	case uint16:
		return ordered(node, op, x, b)
	case uint32:
		return ordered(node, op, x, b)
	case uint64:
		return ordered(node, op, x, b)
	case float32:
		return ordered(node, op, x, b)
	case float64:
		return ordered(node, op, x, b)
	default:
		return false, fmt.Errorf("node %d compares %T: %w", node.ID(), a, core.ErrTypeMismatch)
	}
}

func ordered[T numeric](node core.Node, op ir.PrimitiveOperation, a T, rhs any) (bool, error) {
	b, ok := rhs.(T)
	if !ok {
		return false, fmt.Errorf("node %d mixes %T and %T: %w", node.ID(), a, rhs, core.ErrTypeMismatch)
	}
	//
	switch op {
	case ir.PrimitiveOperationEq:
		return a == b, nil
	case ir.PrimitiveOperationGt:
		return a > b, nil
	case ir.PrimitiveOperationGe:
		return a >= b, nil
	case ir.PrimitiveOperationLt:
		return a < b, nil
	case ir.PrimitiveOperationLe:
		return a <= b, nil
	default:
		return false, fmt.Errorf("node %d applies %s: %w", node.ID(), op, core.ErrUnsupportedOperation)
	}
}
